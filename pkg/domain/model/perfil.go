package model

import (
	"errors"

	"github.com/google/uuid"
)

var ErrPerfilNotFound = errors.New("perfil not found")

// Perfil owns the 1:1 reference to its Cliente. A nil ClienteID is a
// profile that has not been linked yet.
type Perfil struct {
	ID           uuid.UUID  `db:"id"`
	Preferencias string     `db:"preferencias"`
	ClienteID    *uuid.UUID `db:"cliente_id"`
}

type PerfilRepository interface {
	NextID() (uuid.UUID, error)
	Create(perfil *Perfil) error
	Update(perfil *Perfil) error
	Delete(id uuid.UUID) error
	Find(id uuid.UUID) (*Perfil, error)
	FindAll() ([]*Perfil, error)
}
