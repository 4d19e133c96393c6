package model

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrClienteNotFound    = errors.New("cliente not found")
	ErrClienteNombreTaken = errors.New("cliente nombre is already taken")
)

type Cliente struct {
	ID                uuid.UUID `db:"id"`
	Nombre            string    `db:"nombre"`
	CorreoElectronico string    `db:"correo_electronico"`
	NumeroTelefonico  string    `db:"numero_telefonico"`
}

type ClienteRepository interface {
	NextID() (uuid.UUID, error)
	Create(cliente *Cliente) error
	Update(cliente *Cliente) error
	Delete(id uuid.UUID) error
	Find(id uuid.UUID) (*Cliente, error)
	FindAll() ([]*Cliente, error)
	FindByNombre(nombre string) ([]*Cliente, error)
}
