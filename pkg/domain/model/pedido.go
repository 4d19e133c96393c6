package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrPedidoNotFound  = errors.New("pedido not found")
	ErrPedidoDuplicado = errors.New("a similar pedido already exists")
)

const (
	EstadoPendiente = "pendiente"
	EstadoEnProceso = "en proceso"
	EstadoEntregado = "entregado"
)

type Pedido struct {
	ID          uuid.UUID  `db:"id"`
	Cantidad    int        `db:"cantidad"`
	Fecha       time.Time  `db:"fecha"`
	Estado      string     `db:"estado"`
	ClienteID   *uuid.UUID `db:"cliente_id"`
	ProductoIDs []uuid.UUID
}

type PedidoRepository interface {
	NextID() (uuid.UUID, error)
	Create(pedido *Pedido) error
	Update(pedido *Pedido) error
	Delete(id uuid.UUID) error
	Find(id uuid.UUID) (*Pedido, error)
	FindAll() ([]*Pedido, error)
	// ExistsSimilar reports whether another pedido shares the same
	// cliente, producto set and fecha.
	ExistsSimilar(clienteID *uuid.UUID, productoIDs []uuid.UUID, fecha time.Time) (bool, error)
	CountByCliente(clienteID uuid.UUID) (int, error)
}
