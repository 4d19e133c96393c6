package model

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrProductoNotFound    = errors.New("producto not found")
	ErrProductoNombreTaken = errors.New("producto nombre is already taken")
)

// Producto may point at another Producto acting as its variante. The
// variante is a plain producto row, not a distinct type.
type Producto struct {
	ID          uuid.UUID  `db:"id"`
	Nombre      string     `db:"nombre"`
	Descripcion string     `db:"descripcion"`
	Precio      float64    `db:"precio"`
	VarianteID  *uuid.UUID `db:"variante_id"`
}

type ProductoRepository interface {
	NextID() (uuid.UUID, error)
	Create(producto *Producto) error
	Update(producto *Producto) error
	Delete(id uuid.UUID) error
	Find(id uuid.UUID) (*Producto, error)
	FindAll() ([]*Producto, error)
	FindByNombre(nombre string) (*Producto, error)
	// CountPedidos reports how many pedidos reference the producto
	// through the producto_pedido join table.
	CountPedidos(productoID uuid.UUID) (int, error)
}
