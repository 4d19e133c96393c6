package mysql

import (
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/Cristh27/SoftwareFinal/pkg/domain/model"
)

func NewProductoRepository(db *sqlx.DB) model.ProductoRepository {
	return &productoRepository{db: db}
}

type productoRepository struct {
	db *sqlx.DB
}

func (r *productoRepository) NextID() (uuid.UUID, error) {
	return uuid.NewRandom()
}

func (r *productoRepository) Create(producto *model.Producto) error {
	const query = `INSERT INTO producto (id, nombre, descripcion, precio, variante_id) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.Exec(query, producto.ID, producto.Nombre, producto.Descripcion, producto.Precio, producto.VarianteID)
	if isDuplicateEntry(err) {
		return model.ErrProductoNombreTaken
	}
	return errors.Wrap(err, "create producto")
}

func (r *productoRepository) Update(producto *model.Producto) error {
	const query = `UPDATE producto SET nombre = ?, descripcion = ?, precio = ?, variante_id = ? WHERE id = ?`
	_, err := r.db.Exec(query, producto.Nombre, producto.Descripcion, producto.Precio, producto.VarianteID, producto.ID)
	if isDuplicateEntry(err) {
		return model.ErrProductoNombreTaken
	}
	return errors.Wrap(err, "update producto")
}

func (r *productoRepository) Delete(id uuid.UUID) error {
	result, err := r.db.Exec(`DELETE FROM producto WHERE id = ?`, id)
	if err != nil {
		return errors.Wrap(err, "delete producto")
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "delete producto")
	}
	if affected == 0 {
		return model.ErrProductoNotFound
	}
	return nil
}

func (r *productoRepository) Find(id uuid.UUID) (*model.Producto, error) {
	var producto model.Producto
	err := r.db.Get(&producto, `SELECT id, nombre, descripcion, precio, variante_id FROM producto WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrProductoNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "find producto")
	}
	return &producto, nil
}

func (r *productoRepository) FindAll() ([]*model.Producto, error) {
	productos := make([]*model.Producto, 0)
	err := r.db.Select(&productos, `SELECT id, nombre, descripcion, precio, variante_id FROM producto ORDER BY nombre`)
	if err != nil {
		return nil, errors.Wrap(err, "list productos")
	}
	return productos, nil
}

func (r *productoRepository) FindByNombre(nombre string) (*model.Producto, error) {
	var producto model.Producto
	err := r.db.Get(&producto, `SELECT id, nombre, descripcion, precio, variante_id FROM producto WHERE nombre = ?`, nombre)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrProductoNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "find producto by nombre")
	}
	return &producto, nil
}

func (r *productoRepository) CountPedidos(productoID uuid.UUID) (int, error) {
	var count int
	err := r.db.Get(&count, `SELECT COUNT(*) FROM producto_pedido WHERE producto_id = ?`, productoID)
	if err != nil {
		return 0, errors.Wrap(err, "count pedidos for producto")
	}
	return count, nil
}
