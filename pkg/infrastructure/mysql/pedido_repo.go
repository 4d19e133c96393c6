package mysql

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/Cristh27/SoftwareFinal/pkg/domain/model"
)

func NewPedidoRepository(db *sqlx.DB) model.PedidoRepository {
	return &pedidoRepository{db: db}
}

type pedidoRepository struct {
	db *sqlx.DB
}

func (r *pedidoRepository) NextID() (uuid.UUID, error) {
	return uuid.NewRandom()
}

func (r *pedidoRepository) Create(pedido *model.Pedido) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return errors.Wrap(err, "create pedido")
	}
	defer tx.Rollback()

	const query = `INSERT INTO pedido (id, cantidad, fecha, estado, cliente_id) VALUES (?, ?, ?, ?, ?)`
	if _, err := tx.Exec(query, pedido.ID, pedido.Cantidad, normalizeFecha(pedido.Fecha), pedido.Estado, pedido.ClienteID); err != nil {
		return errors.Wrap(err, "create pedido")
	}
	if err := insertProductoRows(tx, pedido.ID, pedido.ProductoIDs); err != nil {
		return err
	}

	return errors.Wrap(tx.Commit(), "create pedido")
}

// Update rewrites the pedido row and replaces its producto set wholesale.
func (r *pedidoRepository) Update(pedido *model.Pedido) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return errors.Wrap(err, "update pedido")
	}
	defer tx.Rollback()

	const query = `UPDATE pedido SET cantidad = ?, fecha = ?, estado = ?, cliente_id = ? WHERE id = ?`
	if _, err := tx.Exec(query, pedido.Cantidad, normalizeFecha(pedido.Fecha), pedido.Estado, pedido.ClienteID, pedido.ID); err != nil {
		return errors.Wrap(err, "update pedido")
	}
	if _, err := tx.Exec(`DELETE FROM producto_pedido WHERE pedido_id = ?`, pedido.ID); err != nil {
		return errors.Wrap(err, "update pedido")
	}
	if err := insertProductoRows(tx, pedido.ID, pedido.ProductoIDs); err != nil {
		return err
	}

	return errors.Wrap(tx.Commit(), "update pedido")
}

func (r *pedidoRepository) Delete(id uuid.UUID) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return errors.Wrap(err, "delete pedido")
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM producto_pedido WHERE pedido_id = ?`, id); err != nil {
		return errors.Wrap(err, "delete pedido")
	}
	result, err := tx.Exec(`DELETE FROM pedido WHERE id = ?`, id)
	if err != nil {
		return errors.Wrap(err, "delete pedido")
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "delete pedido")
	}
	if affected == 0 {
		return model.ErrPedidoNotFound
	}

	return errors.Wrap(tx.Commit(), "delete pedido")
}

func (r *pedidoRepository) Find(id uuid.UUID) (*model.Pedido, error) {
	var pedido model.Pedido
	err := r.db.Get(&pedido, `SELECT id, cantidad, fecha, estado, cliente_id FROM pedido WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrPedidoNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "find pedido")
	}

	if pedido.ProductoIDs, err = r.loadProductoIDs(id); err != nil {
		return nil, err
	}
	return &pedido, nil
}

func (r *pedidoRepository) FindAll() ([]*model.Pedido, error) {
	pedidos := make([]*model.Pedido, 0)
	err := r.db.Select(&pedidos, `SELECT id, cantidad, fecha, estado, cliente_id FROM pedido ORDER BY fecha`)
	if err != nil {
		return nil, errors.Wrap(err, "list pedidos")
	}

	type joinRow struct {
		PedidoID   uuid.UUID `db:"pedido_id"`
		ProductoID uuid.UUID `db:"producto_id"`
	}
	rows := make([]joinRow, 0)
	err = r.db.Select(&rows, `SELECT pedido_id, producto_id FROM producto_pedido ORDER BY pedido_id, producto_id`)
	if err != nil {
		return nil, errors.Wrap(err, "list pedido productos")
	}

	byPedido := make(map[uuid.UUID][]uuid.UUID, len(pedidos))
	for _, row := range rows {
		byPedido[row.PedidoID] = append(byPedido[row.PedidoID], row.ProductoID)
	}
	for _, pedido := range pedidos {
		pedido.ProductoIDs = byPedido[pedido.ID]
	}
	return pedidos, nil
}

func (r *pedidoRepository) ExistsSimilar(clienteID *uuid.UUID, productoIDs []uuid.UUID, fecha time.Time) (bool, error) {
	candidatos := make([]uuid.UUID, 0)
	err := r.db.Select(&candidatos, `SELECT id FROM pedido WHERE fecha = ? AND cliente_id <=> ?`, normalizeFecha(fecha), clienteID)
	if err != nil {
		return false, errors.Wrap(err, "find similar pedidos")
	}

	wanted := productoSet(productoIDs)
	for _, candidato := range candidatos {
		ids, err := r.loadProductoIDs(candidato)
		if err != nil {
			return false, err
		}
		if sameProductoSet(wanted, ids) {
			return true, nil
		}
	}
	return false, nil
}

func (r *pedidoRepository) CountByCliente(clienteID uuid.UUID) (int, error) {
	var count int
	err := r.db.Get(&count, `SELECT COUNT(*) FROM pedido WHERE cliente_id = ?`, clienteID)
	if err != nil {
		return 0, errors.Wrap(err, "count pedidos for cliente")
	}
	return count, nil
}

func (r *pedidoRepository) loadProductoIDs(pedidoID uuid.UUID) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0)
	err := r.db.Select(&ids, `SELECT producto_id FROM producto_pedido WHERE pedido_id = ? ORDER BY producto_id`, pedidoID)
	if err != nil {
		return nil, errors.Wrap(err, "load pedido productos")
	}
	return ids, nil
}

func insertProductoRows(tx *sqlx.Tx, pedidoID uuid.UUID, productoIDs []uuid.UUID) error {
	for _, productoID := range productoIDs {
		_, err := tx.Exec(`INSERT INTO producto_pedido (pedido_id, producto_id) VALUES (?, ?)`, pedidoID, productoID)
		if err != nil {
			return errors.Wrap(err, "insert pedido producto")
		}
	}
	return nil
}

// normalizeFecha truncates to seconds before fecha touches SQL. The
// DATETIME column has second precision, so a sub-second in-memory fecha
// would never match the stored value on equality.
func normalizeFecha(fecha time.Time) time.Time {
	return fecha.UTC().Truncate(time.Second)
}

func productoSet(ids []uuid.UUID) map[uuid.UUID]bool {
	set := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

func sameProductoSet(wanted map[uuid.UUID]bool, ids []uuid.UUID) bool {
	if len(wanted) != len(productoSet(ids)) {
		return false
	}
	for _, id := range ids {
		if !wanted[id] {
			return false
		}
	}
	return true
}
