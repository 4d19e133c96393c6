package mysql

import (
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/Cristh27/SoftwareFinal/pkg/domain/model"
)

func NewClienteRepository(db *sqlx.DB) model.ClienteRepository {
	return &clienteRepository{db: db}
}

type clienteRepository struct {
	db *sqlx.DB
}

func (r *clienteRepository) NextID() (uuid.UUID, error) {
	return uuid.NewRandom()
}

func (r *clienteRepository) Create(cliente *model.Cliente) error {
	const query = `INSERT INTO cliente (id, nombre, correo_electronico, numero_telefonico) VALUES (?, ?, ?, ?)`
	_, err := r.db.Exec(query, cliente.ID, cliente.Nombre, cliente.CorreoElectronico, cliente.NumeroTelefonico)
	if isDuplicateEntry(err) {
		return model.ErrClienteNombreTaken
	}
	return errors.Wrap(err, "create cliente")
}

func (r *clienteRepository) Update(cliente *model.Cliente) error {
	const query = `UPDATE cliente SET nombre = ?, correo_electronico = ?, numero_telefonico = ? WHERE id = ?`
	_, err := r.db.Exec(query, cliente.Nombre, cliente.CorreoElectronico, cliente.NumeroTelefonico, cliente.ID)
	if isDuplicateEntry(err) {
		return model.ErrClienteNombreTaken
	}
	return errors.Wrap(err, "update cliente")
}

func (r *clienteRepository) Delete(id uuid.UUID) error {
	result, err := r.db.Exec(`DELETE FROM cliente WHERE id = ?`, id)
	if err != nil {
		return errors.Wrap(err, "delete cliente")
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "delete cliente")
	}
	if affected == 0 {
		return model.ErrClienteNotFound
	}
	return nil
}

func (r *clienteRepository) Find(id uuid.UUID) (*model.Cliente, error) {
	var cliente model.Cliente
	err := r.db.Get(&cliente, `SELECT id, nombre, correo_electronico, numero_telefonico FROM cliente WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrClienteNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "find cliente")
	}
	return &cliente, nil
}

func (r *clienteRepository) FindAll() ([]*model.Cliente, error) {
	clientes := make([]*model.Cliente, 0)
	err := r.db.Select(&clientes, `SELECT id, nombre, correo_electronico, numero_telefonico FROM cliente ORDER BY nombre`)
	if err != nil {
		return nil, errors.Wrap(err, "list clientes")
	}
	return clientes, nil
}

func (r *clienteRepository) FindByNombre(nombre string) ([]*model.Cliente, error) {
	clientes := make([]*model.Cliente, 0)
	err := r.db.Select(&clientes, `SELECT id, nombre, correo_electronico, numero_telefonico FROM cliente WHERE nombre = ?`, nombre)
	if err != nil {
		return nil, errors.Wrap(err, "find clientes by nombre")
	}
	return clientes, nil
}
