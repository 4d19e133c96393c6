package mysql

import (
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/Cristh27/SoftwareFinal/pkg/domain/model"
)

func NewPerfilRepository(db *sqlx.DB) model.PerfilRepository {
	return &perfilRepository{db: db}
}

type perfilRepository struct {
	db *sqlx.DB
}

func (r *perfilRepository) NextID() (uuid.UUID, error) {
	return uuid.NewRandom()
}

func (r *perfilRepository) Create(perfil *model.Perfil) error {
	const query = `INSERT INTO perfil (id, preferencias, cliente_id) VALUES (?, ?, ?)`
	_, err := r.db.Exec(query, perfil.ID, perfil.Preferencias, perfil.ClienteID)
	return errors.Wrap(err, "create perfil")
}

func (r *perfilRepository) Update(perfil *model.Perfil) error {
	const query = `UPDATE perfil SET preferencias = ?, cliente_id = ? WHERE id = ?`
	_, err := r.db.Exec(query, perfil.Preferencias, perfil.ClienteID, perfil.ID)
	return errors.Wrap(err, "update perfil")
}

func (r *perfilRepository) Delete(id uuid.UUID) error {
	result, err := r.db.Exec(`DELETE FROM perfil WHERE id = ?`, id)
	if err != nil {
		return errors.Wrap(err, "delete perfil")
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "delete perfil")
	}
	if affected == 0 {
		return model.ErrPerfilNotFound
	}
	return nil
}

func (r *perfilRepository) Find(id uuid.UUID) (*model.Perfil, error) {
	var perfil model.Perfil
	err := r.db.Get(&perfil, `SELECT id, preferencias, cliente_id FROM perfil WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrPerfilNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "find perfil")
	}
	return &perfil, nil
}

func (r *perfilRepository) FindAll() ([]*model.Perfil, error) {
	perfiles := make([]*model.Perfil, 0)
	err := r.db.Select(&perfiles, `SELECT id, preferencias, cliente_id FROM perfil ORDER BY id`)
	if err != nil {
		return nil, errors.Wrap(err, "list perfiles")
	}
	return perfiles, nil
}
