package service

import (
	"github.com/google/uuid"

	"github.com/Cristh27/SoftwareFinal/pkg/domain/model"
)

type PerfilService interface {
	ListarTodos() ([]*model.Perfil, error)
	BuscarPorID(id uuid.UUID) (*model.Perfil, error)
	Grabar(perfil *model.Perfil) (*model.Perfil, error)
	Actualizar(id uuid.UUID, perfil *model.Perfil) (*model.Perfil, error)
	Eliminar(id uuid.UUID) error
}

func NewPerfilService(repo model.PerfilRepository) PerfilService {
	return &perfilService{repo: repo}
}

type perfilService struct {
	repo model.PerfilRepository
}

func (s *perfilService) ListarTodos() ([]*model.Perfil, error) {
	return s.repo.FindAll()
}

func (s *perfilService) BuscarPorID(id uuid.UUID) (*model.Perfil, error) {
	return s.repo.Find(id)
}

// Grabar performs no cross-entity check: nothing stops two perfiles from
// referencing the same cliente.
func (s *perfilService) Grabar(perfil *model.Perfil) (*model.Perfil, error) {
	perfilID, err := s.repo.NextID()
	if err != nil {
		return nil, err
	}
	perfil.ID = perfilID

	if err := s.repo.Create(perfil); err != nil {
		return nil, err
	}
	return perfil, nil
}

// Actualizar replaces preferencias only; the cliente reference is left
// untouched.
func (s *perfilService) Actualizar(id uuid.UUID, perfil *model.Perfil) (*model.Perfil, error) {
	existente, err := s.repo.Find(id)
	if err != nil {
		return nil, err
	}

	existente.Preferencias = perfil.Preferencias

	if err := s.repo.Update(existente); err != nil {
		return nil, err
	}
	return existente, nil
}

func (s *perfilService) Eliminar(id uuid.UUID) error {
	if _, err := s.repo.Find(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}
