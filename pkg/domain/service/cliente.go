package service

import (
	"errors"

	"github.com/google/uuid"

	"github.com/Cristh27/SoftwareFinal/pkg/domain/model"
)

var ErrClienteTienePedidos = errors.New("cliente has pedidos assigned")

type ClienteService interface {
	ListarTodos() ([]*model.Cliente, error)
	BuscarPorID(id uuid.UUID) (*model.Cliente, error)
	Grabar(cliente *model.Cliente) (*model.Cliente, error)
	Actualizar(id uuid.UUID, cliente *model.Cliente) (*model.Cliente, error)
	Eliminar(id uuid.UUID) error
	BuscarPorNombre(nombre string) ([]*model.Cliente, error)
}

func NewClienteService(repo model.ClienteRepository, pedidos model.PedidoRepository) ClienteService {
	return &clienteService{repo: repo, pedidos: pedidos}
}

type clienteService struct {
	repo    model.ClienteRepository
	pedidos model.PedidoRepository
}

func (s *clienteService) ListarTodos() ([]*model.Cliente, error) {
	return s.repo.FindAll()
}

func (s *clienteService) BuscarPorID(id uuid.UUID) (*model.Cliente, error) {
	return s.repo.Find(id)
}

func (s *clienteService) Grabar(cliente *model.Cliente) (*model.Cliente, error) {
	existentes, err := s.repo.FindByNombre(cliente.Nombre)
	if err != nil {
		return nil, err
	}
	if len(existentes) > 0 {
		return nil, model.ErrClienteNombreTaken
	}

	clienteID, err := s.repo.NextID()
	if err != nil {
		return nil, err
	}
	cliente.ID = clienteID

	if err := s.repo.Create(cliente); err != nil {
		return nil, err
	}
	return cliente, nil
}

func (s *clienteService) Actualizar(id uuid.UUID, cliente *model.Cliente) (*model.Cliente, error) {
	if _, err := s.repo.Find(id); err != nil {
		return nil, err
	}

	existentes, err := s.repo.FindByNombre(cliente.Nombre)
	if err != nil {
		return nil, err
	}
	for _, existente := range existentes {
		if existente.ID != id {
			return nil, model.ErrClienteNombreTaken
		}
	}

	cliente.ID = id
	if err := s.repo.Update(cliente); err != nil {
		return nil, err
	}
	return cliente, nil
}

func (s *clienteService) Eliminar(id uuid.UUID) error {
	if _, err := s.repo.Find(id); err != nil {
		return err
	}

	count, err := s.pedidos.CountByCliente(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrClienteTienePedidos
	}

	return s.repo.Delete(id)
}

func (s *clienteService) BuscarPorNombre(nombre string) ([]*model.Cliente, error) {
	return s.repo.FindByNombre(nombre)
}
