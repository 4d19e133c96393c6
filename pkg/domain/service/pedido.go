package service

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/Cristh27/SoftwareFinal/pkg/domain/model"
)

var (
	ErrEstadoInvalido       = errors.New("estado is not valid")
	ErrPedidoTieneCliente   = errors.New("pedido has a cliente assigned")
	ErrPedidoTieneProductos = errors.New("pedido has productos assigned")
)

type PedidoService interface {
	ListarTodos() ([]*model.Pedido, error)
	BuscarPorID(id uuid.UUID) (*model.Pedido, error)
	CrearPedido(pedido *model.Pedido) (*model.Pedido, error)
	ActualizarEstado(id uuid.UUID, nuevoEstado string) (*model.Pedido, error)
	ActualizarPedido(id uuid.UUID, nuevo *model.Pedido) (*model.Pedido, error)
	Eliminar(id uuid.UUID) error
	AsignarClienteProducto(idPedido, idCliente, idProducto uuid.UUID) (*model.Pedido, error)
}

// NewPedidoService wires all three repositories the service reaches:
// pedidos for its own records, clientes and productos for assignment
// lookups.
func NewPedidoService(pedidos model.PedidoRepository, clientes model.ClienteRepository, productos model.ProductoRepository) PedidoService {
	return &pedidoService{pedidos: pedidos, clientes: clientes, productos: productos}
}

type pedidoService struct {
	pedidos   model.PedidoRepository
	clientes  model.ClienteRepository
	productos model.ProductoRepository
}

func (s *pedidoService) ListarTodos() ([]*model.Pedido, error) {
	return s.pedidos.FindAll()
}

func (s *pedidoService) BuscarPorID(id uuid.UUID) (*model.Pedido, error) {
	return s.pedidos.Find(id)
}

func (s *pedidoService) CrearPedido(pedido *model.Pedido) (*model.Pedido, error) {
	existe, err := s.pedidos.ExistsSimilar(pedido.ClienteID, pedido.ProductoIDs, pedido.Fecha)
	if err != nil {
		return nil, err
	}
	if existe {
		return nil, model.ErrPedidoDuplicado
	}

	pedidoID, err := s.pedidos.NextID()
	if err != nil {
		return nil, err
	}
	pedido.ID = pedidoID

	if err := s.pedidos.Create(pedido); err != nil {
		return nil, err
	}
	return pedido, nil
}

func (s *pedidoService) ActualizarEstado(id uuid.UUID, nuevoEstado string) (*model.Pedido, error) {
	pedido, err := s.pedidos.Find(id)
	if err != nil {
		return nil, err
	}

	estado := strings.ToLower(nuevoEstado)
	if !esEstadoValido(estado) {
		return nil, ErrEstadoInvalido
	}

	pedido.Estado = estado
	if err := s.pedidos.Update(pedido); err != nil {
		return nil, err
	}
	return pedido, nil
}

// ActualizarPedido overwrites cantidad, fecha, estado and both
// associations wholesale. Unlike CrearPedido it does not re-run the
// duplicate check, and unlike ActualizarEstado it does not validate the
// incoming estado.
func (s *pedidoService) ActualizarPedido(id uuid.UUID, nuevo *model.Pedido) (*model.Pedido, error) {
	existente, err := s.pedidos.Find(id)
	if err != nil {
		return nil, err
	}

	existente.Cantidad = nuevo.Cantidad
	existente.Fecha = nuevo.Fecha
	existente.Estado = nuevo.Estado
	existente.ClienteID = nuevo.ClienteID
	existente.ProductoIDs = nuevo.ProductoIDs

	if err := s.pedidos.Update(existente); err != nil {
		return nil, err
	}
	return existente, nil
}

func (s *pedidoService) Eliminar(id uuid.UUID) error {
	pedido, err := s.pedidos.Find(id)
	if err != nil {
		return err
	}

	if pedido.ClienteID != nil {
		return ErrPedidoTieneCliente
	}
	if len(pedido.ProductoIDs) > 0 {
		return ErrPedidoTieneProductos
	}

	return s.pedidos.Delete(id)
}

func (s *pedidoService) AsignarClienteProducto(idPedido, idCliente, idProducto uuid.UUID) (*model.Pedido, error) {
	pedido, err := s.pedidos.Find(idPedido)
	if err != nil {
		return nil, err
	}

	cliente, err := s.clientes.Find(idCliente)
	if err != nil {
		return nil, err
	}

	producto, err := s.productos.Find(idProducto)
	if err != nil {
		return nil, err
	}

	pedido.ClienteID = &cliente.ID
	// the producto set is replaced, not appended to
	pedido.ProductoIDs = []uuid.UUID{producto.ID}

	if err := s.pedidos.Update(pedido); err != nil {
		return nil, err
	}
	return pedido, nil
}

func esEstadoValido(estado string) bool {
	switch estado {
	case model.EstadoPendiente, model.EstadoEnProceso, model.EstadoEntregado:
		return true
	}
	return false
}
