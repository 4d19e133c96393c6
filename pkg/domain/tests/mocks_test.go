package tests

import (
	"time"

	"github.com/google/uuid"

	"github.com/Cristh27/SoftwareFinal/pkg/domain/model"
)

type mockClienteRepository struct {
	store map[uuid.UUID]*model.Cliente
}

func newMockClienteRepository() *mockClienteRepository {
	return &mockClienteRepository{store: make(map[uuid.UUID]*model.Cliente)}
}

func (r *mockClienteRepository) NextID() (uuid.UUID, error) {
	return uuid.NewRandom()
}

func (r *mockClienteRepository) Create(cliente *model.Cliente) error {
	r.store[cliente.ID] = cliente
	return nil
}

func (r *mockClienteRepository) Update(cliente *model.Cliente) error {
	r.store[cliente.ID] = cliente
	return nil
}

func (r *mockClienteRepository) Delete(id uuid.UUID) error {
	if _, ok := r.store[id]; !ok {
		return model.ErrClienteNotFound
	}
	delete(r.store, id)
	return nil
}

func (r *mockClienteRepository) Find(id uuid.UUID) (*model.Cliente, error) {
	cliente, ok := r.store[id]
	if !ok {
		return nil, model.ErrClienteNotFound
	}
	return cliente, nil
}

func (r *mockClienteRepository) FindAll() ([]*model.Cliente, error) {
	clientes := make([]*model.Cliente, 0, len(r.store))
	for _, cliente := range r.store {
		clientes = append(clientes, cliente)
	}
	return clientes, nil
}

func (r *mockClienteRepository) FindByNombre(nombre string) ([]*model.Cliente, error) {
	clientes := make([]*model.Cliente, 0)
	for _, cliente := range r.store {
		if cliente.Nombre == nombre {
			clientes = append(clientes, cliente)
		}
	}
	return clientes, nil
}

type mockPerfilRepository struct {
	store map[uuid.UUID]*model.Perfil
}

func newMockPerfilRepository() *mockPerfilRepository {
	return &mockPerfilRepository{store: make(map[uuid.UUID]*model.Perfil)}
}

func (r *mockPerfilRepository) NextID() (uuid.UUID, error) {
	return uuid.NewRandom()
}

func (r *mockPerfilRepository) Create(perfil *model.Perfil) error {
	r.store[perfil.ID] = perfil
	return nil
}

func (r *mockPerfilRepository) Update(perfil *model.Perfil) error {
	r.store[perfil.ID] = perfil
	return nil
}

func (r *mockPerfilRepository) Delete(id uuid.UUID) error {
	if _, ok := r.store[id]; !ok {
		return model.ErrPerfilNotFound
	}
	delete(r.store, id)
	return nil
}

func (r *mockPerfilRepository) Find(id uuid.UUID) (*model.Perfil, error) {
	perfil, ok := r.store[id]
	if !ok {
		return nil, model.ErrPerfilNotFound
	}
	return perfil, nil
}

func (r *mockPerfilRepository) FindAll() ([]*model.Perfil, error) {
	perfiles := make([]*model.Perfil, 0, len(r.store))
	for _, perfil := range r.store {
		perfiles = append(perfiles, perfil)
	}
	return perfiles, nil
}

type mockProductoRepository struct {
	store   map[uuid.UUID]*model.Producto
	pedidos map[uuid.UUID]int
}

func newMockProductoRepository() *mockProductoRepository {
	return &mockProductoRepository{
		store:   make(map[uuid.UUID]*model.Producto),
		pedidos: make(map[uuid.UUID]int),
	}
}

func (r *mockProductoRepository) NextID() (uuid.UUID, error) {
	return uuid.NewRandom()
}

func (r *mockProductoRepository) Create(producto *model.Producto) error {
	r.store[producto.ID] = producto
	return nil
}

func (r *mockProductoRepository) Update(producto *model.Producto) error {
	r.store[producto.ID] = producto
	return nil
}

func (r *mockProductoRepository) Delete(id uuid.UUID) error {
	if _, ok := r.store[id]; !ok {
		return model.ErrProductoNotFound
	}
	delete(r.store, id)
	return nil
}

func (r *mockProductoRepository) Find(id uuid.UUID) (*model.Producto, error) {
	producto, ok := r.store[id]
	if !ok {
		return nil, model.ErrProductoNotFound
	}
	return producto, nil
}

func (r *mockProductoRepository) FindAll() ([]*model.Producto, error) {
	productos := make([]*model.Producto, 0, len(r.store))
	for _, producto := range r.store {
		productos = append(productos, producto)
	}
	return productos, nil
}

func (r *mockProductoRepository) FindByNombre(nombre string) (*model.Producto, error) {
	for _, producto := range r.store {
		if producto.Nombre == nombre {
			return producto, nil
		}
	}
	return nil, model.ErrProductoNotFound
}

func (r *mockProductoRepository) CountPedidos(productoID uuid.UUID) (int, error) {
	return r.pedidos[productoID], nil
}

type mockPedidoRepository struct {
	store map[uuid.UUID]*model.Pedido
}

func newMockPedidoRepository() *mockPedidoRepository {
	return &mockPedidoRepository{store: make(map[uuid.UUID]*model.Pedido)}
}

func (r *mockPedidoRepository) NextID() (uuid.UUID, error) {
	return uuid.NewRandom()
}

func (r *mockPedidoRepository) Create(pedido *model.Pedido) error {
	r.store[pedido.ID] = pedido
	return nil
}

func (r *mockPedidoRepository) Update(pedido *model.Pedido) error {
	r.store[pedido.ID] = pedido
	return nil
}

func (r *mockPedidoRepository) Delete(id uuid.UUID) error {
	if _, ok := r.store[id]; !ok {
		return model.ErrPedidoNotFound
	}
	delete(r.store, id)
	return nil
}

func (r *mockPedidoRepository) Find(id uuid.UUID) (*model.Pedido, error) {
	pedido, ok := r.store[id]
	if !ok {
		return nil, model.ErrPedidoNotFound
	}
	return pedido, nil
}

func (r *mockPedidoRepository) FindAll() ([]*model.Pedido, error) {
	pedidos := make([]*model.Pedido, 0, len(r.store))
	for _, pedido := range r.store {
		pedidos = append(pedidos, pedido)
	}
	return pedidos, nil
}

func (r *mockPedidoRepository) ExistsSimilar(clienteID *uuid.UUID, productoIDs []uuid.UUID, fecha time.Time) (bool, error) {
	for _, pedido := range r.store {
		if !sameCliente(pedido.ClienteID, clienteID) {
			continue
		}
		if !pedido.Fecha.Equal(fecha) {
			continue
		}
		if sameProductos(pedido.ProductoIDs, productoIDs) {
			return true, nil
		}
	}
	return false, nil
}

func (r *mockPedidoRepository) CountByCliente(clienteID uuid.UUID) (int, error) {
	count := 0
	for _, pedido := range r.store {
		if pedido.ClienteID != nil && *pedido.ClienteID == clienteID {
			count++
		}
	}
	return count, nil
}

func sameCliente(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func sameProductos(a, b []uuid.UUID) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[uuid.UUID]bool, len(a))
	for _, id := range a {
		set[id] = true
	}
	for _, id := range b {
		if !set[id] {
			return false
		}
	}
	return true
}

var (
	_ model.ClienteRepository  = &mockClienteRepository{}
	_ model.PerfilRepository   = &mockPerfilRepository{}
	_ model.ProductoRepository = &mockProductoRepository{}
	_ model.PedidoRepository   = &mockPedidoRepository{}
)
