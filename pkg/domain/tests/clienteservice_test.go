package tests

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cristh27/SoftwareFinal/pkg/domain/model"
	"github.com/Cristh27/SoftwareFinal/pkg/domain/service"
)

func setupClienteService(t *testing.T) (service.ClienteService, *mockClienteRepository, *mockPedidoRepository) {
	t.Helper()
	clientes := newMockClienteRepository()
	pedidos := newMockPedidoRepository()
	return service.NewClienteService(clientes, pedidos), clientes, pedidos
}

func TestGrabarCliente(t *testing.T) {
	clienteService, repo, _ := setupClienteService(t)

	t.Run("Success", func(t *testing.T) {
		cliente, err := clienteService.Grabar(&model.Cliente{
			Nombre:            "Ana",
			CorreoElectronico: "ana@example.com",
			NumeroTelefonico:  "5551234",
		})

		require.NoError(t, err)
		require.NotNil(t, cliente)
		assert.NotEqual(t, uuid.Nil, cliente.ID)

		guardado, ok := repo.store[cliente.ID]
		require.True(t, ok)
		assert.Equal(t, "Ana", guardado.Nombre)
	})

	t.Run("Fail on duplicate nombre", func(t *testing.T) {
		_, err := clienteService.Grabar(&model.Cliente{Nombre: "Ana"})
		assert.ErrorIs(t, err, model.ErrClienteNombreTaken)
	})
}

func TestActualizarCliente(t *testing.T) {
	clienteService, _, _ := setupClienteService(t)

	ana, err := clienteService.Grabar(&model.Cliente{Nombre: "Ana"})
	require.NoError(t, err)
	_, err = clienteService.Grabar(&model.Cliente{Nombre: "Luis"})
	require.NoError(t, err)

	t.Run("Fail on missing id", func(t *testing.T) {
		_, err := clienteService.Actualizar(uuid.New(), &model.Cliente{Nombre: "Otro"})
		assert.ErrorIs(t, err, model.ErrClienteNotFound)
	})

	t.Run("Fail on nombre collision with another cliente", func(t *testing.T) {
		_, err := clienteService.Actualizar(ana.ID, &model.Cliente{Nombre: "Luis"})
		assert.ErrorIs(t, err, model.ErrClienteNombreTaken)
	})

	t.Run("Keeping own nombre is not a collision", func(t *testing.T) {
		actualizado, err := clienteService.Actualizar(ana.ID, &model.Cliente{
			Nombre:            "Ana",
			CorreoElectronico: "nueva@example.com",
		})
		require.NoError(t, err)
		assert.Equal(t, ana.ID, actualizado.ID)
		assert.Equal(t, "nueva@example.com", actualizado.CorreoElectronico)
	})
}

func TestEliminarCliente(t *testing.T) {
	clienteService, _, pedidos := setupClienteService(t)

	cliente, err := clienteService.Grabar(&model.Cliente{Nombre: "Ana"})
	require.NoError(t, err)

	t.Run("Fail on missing id", func(t *testing.T) {
		assert.ErrorIs(t, clienteService.Eliminar(uuid.New()), model.ErrClienteNotFound)
	})

	t.Run("Fail when cliente has pedidos", func(t *testing.T) {
		pedidoID := uuid.New()
		pedidos.store[pedidoID] = &model.Pedido{
			ID:        pedidoID,
			Fecha:     time.Now().UTC(),
			Estado:    model.EstadoPendiente,
			ClienteID: &cliente.ID,
		}

		assert.ErrorIs(t, clienteService.Eliminar(cliente.ID), service.ErrClienteTienePedidos)

		delete(pedidos.store, pedidoID)
	})

	t.Run("Success", func(t *testing.T) {
		require.NoError(t, clienteService.Eliminar(cliente.ID))

		_, err := clienteService.BuscarPorID(cliente.ID)
		assert.ErrorIs(t, err, model.ErrClienteNotFound)
	})
}

func TestBuscarClientePorNombre(t *testing.T) {
	clienteService, _, _ := setupClienteService(t)

	_, err := clienteService.Grabar(&model.Cliente{Nombre: "Ana"})
	require.NoError(t, err)

	encontrados, err := clienteService.BuscarPorNombre("Ana")
	require.NoError(t, err)
	require.Len(t, encontrados, 1)
	assert.Equal(t, "Ana", encontrados[0].Nombre)

	vacios, err := clienteService.BuscarPorNombre("Nadie")
	require.NoError(t, err)
	assert.Empty(t, vacios)
}
