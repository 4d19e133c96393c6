package tests

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cristh27/SoftwareFinal/pkg/domain/model"
	"github.com/Cristh27/SoftwareFinal/pkg/domain/service"
)

func setupPerfilService(t *testing.T) (service.PerfilService, *mockPerfilRepository) {
	t.Helper()
	repo := newMockPerfilRepository()
	return service.NewPerfilService(repo), repo
}

func TestGrabarPerfil(t *testing.T) {
	perfilService, repo := setupPerfilService(t)

	clienteID := uuid.New()

	perfil, err := perfilService.Grabar(&model.Perfil{
		Preferencias: "sin gluten",
		ClienteID:    &clienteID,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, perfil.ID)
	_, ok := repo.store[perfil.ID]
	assert.True(t, ok)

	// no cross-entity check: a second perfil for the same cliente goes through
	otro, err := perfilService.Grabar(&model.Perfil{ClienteID: &clienteID})
	require.NoError(t, err)
	assert.NotEqual(t, perfil.ID, otro.ID)
}

func TestBuscarPerfilPorID(t *testing.T) {
	perfilService, _ := setupPerfilService(t)

	_, err := perfilService.BuscarPorID(uuid.New())
	assert.ErrorIs(t, err, model.ErrPerfilNotFound)
}

func TestActualizarPerfil(t *testing.T) {
	perfilService, _ := setupPerfilService(t)

	clienteID := uuid.New()
	perfil, err := perfilService.Grabar(&model.Perfil{
		Preferencias: "sin gluten",
		ClienteID:    &clienteID,
	})
	require.NoError(t, err)

	t.Run("Fail on missing id", func(t *testing.T) {
		_, err := perfilService.Actualizar(uuid.New(), &model.Perfil{})
		assert.ErrorIs(t, err, model.ErrPerfilNotFound)
	})

	t.Run("Overwrites preferencias only", func(t *testing.T) {
		actualizado, err := perfilService.Actualizar(perfil.ID, &model.Perfil{
			Preferencias: "vegetariano",
		})
		require.NoError(t, err)
		assert.Equal(t, "vegetariano", actualizado.Preferencias)

		// cliente reference survives the update untouched
		require.NotNil(t, actualizado.ClienteID)
		assert.Equal(t, clienteID, *actualizado.ClienteID)
	})
}

func TestEliminarPerfil(t *testing.T) {
	perfilService, repo := setupPerfilService(t)

	clienteID := uuid.New()
	perfil, err := perfilService.Grabar(&model.Perfil{ClienteID: &clienteID})
	require.NoError(t, err)

	t.Run("Fail on missing id", func(t *testing.T) {
		assert.ErrorIs(t, perfilService.Eliminar(uuid.New()), model.ErrPerfilNotFound)
	})

	t.Run("Deletes unconditionally once found", func(t *testing.T) {
		require.NoError(t, perfilService.Eliminar(perfil.ID))
		_, ok := repo.store[perfil.ID]
		assert.False(t, ok)
	})
}
