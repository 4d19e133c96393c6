package transport

import (
	"encoding/json"
	"net/http"

	"github.com/Cristh27/SoftwareFinal/pkg/domain/service"
)

// perfilHandlers answer with the raw entity instead of the apiResponse
// envelope, and with a bare {"message": ...} object on failure.
type perfilHandlers struct {
	service service.PerfilService
}

func (h *perfilHandlers) listar(w http.ResponseWriter, _ *http.Request) {
	perfiles, err := h.service.ListarTodos()
	if err != nil {
		writeRawError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, perfilesToDTO(perfiles))
}

func (h *perfilHandlers) obtener(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": mensajeIDInvalido})
		return
	}

	perfil, err := h.service.BuscarPorID(id)
	if err != nil {
		writeRawError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, perfilToDTO(perfil))
}

func (h *perfilHandlers) guardar(w http.ResponseWriter, r *http.Request) {
	var dto PerfilDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": mensajeCuerpoInvalido})
		return
	}

	nuevo, err := perfilFromDTO(dto)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": mensajeIDInvalido})
		return
	}

	perfil, err := h.service.Grabar(nuevo)
	if err != nil {
		writeRawError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, perfilToDTO(perfil))
}

func (h *perfilHandlers) actualizar(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": mensajeIDInvalido})
		return
	}

	var dto PerfilDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": mensajeCuerpoInvalido})
		return
	}

	nuevo, err := perfilFromDTO(dto)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": mensajeIDInvalido})
		return
	}

	perfil, err := h.service.Actualizar(id, nuevo)
	if err != nil {
		writeRawError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, perfilToDTO(perfil))
}

func (h *perfilHandlers) eliminar(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": mensajeIDInvalido})
		return
	}

	if err := h.service.Eliminar(id); err != nil {
		writeRawError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Perfil eliminado con éxito"})
}
