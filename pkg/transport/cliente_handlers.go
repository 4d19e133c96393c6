package transport

import (
	"encoding/json"
	"net/http"

	"github.com/Cristh27/SoftwareFinal/pkg/domain/service"
)

const (
	mensajeIDInvalido     = "El identificador proporcionado no es válido"
	mensajeCuerpoInvalido = "El cuerpo de la petición no es válido"
)

type clienteHandlers struct {
	service service.ClienteService
}

func (h *clienteHandlers) listar(w http.ResponseWriter, _ *http.Request) {
	clientes, err := h.service.ListarTodos()
	if err != nil {
		writeError(w, err)
		return
	}
	if len(clientes) == 0 {
		writeEnvelope(w, http.StatusNotFound, false, "No se encontraron clientes", nil)
		return
	}
	writeEnvelope(w, http.StatusOK, true, "Lista de clientes obtenida con éxito", clientesToDTO(clientes))
}

func (h *clienteHandlers) obtener(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeEnvelope(w, http.StatusBadRequest, false, mensajeIDInvalido, nil)
		return
	}

	cliente, err := h.service.BuscarPorID(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeEnvelope(w, http.StatusOK, true, "Cliente obtenido con éxito", clienteToDTO(cliente))
}

func (h *clienteHandlers) guardar(w http.ResponseWriter, r *http.Request) {
	var dto ClienteDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeEnvelope(w, http.StatusBadRequest, false, mensajeCuerpoInvalido, nil)
		return
	}

	cliente, err := h.service.Grabar(clienteFromDTO(dto))
	if err != nil {
		writeError(w, err)
		return
	}
	writeEnvelope(w, http.StatusCreated, true, "Cliente guardado con éxito", clienteToDTO(cliente))
}

func (h *clienteHandlers) actualizar(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeEnvelope(w, http.StatusBadRequest, false, mensajeIDInvalido, nil)
		return
	}

	var dto ClienteDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeEnvelope(w, http.StatusBadRequest, false, mensajeCuerpoInvalido, nil)
		return
	}

	cliente, err := h.service.Actualizar(id, clienteFromDTO(dto))
	if err != nil {
		writeError(w, err)
		return
	}
	writeEnvelope(w, http.StatusOK, true, "Cliente actualizado con éxito", clienteToDTO(cliente))
}

func (h *clienteHandlers) eliminar(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeEnvelope(w, http.StatusBadRequest, false, mensajeIDInvalido, nil)
		return
	}

	if err := h.service.Eliminar(id); err != nil {
		writeError(w, err)
		return
	}
	writeEnvelope(w, http.StatusOK, true, "Cliente eliminado con éxito", nil)
}
