package transport

import (
	"encoding/json"
	"net/http"

	"github.com/Cristh27/SoftwareFinal/pkg/domain/service"
)

type pedidoHandlers struct {
	service service.PedidoService
}

func (h *pedidoHandlers) listar(w http.ResponseWriter, _ *http.Request) {
	pedidos, err := h.service.ListarTodos()
	if err != nil {
		writeError(w, err)
		return
	}
	writeEnvelope(w, http.StatusOK, true, "Lista de pedidos obtenida con éxito", pedidosToDTO(pedidos))
}

func (h *pedidoHandlers) obtener(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeEnvelope(w, http.StatusBadRequest, false, mensajeIDInvalido, nil)
		return
	}

	pedido, err := h.service.BuscarPorID(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeEnvelope(w, http.StatusOK, true, "Pedido obtenido con éxito", pedidoToDTO(pedido))
}

func (h *pedidoHandlers) crear(w http.ResponseWriter, r *http.Request) {
	var dto PedidoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeEnvelope(w, http.StatusBadRequest, false, mensajeCuerpoInvalido, nil)
		return
	}

	nuevo, err := pedidoFromDTO(dto)
	if err != nil {
		writeEnvelope(w, http.StatusBadRequest, false, mensajeIDInvalido, nil)
		return
	}

	pedido, err := h.service.CrearPedido(nuevo)
	if err != nil {
		writeError(w, err)
		return
	}
	writeEnvelope(w, http.StatusCreated, true, "Pedido creado con éxito", pedidoToDTO(pedido))
}

func (h *pedidoHandlers) actualizar(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeEnvelope(w, http.StatusBadRequest, false, mensajeIDInvalido, nil)
		return
	}

	var dto PedidoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeEnvelope(w, http.StatusBadRequest, false, mensajeCuerpoInvalido, nil)
		return
	}

	nuevo, err := pedidoFromDTO(dto)
	if err != nil {
		writeEnvelope(w, http.StatusBadRequest, false, mensajeIDInvalido, nil)
		return
	}

	pedido, err := h.service.ActualizarPedido(id, nuevo)
	if err != nil {
		writeError(w, err)
		return
	}
	writeEnvelope(w, http.StatusOK, true, "Pedido actualizado con éxito", pedidoToDTO(pedido))
}

func (h *pedidoHandlers) eliminar(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeEnvelope(w, http.StatusBadRequest, false, mensajeIDInvalido, nil)
		return
	}

	if err := h.service.Eliminar(id); err != nil {
		writeError(w, err)
		return
	}
	writeEnvelope(w, http.StatusOK, true, "Pedido eliminado con éxito", nil)
}

func (h *pedidoHandlers) actualizarEstado(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeEnvelope(w, http.StatusBadRequest, false, mensajeIDInvalido, nil)
		return
	}

	nuevoEstado := r.URL.Query().Get("estado")

	pedido, err := h.service.ActualizarEstado(id, nuevoEstado)
	if err != nil {
		writeError(w, err)
		return
	}
	writeEnvelope(w, http.StatusOK, true, "Estado del pedido actualizado con éxito", pedidoToDTO(pedido))
}

func (h *pedidoHandlers) asignarClienteProducto(w http.ResponseWriter, r *http.Request) {
	idPedido, err := pathID(r, "idPedido")
	if err != nil {
		writeEnvelope(w, http.StatusBadRequest, false, mensajeIDInvalido, nil)
		return
	}
	idCliente, err := pathID(r, "idCliente")
	if err != nil {
		writeEnvelope(w, http.StatusBadRequest, false, mensajeIDInvalido, nil)
		return
	}
	idProducto, err := pathID(r, "idProducto")
	if err != nil {
		writeEnvelope(w, http.StatusBadRequest, false, mensajeIDInvalido, nil)
		return
	}

	pedido, err := h.service.AsignarClienteProducto(idPedido, idCliente, idProducto)
	if err != nil {
		writeError(w, err)
		return
	}
	writeEnvelope(w, http.StatusOK, true, "Cliente y producto asignados con éxito", pedidoToDTO(pedido))
}
