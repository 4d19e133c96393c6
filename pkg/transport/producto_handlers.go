package transport

import (
	"encoding/json"
	"net/http"

	"github.com/Cristh27/SoftwareFinal/pkg/domain/service"
)

type productoHandlers struct {
	service service.ProductoService
}

func (h *productoHandlers) listar(w http.ResponseWriter, _ *http.Request) {
	productos, err := h.service.ListarTodos()
	if err != nil {
		writeError(w, err)
		return
	}
	if len(productos) == 0 {
		writeEnvelope(w, http.StatusNotFound, false, "No se encontraron productos", nil)
		return
	}
	writeEnvelope(w, http.StatusOK, true, "Lista de productos obtenida con éxito", productosToDTO(productos))
}

func (h *productoHandlers) obtener(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeEnvelope(w, http.StatusBadRequest, false, mensajeIDInvalido, nil)
		return
	}

	producto, err := h.service.BuscarPorID(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeEnvelope(w, http.StatusOK, true, "Producto obtenido con éxito", productoToDTO(producto))
}

func (h *productoHandlers) guardar(w http.ResponseWriter, r *http.Request) {
	var dto ProductoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeEnvelope(w, http.StatusBadRequest, false, mensajeCuerpoInvalido, nil)
		return
	}

	producto, err := h.service.Grabar(productoFromDTO(dto))
	if err != nil {
		writeError(w, err)
		return
	}
	writeEnvelope(w, http.StatusCreated, true, "Producto guardado con éxito", productoToDTO(producto))
}

func (h *productoHandlers) actualizar(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeEnvelope(w, http.StatusBadRequest, false, mensajeIDInvalido, nil)
		return
	}

	var dto ProductoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeEnvelope(w, http.StatusBadRequest, false, mensajeCuerpoInvalido, nil)
		return
	}

	producto, err := h.service.Actualizar(id, productoFromDTO(dto))
	if err != nil {
		writeError(w, err)
		return
	}
	writeEnvelope(w, http.StatusOK, true, "Producto actualizado con éxito", productoToDTO(producto))
}

func (h *productoHandlers) eliminar(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeEnvelope(w, http.StatusBadRequest, false, mensajeIDInvalido, nil)
		return
	}

	if err := h.service.Eliminar(id); err != nil {
		writeError(w, err)
		return
	}
	writeEnvelope(w, http.StatusOK, true, "Producto eliminado con éxito", nil)
}

func (h *productoHandlers) asignarVariante(w http.ResponseWriter, r *http.Request) {
	idProducto, err := pathID(r, "idProducto")
	if err != nil {
		writeEnvelope(w, http.StatusBadRequest, false, mensajeIDInvalido, nil)
		return
	}
	idVariante, err := pathID(r, "idVariante")
	if err != nil {
		writeEnvelope(w, http.StatusBadRequest, false, mensajeIDInvalido, nil)
		return
	}

	producto, err := h.service.AsignarVariante(idVariante, idProducto)
	if err != nil {
		writeError(w, err)
		return
	}
	writeEnvelope(w, http.StatusOK, true, "Variante asignada con éxito", productoToDTO(producto))
}

func (h *productoHandlers) crearVariante(w http.ResponseWriter, r *http.Request) {
	var dto ProductoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeEnvelope(w, http.StatusBadRequest, false, mensajeCuerpoInvalido, nil)
		return
	}

	variante, err := h.service.CrearVariante(productoFromDTO(dto))
	if err != nil {
		writeError(w, err)
		return
	}
	writeEnvelope(w, http.StatusCreated, true, "Variante creada con éxito", productoToDTO(variante))
}
