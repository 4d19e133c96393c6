package transport

import (
	"encoding/json"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/Cristh27/SoftwareFinal/pkg/domain/model"
	"github.com/Cristh27/SoftwareFinal/pkg/domain/service"
)

// apiResponse is the uniform envelope for the cliente, producto and pedido
// endpoint families. Perfil endpoints stay envelope-less.
type apiResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

const mensajeErrorInterno = "Error interno del servidor"

var notFoundErrors = []error{
	model.ErrClienteNotFound,
	model.ErrPedidoNotFound,
	model.ErrPerfilNotFound,
	model.ErrProductoNotFound,
}

var badRequestErrors = []error{
	model.ErrClienteNombreTaken,
	model.ErrProductoNombreTaken,
	model.ErrPedidoDuplicado,
	service.ErrClienteTienePedidos,
	service.ErrProductoTienePedidos,
	service.ErrPedidoTieneCliente,
	service.ErrPedidoTieneProductos,
	service.ErrVarianteCiclo,
	service.ErrEstadoInvalido,
}

func statusForError(err error) int {
	for _, target := range notFoundErrors {
		if errors.Is(err, target) {
			return http.StatusNotFound
		}
	}
	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.WithError(err).Error("write response body")
	}
}

func writeEnvelope(w http.ResponseWriter, status int, success bool, message string, data interface{}) {
	writeJSON(w, status, apiResponse{Success: success, Message: message, Data: data})
}

// writeError maps a service failure onto the envelope. Uncategorized
// errors never leak their text to the client.
func writeError(w http.ResponseWriter, err error) {
	status := statusForError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		log.WithError(err).Error("unhandled service error")
		message = mensajeErrorInterno
	}
	writeEnvelope(w, status, false, message, nil)
}

// writeRawError is the perfil-family variant: a bare message object.
func writeRawError(w http.ResponseWriter, err error) {
	status := statusForError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		log.WithError(err).Error("unhandled service error")
		message = mensajeErrorInterno
	}
	writeJSON(w, status, map[string]string{"message": message})
}
