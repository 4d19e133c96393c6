package transport

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"golang.org/x/time/rate"

	"github.com/Cristh27/SoftwareFinal/pkg/domain/service"
)

type Services struct {
	Clientes  service.ClienteService
	Pedidos   service.PedidoService
	Perfiles  service.PerfilService
	Productos service.ProductoService
}

func Router(services Services, limiter *rate.Limiter) http.Handler {
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	clientes := &clienteHandlers{service: services.Clientes}
	api.HandleFunc("/clientes", clientes.listar).Methods(http.MethodGet)
	api.HandleFunc("/clientes", clientes.guardar).Methods(http.MethodPost)
	api.HandleFunc("/clientes/{id}", clientes.obtener).Methods(http.MethodGet)
	api.HandleFunc("/clientes/{id}", clientes.actualizar).Methods(http.MethodPut)
	api.HandleFunc("/clientes/{id}", clientes.eliminar).Methods(http.MethodDelete)

	productos := &productoHandlers{service: services.Productos}
	api.HandleFunc("/productos", productos.listar).Methods(http.MethodGet)
	api.HandleFunc("/productos", productos.guardar).Methods(http.MethodPost)
	api.HandleFunc("/productos/variantes", productos.crearVariante).Methods(http.MethodPost)
	api.HandleFunc("/productos/{id}", productos.obtener).Methods(http.MethodGet)
	api.HandleFunc("/productos/{id}", productos.actualizar).Methods(http.MethodPut)
	api.HandleFunc("/productos/{id}", productos.eliminar).Methods(http.MethodDelete)
	api.HandleFunc("/productos/{idProducto}/variante/{idVariante}", productos.asignarVariante).Methods(http.MethodPut)

	pedidos := &pedidoHandlers{service: services.Pedidos}
	api.HandleFunc("/pedidos", pedidos.listar).Methods(http.MethodGet)
	api.HandleFunc("/pedidos/crear", pedidos.crear).Methods(http.MethodPost)
	api.HandleFunc("/pedidos/{id}", pedidos.obtener).Methods(http.MethodGet)
	api.HandleFunc("/pedidos/{id}", pedidos.actualizar).Methods(http.MethodPut)
	api.HandleFunc("/pedidos/{id}", pedidos.eliminar).Methods(http.MethodDelete)
	api.HandleFunc("/pedidos/{id}/estado", pedidos.actualizarEstado).Methods(http.MethodPatch)
	api.HandleFunc("/pedidos/{idPedido}/cliente/{idCliente}/producto/{idProducto}", pedidos.asignarClienteProducto).Methods(http.MethodPut)

	perfiles := &perfilHandlers{service: services.Perfiles}
	api.HandleFunc("/perfiles", perfiles.listar).Methods(http.MethodGet)
	api.HandleFunc("/perfiles", perfiles.guardar).Methods(http.MethodPost)
	api.HandleFunc("/perfiles/{id}", perfiles.obtener).Methods(http.MethodGet)
	api.HandleFunc("/perfiles/{id}", perfiles.actualizar).Methods(http.MethodPut)
	api.HandleFunc("/perfiles/{id}", perfiles.eliminar).Methods(http.MethodDelete)

	return logMiddleware(rateLimitMiddleware(limiter, versionMiddleware(r)))
}

func pathID(r *http.Request, name string) (uuid.UUID, error) {
	return uuid.Parse(mux.Vars(r)[name])
}
