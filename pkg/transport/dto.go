package transport

import (
	"time"

	"github.com/google/uuid"

	"github.com/Cristh27/SoftwareFinal/pkg/domain/model"
)

// Wire DTOs and their hand-written conversions. Every field copy is
// explicit so the mapping stays auditable.

type ClienteDTO struct {
	ID                string `json:"id,omitempty"`
	Nombre            string `json:"nombre"`
	CorreoElectronico string `json:"correoElectronico"`
	NumeroTelefonico  string `json:"numeroTelefonico"`
}

func clienteToDTO(cliente *model.Cliente) ClienteDTO {
	return ClienteDTO{
		ID:                cliente.ID.String(),
		Nombre:            cliente.Nombre,
		CorreoElectronico: cliente.CorreoElectronico,
		NumeroTelefonico:  cliente.NumeroTelefonico,
	}
}

func clienteFromDTO(dto ClienteDTO) *model.Cliente {
	return &model.Cliente{
		Nombre:            dto.Nombre,
		CorreoElectronico: dto.CorreoElectronico,
		NumeroTelefonico:  dto.NumeroTelefonico,
	}
}

func clientesToDTO(clientes []*model.Cliente) []ClienteDTO {
	dtos := make([]ClienteDTO, 0, len(clientes))
	for _, cliente := range clientes {
		dtos = append(dtos, clienteToDTO(cliente))
	}
	return dtos
}

type ProductoDTO struct {
	ID          string  `json:"id,omitempty"`
	Nombre      string  `json:"nombre"`
	Descripcion string  `json:"descripcion"`
	Precio      float64 `json:"precio"`
	VarianteID  *string `json:"varianteId,omitempty"`
}

func productoToDTO(producto *model.Producto) ProductoDTO {
	return ProductoDTO{
		ID:          producto.ID.String(),
		Nombre:      producto.Nombre,
		Descripcion: producto.Descripcion,
		Precio:      producto.Precio,
		VarianteID:  uuidToString(producto.VarianteID),
	}
}

func productoFromDTO(dto ProductoDTO) *model.Producto {
	return &model.Producto{
		Nombre:      dto.Nombre,
		Descripcion: dto.Descripcion,
		Precio:      dto.Precio,
	}
}

func productosToDTO(productos []*model.Producto) []ProductoDTO {
	dtos := make([]ProductoDTO, 0, len(productos))
	for _, producto := range productos {
		dtos = append(dtos, productoToDTO(producto))
	}
	return dtos
}

type PerfilDTO struct {
	ID           string  `json:"id,omitempty"`
	Preferencias string  `json:"preferencias"`
	ClienteID    *string `json:"clienteId,omitempty"`
}

func perfilToDTO(perfil *model.Perfil) PerfilDTO {
	return PerfilDTO{
		ID:           perfil.ID.String(),
		Preferencias: perfil.Preferencias,
		ClienteID:    uuidToString(perfil.ClienteID),
	}
}

func perfilFromDTO(dto PerfilDTO) (*model.Perfil, error) {
	clienteID, err := uuidFromString(dto.ClienteID)
	if err != nil {
		return nil, err
	}
	return &model.Perfil{
		Preferencias: dto.Preferencias,
		ClienteID:    clienteID,
	}, nil
}

func perfilesToDTO(perfiles []*model.Perfil) []PerfilDTO {
	dtos := make([]PerfilDTO, 0, len(perfiles))
	for _, perfil := range perfiles {
		dtos = append(dtos, perfilToDTO(perfil))
	}
	return dtos
}

type PedidoDTO struct {
	ID          string    `json:"id,omitempty"`
	Cantidad    int       `json:"cantidad"`
	Fecha       time.Time `json:"fecha"`
	Estado      string    `json:"estado"`
	ClienteID   *string   `json:"clienteId,omitempty"`
	ProductoIDs []string  `json:"productoIds"`
}

func pedidoToDTO(pedido *model.Pedido) PedidoDTO {
	productoIDs := make([]string, 0, len(pedido.ProductoIDs))
	for _, id := range pedido.ProductoIDs {
		productoIDs = append(productoIDs, id.String())
	}
	return PedidoDTO{
		ID:          pedido.ID.String(),
		Cantidad:    pedido.Cantidad,
		Fecha:       pedido.Fecha,
		Estado:      pedido.Estado,
		ClienteID:   uuidToString(pedido.ClienteID),
		ProductoIDs: productoIDs,
	}
}

func pedidoFromDTO(dto PedidoDTO) (*model.Pedido, error) {
	clienteID, err := uuidFromString(dto.ClienteID)
	if err != nil {
		return nil, err
	}
	productoIDs := make([]uuid.UUID, 0, len(dto.ProductoIDs))
	for _, raw := range dto.ProductoIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, err
		}
		productoIDs = append(productoIDs, id)
	}
	return &model.Pedido{
		Cantidad:    dto.Cantidad,
		Fecha:       dto.Fecha,
		Estado:      dto.Estado,
		ClienteID:   clienteID,
		ProductoIDs: productoIDs,
	}, nil
}

func pedidosToDTO(pedidos []*model.Pedido) []PedidoDTO {
	dtos := make([]PedidoDTO, 0, len(pedidos))
	for _, pedido := range pedidos {
		dtos = append(dtos, pedidoToDTO(pedido))
	}
	return dtos
}

func uuidToString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func uuidFromString(s *string) (*uuid.UUID, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
