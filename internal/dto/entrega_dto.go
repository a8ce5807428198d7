package dto

import (
	"github.com/Desesbraker/Buchonapp/internal/model"
)

// GuardarOrdenRequest overwrites the manual ordering of a delivery day.
type GuardarOrdenRequest struct {
	Orden []string `json:"orden" validate:"required,min=1,unique"`
}

// MoverPedidoRequest moves one pedido up or down within its day.
type MoverPedidoRequest struct {
	PedidoID  string `json:"pedidoId"  validate:"required"`
	Direccion string `json:"direccion" validate:"required,oneof=subir bajar"`
}

// PlanDiaResponse is one delivery day: its pedidos in presentation order.
type PlanDiaResponse struct {
	Fecha   string         `json:"fecha"`
	Pedidos []model.Pedido `json:"pedidos"`
}
