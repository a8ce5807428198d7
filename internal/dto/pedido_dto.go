package dto

import (
	"github.com/shopspring/decimal"
)

// ProductoPedidoRequest is one line item as entered in the order form. The
// nombre/precio pair is snapshotted into the pedido — later catalog edits do
// not touch it.
type ProductoPedidoRequest struct {
	ProductoID string          `json:"productoId"`
	Nombre     string          `json:"nombre"     validate:"required"`
	Precio     decimal.Decimal `json:"precio"     validate:"min=0"`
	Cantidad   int             `json:"cantidad"   validate:"required,gt=0"`
}

// PedidoRequest creates or fully replaces a pedido. There is no partial
// update: editing re-submits the whole form.
type PedidoRequest struct {
	Nombre    string `json:"nombre"    validate:"required,min=2,max=100"`
	Alias     string `json:"alias"     validate:"max=100"`
	Telefono  string `json:"telefono"  validate:"required"`
	Direccion string `json:"direccion"`
	RedSocial string `json:"redSocial" validate:"omitempty,oneof=whatsapp instagram facebook tiktok publicidad otro"`

	FechaReserva string `json:"fechaReserva" validate:"omitempty,datetime=2006-01-02"`
	FechaEntrega string `json:"fechaEntrega" validate:"required"`
	HoraEntrega  string `json:"horaEntrega"  validate:"omitempty,datetime=15:04"`
	TipoEntrega  string `json:"tipoEntrega"  validate:"required,oneof=envio retiro"`

	MontoTotal   decimal.Decimal `json:"montoTotal"   validate:"required,gt=0"`
	MontoAbonado decimal.Decimal `json:"montoAbonado" validate:"min=0"`
	MedioPago    string          `json:"medioPago"`

	Productos           []ProductoPedidoRequest `json:"productos" validate:"dive"`
	Detalles            string                  `json:"detalles"`
	FrasePersonalizada  string                  `json:"frasePersonalizada"`
	Comprobantes        []string                `json:"comprobantes"`
	ImagenesAdicionales []string                `json:"imagenesAdicionales"`
}

// FiltrosPedido are the list-view toggles. Within a group the active toggles
// are OR'd; across groups AND'd; a group with nothing active passes all.
type FiltrosPedido struct {
	Busqueda string `form:"busqueda"`

	// Estado de pago
	AbonoPendiente bool `form:"abono_pendiente"`
	NoPagado       bool `form:"no_pagado"`
	Pagado         bool `form:"pagado"`

	// Red social
	Instagram bool `form:"instagram"`
	Whatsapp  bool `form:"whatsapp"`
	Facebook  bool `form:"facebook"`
	Tiktok    bool `form:"tiktok"`

	// Elaboración / entrega — paired toggles; both on behaves like both off
	Elaborado         bool `form:"elaborado"`
	PendienteElaborar bool `form:"pendiente_elaborar"`
	Entregado         bool `form:"entregado"`
	PendienteEntregar bool `form:"pendiente_entregar"`

	// Orden ascendente por fecha de entrega
	PorFecha bool `form:"por_fecha"`
}
