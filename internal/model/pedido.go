package model

import (
	"github.com/shopspring/decimal"
)

// Estado de pago de un pedido. Derived from the montos — never set directly.
const (
	EstadoNoPagado       = "no_pagado"
	EstadoAbonoPendiente = "abono_pendiente"
	EstadoPagado         = "pagado"
)

// Tipo de entrega.
const (
	EntregaEnvio  = "envio"
	EntregaRetiro = "retiro"
)

// Plataformas (red social de origen del pedido).
var Plataformas = []string{"whatsapp", "instagram", "facebook", "tiktok", "publicidad", "otro"}

// ProductoPedido is a denormalized line-item snapshot. Editing the catalog
// product afterwards does not touch pedidos already saved with it.
type ProductoPedido struct {
	ProductoID string          `json:"productoId"`
	Nombre     string          `json:"nombre"`
	Precio     decimal.Decimal `json:"precio"`
	Cantidad   int             `json:"cantidad"`
}

// Pedido is the central entity: one customer purchase with payment,
// fulfillment and delivery attributes. Serialized as JSON both into the
// local blob store and into the remote document store, so every field
// carries the original app's camelCase tag.
type Pedido struct {
	ID           string `json:"id"`
	NumeroPedido string `json:"numeroPedido"`

	// Cliente
	Nombre    string `json:"nombre"`
	Alias     string `json:"alias,omitempty"`
	Telefono  string `json:"telefono"`
	Direccion string `json:"direccion,omitempty"`
	RedSocial string `json:"redSocial,omitempty"`

	// Entrega
	FechaReserva string `json:"fechaReserva,omitempty"`
	FechaEntrega string `json:"fechaEntrega"`
	HoraEntrega  string `json:"horaEntrega,omitempty"`
	TipoEntrega  string `json:"tipoEntrega"`

	// Comercial
	MontoTotal     decimal.Decimal `json:"montoTotal"`
	MontoAbonado   decimal.Decimal `json:"montoAbonado"`
	MontoPendiente decimal.Decimal `json:"montoPendiente"`
	Estado         string          `json:"estado"`
	MedioPago      string          `json:"medioPago,omitempty"`

	// Elaboración y entrega — independent of payment state
	Elaborado bool `json:"elaborado"`
	Entregado bool `json:"entregado"`

	Productos           []ProductoPedido `json:"productos,omitempty"`
	Detalles            string           `json:"detalles,omitempty"`
	FrasePersonalizada  string           `json:"frasePersonalizada,omitempty"`
	Comprobantes        []string         `json:"comprobantes,omitempty"`
	ImagenesAdicionales []string         `json:"imagenesAdicionales,omitempty"`

	FechaCreacion      string `json:"fechaCreacion,omitempty"`
	FechaActualizacion string `json:"fechaActualizacion,omitempty"`
}

// RecalcularEstado recomputes montoPendiente and estado from the montos.
// Must be called on every write path — estado is not a source of truth.
func (p *Pedido) RecalcularEstado() {
	p.MontoPendiente = p.MontoTotal.Sub(p.MontoAbonado)
	switch {
	case p.MontoAbonado.IsZero():
		p.Estado = EstadoNoPagado
	case p.MontoAbonado.GreaterThanOrEqual(p.MontoTotal):
		p.Estado = EstadoPagado
	default:
		p.Estado = EstadoAbonoPendiente
	}
}

// FechaEntregaDia returns the date portion of fechaEntrega ("2025-12-15"),
// dropping any time-of-day or timezone suffix the stored value may carry.
func (p *Pedido) FechaEntregaDia() string {
	if len(p.FechaEntrega) > 10 {
		return p.FechaEntrega[:10]
	}
	return p.FechaEntrega
}
