package dto

import (
	"github.com/shopspring/decimal"
)

// Periodos aceptados por el selector de estadísticas.
const (
	PeriodoSemana    = "semana"
	PeriodoMes       = "mes"
	PeriodoTrimestre = "trimestre"
	PeriodoAnio      = "anio"
)

// PlataformaStats is the per-channel breakdown.
type PlataformaStats struct {
	Cantidad int             `json:"cantidad"`
	Total    decimal.Decimal `json:"total"`
}

// MesVentas is one bucket of the trailing monthly series.
type MesVentas struct {
	Mes   string          `json:"mes"` // "2026-08"
	Total decimal.Decimal `json:"total"`
}

// EstadisticasResponse aggregates the selected look-back window, plus a
// trailing six-calendar-month sales series that ignores the periodo filter.
type EstadisticasResponse struct {
	Periodo string `json:"periodo"`

	VentasTotales  decimal.Decimal `json:"ventasTotales"`
	TotalCobrado   decimal.Decimal `json:"totalCobrado"`
	TotalPendiente decimal.Decimal `json:"totalPendiente"`

	CantidadPedidos int             `json:"cantidadPedidos"`
	TicketPromedio  decimal.Decimal `json:"ticketPromedio"`

	Elaborados         int `json:"elaborados"`
	PendientesElaborar int `json:"pendientesElaborar"`

	PorEstado     map[string]int             `json:"porEstado"`
	PorPlataforma map[string]PlataformaStats `json:"porPlataforma"`

	// EntregasPorDia counts deliveries per weekday (lunes…domingo).
	EntregasPorDia map[string]int `json:"entregasPorDia"`

	SerieMensual []MesVentas `json:"serieMensual"`

	TotalGastos decimal.Decimal `json:"totalGastos"`
	Utilidad    decimal.Decimal `json:"utilidad"`
}
