package model

import (
	"github.com/shopspring/decimal"
)

// Gasto is a business expense, recorded so the statistics view can report
// utilidad alongside sales.
type Gasto struct {
	ID          string          `json:"id"`
	Descripcion string          `json:"descripcion"`
	Monto       decimal.Decimal `json:"monto"`
	Fecha       string          `json:"fecha"`

	FechaCreacion string `json:"fechaCreacion,omitempty"`
}
