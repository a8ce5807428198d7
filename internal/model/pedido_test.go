package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRecalcularEstado(t *testing.T) {
	casos := []struct {
		nombre    string
		total     int64
		abonado   int64
		estado    string
		pendiente int64
	}{
		{"sin abono", 45000, 0, EstadoNoPagado, 45000},
		{"abono parcial", 45000, 20000, EstadoAbonoPendiente, 25000},
		{"pago exacto", 45000, 45000, EstadoPagado, 0},
		{"pago de más", 45000, 50000, EstadoPagado, -5000},
	}

	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			p := Pedido{
				MontoTotal:   decimal.NewFromInt(c.total),
				MontoAbonado: decimal.NewFromInt(c.abonado),
			}
			p.RecalcularEstado()
			assert.Equal(t, c.estado, p.Estado)
			assert.True(t, p.MontoPendiente.Equal(decimal.NewFromInt(c.pendiente)),
				"pendiente = %s", p.MontoPendiente)
		})
	}
}

func TestFechaEntregaDia(t *testing.T) {
	p := Pedido{FechaEntrega: "2025-12-15T00:00:00Z"}
	assert.Equal(t, "2025-12-15", p.FechaEntregaDia())

	p.FechaEntrega = "2025-12-15"
	assert.Equal(t, "2025-12-15", p.FechaEntregaDia())

	p.FechaEntrega = ""
	assert.Empty(t, p.FechaEntregaDia())
}
