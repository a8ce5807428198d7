package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Desesbraker/Buchonapp/internal/model"
)

type gastoStoreStub struct {
	gastos []model.Gasto
}

func (s *gastoStoreStub) Guardar(_ context.Context, g *model.Gasto) (*model.Gasto, error) {
	s.gastos = append([]model.Gasto{*g}, s.gastos...)
	return g, nil
}

func (s *gastoStoreStub) Listar(_ context.Context) ([]model.Gasto, error) {
	return s.gastos, nil
}

func (s *gastoStoreStub) Eliminar(_ context.Context, id string) error {
	filtrados := s.gastos[:0]
	for _, g := range s.gastos {
		if g.ID != id {
			filtrados = append(filtrados, g)
		}
	}
	s.gastos = filtrados
	return nil
}

func pedidoVenta(id, creado, entrega string, total, abonado int64) model.Pedido {
	p := model.Pedido{
		ID:            id,
		FechaCreacion: creado,
		FechaEntrega:  entrega,
		MontoTotal:    decimal.NewFromInt(total),
		MontoAbonado:  decimal.NewFromInt(abonado),
	}
	p.RecalcularEstado()
	return p
}

// nuevoEstadisticasService fixes the clock so the windows are deterministic.
func nuevoEstadisticasService(pedidos []model.Pedido, gastos []model.Gasto) EstadisticasService {
	return &estadisticasService{
		pedidos: &pedidoStoreStub{pedidos: pedidos},
		gastos:  &gastoStoreStub{gastos: gastos},
		ahora: func() time.Time {
			return time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)
		},
	}
}

func TestGenerarPeriodoInvalido(t *testing.T) {
	svc := nuevoEstadisticasService(nil, nil)

	_, err := svc.Generar(context.Background(), "quincena")
	assert.Error(t, err)
}

func TestGenerarAgregaSoloLaVentana(t *testing.T) {
	dentro := pedidoVenta("1", "2025-03-10T09:00:00Z", "2025-03-12", 10000, 10000)
	dentro.Elaborado = true
	dentro.RedSocial = "instagram"

	fuera := pedidoVenta("2", "2025-01-20T09:00:00Z", "2025-01-22", 5000, 0)

	// Creado hace meses pero con entrega dentro de la ventana: cuenta
	porEntrega := pedidoVenta("3", "2024-08-01T09:00:00Z", "2025-03-14", 3000, 1000)
	porEntrega.RedSocial = "instagram"

	gastos := []model.Gasto{
		{ID: "g1", Descripcion: "Rosas", Monto: decimal.NewFromInt(2000), Fecha: "2025-03-01"},
		{ID: "g2", Descripcion: "Cajas", Monto: decimal.NewFromInt(9999), Fecha: "2025-01-01"},
	}

	svc := nuevoEstadisticasService([]model.Pedido{dentro, fuera, porEntrega}, gastos)
	resp, err := svc.Generar(context.Background(), "mes")
	require.NoError(t, err)

	assert.Equal(t, 2, resp.CantidadPedidos)
	assert.True(t, resp.VentasTotales.Equal(decimal.NewFromInt(13000)), "ventas = %s", resp.VentasTotales)
	assert.True(t, resp.TotalCobrado.Equal(decimal.NewFromInt(11000)), "cobrado = %s", resp.TotalCobrado)
	assert.True(t, resp.TotalPendiente.Equal(decimal.NewFromInt(2000)), "pendiente = %s", resp.TotalPendiente)
	assert.True(t, resp.TicketPromedio.Equal(decimal.NewFromInt(6500)), "ticket = %s", resp.TicketPromedio)

	assert.Equal(t, 1, resp.Elaborados)
	assert.Equal(t, 1, resp.PendientesElaborar)
	assert.Equal(t, map[string]int{
		model.EstadoPagado:         1,
		model.EstadoAbonoPendiente: 1,
	}, resp.PorEstado)

	instagram := resp.PorPlataforma["instagram"]
	assert.Equal(t, 2, instagram.Cantidad)
	assert.True(t, instagram.Total.Equal(decimal.NewFromInt(13000)))

	// 2025-03-12 fue miércoles, 2025-03-14 viernes
	assert.Equal(t, map[string]int{"miercoles": 1, "viernes": 1}, resp.EntregasPorDia)

	assert.True(t, resp.TotalGastos.Equal(decimal.NewFromInt(2000)), "gastos = %s", resp.TotalGastos)
	assert.True(t, resp.Utilidad.Equal(decimal.NewFromInt(11000)), "utilidad = %s", resp.Utilidad)
}

func TestGenerarSerieMensual(t *testing.T) {
	pedidos := []model.Pedido{
		pedidoVenta("1", "2025-03-10T09:00:00Z", "2025-03-12", 10000, 0),
		pedidoVenta("2", "2025-01-20T09:00:00Z", "2025-01-22", 5000, 0),
		// Fuera de los seis meses: no aparece en la serie
		pedidoVenta("3", "2024-08-01T09:00:00Z", "2024-08-03", 7000, 0),
	}

	svc := nuevoEstadisticasService(pedidos, nil)
	resp, err := svc.Generar(context.Background(), "semana")
	require.NoError(t, err)

	require.Len(t, resp.SerieMensual, 6)
	meses := make([]string, 6)
	for i, m := range resp.SerieMensual {
		meses[i] = m.Mes
	}
	assert.Equal(t, []string{"2024-10", "2024-11", "2024-12", "2025-01", "2025-02", "2025-03"}, meses)

	// La serie ignora el periodo seleccionado
	assert.True(t, resp.SerieMensual[3].Total.Equal(decimal.NewFromInt(5000)))
	assert.True(t, resp.SerieMensual[4].Total.IsZero())
	assert.True(t, resp.SerieMensual[5].Total.Equal(decimal.NewFromInt(10000)))
}
