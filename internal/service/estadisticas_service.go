package service

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Desesbraker/Buchonapp/internal/dto"
	"github.com/Desesbraker/Buchonapp/internal/model"
	"github.com/Desesbraker/Buchonapp/internal/storage"
)

// Look-back windows per periodo, in days.
var ventanasPeriodo = map[string]int{
	dto.PeriodoSemana:    7,
	dto.PeriodoMes:       30,
	dto.PeriodoTrimestre: 90,
	dto.PeriodoAnio:      365,
}

var nombresDia = map[time.Weekday]string{
	time.Monday:    "lunes",
	time.Tuesday:   "martes",
	time.Wednesday: "miercoles",
	time.Thursday:  "jueves",
	time.Friday:    "viernes",
	time.Saturday:  "sabado",
	time.Sunday:    "domingo",
}

// EstadisticasService aggregates sales figures for the statistics view.
type EstadisticasService interface {
	Generar(ctx context.Context, periodo string) (*dto.EstadisticasResponse, error)
}

type estadisticasService struct {
	pedidos storage.PedidoStore
	gastos  storage.GastoStore
	ahora   func() time.Time
}

func NewEstadisticasService(pedidos storage.PedidoStore, gastos storage.GastoStore) EstadisticasService {
	return &estadisticasService{pedidos: pedidos, gastos: gastos, ahora: time.Now}
}

// parseFecha reads the date portion of a stored value ("2025-12-15" or an
// ISO timestamp). Unparseable or missing values simply fall out of every
// bucket instead of failing the report.
func parseFecha(s string) (time.Time, bool) {
	if len(s) > 10 {
		s = s[:10]
	}
	t, err := time.Parse("2006-01-02", s)
	return t, err == nil
}

func enVentana(t time.Time, desde, hasta time.Time) bool {
	return !t.Before(desde) && !t.After(hasta)
}

func (s *estadisticasService) Generar(ctx context.Context, periodo string) (*dto.EstadisticasResponse, error) {
	dias, ok := ventanasPeriodo[periodo]
	if !ok {
		return nil, errors.New("periodo inválido: usar semana, mes, trimestre o anio")
	}

	pedidos, err := s.pedidos.Listar(ctx)
	if err != nil {
		return nil, err
	}
	gastos, err := s.gastos.Listar(ctx)
	if err != nil {
		return nil, err
	}

	ahora := s.ahora()
	hasta := ahora
	desde := ahora.AddDate(0, 0, -dias)

	resp := &dto.EstadisticasResponse{
		Periodo:        periodo,
		PorEstado:      map[string]int{},
		PorPlataforma:  map[string]dto.PlataformaStats{},
		EntregasPorDia: map[string]int{},
	}

	for _, p := range pedidos {
		if !pedidoEnVentana(p, desde, hasta) {
			continue
		}
		resp.CantidadPedidos++
		resp.VentasTotales = resp.VentasTotales.Add(p.MontoTotal)
		resp.TotalCobrado = resp.TotalCobrado.Add(p.MontoAbonado)
		resp.TotalPendiente = resp.TotalPendiente.Add(p.MontoPendiente)

		if p.Elaborado {
			resp.Elaborados++
		} else {
			resp.PendientesElaborar++
		}
		resp.PorEstado[p.Estado]++

		if p.RedSocial != "" {
			st := resp.PorPlataforma[p.RedSocial]
			st.Cantidad++
			st.Total = st.Total.Add(p.MontoTotal)
			resp.PorPlataforma[p.RedSocial] = st
		}

		if entrega, ok := parseFecha(p.FechaEntrega); ok {
			resp.EntregasPorDia[nombresDia[entrega.Weekday()]]++
		}
	}

	if resp.CantidadPedidos > 0 {
		resp.TicketPromedio = resp.VentasTotales.
			DivRound(decimal.NewFromInt(int64(resp.CantidadPedidos)), 2)
	}

	for _, g := range gastos {
		if fecha, ok := parseFecha(g.Fecha); ok && enVentana(fecha, desde, hasta) {
			resp.TotalGastos = resp.TotalGastos.Add(g.Monto)
		}
	}
	resp.Utilidad = resp.VentasTotales.Sub(resp.TotalGastos)

	resp.SerieMensual = serieMensual(pedidos, ahora)
	return resp, nil
}

// pedidoEnVentana matches a pedido by its creation-or-delivery date.
func pedidoEnVentana(p model.Pedido, desde, hasta time.Time) bool {
	if creado, ok := parseFecha(p.FechaCreacion); ok && enVentana(creado, desde, hasta) {
		return true
	}
	if entrega, ok := parseFecha(p.FechaEntrega); ok && enVentana(entrega, desde, hasta) {
		return true
	}
	return false
}

// serieMensual buckets total sales by creation month over the trailing six
// calendar months, current month included, independent of the periodo filter.
func serieMensual(pedidos []model.Pedido, ahora time.Time) []dto.MesVentas {
	serie := make([]dto.MesVentas, 0, 6)
	indice := make(map[string]int, 6)
	// Anchor on the first of the month so AddDate never overshoots on a 31st.
	base := time.Date(ahora.Year(), ahora.Month(), 1, 0, 0, 0, 0, time.UTC)
	for i := 5; i >= 0; i-- {
		mes := base.AddDate(0, -i, 0).Format("2006-01")
		indice[mes] = len(serie)
		serie = append(serie, dto.MesVentas{Mes: mes})
	}
	for _, p := range pedidos {
		creado, ok := parseFecha(p.FechaCreacion)
		if !ok {
			continue
		}
		if idx, ok := indice[creado.Format("2006-01")]; ok {
			serie[idx].Total = serie[idx].Total.Add(p.MontoTotal)
		}
	}
	return serie
}
