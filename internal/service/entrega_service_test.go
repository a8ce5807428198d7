package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Desesbraker/Buchonapp/internal/model"
)

type entregaStoreStub struct {
	ordenes map[string][]string
}

func (s *entregaStoreStub) ObtenerOrden(_ context.Context, fecha string) ([]string, error) {
	return s.ordenes[fecha], nil
}

func (s *entregaStoreStub) GuardarOrden(_ context.Context, fecha string, ids []string) error {
	s.ordenes[fecha] = ids
	return nil
}

func pedidoEntrega(id, fecha, hora string) model.Pedido {
	return model.Pedido{
		ID:           id,
		NumeroPedido: "P" + id,
		Nombre:       "Cliente " + id,
		FechaEntrega: fecha,
		HoraEntrega:  hora,
		TipoEntrega:  model.EntregaEnvio,
		Direccion:    "Calle " + id,
	}
}

func TestOrdenarEntregasDiaSinSecuencia(t *testing.T) {
	delDia := []model.Pedido{
		pedidoEntrega("a", "2025-12-15", "18:00"),
		pedidoEntrega("b", "2025-12-15", "09:00"),
		pedidoEntrega("c", "2025-12-15", "12:30"),
	}

	resultado := OrdenarEntregasDia(delDia, nil)
	assert.Equal(t, []string{"b", "c", "a"}, ids(resultado))
	// La entrada no se reordena
	assert.Equal(t, "a", delDia[0].ID)
}

func TestOrdenarEntregasDiaConSecuencia(t *testing.T) {
	delDia := []model.Pedido{
		pedidoEntrega("a", "2025-12-15", "18:00"),
		pedidoEntrega("b", "2025-12-15", "09:00"),
		pedidoEntrega("c", "2025-12-15", "12:30"),
	}

	// La secuencia manual manda; los ids desconocidos y repetidos se ignoran
	resultado := OrdenarEntregasDia(delDia, []string{"c", "x", "a", "c"})
	assert.Equal(t, []string{"c", "a", "b"}, ids(resultado))
}

func TestOrdenarEntregasDiaPedidosNuevosAlFinal(t *testing.T) {
	delDia := []model.Pedido{
		pedidoEntrega("nuevo2", "2025-12-15", "20:00"),
		pedidoEntrega("a", "2025-12-15", "18:00"),
		pedidoEntrega("nuevo1", "2025-12-15", "08:00"),
	}

	// Los pedidos creados después del último reordenamiento siguen a la
	// secuencia, ordenados por hora entre sí.
	resultado := OrdenarEntregasDia(delDia, []string{"a"})
	assert.Equal(t, []string{"a", "nuevo1", "nuevo2"}, ids(resultado))
}

func nuevoEntregaService(pedidos []model.Pedido) (EntregaService, *entregaStoreStub) {
	store := &pedidoStoreStub{pedidos: pedidos}
	entregas := &entregaStoreStub{ordenes: map[string][]string{}}
	return NewEntregaService(store, entregas), entregas
}

func TestPlanDelDiaAgrupaPorFecha(t *testing.T) {
	svc, _ := nuevoEntregaService([]model.Pedido{
		pedidoEntrega("a", "2025-12-15", "10:00"),
		pedidoEntrega("b", "2025-12-16", "11:00"),
		pedidoEntrega("c", "2025-12-15T00:00:00Z", "09:00"),
	})

	plan, err := svc.PlanDelDia(context.Background(), "2025-12-15")
	require.NoError(t, err)
	assert.Equal(t, "2025-12-15", plan.Fecha)
	// El sufijo horario del valor almacenado no saca al pedido de su día
	assert.Equal(t, []string{"c", "a"}, ids(plan.Pedidos))
}

func TestMoverIntercambiaYPersiste(t *testing.T) {
	svc, entregas := nuevoEntregaService([]model.Pedido{
		pedidoEntrega("a", "2025-12-15", "09:00"),
		pedidoEntrega("b", "2025-12-15", "12:00"),
		pedidoEntrega("c", "2025-12-15", "18:00"),
	})

	plan, err := svc.Mover(context.Background(), "2025-12-15", "b", "subir")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a", "c"}, ids(plan.Pedidos))
	assert.Equal(t, []string{"b", "a", "c"}, entregas.ordenes["2025-12-15"])

	plan, err = svc.Mover(context.Background(), "2025-12-15", "a", "bajar")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c", "a"}, ids(plan.Pedidos))
}

func TestMoverFueraDeRangoNoHaceNada(t *testing.T) {
	svc, entregas := nuevoEntregaService([]model.Pedido{
		pedidoEntrega("a", "2025-12-15", "09:00"),
		pedidoEntrega("b", "2025-12-15", "12:00"),
	})

	// El primero no puede subir más
	plan, err := svc.Mover(context.Background(), "2025-12-15", "a", "subir")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids(plan.Pedidos))
	assert.Empty(t, entregas.ordenes["2025-12-15"])
}

func TestMoverPedidoDeOtroDia(t *testing.T) {
	svc, _ := nuevoEntregaService([]model.Pedido{
		pedidoEntrega("a", "2025-12-15", "09:00"),
	})

	_, err := svc.Mover(context.Background(), "2025-12-16", "a", "subir")
	assert.Error(t, err)
}

func TestHojaDeRutaGeneraPDF(t *testing.T) {
	retiro := pedidoEntrega("b", "2025-12-15", "16:00")
	retiro.TipoEntrega = model.EntregaRetiro
	retiro.Direccion = ""

	svc, _ := nuevoEntregaService([]model.Pedido{
		pedidoEntrega("a", "2025-12-15", "09:00"),
		retiro,
	})

	pdf, err := svc.HojaDeRuta(context.Background(), "2025-12-15")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")), "la salida debe ser un PDF")
}
