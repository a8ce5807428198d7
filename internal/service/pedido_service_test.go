package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Desesbraker/Buchonapp/internal/dto"
	"github.com/Desesbraker/Buchonapp/internal/model"
)

// pedidoStoreStub mimics the blob-store contract in memory: prepend on save,
// replace-or-ignore on update, sequential counter.
type pedidoStoreStub struct {
	pedidos  []model.Pedido
	contador int
}

func (s *pedidoStoreStub) Guardar(_ context.Context, p *model.Pedido) (*model.Pedido, error) {
	p.ID = fmt.Sprintf("id-%d", len(s.pedidos)+1)
	p.FechaCreacion = "2025-12-01T10:00:00Z"
	s.pedidos = append([]model.Pedido{*p}, s.pedidos...)
	return p, nil
}

func (s *pedidoStoreStub) Listar(_ context.Context) ([]model.Pedido, error) {
	out := make([]model.Pedido, len(s.pedidos))
	copy(out, s.pedidos)
	return out, nil
}

func (s *pedidoStoreStub) Actualizar(_ context.Context, p *model.Pedido) error {
	for i := range s.pedidos {
		if s.pedidos[i].ID == p.ID {
			s.pedidos[i] = *p
			return nil
		}
	}
	return nil
}

func (s *pedidoStoreStub) Eliminar(_ context.Context, id string) error {
	filtrados := s.pedidos[:0]
	for _, p := range s.pedidos {
		if p.ID != id {
			filtrados = append(filtrados, p)
		}
	}
	s.pedidos = filtrados
	return nil
}

func (s *pedidoStoreStub) SiguienteNumero(_ context.Context) (string, error) {
	s.contador++
	return fmt.Sprintf("P%03d", s.contador), nil
}

func requestDePrueba() dto.PedidoRequest {
	return dto.PedidoRequest{
		Nombre:       "Ana Torres",
		Telefono:     "5512345678",
		Direccion:    "Av. Siempre Viva 742",
		RedSocial:    "instagram",
		FechaEntrega: "2025-12-15",
		HoraEntrega:  "17:30",
		TipoEntrega:  model.EntregaEnvio,
		MontoTotal:   decimal.NewFromInt(45000),
		MontoAbonado: decimal.NewFromInt(20000),
		Productos: []dto.ProductoPedidoRequest{
			{ProductoID: "prod-1", Nombre: "Ramo buchón 100 rosas", Precio: decimal.NewFromInt(45000), Cantidad: 1},
		},
	}
}

func TestCrearDerivaEstadoDePago(t *testing.T) {
	casos := []struct {
		nombre    string
		abonado   int64
		estado    string
		pendiente int64
	}{
		{"sin abono", 0, model.EstadoNoPagado, 45000},
		{"abono parcial", 20000, model.EstadoAbonoPendiente, 25000},
		{"pago completo", 45000, model.EstadoPagado, 0},
		{"abono mayor al total", 50000, model.EstadoPagado, -5000},
	}

	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			svc := NewPedidoService(&pedidoStoreStub{})
			req := requestDePrueba()
			req.MontoAbonado = decimal.NewFromInt(c.abonado)

			p, err := svc.Crear(context.Background(), req)
			require.NoError(t, err)
			assert.Equal(t, c.estado, p.Estado)
			assert.True(t, p.MontoPendiente.Equal(decimal.NewFromInt(c.pendiente)),
				"pendiente = %s", p.MontoPendiente)
		})
	}
}

func TestCrearAsignaNumerosCrecientes(t *testing.T) {
	svc := NewPedidoService(&pedidoStoreStub{})

	p1, err := svc.Crear(context.Background(), requestDePrueba())
	require.NoError(t, err)
	p2, err := svc.Crear(context.Background(), requestDePrueba())
	require.NoError(t, err)

	assert.Equal(t, "P001", p1.NumeroPedido)
	assert.Equal(t, "P002", p2.NumeroPedido)
}

func TestCrearEnvioRequiereDireccion(t *testing.T) {
	svc := NewPedidoService(&pedidoStoreStub{})
	req := requestDePrueba()
	req.Direccion = ""

	_, err := svc.Crear(context.Background(), req)
	assert.Error(t, err)
}

func TestCrearRetiroDescartaDireccion(t *testing.T) {
	svc := NewPedidoService(&pedidoStoreStub{})
	req := requestDePrueba()
	req.TipoEntrega = model.EntregaRetiro
	req.HoraEntrega = ""

	p, err := svc.Crear(context.Background(), req)
	require.NoError(t, err)
	assert.Empty(t, p.Direccion)
	assert.Equal(t, "12:00", p.HoraEntrega)
}

func TestActualizarPreservaIdentidad(t *testing.T) {
	store := &pedidoStoreStub{}
	svc := NewPedidoService(store)

	creado, err := svc.Crear(context.Background(), requestDePrueba())
	require.NoError(t, err)

	_, err = svc.ToggleElaborado(context.Background(), creado.ID)
	require.NoError(t, err)

	req := requestDePrueba()
	req.Nombre = "Ana Torres González"
	req.MontoAbonado = decimal.NewFromInt(45000)

	editado, err := svc.Actualizar(context.Background(), creado.ID, req)
	require.NoError(t, err)

	assert.Equal(t, creado.ID, editado.ID)
	assert.Equal(t, creado.NumeroPedido, editado.NumeroPedido)
	assert.Equal(t, creado.FechaCreacion, editado.FechaCreacion)
	assert.Equal(t, "Ana Torres González", editado.Nombre)
	assert.Equal(t, model.EstadoPagado, editado.Estado)
	// Las banderas de cumplimiento sobreviven a la edición
	assert.True(t, editado.Elaborado)
}

func TestActualizarInexistente(t *testing.T) {
	svc := NewPedidoService(&pedidoStoreStub{})

	_, err := svc.Actualizar(context.Background(), "no-existe", requestDePrueba())
	assert.ErrorIs(t, err, ErrPedidoNoEncontrado)
}

func TestToggleCambiaUnaSolaBandera(t *testing.T) {
	store := &pedidoStoreStub{}
	svc := NewPedidoService(store)

	creado, err := svc.Crear(context.Background(), requestDePrueba())
	require.NoError(t, err)
	estadoOriginal := creado.Estado

	p, err := svc.ToggleElaborado(context.Background(), creado.ID)
	require.NoError(t, err)
	assert.True(t, p.Elaborado)
	assert.False(t, p.Entregado)
	assert.Equal(t, estadoOriginal, p.Estado)

	p, err = svc.ToggleEntregado(context.Background(), creado.ID)
	require.NoError(t, err)
	assert.True(t, p.Elaborado)
	assert.True(t, p.Entregado)

	// Segundo toggle vuelve al estado anterior
	p, err = svc.ToggleElaborado(context.Background(), creado.ID)
	require.NoError(t, err)
	assert.False(t, p.Elaborado)
	assert.True(t, p.Entregado)
}

func TestToggleInexistente(t *testing.T) {
	svc := NewPedidoService(&pedidoStoreStub{})

	_, err := svc.ToggleEntregado(context.Background(), "no-existe")
	assert.ErrorIs(t, err, ErrPedidoNoEncontrado)
}
