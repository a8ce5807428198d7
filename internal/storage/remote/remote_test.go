//go:build integration

package remote

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"

	"github.com/Desesbraker/Buchonapp/internal/model"
)

// levantarBackend starts disposable Postgres and Redis containers and connects
// a Remote against them. Requires Docker; run with -tags integration.
func levantarBackend(t *testing.T) *Remote {
	t.Helper()
	ctx := context.Background()

	pg, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("buchonapp"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		tcpostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pg.Terminate(ctx) })

	databaseURL, err := pg.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	rd, err := tcredis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err)
	t.Cleanup(func() { _ = rd.Terminate(ctx) })

	redisURL, err := rd.ConnectionString(ctx)
	require.NoError(t, err)

	r, err := New(ctx, databaseURL, redisURL)
	require.NoError(t, err)
	return r
}

func TestPedidosCRUD(t *testing.T) {
	r := levantarBackend(t)
	store := r.Pedidos()
	ctx := context.Background()

	p1, err := store.Guardar(ctx, &model.Pedido{Nombre: "Ana", MontoTotal: decimal.NewFromInt(45000)})
	require.NoError(t, err)
	require.NotEmpty(t, p1.ID)

	p2, err := store.Guardar(ctx, &model.Pedido{Nombre: "Bruno"})
	require.NoError(t, err)

	pedidos, err := store.Listar(ctx)
	require.NoError(t, err)
	require.Len(t, pedidos, 2)

	p1.Nombre = "Ana Torres"
	require.NoError(t, store.Actualizar(ctx, p1))

	// Actualizar un id ausente no crea documentos
	require.NoError(t, store.Actualizar(ctx, &model.Pedido{ID: "no-existe", Nombre: "Nadie"}))

	pedidos, err = store.Listar(ctx)
	require.NoError(t, err)
	require.Len(t, pedidos, 2)
	porID := map[string]model.Pedido{}
	for _, p := range pedidos {
		porID[p.ID] = p
	}
	assert.Equal(t, "Ana Torres", porID[p1.ID].Nombre)

	require.NoError(t, store.Eliminar(ctx, p2.ID))
	require.NoError(t, store.Eliminar(ctx, "no-existe"))

	pedidos, err = store.Listar(ctx)
	require.NoError(t, err)
	require.Len(t, pedidos, 1)
	assert.Equal(t, p1.ID, pedidos[0].ID)
}

func TestSiguienteNumeroEsAtomico(t *testing.T) {
	r := levantarBackend(t)
	store := r.Pedidos()

	const n = 20
	var wg sync.WaitGroup
	numeros := make(chan string, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			num, err := store.SiguienteNumero(context.Background())
			assert.NoError(t, err)
			numeros <- num
		}()
	}
	wg.Wait()
	close(numeros)

	vistos := map[string]bool{}
	for num := range numeros {
		assert.False(t, vistos[num], "número repetido: %s", num)
		vistos[num] = true
	}
	assert.Len(t, vistos, n)
	assert.True(t, vistos["P001"])
	assert.True(t, vistos["P020"])
}

func TestSuscripcionNotificaCambios(t *testing.T) {
	r := levantarBackend(t)
	ctx := context.Background()

	recibido := make(chan []model.Pedido, 1)
	cancel, err := r.SuscribirPedidos(ctx, func(pedidos []model.Pedido) {
		select {
		case recibido <- pedidos:
		default:
		}
	})
	require.NoError(t, err)
	defer cancel()

	_, err = r.Pedidos().Guardar(ctx, &model.Pedido{Nombre: "Ana"})
	require.NoError(t, err)

	select {
	case pedidos := <-recibido:
		require.Len(t, pedidos, 1)
		assert.Equal(t, "Ana", pedidos[0].Nombre)
	case <-time.After(10 * time.Second):
		t.Fatal("no llegó la notificación de cambio")
	}
}

func TestInventarioSingleton(t *testing.T) {
	r := levantarBackend(t)
	store := r.Inventario()
	ctx := context.Background()

	inv, err := store.Obtener(ctx)
	require.NoError(t, err)
	assert.Equal(t, 25, inv.RosasPorCaja)

	inv.RosasDisponibles = 80
	inv.CajasCompradas = 4
	require.NoError(t, store.Guardar(ctx, inv))

	leido, err := store.Obtener(ctx)
	require.NoError(t, err)
	assert.Equal(t, 80, leido.RosasDisponibles)
	assert.Equal(t, 4, leido.CajasCompradas)
}

func TestOrdenEntregasPorFecha(t *testing.T) {
	r := levantarBackend(t)
	store := r.Entregas()
	ctx := context.Background()

	orden, err := store.ObtenerOrden(ctx, "2025-12-15")
	require.NoError(t, err)
	assert.Empty(t, orden)

	require.NoError(t, store.GuardarOrden(ctx, "2025-12-15", []string{"a", "b"}))
	orden, err = store.ObtenerOrden(ctx, "2025-12-15")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, orden)
}
