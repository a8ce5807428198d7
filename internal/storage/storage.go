// Package storage is the persistence façade: one stable CRUD contract per
// entity type, with two interchangeable backends behind it. The backend is
// chosen exactly once, at startup, by New — callers never re-check which
// mode they are running in.
package storage

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/Desesbraker/Buchonapp/internal/config"
	"github.com/Desesbraker/Buchonapp/internal/model"
	"github.com/Desesbraker/Buchonapp/internal/storage/local"
	"github.com/Desesbraker/Buchonapp/internal/storage/remote"
)

// Backend modes.
const (
	ModoLocal = "local"
	ModoSync  = "sync"
)

// PedidoStore is the data access contract for pedidos.
type PedidoStore interface {
	Guardar(ctx context.Context, p *model.Pedido) (*model.Pedido, error)
	Listar(ctx context.Context) ([]model.Pedido, error)
	Actualizar(ctx context.Context, p *model.Pedido) error
	Eliminar(ctx context.Context, id string) error
	// SiguienteNumero allocates the next human-facing sequential code (P001…).
	SiguienteNumero(ctx context.Context) (string, error)
}

// PedidoListener receives the full current pedido collection on every change.
// Alias so backend packages can implement PedidoSuscriptor without importing
// this package back.
type PedidoListener = func([]model.Pedido)

// PedidoSuscriptor is implemented only by backends with change notification.
type PedidoSuscriptor interface {
	// SuscribirPedidos invokes fn with the complete collection after each
	// remote write until cancel is called or ctx is done.
	SuscribirPedidos(ctx context.Context, fn PedidoListener) (cancel func(), err error)
}

type ProductoStore interface {
	Agregar(ctx context.Context, p *model.Producto) (*model.Producto, error)
	Listar(ctx context.Context) ([]model.Producto, error)
	Actualizar(ctx context.Context, p *model.Producto) error
	Eliminar(ctx context.Context, id string) error
}

type CategoriaStore interface {
	Agregar(ctx context.Context, c *model.Categoria) (*model.Categoria, error)
	Listar(ctx context.Context) ([]model.Categoria, error)
	Eliminar(ctx context.Context, id string) error
}

type GastoStore interface {
	Guardar(ctx context.Context, g *model.Gasto) (*model.Gasto, error)
	Listar(ctx context.Context) ([]model.Gasto, error)
	Eliminar(ctx context.Context, id string) error
}

// EntregaStore persists the per-date manual delivery ordering.
type EntregaStore interface {
	// ObtenerOrden returns the stored id list for a date, or empty when the
	// date has never been reordered.
	ObtenerOrden(ctx context.Context, fecha string) ([]string, error)
	// GuardarOrden overwrites the full id list for a date.
	GuardarOrden(ctx context.Context, fecha string, ids []string) error
}

// InventarioStore persists the singleton rose counter.
type InventarioStore interface {
	Obtener(ctx context.Context) (*model.Inventario, error)
	Guardar(ctx context.Context, inv *model.Inventario) error
}

// Store bundles every entity store for one chosen backend. Suscriptor is nil
// in local mode — there is nobody to receive changes from.
type Store struct {
	Modo string
	// Ping checks backend reachability; nil in local mode (there is nothing
	// to lose contact with).
	Ping       func(ctx context.Context) error
	Pedidos    PedidoStore
	Productos  ProductoStore
	Categorias CategoriaStore
	Gastos     GastoStore
	Entregas   EntregaStore
	Inventario InventarioStore
	Suscriptor PedidoSuscriptor
}

// New selects the backend. With sync credentials present it tries the shared
// document store; any initialization failure logs a warning and falls back to
// local-only mode for the remainder of the process — there is no retry.
func New(ctx context.Context, cfg *config.Config) (*Store, error) {
	if cfg.SyncConfigurado() {
		r, err := remote.New(ctx, cfg.SyncDatabaseURL, cfg.SyncRedisURL)
		if err == nil {
			log.Info().Msg("sincronización activa: usando backend de documentos compartido")
			return &Store{
				Modo:       ModoSync,
				Ping:       r.Ping,
				Pedidos:    r.Pedidos(),
				Productos:  r.Productos(),
				Categorias: r.Categorias(),
				Gastos:     r.Gastos(),
				Entregas:   r.Entregas(),
				Inventario: r.Inventario(),
				Suscriptor: r,
			}, nil
		}
		log.Warn().Err(err).Msg("backend de sincronización no disponible, usando modo local")
	} else {
		log.Info().Msg("sin credenciales de sincronización: modo local")
	}

	l, err := local.New(cfg.DataDir)
	if err != nil {
		return nil, err
	}
	return &Store{
		Modo:       ModoLocal,
		Pedidos:    l.Pedidos(),
		Productos:  l.Productos(),
		Categorias: l.Categorias(),
		Gastos:     l.Gastos(),
		Entregas:   l.Entregas(),
		Inventario: l.Inventario(),
	}, nil
}
