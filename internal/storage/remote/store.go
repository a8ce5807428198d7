package remote

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Desesbraker/Buchonapp/internal/model"
)

func nuevoID() string {
	return strconv.FormatInt(time.Now().UnixNano(), 10)
}

func ahora() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func (r *Remote) Pedidos() *PedidoStore        { return &PedidoStore{r} }
func (r *Remote) Productos() *ProductoStore    { return &ProductoStore{r} }
func (r *Remote) Categorias() *CategoriaStore  { return &CategoriaStore{r} }
func (r *Remote) Gastos() *GastoStore          { return &GastoStore{r} }
func (r *Remote) Entregas() *EntregaStore      { return &EntregaStore{r} }
func (r *Remote) Inventario() *InventarioStore { return &InventarioStore{r} }

// ── Pedidos ──────────────────────────────────────────────────────────────────

type PedidoStore struct{ r *Remote }

func (s *PedidoStore) Guardar(ctx context.Context, p *model.Pedido) (*model.Pedido, error) {
	p.ID = nuevoID()
	p.FechaCreacion = ahora()
	if err := s.r.setDoc(ctx, colPedidos, p.ID, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Listar returns the full collection, newest first.
func (s *PedidoStore) Listar(ctx context.Context) ([]model.Pedido, error) {
	pedidos, err := listarDocs[model.Pedido](ctx, s.r, colPedidos,
		func(p *model.Pedido, id string) { p.ID = id })
	if err != nil {
		return nil, err
	}
	sort.SliceStable(pedidos, func(i, j int) bool {
		return pedidos[i].FechaCreacion > pedidos[j].FechaCreacion
	})
	return pedidos, nil
}

func (s *PedidoStore) Actualizar(ctx context.Context, p *model.Pedido) error {
	p.FechaActualizacion = ahora()
	return s.r.updateDoc(ctx, colPedidos, p.ID, p)
}

func (s *PedidoStore) Eliminar(ctx context.Context, id string) error {
	return s.r.deleteDoc(ctx, colPedidos, id)
}

// SiguienteNumero increments the shared counter document atomically — two
// devices allocating at once cannot be awarded the same number. Falls back
// to a timestamp-based code if the backend refuses, same as the local path.
func (s *PedidoStore) SiguienteNumero(ctx context.Context) (string, error) {
	var contador int
	err := s.r.db.WithContext(ctx).Raw(`
		INSERT INTO documentos (coleccion, doc_id, datos, created_at, updated_at)
		VALUES ('config', 'contador', '{"pedidos": 1}', NOW(), NOW())
		ON CONFLICT (coleccion, doc_id) DO UPDATE
		SET datos = jsonb_set(documentos.datos, '{pedidos}',
				(COALESCE((documentos.datos->>'pedidos')::int, 0) + 1)::text::jsonb),
			updated_at = NOW()
		RETURNING (datos->>'pedidos')::int`).Scan(&contador).Error
	if err != nil {
		log.Warn().Err(err).Msg("no se pudo incrementar el contador de pedidos")
		return fmt.Sprintf("P%d", time.Now().UnixMilli()), nil
	}
	return fmt.Sprintf("P%03d", contador), nil
}

// SuscribirPedidos delivers the full collection on every remote change until
// cancel is called or ctx is done. Implements storage.PedidoSuscriptor.
func (s *Remote) SuscribirPedidos(ctx context.Context, fn func([]model.Pedido)) (func(), error) {
	pubsub := s.rdb.Subscribe(ctx, canal(colPedidos))
	// Confirm the subscription before returning so no change slips past.
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, err
	}

	go func() {
		for range pubsub.Channel() {
			pedidos, err := s.Pedidos().Listar(ctx)
			if err != nil {
				log.Warn().Err(err).Msg("no se pudo recargar pedidos tras un cambio")
				continue
			}
			fn(pedidos)
		}
	}()

	return func() { _ = pubsub.Close() }, nil
}

// ── Productos ────────────────────────────────────────────────────────────────

type ProductoStore struct{ r *Remote }

func (s *ProductoStore) Agregar(ctx context.Context, p *model.Producto) (*model.Producto, error) {
	p.ID = nuevoID()
	p.FechaCreacion = ahora()
	if err := s.r.setDoc(ctx, colProductos, p.ID, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProductoStore) Listar(ctx context.Context) ([]model.Producto, error) {
	return listarDocs[model.Producto](ctx, s.r, colProductos,
		func(p *model.Producto, id string) { p.ID = id })
}

func (s *ProductoStore) Actualizar(ctx context.Context, p *model.Producto) error {
	p.FechaActualizacion = ahora()
	return s.r.updateDoc(ctx, colProductos, p.ID, p)
}

func (s *ProductoStore) Eliminar(ctx context.Context, id string) error {
	return s.r.deleteDoc(ctx, colProductos, id)
}

// ── Categorías ───────────────────────────────────────────────────────────────

type CategoriaStore struct{ r *Remote }

func (s *CategoriaStore) Agregar(ctx context.Context, c *model.Categoria) (*model.Categoria, error) {
	c.ID = nuevoID()
	c.FechaCreacion = ahora()
	if err := s.r.setDoc(ctx, colCategorias, c.ID, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CategoriaStore) Listar(ctx context.Context) ([]model.Categoria, error) {
	return listarDocs[model.Categoria](ctx, s.r, colCategorias,
		func(c *model.Categoria, id string) { c.ID = id })
}

func (s *CategoriaStore) Eliminar(ctx context.Context, id string) error {
	return s.r.deleteDoc(ctx, colCategorias, id)
}

// ── Gastos ───────────────────────────────────────────────────────────────────

type GastoStore struct{ r *Remote }

func (s *GastoStore) Guardar(ctx context.Context, g *model.Gasto) (*model.Gasto, error) {
	g.ID = nuevoID()
	g.FechaCreacion = ahora()
	if err := s.r.setDoc(ctx, colGastos, g.ID, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *GastoStore) Listar(ctx context.Context) ([]model.Gasto, error) {
	gastos, err := listarDocs[model.Gasto](ctx, s.r, colGastos,
		func(g *model.Gasto, id string) { g.ID = id })
	if err != nil {
		return nil, err
	}
	sort.SliceStable(gastos, func(i, j int) bool {
		return gastos[i].FechaCreacion > gastos[j].FechaCreacion
	})
	return gastos, nil
}

func (s *GastoStore) Eliminar(ctx context.Context, id string) error {
	return s.r.deleteDoc(ctx, colGastos, id)
}

// ── Orden de entregas ────────────────────────────────────────────────────────

// EntregaStore stores one document per date, id = the date itself.
type EntregaStore struct{ r *Remote }

type ordenDoc struct {
	Orden []string `json:"orden"`
}

func (s *EntregaStore) ObtenerOrden(ctx context.Context, fecha string) ([]string, error) {
	var doc ordenDoc
	ok, err := s.r.getDoc(ctx, colOrdenEntregas, fecha, &doc)
	if err != nil || !ok {
		return nil, err
	}
	return doc.Orden, nil
}

func (s *EntregaStore) GuardarOrden(ctx context.Context, fecha string, ids []string) error {
	return s.r.setDoc(ctx, colOrdenEntregas, fecha, ordenDoc{Orden: ids})
}

// ── Inventario ───────────────────────────────────────────────────────────────

// InventarioStore keeps the singleton under config/inventario.
type InventarioStore struct{ r *Remote }

// Obtener never fails: a read problem degrades to the default counters,
// the same way the app behaves on a device that has stored nothing yet.
func (s *InventarioStore) Obtener(ctx context.Context) (*model.Inventario, error) {
	inv := model.InventarioDefault()
	ok, err := s.r.getDoc(ctx, colConfig, "inventario", inv)
	if err != nil {
		log.Warn().Err(err).Msg("no se pudo leer el inventario, se usan valores por defecto")
		return model.InventarioDefault(), nil
	}
	if !ok {
		return model.InventarioDefault(), nil
	}
	return inv, nil
}

func (s *InventarioStore) Guardar(ctx context.Context, inv *model.Inventario) error {
	return s.r.setDoc(ctx, colConfig, "inventario", inv)
}
