package local

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Desesbraker/Buchonapp/internal/model"
)

// Local owns the key-value layer and hands out per-entity stores. All stores
// share one mutex: the blob files are read-modify-written whole, and two
// concurrent writers to the same key would otherwise overwrite each other.
type Local struct {
	kv *kv
	mu sync.Mutex
}

func New(dir string) (*Local, error) {
	kv, err := newKV(dir)
	if err != nil {
		return nil, err
	}
	return &Local{kv: kv}, nil
}

func (l *Local) Pedidos() *PedidoStore       { return &PedidoStore{l} }
func (l *Local) Productos() *ProductoStore   { return &ProductoStore{l} }
func (l *Local) Categorias() *CategoriaStore { return &CategoriaStore{l} }
func (l *Local) Gastos() *GastoStore         { return &GastoStore{l} }
func (l *Local) Entregas() *EntregaStore     { return &EntregaStore{l} }
func (l *Local) Inventario() *InventarioStore {
	return &InventarioStore{l}
}

// Limpiar removes every stored blob. Debugging aid, mirrors a full app reset.
func (l *Local) Limpiar() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.kv.removeMany(keyPedidos, keyProductos, keyCategorias, keyGastos,
		keyContador, keyOrdenEntregas, keyInventario)
}

// nuevoID returns a creation-timestamp-derived id. Uniqueness holds within a
// device; the remote backend is what makes ids safe across devices.
func nuevoID() string {
	return strconv.FormatInt(time.Now().UnixNano(), 10)
}

func ahora() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// leerLista decodes the collection blob under key. A missing or corrupt blob
// yields an empty list — the caller can always range over the result.
func leerLista[T any](kv *kv, key string) []T {
	data, err := kv.get(key)
	if err != nil || len(data) == 0 {
		if err != nil {
			log.Warn().Err(err).Str("key", key).Msg("no se pudo leer el almacenamiento local")
		}
		return nil
	}
	var out []T
	if err := json.Unmarshal(data, &out); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("blob local corrupto, se ignora")
		return nil
	}
	return out
}

func escribirLista[T any](kv *kv, key string, list []T) error {
	data, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return kv.set(key, data)
}

// ── Pedidos ──────────────────────────────────────────────────────────────────

type PedidoStore struct{ l *Local }

func (s *PedidoStore) Guardar(_ context.Context, p *model.Pedido) (*model.Pedido, error) {
	s.l.mu.Lock()
	defer s.l.mu.Unlock()

	p.ID = nuevoID()
	p.FechaCreacion = ahora()
	pedidos := leerLista[model.Pedido](s.l.kv, keyPedidos)
	pedidos = append([]model.Pedido{*p}, pedidos...)
	if err := escribirLista(s.l.kv, keyPedidos, pedidos); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PedidoStore) Listar(_ context.Context) ([]model.Pedido, error) {
	s.l.mu.Lock()
	defer s.l.mu.Unlock()
	return leerLista[model.Pedido](s.l.kv, keyPedidos), nil
}

// Actualizar replaces the stored record in place. An id that is not present
// is a silent no-op.
func (s *PedidoStore) Actualizar(_ context.Context, p *model.Pedido) error {
	s.l.mu.Lock()
	defer s.l.mu.Unlock()

	p.FechaActualizacion = ahora()
	pedidos := leerLista[model.Pedido](s.l.kv, keyPedidos)
	for i := range pedidos {
		if pedidos[i].ID == p.ID {
			pedidos[i] = *p
			return escribirLista(s.l.kv, keyPedidos, pedidos)
		}
	}
	return nil
}

func (s *PedidoStore) Eliminar(_ context.Context, id string) error {
	s.l.mu.Lock()
	defer s.l.mu.Unlock()

	pedidos := leerLista[model.Pedido](s.l.kv, keyPedidos)
	filtrados := pedidos[:0]
	for _, p := range pedidos {
		if p.ID != id {
			filtrados = append(filtrados, p)
		}
	}
	return escribirLista(s.l.kv, keyPedidos, filtrados)
}

// SiguienteNumero increments the string-encoded counter blob and formats the
// sequential code. On a read or write failure it falls back to a
// timestamp-based code so order creation never blocks on the counter.
func (s *PedidoStore) SiguienteNumero(_ context.Context) (string, error) {
	s.l.mu.Lock()
	defer s.l.mu.Unlock()

	contador := 0
	if data, err := s.l.kv.get(keyContador); err == nil && len(data) > 0 {
		contador, _ = strconv.Atoi(string(data))
	}
	contador++
	if err := s.l.kv.set(keyContador, []byte(strconv.Itoa(contador))); err != nil {
		log.Warn().Err(err).Msg("no se pudo actualizar el contador de pedidos")
		return fmt.Sprintf("P%d", time.Now().UnixMilli()), nil
	}
	return fmt.Sprintf("P%03d", contador), nil
}

// ── Productos ────────────────────────────────────────────────────────────────

type ProductoStore struct{ l *Local }

func (s *ProductoStore) Agregar(_ context.Context, p *model.Producto) (*model.Producto, error) {
	s.l.mu.Lock()
	defer s.l.mu.Unlock()

	p.ID = nuevoID()
	p.FechaCreacion = ahora()
	productos := leerLista[model.Producto](s.l.kv, keyProductos)
	productos = append([]model.Producto{*p}, productos...)
	if err := escribirLista(s.l.kv, keyProductos, productos); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProductoStore) Listar(_ context.Context) ([]model.Producto, error) {
	s.l.mu.Lock()
	defer s.l.mu.Unlock()
	return leerLista[model.Producto](s.l.kv, keyProductos), nil
}

func (s *ProductoStore) Actualizar(_ context.Context, p *model.Producto) error {
	s.l.mu.Lock()
	defer s.l.mu.Unlock()

	p.FechaActualizacion = ahora()
	productos := leerLista[model.Producto](s.l.kv, keyProductos)
	for i := range productos {
		if productos[i].ID == p.ID {
			productos[i] = *p
			return escribirLista(s.l.kv, keyProductos, productos)
		}
	}
	return nil
}

func (s *ProductoStore) Eliminar(_ context.Context, id string) error {
	s.l.mu.Lock()
	defer s.l.mu.Unlock()

	productos := leerLista[model.Producto](s.l.kv, keyProductos)
	filtrados := productos[:0]
	for _, p := range productos {
		if p.ID != id {
			filtrados = append(filtrados, p)
		}
	}
	return escribirLista(s.l.kv, keyProductos, filtrados)
}

// ── Categorías ───────────────────────────────────────────────────────────────

type CategoriaStore struct{ l *Local }

func (s *CategoriaStore) Agregar(_ context.Context, c *model.Categoria) (*model.Categoria, error) {
	s.l.mu.Lock()
	defer s.l.mu.Unlock()

	c.ID = nuevoID()
	c.FechaCreacion = ahora()
	categorias := leerLista[model.Categoria](s.l.kv, keyCategorias)
	categorias = append([]model.Categoria{*c}, categorias...)
	if err := escribirLista(s.l.kv, keyCategorias, categorias); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CategoriaStore) Listar(_ context.Context) ([]model.Categoria, error) {
	s.l.mu.Lock()
	defer s.l.mu.Unlock()
	return leerLista[model.Categoria](s.l.kv, keyCategorias), nil
}

func (s *CategoriaStore) Eliminar(_ context.Context, id string) error {
	s.l.mu.Lock()
	defer s.l.mu.Unlock()

	categorias := leerLista[model.Categoria](s.l.kv, keyCategorias)
	filtradas := categorias[:0]
	for _, c := range categorias {
		if c.ID != id {
			filtradas = append(filtradas, c)
		}
	}
	return escribirLista(s.l.kv, keyCategorias, filtradas)
}

// ── Gastos ───────────────────────────────────────────────────────────────────

type GastoStore struct{ l *Local }

func (s *GastoStore) Guardar(_ context.Context, g *model.Gasto) (*model.Gasto, error) {
	s.l.mu.Lock()
	defer s.l.mu.Unlock()

	g.ID = nuevoID()
	g.FechaCreacion = ahora()
	gastos := leerLista[model.Gasto](s.l.kv, keyGastos)
	gastos = append([]model.Gasto{*g}, gastos...)
	if err := escribirLista(s.l.kv, keyGastos, gastos); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *GastoStore) Listar(_ context.Context) ([]model.Gasto, error) {
	s.l.mu.Lock()
	defer s.l.mu.Unlock()
	return leerLista[model.Gasto](s.l.kv, keyGastos), nil
}

func (s *GastoStore) Eliminar(_ context.Context, id string) error {
	s.l.mu.Lock()
	defer s.l.mu.Unlock()

	gastos := leerLista[model.Gasto](s.l.kv, keyGastos)
	filtrados := gastos[:0]
	for _, g := range gastos {
		if g.ID != id {
			filtrados = append(filtrados, g)
		}
	}
	return escribirLista(s.l.kv, keyGastos, filtrados)
}

// ── Orden de entregas ────────────────────────────────────────────────────────

// EntregaStore keeps the whole fecha → []pedidoID map in one blob.
type EntregaStore struct{ l *Local }

func (s *EntregaStore) ObtenerOrden(_ context.Context, fecha string) ([]string, error) {
	s.l.mu.Lock()
	defer s.l.mu.Unlock()
	return s.leerMapa()[fecha], nil
}

func (s *EntregaStore) GuardarOrden(_ context.Context, fecha string, ids []string) error {
	s.l.mu.Lock()
	defer s.l.mu.Unlock()

	ordenes := s.leerMapa()
	ordenes[fecha] = ids
	data, err := json.Marshal(ordenes)
	if err != nil {
		return err
	}
	return s.l.kv.set(keyOrdenEntregas, data)
}

func (s *EntregaStore) leerMapa() map[string][]string {
	data, err := s.l.kv.get(keyOrdenEntregas)
	if err != nil || len(data) == 0 {
		return map[string][]string{}
	}
	var out map[string][]string
	if err := json.Unmarshal(data, &out); err != nil {
		log.Warn().Err(err).Msg("orden de entregas corrupta, se ignora")
		return map[string][]string{}
	}
	return out
}

// ── Inventario ───────────────────────────────────────────────────────────────

type InventarioStore struct{ l *Local }

func (s *InventarioStore) Obtener(_ context.Context) (*model.Inventario, error) {
	s.l.mu.Lock()
	defer s.l.mu.Unlock()

	data, err := s.l.kv.get(keyInventario)
	if err != nil || len(data) == 0 {
		return model.InventarioDefault(), nil
	}
	inv := &model.Inventario{}
	if err := json.Unmarshal(data, inv); err != nil {
		log.Warn().Err(err).Msg("inventario corrupto, se usan valores por defecto")
		return model.InventarioDefault(), nil
	}
	return inv, nil
}

func (s *InventarioStore) Guardar(_ context.Context, inv *model.Inventario) error {
	s.l.mu.Lock()
	defer s.l.mu.Unlock()

	data, err := json.Marshal(inv)
	if err != nil {
		return err
	}
	return s.l.kv.set(keyInventario, data)
}
