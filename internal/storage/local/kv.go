// Package local is the device-local backend: a durable string-key → JSON-blob
// store with one file per key, plus the per-entity stores built on top of it.
// Every mutation is a full read-modify-write of the entity's blob, serialized
// by the store mutex.
package local

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// Fixed blob keys — one per entity-type collection plus the singletons.
const (
	keyPedidos       = "buchonapp_pedidos"
	keyProductos     = "buchonapp_productos"
	keyCategorias    = "buchonapp_categorias"
	keyGastos        = "buchonapp_gastos"
	keyContador      = "buchonapp_contador_pedidos"
	keyOrdenEntregas = "buchonapp_orden_entregas"
	keyInventario    = "buchonapp_inventario"
)

// kv is the flat key-value layer. Keys map to files "<dir>/<key>.json".
type kv struct {
	dir string
}

func newKV(dir string) (*kv, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &kv{dir: dir}, nil
}

func (s *kv) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// get returns the stored blob, or nil when the key has never been written.
func (s *kv) get(key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return data, err
}

func (s *kv) set(key string, value []byte) error {
	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path(key))
}

// removeMany deletes a set of keys; missing keys are ignored.
func (s *kv) removeMany(keys ...string) error {
	for _, k := range keys {
		if err := os.Remove(s.path(k)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}
