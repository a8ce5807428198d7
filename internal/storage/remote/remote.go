// Package remote is the shared sync backend: an opaque document store kept in
// PostgreSQL (one jsonb row per document, addressed by collection + id) with
// change notification fanned out through Redis pub/sub. Every device pointed
// at the same pair of URLs sees the same data.
package remote

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Collection names, shared by every device syncing against the same backend.
const (
	colPedidos       = "pedidos"
	colProductos     = "productos"
	colCategorias    = "categorias"
	colGastos        = "gastos"
	colOrdenEntregas = "ordenEntregas"
	colConfig        = "config"
)

// Documento is one stored document. The payload is opaque jsonb; the entity
// stores on top decide what lives inside.
type Documento struct {
	Coleccion string `gorm:"primaryKey;size:64"`
	DocID     string `gorm:"primaryKey;size:64;column:doc_id"`
	Datos     string `gorm:"type:jsonb;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Documento) TableName() string { return "documentos" }

// Remote wraps the two connections. It is safe for concurrent use; all
// coordination is delegated to Postgres and Redis.
type Remote struct {
	db  *gorm.DB
	rdb *redis.Client
}

// New connects to both services and migrates the documentos table. Either
// connection failing is returned to the caller, which falls back to local
// mode — this function is only called once per process.
func New(ctx context.Context, databaseURL, redisURL string) (*Remote, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(2)
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, err
	}
	if err := db.WithContext(ctx).AutoMigrate(&Documento{}); err != nil {
		return nil, err
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Remote{db: db, rdb: rdb}, nil
}

// Ping checks both connections; used by the health endpoint.
func (r *Remote) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return err
	}
	return r.rdb.Ping(ctx).Err()
}

// ── Document primitives ──────────────────────────────────────────────────────

// setDoc upserts one document and publishes the change.
func (r *Remote) setDoc(ctx context.Context, coleccion, id string, v any) error {
	datos, err := json.Marshal(v)
	if err != nil {
		return err
	}
	doc := Documento{Coleccion: coleccion, DocID: id, Datos: string(datos)}
	err = r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "coleccion"}, {Name: "doc_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"datos", "updated_at"}),
	}).Create(&doc).Error
	if err != nil {
		return err
	}
	r.publicar(ctx, coleccion, id)
	return nil
}

// updateDoc overwrites the payload of an existing document. A missing id is
// a no-op, matching the façade's update contract.
func (r *Remote) updateDoc(ctx context.Context, coleccion, id string, v any) error {
	datos, err := json.Marshal(v)
	if err != nil {
		return err
	}
	res := r.db.WithContext(ctx).Model(&Documento{}).
		Where("coleccion = ? AND doc_id = ?", coleccion, id).
		Update("datos", string(datos))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		r.publicar(ctx, coleccion, id)
	}
	return nil
}

// deleteDoc removes one document. Deleting an absent id is a no-op.
func (r *Remote) deleteDoc(ctx context.Context, coleccion, id string) error {
	err := r.db.WithContext(ctx).
		Where("coleccion = ? AND doc_id = ?", coleccion, id).
		Delete(&Documento{}).Error
	if err != nil {
		return err
	}
	r.publicar(ctx, coleccion, id)
	return nil
}

// getDoc loads one document into dest. Returns false when the id is absent.
func (r *Remote) getDoc(ctx context.Context, coleccion, id string, dest any) (bool, error) {
	var doc Documento
	err := r.db.WithContext(ctx).
		Where("coleccion = ? AND doc_id = ?", coleccion, id).
		First(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal([]byte(doc.Datos), dest)
}

// listarDocs fetches the whole collection — a full scan by design; the
// datasets here are a flower shop's, not a warehouse's.
func listarDocs[T any](ctx context.Context, r *Remote, coleccion string, setID func(*T, string)) ([]T, error) {
	var docs []Documento
	err := r.db.WithContext(ctx).
		Where("coleccion = ?", coleccion).
		Find(&docs).Error
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(docs))
	for _, d := range docs {
		var v T
		if err := json.Unmarshal([]byte(d.Datos), &v); err != nil {
			log.Warn().Err(err).Str("coleccion", coleccion).Str("doc", d.DocID).
				Msg("documento ilegible, se omite")
			continue
		}
		// The backend-assigned id wins over whatever the payload carries.
		setID(&v, d.DocID)
		out = append(out, v)
	}
	return out, nil
}

// canal returns the pub/sub channel for a collection.
func canal(coleccion string) string { return "cambios:" + coleccion }

func (r *Remote) publicar(ctx context.Context, coleccion, id string) {
	// Notification loss only delays a refresh on other devices; the write
	// itself already succeeded, so this is log-and-continue.
	if err := r.rdb.Publish(ctx, canal(coleccion), id).Err(); err != nil {
		log.Warn().Err(err).Str("coleccion", coleccion).Msg("no se pudo publicar el cambio")
	}
}
