package model

import (
	"github.com/shopspring/decimal"
)

// Producto is a catalog item (ramo, extra, decoración). Referenced from
// pedidos only as a snapshot — never as a live foreign key.
type Producto struct {
	ID          string          `json:"id"`
	Nombre      string          `json:"nombre"`
	Color       string          `json:"color,omitempty"`
	Precio      decimal.Decimal `json:"precio"`
	Cantidad    int             `json:"cantidad"`
	Descripcion string          `json:"descripcion,omitempty"`
	Imagen      *string         `json:"imagen,omitempty"`
	CategoriaID *string         `json:"categoriaId,omitempty"`

	FechaCreacion      string `json:"fechaCreacion,omitempty"`
	FechaActualizacion string `json:"fechaActualizacion,omitempty"`
}
