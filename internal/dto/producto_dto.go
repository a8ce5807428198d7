package dto

import (
	"github.com/shopspring/decimal"
)

type ProductoRequest struct {
	Nombre      string          `json:"nombre"      validate:"required,min=2,max=100"`
	Color       string          `json:"color"       validate:"max=50"`
	Precio      decimal.Decimal `json:"precio"      validate:"required,gt=0"`
	Cantidad    int             `json:"cantidad"    validate:"min=0"`
	Descripcion string          `json:"descripcion" validate:"max=500"`
	Imagen      *string         `json:"imagen"`
	CategoriaID *string         `json:"categoriaId"`
}

type CategoriaRequest struct {
	Nombre  string  `json:"nombre"  validate:"required,min=2,max=100"`
	Detalle string  `json:"detalle" validate:"max=500"`
	Imagen  *string `json:"imagen"`
}
