package model

// Categoria groups catalog products. Deleting one does not reassign or
// validate dependent products.
type Categoria struct {
	ID      string  `json:"id"`
	Nombre  string  `json:"nombre"`
	Detalle string  `json:"detalle,omitempty"`
	Imagen  *string `json:"imagen,omitempty"`

	FechaCreacion string `json:"fechaCreacion,omitempty"`
}
