package model

// Inventario is the singleton rose-stock counter. Not a collection: there is
// exactly one record per business.
type Inventario struct {
	RosasDisponibles int `json:"rosasDisponibles"`
	CajasCompradas   int `json:"cajasCompradas"`
	RosasPorCaja     int `json:"rosasPorCaja"`
	RosasUsadas      int `json:"rosasUsadas"`
}

// InventarioDefault is the value returned when nothing has been stored yet.
func InventarioDefault() *Inventario {
	return &Inventario{RosasPorCaja: 25}
}
