package dto

import (
	"github.com/shopspring/decimal"
)

type GastoRequest struct {
	Descripcion string          `json:"descripcion" validate:"required,min=2,max=200"`
	Monto       decimal.Decimal `json:"monto"       validate:"required,gt=0"`
	Fecha       string          `json:"fecha"       validate:"required,datetime=2006-01-02"`
}

type InventarioRequest struct {
	RosasDisponibles int `json:"rosasDisponibles" validate:"min=0"`
	CajasCompradas   int `json:"cajasCompradas"   validate:"min=0"`
	RosasPorCaja     int `json:"rosasPorCaja"     validate:"required,gt=0"`
	RosasUsadas      int `json:"rosasUsadas"      validate:"min=0"`
}
