package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Desesbraker/Buchonapp/internal/apierror"
	"github.com/Desesbraker/Buchonapp/internal/dto"
	"github.com/Desesbraker/Buchonapp/internal/model"
	"github.com/Desesbraker/Buchonapp/internal/storage"
)

// GastosHandler covers expenses and the inventory singleton.
type GastosHandler struct {
	gastos     storage.GastoStore
	inventario storage.InventarioStore
}

func NewGastosHandler(gastos storage.GastoStore, inventario storage.InventarioStore) *GastosHandler {
	return &GastosHandler{gastos: gastos, inventario: inventario}
}

// ListarGastos GET /v1/gastos
func (h *GastosHandler) ListarGastos(c *gin.Context) {
	gastos, err := h.gastos.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar gastos"))
		return
	}
	c.JSON(http.StatusOK, gastos)
}

// CrearGasto POST /v1/gastos
func (h *GastosHandler) CrearGasto(c *gin.Context) {
	var req dto.GastoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	gasto, err := h.gastos.Guardar(c.Request.Context(), &model.Gasto{
		Descripcion: req.Descripcion,
		Monto:       req.Monto,
		Fecha:       req.Fecha,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("No se pudo guardar el gasto"))
		return
	}
	c.JSON(http.StatusCreated, gasto)
}

// EliminarGasto DELETE /v1/gastos/:id
func (h *GastosHandler) EliminarGasto(c *gin.Context) {
	if err := h.gastos.Eliminar(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("No se pudo eliminar el gasto"))
		return
	}
	c.JSON(http.StatusNoContent, nil)
}

// ObtenerInventario GET /v1/inventario
func (h *GastosHandler) ObtenerInventario(c *gin.Context) {
	inv, err := h.inventario.Obtener(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al leer el inventario"))
		return
	}
	c.JSON(http.StatusOK, inv)
}

// GuardarInventario PUT /v1/inventario
func (h *GastosHandler) GuardarInventario(c *gin.Context) {
	var req dto.InventarioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	inv := &model.Inventario{
		RosasDisponibles: req.RosasDisponibles,
		CajasCompradas:   req.CajasCompradas,
		RosasPorCaja:     req.RosasPorCaja,
		RosasUsadas:      req.RosasUsadas,
	}
	if err := h.inventario.Guardar(c.Request.Context(), inv); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("No se pudo guardar el inventario"))
		return
	}
	c.JSON(http.StatusOK, inv)
}
