package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Desesbraker/Buchonapp/internal/apierror"
	"github.com/Desesbraker/Buchonapp/internal/dto"
	"github.com/Desesbraker/Buchonapp/internal/service"
)

type EntregasHandler struct{ svc service.EntregaService }

func NewEntregasHandler(svc service.EntregaService) *EntregasHandler {
	return &EntregasHandler{svc: svc}
}

func fechaValida(fecha string) bool {
	_, err := time.Parse("2006-01-02", fecha)
	return err == nil
}

// PlanDelDia GET /v1/entregas/:fecha
func (h *EntregasHandler) PlanDelDia(c *gin.Context) {
	fecha := c.Param("fecha")
	if !fechaValida(fecha) {
		c.JSON(http.StatusBadRequest, apierror.New("Fecha invalida, usar AAAA-MM-DD"))
		return
	}
	plan, err := h.svc.PlanDelDia(c.Request.Context(), fecha)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al armar el plan del día"))
		return
	}
	c.JSON(http.StatusOK, plan)
}

// GuardarOrden PUT /v1/entregas/:fecha/orden — overwrite the manual ordering.
func (h *EntregasHandler) GuardarOrden(c *gin.Context) {
	fecha := c.Param("fecha")
	if !fechaValida(fecha) {
		c.JSON(http.StatusBadRequest, apierror.New("Fecha invalida, usar AAAA-MM-DD"))
		return
	}
	var req dto.GuardarOrdenRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.GuardarOrden(c.Request.Context(), fecha, req.Orden); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("No se pudo guardar el orden de entregas"))
		return
	}
	c.JSON(http.StatusNoContent, nil)
}

// Mover POST /v1/entregas/:fecha/mover — move one pedido up/down in its day.
func (h *EntregasHandler) Mover(c *gin.Context) {
	fecha := c.Param("fecha")
	if !fechaValida(fecha) {
		c.JSON(http.StatusBadRequest, apierror.New("Fecha invalida, usar AAAA-MM-DD"))
		return
	}
	var req dto.MoverPedidoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	plan, err := h.svc.Mover(c.Request.Context(), fecha, req.PedidoID, req.Direccion)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, plan)
}

// HojaDeRuta GET /v1/entregas/:fecha/hoja — printable PDF route sheet.
func (h *EntregasHandler) HojaDeRuta(c *gin.Context) {
	fecha := c.Param("fecha")
	if !fechaValida(fecha) {
		c.JSON(http.StatusBadRequest, apierror.New("Fecha invalida, usar AAAA-MM-DD"))
		return
	}
	pdf, err := h.svc.HojaDeRuta(c.Request.Context(), fecha)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("No se pudo generar la hoja de ruta"))
		return
	}
	c.Header("Content-Disposition", `attachment; filename="hoja_de_ruta_`+fecha+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
