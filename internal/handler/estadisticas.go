package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Desesbraker/Buchonapp/internal/apierror"
	"github.com/Desesbraker/Buchonapp/internal/dto"
	"github.com/Desesbraker/Buchonapp/internal/service"
)

type EstadisticasHandler struct{ svc service.EstadisticasService }

func NewEstadisticasHandler(svc service.EstadisticasService) *EstadisticasHandler {
	return &EstadisticasHandler{svc: svc}
}

// Obtener GET /v1/estadisticas?periodo=semana|mes|trimestre|anio
func (h *EstadisticasHandler) Obtener(c *gin.Context) {
	periodo := c.DefaultQuery("periodo", dto.PeriodoMes)
	resp, err := h.svc.Generar(c.Request.Context(), periodo)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}
