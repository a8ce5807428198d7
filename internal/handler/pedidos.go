package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Desesbraker/Buchonapp/internal/apierror"
	"github.com/Desesbraker/Buchonapp/internal/dto"
	"github.com/Desesbraker/Buchonapp/internal/model"
	"github.com/Desesbraker/Buchonapp/internal/service"
	"github.com/Desesbraker/Buchonapp/internal/storage"
)

type PedidosHandler struct {
	svc        service.PedidoService
	suscriptor storage.PedidoSuscriptor // nil in local mode
}

func NewPedidosHandler(svc service.PedidoService, suscriptor storage.PedidoSuscriptor) *PedidosHandler {
	return &PedidosHandler{svc: svc, suscriptor: suscriptor}
}

// Listar GET /v1/pedidos — search / filter / sort toggles as query params.
func (h *PedidosHandler) Listar(c *gin.Context) {
	var filtros dto.FiltrosPedido
	if err := c.ShouldBindQuery(&filtros); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Filtros invalidos"))
		return
	}
	pedidos, err := h.svc.Listar(c.Request.Context(), filtros)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar pedidos"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"total": len(pedidos), "pedidos": pedidos})
}

// Crear POST /v1/pedidos
func (h *PedidosHandler) Crear(c *gin.Context) {
	var req dto.PedidoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	pedido, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("No se pudo guardar el pedido"))
		return
	}
	c.JSON(http.StatusCreated, pedido)
}

// Actualizar PUT /v1/pedidos/:id — full edit-and-resave.
func (h *PedidosHandler) Actualizar(c *gin.Context) {
	var req dto.PedidoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	pedido, err := h.svc.Actualizar(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.errorPedido(c, err, "No se pudo actualizar el pedido")
		return
	}
	c.JSON(http.StatusOK, pedido)
}

// Eliminar DELETE /v1/pedidos/:id — idempotent.
func (h *PedidosHandler) Eliminar(c *gin.Context) {
	if err := h.svc.Eliminar(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("No se pudo eliminar el pedido"))
		return
	}
	c.JSON(http.StatusNoContent, nil)
}

// ToggleElaborado PATCH /v1/pedidos/:id/elaborado
func (h *PedidosHandler) ToggleElaborado(c *gin.Context) {
	pedido, err := h.svc.ToggleElaborado(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.errorPedido(c, err, "No se pudo actualizar el pedido")
		return
	}
	c.JSON(http.StatusOK, pedido)
}

// ToggleEntregado PATCH /v1/pedidos/:id/entregado
func (h *PedidosHandler) ToggleEntregado(c *gin.Context) {
	pedido, err := h.svc.ToggleEntregado(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.errorPedido(c, err, "No se pudo actualizar el pedido")
		return
	}
	c.JSON(http.StatusOK, pedido)
}

// Stream GET /v1/pedidos/stream — SSE feed of the full collection on every
// remote change. Only available with the sync backend: local mode has no
// other writers to hear from.
func (h *PedidosHandler) Stream(c *gin.Context) {
	if h.suscriptor == nil {
		c.JSON(http.StatusServiceUnavailable, apierror.New("Sincronización no disponible en modo local"))
		return
	}

	updates := make(chan []model.Pedido, 1)
	cancel, err := h.suscriptor.SuscribirPedidos(c.Request.Context(), func(pedidos []model.Pedido) {
		// Drop stale snapshots: only the latest matters.
		select {
		case updates <- pedidos:
		default:
			select {
			case <-updates:
			default:
			}
			updates <- pedidos
		}
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("No se pudo abrir la suscripción"))
		return
	}
	defer cancel()

	// Initial snapshot so the device renders without waiting for a change.
	if pedidos, err := h.svc.Listar(c.Request.Context(), dto.FiltrosPedido{}); err == nil {
		c.SSEvent("pedidos", pedidos)
		c.Writer.Flush()
	}

	c.Stream(func(w io.Writer) bool {
		select {
		case pedidos := <-updates:
			c.SSEvent("pedidos", pedidos)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

func (h *PedidosHandler) errorPedido(c *gin.Context, err error, generico string) {
	if errors.Is(err, service.ErrPedidoNoEncontrado) {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusBadRequest, apierror.New(generico))
}
