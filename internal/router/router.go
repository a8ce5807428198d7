package router

import (
	"github.com/gin-gonic/gin"

	"github.com/Desesbraker/Buchonapp/internal/config"
	"github.com/Desesbraker/Buchonapp/internal/handler"
	"github.com/Desesbraker/Buchonapp/internal/middleware"
	"github.com/Desesbraker/Buchonapp/internal/service"
	"github.com/Desesbraker/Buchonapp/internal/storage"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Store (already backend-bound).
func New(cfg *config.Config, st *storage.Store) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(cfg)
	pedidoSvc := service.NewPedidoService(st.Pedidos)
	entregaSvc := service.NewEntregaService(st.Pedidos, st.Entregas)
	estadisticasSvc := service.NewEstadisticasService(st.Pedidos, st.Gastos)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	pedidosH := handler.NewPedidosHandler(pedidoSvc, st.Suscriptor)
	catalogoH := handler.NewCatalogoHandler(st.Productos, st.Categorias)
	gastosH := handler.NewGastosHandler(st.Gastos, st.Inventario)
	entregasH := handler.NewEntregasHandler(entregaSvc)
	estadisticasH := handler.NewEstadisticasHandler(estadisticasSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(st))
	r.POST("/v1/auth/login", middleware.LoginRateLimiter(), authH.Login)

	// Everything else requires the operator token
	v1 := r.Group("/v1", middleware.JWTAuth(cfg.JWTSecret))
	{
		pedidos := v1.Group("/pedidos")
		{
			pedidos.GET("", pedidosH.Listar)
			pedidos.POST("", pedidosH.Crear)
			pedidos.GET("/stream", pedidosH.Stream)
			pedidos.PUT("/:id", pedidosH.Actualizar)
			pedidos.DELETE("/:id", pedidosH.Eliminar)
			pedidos.PATCH("/:id/elaborado", pedidosH.ToggleElaborado)
			pedidos.PATCH("/:id/entregado", pedidosH.ToggleEntregado)
		}

		productos := v1.Group("/productos")
		{
			productos.GET("", catalogoH.ListarProductos)
			productos.POST("", catalogoH.CrearProducto)
			productos.PUT("/:id", catalogoH.ActualizarProducto)
			productos.DELETE("/:id", catalogoH.EliminarProducto)
		}

		categorias := v1.Group("/categorias")
		{
			categorias.GET("", catalogoH.ListarCategorias)
			categorias.POST("", catalogoH.CrearCategoria)
			categorias.DELETE("/:id", catalogoH.EliminarCategoria)
		}

		gastos := v1.Group("/gastos")
		{
			gastos.GET("", gastosH.ListarGastos)
			gastos.POST("", gastosH.CrearGasto)
			gastos.DELETE("/:id", gastosH.EliminarGasto)
		}

		v1.GET("/inventario", gastosH.ObtenerInventario)
		v1.PUT("/inventario", gastosH.GuardarInventario)

		entregas := v1.Group("/entregas")
		{
			entregas.GET("/:fecha", entregasH.PlanDelDia)
			entregas.PUT("/:fecha/orden", entregasH.GuardarOrden)
			entregas.POST("/:fecha/mover", entregasH.Mover)
			entregas.GET("/:fecha/hoja", entregasH.HojaDeRuta)
		}

		v1.GET("/estadisticas", estadisticasH.Obtener)
	}

	return r
}
