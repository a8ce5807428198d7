package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Desesbraker/Buchonapp/internal/apierror"
	"github.com/Desesbraker/Buchonapp/internal/dto"
	"github.com/Desesbraker/Buchonapp/internal/model"
	"github.com/Desesbraker/Buchonapp/internal/storage"
)

// CatalogoHandler serves the product/category catalog. Thin CRUD: it talks
// to the stores directly, there is no business logic to interpose.
type CatalogoHandler struct {
	productos  storage.ProductoStore
	categorias storage.CategoriaStore
}

func NewCatalogoHandler(productos storage.ProductoStore, categorias storage.CategoriaStore) *CatalogoHandler {
	return &CatalogoHandler{productos: productos, categorias: categorias}
}

// ── Productos ────────────────────────────────────────────────────────────────

// ListarProductos GET /v1/productos
func (h *CatalogoHandler) ListarProductos(c *gin.Context) {
	productos, err := h.productos.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar productos"))
		return
	}
	c.JSON(http.StatusOK, productos)
}

// CrearProducto POST /v1/productos
func (h *CatalogoHandler) CrearProducto(c *gin.Context) {
	var req dto.ProductoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	producto, err := h.productos.Agregar(c.Request.Context(), &model.Producto{
		Nombre:      req.Nombre,
		Color:       req.Color,
		Precio:      req.Precio,
		Cantidad:    req.Cantidad,
		Descripcion: req.Descripcion,
		Imagen:      req.Imagen,
		CategoriaID: req.CategoriaID,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("No se pudo guardar el producto"))
		return
	}
	c.JSON(http.StatusCreated, producto)
}

// ActualizarProducto PUT /v1/productos/:id
func (h *CatalogoHandler) ActualizarProducto(c *gin.Context) {
	var req dto.ProductoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	producto := &model.Producto{
		ID:          c.Param("id"),
		Nombre:      req.Nombre,
		Color:       req.Color,
		Precio:      req.Precio,
		Cantidad:    req.Cantidad,
		Descripcion: req.Descripcion,
		Imagen:      req.Imagen,
		CategoriaID: req.CategoriaID,
	}
	if err := h.productos.Actualizar(c.Request.Context(), producto); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("No se pudo actualizar el producto"))
		return
	}
	c.JSON(http.StatusOK, producto)
}

// EliminarProducto DELETE /v1/productos/:id
func (h *CatalogoHandler) EliminarProducto(c *gin.Context) {
	if err := h.productos.Eliminar(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("No se pudo eliminar el producto"))
		return
	}
	c.JSON(http.StatusNoContent, nil)
}

// ── Categorías ───────────────────────────────────────────────────────────────

// ListarCategorias GET /v1/categorias
func (h *CatalogoHandler) ListarCategorias(c *gin.Context) {
	categorias, err := h.categorias.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar categorías"))
		return
	}
	c.JSON(http.StatusOK, categorias)
}

// CrearCategoria POST /v1/categorias
func (h *CatalogoHandler) CrearCategoria(c *gin.Context) {
	var req dto.CategoriaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	categoria, err := h.categorias.Agregar(c.Request.Context(), &model.Categoria{
		Nombre:  req.Nombre,
		Detalle: req.Detalle,
		Imagen:  req.Imagen,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("No se pudo guardar la categoría"))
		return
	}
	c.JSON(http.StatusCreated, categoria)
}

// EliminarCategoria DELETE /v1/categorias/:id — products keep pointing at the
// removed id; nothing cascades.
func (h *CatalogoHandler) EliminarCategoria(c *gin.Context) {
	if err := h.categorias.Eliminar(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("No se pudo eliminar la categoría"))
		return
	}
	c.JSON(http.StatusNoContent, nil)
}
