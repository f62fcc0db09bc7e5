package handler

import (
	"net/http"
	"strconv"

	"tienda/config"
	"tienda/internal/delivery/http/middleware"
	"tienda/internal/delivery/http/render"
	"tienda/internal/delivery/http/response"
	"tienda/internal/delivery/http/view"
	"tienda/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	Renderer  *render.Renderer
	Config    *config.Config
}

// ProductHandler serves the product detail page, the quick view fragment and
// the bulk info lookup.
type ProductHandler struct {
	productUC usecase.ProductUsecase
	renderer  *render.Renderer
	cfg       *config.Config
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
		renderer:  params.Renderer,
		cfg:       params.Config,
	}
}

// Detail renders the product detail page by slug.
func (h *ProductHandler) Detail(c echo.Context) error {
	var viewer *uuid.UUID
	if userID, ok := middleware.GetUserID(c); ok {
		viewer = &userID
	}

	data, err := h.productUC.Detail(c.Request().Context(), c.Param("slug"), viewer)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	prefix := h.cfg.Media.URLPrefix
	images := make([]string, 0, len(data.Product.Images))
	for _, img := range data.Product.Images {
		images = append(images, view.MediaURL(prefix, img.Image))
	}

	producto := view.FromCatalogProduct(&data.Product.CatalogProduct, prefix)

	return c.Render(http.StatusOK, "producto_detalle.html", map[string]any{
		"Titulo":       producto.Nombre,
		"Producto":     producto,
		"Descripcion":  data.Product.Description,
		"Imagenes":     images,
		"Atributos":    data.Product.Attributes,
		"Reviews":      data.Product.Reviews,
		"Relacionados": view.FromCatalogProducts(data.Related, prefix),
		"EnWishlist":   data.InWishlist,
	})
}

// QuickView returns the product card fragment as {"success": true, "html": ...}.
func (h *ProductHandler) QuickView(c echo.Context) error {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "Identificador de producto inválido")
	}

	product, err := h.productUC.QuickView(c.Request().Context(), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	html, err := h.renderer.RenderToString("quick_view", map[string]any{
		"Producto": view.FromCatalogProduct(product, h.cfg.Media.URLPrefix),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"html":    html,
	})
}

// BulkInfoRequest is the request body for the bulk product lookup.
type BulkInfoRequest struct {
	ProductIDs []int64 `json:"product_ids"`
}

// BulkInfo returns a bare JSON array with the reduced info of the requested
// active products.
func (h *ProductHandler) BulkInfo(c echo.Context) error {
	var req BulkInfoRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "Solicitud inválida")
	}

	products, err := h.productUC.BulkInfo(c.Request().Context(), req.ProductIDs)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	infos := make([]view.ProductInfo, 0, len(products))
	for _, product := range products {
		infos = append(infos, view.FromCatalogProductInfo(product, h.cfg.Media.URLPrefix))
	}

	return c.JSON(http.StatusOK, infos)
}
