// Package handler contains the HTTP handlers for the storefront.
package handler

import (
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"tienda/config"
	"tienda/internal/delivery/http/middleware"
	"tienda/internal/delivery/http/response"
	"tienda/internal/delivery/http/view"
	"tienda/internal/domain/repository"
	"tienda/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	ProductUC usecase.ProductUsecase
	Config    *config.Config
	Logger    *slog.Logger
}

// CatalogHandler serves the home page and the catalog listing.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	productUC usecase.ProductUsecase
	cfg       *config.Config
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		productUC: params.ProductUC,
		cfg:       params.Config,
		logger:    params.Logger,
	}
}

// Home renders the landing page with featured products and top categories.
func (h *CatalogHandler) Home(c echo.Context) error {
	data, err := h.productUC.Home(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Render(http.StatusOK, "home.html", map[string]any{
		"Titulo":     "Inicio",
		"Destacados": view.FromCatalogProducts(data.Featured, h.cfg.Media.URLPrefix),
		"Categorias": data.TopCategories,
	})
}

// List serves the catalog: JSON envelope for AJAX callers, rendered page
// otherwise. All filter parsing is tolerant; bad values degrade silently.
func (h *CatalogHandler) List(c echo.Context) error {
	query := parseCatalogQuery(c.QueryParams(), h.cfg.Catalog)

	page, err := h.catalogUC.List(c.Request().Context(), query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if middleware.IsJSONRequested(c) {
		return c.JSON(http.StatusOK, view.NewCatalogResponse(page, h.cfg.Media.URLPrefix))
	}

	return c.Render(http.StatusOK, "catalogo.html", map[string]any{
		"Titulo":     "Catálogo",
		"Productos":  view.FromCatalogProducts(page.Products, h.cfg.Media.URLPrefix),
		"Paginacion": page.Pagination,
		"Categorias": page.Categories,
		"Marcas":     page.Brands,
		"Busqueda":   query.Search,
	})
}

// parseCatalogQuery folds the raw query string into a CatalogQuery. Unknown
// or malformed values are dropped, never rejected.
func parseCatalogQuery(params url.Values, catalogCfg *config.CatalogConfig) repository.CatalogQuery {
	query := repository.CatalogQuery{
		CategoryIDs:     parseIDList(params["categoria"]),
		BrandIDs:        parseIDList(params["marca"]),
		PriceMin:        parsePrice(params.Get("precio_min")),
		PriceMax:        parsePrice(params.Get("precio_max")),
		Availability:    repository.ParseAvailability(params["disponibilidad"]),
		Search:          params.Get("search"),
		Sort:            repository.ParseSort(params.Get("sort")),
		ItemsPerPage:    catalogCfg.ItemsPerPage,
		MaxItemsPerPage: catalogCfg.MaxItemsPerPage,
	}

	if rating, err := strconv.Atoi(params.Get("rating")); err == nil {
		query.RatingMin = rating
	}
	if perPage, err := strconv.Atoi(params.Get("items_per_page")); err == nil && perPage > 0 {
		query.ItemsPerPage = perPage
	}
	if page, err := strconv.Atoi(params.Get("page")); err == nil {
		query.Page = page
	}

	return query
}

func parseIDList(raw []string) []int64 {
	var ids []int64
	for _, value := range raw {
		if id, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64); err == nil {
			ids = append(ids, id)
		}
	}

	return ids
}

func parsePrice(raw string) *decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	price, err := decimal.NewFromString(raw)
	if err != nil || price.IsNegative() {
		return nil
	}

	return &price
}
