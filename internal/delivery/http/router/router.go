// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"tienda/internal/delivery/http/middleware"
	"tienda/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler  *handler.CatalogHandler
	ProductHandler  *handler.ProductHandler
	CartHandler     *handler.CartHandler
	WishlistHandler *handler.WishlistHandler
	PageHandler     *handler.PageHandler
	AuthMiddleware  *middleware.AuthMiddleware
	SessionMW       *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler  *handler.CatalogHandler
	productHandler  *handler.ProductHandler
	cartHandler     *handler.CartHandler
	wishlistHandler *handler.WishlistHandler
	pageHandler     *handler.PageHandler
	authMiddleware  *middleware.AuthMiddleware
	sessionMW       *middleware.SessionMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler:  params.CatalogHandler,
		productHandler:  params.ProductHandler,
		cartHandler:     params.CartHandler,
		wishlistHandler: params.WishlistHandler,
		pageHandler:     params.PageHandler,
		authMiddleware:  params.AuthMiddleware,
		sessionMW:       params.SessionMW,
	}
}

// RegisterRoutes sets up all the routes for the storefront.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Every route resolves the anonymous session cookie and, when a Bearer
	// token is present, the authenticated user.
	e.Use(r.sessionMW.Resolve)
	e.Use(r.authMiddleware.OptionalAuthenticate)

	// Storefront pages
	e.GET("/", r.catalogHandler.Home)
	e.GET("/catalogo/", r.catalogHandler.List)
	e.GET("/catalogo/ajax/", r.catalogHandler.List)
	e.GET("/productos/", r.catalogHandler.List) // legacy alias
	e.GET("/producto/:slug/", r.productHandler.Detail)
	e.POST("/producto/:id/quick-view/", r.productHandler.QuickView)
	e.GET("/contacto/", r.pageHandler.Contact)
	e.POST("/contacto/", r.pageHandler.Contact)

	// Cart: anonymous or authenticated
	e.GET("/carrito/", r.cartHandler.Page)
	e.POST("/carrito/ajax/", r.cartHandler.Mutate)
	e.POST("/agregar-carrito/", r.cartHandler.Mutate) // legacy alias

	// Bulk product info for the cart drawer
	e.POST("/productos/info/", r.productHandler.BulkInfo)

	// Wishlist requires authentication
	wishlistGroup := e.Group("/wishlist")
	wishlistGroup.Use(r.authMiddleware.Authenticate)
	{
		wishlistGroup.GET("/", r.wishlistHandler.Page)
		wishlistGroup.POST("/ajax/", r.wishlistHandler.Mutate)
	}
}
