package handler

import (
	"net/http"

	"tienda/config"
	"tienda/internal/delivery/http/middleware"
	"tienda/internal/delivery/http/response"
	"tienda/internal/delivery/http/view"
	"tienda/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// WishlistHandlerParams holds dependencies for WishlistHandler, injected by Fx.
type WishlistHandlerParams struct {
	fx.In

	WishlistUC usecase.WishlistUsecase
	Config     *config.Config
}

// WishlistHandler serves the wishlist page and its mutation endpoint. All
// routes sit behind the auth middleware.
type WishlistHandler struct {
	wishlistUC usecase.WishlistUsecase
	cfg        *config.Config
}

// NewWishlistHandler is the constructor for WishlistHandler
func NewWishlistHandler(params WishlistHandlerParams) *WishlistHandler {
	return &WishlistHandler{
		wishlistUC: params.WishlistUC,
		cfg:        params.Config,
	}
}

// WishlistMutationRequest is the body of POST /wishlist/ajax/.
type WishlistMutationRequest struct {
	Action    string `json:"action" validate:"required,oneof=add remove"`
	ProductID int64  `json:"product_id" validate:"required"`
}

// Page renders the user's saved products, kept regardless of current
// product activity.
func (h *WishlistHandler) Page(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Debes iniciar sesión para realizar esta acción")
	}

	lines, err := h.wishlistUC.List(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Render(http.StatusOK, "wishlist.html", map[string]any{
		"Titulo": "Mis favoritos",
		"Items":  view.FromWishlistLines(lines, h.cfg.Media.URLPrefix),
	})
}

// Mutate adds or removes a saved product. Both actions are idempotent.
func (h *WishlistHandler) Mutate(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Debes iniciar sesión para realizar esta acción")
	}

	var req WishlistMutationRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "Solicitud inválida")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "Acción de favoritos inválida")
	}

	var message string
	switch req.Action {
	case "add":
		created, err := h.wishlistUC.Add(c.Request().Context(), userID, req.ProductID)
		if err != nil {
			return response.HandleAppError(c, err)
		}
		if created {
			message = "Producto agregado a favoritos"
		} else {
			message = "Producto ya estaba en favoritos"
		}
	case "remove":
		if err := h.wishlistUC.Remove(c.Request().Context(), userID, req.ProductID); err != nil {
			return response.HandleAppError(c, err)
		}
		message = "Producto eliminado de favoritos"
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"message": message,
	})
}
