package handler

import (
	"net/http"

	"tienda/config"
	"tienda/internal/delivery/http/middleware"
	"tienda/internal/delivery/http/response"
	"tienda/internal/delivery/http/view"
	"tienda/internal/domain/entity"
	"tienda/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC  usecase.CartUsecase
	Session *middleware.SessionMiddleware
	Config  *config.Config
}

// CartHandler serves the cart page and the cart mutation endpoint.
type CartHandler struct {
	cartUC  usecase.CartUsecase
	session *middleware.SessionMiddleware
	cfg     *config.Config
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC:  params.CartUC,
		session: params.Session,
		cfg:     params.Config,
	}
}

// CartMutationRequest is the body of POST /carrito/ajax/.
type CartMutationRequest struct {
	Action    string `json:"action" validate:"required,oneof=add update remove"`
	ProductID int64  `json:"product_id" validate:"required"`
	Quantity  *int   `json:"quantity"`
}

// Page renders the cart. A visitor without a session sees an empty cart; no
// session is minted by reads.
func (h *CartHandler) Page(c echo.Context) error {
	owner, ok := h.readOwner(c)
	if !ok {
		return h.renderCart(c, nil, decimal.Zero)
	}

	cart, err := h.cartUC.List(c.Request().Context(), owner)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return h.renderCart(c, view.FromCartLines(cart.Lines, h.cfg.Media.URLPrefix), cart.Subtotal)
}

// Mutate applies an add, update or remove action and returns the mutation
// envelope. This is the single write entry point of the cart.
func (h *CartHandler) Mutate(c echo.Context) error {
	var req CartMutationRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "Solicitud inválida")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "Acción de carrito inválida")
	}

	owner := h.writeOwner(c)

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	var (
		summary *usecase.CartSummary
		message string
		err     error
	)
	switch req.Action {
	case "add":
		summary, err = h.cartUC.Add(c.Request().Context(), owner, req.ProductID, quantity)
		message = "Carrito actualizado correctamente"
	case "update":
		summary, err = h.cartUC.Update(c.Request().Context(), owner, req.ProductID, quantity)
		message = "Carrito actualizado correctamente"
	case "remove":
		summary, err = h.cartUC.Remove(c.Request().Context(), owner, req.ProductID)
		message = "Producto eliminado del carrito"
	}
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.JSON(http.StatusOK, view.NewCartMutationResponse(message, summary))
}

func (h *CartHandler) renderCart(c echo.Context, items []view.CartLine, subtotal decimal.Decimal) error {
	return c.Render(http.StatusOK, "carrito.html", map[string]any{
		"Titulo":   "Carrito",
		"Items":    items,
		"Subtotal": subtotal.StringFixed(2),
		"Total":    subtotal.StringFixed(2),
	})
}

// readOwner resolves the cart identity without side effects.
func (h *CartHandler) readOwner(c echo.Context) (entity.CartOwner, bool) {
	if userID, ok := middleware.GetUserID(c); ok {
		return entity.UserOwner(userID), true
	}
	if key, ok := middleware.GetSessionKey(c); ok {
		return entity.AnonymousOwner(key), true
	}

	return entity.CartOwner{}, false
}

// writeOwner resolves the cart identity, minting an anonymous session on a
// guest's first write.
func (h *CartHandler) writeOwner(c echo.Context) entity.CartOwner {
	if userID, ok := middleware.GetUserID(c); ok {
		return entity.UserOwner(userID)
	}

	return entity.AnonymousOwner(h.session.Ensure(c))
}
