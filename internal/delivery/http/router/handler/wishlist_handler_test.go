package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tienda/internal/delivery/http/validator"
	mockUC "tienda/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newWishlistTestContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(http.MethodPost, "/wishlist/ajax/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestWishlistHandler_Mutate_AddCreated(t *testing.T) {
	wishlistUC := &mockUC.MockWishlistUsecase{}
	h := NewWishlistHandler(WishlistHandlerParams{
		WishlistUC: wishlistUC,
		Config:     newTestConfig(),
	})

	c, rec := newWishlistTestContext(t, `{"action":"add","product_id":7}`)
	userID := setAuthenticatedUser(c)

	wishlistUC.On("Add", mock.Anything, userID, int64(7)).Return(true, nil)

	require.NoError(t, h.Mutate(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "Producto agregado a favoritos", resp["message"])
}

func TestWishlistHandler_Mutate_AddAlreadySaved(t *testing.T) {
	wishlistUC := &mockUC.MockWishlistUsecase{}
	h := NewWishlistHandler(WishlistHandlerParams{
		WishlistUC: wishlistUC,
		Config:     newTestConfig(),
	})

	c, rec := newWishlistTestContext(t, `{"action":"add","product_id":7}`)
	userID := setAuthenticatedUser(c)

	wishlistUC.On("Add", mock.Anything, userID, int64(7)).Return(false, nil)

	require.NoError(t, h.Mutate(c))

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Producto ya estaba en favoritos", resp["message"])
}

func TestWishlistHandler_Mutate_Remove(t *testing.T) {
	wishlistUC := &mockUC.MockWishlistUsecase{}
	h := NewWishlistHandler(WishlistHandlerParams{
		WishlistUC: wishlistUC,
		Config:     newTestConfig(),
	})

	c, rec := newWishlistTestContext(t, `{"action":"remove","product_id":7}`)
	userID := setAuthenticatedUser(c)

	wishlistUC.On("Remove", mock.Anything, userID, int64(7)).Return(nil)

	require.NoError(t, h.Mutate(c))

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "Producto eliminado de favoritos", resp["message"])
}

func TestWishlistHandler_Mutate_InvalidAction(t *testing.T) {
	wishlistUC := &mockUC.MockWishlistUsecase{}
	h := NewWishlistHandler(WishlistHandlerParams{
		WishlistUC: wishlistUC,
		Config:     newTestConfig(),
	})

	c, rec := newWishlistTestContext(t, `{"action":"toggle","product_id":7}`)
	setAuthenticatedUser(c)

	require.NoError(t, h.Mutate(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "Acción de favoritos inválida", resp["error"])

	wishlistUC.AssertNotCalled(t, "Add")
	wishlistUC.AssertNotCalled(t, "Remove")
}

func TestWishlistHandler_Mutate_RequiresAuthentication(t *testing.T) {
	wishlistUC := &mockUC.MockWishlistUsecase{}
	h := NewWishlistHandler(WishlistHandlerParams{
		WishlistUC: wishlistUC,
		Config:     newTestConfig(),
	})

	c, rec := newWishlistTestContext(t, `{"action":"add","product_id":7}`)

	require.NoError(t, h.Mutate(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
