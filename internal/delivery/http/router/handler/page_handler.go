package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// PageHandler serves the static-ish pages.
type PageHandler struct{}

// NewPageHandler creates a new PageHandler instance
func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// Contact renders the contact page; POST flashes a confirmation. Actual
// message delivery is outside the storefront.
func (h *PageHandler) Contact(c echo.Context) error {
	data := map[string]any{
		"Titulo": "Contacto",
	}
	if c.Request().Method == http.MethodPost {
		data["Mensaje"] = "Mensaje enviado correctamente. Te contactaremos pronto."
	}

	return c.Render(http.StatusOK, "contacto.html", data)
}

// HealthCheck reports service liveness.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
