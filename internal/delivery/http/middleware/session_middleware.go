package middleware

import (
	"net/http"

	"tienda/config"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const sessionKeyContextKey = "sessionKey"

// SessionMiddleware resolves the anonymous session cookie that scopes a
// guest's cart. A session is only minted on the first cart write, never on
// reads, so crawlers do not accumulate empty sessions.
type SessionMiddleware struct {
	cfg *config.Config
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(cfg *config.Config) *SessionMiddleware {
	return &SessionMiddleware{cfg: cfg}
}

// Resolve stashes an existing session cookie value on the context.
func (m *SessionMiddleware) Resolve(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if cookie, err := c.Cookie(m.cfg.Session.CookieName); err == nil && cookie.Value != "" {
			c.Set(sessionKeyContextKey, cookie.Value)
		}

		return next(c)
	}
}

// Ensure returns the current session key, minting one and setting the cookie
// when the caller has none yet.
func (m *SessionMiddleware) Ensure(c echo.Context) string {
	if key, ok := GetSessionKey(c); ok {
		return key
	}

	key := uuid.NewString()
	c.SetCookie(&http.Cookie{
		Name:     m.cfg.Session.CookieName,
		Value:    key,
		Path:     "/",
		MaxAge:   int(m.cfg.Session.MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   m.cfg.Session.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	c.Set(sessionKeyContextKey, key)

	return key
}

// GetSessionKey returns the session key resolved for this request, if any.
func GetSessionKey(c echo.Context) (string, bool) {
	key, ok := c.Get(sessionKeyContextKey).(string)

	return key, ok && key != ""
}
