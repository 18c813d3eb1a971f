package middleware

import (
	"net/http"
	"time"

	"bakery-storefront/internal/session"

	"github.com/labstack/echo/v4"
)

const (
	SessionCookie = "bakery_session"
	sessionKey    = "session_id"
	sessionMaxAge = 30 * 24 * time.Hour
)

// Session attaches the visitor's session id to the context, starting a new
// session when the cookie is missing or unknown.
func Session(store *session.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if cookie, err := c.Cookie(SessionCookie); err == nil {
				if _, ok := store.Get(cookie.Value); ok {
					c.Set(sessionKey, cookie.Value)
					return next(c)
				}
			}

			id, _ := store.Create()
			c.SetCookie(&http.Cookie{
				Name:     SessionCookie,
				Value:    id,
				Path:     "/",
				MaxAge:   int(sessionMaxAge.Seconds()),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
			c.Set(sessionKey, id)
			return next(c)
		}
	}
}

func SessionID(c echo.Context) string {
	id, _ := c.Get(sessionKey).(string)
	return id
}

// AdminOnly rejects sessions that have not entered admin mode.
// The admin flag comes from a shared password and does not authenticate anyone.
func AdminOnly(store *session.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			state, ok := store.Get(SessionID(c))
			if !ok || !state.IsAdmin {
				return echo.NewHTTPError(http.StatusUnauthorized, session.ErrAdminRequired.Error())
			}
			return next(c)
		}
	}
}
