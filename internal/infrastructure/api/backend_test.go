package api

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// fakeBackend is an in-process stand-in for the LandMarket REST API.
// Tests register routes on Echo and point a Client at the httptest server.
type fakeBackend struct {
	echo *echo.Echo
	srv  *httptest.Server

	// lastAuth and lastRequestID capture headers from the most recent
	// request, for assertions on what the transport actually sends.
	lastAuth      string
	lastRequestID string
}

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()

	b := &fakeBackend{echo: echo.New()}
	b.echo.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			b.lastAuth = c.Request().Header.Get("Authorization")
			b.lastRequestID = c.Request().Header.Get("X-Request-ID")
			return next(c)
		}
	})
	b.srv = httptest.NewServer(b.echo)
	t.Cleanup(b.srv.Close)
	return b
}

func (b *fakeBackend) client() *Client {
	return New(b.srv.URL, 2*time.Second, zerolog.Nop())
}

func (b *fakeBackend) rejectWith(status int, message string) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(status, map[string]string{"message": message})
	}
}
