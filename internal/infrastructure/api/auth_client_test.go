package api

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/landmarket/landmarket-cli/internal/core/domain"
)

func TestAuthClient_LoginSuccess(t *testing.T) {
	b := newFakeBackend(t)
	b.echo.POST("/auth/login", func(c echo.Context) error {
		var req loginRequest
		require.NoError(t, c.Bind(&req))
		assert.Equal(t, "ana@example.com", req.Email)
		assert.Equal(t, "s3cret99", req.Password)
		return c.JSON(http.StatusOK, map[string]string{
			"token":  "tok-1",
			"userId": "u-1",
			"role":   "USER",
		})
	})

	res, err := NewAuthClient(b.client()).Login(context.Background(), "ana@example.com", "s3cret99")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", res.Token)
	assert.Equal(t, "u-1", res.UserID)
	assert.Equal(t, domain.RoleUser, res.Role)

	// Login happens before any session exists; no bearer must be sent.
	assert.Empty(t, b.lastAuth)
	assert.NotEmpty(t, b.lastRequestID)
}

func TestAuthClient_RejectionCarriesBackendMessage(t *testing.T) {
	b := newFakeBackend(t)
	b.echo.POST("/auth/login", b.rejectWith(http.StatusUnauthorized, "Incorrect email or password"))

	_, err := NewAuthClient(b.client()).Login(context.Background(), "ana@example.com", "wrong")

	var ae *domain.AuthError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "Incorrect email or password", ae.Message)
	assert.False(t, ae.Network)
}

func TestAuthClient_NetworkFailureFlagged(t *testing.T) {
	b := newFakeBackend(t)
	cli := b.client()
	b.srv.Close() // backend gone before the call

	_, err := NewAuthClient(cli).Login(context.Background(), "ana@example.com", "s3cret99")

	var ae *domain.AuthError
	require.ErrorAs(t, err, &ae)
	assert.True(t, ae.Network)
	assert.Empty(t, ae.Message)
}

func TestAuthClient_EmptyTokenIsContractViolation(t *testing.T) {
	b := newFakeBackend(t)
	b.echo.POST("/auth/login", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"userId": "u-1", "role": "USER"})
	})

	_, err := NewAuthClient(b.client()).Login(context.Background(), "ana@example.com", "s3cret99")

	var ae *domain.AuthError
	require.ErrorAs(t, err, &ae)
	assert.False(t, ae.Network)
	assert.NotEmpty(t, ae.Message)
}

func TestClient_TimeoutIsTransportError(t *testing.T) {
	b := newFakeBackend(t)
	b.echo.POST("/auth/login", func(c echo.Context) error {
		time.Sleep(200 * time.Millisecond)
		return c.NoContent(http.StatusOK)
	})
	cli := New(b.srv.URL, 20*time.Millisecond, zerolog.Nop())

	_, err := NewAuthClient(cli).Login(context.Background(), "ana@example.com", "s3cret99")

	var ae *domain.AuthError
	require.ErrorAs(t, err, &ae)
	assert.True(t, ae.Network)
	var te *transportError
	assert.True(t, errors.As(ae.Cause, &te))
}
