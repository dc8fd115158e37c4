package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenInfo is a locally decoded view of the session token, used for
// display only. The client holds no signing key, so the payload is read
// without verification; nothing here grants or revokes access.
type TokenInfo struct {
	Subject   string
	ExpiresAt time.Time
	IssuedAt  time.Time
}

// Expired reports whether the token carries an expiry in the past. False
// when the token has no exp claim.
func (ti TokenInfo) Expired() bool {
	return !ti.ExpiresAt.IsZero() && time.Now().After(ti.ExpiresAt)
}

// InspectToken decodes the claims of a JWT without verifying its
// signature. Returns an error for tokens that are not JWTs at all; the
// backend may issue opaque tokens and callers must tolerate that.
func InspectToken(token string) (*TokenInfo, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("decode token: %w", err)
	}

	info := &TokenInfo{}
	if sub, err := claims.GetSubject(); err == nil {
		info.Subject = sub
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		info.ExpiresAt = exp.Time
	}
	if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
		info.IssuedAt = iat.Time
	}
	return info, nil
}
