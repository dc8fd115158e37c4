package cli

import (
	"errors"

	"github.com/landmarket/landmarket-cli/internal/core/domain"
)

// renderError turns a domain error into the line printed to the user.
// Backend-supplied login messages pass through verbatim; everything else
// gets a short terminal-friendly phrasing.
func renderError(err error) string {
	switch {
	case errors.Is(err, domain.ErrAuthRequired):
		return "You need to sign in first. Run: landmarket login"
	case errors.Is(err, domain.ErrSessionExpired):
		return "Your session has expired. Run: landmarket login"
	case errors.Is(err, domain.ErrToggleInFlight):
		return "That listing is still being updated, try again in a moment."
	case errors.Is(err, domain.ErrLandNotFound):
		return "No such listing."
	case errors.Is(err, domain.ErrUserNotFound):
		return "No such user."
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return verr.Message
	}
	var aerr *domain.AuthError
	if errors.As(err, &aerr) {
		if aerr.Network {
			return "Could not reach the LandMarket backend. Check your connection and try again."
		}
		return aerr.Error()
	}
	var serr *domain.SyncError
	if errors.As(err, &serr) {
		return "Wishlist update failed and was undone. " + serr.Error()
	}

	return err.Error()
}
