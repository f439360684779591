package application

import (
	"errors"
	"fmt"

	"github.com/ssanjae/offline-store/internal/domains/auth/domain"
	"github.com/ssanjae/offline-store/internal/domains/auth/ports"
)

var (
	// ErrInvalidInput signals the request violated a domain invariant.
	ErrInvalidInput = errors.New("invalid login input")
	// ErrAuthentication wraps failures reported by the identity provider.
	ErrAuthentication = errors.New("authentication failed")
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrEmptyToken) ||
		errors.Is(err, domain.ErrNoPendingOAuth) ||
		errors.Is(err, domain.ErrStateMismatch) ||
		errors.Is(err, domain.ErrEmptyIdentityID) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if errors.Is(err, ports.ErrNoSession) {
		return fmt.Errorf("%w: %w", ErrAuthentication, err)
	}
	return err
}
