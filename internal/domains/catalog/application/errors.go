package application

import (
	"errors"
	"fmt"

	"github.com/ssanjae/offline-store/internal/domains/catalog/domain"
)

var (
	// ErrInvalidInput signals the request violated a domain invariant.
	ErrInvalidInput = errors.New("invalid catalog input")
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrInvalidProductID) ||
		errors.Is(err, domain.ErrInvalidPickupDate) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
