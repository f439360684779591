package application

import (
	"errors"
	"fmt"

	"github.com/ssanjae/offline-store/internal/domains/cart/domain"
	catalogdomain "github.com/ssanjae/offline-store/internal/domains/catalog/domain"
	catalogports "github.com/ssanjae/offline-store/internal/domains/catalog/ports"
)

var (
	// ErrInvalidInput signals the request violated a domain invariant.
	ErrInvalidInput = errors.New("invalid cart input")
	// ErrUnknownProduct means the catalog has no product with the requested id.
	ErrUnknownProduct = errors.New("unknown product")
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, catalogports.ErrNotFound) {
		return fmt.Errorf("%w: %w", ErrUnknownProduct, err)
	}
	if errors.Is(err, domain.ErrInvalidProductID) ||
		errors.Is(err, domain.ErrNegativeQuantity) ||
		errors.Is(err, domain.ErrProductUnavailable) ||
		errors.Is(err, domain.ErrPickupDateClosed) ||
		errors.Is(err, domain.ErrEmptyCartID) ||
		errors.Is(err, catalogdomain.ErrInvalidPickupDate) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
