package storefrontserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	authapp "github.com/ssanjae/offline-store/internal/domains/auth/application"
	authports "github.com/ssanjae/offline-store/internal/domains/auth/ports"
	cartapp "github.com/ssanjae/offline-store/internal/domains/cart/application"
	cartdomain "github.com/ssanjae/offline-store/internal/domains/cart/domain"
	catalogapp "github.com/ssanjae/offline-store/internal/domains/catalog/application"
	catalogports "github.com/ssanjae/offline-store/internal/domains/catalog/ports"
	apierrors "github.com/ssanjae/offline-store/internal/shared/errors"
)

var (
	responder = apierrors.NewResponder(mapCatalogError, mapCartError, mapAuthError)
	// storeResponder treats unmapped read failures as the data store's own message.
	storeResponder = responder.WithFallback(func(err error) apierrors.ProblemDetail {
		return apierrors.NewDataStoreProblem(err.Error())
	})
)

func respondProblem(c *gin.Context, problem apierrors.ProblemDetail) {
	responder.Respond(c, problem)
}

// respondError falls back to 500 for unmapped failures.
func respondError(c *gin.Context, err error) {
	responder.RespondError(c, err)
}

// respondStoreError falls back to 502 with the data store's message unchanged.
func respondStoreError(c *gin.Context, err error) {
	storeResponder.RespondError(c, err)
}

func mapCatalogError(err error) (apierrors.ProblemDetail, bool) {
	switch {
	case errors.Is(err, catalogports.ErrNotConfigured):
		return apierrors.ErrUnavailable.WithDetail(err.Error()), true
	case errors.Is(err, catalogports.ErrNotFound) && !errors.Is(err, cartapp.ErrUnknownProduct):
		return apierrors.ErrNotFound.WithDetail(err.Error()), true
	case errors.Is(err, catalogapp.ErrInvalidInput):
		return apierrors.ErrBadRequest.WithDetail(err.Error()), true
	}
	return apierrors.ProblemDetail{}, false
}

func mapCartError(err error) (apierrors.ProblemDetail, bool) {
	switch {
	case errors.Is(err, cartapp.ErrUnknownProduct):
		return apierrors.ErrNotFound.WithDetail(err.Error()), true
	case errors.Is(err, cartdomain.ErrProductUnavailable), errors.Is(err, cartdomain.ErrPickupDateClosed):
		return apierrors.ErrConflict.WithDetail(err.Error()), true
	case errors.Is(err, cartapp.ErrInvalidInput):
		return apierrors.ErrBadRequest.WithDetail(err.Error()), true
	}
	return apierrors.ProblemDetail{}, false
}

func mapAuthError(err error) (apierrors.ProblemDetail, bool) {
	switch {
	case errors.Is(err, authports.ErrProviderNotConfigured):
		return apierrors.ErrUnavailable.WithDetail(err.Error()), true
	case errors.Is(err, authapp.ErrInvalidInput):
		return apierrors.ErrBadRequest.WithDetail(err.Error()), true
	case errors.Is(err, authapp.ErrAuthentication):
		return apierrors.ErrUnauthorized.WithDetail(err.Error()), true
	}
	return apierrors.ProblemDetail{}, false
}
