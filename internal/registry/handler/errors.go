package handler

import (
	"errors"
	"net/http"

	"nomen/internal/registry/models"
	"nomen/pkg/platform/httputil"
)

// mapError translates domain failures into the HTTP error envelope. Anything
// unrecognized stays as-is and surfaces as an opaque 500.
func mapError(err error) error {
	var (
		insufficient *models.InsufficientFundsError
		notExists    *models.NameNotExistsError
		taken        *models.NameTakenError
		incompatible *models.IncompatibleMigrationError
	)
	switch {
	case models.IsValidation(err):
		return httputil.NewError(http.StatusBadRequest, "validation_error", err.Error())
	case errors.As(err, &insufficient):
		return httputil.NewError(http.StatusPaymentRequired, "insufficient_funds", err.Error())
	case errors.Is(err, models.ErrUnauthorized):
		return httputil.NewError(http.StatusForbidden, "forbidden", err.Error())
	case errors.As(err, &notExists):
		return httputil.NewError(http.StatusNotFound, "not_found", err.Error())
	case errors.As(err, &taken):
		return httputil.NewError(http.StatusConflict, "conflict", err.Error())
	case errors.Is(err, models.ErrAlreadyInitialized):
		return httputil.NewError(http.StatusConflict, "conflict", err.Error())
	case errors.As(err, &incompatible):
		return httputil.NewError(http.StatusConflict, "conflict", err.Error())
	case errors.Is(err, models.ErrNotInitialized):
		return httputil.NewError(http.StatusServiceUnavailable, "not_initialized", err.Error())
	default:
		return err
	}
}
