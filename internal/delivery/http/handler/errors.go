package handler

import (
	"errors"
	"net/http"

	"go-health-consult-platform/pkg/apperror"
	"go-health-consult-platform/pkg/response"
)

// writeUsecaseError maps the typed usecase errors onto HTTP statuses:
// NotFoundError -> 404, AuthorizationError -> 403, ValidationError -> 409,
// anything else -> 500 with a generic message.
func writeUsecaseError(w http.ResponseWriter, err error, fallback string) {
	var notFoundErr *apperror.NotFoundError
	var authzErr *apperror.AuthorizationError
	var validationErr *apperror.ValidationError

	switch {
	case errors.As(err, &notFoundErr):
		response.NotFound(w, notFoundErr.Message)
	case errors.As(err, &authzErr):
		response.Forbidden(w, authzErr.Message)
	case errors.As(err, &validationErr):
		response.Error(w, http.StatusConflict, validationErr.Message, nil)
	default:
		response.InternalServerError(w, fallback)
	}
}
