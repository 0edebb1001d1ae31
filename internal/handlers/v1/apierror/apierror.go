// Package apierror translates ledger sentinel errors into Huma status
// errors so every handler maps them the same way.
package apierror

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/ledger"
)

// FromError wraps err with the HTTP status matching its sentinel:
// NotFound 404, Validation 400, Conflict 409, anything else 500.
func FromError(message string, err error) error {
	switch {
	case errors.Is(err, ledger.ErrNotFound):
		return huma.NewError(http.StatusNotFound, message, err)
	case errors.Is(err, ledger.ErrValidation):
		return huma.NewError(http.StatusBadRequest, message, err)
	case errors.Is(err, ledger.ErrConflict):
		return huma.NewError(http.StatusConflict, message, err)
	}
	return huma.NewError(http.StatusInternalServerError, message, err)
}
