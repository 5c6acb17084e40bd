package http

import (
	"errors"
	"net/http"

	"deal-tracker/internal/deal"
	pkgErrors "deal-tracker/pkg/errors"
)

var (
	errDuplicateAddress = pkgErrors.NewHTTPError(http.StatusConflict, "Property with this address exists. The existing property was attached to this response.")
	errDuplicateID      = pkgErrors.NewHTTPError(http.StatusConflict, "deal id already exists")
	errDealNotFound     = pkgErrors.NewHTTPError(http.StatusNotFound, "deal not found")
	errEmptyPatch       = pkgErrors.NewHTTPError(http.StatusBadRequest, "nothing to update")
	errMissingID        = pkgErrors.NewValidationError("id", "is required")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Anything unrecognised passes through and renders as 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, deal.ErrDuplicateAddress):
		return errDuplicateAddress
	case errors.Is(err, deal.ErrDuplicateID):
		return errDuplicateID
	case errors.Is(err, deal.ErrDealNotFound):
		return errDealNotFound
	case errors.Is(err, deal.ErrEmptyPatch):
		return errEmptyPatch
	case errors.Is(err, deal.ErrInvalidDeal):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return err
	}
}
