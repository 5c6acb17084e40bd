package http

import (
	"errors"
	"net/http"

	"deal-tracker/internal/user"
	pkgErrors "deal-tracker/pkg/errors"
)

var (
	errUserNotFound     = pkgErrors.NewHTTPError(http.StatusNotFound, "user not found")
	errAccessDisabled   = pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "access password is not configured")
	errLoginUnavailable = pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "login is not configured")
	errInvalidState     = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid login state")
	errLoginFailed      = pkgErrors.NewHTTPError(http.StatusBadGateway, "login failed")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, user.ErrUserNotFound):
		return errUserNotFound
	case errors.Is(err, user.ErrForbidden):
		return pkgErrors.ErrForbidden
	case errors.Is(err, user.ErrAccessDisabled):
		return errAccessDisabled
	case errors.Is(err, user.ErrInvalidProfile):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return err
	}
}
