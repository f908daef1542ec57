package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"loanapi/internal/access"
	customerDomain "loanapi/internal/domain/customer"
	loanDomain "loanapi/internal/domain/loan"
	userDomain "loanapi/internal/domain/user"
	"loanapi/internal/usecase/auth"
)

// respondError maps the domain error taxonomy onto HTTP statuses. Anything
// unclassified is a processing error and stays opaque to the caller.
func respondError(c echo.Context, err error) error {
	var ve *loanDomain.ValidationError
	var pe *loanDomain.PaymentError

	switch {
	case errors.As(err, &ve):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: ve.Reason})
	case errors.As(err, &pe):
		status := http.StatusBadRequest
		if pe.Kind == loanDomain.PaymentAlreadyPaid {
			status = http.StatusConflict
		}
		return c.JSON(status, map[string]string{"error": pe.Detail, "kind": string(pe.Kind)})
	case errors.Is(err, loanDomain.ErrNotFound),
		errors.Is(err, customerDomain.ErrNotFound),
		errors.Is(err, userDomain.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, access.ErrDenied):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "access denied"})
	case errors.Is(err, loanDomain.ErrInsufficientCredit):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	case errors.Is(err, auth.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "processing error"})
	}
}
