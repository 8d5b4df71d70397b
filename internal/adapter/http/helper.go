package http

import (
	"errors"
	"net/http"

	"sibbap-loan-engine/internal/domain/policy"
	quoteDomain "sibbap-loan-engine/internal/domain/quote"
	scheduleDomain "sibbap-loan-engine/internal/domain/schedule"
)

// statusFor maps engine errors onto HTTP status codes. The engine never
// shapes transport responses itself; that translation lives here.
func statusFor(err error) int {
	switch {
	case errors.Is(err, quoteDomain.ErrNotFound), errors.Is(err, scheduleDomain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, policy.ErrUnknownLoanType):
		return http.StatusUnprocessableEntity
	case errors.Is(err, scheduleDomain.ErrAlreadyPaid):
		return http.StatusConflict
	case errors.Is(err, policy.ErrInvalidRequest),
		errors.Is(err, policy.ErrEligibilityExceeded),
		errors.Is(err, policy.ErrTermUndetermined),
		errors.Is(err, policy.ErrTermOutOfRange),
		errors.Is(err, policy.ErrInvalidTerm):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func errorJSON(err error) ErrorResponse {
	return ErrorResponse{Error: err.Error()}
}
