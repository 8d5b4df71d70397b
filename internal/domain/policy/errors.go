package policy

import "errors"

var (
	// ErrUnknownLoanType means the requested type is not in the policy table.
	// Unrecoverable: the caller must not proceed with the application.
	ErrUnknownLoanType = errors.New("unknown loan type")

	// ErrInvalidRequest covers missing or non-positive required fields.
	ErrInvalidRequest = errors.New("invalid loan application request")

	// ErrEligibilityExceeded is returned when the borrower's eligibility for
	// the type is zero and an amount was still requested. When eligibility is
	// positive the builder clamps instead of failing.
	ErrEligibilityExceeded = errors.New("requested amount exceeds eligibility")

	// ErrTermUndetermined means the principal falls outside every term band.
	ErrTermUndetermined = errors.New("no repayment term defined for principal")

	// ErrTermOutOfRange means the caller-selected term is outside [1, typeMax].
	ErrTermOutOfRange = errors.New("term out of range for loan type")

	// ErrInvalidTerm guards schedule generation against a quote with a
	// non-positive term. Should not occur for quotes built by this engine.
	ErrInvalidTerm = errors.New("invalid term")
)
