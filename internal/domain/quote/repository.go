package quote

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("quote not found")

type Repository interface {
	Create(ctx context.Context, q *LoanQuote) error
	GetByQuoteID(ctx context.Context, quoteID string) (*LoanQuote, error)
}
