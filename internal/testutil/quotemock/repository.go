// Package quotemock provides a hand-rolled quote.Repository double for
// usecase tests.
package quotemock

import (
	"context"
	"errors"

	quoteDomain "sibbap-loan-engine/internal/domain/quote"
)

type Repository struct {
	CreateFn       func(ctx context.Context, q *quoteDomain.LoanQuote) error
	GetByQuoteIDFn func(ctx context.Context, quoteID string) (*quoteDomain.LoanQuote, error)
}

func (m *Repository) Create(ctx context.Context, q *quoteDomain.LoanQuote) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, q)
	}
	return nil
}

func (m *Repository) GetByQuoteID(ctx context.Context, quoteID string) (*quoteDomain.LoanQuote, error) {
	if m.GetByQuoteIDFn != nil {
		return m.GetByQuoteIDFn(ctx, quoteID)
	}
	return nil, errors.New("not implemented")
}
