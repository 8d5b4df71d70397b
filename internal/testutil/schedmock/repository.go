// Package schedmock provides a hand-rolled schedule.Repository double for
// usecase tests.
package schedmock

import (
	"context"
	"errors"
	"time"

	scheduleDomain "sibbap-loan-engine/internal/domain/schedule"
)

type Repository struct {
	ReplaceFn           func(ctx context.Context, quoteID string, rows []scheduleDomain.Installment) error
	GetByQuoteIDFn      func(ctx context.Context, quoteID string) ([]scheduleDomain.Installment, error)
	GetInstallmentFn    func(ctx context.Context, quoteID string, seq int) (*scheduleDomain.Installment, error)
	SaveFn              func(ctx context.Context, in *scheduleDomain.Installment) error
	MarkOverdueBeforeFn func(ctx context.Context, asOf time.Time) (int64, error)
}

func (m *Repository) Replace(ctx context.Context, quoteID string, rows []scheduleDomain.Installment) error {
	if m.ReplaceFn != nil {
		return m.ReplaceFn(ctx, quoteID, rows)
	}
	return nil
}

func (m *Repository) GetByQuoteID(ctx context.Context, quoteID string) ([]scheduleDomain.Installment, error) {
	if m.GetByQuoteIDFn != nil {
		return m.GetByQuoteIDFn(ctx, quoteID)
	}
	return nil, errors.New("not implemented")
}

func (m *Repository) GetInstallment(ctx context.Context, quoteID string, seq int) (*scheduleDomain.Installment, error) {
	if m.GetInstallmentFn != nil {
		return m.GetInstallmentFn(ctx, quoteID, seq)
	}
	return nil, errors.New("not implemented")
}

func (m *Repository) Save(ctx context.Context, in *scheduleDomain.Installment) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, in)
	}
	return nil
}

func (m *Repository) MarkOverdueBefore(ctx context.Context, asOf time.Time) (int64, error) {
	if m.MarkOverdueBeforeFn != nil {
		return m.MarkOverdueBeforeFn(ctx, asOf)
	}
	return 0, nil
}
