package schedule

import (
	"context"
	"time"

	quoteDomain "sibbap-loan-engine/internal/domain/quote"
	scheduleDomain "sibbap-loan-engine/internal/domain/schedule"
)

type Usecase struct {
	quotes    quoteDomain.Repository
	scheduler *scheduleDomain.Scheduler
	repo      scheduleDomain.Repository
}

func NewUsecase(quotes quoteDomain.Repository, repo scheduleDomain.Repository) *Usecase {
	return &Usecase{quotes: quotes, scheduler: scheduleDomain.NewScheduler(), repo: repo}
}

// Generate produces the amortization schedule for a stored quote and
// persists it, replacing any previously generated schedule for the same
// quote (corrections regenerate, they never edit rows in place).
func (u *Usecase) Generate(ctx context.Context, quoteID string, startDate time.Time) (*scheduleDomain.Schedule, error) {
	q, err := u.quotes.GetByQuoteID(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	s, err := u.scheduler.Generate(q, startDate)
	if err != nil {
		return nil, err
	}
	if err := u.repo.Replace(ctx, quoteID, s.Installments); err != nil {
		return nil, err
	}
	return s, nil
}

func (u *Usecase) Get(ctx context.Context, quoteID string) (*scheduleDomain.Schedule, error) {
	rows, err := u.repo.GetByQuoteID(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, scheduleDomain.ErrNotFound
	}
	return &scheduleDomain.Schedule{QuoteID: quoteID, Installments: rows}, nil
}
