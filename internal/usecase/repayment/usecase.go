// Package repayment transitions stored installments between payment states.
// Schedule generation leaves every row unpaid; this collaborator marks rows
// paid as payments post, and sweeps missed rows into overdue.
package repayment

import (
	"context"
	"time"

	scheduleDomain "sibbap-loan-engine/internal/domain/schedule"
)

type Usecase struct {
	repo scheduleDomain.Repository
}

func NewUsecase(repo scheduleDomain.Repository) *Usecase {
	return &Usecase{repo: repo}
}

// MarkPaid records payment of one installment. Overdue rows may still be
// paid; paying twice is rejected.
func (u *Usecase) MarkPaid(ctx context.Context, quoteID string, seq int) (*scheduleDomain.Installment, error) {
	in, err := u.repo.GetInstallment(ctx, quoteID, seq)
	if err != nil {
		return nil, err
	}
	if in.Status == scheduleDomain.StatusPaid {
		return nil, scheduleDomain.ErrAlreadyPaid
	}
	in.Status = scheduleDomain.StatusPaid
	if err := u.repo.Save(ctx, in); err != nil {
		return nil, err
	}
	return in, nil
}

// SweepOverdue marks every unpaid installment due before asOf as overdue and
// returns the number of rows affected.
func (u *Usecase) SweepOverdue(ctx context.Context, asOf time.Time) (int64, error) {
	return u.repo.MarkOverdueBefore(ctx, asOf)
}
