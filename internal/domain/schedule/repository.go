package schedule

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound    = errors.New("installment not found")
	ErrAlreadyPaid = errors.New("installment already paid")
)

type Repository interface {
	// Replace atomically swaps the stored schedule for a quote: any prior
	// installments are dropped and the new rows inserted in one transaction.
	Replace(ctx context.Context, quoteID string, rows []Installment) error
	GetByQuoteID(ctx context.Context, quoteID string) ([]Installment, error)
	GetInstallment(ctx context.Context, quoteID string, seq int) (*Installment, error)
	Save(ctx context.Context, in *Installment) error
	// MarkOverdueBefore flips unpaid installments due strictly before asOf to
	// overdue, returning how many rows changed.
	MarkOverdueBefore(ctx context.Context, asOf time.Time) (int64, error)
}
