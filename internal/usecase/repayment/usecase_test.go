package repayment

import (
	"context"
	"errors"
	"testing"
	"time"

	scheduleDomain "sibbap-loan-engine/internal/domain/schedule"
	"sibbap-loan-engine/internal/testutil/schedmock"
)

const qid = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"

func TestMarkPaid(t *testing.T) {
	var saved *scheduleDomain.Installment
	uc := NewUsecase(&schedmock.Repository{
		GetInstallmentFn: func(ctx context.Context, quoteID string, seq int) (*scheduleDomain.Installment, error) {
			return &scheduleDomain.Installment{QuoteID: quoteID, Sequence: seq, Status: scheduleDomain.StatusOverdue}, nil
		},
		SaveFn: func(ctx context.Context, in *scheduleDomain.Installment) error {
			saved = in
			return nil
		},
	})

	in, err := uc.MarkPaid(context.Background(), qid, 2)
	if err != nil {
		t.Fatalf("MarkPaid: %v", err)
	}
	if in.Status != scheduleDomain.StatusPaid {
		t.Errorf("status = %s, want paid", in.Status)
	}
	if saved == nil || saved.Status != scheduleDomain.StatusPaid {
		t.Error("updated row was not saved")
	}
}

func TestMarkPaid_AlreadyPaid(t *testing.T) {
	uc := NewUsecase(&schedmock.Repository{
		GetInstallmentFn: func(ctx context.Context, quoteID string, seq int) (*scheduleDomain.Installment, error) {
			return &scheduleDomain.Installment{QuoteID: quoteID, Sequence: seq, Status: scheduleDomain.StatusPaid}, nil
		},
		SaveFn: func(ctx context.Context, in *scheduleDomain.Installment) error {
			t.Fatal("Save must not be called for an already-paid installment")
			return nil
		},
	})
	if _, err := uc.MarkPaid(context.Background(), qid, 1); !errors.Is(err, scheduleDomain.ErrAlreadyPaid) {
		t.Fatalf("err = %v, want ErrAlreadyPaid", err)
	}
}

func TestMarkPaid_NotFound(t *testing.T) {
	uc := NewUsecase(&schedmock.Repository{
		GetInstallmentFn: func(ctx context.Context, quoteID string, seq int) (*scheduleDomain.Installment, error) {
			return nil, scheduleDomain.ErrNotFound
		},
	})
	if _, err := uc.MarkPaid(context.Background(), qid, 99); !errors.Is(err, scheduleDomain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestSweepOverdue(t *testing.T) {
	var gotAsOf time.Time
	uc := NewUsecase(&schedmock.Repository{
		MarkOverdueBeforeFn: func(ctx context.Context, asOf time.Time) (int64, error) {
			gotAsOf = asOf
			return 3, nil
		},
	})

	asOf := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)
	n, err := uc.SweepOverdue(context.Background(), asOf)
	if err != nil {
		t.Fatalf("SweepOverdue: %v", err)
	}
	if n != 3 {
		t.Errorf("rows = %d, want 3", n)
	}
	if !gotAsOf.Equal(asOf) {
		t.Errorf("asOf = %s, want %s", gotAsOf, asOf)
	}
}
