package mysql

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	scheduleDomain "sibbap-loan-engine/internal/domain/schedule"
)

type ScheduleRepository struct{ db *gorm.DB }

func NewScheduleRepository(db *gorm.DB) *ScheduleRepository { return &ScheduleRepository{db: db} }

// Replace swaps the stored schedule for a quote in one transaction. A
// generated schedule is never edited row-by-row; corrections come in as a
// full regeneration.
func (r *ScheduleRepository) Replace(ctx context.Context, quoteID string, rows []scheduleDomain.Installment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("quote_id = ?", quoteID).Delete(&scheduleDomain.Installment{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}

func (r *ScheduleRepository) GetByQuoteID(ctx context.Context, quoteID string) ([]scheduleDomain.Installment, error) {
	var out []scheduleDomain.Installment
	err := r.db.WithContext(ctx).
		Where("quote_id = ?", quoteID).
		Order("sequence ASC").
		Find(&out).Error
	return out, err
}

func (r *ScheduleRepository) GetInstallment(ctx context.Context, quoteID string, seq int) (*scheduleDomain.Installment, error) {
	var out scheduleDomain.Installment
	res := r.db.WithContext(ctx).
		Where("quote_id = ? AND sequence = ?", quoteID, seq).
		First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, scheduleDomain.ErrNotFound
	}
	if res.Error != nil {
		return nil, res.Error
	}
	return &out, nil
}

func (r *ScheduleRepository) Save(ctx context.Context, in *scheduleDomain.Installment) error {
	return r.db.WithContext(ctx).Save(in).Error
}

func (r *ScheduleRepository) MarkOverdueBefore(ctx context.Context, asOf time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&scheduleDomain.Installment{}).
		Where("status = ? AND due_date < ?", scheduleDomain.StatusUnpaid, asOf).
		Update("status", scheduleDomain.StatusOverdue)
	return res.RowsAffected, res.Error
}
