package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	quoteDomain "sibbap-loan-engine/internal/domain/quote"
)

type QuoteRepository struct{ db *gorm.DB }

func NewQuoteRepository(db *gorm.DB) *QuoteRepository { return &QuoteRepository{db: db} }

func (r *QuoteRepository) Create(ctx context.Context, q *quoteDomain.LoanQuote) error {
	return r.db.WithContext(ctx).Create(q).Error
}

func (r *QuoteRepository) GetByQuoteID(ctx context.Context, quoteID string) (*quoteDomain.LoanQuote, error) {
	var out quoteDomain.LoanQuote
	res := r.db.WithContext(ctx).Where("quote_id = ?", quoteID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, quoteDomain.ErrNotFound
	}
	if res.Error != nil {
		return nil, res.Error
	}
	return &out, nil
}
