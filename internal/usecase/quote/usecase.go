package quote

import (
	"context"

	quoteDomain "sibbap-loan-engine/internal/domain/quote"
	"sibbap-loan-engine/pkg/id"
)

// Cache replays quotes for identical requests. Implemented by the redis
// quote cache; nil disables caching.
type Cache interface {
	Key(req quoteDomain.Request) (string, error)
	Get(ctx context.Context, key string) (*quoteDomain.LoanQuote, error)
	Set(ctx context.Context, key string, q *quoteDomain.LoanQuote) error
}

type Usecase struct {
	builder *quoteDomain.Builder
	repo    quoteDomain.Repository
	cache   Cache
}

func NewUsecase(b *quoteDomain.Builder, r quoteDomain.Repository, c Cache) *Usecase {
	return &Usecase{builder: b, repo: r, cache: c}
}

// Create builds a quote from the application request and persists it. An
// identical request within the cache TTL replays the first quote instead of
// minting a second one.
func (u *Usecase) Create(ctx context.Context, req quoteDomain.Request) (*QuoteDTO, error) {
	var key string
	if u.cache != nil {
		k, err := u.cache.Key(req)
		if err == nil {
			key = k
			if cached, err := u.cache.Get(ctx, key); err == nil && cached != nil {
				return toDTO(cached), nil
			}
		}
	}

	q, err := u.builder.Build(req)
	if err != nil {
		return nil, err
	}
	q.QuoteID = id.NewID32()

	if err := u.repo.Create(ctx, q); err != nil {
		return nil, err
	}

	if u.cache != nil && key != "" {
		// Best effort; a cold cache only costs a recompute.
		_ = u.cache.Set(ctx, key, q)
	}
	return toDTO(q), nil
}

func (u *Usecase) Get(ctx context.Context, quoteID string) (*QuoteDTO, error) {
	q, err := u.repo.GetByQuoteID(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	return toDTO(q), nil
}
