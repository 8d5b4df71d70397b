package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"sibbap-loan-engine/internal/domain/quote"
)

// QuoteCache replays built quotes for identical application requests.
// BuildQuote is deterministic, so a hash of the canonical request JSON is a
// safe key: a replayed entry is byte-identical to what a recompute would
// produce, and it carries the quote id of the first submission, which gives
// us at-most-one persisted quote per identical request.
type QuoteCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewQuoteCache(rdb *redis.Client, ttl time.Duration) *QuoteCache {
	return &QuoteCache{rdb: rdb, ttl: ttl}
}

// Key derives the cache key from the request.
func (c *QuoteCache) Key(req quote.Request) (string, error) {
	b, err := json.Marshal(req)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(b)
	return "quote:req:" + hex.EncodeToString(sum[:]), nil
}

// Get returns the cached quote for key, or (nil, nil) on a miss.
func (c *QuoteCache) Get(ctx context.Context, key string) (*quote.LoanQuote, error) {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var q quote.LoanQuote
	if err := json.Unmarshal(raw, &q); err != nil {
		return nil, err
	}
	return &q, nil
}

func (c *QuoteCache) Set(ctx context.Context, key string, q *quote.LoanQuote) error {
	raw, err := json.Marshal(q)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, raw, c.ttl).Err()
}
