package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/shopspring/decimal"

	"sibbap-loan-engine/internal/domain/quote"
)

func testCache(t *testing.T) (*QuoteCache, *miniredis.Miniredis) {
	t.Helper()
	s := miniredis.RunT(t)
	c, err := OpenRedis(s.Addr(), 0)
	if err != nil {
		t.Fatalf("OpenRedis: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return NewQuoteCache(c, 5*time.Minute), s
}

func sampleRequest() quote.Request {
	return quote.Request{
		LoanType:           "marketing",
		RequestedPrincipal: decimal.RequireFromString("40000"),
		ShareCapital:       decimal.RequireFromString("25000"),
		TermMonths:         6,
	}
}

func TestQuoteCache_MissThenHit(t *testing.T) {
	qc, _ := testCache(t)
	ctx := context.Background()

	key, err := qc.Key(sampleRequest())
	if err != nil {
		t.Fatalf("Key: %v", err)
	}

	got, err := qc.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get (miss): %v", err)
	}
	if got != nil {
		t.Fatalf("expected miss, got %+v", got)
	}

	q := &quote.LoanQuote{
		QuoteID:    "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		LoanType:   "marketing",
		Principal:  decimal.RequireFromString("40000"),
		TermMonths: 6,
	}
	if err := qc.Set(ctx, key, q); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err = qc.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get (hit): %v", err)
	}
	if got == nil || got.QuoteID != q.QuoteID || !got.Principal.Equal(q.Principal) {
		t.Fatalf("cached quote mismatch: %+v", got)
	}
}

func TestQuoteCache_KeyIsStableAndInputSensitive(t *testing.T) {
	qc, _ := testCache(t)

	k1, _ := qc.Key(sampleRequest())
	k2, _ := qc.Key(sampleRequest())
	if k1 != k2 {
		t.Fatalf("same request hashed to different keys: %s / %s", k1, k2)
	}

	other := sampleRequest()
	other.TermMonths = 7
	k3, _ := qc.Key(other)
	if k1 == k3 {
		t.Fatal("different requests hashed to the same key")
	}
}

func TestQuoteCache_EntryExpires(t *testing.T) {
	qc, s := testCache(t)
	ctx := context.Background()

	key, _ := qc.Key(sampleRequest())
	if err := qc.Set(ctx, key, &quote.LoanQuote{QuoteID: "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"}); err != nil {
		t.Fatalf("Set: %v", err)
	}

	s.FastForward(6 * time.Minute)

	got, err := qc.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get after expiry: %v", err)
	}
	if got != nil {
		t.Fatalf("entry should have expired, got %+v", got)
	}
}
