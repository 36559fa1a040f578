package provider

import (
	"context"
	"errors"
	"testing"
	"time"
)

type countingProvider struct {
	calls int
}

func (c *countingProvider) Name() string { return "counting" }

func (c *countingProvider) Search(context.Context, SearchRequest) (*Payload, error) {
	c.calls++
	return &Payload{}, nil
}

func TestRateLimitedProvider(t *testing.T) {
	inner := &countingProvider{}
	p := NewRateLimitedProvider(inner, time.Hour)

	if p.Name() != "counting" {
		t.Errorf("Name() = %q", p.Name())
	}
	if _, err := p.Search(context.Background(), SearchRequest{}); err != nil {
		t.Fatalf("first Search() error = %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := p.Search(ctx, SearchRequest{})
	if err == nil {
		t.Fatal("second Search() within the interval succeeded")
	}
	if errors.Is(err, context.Canceled) {
		t.Errorf("unexpected cancel error: %v", err)
	}
	if inner.calls != 1 {
		t.Errorf("inner calls = %d, want 1", inner.calls)
	}
}
