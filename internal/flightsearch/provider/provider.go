package provider

import (
	"context"
	"net/url"
)

// SearchRequest is the normalized query sent to a provider.
type SearchRequest struct {
	From   string
	To     string
	Depart string
	Return string
	Sort   string
}

// Query renders from, to, depart, sort and, when set, return.
func (r SearchRequest) Query() url.Values {
	q := url.Values{}
	q.Set("from", r.From)
	q.Set("to", r.To)
	q.Set("depart", r.Depart)
	q.Set("sort", r.Sort)
	if r.Return != "" {
		q.Set("return", r.Return)
	}
	return q
}

type Provider interface {
	Name() string
	Search(ctx context.Context, req SearchRequest) (*Payload, error)
}
