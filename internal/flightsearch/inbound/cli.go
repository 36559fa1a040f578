package inbound

import (
	"context"
	"io"

	"github.com/shandysiswandi/goskiplagged/internal/flightsearch/entity"
	"github.com/shandysiswandi/goskiplagged/internal/flightsearch/usecase"
)

type uc interface {
	Search(ctx context.Context, in entity.TripRequest) (*usecase.SearchOutput, error)
	FilteredSearch(ctx context.Context, in entity.TripRequest) (*usecase.SearchOutput, error)
}

func NewCLIEndpoint(uc uc, out io.Writer) *CLIEndpoint {
	return &CLIEndpoint{uc: uc, out: out}
}
