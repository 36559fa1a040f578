package inbound

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shandysiswandi/goskiplagged/internal/flightsearch/entity"
	"github.com/shandysiswandi/goskiplagged/internal/flightsearch/usecase"
	"github.com/shandysiswandi/goskiplagged/internal/pkg/pkgerror"
)

const usage = `usage: goskiplagged <command> [flags]

commands:
  search     search itineraries, dropping ones that end outside the destination city
  filtered   search itineraries, dropping destination layovers, with an optional departure window
  help       show this message

flags:
`

type CLIEndpoint struct {
	uc  uc
	out io.Writer
}

// Run executes one command and returns the process exit code. Results and
// errors are both written to out as JSON: one object for a single departure
// date, an array when several dates were searched. The first failing search
// aborts the run.
func (c *CLIEndpoint) Run(ctx context.Context, args []string) int {
	if len(args) == 0 {
		return c.fail(pkgerror.NewBusiness("expected one of 'search', 'filtered' or 'help'", pkgerror.CodeInvalidInput), false)
	}

	var search func(context.Context, entity.TripRequest) (*usecase.SearchOutput, error)
	switch args[0] {
	case "search":
		search = c.uc.Search
	case "filtered":
		search = c.uc.FilteredSearch
	case "help", "-h", "--help":
		fmt.Fprint(c.out, usage)
		fmt.Fprint(c.out, newFlagSet(commandFiltered).FlagUsages())
		return 0
	default:
		return c.fail(pkgerror.NewBusiness(fmt.Sprintf("unknown command %q", args[0]), pkgerror.CodeInvalidInput), false)
	}

	trips, opts, err := parseTripInput(args[0], args[1:])
	if err != nil {
		return c.fail(err, opts.pretty)
	}

	responses := make([]SearchResponse, 0, len(trips))
	for _, in := range trips {
		output, err := search(ctx, in)
		if err != nil {
			return c.fail(err, opts.pretty)
		}
		responses = append(responses, mapSearchResponse(output))
	}

	var body any = responses
	if len(responses) == 1 {
		body = responses[0]
	}
	if err := c.write(body, opts.pretty); err != nil {
		return pkgerror.CodeInternal.ExitCode()
	}
	return 0
}

func (c *CLIEndpoint) fail(err error, pretty bool) int {
	resp := mapErrorResponse(err)
	_ = c.write(resp, pretty)
	return classify(err).ExitCode()
}

func (c *CLIEndpoint) write(v any, pretty bool) error {
	enc := json.NewEncoder(c.out)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
