package inbound

import (
	"context"
	"errors"
	"io"
	"net"
	"strings"

	"github.com/shandysiswandi/goskiplagged/internal/flightsearch/entity"
	"github.com/shandysiswandi/goskiplagged/internal/flightsearch/usecase"
	"github.com/shandysiswandi/goskiplagged/internal/pkg/pkgerror"
	"github.com/spf13/pflag"
)

const (
	commandSearch   = "search"
	commandFiltered = "filtered"
)

type cliOptions struct {
	pretty bool
}

func newFlagSet(command string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(command, pflag.ContinueOnError)
	fs.String("from", "", "origin airport IATA code")
	fs.String("to", "", "destination airport IATA code")
	fs.StringSlice("depart", nil, "departure date, YYYY-MM-DD; repeat or comma-separate to search several dates")
	fs.String("return", "", "return date, YYYY-MM-DD")
	fs.String("sort", string(entity.SortCost), "cost, duration or path")
	fs.Int("results", -1, "maximum itineraries; negative for all, 0 for one")
	fs.Bool("partial-trips", false, "keep hidden-city itineraries")
	fs.Bool("pretty", false, "indent JSON output")
	if command == commandFiltered {
		fs.Int("flight-time", 0, "hour of day 1-24 to compare the first departure against, 0 for any time")
		fs.String("before-or-after", "", "BEFORE or AFTER flight-time")
	}
	return fs
}

// parseTripInput returns one trip per departure date, in flag order.
func parseTripInput(command string, args []string) ([]entity.TripRequest, cliOptions, error) {
	fs := newFlagSet(command)
	fs.SetOutput(io.Discard)

	opts := cliOptions{}
	if err := fs.Parse(args); err != nil {
		return nil, opts, pkgerror.Wrap(err, "invalid flags", pkgerror.CodeInvalidInput)
	}
	opts.pretty, _ = fs.GetBool("pretty")

	in := entity.TripRequest{
		Origin:      getString(fs, "from"),
		Destination: getString(fs, "to"),
		ReturnDate:  getString(fs, "return"),
		Sort:        entity.SortMode(strings.ToLower(getString(fs, "sort"))),
	}
	in.PartialTrips, _ = fs.GetBool("partial-trips")

	if fs.Changed("results") {
		results, _ := fs.GetInt("results")
		in.ResultsCount = &results
	}

	if command == commandFiltered {
		mode := strings.ToUpper(getString(fs, "before-or-after"))
		hourSet := fs.Changed("flight-time")
		if hourSet != (mode != "") {
			return nil, opts, pkgerror.NewBusiness("flight-time and before-or-after must be given together", pkgerror.CodeInvalidInput)
		}
		if hourSet {
			hour, _ := fs.GetInt("flight-time")
			in.FlightTime = &entity.FlightTime{Hour: hour, Mode: entity.WindowMode(mode)}
		}
	}

	dates, _ := fs.GetStringSlice("depart")
	if len(dates) == 0 {
		return []entity.TripRequest{in}, opts, nil
	}

	trips := make([]entity.TripRequest, 0, len(dates))
	for _, date := range dates {
		trip := in
		trip.DepartureDate = strings.TrimSpace(date)
		trips = append(trips, trip)
	}
	return trips, opts, nil
}

func getString(fs *pflag.FlagSet, name string) string {
	value, _ := fs.GetString(name)
	return strings.TrimSpace(value)
}

// classify maps domain errors onto pkgerror codes.
func classify(err error) pkgerror.Code {
	var (
		missingErr   *entity.MissingFieldError
		invalidErr   *entity.InvalidFieldError
		lookupErr    *entity.LookupError
		malformedErr *entity.MalformedResponseError
		upstreamErr  *entity.UpstreamError
		netErr       net.Error
	)
	switch {
	case errors.As(err, &missingErr), errors.As(err, &invalidErr):
		return pkgerror.CodeInvalidInput
	case errors.As(err, &lookupErr):
		return pkgerror.CodeNotFound
	case errors.As(err, &malformedErr):
		return pkgerror.CodeMalformed
	case errors.As(err, &upstreamErr), errors.As(err, &netErr), errors.Is(err, context.DeadlineExceeded):
		return pkgerror.CodeUpstream
	default:
		return pkgerror.CodeOf(err)
	}
}

func mapSearchResponse(out *usecase.SearchOutput) SearchResponse {
	resp := SearchResponse{
		SearchID: out.SearchID,
		Criteria: CriteriaResponse{
			Variant:       string(out.Criteria.Variant),
			From:          out.Criteria.Origin,
			To:            out.Criteria.Destination,
			DepartureDate: out.Criteria.DepartureDate,
			ReturnDate:    out.Criteria.ReturnDate,
			Sort:          string(out.Criteria.Sort),
			PartialTrips:  out.Criteria.PartialTrips,
		},
		Metadata: MetadataResponse{
			Provider:     out.Metadata.Provider,
			TotalResults: out.Metadata.TotalResults,
			Scanned:      out.Metadata.Scanned,
			Discarded:    out.Metadata.Discarded,
			SearchTimeMs: out.Metadata.SearchTimeMs,
		},
		Itineraries:       mapItineraries(out.Itineraries),
		ReturnItineraries: mapItineraries(out.ReturnItineraries),
	}
	if out.Criteria.ResultsCount >= 0 {
		count := out.Criteria.ResultsCount
		resp.Criteria.ResultsCount = &count
	}
	if ft := out.Criteria.FlightTime; ft != nil {
		resp.Criteria.FlightTime = &FlightTimeResponse{Hour: ft.Hour, BeforeOrAfter: string(ft.Mode)}
	}
	return resp
}

func mapItineraries(list []entity.Itinerary) []ItineraryResponse {
	resp := make([]ItineraryResponse, 0, len(list))
	for _, it := range list {
		legs := make([]LegResponse, 0, len(it.Legs))
		for _, leg := range it.Legs {
			legs = append(legs, LegResponse{
				Airline:         leg.Airline,
				FlightCode:      leg.FlightCode,
				Duration:        leg.Duration,
				DurationSeconds: leg.DurationSeconds,
				DepartingFrom:   leg.DepartingFrom,
				DepartureTime:   leg.DepartureTime,
				ArrivingAt:      leg.ArrivingAt,
				ArrivalTime:     leg.ArrivalTime,
			})
		}
		resp = append(resp, ItineraryResponse{
			Price:           it.Price,
			PricePennies:    it.PricePennies,
			Duration:        it.Duration,
			DurationSeconds: it.DurationSeconds,
			DepartureTime:   it.DepartureTime,
			ArrivalTime:     it.ArrivalTime,
			Legs:            legs,
			FlightKey:       it.FlightKey,
			FlightKeyLong:   it.FlightKeyLong,
		})
	}
	return resp
}

func mapErrorResponse(err error) ErrorResponse {
	resp := ErrorResponse{Error: classify(err).String(), Message: err.Error()}

	var (
		missingErr *entity.MissingFieldError
		invalidErr *entity.InvalidFieldError
		lookupErr  *entity.LookupError
	)
	switch {
	case errors.As(err, &missingErr):
		resp.Field = missingErr.Field
	case errors.As(err, &invalidErr):
		resp.Field = invalidErr.Field
	case errors.As(err, &lookupErr):
		resp.Field = lookupErr.Code
	}
	return resp
}
