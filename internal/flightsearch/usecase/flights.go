package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shandysiswandi/goskiplagged/internal/flightsearch/entity"
	"github.com/shandysiswandi/goskiplagged/internal/flightsearch/provider"
)

type Variant string

const (
	// VariantSearch drops itineraries whose last leg lands outside the
	// destination city.
	VariantSearch Variant = "search"
	// VariantFiltered drops itineraries that only lay over at the
	// destination airport and honors the departure time window.
	VariantFiltered Variant = "filtered"
)

type SearchOutput struct {
	SearchID          string
	Criteria          SearchCriteria
	Metadata          SearchMetadata
	Itineraries       []entity.Itinerary
	ReturnItineraries []entity.Itinerary
}

type SearchCriteria struct {
	Variant       Variant
	Origin        string
	Destination   string
	DepartureDate string
	ReturnDate    string
	Sort          entity.SortMode
	// ResultsCount is -1 when unbounded.
	ResultsCount int
	PartialTrips bool
	FlightTime   *entity.FlightTime
}

type SearchMetadata struct {
	Provider     string
	Scanned      int
	Discarded    int
	TotalResults int
	SearchTimeMs int64
}

type assembleStats struct {
	scanned   int
	discarded int
}

// Search runs the hidden-city aware search: itineraries whose final leg does
// not land in the destination city are dropped unless PartialTrips is set.
func (u *Usecase) Search(ctx context.Context, in entity.TripRequest) (*SearchOutput, error) {
	return u.run(ctx, in, VariantSearch)
}

// FilteredSearch drops itineraries that pass through the destination airport
// before their last leg unless PartialTrips is set, and applies FlightTime to
// the first departure.
func (u *Usecase) FilteredSearch(ctx context.Context, in entity.TripRequest) (*SearchOutput, error) {
	return u.run(ctx, in, VariantFiltered)
}

func (u *Usecase) run(ctx context.Context, in entity.TripRequest, variant Variant) (*SearchOutput, error) {
	start := time.Now()

	plan, err := buildRequest(in)
	if err != nil {
		return nil, err
	}

	departPolicy, returnPolicy, err := u.policies(plan, variant)
	if err != nil {
		return nil, err
	}

	searchID := u.uid.Generate()
	logger := slog.With("search_id", searchID, "variant", variant, "provider", u.provider.Name())
	logger.InfoContext(ctx, "flight search started",
		"from", plan.request.From, "to", plan.request.To, "depart", plan.request.Depart, "return", plan.request.Return)

	payload, err := u.provider.Search(ctx, plan.request)
	if err != nil {
		logger.ErrorContext(ctx, "flight search failed", "error", err)
		return nil, fmt.Errorf("%s search: %w", u.provider.Name(), err)
	}

	departs, departStats, err := u.assemble(payload, payload.Depart, departPolicy, plan)
	if err != nil {
		logger.ErrorContext(ctx, "flight search failed", "error", err)
		return nil, err
	}

	returns := []entity.Itinerary{}
	returnStats := assembleStats{}
	if plan.request.Return != "" && len(payload.Return) > 0 {
		returns, returnStats, err = u.assemble(payload, payload.Return, returnPolicy, plan)
		if err != nil {
			logger.ErrorContext(ctx, "flight search failed", "error", err)
			return nil, err
		}
	}

	output := &SearchOutput{
		SearchID: searchID,
		Criteria: SearchCriteria{
			Variant:       variant,
			Origin:        plan.request.From,
			Destination:   plan.request.To,
			DepartureDate: plan.request.Depart,
			ReturnDate:    plan.request.Return,
			Sort:          plan.trip.Sort,
			ResultsCount:  plan.limit,
			PartialTrips:  plan.trip.PartialTrips,
		},
		Metadata: SearchMetadata{
			Provider:     u.provider.Name(),
			Scanned:      departStats.scanned + returnStats.scanned,
			Discarded:    departStats.discarded + returnStats.discarded,
			TotalResults: len(departs) + len(returns),
			SearchTimeMs: time.Since(start).Milliseconds(),
		},
		Itineraries:       departs,
		ReturnItineraries: returns,
	}
	if variant == VariantFiltered {
		output.Criteria.FlightTime = plan.trip.FlightTime
	}

	logger.InfoContext(ctx, "flight search finished",
		"results", output.Metadata.TotalResults,
		"scanned", output.Metadata.Scanned,
		"discarded", output.Metadata.Discarded,
		"search_time_ms", output.Metadata.SearchTimeMs)

	return output, nil
}

// policies builds the outbound and return filters for variant. The search
// variant resolves city names up front so an unknown origin or destination
// fails before any request is sent.
func (u *Usecase) policies(plan searchPlan, variant Variant) (Policy, Policy, error) {
	trip := plan.trip
	if variant == VariantSearch {
		dest, err := u.airports.Lookup(trip.Destination)
		if err != nil {
			return Policy{}, Policy{}, err
		}
		depart := Policy{PartialTrips: DestinationCityPolicy{City: dest.City, AllowPartial: trip.PartialTrips}}

		ret := Policy{}
		if trip.ReturnDate != "" {
			origin, err := u.airports.Lookup(trip.Origin)
			if err != nil {
				return Policy{}, Policy{}, err
			}
			ret.PartialTrips = DestinationCityPolicy{City: origin.City, AllowPartial: trip.PartialTrips}
		}
		return depart, ret, nil
	}

	depart := Policy{PartialTrips: DestinationCodePolicy{Code: trip.Destination, AllowPartial: trip.PartialTrips}}
	// Hour 0 leaves the departure time unrestricted.
	if trip.FlightTime != nil && trip.FlightTime.Hour != 0 {
		depart.Window = &DepartureWindow{Date: plan.departDate, Hour: trip.FlightTime.Hour, Mode: trip.FlightTime.Mode}
	}
	ret := Policy{PartialTrips: DestinationCodePolicy{Code: trip.Origin, AllowPartial: trip.PartialTrips}}
	return depart, ret, nil
}

// assemble transforms offers in provider order. Scanning stops once both the
// scanned index and the accepted count reach the limit; with local sort on
// every offer is scanned, sorted, then truncated.
func (u *Usecase) assemble(p *provider.Payload, offers []provider.Offer, policy Policy, plan searchPlan) ([]entity.Itinerary, assembleStats, error) {
	limit := plan.limit
	scanLimit := limit
	if u.localSort {
		scanLimit = unlimited
	}

	stats := assembleStats{}
	accepted := make([]entity.Itinerary, 0)
	for i, offer := range offers {
		if scanLimit != unlimited && i >= scanLimit && len(accepted) >= scanLimit {
			break
		}
		stats.scanned++

		it, keep, err := u.transformer.transform(p, offer, policy)
		if err != nil {
			var lookupErr *entity.LookupError
			if u.skipUnknown && errors.As(err, &lookupErr) {
				stats.discarded++
				continue
			}
			return nil, stats, err
		}
		if !keep {
			stats.discarded++
			continue
		}
		accepted = append(accepted, it)
	}

	if u.localSort {
		sortItineraries(accepted, plan.trip.Sort)
	}
	if limit != unlimited && len(accepted) > limit {
		accepted = accepted[:limit]
	}

	return accepted, stats, nil
}
