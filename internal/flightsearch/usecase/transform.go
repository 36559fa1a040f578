package usecase

import (
	"fmt"
	"time"

	"github.com/shandysiswandi/goskiplagged/internal/flightsearch/airport"
	"github.com/shandysiswandi/goskiplagged/internal/flightsearch/entity"
	"github.com/shandysiswandi/goskiplagged/internal/flightsearch/provider"
)

type DurationMode string

const (
	// DurationZoned reads each leg endpoint in its own airport's zone and
	// subtracts the instants.
	DurationZoned DurationMode = "zoned"
	// DurationFixedZone reads both endpoints as wall clock in one fixed zone
	// before subtracting, ignoring the airports' zones.
	DurationFixedZone DurationMode = "fixed_zone"

	DefaultFixedZone = "America/New_York"
)

var naiveLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

type zoneLoader interface {
	Load(name string) (*time.Location, error)
}

type transformer struct {
	airports     airport.Directory
	zones        zoneLoader
	durationMode DurationMode
	fixedZone    *time.Location
}

// transform builds one output itinerary. keep is false when policy discards
// it; err is non-nil for unknown airports or unreadable timestamps.
func (t *transformer) transform(p *provider.Payload, offer provider.Offer, policy Policy) (entity.Itinerary, bool, error) {
	flight, ok := p.Flights[offer.Key]
	if !ok || len(flight.Legs) == 0 {
		return entity.Itinerary{}, false, &entity.MalformedResponseError{Reason: fmt.Sprintf("flight %q has no legs", offer.Key)}
	}

	it := entity.Itinerary{
		Price:           FormatPrice(offer.PricePennies),
		PricePennies:    offer.PricePennies,
		Duration:        FormatDuration(flight.DurationSeconds),
		DurationSeconds: flight.DurationSeconds,
		Legs:            make([]entity.Leg, 0, len(flight.Legs)),
		FlightKey:       offer.Key,
		FlightKeyLong:   offer.FlightKeyLong,
	}

	for i, raw := range flight.Legs {
		from, fromLoc, err := t.resolve(raw.DepartAirport)
		if err != nil {
			return entity.Itinerary{}, false, err
		}
		to, toLoc, err := t.resolve(raw.ArriveAirport)
		if err != nil {
			return entity.Itinerary{}, false, err
		}

		check := LegCheck{Index: i, Total: len(flight.Legs), Depart: from, Arrive: to}
		if policy.PartialTrips != nil && !policy.PartialTrips.Keep(check) {
			return entity.Itinerary{}, false, nil
		}

		departAt, err := parseLegTime(raw.DepartAt, fromLoc)
		if err != nil {
			return entity.Itinerary{}, false, malformedLeg(offer.Key, i, err)
		}
		arriveAt, err := parseLegTime(raw.ArriveAt, toLoc)
		if err != nil {
			return entity.Itinerary{}, false, malformedLeg(offer.Key, i, err)
		}

		if i == 0 && policy.Window != nil && !policy.Window.Keep(departAt) {
			return entity.Itinerary{}, false, nil
		}

		seconds, err := t.timestampDifference(raw, departAt, arriveAt)
		if err != nil {
			return entity.Itinerary{}, false, malformedLeg(offer.Key, i, err)
		}

		leg := entity.Leg{
			Airline:         p.Airline(raw.FlightCode),
			FlightCode:      raw.FlightCode,
			Duration:        FormatDuration(seconds),
			DurationSeconds: seconds,
			DepartingFrom:   from.Describe(),
			DepartureTime:   FormatTimestamp(departAt),
			ArrivingAt:      to.Describe(),
			ArrivalTime:     FormatTimestamp(arriveAt),
		}
		if check.Index == 0 {
			it.DepartureTime = leg.DepartureTime
		}
		if check.Last() {
			it.ArrivalTime = leg.ArrivalTime
		}
		it.Legs = append(it.Legs, leg)
	}

	return it, true, nil
}

func (t *transformer) resolve(code string) (entity.Airport, *time.Location, error) {
	a, err := t.airports.Lookup(code)
	if err != nil {
		return entity.Airport{}, nil, err
	}
	loc, err := t.zones.Load(a.Timezone)
	if err != nil {
		return entity.Airport{}, nil, fmt.Errorf("airport %s: %w", a.IATA, err)
	}
	return a, loc, nil
}

// timestampDifference returns the leg duration in whole seconds.
func (t *transformer) timestampDifference(raw provider.RawLeg, departAt, arriveAt time.Time) (int64, error) {
	if t.durationMode == DurationFixedZone {
		var err error
		if departAt, err = parseLegTime(raw.DepartAt, t.fixedZone); err != nil {
			return 0, err
		}
		if arriveAt, err = parseLegTime(raw.ArriveAt, t.fixedZone); err != nil {
			return 0, err
		}
	}
	return int64(arriveAt.Sub(departAt) / time.Second), nil
}

// parseLegTime reads a provider timestamp. Stamps with an offset are
// absolute and only converted to loc; naive stamps are wall clock in loc.
func parseLegTime(value string, loc *time.Location) (time.Time, error) {
	if at, err := time.Parse(time.RFC3339, value); err == nil {
		return at.In(loc), nil
	}
	for _, layout := range naiveLayouts {
		if at, err := time.ParseInLocation(layout, value, loc); err == nil {
			return at, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", value)
}

func malformedLeg(key string, index int, err error) error {
	return &entity.MalformedResponseError{Reason: fmt.Sprintf("flight %q leg %d", key, index), Err: err}
}
