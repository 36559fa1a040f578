package usecase

import (
	"strings"
	"time"

	"github.com/shandysiswandi/goskiplagged/internal/flightsearch/entity"
)

// LegCheck is what a PartialTripPolicy sees for each leg, in order.
type LegCheck struct {
	Index  int
	Total  int
	Depart entity.Airport
	Arrive entity.Airport
}

func (l LegCheck) Last() bool {
	return l.Index == l.Total-1
}

// PartialTripPolicy decides, leg by leg, whether an itinerary survives.
// Returning false for any leg discards the whole itinerary.
type PartialTripPolicy interface {
	Keep(leg LegCheck) bool
}

// DestinationCityPolicy drops itineraries whose final leg lands in a city
// other than the destination's.
type DestinationCityPolicy struct {
	City         string
	AllowPartial bool
}

func (p DestinationCityPolicy) Keep(leg LegCheck) bool {
	if p.AllowPartial || !leg.Last() {
		return true
	}
	return leg.Arrive.City == p.City
}

// DestinationCodePolicy drops itineraries that touch down at the destination
// airport before their final leg, i.e. the destination is only a layover.
type DestinationCodePolicy struct {
	Code         string
	AllowPartial bool
}

func (p DestinationCodePolicy) Keep(leg LegCheck) bool {
	if p.AllowPartial || leg.Last() {
		return true
	}
	return !strings.EqualFold(leg.Arrive.IATA, p.Code)
}

// DepartureWindow compares the first departure with Hour o'clock on Date in
// the departure airport's zone. Differences are counted in whole minutes.
type DepartureWindow struct {
	Date time.Time
	Hour int
	Mode entity.WindowMode
}

func (w DepartureWindow) Threshold(loc *time.Location) time.Time {
	return time.Date(w.Date.Year(), w.Date.Month(), w.Date.Day(), w.Hour, 0, 0, 0, loc)
}

func (w DepartureWindow) Keep(departAt time.Time) bool {
	diff := int64(departAt.Sub(w.Threshold(departAt.Location())) / time.Minute)
	switch w.Mode {
	case entity.WindowBefore:
		return diff <= 0
	case entity.WindowAfter:
		return diff >= 0
	default:
		return true
	}
}

// Policy bundles the filters one search variant applies.
type Policy struct {
	PartialTrips PartialTripPolicy
	Window       *DepartureWindow
}
