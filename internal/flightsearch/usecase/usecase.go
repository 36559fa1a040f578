package usecase

import (
	"fmt"

	"github.com/shandysiswandi/goskiplagged/internal/flightsearch/airport"
	"github.com/shandysiswandi/goskiplagged/internal/flightsearch/provider"
	"github.com/shandysiswandi/goskiplagged/internal/pkg/pkguid"
)

type Dependency struct {
	Provider provider.Provider
	Airports airport.Directory
	Zones    *airport.Zones
	UID      pkguid.StringID

	DurationMode DurationMode
	FixedZone    string
	// LocalSort re-sorts accepted itineraries by the requested sort mode
	// instead of trusting provider order.
	LocalSort bool
	// SkipUnknownAirports discards itineraries touching an airport missing
	// from the directory instead of failing the search.
	SkipUnknownAirports bool
}

type Usecase struct {
	provider    provider.Provider
	airports    airport.Directory
	uid         pkguid.StringID
	transformer *transformer
	localSort   bool
	skipUnknown bool
}

func New(dep Dependency) (*Usecase, error) {
	zones := dep.Zones
	if zones == nil {
		zones = airport.NewZones()
	}
	uid := dep.UID
	if uid == nil {
		uid = pkguid.NewUUID()
	}

	mode := dep.DurationMode
	if mode == "" {
		mode = DurationZoned
	}
	if mode != DurationZoned && mode != DurationFixedZone {
		return nil, fmt.Errorf("unknown duration mode %q", mode)
	}

	fixedZone := dep.FixedZone
	if fixedZone == "" {
		fixedZone = DefaultFixedZone
	}
	fixedLoc, err := zones.Load(fixedZone)
	if err != nil {
		return nil, fmt.Errorf("fixed zone: %w", err)
	}

	return &Usecase{
		provider: dep.Provider,
		airports: dep.Airports,
		uid:      uid,
		transformer: &transformer{
			airports:     dep.Airports,
			zones:        zones,
			durationMode: mode,
			fixedZone:    fixedLoc,
		},
		localSort:   dep.LocalSort,
		skipUnknown: dep.SkipUnknownAirports,
	}, nil
}
