package flightsearch

import (
	"fmt"
	"io"

	"github.com/shandysiswandi/goskiplagged/internal/flightsearch/airport"
	"github.com/shandysiswandi/goskiplagged/internal/flightsearch/inbound"
	"github.com/shandysiswandi/goskiplagged/internal/flightsearch/provider"
	"github.com/shandysiswandi/goskiplagged/internal/flightsearch/usecase"
	"github.com/shandysiswandi/goskiplagged/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/goskiplagged/internal/pkg/pkguid"
)

const prefix = "modules.flight-search."

type Dependency struct {
	Config pkgconfig.Config
	UID    pkguid.StringID
	Out    io.Writer
}

func New(dep Dependency) (*inbound.CLIEndpoint, error) {
	airports, err := airport.NewStaticDirectory(dep.Config.GetString(prefix + "airports.path"))
	if err != nil {
		return nil, fmt.Errorf("airport directory: %w", err)
	}

	// A recorded response carries no provider-side ordering for the requested
	// sort, so results are always sorted locally.
	localSort := dep.Config.GetBool(prefix + "search.local_sort")

	var prov provider.Provider
	if mockPath := dep.Config.GetString(prefix + "provider.mock_path"); mockPath != "" {
		prov = provider.NewFileProvider(mockPath)
		localSort = true
	} else {
		prov = provider.NewSkiplaggedProvider(provider.SkiplaggedConfig{
			BaseURL:   dep.Config.GetString(prefix + "provider.base_url"),
			UserAgent: dep.Config.GetString(prefix + "provider.user_agent"),
			Timeout:   dep.Config.GetDuration(prefix + "provider.timeout"),
		})
	}

	// Searches for several departure dates share one limiter.
	if interval := dep.Config.GetDuration(prefix + "provider.rate_limit"); interval > 0 {
		prov = provider.NewRateLimitedProvider(prov, interval)
	}

	uc, err := usecase.New(usecase.Dependency{
		Provider:            prov,
		Airports:            airports,
		Zones:               airport.NewZones(),
		UID:                 dep.UID,
		DurationMode:        usecase.DurationMode(dep.Config.GetString(prefix + "duration.mode")),
		FixedZone:           dep.Config.GetString(prefix + "duration.fixed_zone"),
		LocalSort:           localSort,
		SkipUnknownAirports: dep.Config.GetBool(prefix + "airports.skip_unknown"),
	})
	if err != nil {
		return nil, err
	}

	return inbound.NewCLIEndpoint(uc, dep.Out), nil
}
