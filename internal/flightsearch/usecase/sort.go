package usecase

import (
	"sort"

	"github.com/shandysiswandi/goskiplagged/internal/flightsearch/entity"
)

// sortItineraries orders in place by mode. path means fewest legs first,
// ties broken by price.
func sortItineraries(list []entity.Itinerary, mode entity.SortMode) {
	less := func(i, j int) bool {
		switch mode {
		case entity.SortDuration:
			return list[i].DurationSeconds < list[j].DurationSeconds
		case entity.SortPath:
			if len(list[i].Legs) != len(list[j].Legs) {
				return len(list[i].Legs) < len(list[j].Legs)
			}
			return list[i].PricePennies < list[j].PricePennies
		default:
			return list[i].PricePennies < list[j].PricePennies
		}
	}
	sort.SliceStable(list, less)
}
