package airport

import (
	"fmt"
	"sync"
	"time"
	_ "time/tzdata" // zone database for hosts without /usr/share/zoneinfo
)

// Zones loads IANA locations once per name and hands out the cached value
// afterwards.
type Zones struct {
	mu        sync.RWMutex
	locations map[string]*time.Location
}

func NewZones() *Zones {
	return &Zones{locations: make(map[string]*time.Location)}
}

func (z *Zones) Load(name string) (*time.Location, error) {
	z.mu.RLock()
	loc, ok := z.locations[name]
	z.mu.RUnlock()
	if ok {
		return loc, nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("load location %s: %w", name, err)
	}

	z.mu.Lock()
	z.locations[name] = loc
	z.mu.Unlock()
	return loc, nil
}
