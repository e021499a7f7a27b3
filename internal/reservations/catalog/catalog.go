package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"tessera/pkg/model"
)

// Catalog is the read-only per-museum per-date capacity table. It is loaded
// once at startup and never mutated afterwards, so lookups need no locking.
type Catalog struct {
	museums    []model.Museum
	capacities map[string]map[string]int
	dates      map[string][]string
}

// LoadFile reads the catalog from its JSON file. Every bookable slot must be
// declared here; there is no implicit default capacity.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var file model.CatalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog file %s: %w", path, err)
	}

	return New(file.Museums), nil
}

// New builds a catalog from an in-memory museum list.
func New(museums []model.Museum) *Catalog {
	c := &Catalog{
		museums:    museums,
		capacities: make(map[string]map[string]int, len(museums)),
		dates:      make(map[string][]string, len(museums)),
	}

	for _, m := range museums {
		byDate := make(map[string]int, len(m.TicketDates))
		dates := make([]string, 0, len(m.TicketDates))
		for _, td := range m.TicketDates {
			if td.Available < 0 {
				continue
			}
			byDate[td.Date] = td.Available
			dates = append(dates, td.Date)
		}
		c.capacities[m.Name] = byDate
		c.dates[m.Name] = dates
	}

	return c
}

// Capacity returns the daily ticket capacity for a slot. The second return
// is false when the museum or date is not declared.
func (c *Catalog) Capacity(museum, date string) (int, bool) {
	byDate, ok := c.capacities[museum]
	if !ok {
		return 0, false
	}
	capacity, ok := byDate[date]
	return capacity, ok
}

// Exists reports whether the museum is in the catalog.
func (c *Catalog) Exists(museum string) bool {
	_, ok := c.capacities[museum]
	return ok
}

// Dates returns the museum's offered dates in catalog order. Nil for an
// unknown museum.
func (c *Catalog) Dates(museum string) []string {
	dates := c.dates[museum]
	if dates == nil {
		return nil
	}
	out := make([]string, len(dates))
	copy(out, dates)
	return out
}

// Museums returns the full catalog blob, used to populate date pickers.
func (c *Catalog) Museums() []model.Museum {
	out := make([]model.Museum, len(c.museums))
	copy(out, c.museums)
	return out
}
