package availability

import (
	"tessera/internal/reservations/catalog"
	"tessera/pkg/model"
)

// Calculator computes remaining slot capacity from the catalog and a booking
// snapshot. It holds no state of its own; correctness depends on the caller
// evaluating it against a snapshot taken inside the same critical section as
// the commit that relies on the result.
type Calculator struct {
	catalog *catalog.Catalog
}

func NewCalculator(c *catalog.Catalog) *Calculator {
	return &Calculator{catalog: c}
}

// Remaining returns max(0, capacity - booked) for the slot. An unknown
// museum or date has no capacity and answers 0 rather than erroring, keeping
// client-facing availability queries total.
func (c *Calculator) Remaining(museum, date string, snapshot []model.BookingRecord) int {
	capacity, ok := c.catalog.Capacity(museum, date)
	if !ok {
		return 0
	}

	booked := 0
	for _, rec := range snapshot {
		if rec.Museum == museum && rec.Date == date {
			booked += rec.Tickets
		}
	}

	if booked >= capacity {
		return 0
	}
	return capacity - booked
}
