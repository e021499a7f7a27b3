package availability

import (
	"testing"

	"tessera/internal/reservations/catalog"
	"tessera/pkg/model"
)

func newTestCalculator() *Calculator {
	return NewCalculator(catalog.New([]model.Museum{
		{
			Name: "National Gallery",
			TicketDates: []model.TicketDate{
				{Date: "2024-06-01", Available: 5},
			},
		},
	}))
}

func TestRemaining(t *testing.T) {
	calc := newTestCalculator()

	snapshot := []model.BookingRecord{
		{VisitorName: "alice", Museum: "National Gallery", Date: "2024-06-01", Tickets: 2},
		{VisitorName: "bob", Museum: "National Gallery", Date: "2024-06-01", Tickets: 1},
		{VisitorName: "carol", Museum: "Science Museum", Date: "2024-06-01", Tickets: 2},
		{VisitorName: "dave", Museum: "National Gallery", Date: "2024-06-02", Tickets: 2},
	}

	// Only the two matching records count: 5 - (2+1) = 2.
	if got := calc.Remaining("National Gallery", "2024-06-01", snapshot); got != 2 {
		t.Errorf("expected remaining 2, got %d", got)
	}
}

func TestRemainingEmptySnapshot(t *testing.T) {
	calc := newTestCalculator()

	if got := calc.Remaining("National Gallery", "2024-06-01", nil); got != 5 {
		t.Errorf("expected full capacity 5, got %d", got)
	}
}

func TestRemainingUnknownSlotIsZero(t *testing.T) {
	calc := newTestCalculator()

	if got := calc.Remaining("Louvre", "2024-06-01", nil); got != 0 {
		t.Errorf("expected 0 for unknown museum, got %d", got)
	}
	if got := calc.Remaining("National Gallery", "2024-12-25", nil); got != 0 {
		t.Errorf("expected 0 for unknown date, got %d", got)
	}
}

func TestRemainingClampsAtZero(t *testing.T) {
	calc := newTestCalculator()

	snapshot := []model.BookingRecord{
		{VisitorName: "alice", Museum: "National Gallery", Date: "2024-06-01", Tickets: 2},
		{VisitorName: "bob", Museum: "National Gallery", Date: "2024-06-01", Tickets: 2},
		{VisitorName: "carol", Museum: "National Gallery", Date: "2024-06-01", Tickets: 2},
	}

	if got := calc.Remaining("National Gallery", "2024-06-01", snapshot); got != 0 {
		t.Errorf("expected remaining clamped at 0, got %d", got)
	}
}
