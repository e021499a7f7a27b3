package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"tessera/pkg/model"
)

func testMuseums() []model.Museum {
	return []model.Museum{
		{
			Name: "National Gallery",
			TicketDates: []model.TicketDate{
				{Date: "2024-06-01", Available: 2},
				{Date: "2024-06-02", Available: 5},
			},
		},
		{
			Name: "Science Museum",
			TicketDates: []model.TicketDate{
				{Date: "2024-06-01", Available: 10},
			},
		},
	}
}

func TestCapacity(t *testing.T) {
	c := New(testMuseums())

	capacity, ok := c.Capacity("National Gallery", "2024-06-01")
	if !ok {
		t.Fatal("expected slot to exist")
	}
	if capacity != 2 {
		t.Errorf("expected capacity 2, got %d", capacity)
	}

	if _, ok := c.Capacity("National Gallery", "2024-07-01"); ok {
		t.Error("expected unknown date to report not found")
	}
	if _, ok := c.Capacity("Louvre", "2024-06-01"); ok {
		t.Error("expected unknown museum to report not found")
	}
}

func TestExists(t *testing.T) {
	c := New(testMuseums())

	if !c.Exists("Science Museum") {
		t.Error("expected Science Museum to exist")
	}
	if c.Exists("Louvre") {
		t.Error("expected Louvre to be unknown")
	}
}

func TestDatesPreservesOrder(t *testing.T) {
	c := New(testMuseums())

	dates := c.Dates("National Gallery")
	if len(dates) != 2 {
		t.Fatalf("expected 2 dates, got %d", len(dates))
	}
	if dates[0] != "2024-06-01" || dates[1] != "2024-06-02" {
		t.Errorf("expected catalog order preserved, got %v", dates)
	}

	if c.Dates("Louvre") != nil {
		t.Error("expected nil dates for unknown museum")
	}
}

func TestNegativeCapacityIsDropped(t *testing.T) {
	c := New([]model.Museum{
		{
			Name: "Broken",
			TicketDates: []model.TicketDate{
				{Date: "2024-06-01", Available: -3},
			},
		},
	})

	if _, ok := c.Capacity("Broken", "2024-06-01"); ok {
		t.Error("expected negative-capacity slot to be dropped")
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "museum_tickets.json")

	content := `{"museums":[{"name":"National Gallery","ticket_dates":[{"date":"2024-06-01","available":2}]}]}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	capacity, ok := c.Capacity("National Gallery", "2024-06-01")
	if !ok || capacity != 2 {
		t.Errorf("expected capacity 2, got %d (ok=%v)", capacity, ok)
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing catalog file")
	}
}

func TestLoadFileCorrupt(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "museum_tickets.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFile(path); err == nil {
		t.Error("expected error for corrupt catalog file")
	}
}
