package eligibility

import (
	"encoding/json"
	"fmt"
	"os"

	"tessera/pkg/model"
)

// Roster answers the single question the engine asks about a visitor: may
// this name book at all. The set is loaded once at startup; refreshing it is
// outside this service.
type Roster struct {
	members map[string]struct{}
}

// LoadFile reads the roster from its JSON file.
func LoadFile(path string) (*Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roster file: %w", err)
	}

	var file model.RosterFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse roster file %s: %w", path, err)
	}

	return New(file.Employees), nil
}

// New builds a roster from a name list.
func New(names []string) *Roster {
	members := make(map[string]struct{}, len(names))
	for _, n := range names {
		members[n] = struct{}{}
	}
	return &Roster{members: members}
}

// Eligible reports whether the visitor may book.
func (r *Roster) Eligible(name string) bool {
	_, ok := r.members[name]
	return ok
}

// Size returns the number of roster entries, for startup logging.
func (r *Roster) Size() int {
	return len(r.members)
}
