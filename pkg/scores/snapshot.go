package scores

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Snapshot is a portable copy of a ranking, written as JSON.
type Snapshot struct {
	SavedAt time.Time `json:"saved_at"`
	Entries []Entry   `json:"entries"`
}

// NewSnapshot captures entries in the order given.
func NewSnapshot(entries []Entry) *Snapshot {
	return &Snapshot{Entries: entries}
}

// SaveToFile saves the snapshot to a JSON file
func (s *Snapshot) SaveToFile(filename string) error {
	s.SavedAt = time.Now()

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode scores")
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write %s", filename)
	}
	return nil
}

// LoadFromFile loads a snapshot from a JSON file. Entries without a name are
// dropped and the rest have their names normalized.
func LoadFromFile(filename string) (*Snapshot, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", filename)
	}

	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s", filename)
	}

	kept := s.Entries[:0]
	for _, e := range s.Entries {
		if e.Name = normalizeName(e.Name); e.Name != "" {
			kept = append(kept, e)
		}
	}
	s.Entries = kept
	return &s, nil
}
