// Package records owns the list of completed exercise entries.
package records

import (
	"fmt"

	"github.com/julianstephens/liftlog/internal/constants"
	"github.com/julianstephens/liftlog/internal/events"
	"github.com/julianstephens/liftlog/internal/logger"
	"github.com/julianstephens/liftlog/internal/models"
	"github.com/julianstephens/liftlog/internal/storage"
)

// Store is the in-memory record list backed by the "exercises" blob.
// Every mutation rewrites the whole blob before listeners are notified.
type Store struct {
	provider storage.Provider
	records  []models.ExerciseRecord
	changes  events.Hub[[]models.ExerciseRecord]
}

// Open reads the persisted records. A missing blob yields an empty store.
func Open(p storage.Provider) (*Store, error) {
	var recs []models.ExerciseRecord
	if _, err := storage.ReadJSON(p, constants.ExercisesKey, &recs); err != nil {
		return nil, fmt.Errorf("failed to load exercises: %w", err)
	}
	if recs == nil {
		recs = []models.ExerciseRecord{}
	}
	logger.Debug("Loaded exercise records", "count", len(recs))
	return &Store{provider: p, records: recs}, nil
}

// All returns a copy of every record, newest first.
func (s *Store) All() []models.ExerciseRecord {
	return append([]models.ExerciseRecord{}, s.records...)
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.records)
}

// Get returns the record with id.
func (s *Store) Get(id string) (models.ExerciseRecord, bool) {
	for _, r := range s.records {
		if r.ID == id {
			return r, true
		}
	}
	return models.ExerciseRecord{}, false
}

// OnDate returns the records logged on date (YYYY-MM-DD).
func (s *Store) OnDate(date string) []models.ExerciseRecord {
	var out []models.ExerciseRecord
	for _, r := range s.records {
		if r.Date == date {
			out = append(out, r)
		}
	}
	return out
}

// Add prepends rec. An empty id is replaced with a fresh one.
func (s *Store) Add(rec models.ExerciseRecord) (models.ExerciseRecord, error) {
	added, err := s.AddMany([]models.ExerciseRecord{rec})
	if err != nil {
		return models.ExerciseRecord{}, err
	}
	return added[0], nil
}

// AddMany prepends recs, keeping their relative order, with a single write.
func (s *Store) AddMany(recs []models.ExerciseRecord) ([]models.ExerciseRecord, error) {
	if len(recs) == 0 {
		return nil, nil
	}
	added := make([]models.ExerciseRecord, len(recs))
	for i, r := range recs {
		if r.ID == "" {
			r.ID = models.NewID()
		}
		added[i] = r
	}

	next := make([]models.ExerciseRecord, 0, len(s.records)+len(added))
	next = append(next, added...)
	next = append(next, s.records...)
	if err := s.commit(next); err != nil {
		return nil, err
	}
	logger.Info("Added exercise records", "count", len(added))
	return added, nil
}

// Delete removes the record with id. An unknown id is a no-op and reports false.
func (s *Store) Delete(id string) (bool, error) {
	idx := -1
	for i, r := range s.records {
		if r.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		logger.Debug("Delete of unknown record ignored", "id", id)
		return false, nil
	}

	next := make([]models.ExerciseRecord, 0, len(s.records)-1)
	next = append(next, s.records[:idx]...)
	next = append(next, s.records[idx+1:]...)
	if err := s.commit(next); err != nil {
		return false, err
	}
	logger.Info("Deleted exercise record", "id", id)
	return true, nil
}

// Subscribe registers fn to receive the full record list after every change.
func (s *Store) Subscribe(fn func([]models.ExerciseRecord)) func() {
	return s.changes.Subscribe(fn)
}

func (s *Store) commit(next []models.ExerciseRecord) error {
	if err := storage.WriteJSON(s.provider, constants.ExercisesKey, next); err != nil {
		return fmt.Errorf("failed to save exercises: %w", err)
	}
	s.records = next
	s.changes.Publish(s.All())
	return nil
}
