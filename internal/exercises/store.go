package exercises

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/uglednimomak/active-life-visuals/internal/keyval"
	"github.com/uglednimomak/active-life-visuals/internal/notify"
	"github.com/uglednimomak/active-life-visuals/internal/telemetry/tracing"
)

// StorageKey is the key-value store key holding the serialized
// exercise log snapshot.
const StorageKey = "fitness-tracker-exercises"

var ErrExerciseNotFound = errors.New("exercise not found")

type AddExerciseParams struct {
	Name       string    `json:"name"`
	Count      int       `json:"count"`
	Timestamp  time.Time `json:"timestamp"`
	Category   Category  `json:"category,omitempty"`
	PersonName string    `json:"personName,omitempty"`
}

// UpdateExerciseParams carries a partial update, nil fields are left
// untouched on the stored exercise.
type UpdateExerciseParams struct {
	Name       *string    `json:"name,omitempty"`
	Count      *int       `json:"count,omitempty"`
	Timestamp  *time.Time `json:"timestamp,omitempty"`
	Category   *Category  `json:"category,omitempty"`
	PersonName *string    `json:"personName,omitempty"`
}

// Store owns the exercise log. The full collection lives in memory and
// every successful mutation writes the complete snapshot back to the
// key-value store before the mutation is reported as done.
type Store struct {
	mutex    sync.RWMutex
	kv       keyval.Api
	notifier notify.Notifier
	now      func() time.Time

	exercises []Exercise
}

// NewStore loads the persisted exercise log. A missing or unparsable
// snapshot yields an empty log, never an error.
func NewStore(ctx context.Context, kv keyval.Api, notifier notify.Notifier) *Store {
	store := &Store{
		kv:       kv,
		notifier: notifier,
		now:      time.Now,
	}

	blob, err := kv.Get(ctx, StorageKey)
	switch {
	case errors.Is(err, keyval.ErrKeyNotFound):
		// first run, nothing stored yet
	case err != nil:
		log.Errorf("load exercises snapshot: %s", err)
	default:
		exercises, decodeErr := DecodeExercises(blob)
		if decodeErr != nil {
			log.Errorf("stored exercises snapshot unusable, starting empty: %s", decodeErr)
		} else {
			store.exercises = exercises
		}
	}

	return store
}

func (s *Store) Add(ctx context.Context, params AddExerciseParams) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "exercises.store.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	exercise := Exercise{
		ID:         uuid.NewString(),
		Name:       strings.TrimSpace(params.Name),
		Count:      params.Count,
		Timestamp:  params.Timestamp,
		Category:   params.Category,
		PersonName: strings.TrimSpace(params.PersonName),
	}
	if exercise.Timestamp.IsZero() {
		exercise.Timestamp = s.now()
	}
	if err := exercise.Validate(); err != nil {
		return nil, err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	updated := append(slices.Clone(s.exercises), exercise)
	if err := s.persist(ctx, updated); err != nil {
		return nil, err
	}
	s.exercises = updated

	s.notifier.Notify(notify.SeveritySuccess, fmt.Sprintf("Added %d x %s", exercise.Count, exercise.Name))
	return &exercise, nil
}

// Delete removes the exercise with the given id. Deleting an unknown
// id is a no-op, not an error.
func (s *Store) Delete(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "exercises.store.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	s.mutex.Lock()
	defer s.mutex.Unlock()

	index := slices.IndexFunc(s.exercises, func(e Exercise) bool {
		return e.ID == id
	})
	if index < 0 {
		return nil
	}

	updated := slices.Delete(slices.Clone(s.exercises), index, index+1)
	if err := s.persist(ctx, updated); err != nil {
		return err
	}
	s.exercises = updated

	s.notifier.Notify(notify.SeverityInfo, "Exercise deleted")
	return nil
}

// Update merges the given fields into the stored exercise. An unknown
// id is a silent no-op.
func (s *Store) Update(ctx context.Context, id string, params UpdateExerciseParams) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "exercises.store.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	s.mutex.Lock()
	defer s.mutex.Unlock()

	index := slices.IndexFunc(s.exercises, func(e Exercise) bool {
		return e.ID == id
	})
	if index < 0 {
		return nil
	}

	merged := s.exercises[index]
	if params.Name != nil {
		merged.Name = strings.TrimSpace(*params.Name)
	}
	if params.Count != nil {
		merged.Count = *params.Count
	}
	if params.Timestamp != nil {
		merged.Timestamp = *params.Timestamp
	}
	if params.Category != nil {
		merged.Category = *params.Category
	}
	if params.PersonName != nil {
		merged.PersonName = strings.TrimSpace(*params.PersonName)
	}
	if err := merged.Validate(); err != nil {
		return err
	}

	updated := slices.Clone(s.exercises)
	updated[index] = merged
	if err := s.persist(ctx, updated); err != nil {
		return err
	}
	s.exercises = updated

	return nil
}

func (s *Store) Get(_ context.Context, id string) (*Exercise, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	for _, e := range s.exercises {
		if e.ID == id {
			exercise := e
			return &exercise, nil
		}
	}
	return nil, ErrExerciseNotFound
}

// ListParams narrows a listing: a case-insensitive search term over
// the exercise name, and/or a category. Zero value lists everything.
type ListParams struct {
	Search   string
	Category Category
}

// List returns the matching exercises sorted by timestamp, newest
// first. The stored collection keeps insertion order, consumers
// always get the display order.
func (s *Store) List(_ context.Context, params ListParams) []Exercise {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	search := strings.ToLower(strings.TrimSpace(params.Search))
	exercises := make([]Exercise, 0, len(s.exercises))
	for _, e := range s.exercises {
		if search != "" && !strings.Contains(strings.ToLower(e.Name), search) {
			continue
		}
		if params.Category != "" && e.Category != params.Category {
			continue
		}
		exercises = append(exercises, e)
	}

	slices.SortStableFunc(exercises, func(a, b Exercise) int {
		return b.Timestamp.Compare(a.Timestamp)
	})
	return exercises
}

func (s *Store) Stats(_ context.Context) Stats {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return CalculateStats(s.exercises)
}

func (s *Store) Leaderboard(_ context.Context) []LeaderboardEntry {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return CalculateLeaderboard(s.exercises)
}

// WeeklyActivity returns totals per calendar day for the last 7 days,
// oldest day first.
func (s *Store) WeeklyActivity(_ context.Context) []ActivityPoint {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return CalculateActivity(s.exercises, s.now(), 7)
}

func (s *Store) Recent(ctx context.Context, limit int) []Exercise {
	exercises := s.List(ctx, ListParams{})
	if len(exercises) > limit {
		exercises = exercises[:limit]
	}
	return exercises
}

func (s *Store) persist(ctx context.Context, exercises []Exercise) error {
	blob, err := EncodeExercises(exercises)
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, StorageKey, blob); err != nil {
		return fmt.Errorf("persist exercises: %w", err)
	}
	return nil
}
