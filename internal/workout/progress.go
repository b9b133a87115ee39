package workout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/uglednimomak/active-life-visuals/internal/keyval"
	"github.com/uglednimomak/active-life-visuals/internal/notify"
	"github.com/uglednimomak/active-life-visuals/internal/telemetry/tracing"
)

// StorageKey is the key-value store key holding the serialized
// workout progress snapshot.
const StorageKey = "fitness-tracker-workout-progress"

const dateLayout = "2006-01-02"

// DateKey normalizes a point in time to its civil date key. Completion
// state is keyed by date only, never by time of day.
func DateKey(t time.Time) string {
	return t.Format(dateLayout)
}

// ProgressEntry is the completion record of one calendar date. DayType
// is fixed when the entry is created and not recomputed afterwards.
type ProgressEntry struct {
	Date               string   `json:"date"`
	DayType            int      `json:"dayType"`
	CompletedExercises []string `json:"completedExercises"`
}

type DayStatus string

const (
	DayStatusRestDay    DayStatus = "rest-day"
	DayStatusCompleted  DayStatus = "completed"
	DayStatusPartial    DayStatus = "partial"
	DayStatusNotStarted DayStatus = "not-started"
)

// EncodeProgress serializes the full progress snapshot, an empty
// collection as an empty JSON array.
func EncodeProgress(entries []ProgressEntry) (string, error) {
	if entries == nil {
		entries = []ProgressEntry{}
	}
	blob, err := json.Marshal(entries)
	if err != nil {
		return "", fmt.Errorf("marshal workout progress: %w", err)
	}
	return string(blob), nil
}

// DecodeProgress parses a persisted snapshot. Entries repeating an
// already seen date are dropped, the first one wins.
func DecodeProgress(blob string) ([]ProgressEntry, error) {
	var entries []ProgressEntry
	if err := json.Unmarshal([]byte(blob), &entries); err != nil {
		return nil, fmt.Errorf("unmarshal workout progress: %w", err)
	}

	seen := make(map[string]struct{}, len(entries))
	deduped := entries[:0]
	for _, entry := range entries {
		if _, ok := seen[entry.Date]; ok {
			continue
		}
		seen[entry.Date] = struct{}{}
		deduped = append(deduped, entry)
	}
	return deduped, nil
}

// Store owns the per-date workout completion state. Like the exercise
// log, it holds the whole collection in memory and writes the full
// snapshot on every mutation.
type Store struct {
	mutex    sync.RWMutex
	kv       keyval.Api
	notifier notify.Notifier
	schedule Schedule
	now      func() time.Time

	progress []ProgressEntry
}

// NewStore loads the persisted progress. A missing or unparsable
// snapshot yields empty progress, never an error.
func NewStore(ctx context.Context, kv keyval.Api, schedule Schedule, notifier notify.Notifier) *Store {
	store := &Store{
		kv:       kv,
		notifier: notifier,
		schedule: schedule,
		now:      time.Now,
	}

	blob, err := kv.Get(ctx, StorageKey)
	switch {
	case errors.Is(err, keyval.ErrKeyNotFound):
	case err != nil:
		log.Errorf("load workout progress snapshot: %s", err)
	default:
		progress, decodeErr := DecodeProgress(blob)
		if decodeErr != nil {
			log.Errorf("stored workout progress unusable, starting empty: %s", decodeErr)
		} else {
			store.progress = progress
		}
	}

	return store
}

func (s *Store) Schedule() Schedule {
	return s.schedule
}

// CompletedExercises returns the names marked done on the given date,
// or an empty set when the date has no entry.
func (s *Store) CompletedExercises(_ context.Context, date time.Time) []string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return slices.Clone(s.completedOn(DateKey(date)))
}

func (s *Store) IsCompleted(_ context.Context, date time.Time, name string) bool {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return slices.Contains(s.completedOn(DateKey(date)), name)
}

// Toggle flips completion of a name on a date. The first toggle for a
// date creates its entry, un-toggling the last name keeps the entry
// with an empty set so a second toggle round-trips cleanly.
func (s *Store) Toggle(ctx context.Context, date time.Time, name string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workout.store.toggle")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	dateKey := DateKey(date)

	s.mutex.Lock()
	defer s.mutex.Unlock()

	updated := slices.Clone(s.progress)
	index := slices.IndexFunc(updated, func(e ProgressEntry) bool {
		return e.Date == dateKey
	})

	var wasCompleted bool
	if index >= 0 {
		entry := updated[index]
		completed := slices.Clone(entry.CompletedExercises)
		if nameIndex := slices.Index(completed, name); nameIndex >= 0 {
			wasCompleted = true
			completed = slices.Delete(completed, nameIndex, nameIndex+1)
		} else {
			completed = append(completed, name)
		}
		entry.CompletedExercises = completed
		updated[index] = entry
	} else {
		updated = append(updated, ProgressEntry{
			Date:               dateKey,
			DayType:            int(date.Weekday()),
			CompletedExercises: []string{name},
		})
	}

	if err := s.persist(ctx, updated); err != nil {
		return err
	}
	s.progress = updated

	if wasCompleted {
		s.notifier.Notify(notify.SeverityInfo, fmt.Sprintf("Marked %q as incomplete", name))
	} else {
		s.notifier.Notify(notify.SeveritySuccess, fmt.Sprintf("Completed %q", name))
	}
	return nil
}

// AddExercise records externally reported activity, a logged exercise
// or a recognized voice command. The name is first linked to the
// schedule vocabulary, then marked complete unless it already is. This
// entry point never un-completes anything.
func (s *Store) AddExercise(ctx context.Context, name string, date time.Time) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workout.store.addExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if date.IsZero() {
		date = s.now()
	}

	resolved, ok := s.schedule.ResolveName(name, int(date.Weekday()))
	if !ok {
		resolved = name
	}

	if s.IsCompleted(ctx, date, resolved) {
		return resolved, nil
	}
	if err := s.Toggle(ctx, date, resolved); err != nil {
		return "", err
	}
	return resolved, nil
}

// DayStatus derives the aggregate completion status shown on the
// calendar. It is never stored.
func (s *Store) DayStatus(ctx context.Context, date time.Time) DayStatus {
	day := s.schedule.Day(int(date.Weekday()))
	if day.ItemCount() == 0 {
		return DayStatusRestDay
	}

	completed := len(s.CompletedExercises(ctx, date))
	switch {
	case completed >= day.ItemCount():
		return DayStatusCompleted
	case completed > 0:
		return DayStatusPartial
	default:
		return DayStatusNotStarted
	}
}

func (s *Store) Entries(_ context.Context) []ProgressEntry {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	entries := make([]ProgressEntry, len(s.progress))
	for i, entry := range s.progress {
		entry.CompletedExercises = slices.Clone(entry.CompletedExercises)
		entries[i] = entry
	}
	return entries
}

func (s *Store) completedOn(dateKey string) []string {
	for _, entry := range s.progress {
		if entry.Date == dateKey {
			return entry.CompletedExercises
		}
	}
	return nil
}

func (s *Store) persist(ctx context.Context, entries []ProgressEntry) error {
	blob, err := EncodeProgress(entries)
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, StorageKey, blob); err != nil {
		return fmt.Errorf("persist workout progress: %w", err)
	}
	return nil
}
