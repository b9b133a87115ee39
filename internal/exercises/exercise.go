package exercises

import (
	"encoding/json"
	"fmt"
	"time"
)

type Category string

const (
	CategoryCardio      Category = "cardio"
	CategoryStrength    Category = "strength"
	CategoryFlexibility Category = "flexibility"
	CategoryBalance     Category = "balance"
	CategoryOther       Category = "other"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryCardio, CategoryStrength, CategoryFlexibility, CategoryBalance, CategoryOther:
		return true
	}
	return false
}

// Exercise is one logged activity instance. The ID is generated at
// creation time and never changes afterwards.
type Exercise struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Count      int       `json:"count"`
	Timestamp  time.Time `json:"timestamp"`
	Category   Category  `json:"category,omitempty"`
	PersonName string    `json:"personName,omitempty"`
}

func (e Exercise) Validate() error {
	if e.Name == "" {
		return fmt.Errorf("exercise name empty")
	}
	if e.Count <= 0 {
		return fmt.Errorf("exercise count must be positive, got %d", e.Count)
	}
	if e.Category != "" && !e.Category.Valid() {
		return fmt.Errorf("unknown exercise category: %s", e.Category)
	}
	return nil
}

// EncodeExercises serializes the full collection snapshot. An empty or
// nil collection encodes as an empty JSON array, never as null.
func EncodeExercises(exercises []Exercise) (string, error) {
	if exercises == nil {
		exercises = []Exercise{}
	}
	blob, err := json.Marshal(exercises)
	if err != nil {
		return "", fmt.Errorf("marshal exercises: %w", err)
	}
	return string(blob), nil
}

// DecodeExercises parses a persisted snapshot. A blob that does not
// parse as a whole is rejected, the caller falls back to an empty
// collection.
func DecodeExercises(blob string) ([]Exercise, error) {
	var exercises []Exercise
	if err := json.Unmarshal([]byte(blob), &exercises); err != nil {
		return nil, fmt.Errorf("unmarshal exercises: %w", err)
	}
	return exercises, nil
}
