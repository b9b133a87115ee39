package voice

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// ErrNotRecognized means the utterance did not match the one supported
// command grammar.
var ErrNotRecognized = errors.New("voice command not recognized")

// Command is the structured result of a recognized utterance.
type Command struct {
	Exercise   string `json:"exercise"`
	Count      int    `json:"count"`
	PersonName string `json:"personName"`
}

// The one supported grammar:
//
//	"(just) did <count> <exercise> (my name is <person>)"
var commandPattern = regexp.MustCompile(
	`(?i)(?:just did|did)\s+(\d+)\s+([a-z\s]+?)(?:\s+my\s+name\s+is\s+([a-z\s]+))?\s*$`,
)

// Parse extracts a Command from a recognized utterance. It is a pure
// transform, it never touches the schedule or the stores.
func Parse(utterance string) (*Command, error) {
	matches := commandPattern.FindStringSubmatch(utterance)
	if matches == nil {
		return nil, ErrNotRecognized
	}

	count, err := strconv.Atoi(matches[1])
	if err != nil || count <= 0 {
		return nil, ErrNotRecognized
	}

	return &Command{
		Exercise:   strings.TrimSpace(matches[2]),
		Count:      count,
		PersonName: strings.TrimSpace(matches[3]),
	}, nil
}
