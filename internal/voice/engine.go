package voice

import "context"

// UnsupportedEngine is the capability probe result on deployments
// without a speech source of their own. Clients that do their own
// recognition still submit transcripts directly.
type UnsupportedEngine struct{}

func (UnsupportedEngine) Start(_ context.Context) (<-chan RecognitionResult, error) {
	return nil, ErrUnsupported
}

func (UnsupportedEngine) Stop() {}
