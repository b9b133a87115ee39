package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/uglednimomak/active-life-visuals/internal/voice"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) sendTranscriptRequest(
	ctx context.Context,
	authToken, transcript string,
) *http.Response {
	transcriptJson, err := json.Marshal(voice.TranscriptRequest{
		Transcript: transcript,
	})
	require.NoError(s.T(), err)

	req, err := http.NewRequestWithContext(
		ctx,
		"POST", fmt.Sprintf("%s/voice/transcript", serverEndpoint),
		bytes.NewReader(transcriptJson),
	)
	require.NoError(s.T(), err)
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("X-TRACKER-TOKEN", authToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	require.NoError(s.T(), err)
	return resp
}

func (s *IntegrationTestSuite) TestVoice() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	authToken := doLogin(ctx, t)
	require.NotEmpty(t, authToken)

	t.Run("start unsupported on server", func(t *testing.T) {
		req, err := http.NewRequestWithContext(
			ctx,
			"POST", fmt.Sprintf("%s/voice/start", serverEndpoint),
			nil,
		)
		require.NoError(t, err)
		req.Header.Set("User-Agent", "test-agent")
		req.Header.Set("X-TRACKER-TOKEN", authToken)

		resp, err := s.httpClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotImplemented, resp.StatusCode)
	})

	t.Run("recognized transcript logs the exercise", func(t *testing.T) {
		before := s.listExercisesRequest(ctx)

		resp := s.sendTranscriptRequest(ctx, authToken, "just did 12 push ups my name is Ana")
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		respBytes, err := io.ReadAll(resp.Body)
		require.NoError(t, err)

		var cmd voice.Command
		require.NoError(t, json.Unmarshal(respBytes, &cmd))
		assert.Equal(t, "push ups", cmd.Exercise)
		assert.Equal(t, 12, cmd.Count)
		assert.Equal(t, "Ana", cmd.PersonName)

		// the command handler runs synchronously before the response
		// is written, but give the stores a moment regardless
		require.Eventually(t, func() bool {
			after := s.listExercisesRequest(ctx)
			return after.Total == before.Total+1
		}, 2*time.Second, 100*time.Millisecond)

		after := s.listExercisesRequest(ctx)
		assert.Equal(t, "push ups", after.Exercises[0].Name)
		assert.Equal(t, 12, after.Exercises[0].Count)
		assert.Equal(t, "Ana", after.Exercises[0].PersonName)
	})

	t.Run("unrecognized transcript", func(t *testing.T) {
		resp := s.sendTranscriptRequest(ctx, authToken, "hello there")
		defer resp.Body.Close()
		require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

		req, err := http.NewRequestWithContext(
			ctx,
			"GET", fmt.Sprintf("%s/voice/status", serverEndpoint),
			nil,
		)
		require.NoError(t, err)
		req.Header.Set("User-Agent", "test-agent")
		req.Header.Set("X-TRACKER-TOKEN", authToken)

		statusResp, err := s.httpClient.Do(req)
		require.NoError(t, err)
		defer statusResp.Body.Close()
		require.Equal(t, http.StatusOK, statusResp.StatusCode)

		respBytes, err := io.ReadAll(statusResp.Body)
		require.NoError(t, err)

		var status voice.ListenerStatus
		require.NoError(t, json.Unmarshal(respBytes, &status))
		assert.False(t, status.Listening)
		assert.True(t, status.NotRecognized)
	})
}
