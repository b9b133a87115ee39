package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/uglednimomak/active-life-visuals/internal/workout"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) toggleExerciseRequest(
	ctx context.Context,
	authToken string,
	toggleReq workout.ToggleExerciseRequest,
) workout.ToggleExerciseResponse {
	toggleReqJson, err := json.Marshal(toggleReq)
	require.NoError(s.T(), err)

	req, err := http.NewRequestWithContext(
		ctx,
		"POST", fmt.Sprintf("%s/workout/toggle", serverEndpoint),
		bytes.NewReader(toggleReqJson),
	)
	require.NoError(s.T(), err)
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("X-TRACKER-TOKEN", authToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	require.NoError(s.T(), err)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(s.T(), err)

	var toggleResp workout.ToggleExerciseResponse
	require.NoError(s.T(), json.Unmarshal(respBytes, &toggleResp))
	return toggleResp
}

func (s *IntegrationTestSuite) getDayStatus(ctx context.Context, date string) workout.DayStatusResponse {
	req, err := http.NewRequestWithContext(
		ctx,
		"GET", fmt.Sprintf("%s/workout/status/%s", serverEndpoint, date),
		nil,
	)
	require.NoError(s.T(), err)
	req.Header.Set("User-Agent", "test-agent")

	resp, err := s.httpClient.Do(req)
	require.NoError(s.T(), err)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(s.T(), err)

	var statusResp workout.DayStatusResponse
	require.NoError(s.T(), json.Unmarshal(respBytes, &statusResp))
	return statusResp
}

func (s *IntegrationTestSuite) TestWorkout() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	authToken := doLogin(ctx, t)
	require.NotEmpty(t, authToken)

	t.Run("schedule is public", func(t *testing.T) {
		req, err := http.NewRequestWithContext(
			ctx,
			"GET", fmt.Sprintf("%s/workout/schedule", serverEndpoint),
			nil,
		)
		require.NoError(t, err)
		req.Header.Set("User-Agent", "test-agent")

		resp, err := s.httpClient.Do(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		defer resp.Body.Close()

		respBytes, err := io.ReadAll(resp.Body)
		require.NoError(t, err)

		var schedule workout.Schedule
		require.NoError(t, json.Unmarshal(respBytes, &schedule))
		require.Len(t, schedule, 7)
		assert.NotEmpty(t, schedule[1].Title)
	})

	// 2025-03-10 is a monday
	const date = "2025-03-10"

	t.Run("toggle requires auth", func(t *testing.T) {
		toggleReqJson, err := json.Marshal(workout.ToggleExerciseRequest{
			Date: date, Exercise: "Push-ups",
		})
		require.NoError(t, err)

		req, err := http.NewRequestWithContext(
			ctx,
			"POST", fmt.Sprintf("%s/workout/toggle", serverEndpoint),
			bytes.NewReader(toggleReqJson),
		)
		require.NoError(t, err)
		req.Header.Set("User-Agent", "test-agent")
		req.Header.Set("Content-Type", "application/json")

		resp, err := s.httpClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("toggle on and off", func(t *testing.T) {
		day := workout.DefaultSchedule().Day(1) // monday
		require.NotEmpty(t, day.Exercises)
		exerciseName := day.Exercises[0].Name

		toggleResp := s.toggleExerciseRequest(ctx, authToken, workout.ToggleExerciseRequest{
			Date: date, Exercise: exerciseName,
		})
		assert.Equal(t, date, toggleResp.Date)
		assert.Equal(t, exerciseName, toggleResp.Exercise)

		statusResp := s.getDayStatus(ctx, date)
		assert.Equal(t, workout.DayStatusPartial, statusResp.Status)

		s.toggleExerciseRequest(ctx, authToken, workout.ToggleExerciseRequest{
			Date: date, Exercise: exerciseName,
		})

		statusResp = s.getDayStatus(ctx, date)
		assert.Equal(t, workout.DayStatusNotStarted, statusResp.Status)
	})

	t.Run("completed exercises", func(t *testing.T) {
		day := workout.DefaultSchedule().Day(1)
		exerciseName := day.Exercises[0].Name

		s.toggleExerciseRequest(ctx, authToken, workout.ToggleExerciseRequest{
			Date: date, Exercise: exerciseName,
		})

		req, err := http.NewRequestWithContext(
			ctx,
			"GET", fmt.Sprintf("%s/workout/completed/%s", serverEndpoint, date),
			nil,
		)
		require.NoError(t, err)
		req.Header.Set("User-Agent", "test-agent")

		resp, err := s.httpClient.Do(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		defer resp.Body.Close()

		respBytes, err := io.ReadAll(resp.Body)
		require.NoError(t, err)

		var completedResp workout.CompletedExercisesResponse
		require.NoError(t, json.Unmarshal(respBytes, &completedResp))
		assert.Equal(t, []string{exerciseName}, completedResp.CompletedExercises)
	})
}
