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

	"github.com/uglednimomak/active-life-visuals/internal/exercises"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) newExerciseRequest(
	ctx context.Context,
	authToken string,
	params exercises.AddExerciseParams,
) exercises.Exercise {
	paramsJson, err := json.Marshal(params)
	require.NoError(s.T(), err)

	req, err := http.NewRequestWithContext(
		ctx,
		"POST", fmt.Sprintf("%s/exercises/new", serverEndpoint),
		bytes.NewReader(paramsJson),
	)
	require.NoError(s.T(), err)
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("X-TRACKER-TOKEN", authToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	require.NoError(s.T(), err)
	require.Equal(s.T(), http.StatusCreated, resp.StatusCode)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(s.T(), err)

	var addedExercise exercises.Exercise
	require.NoError(s.T(), json.Unmarshal(respBytes, &addedExercise))

	return addedExercise
}

func (s *IntegrationTestSuite) listExercisesRequest(ctx context.Context) exercises.ExercisesListResponse {
	req, err := http.NewRequestWithContext(
		ctx,
		"GET", fmt.Sprintf("%s/exercises/list", serverEndpoint),
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

	var listResp exercises.ExercisesListResponse
	require.NoError(s.T(), json.Unmarshal(respBytes, &listResp))
	return listResp
}

func (s *IntegrationTestSuite) TestExercises() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	authToken := doLogin(ctx, t)
	require.NotEmpty(t, authToken)

	t.Run("add requires auth", func(t *testing.T) {
		paramsJson, err := json.Marshal(exercises.AddExerciseParams{
			Name: "pushups", Count: 10,
		})
		require.NoError(t, err)

		req, err := http.NewRequestWithContext(
			ctx,
			"POST", fmt.Sprintf("%s/exercises/new", serverEndpoint),
			bytes.NewReader(paramsJson),
		)
		require.NoError(t, err)
		req.Header.Set("User-Agent", "test-agent")
		req.Header.Set("Content-Type", "application/json")

		resp, err := s.httpClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	loggedAt := time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)
	added := s.newExerciseRequest(ctx, authToken, exercises.AddExerciseParams{
		Name:       "pushups",
		Count:      20,
		Timestamp:  loggedAt,
		Category:   exercises.CategoryStrength,
		PersonName: "ana",
	})
	require.NotEmpty(t, added.ID)
	assert.Equal(t, "pushups", added.Name)
	assert.Equal(t, 20, added.Count)

	s.newExerciseRequest(ctx, authToken, exercises.AddExerciseParams{
		Name:      "squats",
		Count:     15,
		Timestamp: loggedAt.Add(2 * time.Hour),
	})

	t.Run("list is public and newest first", func(t *testing.T) {
		listResp := s.listExercisesRequest(ctx)
		require.Equal(t, 2, listResp.Total)
		assert.Equal(t, "squats", listResp.Exercises[0].Name)
		assert.Equal(t, "pushups", listResp.Exercises[1].Name)
	})

	t.Run("stats", func(t *testing.T) {
		req, err := http.NewRequestWithContext(
			ctx,
			"GET", fmt.Sprintf("%s/exercises/stats", serverEndpoint),
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

		var stats exercises.Stats
		require.NoError(t, json.Unmarshal(respBytes, &stats))
		assert.Equal(t, 2, stats.TotalExercises)
		assert.Equal(t, 35, stats.TotalCount)
		assert.Equal(t, 2.0, stats.AveragePerDay)
	})

	t.Run("leaderboard ranks exercises by summed count", func(t *testing.T) {
		req, err := http.NewRequestWithContext(
			ctx,
			"GET", fmt.Sprintf("%s/exercises/leaderboard", serverEndpoint),
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

		var leaderboard []exercises.LeaderboardEntry
		require.NoError(t, json.Unmarshal(respBytes, &leaderboard))
		require.Len(t, leaderboard, 2)

		// squats were logged without a person name and still count
		assert.Equal(t, "pushups", leaderboard[0].Name)
		assert.Equal(t, 20, leaderboard[0].TotalCount)
		assert.Equal(t, "squats", leaderboard[1].Name)
		assert.Equal(t, 15, leaderboard[1].TotalCount)
	})

	t.Run("delete", func(t *testing.T) {
		req, err := http.NewRequestWithContext(
			ctx,
			"DELETE", fmt.Sprintf("%s/exercises/%s", serverEndpoint, added.ID),
			nil,
		)
		require.NoError(t, err)
		req.Header.Set("User-Agent", "test-agent")
		req.Header.Set("X-TRACKER-TOKEN", authToken)

		resp, err := s.httpClient.Do(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		defer resp.Body.Close()

		respBytes, err := io.ReadAll(resp.Body)
		require.NoError(t, err)

		var deleteResp exercises.DeleteExerciseResponse
		require.NoError(t, json.Unmarshal(respBytes, &deleteResp))
		assert.Equal(t, added.ID, deleteResp.DeletedID)

		listResp := s.listExercisesRequest(ctx)
		assert.Equal(t, 1, listResp.Total)
	})
}
