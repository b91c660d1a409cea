package client

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCurrentWeek(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/weeks/current", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{
			"week":{"id":"week-2025-12-22","userId":"dev-user-1","startDate":"2025-12-22","endDate":"2025-12-28","status":"open","lockedAt":null},
			"aggregate":{"weekId":"week-2025-12-22","userId":"dev-user-1","totalPrsMerged":4,"totalReviews":2,"totalCommits":2,"weightedScore":52,"insights":[],"dailyDistribution":[],"repositoryStats":[]},
			"repositories":[],
			"events":[]
		}}`))
	}))
	defer server.Close()

	c := NewClient(server.URL)
	data, err := c.GetCurrentWeek()
	require.NoError(t, err)
	assert.Equal(t, "week-2025-12-22", data.Week.ID)
	assert.Equal(t, 52, data.Aggregate.WeightedScore)
}

func TestGetWeeklyReviews(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/weekly-reviews", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"reviews":[],"streak":3,"currentWeekId":"week-2025-12-29"}}`))
	}))
	defer server.Close()

	c := NewClient(server.URL)
	data, err := c.GetWeeklyReviews()
	require.NoError(t, err)
	assert.Equal(t, 3, data.Streak)
	assert.Equal(t, "week-2025-12-29", data.CurrentWeekID)
}

func TestSyncPostsJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/github/sync", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"connection":{"connected":true,"githubUsername":"alexmorgan","lastSyncedAt":null,"syncInProgress":false},"weekId":"week-2025-12-29","syncedEvents":8}}`))
	}))
	defer server.Close()

	c := NewClient(server.URL)
	data, err := c.Sync()
	require.NoError(t, err)
	assert.Equal(t, 8, data.SyncedEvents)
	assert.Equal(t, "week-2025-12-29", data.WeekID)
}

func TestErrorEnvelopeSurfacesInError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"code":"NOT_FOUND","message":"week week-bogus not found"}}`))
	}))
	defer server.Close()

	c := NewClient(server.URL)
	_, err := c.GetWeek("week-bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NOT_FOUND")
}

func TestHealthCheck(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok","service":"devtrackr-api"}`))
	}))
	defer server.Close()

	assert.NoError(t, NewClient(server.URL).HealthCheck())
}
