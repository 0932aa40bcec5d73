package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"lumbungwarga/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogHabitComputesPoints(t *testing.T) {
	var posted types.CreateHabitLogRequest
	var listCalls int

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/eco-habits", func(w http.ResponseWriter, r *http.Request) {
		listCalls++
		json.NewEncoder(w).Encode([]types.EcoHabitLog{
			{ID: "1", ActivityType: posted.ActivityType, Points: posted.Points},
		})
	})
	mux.HandleFunc("POST /api/eco-habits", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&posted))
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(types.EcoHabitLog{
			ID:           "1",
			ActivityType: posted.ActivityType,
			Points:       posted.Points,
		})
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	c := New(server.URL, StaticTokenSource("token"), nil)

	// Meter input "10" at 5 points per unit.
	log, err := c.Habits.Log(context.Background(), "Jalan Kaki", 10, 5)
	require.NoError(t, err)

	assert.Equal(t, "Jalan Kaki", posted.ActivityType)
	assert.Equal(t, 50, posted.Points)

	assert.False(t, log.IsSaving)

	// Habits use the refetch policy: the log call refreshed the list.
	assert.Equal(t, 1, listCalls)
	assert.Equal(t, 1, c.Habits.Collection.Len())
}

func TestListHabitsDerivesIsSaving(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/eco-habits", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]types.EcoHabitLog{
			{ID: "1", ActivityType: "Hemat Air", Points: 10},
			{ID: "2", ActivityType: "Jalan Kaki", Points: 50},
		})
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	c := New(server.URL, StaticTokenSource("token"), nil)

	logs, err := c.Habits.List(context.Background())
	require.NoError(t, err)

	require.Len(t, logs, 2)
	assert.True(t, logs[0].IsSaving)
	assert.False(t, logs[1].IsSaving)
}
