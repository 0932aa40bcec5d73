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

func TestVerifyNeedScenario(t *testing.T) {
	needs := []types.NeedRequest{
		{ID: "7", ItemName: "Beras 10kg", Description: "kebutuhan pokok", IsUrgent: true, IsVerified: false},
		{ID: "8", ItemName: "Seragam", IsVerified: false},
	}

	var putPath string
	var putBody types.UpdateNeedRequest

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/needs", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(needs)
	})
	mux.HandleFunc("PUT /api/needs/{id}", func(w http.ResponseWriter, r *http.Request) {
		putPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&putBody))
		w.Write([]byte(`{}`))
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	notifier := &recordingNotifier{}
	c := New(server.URL, StaticTokenSource("token"), notifier)

	_, err := c.Needs.List(context.Background())
	require.NoError(t, err)

	require.NoError(t, c.Needs.Verify(context.Background(), "7"))

	assert.Equal(t, "/api/needs/7", putPath)
	require.NotNil(t, putBody.IsVerified)
	assert.True(t, *putBody.IsVerified)
	assert.Nil(t, putBody.IsFulfilled)

	verified, ok := c.Needs.Collection.Get("7")
	require.True(t, ok)
	assert.True(t, verified.IsVerified)
	assert.Equal(t, "Beras 10kg", verified.ItemName)
	assert.True(t, verified.IsUrgent)

	// The other entry is untouched.
	other, ok := c.Needs.Collection.Get("8")
	require.True(t, ok)
	assert.False(t, other.IsVerified)

	require.Len(t, notifier.successes, 1)
	assert.Equal(t, "Berhasil", notifier.successes[0].Title)
}

func TestCreateNeedPrependsToCollection(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/needs", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]types.NeedRequest{{ID: "1", ItemName: "Buku"}})
	})
	mux.HandleFunc("POST /api/needs", func(w http.ResponseWriter, r *http.Request) {
		var req types.CreateNeedRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(types.NeedRequest{
			ID:          "2",
			ItemName:    req.ItemName,
			Description: req.Description,
			Category:    req.Category,
		})
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	c := New(server.URL, StaticTokenSource("token"), nil)

	_, err := c.Needs.List(context.Background())
	require.NoError(t, err)

	created, err := c.Needs.Create(context.Background(), types.CreateNeedRequest{
		ItemName:    "Obat demam",
		Description: "untuk posyandu",
		Category:    types.NeedCategoryHealth,
	})
	require.NoError(t, err)
	assert.Equal(t, "2", created.ID)

	items := c.Needs.Collection.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "2", items[0].ID)
	assert.Equal(t, "1", items[1].ID)
}

func TestCreateNeedValidatesBeforeRequest(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	notifier := &recordingNotifier{}
	c := New(server.URL, StaticTokenSource("token"), notifier)

	_, err := c.Needs.Create(context.Background(), types.CreateNeedRequest{ItemName: "  "})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, 0, requests)
	assert.Equal(t, 0, c.Needs.Collection.Len())

	require.Len(t, notifier.errors, 1)
	assert.Equal(t, "Periksa kembali", notifier.errors[0].Title)
}
