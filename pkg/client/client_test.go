package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"lumbungwarga/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type notification struct {
	Title   string
	Message string
}

type recordingNotifier struct {
	successes []notification
	errors    []notification
}

func (n *recordingNotifier) Success(title, message string) {
	n.successes = append(n.successes, notification{Title: title, Message: message})
}

func (n *recordingNotifier) Error(title, message string) {
	n.errors = append(n.errors, notification{Title: title, Message: message})
}

func TestUnauthorizedShortCircuitsBeforeNetworkCall(t *testing.T) {
	var requests atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
	}))
	defer server.Close()

	notifier := &recordingNotifier{}
	c := New(server.URL, StaticTokenSource(""), notifier)

	_, err := c.Needs.List(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)

	assert.Equal(t, int64(0), requests.Load(), "no HTTP request may be issued without a session")
	require.Len(t, notifier.errors, 1)
	assert.Equal(t, "Akses ditolak", notifier.errors[0].Title)
}

func TestFailureLeavesStateUntouched(t *testing.T) {
	initial := []types.NeedRequest{
		{ID: "1", ItemName: "Beras", IsVerified: false},
		{ID: "2", ItemName: "Seragam", IsVerified: false},
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet:
			json.NewEncoder(w).Encode(initial)
		case r.Method == http.MethodPut:
			w.WriteHeader(http.StatusForbidden)
			json.NewEncoder(w).Encode(map[string]string{"message": "Forbidden"})
		}
	}))
	defer server.Close()

	notifier := &recordingNotifier{}
	c := New(server.URL, StaticTokenSource("token"), notifier)

	_, err := c.Needs.List(context.Background())
	require.NoError(t, err)

	before := c.Needs.Collection.Items()

	err = c.Needs.Verify(context.Background(), "1")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	assert.Equal(t, "Forbidden", apiErr.Message)

	assert.Equal(t, before, c.Needs.Collection.Items(), "failed mutation must not touch local state")
	require.Len(t, notifier.errors, 1)
	assert.Empty(t, notifier.successes)
}

func TestErrorMessageExtraction(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{name: "json message", status: 400, body: `{"message":"Kategori tidak dikenal"}`, want: "Kategori tidak dikenal"},
		{name: "json without message", status: 404, body: `{"error":"nope"}`, want: "Not Found"},
		{name: "malformed body", status: 500, body: `<html>boom</html>`, want: "Internal Server Error"},
		{name: "unknown status no body", status: 599, body: `not json`, want: "could not process error response"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			c := New(server.URL, StaticTokenSource("token"), nil)

			err := c.do(context.Background(), http.MethodGet, "/api/needs", nil, nil)
			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.want, apiErr.Message)
		})
	}
}

func TestBearerAndContentTypeHeaders(t *testing.T) {
	var gotAuth, gotContentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	c := New(server.URL, StaticTokenSource("secret-token"), nil)

	err := c.do(context.Background(), http.MethodPost, "/api/needs", map[string]string{"a": "b"}, nil)
	require.NoError(t, err)

	assert.Equal(t, "Bearer secret-token", gotAuth)
	assert.Equal(t, "application/json", gotContentType)
}
