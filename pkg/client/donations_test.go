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

func TestMatchDonationScenario(t *testing.T) {
	donations := []types.Donation{
		{ID: "3", ItemName: "Beras", Status: types.DonationStatusAvailable},
	}
	needs := []types.NeedRequest{
		{ID: "9", ItemName: "Beras 10kg", IsFulfilled: false},
	}

	var donationPut types.UpdateDonationRequest
	var needPut types.UpdateNeedRequest
	var order []string

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/donations", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(donations)
	})
	mux.HandleFunc("GET /api/needs", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(needs)
	})
	mux.HandleFunc("PUT /api/donations/{id}", func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "PUT "+r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&donationPut))
		w.Write([]byte(`{}`))
	})
	mux.HandleFunc("PUT /api/needs/{id}", func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "PUT "+r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&needPut))
		w.Write([]byte(`{}`))
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	c := New(server.URL, StaticTokenSource("token"), nil)

	_, err := c.Donations.List(context.Background())
	require.NoError(t, err)
	_, err = c.Needs.List(context.Background())
	require.NoError(t, err)

	require.NoError(t, c.Donations.Match(context.Background(), "3", "9", c.Needs))

	require.Equal(t, []string{"PUT /api/donations/3", "PUT /api/needs/9"}, order)

	require.NotNil(t, donationPut.Status)
	assert.Equal(t, types.DonationStatusMatched, *donationPut.Status)
	require.NotNil(t, donationPut.NeedRequestID)
	assert.Equal(t, "9", *donationPut.NeedRequestID)

	require.NotNil(t, needPut.IsFulfilled)
	assert.True(t, *needPut.IsFulfilled)

	donation, ok := c.Donations.Collection.Get("3")
	require.True(t, ok)
	assert.Equal(t, types.DonationStatusMatched, donation.Status)
	require.NotNil(t, donation.NeedRequestID)
	assert.Equal(t, "9", *donation.NeedRequestID)

	need, ok := c.Needs.Collection.Get("9")
	require.True(t, ok)
	assert.True(t, need.IsFulfilled)
}

func TestAdvanceDonation(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/donations", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]types.Donation{
			{ID: "5", Status: types.DonationStatusMatched},
		})
	})
	mux.HandleFunc("PUT /api/donations/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	c := New(server.URL, StaticTokenSource("token"), nil)

	_, err := c.Donations.List(context.Background())
	require.NoError(t, err)

	require.NoError(t, c.Donations.Advance(context.Background(), "5", types.DonationStatusDelivered))

	donation, ok := c.Donations.Collection.Get("5")
	require.True(t, ok)
	assert.Equal(t, types.DonationStatusDelivered, donation.Status)
}
