package gds

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"raphtravel/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(baseURL string) *DefaultClient {
	return &DefaultClient{
		baseURL:  baseURL,
		apiKey:   "test-key",
		http:     &http.Client{Timeout: 200 * time.Millisecond},
		cacheTTL: time.Minute,
	}
}

func flightParams() FlightSearchParams {
	return FlightSearchParams{
		Origin:        "JFK",
		Destination:   "LHR",
		DepartureDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Passengers:    2,
	}
}

func TestSearchFlightsReturnsNormalizedOffers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/flights/search", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "JFK", r.URL.Query().Get("origin"))
		assert.Equal(t, "LHR", r.URL.Query().Get("destination"))
		assert.Equal(t, "2", r.URL.Query().Get("passengers"))
		assert.Equal(t, "economy", r.URL.Query().Get("cabin_class"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"service_id": "FL-1", "airline": "TransAtlantic", "origin": "JFK", "destination": "LHR", "price": 640.0, "currency": "USD"},
			{"service_id": "FL-2", "airline": "SkyBridge", "origin": "JFK", "destination": "LHR", "price": 702.5, "currency": "USD"}
		]`))
	}))
	defer srv.Close()

	offers := testClient(srv.URL).SearchFlights(context.Background(), flightParams())

	require.Len(t, offers, 2)
	assert.Equal(t, "FL-1", offers[0].ServiceID)
	assert.Equal(t, "SkyBridge", offers[1].Airline)
	assert.Equal(t, 702.5, offers[1].Price)
}

func TestSearchFlightsProviderOutageYieldsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	offers := testClient(srv.URL).SearchFlights(context.Background(), flightParams())
	assert.Empty(t, offers)
}

func TestSearchFlightsTimeoutYieldsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer srv.Close()

	offers := testClient(srv.URL).SearchFlights(context.Background(), flightParams())
	assert.Empty(t, offers)
}

func TestSearchHotelsAppliesMinimums(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/hotels/search", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("guests"))
		assert.Equal(t, "1", r.URL.Query().Get("rooms"))
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	params := HotelSearchParams{
		Location: "Paris",
		CheckIn:  time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2025, 7, 5, 0, 0, 0, 0, time.UTC),
	}
	offers := testClient(srv.URL).SearchHotels(context.Background(), params)
	assert.Empty(t, offers)
}

func TestBookServicePropagatesProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/flight/book", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"error": "fare class sold out"}`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).BookService(context.Background(), models.BookingFlight, "FL-1", nil)
	require.Error(t, err)

	var providerErr *ProviderError
	require.True(t, errors.As(err, &providerErr))
	assert.Equal(t, http.StatusConflict, providerErr.StatusCode)
	assert.Equal(t, "fare class sold out", providerErr.Message)
}

func TestBookServiceSuccessReturnsConfirmation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"provider_reference": "GDS-99", "status": "confirmed", "total_cost": 640.0, "currency": "USD"}`))
	}))
	defer srv.Close()

	confirmation, err := testClient(srv.URL).BookService(context.Background(), models.BookingFlight, "FL-1", map[string]any{"passengers": 2})
	require.NoError(t, err)
	assert.Equal(t, "GDS-99", confirmation.ProviderReference)
	assert.Equal(t, 640.0, confirmation.TotalCost)
}

func TestBookServiceUnreachableProviderIsProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).BookService(context.Background(), models.BookingHotel, "H-1", nil)
	require.Error(t, err)

	var providerErr *ProviderError
	require.True(t, errors.As(err, &providerErr))
	assert.Equal(t, http.StatusServiceUnavailable, providerErr.StatusCode)
}

func TestGetLivePricesEmptyOnFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	prices := testClient(srv.URL).GetLivePrices(context.Background(), models.BookingHotel, []string{"H-1", "H-2"})
	assert.Empty(t, prices)
}

func TestGetLivePrices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/hotel/prices", r.URL.Path)
		assert.Equal(t, "H-1,H-2", r.URL.Query().Get("service_ids"))
		w.Write([]byte(`{"H-1": 120.0, "H-2": 95.5}`))
	}))
	defer srv.Close()

	prices := testClient(srv.URL).GetLivePrices(context.Background(), models.BookingHotel, []string{"H-1", "H-2"})
	require.Len(t, prices, 2)
	assert.Equal(t, 95.5, prices["H-2"])
}
