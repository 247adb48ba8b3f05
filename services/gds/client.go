package gds

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"raphtravel/config"
	"raphtravel/models"
	"raphtravel/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const requestTimeout = 10 * time.Second

// DefaultClient talks to the external distribution system over HTTP.
// Search responses are cached in Redis for the configured TTL; booking calls
// are never cached.
type DefaultClient struct {
	baseURL  string
	apiKey   string
	http     *http.Client
	cache    *redis.Client
	cacheTTL time.Duration
}

// NewDefaultClient builds the production GDS client. The cache client may be
// nil, in which case search results are fetched fresh on every call.
func NewDefaultClient(cfg *config.Config, cache *redis.Client) *DefaultClient {
	return &DefaultClient{
		baseURL:  strings.TrimSuffix(cfg.GDSBaseURL, "/"),
		apiKey:   cfg.GDSAPIKey,
		http:     &http.Client{Timeout: requestTimeout},
		cache:    cache,
		cacheTTL: time.Duration(cfg.CacheExpiration) * time.Second,
	}
}

// SearchFlights searches for available flights. Any provider failure,
// including a timeout, yields an empty result set.
func (c *DefaultClient) SearchFlights(ctx context.Context, params FlightSearchParams) []models.FlightOffer {
	if params.Passengers < 1 {
		params.Passengers = 1
	}
	if params.CabinClass == "" {
		params.CabinClass = "economy"
	}

	query := url.Values{}
	query.Set("origin", params.Origin)
	query.Set("destination", params.Destination)
	query.Set("departure_date", params.DepartureDate.Format(time.RFC3339))
	query.Set("passengers", strconv.Itoa(params.Passengers))
	query.Set("cabin_class", params.CabinClass)
	if params.ReturnDate != nil {
		query.Set("return_date", params.ReturnDate.Format(time.RFC3339))
	}

	offers := []models.FlightOffer{}
	if err := c.getJSON(ctx, "/flights/search", query, &offers); err != nil {
		utils.GetLogger().Warn("GDS flight search failed", zap.Error(err))
		return []models.FlightOffer{}
	}
	return offers
}

// SearchHotels searches for available hotels with the same empty-on-failure
// policy as SearchFlights.
func (c *DefaultClient) SearchHotels(ctx context.Context, params HotelSearchParams) []models.HotelOffer {
	if params.Guests < 1 {
		params.Guests = 1
	}
	if params.Rooms < 1 {
		params.Rooms = 1
	}

	query := url.Values{}
	query.Set("location", params.Location)
	query.Set("check_in", params.CheckIn.Format(time.RFC3339))
	query.Set("check_out", params.CheckOut.Format(time.RFC3339))
	query.Set("guests", strconv.Itoa(params.Guests))
	query.Set("rooms", strconv.Itoa(params.Rooms))

	offers := []models.HotelOffer{}
	if err := c.getJSON(ctx, "/hotels/search", query, &offers); err != nil {
		utils.GetLogger().Warn("GDS hotel search failed", zap.Error(err))
		return []models.HotelOffer{}
	}
	return offers
}

// SearchCarRentals searches for available car rentals.
func (c *DefaultClient) SearchCarRentals(ctx context.Context, params CarRentalSearchParams) []models.CarRentalOffer {
	query := url.Values{}
	query.Set("location", params.Location)
	query.Set("pickup_date", params.PickupDate.Format(time.RFC3339))
	query.Set("return_date", params.ReturnDate.Format(time.RFC3339))
	if params.VehicleType != "" {
		query.Set("vehicle_type", params.VehicleType)
	}

	offers := []models.CarRentalOffer{}
	if err := c.getJSON(ctx, "/cars/search", query, &offers); err != nil {
		utils.GetLogger().Warn("GDS car rental search failed", zap.Error(err))
		return []models.CarRentalOffer{}
	}
	return offers
}

// SearchCruises searches for available cruises.
func (c *DefaultClient) SearchCruises(ctx context.Context, params CruiseSearchParams) []models.CruiseOffer {
	if params.Passengers < 1 {
		params.Passengers = 2
	}

	query := url.Values{}
	query.Set("departure_port", params.DeparturePort)
	query.Set("destination", params.Destination)
	query.Set("departure_date", params.DepartureDate.Format(time.RFC3339))
	query.Set("duration", strconv.Itoa(params.DurationDays))
	query.Set("passengers", strconv.Itoa(params.Passengers))

	offers := []models.CruiseOffer{}
	if err := c.getJSON(ctx, "/cruises/search", query, &offers); err != nil {
		utils.GetLogger().Warn("GDS cruise search failed", zap.Error(err))
		return []models.CruiseOffer{}
	}
	return offers
}

// BookService reserves inventory through the distribution system. Unlike the
// search calls, a non-success provider response here returns a *ProviderError
// carrying the provider's status and message.
func (c *DefaultClient) BookService(ctx context.Context, serviceType models.BookingType, serviceID string, details map[string]any) (*models.BookingConfirmation, error) {
	payload := map[string]any{"service_id": serviceID}
	for k, v := range details {
		if k == "service_id" {
			continue
		}
		payload[k] = v
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode booking payload: %w", err)
	}

	endpoint := fmt.Sprintf("%s/%s/book", c.baseURL, serviceType)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build booking request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		// A transport failure or timeout is treated like a non-success
		// provider response.
		return nil, NewProviderError(http.StatusServiceUnavailable, "provider unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, NewProviderError(resp.StatusCode, readProviderMessage(resp.Body))
	}

	var confirmation models.BookingConfirmation
	if err := json.NewDecoder(resp.Body).Decode(&confirmation); err != nil {
		return nil, NewProviderError(resp.StatusCode, "provider returned an unreadable confirmation")
	}
	return &confirmation, nil
}

// GetLivePrices fetches real-time prices for the given services. The result
// is empty on any failure.
func (c *DefaultClient) GetLivePrices(ctx context.Context, serviceType models.BookingType, serviceIDs []string) map[string]float64 {
	query := url.Values{}
	query.Set("service_ids", strings.Join(serviceIDs, ","))

	prices := map[string]float64{}
	path := fmt.Sprintf("/%s/prices", serviceType)
	if err := c.getJSON(ctx, path, query, &prices); err != nil {
		utils.GetLogger().Warn("GDS live price lookup failed", zap.Error(err))
		return map[string]float64{}
	}
	return prices
}

func (c *DefaultClient) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
}

// getJSON performs a GET against the provider and decodes the response body
// into out, going through the Redis cache when one is configured. Cache
// failures are ignored.
func (c *DefaultClient) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	cacheKey := "gds:" + path + "?" + query.Encode()
	if c.cache != nil {
		if cached, err := c.cache.Get(ctx, cacheKey).Result(); err == nil {
			if json.Unmarshal([]byte(cached), out) == nil {
				return nil
			}
		}
	}

	endpoint := c.baseURL + path + "?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", path, err)
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("provider returned status %d for %s", resp.StatusCode, path)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response from %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}

	if c.cache != nil {
		_ = c.cache.Set(ctx, cacheKey, raw, c.cacheTTL).Err()
	}
	return nil
}

// readProviderMessage pulls a human-readable message out of a provider error
// body. Providers answer with {"error": "..."} or {"message": "..."}; raw
// text is passed through as-is.
func readProviderMessage(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil || len(raw) == 0 {
		return ""
	}

	var parsed struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if json.Unmarshal(raw, &parsed) == nil {
		if parsed.Error != "" {
			return parsed.Error
		}
		if parsed.Message != "" {
			return parsed.Message
		}
	}
	return strings.TrimSpace(string(raw))
}
