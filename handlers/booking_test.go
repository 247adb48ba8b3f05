package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"raphtravel/handlers"
	"raphtravel/models"
	"raphtravel/services/booking"
	"raphtravel/services/gds"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// fakeBookingService is a hand-written test double for booking.BookingService.
type fakeBookingService struct {
	createBooking    func(ctx context.Context, usr *models.User, req models.BookingRequest) (*models.Booking, error)
	listUserBookings func(userID string) ([]models.Booking, error)
	searchFlights    func(ctx context.Context, params gds.FlightSearchParams) []models.FlightOffer
	searchHotels     func(ctx context.Context, params gds.HotelSearchParams) []models.HotelOffer
	searchCarRentals func(ctx context.Context, params gds.CarRentalSearchParams) []models.CarRentalOffer
	searchCruises    func(ctx context.Context, params gds.CruiseSearchParams) []models.CruiseOffer
	getLivePrices    func(ctx context.Context, serviceType models.BookingType, serviceIDs []string) map[string]float64
}

func (f *fakeBookingService) CreateBooking(ctx context.Context, usr *models.User, req models.BookingRequest) (*models.Booking, error) {
	return f.createBooking(ctx, usr, req)
}
func (f *fakeBookingService) ListUserBookings(userID string) ([]models.Booking, error) {
	return f.listUserBookings(userID)
}
func (f *fakeBookingService) SearchFlights(ctx context.Context, params gds.FlightSearchParams) []models.FlightOffer {
	return f.searchFlights(ctx, params)
}
func (f *fakeBookingService) SearchHotels(ctx context.Context, params gds.HotelSearchParams) []models.HotelOffer {
	return f.searchHotels(ctx, params)
}
func (f *fakeBookingService) SearchCarRentals(ctx context.Context, params gds.CarRentalSearchParams) []models.CarRentalOffer {
	return f.searchCarRentals(ctx, params)
}
func (f *fakeBookingService) SearchCruises(ctx context.Context, params gds.CruiseSearchParams) []models.CruiseOffer {
	return f.searchCruises(ctx, params)
}
func (f *fakeBookingService) GetLivePrices(ctx context.Context, serviceType models.BookingType, serviceIDs []string) map[string]float64 {
	return f.getLivePrices(ctx, serviceType, serviceIDs)
}

var _ booking.BookingService = (*fakeBookingService)(nil)

func bookingRouter(bookingSvc booking.BookingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	userSvc := &fakeUserService{
		getUserByID: func(userID string) (*models.User, error) {
			return &models.User{ID: userID, Email: "traveler@example.com"}, nil
		},
	}
	h := handlers.NewBookingHandler(bookingSvc, userSvc)

	// Stand-in for the auth middleware.
	r.Use(func(c *gin.Context) {
		c.Set("userID", "user-1")
	})
	r.GET("/bookings/search/flights", h.SearchFlightsHandler)
	r.POST("/bookings/book", h.CreateBookingHandler)
	return r
}

func TestSearchFlightsHandler(t *testing.T) {
	svc := &fakeBookingService{
		searchFlights: func(ctx context.Context, params gds.FlightSearchParams) []models.FlightOffer {
			assert.Equal(t, "JFK", params.Origin)
			assert.Equal(t, "LHR", params.Destination)
			assert.Equal(t, 2, params.Passengers)
			return []models.FlightOffer{{ServiceID: "FL-1"}, {ServiceID: "FL-2"}}
		},
	}
	r := bookingRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/bookings/search/flights?origin=JFK&destination=LHR&departure_date=2025-06-01&passengers=2", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "FL-1")
	assert.Contains(t, w.Body.String(), "FL-2")
}

func TestSearchFlightsHandlerMissingParams(t *testing.T) {
	r := bookingRouter(&fakeBookingService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/bookings/search/flights?origin=JFK", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateBookingHandlerProviderRejectionIs400(t *testing.T) {
	svc := &fakeBookingService{
		createBooking: func(ctx context.Context, usr *models.User, req models.BookingRequest) (*models.Booking, error) {
			return nil, gds.NewProviderError(409, "seat no longer available")
		},
	}
	r := bookingRouter(svc)

	w := httptest.NewRecorder()
	body := `{"booking_type": "flight", "service_id": "FL-1"}`
	req := httptest.NewRequest(http.MethodPost, "/bookings/book", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "seat no longer available")
}

func TestCreateBookingHandlerSuccess(t *testing.T) {
	svc := &fakeBookingService{
		createBooking: func(ctx context.Context, usr *models.User, req models.BookingRequest) (*models.Booking, error) {
			assert.Equal(t, "user-1", usr.ID)
			return &models.Booking{
				ID:               "bk-1",
				UserID:           usr.ID,
				BookingType:      req.BookingType,
				Status:           models.BookingPending,
				BookingReference: "ref-1",
			}, nil
		},
	}
	r := bookingRouter(svc)

	w := httptest.NewRecorder()
	body := `{"booking_type": "flight", "service_id": "FL-1"}`
	req := httptest.NewRequest(http.MethodPost, "/bookings/book", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"pending"`)
	assert.Contains(t, w.Body.String(), `"booking_reference":"ref-1"`)
}
