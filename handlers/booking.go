package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"raphtravel/models"
	"raphtravel/services/booking"
	"raphtravel/services/gds"
	"raphtravel/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes inventory search, booking, and price endpoints.
type BookingHandler struct {
	BookingService booking.BookingService
	UserService    user.UserService
}

func NewBookingHandler(bookingSvc booking.BookingService, userSvc user.UserService) *BookingHandler {
	return &BookingHandler{BookingService: bookingSvc, UserService: userSvc}
}

// SearchFlightsHandler handles GET /bookings/search/flights.
func (h *BookingHandler) SearchFlightsHandler(c *gin.Context) {
	origin := c.Query("origin")
	destination := c.Query("destination")
	departureDate, err := parseDate(c.Query("departure_date"))
	if origin == "" || destination == "" || err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "origin, destination and departure_date are required"})
		return
	}

	params := gds.FlightSearchParams{
		Origin:        origin,
		Destination:   destination,
		DepartureDate: departureDate,
		Passengers:    intQuery(c, "passengers", 1),
		CabinClass:    c.DefaultQuery("cabin_class", "economy"),
	}
	if rd := c.Query("return_date"); rd != "" {
		if returnDate, err := parseDate(rd); err == nil {
			params.ReturnDate = &returnDate
		}
	}

	c.JSON(http.StatusOK, h.BookingService.SearchFlights(c.Request.Context(), params))
}

// SearchHotelsHandler handles GET /bookings/search/hotels.
func (h *BookingHandler) SearchHotelsHandler(c *gin.Context) {
	location := c.Query("location")
	checkIn, errIn := parseDate(c.Query("check_in"))
	checkOut, errOut := parseDate(c.Query("check_out"))
	if location == "" || errIn != nil || errOut != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "location, check_in and check_out are required"})
		return
	}

	params := gds.HotelSearchParams{
		Location: location,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Guests:   intQuery(c, "guests", 1),
		Rooms:    intQuery(c, "rooms", 1),
	}

	c.JSON(http.StatusOK, h.BookingService.SearchHotels(c.Request.Context(), params))
}

// SearchCarRentalsHandler handles GET /bookings/search/cars.
func (h *BookingHandler) SearchCarRentalsHandler(c *gin.Context) {
	location := c.Query("location")
	pickupDate, errPickup := parseDate(c.Query("pickup_date"))
	returnDate, errReturn := parseDate(c.Query("return_date"))
	if location == "" || errPickup != nil || errReturn != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "location, pickup_date and return_date are required"})
		return
	}

	params := gds.CarRentalSearchParams{
		Location:    location,
		PickupDate:  pickupDate,
		ReturnDate:  returnDate,
		VehicleType: c.Query("vehicle_type"),
	}

	c.JSON(http.StatusOK, h.BookingService.SearchCarRentals(c.Request.Context(), params))
}

// SearchCruisesHandler handles GET /bookings/search/cruises.
func (h *BookingHandler) SearchCruisesHandler(c *gin.Context) {
	departurePort := c.Query("departure_port")
	destination := c.Query("destination")
	departureDate, err := parseDate(c.Query("departure_date"))
	if departurePort == "" || destination == "" || err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "departure_port, destination and departure_date are required"})
		return
	}

	params := gds.CruiseSearchParams{
		DeparturePort: departurePort,
		Destination:   destination,
		DepartureDate: departureDate,
		DurationDays:  intQuery(c, "duration", 7),
		Passengers:    intQuery(c, "passengers", 2),
	}

	c.JSON(http.StatusOK, h.BookingService.SearchCruises(c.Request.Context(), params))
}

// CreateBookingHandler handles POST /bookings/book. A provider rejection
// surfaces as a 400 carrying the provider's message; no record is written
// for it.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	usr, ok := h.currentUser(c)
	if !ok {
		return
	}

	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	// Once the provider call starts it must run to completion even if the
	// client disconnects, so the booking context ignores request cancellation.
	record, err := h.BookingService.CreateBooking(context.WithoutCancel(c.Request.Context()), usr, req)
	if err != nil {
		var providerErr *gds.ProviderError
		if errors.As(err, &providerErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": providerErr.Message})
			return
		}
		getLogger().Error("Booking failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Booking failed, please try again"})
		return
	}

	c.JSON(http.StatusCreated, record)
}

// ListBookingsHandler handles GET /bookings.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	userID := c.GetString("userID")
	bookings, err := h.BookingService.ListUserBookings(userID)
	if err != nil {
		getLogger().Error("Failed to list bookings", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve bookings"})
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, bookings)
}

// LivePricesHandler handles GET /bookings/prices.
func (h *BookingHandler) LivePricesHandler(c *gin.Context) {
	serviceType := c.Query("service_type")
	serviceIDs := strings.Split(c.Query("service_ids"), ",")
	if serviceType == "" || len(serviceIDs) == 0 || serviceIDs[0] == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "service_type and service_ids are required"})
		return
	}

	prices := h.BookingService.GetLivePrices(c.Request.Context(), models.BookingType(serviceType), serviceIDs)
	c.JSON(http.StatusOK, prices)
}

// currentUser resolves the authenticated user set by the auth middleware.
func (h *BookingHandler) currentUser(c *gin.Context) (*models.User, bool) {
	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}

	usr, err := h.UserService.GetUserByID(userID)
	if err != nil {
		getLogger().Error("Failed to resolve caller", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}
	return usr, true
}

// parseDate accepts both date-only and RFC 3339 timestamps.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

func intQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return fallback
	}
	return v
}
