package booking

import (
	"context"

	bookingRepo "raphtravel/database/repository/booking"
	"raphtravel/models"
	"raphtravel/services/gds"
)

// BookingService coordinates the distribution provider and persisted booking
// state. It owns the only multi-step workflow in the system.
type BookingService interface {
	// CreateBooking reserves inventory with the provider and, only on
	// provider success, persists a booking record attributed to the user.
	CreateBooking(ctx context.Context, usr *models.User, req models.BookingRequest) (*models.Booking, error)

	ListUserBookings(userID string) ([]models.Booking, error)

	// Search fan-out. No persistence, provider failures degrade to empty
	// results.
	SearchFlights(ctx context.Context, params gds.FlightSearchParams) []models.FlightOffer
	SearchHotels(ctx context.Context, params gds.HotelSearchParams) []models.HotelOffer
	SearchCarRentals(ctx context.Context, params gds.CarRentalSearchParams) []models.CarRentalOffer
	SearchCruises(ctx context.Context, params gds.CruiseSearchParams) []models.CruiseOffer

	GetLivePrices(ctx context.Context, serviceType models.BookingType, serviceIDs []string) map[string]float64
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	GDS  gds.Client
	Repo bookingRepo.BookingRepository
}
