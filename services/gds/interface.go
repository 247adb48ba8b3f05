package gds

import (
	"context"
	"time"

	"raphtravel/models"
)

// FlightSearchParams are the inputs to a flight availability search.
type FlightSearchParams struct {
	Origin        string
	Destination   string
	DepartureDate time.Time
	ReturnDate    *time.Time
	Passengers    int
	CabinClass    string
}

// HotelSearchParams are the inputs to a hotel availability search.
type HotelSearchParams struct {
	Location string
	CheckIn  time.Time
	CheckOut time.Time
	Guests   int
	Rooms    int
}

// CarRentalSearchParams are the inputs to a car rental availability search.
type CarRentalSearchParams struct {
	Location    string
	PickupDate  time.Time
	ReturnDate  time.Time
	VehicleType string
}

// CruiseSearchParams are the inputs to a cruise availability search.
type CruiseSearchParams struct {
	DeparturePort string
	Destination   string
	DepartureDate time.Time
	DurationDays  int
	Passengers    int
}

// Client is the typed client for the external distribution system.
//
// Search calls degrade provider unavailability to an empty result set rather
// than an error, so search UX stays non-blocking. BookService is the one call
// whose failure propagates, as a *ProviderError.
type Client interface {
	SearchFlights(ctx context.Context, params FlightSearchParams) []models.FlightOffer
	SearchHotels(ctx context.Context, params HotelSearchParams) []models.HotelOffer
	SearchCarRentals(ctx context.Context, params CarRentalSearchParams) []models.CarRentalOffer
	SearchCruises(ctx context.Context, params CruiseSearchParams) []models.CruiseOffer
	BookService(ctx context.Context, serviceType models.BookingType, serviceID string, details map[string]any) (*models.BookingConfirmation, error)
	GetLivePrices(ctx context.Context, serviceType models.BookingType, serviceIDs []string) map[string]float64
}
