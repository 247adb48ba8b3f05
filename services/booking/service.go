package booking

import (
	"context"
	"encoding/json"
	"fmt"

	"raphtravel/models"
	"raphtravel/services/gds"
	"raphtravel/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateBooking runs the booking workflow: the provider call strictly
// precedes the persistence write, and a record is only ever written for a
// provider-confirmed reservation.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, usr *models.User, req models.BookingRequest) (*models.Booking, error) {
	details, err := requestDetails(req)
	if err != nil {
		return nil, fmt.Errorf("invalid booking request: %w", err)
	}

	confirmation, err := s.GDS.BookService(ctx, req.BookingType, req.ServiceID, details)
	if err != nil {
		// Nothing is persisted for a failed provider call.
		return nil, err
	}

	currency := confirmation.Currency
	if currency == "" {
		currency = req.Currency
	}
	if currency == "" {
		currency = "USD"
	}

	totalCost := confirmation.TotalCost
	if totalCost == 0 {
		totalCost = req.TotalCost
	}

	paymentStatus := confirmation.PaymentStatus
	if paymentStatus == "" {
		paymentStatus = "pending"
	}

	record := &models.Booking{
		ID:                 uuid.New().String(),
		UserID:             usr.ID,
		BookingType:        req.BookingType,
		Status:             models.BookingPending,
		BookingReference:   uuid.New().String(),
		ProviderReference:  confirmation.ProviderReference,
		BookingData:        req.BookingData,
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
		TotalCost:          totalCost,
		Currency:           currency,
		PaymentStatus:      paymentStatus,
		Notes:              req.Notes,
		RecommendationData: req.RecommendationData,
	}

	if err := s.Repo.Create(record); err != nil {
		// The provider has confirmed this reservation but the record could
		// not be written. There is no provider-side cancel here; the
		// provider reference is logged so operators can reconcile by hand.
		utils.GetLogger().Error("CreateBooking: provider-confirmed booking could not be persisted",
			zap.String("provider_reference", confirmation.ProviderReference),
			zap.String("booking_reference", record.BookingReference),
			zap.Error(err))
		return nil, fmt.Errorf("booking confirmed by provider but could not be recorded: %w", err)
	}

	return record, nil
}

// ListUserBookings returns the user's booking history, most recent first.
func (s *DefaultBookingService) ListUserBookings(userID string) ([]models.Booking, error) {
	return s.Repo.ListByUser(userID)
}

// SearchFlights delegates to the provider client.
func (s *DefaultBookingService) SearchFlights(ctx context.Context, params gds.FlightSearchParams) []models.FlightOffer {
	return s.GDS.SearchFlights(ctx, params)
}

// SearchHotels delegates to the provider client.
func (s *DefaultBookingService) SearchHotels(ctx context.Context, params gds.HotelSearchParams) []models.HotelOffer {
	return s.GDS.SearchHotels(ctx, params)
}

// SearchCarRentals delegates to the provider client.
func (s *DefaultBookingService) SearchCarRentals(ctx context.Context, params gds.CarRentalSearchParams) []models.CarRentalOffer {
	return s.GDS.SearchCarRentals(ctx, params)
}

// SearchCruises delegates to the provider client.
func (s *DefaultBookingService) SearchCruises(ctx context.Context, params gds.CruiseSearchParams) []models.CruiseOffer {
	return s.GDS.SearchCruises(ctx, params)
}

// GetLivePrices delegates to the provider client.
func (s *DefaultBookingService) GetLivePrices(ctx context.Context, serviceType models.BookingType, serviceIDs []string) map[string]float64 {
	return s.GDS.GetLivePrices(ctx, serviceType, serviceIDs)
}

// requestDetails flattens the booking request into the payload forwarded to
// the provider.
func requestDetails(req models.BookingRequest) (map[string]any, error) {
	raw, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	var details map[string]any
	if err := json.Unmarshal(raw, &details); err != nil {
		return nil, err
	}
	return details, nil
}
