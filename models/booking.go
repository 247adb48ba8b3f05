package models

import "time"

// BookingStatus is the lifecycle state of a booking record. Only the booking
// service transitions it; every new record starts at BookingPending.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

// BookingType identifies which travel service a booking covers. It constrains
// the expected shape of BookingData, which is otherwise provider-defined.
type BookingType string

const (
	BookingFlight       BookingType = "flight"
	BookingHotel        BookingType = "hotel"
	BookingCar          BookingType = "car"
	BookingHomeRental   BookingType = "home_rental"
	BookingCruise       BookingType = "cruise"
	BookingPrivateJet   BookingType = "private_jet"
	BookingWeddingVenue BookingType = "wedding_venue"
	BookingHoneymoonPkg BookingType = "honeymoon_package"
)

// Booking represents a confirmed reservation record. A record is only ever
// written after the distribution provider has confirmed the reservation.
type Booking struct {
	ID          string        `bson:"id" json:"id"`
	UserID      string        `bson:"user_id" json:"user_id"`
	BookingType BookingType   `bson:"booking_type" json:"booking_type"`
	Status      BookingStatus `bson:"status" json:"status"`

	// BookingReference is this system's own unique reference, generated only
	// after a successful provider booking call. ProviderReference is assigned
	// by the external provider.
	BookingReference  string `bson:"booking_reference" json:"booking_reference"`
	ProviderReference string `bson:"provider_reference" json:"provider_reference"`

	// Type-specific details, shape defined by the provider.
	BookingData map[string]any `bson:"booking_data,omitempty" json:"booking_data,omitempty"`

	StartDate time.Time `bson:"start_date" json:"start_date"`
	EndDate   time.Time `bson:"end_date" json:"end_date"`

	TotalCost     float64 `bson:"total_cost" json:"total_cost"`
	Currency      string  `bson:"currency" json:"currency"`
	PaymentStatus string  `bson:"payment_status" json:"payment_status"`

	Notes string `bson:"notes,omitempty" json:"notes,omitempty"`

	// The AI recommendation that led to this booking, if any.
	RecommendationData map[string]any `bson:"recommendation_data,omitempty" json:"recommendation_data,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// BookingRequest is the payload accepted by the booking endpoint.
type BookingRequest struct {
	BookingType BookingType    `json:"booking_type" binding:"required"`
	ServiceID   string         `json:"service_id" binding:"required"`
	BookingData map[string]any `json:"booking_data"`

	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`

	TotalCost float64 `json:"total_cost"`
	Currency  string  `json:"currency"`
	Notes     string  `json:"notes"`

	RecommendationData map[string]any `json:"recommendation_data"`
}

// BookingConfirmation is the provider's reply to a booking call.
type BookingConfirmation struct {
	ProviderReference string  `json:"provider_reference"`
	Status            string  `json:"status"`
	TotalCost         float64 `json:"total_cost"`
	Currency          string  `json:"currency"`
	PaymentStatus     string  `json:"payment_status"`
}
