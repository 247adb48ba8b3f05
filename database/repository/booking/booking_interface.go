package bookingRepo

import "raphtravel/models"

// BookingRepository defines the persistence operations the booking service
// needs. Bookings are created exactly once per confirmed provider reservation
// and never updated in place.
type BookingRepository interface {
	Create(booking *models.Booking) error
	GetByID(id string) (*models.Booking, error)
	GetByReference(bookingReference string) (*models.Booking, error)
	ListByUser(userID string) ([]models.Booking, error)
}
