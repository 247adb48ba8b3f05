package models

import "time"

// FlightOffer is a normalized flight inventory item returned by search.
type FlightOffer struct {
	ServiceID     string    `json:"service_id"`
	Airline       string    `json:"airline"`
	FlightNumber  string    `json:"flight_number"`
	Origin        string    `json:"origin"`
	Destination   string    `json:"destination"`
	DepartureTime time.Time `json:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time"`
	CabinClass    string    `json:"cabin_class"`
	Price         float64   `json:"price"`
	Currency      string    `json:"currency"`
	SeatsLeft     int       `json:"seats_left,omitempty"`
}

// HotelOffer is a normalized hotel inventory item returned by search.
type HotelOffer struct {
	ServiceID     string  `json:"service_id"`
	Name          string  `json:"name"`
	Location      string  `json:"location"`
	StarRating    float64 `json:"star_rating,omitempty"`
	RoomType      string  `json:"room_type,omitempty"`
	PricePerNight float64 `json:"price_per_night"`
	Currency      string  `json:"currency"`
}

// CarRentalOffer is a normalized car rental inventory item returned by search.
type CarRentalOffer struct {
	ServiceID   string  `json:"service_id"`
	Company     string  `json:"company"`
	VehicleType string  `json:"vehicle_type"`
	Location    string  `json:"location"`
	PricePerDay float64 `json:"price_per_day"`
	Currency    string  `json:"currency"`
}

// CruiseOffer is a normalized cruise inventory item returned by search.
type CruiseOffer struct {
	ServiceID     string    `json:"service_id"`
	CruiseLine    string    `json:"cruise_line"`
	ShipName      string    `json:"ship_name,omitempty"`
	DeparturePort string    `json:"departure_port"`
	Destination   string    `json:"destination"`
	DepartureDate time.Time `json:"departure_date"`
	DurationDays  int       `json:"duration_days"`
	Price         float64   `json:"price"`
	Currency      string    `json:"currency"`
}
