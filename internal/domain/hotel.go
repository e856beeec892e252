package domain

import "time"

// Hotel is a single bookable catalog record. The catalog is fixed at process
// start and is the single source of truth for valid hotel names.
type Hotel struct {
	Name          string
	Location      string
	RoomType      string
	PricePerNight float64
	ImageURL      string
}

// StayRequest carries the caller-supplied dates and guest counts. No
// checkIn < checkOut invariant is enforced anywhere; the values are echoed
// back as provided.
type StayRequest struct {
	CheckIn  string
	CheckOut string
	Adults   int
	Children int
}

// Dates renders the human-readable stay range used in availability results.
func (s StayRequest) Dates() string { return s.CheckIn + " to " + s.CheckOut }

// HotelOffer is one availability result entry: a catalog record annotated
// with the requested stay parameters. Field names follow the wire contract.
type HotelOffer struct {
	HotelName string  `json:"hotelName"`
	Location  string  `json:"location"`
	Dates     string  `json:"dates"`
	RoomType  string  `json:"roomType"`
	Price     float64 `json:"price"`
	ImageURL  string  `json:"imageUrl"`
	Adults    int     `json:"adults"`
	Children  int     `json:"children"`
}

// Reservation is a fabricated confirmation record. It lives only in the
// response payload; nothing is stored and nothing is retrievable afterwards.
type Reservation struct {
	ReservationID string    `json:"reservationId"`
	HotelName     string    `json:"hotelName"`
	CheckIn       string    `json:"checkIn"`
	CheckOut      string    `json:"checkOut"`
	Adults        int       `json:"adults"`
	Children      int       `json:"children"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

const StatusConfirmed = "confirmed"
