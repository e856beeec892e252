package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"seapay_hotel/internal/domain"
)

// ReservationService fabricates confirmation records. There is no capacity
// model and no reservation store: every call is independent and nothing is
// retrievable afterwards.
type ReservationService struct {
	repo domain.HotelRepository
	now  func() time.Time
}

func NewReservationService(r domain.HotelRepository) *ReservationService {
	return &ReservationService{repo: r, now: time.Now}
}

// Reserve validates the hotel name against the catalog and returns a
// confirmed reservation with a generated identifier. Unknown names fail with
// domain.ErrNotFound before any record is fabricated.
func (s *ReservationService) Reserve(ctx context.Context, hotelName string, stay domain.StayRequest) (domain.Reservation, error) {
	h, err := s.repo.FindByName(ctx, hotelName)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("reserve %q: %w", hotelName, err)
	}
	return domain.Reservation{
		ReservationID: "RES-" + uuid.NewString(),
		HotelName:     h.Name,
		CheckIn:       stay.CheckIn,
		CheckOut:      stay.CheckOut,
		Adults:        stay.Adults,
		Children:      stay.Children,
		Status:        domain.StatusConfirmed,
		CreatedAt:     s.now().UTC(),
	}, nil
}
