package app

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"seapay_hotel/internal/domain"
)

// AvailabilityService answers stay queries against the catalog. Results are
// cached per stay-parameter tuple; concurrent misses for the same key are
// collapsed into a single fill.
type AvailabilityService struct {
	repo     domain.HotelRepository
	cache    domain.Cache
	cacheTTL time.Duration
	sf       singleflight.Group
}

func NewAvailabilityService(r domain.HotelRepository, c domain.Cache, ttl time.Duration) *AvailabilityService {
	return &AvailabilityService{repo: r, cache: c, cacheTTL: ttl}
}

// CheckAvailability returns every catalog record annotated with the requested
// stay. The catalog is never filtered: for a non-empty catalog the result is
// never empty, whatever the dates or guest counts say.
func (s *AvailabilityService) CheckAvailability(ctx context.Context, stay domain.StayRequest) ([]domain.HotelOffer, error) {
	key := fmt.Sprintf("availability:%s:%s:%d:%d", stay.CheckIn, stay.CheckOut, stay.Adults, stay.Children)
	var cached []domain.HotelOffer
	if ok, _ := s.cache.Get(ctx, key, &cached); ok {
		return cached, nil
	}

	v, err, _ := s.sf.Do(key, func() (any, error) {
		hotels, err := s.repo.List(ctx)
		if err != nil {
			return nil, err
		}
		offers := make([]domain.HotelOffer, 0, len(hotels))
		for _, h := range hotels {
			offers = append(offers, domain.HotelOffer{
				HotelName: h.Name,
				Location:  h.Location,
				Dates:     stay.Dates(),
				RoomType:  h.RoomType,
				Price:     h.PricePerNight,
				ImageURL:  h.ImageURL,
				Adults:    stay.Adults,
				Children:  stay.Children,
			})
		}
		_ = s.cache.Set(ctx, key, offers, int(s.cacheTTL.Seconds()))
		return offers, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.HotelOffer), nil
}
