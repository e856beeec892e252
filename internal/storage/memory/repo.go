package memory

import (
	"context"

	"seapay_hotel/internal/domain"
)

// Demo catalog. Every hotel is always "available"; there is no capacity model.
var catalog = []domain.Hotel{
	{
		Name:          "Grand Plaza Hotel",
		Location:      "Miami Beach, FL",
		RoomType:      "Deluxe King",
		PricePerNight: 220,
		ImageURL:      "https://images.seapay.example/grand-plaza.jpg",
	},
	{
		Name:          "Ocean Breeze Resort",
		Location:      "Key West, FL",
		RoomType:      "Ocean View Suite",
		PricePerNight: 310,
		ImageURL:      "https://images.seapay.example/ocean-breeze.jpg",
	},
	{
		Name:          "Sunset Inn",
		Location:      "Naples, FL",
		RoomType:      "Standard Queen",
		PricePerNight: 145,
		ImageURL:      "https://images.seapay.example/sunset-inn.jpg",
	},
}

// Repo serves the static catalog. Reads are safe for concurrent use since
// nothing mutates the records after construction.
type Repo struct{ hotels []domain.Hotel }

func New() *Repo {
	hs := make([]domain.Hotel, len(catalog))
	copy(hs, catalog)
	return &Repo{hotels: hs}
}

// List returns the catalog in insertion order. Callers get a copy so cached
// or returned slices can never alias the repo's backing array.
func (r *Repo) List(ctx context.Context) ([]domain.Hotel, error) {
	out := make([]domain.Hotel, len(r.hotels))
	copy(out, r.hotels)
	return out, nil
}

// FindByName does an exact-match lookup against the catalog.
func (r *Repo) FindByName(ctx context.Context, name string) (domain.Hotel, error) {
	for _, h := range r.hotels {
		if h.Name == name {
			return h, nil
		}
	}
	return domain.Hotel{}, domain.ErrNotFound
}
