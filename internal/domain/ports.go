package domain

import (
	"context"
	"errors"
)

var (
	ErrNotFound   = errors.New("hotel not found")
	ErrValidation = errors.New("invalid request")
)

// HotelRepository abstracts the catalog so a real persistence backend can be
// substituted without touching the adapters.
type HotelRepository interface {
	List(ctx context.Context) ([]Hotel, error)
	FindByName(ctx context.Context, name string) (Hotel, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
