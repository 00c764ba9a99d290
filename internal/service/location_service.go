package service

import (
	"context"
	"fmt"
	"time"

	"foodcart-api/internal/models"

	"github.com/rs/zerolog/log"
)

// LocationRepository is the slice of storage the location cache needs.
type LocationRepository interface {
	GetOrCreateLocation(ctx context.Context, address string) (models.Location, error)
	UpdateLocationCoordinates(ctx context.Context, address string, coords models.Coordinates, fetchedAt time.Time) error
}

// Geocoder resolves an address via the external provider. A nil result with
// a nil error means the provider found no match (or retries ran out).
type Geocoder interface {
	Geocode(ctx context.Context, address string) (*models.Coordinates, error)
}

// LocationService is the address→coordinates cache. Entries refresh inline
// on access whenever coordinates are missing; a failed lookup leaves the
// entry unresolved so the next access tries again.
type LocationService struct {
	repo     LocationRepository
	geocoder Geocoder
}

// NewLocationService creates a new location cache service.
func NewLocationService(repo LocationRepository, geocoder Geocoder) *LocationService {
	return &LocationService{repo: repo, geocoder: geocoder}
}

// Resolve returns the cached location for an address, geocoding it first if
// the cache has no coordinates yet. The returned location may still lack
// coordinates when the provider has no match.
func (s *LocationService) Resolve(ctx context.Context, address string) (models.Location, error) {
	if address == "" {
		return models.Location{}, fmt.Errorf("service: address cannot be empty")
	}

	loc, err := s.repo.GetOrCreateLocation(ctx, address)
	if err != nil {
		return models.Location{}, fmt.Errorf("service: failed to load location cache: %w", err)
	}
	if !loc.NeedsRefresh() {
		return loc, nil
	}

	coords, err := s.geocoder.Geocode(ctx, address)
	if err != nil {
		return models.Location{}, fmt.Errorf("service: failed to geocode address: %w", err)
	}
	if coords == nil {
		// No negative caching: the entry stays unresolved and the next
		// access will ask the provider again.
		log.Debug().Str("address", address).Msg("address not resolved by provider")
		return loc, nil
	}

	now := time.Now()
	if err := s.repo.UpdateLocationCoordinates(ctx, address, *coords, now); err != nil {
		return models.Location{}, fmt.Errorf("service: failed to store coordinates: %w", err)
	}
	loc.Coords = coords
	loc.LastFetched = now
	return loc, nil
}
