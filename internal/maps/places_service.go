package maps

import (
	"context"
	"errors"
	"fmt"

	"googlemaps.github.io/maps"
)

var ErrNoPlace = errors.New("no matching place")

// Place represents a simplified location result.
type Place struct {
	Name             string
	Address          string
	Rating           float32
	PlaceID          string
	UserRatingsTotal int
}

// PlacesService handles interactions with Google Places API.
type PlacesService struct {
	client   *maps.Client
	language string
}

// NewPlacesService creates a new PlacesService with the given API Key.
// Extra options are passed to the maps client (tests point it at a local server).
func NewPlacesService(apiKey string, opts ...maps.ClientOption) (*PlacesService, error) {
	client, err := maps.NewClient(append([]maps.ClientOption{maps.WithAPIKey(apiKey)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &PlacesService{client: client, language: "en"}, nil
}

// Lookup returns the best Text Search match for query, e.g. "Louvre Museum, Paris".
func (s *PlacesService) Lookup(ctx context.Context, query string) (*Place, error) {
	resp, err := s.client.TextSearch(ctx, &maps.TextSearchRequest{
		Query:    query,
		Language: s.language,
	})
	if err != nil {
		return nil, fmt.Errorf("places api error: %w", err)
	}
	if len(resp.Results) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoPlace, query)
	}

	result := resp.Results[0]
	return &Place{
		Name:             result.Name,
		Address:          result.FormattedAddress,
		Rating:           result.Rating,
		PlaceID:          result.PlaceID,
		UserRatingsTotal: result.UserRatingsTotal,
	}, nil
}
