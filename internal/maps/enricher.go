package maps

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"tripguide/internal/guide"
)

// Lookuper resolves a free-text place query.
type Lookuper interface {
	Lookup(ctx context.Context, query string) (*Place, error)
}

// Enricher fills blank locations and ratings of hotels and popular places from Places.
type Enricher struct {
	places     Lookuper
	log        *zap.Logger
	maxLookups int
}

func NewEnricher(places Lookuper, log *zap.Logger, maxLookups int) *Enricher {
	return &Enricher{places: places, log: log, maxLookups: maxLookups}
}

// Enrich updates g in place and returns the number of items changed. Lookup failures
// are logged and skipped. At most maxLookups queries are issued.
func (e *Enricher) Enrich(ctx context.Context, g *guide.TravelGuide) int {
	if e == nil || e.places == nil || g == nil {
		return 0
	}

	lookups, changed := 0, 0
	for _, items := range [][]guide.GuideItem{g.Hotels, g.PopularPlaces} {
		for i := range items {
			item := &items[i]
			if item.Location != "" && item.Rating != nil {
				continue
			}
			if lookups >= e.maxLookups || ctx.Err() != nil {
				return changed
			}
			lookups++

			query := fmt.Sprintf("%s, %s", item.Name, g.Destination)
			place, err := e.places.Lookup(ctx, query)
			if err != nil {
				e.log.Warn("place lookup failed", zap.String("query", query), zap.Error(err))
				continue
			}

			updated := false
			if item.Location == "" && place.Address != "" {
				item.Location = place.Address
				updated = true
			}
			if item.Rating == nil && place.Rating > 0 {
				r := widenRating(place.Rating)
				item.Rating = &r
				updated = true
			}
			if updated {
				changed++
			}
		}
	}
	return changed
}

// widenRating converts a Places rating through its shortest float32 text so 4.3
// stays 4.3 instead of 4.300000190734863.
func widenRating(r float32) float64 {
	v, err := strconv.ParseFloat(strconv.FormatFloat(float64(r), 'f', -1, 32), 64)
	if err != nil {
		return float64(r)
	}
	return v
}
