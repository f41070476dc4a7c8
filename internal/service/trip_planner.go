package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"

	"tripguide/internal/ai"
	"tripguide/internal/guide"
	"tripguide/internal/maps"
	"tripguide/internal/modules/history"
	"tripguide/internal/modules/image"
	"tripguide/internal/types"
)

// Default pipeline tuning.
const (
	DefaultGuideTimeout = 90 * time.Second
	DefaultRetries      = 1
	DefaultRetryDelay   = 500 * time.Millisecond
)

var ErrHistoryIndex = errors.New("history entry not found")

// PlanRequest is one guide request as entered by the traveler.
type PlanRequest struct {
	Destination     string                  `json:"destination"`
	Origin          string                  `json:"origin"`
	HotelPreference history.HotelPreference `json:"hotelPreference"`
	TravelMode      history.TravelMode      `json:"travelMode"`
}

// PlanResult is everything the client needs to render one destination.
type PlanResult struct {
	Guide           *guide.TravelGuide `json:"guide"`
	Sources         []guide.Source     `json:"sources"`
	AccentColor     string             `json:"accentColor,omitempty"`
	BackgroundImage string             `json:"backgroundImage"`
	History         []history.Item     `json:"history"`
}

type PlannerOptions struct {
	GuideTimeout time.Duration
	Retries      int
	RetryDelay   time.Duration
}

// TripPlanner runs the guide, enrichment, image and history stages in that order.
type TripPlanner struct {
	provider ai.Provider
	images   *image.Service
	enricher *maps.Enricher
	history  *history.Service
	log      *zap.Logger
	opts     PlannerOptions
}

// NewTripPlanner creates a TripPlanner. enricher may be nil.
func NewTripPlanner(provider ai.Provider, images *image.Service, enricher *maps.Enricher, hist *history.Service, log *zap.Logger, opts PlannerOptions) *TripPlanner {
	if opts.GuideTimeout <= 0 {
		opts.GuideTimeout = DefaultGuideTimeout
	}
	if opts.Retries < 0 {
		opts.Retries = 0
	}
	if opts.RetryDelay <= 0 {
		opts.RetryDelay = DefaultRetryDelay
	}
	return &TripPlanner{
		provider: provider,
		images:   images,
		enricher: enricher,
		history:  hist,
		log:      log,
		opts:     opts,
	}
}

// Validate trims the free-text fields and checks the enums.
func (r *PlanRequest) Validate() error {
	r.Destination = strings.TrimSpace(r.Destination)
	r.Origin = strings.TrimSpace(r.Origin)
	if r.Destination == "" || r.Origin == "" {
		return types.Errorf(types.KindValidation, "planner.validate", "destination and origin are required")
	}
	hp, err := history.ParseHotelPreference(string(r.HotelPreference))
	if err != nil {
		return &types.Error{Kind: types.KindValidation, Op: "planner.validate", Message: err.Error(), Err: err}
	}
	mode, err := history.ParseTravelMode(string(r.TravelMode))
	if err != nil {
		return &types.Error{Kind: types.KindValidation, Op: "planner.validate", Message: err.Error(), Err: err}
	}
	r.HotelPreference, r.TravelMode = hp, mode
	return nil
}

// Plan produces a guide for req. A guide failure ends the pipeline before any image
// request; image, enrichment and history failures only degrade the result.
func (p *TripPlanner) Plan(ctx context.Context, owner string, req PlanRequest) (*PlanResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// 1. Guide
	g, sources, err := p.generateGuide(ctx, req)
	if err != nil {
		return nil, err
	}

	// 1b. Places enrichment (optional)
	if p.enricher != nil {
		if n := p.enricher.Enrich(ctx, g); n > 0 {
			p.log.Debug("guide enriched from places", zap.Int("items", n))
		}
	}

	accent, ok := g.AccentColor()
	if !ok && g.ThemeColorHex != "" {
		p.log.Debug("ignoring invalid theme color", zap.String("themeColorHex", g.ThemeColorHex))
	}

	// 2. Background image
	background := p.images.FetchImage(ctx, req.Destination)

	// 3. History
	items := p.history.Record(ctx, owner, history.Item{
		Destination:     req.Destination,
		Origin:          req.Origin,
		HotelPreference: req.HotelPreference,
		TravelMode:      req.TravelMode,
	})

	if sources == nil {
		sources = []guide.Source{}
	}
	return &PlanResult{
		Guide:           g,
		Sources:         sources,
		AccentColor:     accent,
		BackgroundImage: background,
		History:         items,
	}, nil
}

// Replay re-runs Plan for the history entry at index (0 is newest).
func (p *TripPlanner) Replay(ctx context.Context, owner string, index int) (*PlanResult, error) {
	items := p.history.Load(ctx, owner)
	if index < 0 || index >= len(items) {
		return nil, &types.Error{Kind: types.KindValidation, Op: "planner.replay", Message: ErrHistoryIndex.Error(), Err: ErrHistoryIndex}
	}
	item := items[index]
	return p.Plan(ctx, owner, PlanRequest{
		Destination:     item.Destination,
		Origin:          item.Origin,
		HotelPreference: item.HotelPreference,
		TravelMode:      item.TravelMode,
	})
}

func (p *TripPlanner) generateGuide(ctx context.Context, req PlanRequest) (*guide.TravelGuide, []guide.Source, error) {
	prompt := ai.GuidePrompt(ai.GuideRequest{
		Destination:     req.Destination,
		Origin:          req.Origin,
		HotelPreference: string(req.HotelPreference),
		TravelMode:      string(req.TravelMode),
	})

	backoff := retry.WithMaxRetries(uint64(p.opts.Retries), retry.NewConstant(p.opts.RetryDelay))
	attempt := 0
	res, err := retry.DoValue(ctx, backoff, func(ctx context.Context) (*ai.TextResult, error) {
		attempt++
		callCtx, cancel := context.WithTimeout(ctx, p.opts.GuideTimeout)
		defer cancel()

		res, err := p.provider.GenerateText(callCtx, prompt, ai.TextOptions{Temperature: ai.GuideTemperature, Search: true})
		if err == nil {
			return res, nil
		}
		switch types.KindOf(err) {
		case types.KindConfig, types.KindValidation:
			return nil, err
		}
		p.log.Warn("guide generation attempt failed", zap.Int("attempt", attempt), zap.Error(err))
		return nil, retry.RetryableError(err)
	})
	if err != nil {
		if types.KindOf(err) == types.KindUnknown {
			err = types.E(types.KindService, "planner.guide", err)
		}
		p.log.Error("guide generation failed", zap.String("destination", req.Destination), zap.Error(err))
		return nil, nil, err
	}

	g, err := guide.Extract(res.Text)
	if err != nil {
		p.log.Error("failed to parse guide response",
			zap.String("destination", req.Destination),
			zap.Int("responseLength", len(res.Text)),
			zap.String("responseHead", head(res.Text, 200)),
			zap.Error(err))
		return nil, nil, err
	}
	g.Normalize()
	return g, res.Sources, nil
}

func head(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return fmt.Sprintf("%s...", s[:n])
}
