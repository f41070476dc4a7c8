package ai

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"tripguide/internal/guide"
)

// TestGuideLive calls the real backend. Set TRIPGUIDE_LIVE_KEY (and optionally
// TRIPGUIDE_LIVE_PROVIDER) to run it.
func TestGuideLive(t *testing.T) {
	key := strings.TrimSpace(os.Getenv("TRIPGUIDE_LIVE_KEY"))
	if key == "" {
		t.Skip("TRIPGUIDE_LIVE_KEY not set")
	}
	t.Logf("[TEST LOG] starting TestGuideLive")

	p, err := NewProvider(Settings{Backend: os.Getenv("TRIPGUIDE_LIVE_PROVIDER"), APIKey: key})
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}
	defer p.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	res, err := p.GenerateText(ctx, GuidePrompt(GuideRequest{
		Destination: "Porto", Origin: "Madrid", HotelPreference: "average", TravelMode: "train",
	}), TextOptions{Temperature: GuideTemperature, Search: true})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	g, err := guide.Extract(res.Text)
	if err != nil {
		t.Fatalf("extract: %v\nraw: %.500s", err, res.Text)
	}
	if g.Budget.TravelCostPerPersonOrigin <= 0 {
		t.Errorf("expected a travel cost, got %+v", g.Budget)
	}
	t.Logf("destination=%s hotels=%d sources=%d", g.Destination, len(g.Hotels), len(res.Sources))
}
