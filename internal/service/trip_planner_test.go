package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tripguide/internal/ai"
	"tripguide/internal/maps"
	"tripguide/internal/modules/history"
	"tripguide/internal/modules/image"
	"tripguide/internal/storage"
	"tripguide/internal/types"
)

const guideJSON = `Here is your guide:
` + "```json" + `
{"destination":"Paris","themeColorHex":"#1E90FF","hotels":[{"name":"Hotel A","description":"nice"}],
 "budget":{"costPerPersonLocal":100,"localCurrencyCode":"EUR","costPerPersonOrigin":110,"originCurrencyCode":"USD",
 "travelCostPerPersonLocal":400,"travelCostPerPersonOrigin":440}}
` + "```"

type scriptedProvider struct {
	texts      []*ai.TextResult
	textErrs   []error
	textCalls  int
	imageCalls int
	imageErr   error
	opts       ai.TextOptions
}

func (s *scriptedProvider) GenerateText(ctx context.Context, prompt string, opts ai.TextOptions) (*ai.TextResult, error) {
	i := s.textCalls
	s.textCalls++
	s.opts = opts
	if i < len(s.textErrs) && s.textErrs[i] != nil {
		return nil, s.textErrs[i]
	}
	if i < len(s.texts) {
		return s.texts[i], nil
	}
	return s.texts[len(s.texts)-1], nil
}

func (s *scriptedProvider) GenerateImage(context.Context, string, ai.ImageOptions) (*ai.Image, error) {
	s.imageCalls++
	if s.imageErr != nil {
		return nil, s.imageErr
	}
	return &ai.Image{Data: []byte{1, 2, 3}, MIMEType: "image/jpeg"}, nil
}

func newPlanner(p ai.Provider, retries int) (*TripPlanner, *history.Service) {
	log := zap.NewNop()
	hist := history.NewService(storage.NewMemoryKV(), log)
	return NewTripPlanner(p, image.NewService(p, log), nil, hist, log, PlannerOptions{
		GuideTimeout: time.Second,
		Retries:      retries,
		RetryDelay:   time.Millisecond,
	}), hist
}

func parisRequest() PlanRequest {
	return PlanRequest{Destination: " Paris ", Origin: "New York", HotelPreference: "average", TravelMode: "flight"}
}

func TestPlanHappyPath(t *testing.T) {
	p := &scriptedProvider{texts: []*ai.TextResult{{Text: guideJSON}}}
	planner, hist := newPlanner(p, 1)

	res, err := planner.Plan(context.Background(), "", parisRequest())
	require.NoError(t, err)

	assert.Equal(t, "Paris", res.Guide.Destination)
	assert.Equal(t, "#1E90FF", res.AccentColor)
	assert.Equal(t, "data:image/jpeg;base64,AQID", res.BackgroundImage)
	assert.NotNil(t, res.Guide.Cafes)
	assert.Empty(t, res.Sources)
	require.Len(t, res.History, 1)
	assert.Equal(t, "Paris", res.History[0].Destination)
	assert.Equal(t, history.HotelAverage, res.History[0].HotelPreference)
	assert.Len(t, hist.Load(context.Background(), ""), 1)

	assert.True(t, p.opts.Search)
	assert.Equal(t, ai.GuideTemperature, p.opts.Temperature)
}

func TestPlanImageFailureKeepsGuide(t *testing.T) {
	p := &scriptedProvider{texts: []*ai.TextResult{{Text: guideJSON}}, imageErr: errors.New("quota")}
	planner, _ := newPlanner(p, 0)

	res, err := planner.Plan(context.Background(), "", parisRequest())
	require.NoError(t, err)
	assert.Equal(t, "", res.BackgroundImage)
	assert.Equal(t, "Paris", res.Guide.Destination)
	assert.Len(t, res.History, 1)
}

func TestPlanMalformedSkipsImageAndHistory(t *testing.T) {
	p := &scriptedProvider{texts: []*ai.TextResult{{Text: "Sorry, I cannot help with that."}}}
	planner, hist := newPlanner(p, 1)

	res, err := planner.Plan(context.Background(), "", parisRequest())
	require.Error(t, err)
	assert.Nil(t, res)
	assert.Equal(t, types.KindMalformedResponse, types.KindOf(err))
	assert.Equal(t, 1, p.textCalls, "malformed output is not retried")
	assert.Zero(t, p.imageCalls)
	assert.Empty(t, hist.Load(context.Background(), ""))
}

func TestPlanConfigErrorIsVerbatim(t *testing.T) {
	lazy := ai.NewLazyProvider(ai.Settings{}, func(context.Context, ai.Settings) (ai.Provider, error) {
		t.Fatal("builder must not run without a key")
		return nil, nil
	})
	planner, _ := newPlanner(lazy, 1)

	_, err := planner.Plan(context.Background(), "", parisRequest())
	require.Error(t, err)
	assert.Equal(t, types.KindConfig, types.KindOf(err))
	assert.Equal(t, ai.MissingAPIKeyMessage, types.MessageOf(err))
}

func TestPlanRetriesServiceErrorOnce(t *testing.T) {
	p := &scriptedProvider{
		textErrs: []error{types.E(types.KindService, "test", errors.New("503"))},
		texts:    []*ai.TextResult{nil, {Text: guideJSON}},
	}
	planner, _ := newPlanner(p, 1)

	res, err := planner.Plan(context.Background(), "", parisRequest())
	require.NoError(t, err)
	assert.Equal(t, 2, p.textCalls)
	assert.Equal(t, "Paris", res.Guide.Destination)
}

func TestPlanServiceErrorWithoutRetry(t *testing.T) {
	p := &scriptedProvider{
		textErrs: []error{errors.New("connection reset"), errors.New("connection reset")},
		texts:    []*ai.TextResult{{Text: guideJSON}},
	}
	planner, _ := newPlanner(p, 0)

	_, err := planner.Plan(context.Background(), "", parisRequest())
	require.Error(t, err)
	assert.Equal(t, 1, p.textCalls)
	assert.Equal(t, types.KindService, types.KindOf(err))
	assert.Contains(t, types.MessageOf(err), "connection reset")
	assert.Zero(t, p.imageCalls)
}

func TestPlanValidation(t *testing.T) {
	planner, _ := newPlanner(&scriptedProvider{}, 0)
	cases := []PlanRequest{
		{Origin: "NYC", HotelPreference: "low", TravelMode: "train"},
		{Destination: "Rome", HotelPreference: "low", TravelMode: "train"},
		{Destination: "Rome", Origin: "NYC", HotelPreference: "luxury", TravelMode: "train"},
		{Destination: "Rome", Origin: "NYC", HotelPreference: "low", TravelMode: "boat"},
	}
	for _, req := range cases {
		_, err := planner.Plan(context.Background(), "", req)
		assert.Equal(t, types.KindValidation, types.KindOf(err), "%+v", req)
	}
}

func TestReplayUsesStoredItem(t *testing.T) {
	p := &scriptedProvider{texts: []*ai.TextResult{{Text: guideJSON}}}
	planner, hist := newPlanner(p, 0)
	ctx := context.Background()

	hist.Record(ctx, "u1", history.Item{Destination: "Paris", Origin: "Berlin", HotelPreference: history.HotelLow, TravelMode: history.ModeTrain})

	res, err := planner.Replay(ctx, "u1", 0)
	require.NoError(t, err)
	require.Len(t, res.History, 1)
	assert.Equal(t, "Berlin", res.History[0].Origin)
	assert.Equal(t, history.ModeTrain, res.History[0].TravelMode)

	_, err = planner.Replay(ctx, "u1", 3)
	assert.Equal(t, types.KindValidation, types.KindOf(err))
	assert.ErrorIs(t, err, ErrHistoryIndex)
}

type placeStub struct{}

func (placeStub) Lookup(context.Context, string) (*maps.Place, error) {
	return &maps.Place{Address: "10 Rue A, Paris", Rating: 4.5}, nil
}

func TestPlanEnrichesWhenConfigured(t *testing.T) {
	p := &scriptedProvider{texts: []*ai.TextResult{{Text: guideJSON}}}
	log := zap.NewNop()
	hist := history.NewService(storage.NewMemoryKV(), log)
	planner := NewTripPlanner(p, image.NewService(p, log), maps.NewEnricher(placeStub{}, log, 5), hist, log, PlannerOptions{})

	res, err := planner.Plan(context.Background(), "", parisRequest())
	require.NoError(t, err)
	require.Len(t, res.Guide.Hotels, 1)
	assert.Equal(t, "10 Rue A, Paris", res.Guide.Hotels[0].Location)
}
