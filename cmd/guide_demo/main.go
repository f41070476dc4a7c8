package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"tripguide/internal/ai"
	"tripguide/internal/config"
	"tripguide/internal/modules/budget"
	"tripguide/internal/modules/history"
	"tripguide/internal/modules/image"
	"tripguide/internal/modules/locale"
	"tripguide/internal/service"
	"tripguide/internal/storage"
)

func main() {
	destination := flag.String("destination", "Kyoto", "destination city")
	origin := flag.String("origin", "San Francisco", "origin city")
	hotel := flag.String("hotel", "average", "hotel preference: low, average, premium")
	mode := flag.String("mode", "flight", "travel mode: flight, train")
	people := flag.String("people", "2", "number of travelers for the budget")
	start := flag.String("start", time.Now().AddDate(0, 1, 0).Format(budget.DateLayout), "trip start date")
	end := flag.String("end", time.Now().AddDate(0, 1, 4).Format(budget.DateLayout), "trip end date")
	lang := flag.String("lang", locale.DefaultLanguage, "language for budget messages")
	flag.Parse()

	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	provider, err := ai.NewProvider(cfg.AI.Settings())
	if err != nil {
		log.Fatalf("Failed to initialize AI provider: %v", err)
	}
	defer provider.Close()

	logger := zap.NewNop()
	kv := storage.NewMemoryKV()
	planner := service.NewTripPlanner(provider, image.NewService(provider, logger), nil,
		history.NewService(kv, logger), logger, service.PlannerOptions{
			GuideTimeout: cfg.AI.Timeout,
			Retries:      cfg.AI.Retries,
		})

	ctx := context.Background()
	fmt.Printf("Planning %s -> %s (%s, %s)\n", *origin, *destination, *hotel, *mode)

	res, err := planner.Plan(ctx, "", service.PlanRequest{
		Destination:     *destination,
		Origin:          *origin,
		HotelPreference: history.HotelPreference(*hotel),
		TravelMode:      history.TravelMode(*mode),
	})
	if err != nil {
		log.Fatalf("Error generating guide: %v", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res.Guide); err != nil {
		log.Fatal(err)
	}

	fmt.Println("Sources:")
	for _, s := range res.Sources {
		fmt.Printf("  - %s %s\n", s.Title, s.URI)
	}
	fmt.Printf("Accent color: %q, background image: %d bytes\n", res.AccentColor, len(res.BackgroundImage))

	est, err := budget.Calculate(locale.New(*lang), res.Guide.Budget, budget.Request{People: *people, StartDate: *start, EndDate: *end})
	if err != nil {
		log.Fatalf("Budget: %v", err)
	}
	fmt.Println(est.Summary)
	fmt.Printf("Stay:   %s\nTravel: %s\nTotal:  %s\n", est.Stay.Formatted, est.Travel.Formatted, est.Total.Formatted)
}
