// README: Entry point; loads config, wires services with fx and runs the HTTP server.
package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"tripguide/internal/ai"
	"tripguide/internal/config"
	httptransport "tripguide/internal/http"
	"tripguide/internal/infra"
	"tripguide/internal/logging"
	"tripguide/internal/maps"
	"tripguide/internal/modules/history"
	"tripguide/internal/modules/image"
	"tripguide/internal/modules/locale"
	"tripguide/internal/service"
	"tripguide/internal/storage"
)

func main() {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	gin.SetMode(gin.ReleaseMode)

	app := fx.New(
		fx.Supply(cfg, logger),
		fx.WithLogger(func(l *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: l.Named("fx")}
		}),
		fx.Provide(
			provideKV,
			provideAIProvider,
			provideEnricher,
			provideVerifier,
			provideTripPlanner,
			provideRouter,
			history.NewService,
			locale.NewService,
			image.NewService,
		),
		fx.Invoke(startServer),
	)
	app.Run()
}

func provideKV(lc fx.Lifecycle, cfg config.Config, log *zap.Logger) (storage.KV, error) {
	kv, closeFn, err := infra.NewKV(context.Background(), cfg.Storage.Backend, cfg.Redis.Addr, cfg.DB.DSN, log)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{OnStop: func(context.Context) error {
		closeFn()
		return nil
	}})
	return kv, nil
}

func provideAIProvider(lc fx.Lifecycle, cfg config.Config, log *zap.Logger) (ai.Provider, error) {
	p, err := ai.NewProvider(cfg.AI.Settings())
	if err != nil {
		return nil, err
	}
	if cfg.AI.APIKey == "" {
		log.Warn("no API key configured; guide requests will fail until one is set")
	}
	lc.Append(fx.Hook{OnStop: func(context.Context) error { return p.Close() }})
	return p, nil
}

func provideEnricher(cfg config.Config, log *zap.Logger) (*maps.Enricher, error) {
	if cfg.Maps.APIKey == "" {
		return nil, nil
	}
	places, err := maps.NewPlacesService(cfg.Maps.APIKey)
	if err != nil {
		return nil, err
	}
	return maps.NewEnricher(places, log, cfg.Maps.Lookups), nil
}

func provideVerifier(cfg config.Config, log *zap.Logger) (infra.TokenVerifier, error) {
	if cfg.Firebase.ProjectID == "" {
		log.Info("firebase auth disabled; history and language are shared")
		return nil, nil
	}
	return infra.NewFirebaseVerifier(context.Background(), cfg.Firebase.ProjectID, cfg.Firebase.CredentialsFile)
}

func provideTripPlanner(cfg config.Config, provider ai.Provider, images *image.Service, enricher *maps.Enricher, hist *history.Service, log *zap.Logger) *service.TripPlanner {
	return service.NewTripPlanner(provider, images, enricher, hist, log, service.PlannerOptions{
		GuideTimeout: cfg.AI.Timeout,
		Retries:      cfg.AI.Retries,
	})
}

func provideRouter(cfg config.Config, planner *service.TripPlanner, hist *history.Service, locales *locale.Service, verifier infra.TokenVerifier, log *zap.Logger) *gin.Engine {
	return httptransport.NewRouter(httptransport.RouterDeps{
		Planner:     planner,
		History:     hist,
		Locales:     locales,
		Verifier:    verifier,
		CORSOrigins: cfg.HTTP.CORSOrigins,
		Log:         log,
	})
}

func startServer(lc fx.Lifecycle, cfg config.Config, engine *gin.Engine, log *zap.Logger) {
	server := httptransport.NewServer(cfg.HTTP.Addr, engine, log)
	lc.Append(fx.Hook{
		OnStart: server.Start,
		OnStop:  server.Stop,
	})
}
