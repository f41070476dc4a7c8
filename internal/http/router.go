// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripguide/internal/http/handlers"
	"tripguide/internal/http/middleware"
	"tripguide/internal/infra"
	"tripguide/internal/modules/history"
	"tripguide/internal/modules/locale"
	"tripguide/internal/service"
)

type RouterDeps struct {
	Planner     *service.TripPlanner
	History     *history.Service
	Locales     *locale.Service
	Verifier    infra.TokenVerifier
	CORSOrigins []string
	Log         *zap.Logger
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.Trace(),
		middleware.Recovery(deps.Log),
		middleware.CORS(deps.CORSOrigins),
		middleware.Logging(deps.Log),
	)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	api := r.Group("/api", middleware.OptionalAuth(deps.Verifier))

	guideHandler := handlers.NewGuideHandler(deps.Planner, deps.Locales)
	api.POST("/guides", guideHandler.Create)
	api.POST("/history/:index/regenerate", guideHandler.Regenerate)

	historyHandler := handlers.NewHistoryHandler(deps.History, deps.Locales)
	api.GET("/history", historyHandler.List)

	budgetHandler := handlers.NewBudgetHandler(deps.Locales)
	api.POST("/budget", budgetHandler.Calculate)

	languageHandler := handlers.NewLanguageHandler(deps.Locales)
	api.GET("/language", languageHandler.Get)
	api.PUT("/language", languageHandler.Put)

	// Outside the group: the account route rejects anonymous callers.
	if deps.Verifier != nil {
		accountHandler := handlers.NewAccountHandler()
		r.GET("/api/account", middleware.Auth(deps.Verifier), accountHandler.Get)
	}

	return r
}
