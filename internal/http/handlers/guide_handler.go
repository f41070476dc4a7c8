// README: Guide generation and history replay handlers.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tripguide/internal/http/middleware"
	"tripguide/internal/modules/locale"
	"tripguide/internal/service"
)

type GuideHandler struct {
	planner *service.TripPlanner
	locales *locale.Service
}

func NewGuideHandler(planner *service.TripPlanner, locales *locale.Service) *GuideHandler {
	return &GuideHandler{planner: planner, locales: locales}
}

// Create handles POST /api/guides.
func (h *GuideHandler) Create(c *gin.Context) {
	var req service.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	uid := middleware.CallerUID(c)
	loc := h.locales.Load(c.Request.Context(), uid)

	res, err := h.planner.Plan(c.Request.Context(), uid, req)
	if err != nil {
		writeServiceError(c, loc, err)
		return
	}
	writeJSON(c, http.StatusOK, res)
}

// Regenerate handles POST /api/history/:index/regenerate.
func (h *GuideHandler) Regenerate(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		writeError(c, http.StatusBadRequest, "invalid history index")
		return
	}

	uid := middleware.CallerUID(c)
	loc := h.locales.Load(c.Request.Context(), uid)

	res, err := h.planner.Replay(c.Request.Context(), uid, index)
	if err != nil {
		writeServiceError(c, loc, err)
		return
	}
	writeJSON(c, http.StatusOK, res)
}
