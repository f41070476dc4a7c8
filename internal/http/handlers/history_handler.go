// README: Trip history listing.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tripguide/internal/http/middleware"
	"tripguide/internal/modules/history"
	"tripguide/internal/modules/locale"
)

type HistoryHandler struct {
	history *history.Service
	locales *locale.Service
	now     func() time.Time
}

func NewHistoryHandler(hist *history.Service, locales *locale.Service) *HistoryHandler {
	return &HistoryHandler{history: hist, locales: locales, now: time.Now}
}

type historyEntry struct {
	history.Item
	TimeAgo string `json:"timeAgo"`
}

// List handles GET /api/history.
func (h *HistoryHandler) List(c *gin.Context) {
	uid := middleware.CallerUID(c)
	loc := h.locales.Load(c.Request.Context(), uid)

	items := h.history.Load(c.Request.Context(), uid)
	now := h.now()
	out := make([]historyEntry, 0, len(items))
	for _, it := range items {
		out = append(out, historyEntry{Item: it, TimeAgo: loc.TimeAgo(time.UnixMilli(it.Timestamp), now)})
	}
	writeJSON(c, http.StatusOK, gin.H{"items": out})
}
