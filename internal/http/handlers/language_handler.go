// README: Language preference handlers.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripguide/internal/http/middleware"
	"tripguide/internal/modules/locale"
)

type LanguageHandler struct {
	locales *locale.Service
}

func NewLanguageHandler(locales *locale.Service) *LanguageHandler {
	return &LanguageHandler{locales: locales}
}

type languageReq struct {
	Language string `json:"language"`
}

// Get handles GET /api/language.
func (h *LanguageHandler) Get(c *gin.Context) {
	loc := h.locales.Load(c.Request.Context(), middleware.CallerUID(c))
	writeJSON(c, http.StatusOK, gin.H{"language": loc.Language(), "supported": locale.Supported})
}

// Put handles PUT /api/language.
func (h *LanguageHandler) Put(c *gin.Context) {
	var req languageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	uid := middleware.CallerUID(c)
	loc, err := h.locales.Save(c.Request.Context(), uid, req.Language)
	if err != nil {
		writeServiceError(c, h.locales.Load(c.Request.Context(), uid), err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"language": loc.Language()})
}
