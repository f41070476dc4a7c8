// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripguide/internal/http/middleware"
	"tripguide/internal/modules/locale"
	"tripguide/internal/types"
)

type errorResponse struct {
	Error   string `json:"error"`
	Kind    string `json:"kind,omitempty"`
	TraceID string `json:"traceId,omitempty"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg, TraceID: middleware.TraceID(c)})
}

// writeServiceError maps an error kind to a status and user-facing message.
// Malformed model output gets the localized generic message; config errors are verbatim.
func writeServiceError(c *gin.Context, loc locale.Localizer, err error) {
	_ = c.Error(err)
	kind := types.KindOf(err)

	status, msg := http.StatusInternalServerError, loc.T("errorUnknown", nil)
	switch kind {
	case types.KindValidation:
		status, msg = http.StatusBadRequest, types.MessageOf(err)
	case types.KindConfig:
		status, msg = http.StatusInternalServerError, types.MessageOf(err)
	case types.KindMalformedResponse:
		status, msg = http.StatusBadGateway, loc.T("errorMalformedResponse", nil)
	case types.KindService:
		status, msg = http.StatusBadGateway, types.MessageOf(err)
	}
	writeJSON(c, status, errorResponse{Error: msg, Kind: kind.String(), TraceID: middleware.TraceID(c)})
}
