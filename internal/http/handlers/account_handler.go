// README: Signed-in caller identity.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripguide/internal/http/middleware"
)

type AccountHandler struct{}

func NewAccountHandler() *AccountHandler {
	return &AccountHandler{}
}

// Get handles GET /api/account. It sits behind middleware.Auth, so the caller is
// always verified here.
func (h *AccountHandler) Get(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{
		"uid":   middleware.CallerUID(c),
		"email": middleware.CallerEmail(c),
	})
}
