// README: Budget calculator handler.
package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tripguide/internal/guide"
	"tripguide/internal/http/middleware"
	"tripguide/internal/modules/budget"
	"tripguide/internal/modules/locale"
)

type BudgetHandler struct {
	locales *locale.Service
}

func NewBudgetHandler(locales *locale.Service) *BudgetHandler {
	return &BudgetHandler{locales: locales}
}

// people may arrive as a JSON number or string.
type budgetReq struct {
	Budget    guide.Budget `json:"budget"`
	People    any          `json:"people"`
	StartDate string       `json:"startDate"`
	EndDate   string       `json:"endDate"`
}

// Calculate handles POST /api/budget.
func (h *BudgetHandler) Calculate(c *gin.Context) {
	var req budgetReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	loc := h.locales.Load(c.Request.Context(), middleware.CallerUID(c))
	res, err := budget.Calculate(loc, req.Budget, budget.Request{
		People:    peopleText(req.People),
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		writeServiceError(c, loc, err)
		return
	}
	writeJSON(c, http.StatusOK, res)
}

func peopleText(v any) string {
	switch p := v.(type) {
	case nil:
		return ""
	case string:
		return p
	case float64:
		return strconv.FormatFloat(p, 'f', -1, 64)
	default:
		return fmt.Sprint(p)
	}
}
