// README: Budget calculator input and output.
package budget

import "tripguide/internal/types"

// DateLayout is the calendar date format accepted for trip dates.
const DateLayout = "2006-01-02"

// Request is the traveler input. People is kept as text so parse failures surface as
// the localized people error rather than a decoding error.
type Request struct {
	People    string `json:"people"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// Line is one row of the estimate in both currencies.
type Line struct {
	Local     types.Money `json:"local"`
	Origin    types.Money `json:"origin"`
	Formatted string      `json:"formatted"`
}

type Result struct {
	People   int    `json:"people"`
	Duration int    `json:"duration"`
	Stay     Line   `json:"stay"`
	Travel   Line   `json:"travel"`
	Total    Line   `json:"total"`
	Summary  string `json:"summary"`
}
