// README: Trip cost totals from the per-person guide estimates.
package budget

import (
	"math"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"tripguide/internal/guide"
	"tripguide/internal/modules/locale"
	"tripguide/internal/types"
)

const op = "budget.calculate"

// Calculate validates req and multiplies the guide's per-person figures out over the
// party size and the inclusive day count.
func Calculate(loc locale.Localizer, b guide.Budget, req Request) (Result, error) {
	people, err := strconv.Atoi(strings.TrimSpace(req.People))
	if err != nil || people <= 0 {
		return Result{}, invalid(loc, "errorNumPeople")
	}

	if strings.TrimSpace(req.StartDate) == "" || strings.TrimSpace(req.EndDate) == "" {
		return Result{}, invalid(loc, "errorDateRequired")
	}
	start, errStart := time.Parse(DateLayout, strings.TrimSpace(req.StartDate))
	end, errEnd := time.Parse(DateLayout, strings.TrimSpace(req.EndDate))
	if errStart != nil || errEnd != nil {
		return Result{}, invalid(loc, "errorDateRequired")
	}
	if end.Before(start) {
		return Result{}, invalid(loc, "errorDateOrder")
	}

	// time.Duration overflows past ~292 years, so count days from Unix seconds.
	duration := int(math.Ceil(float64(end.Unix()-start.Unix())/86400)) + 1
	if duration <= 0 {
		return Result{}, invalid(loc, "errorTripLength")
	}

	stayLocal := types.NewMoney(b.CostPerPersonLocal, b.LocalCurrencyCode).Times(float64(people * duration))
	stayOrigin := types.NewMoney(b.CostPerPersonOrigin, b.OriginCurrencyCode).Times(float64(people * duration))
	travelLocal := types.NewMoney(b.TravelCostPerPersonLocal, b.LocalCurrencyCode).Times(float64(people))
	travelOrigin := types.NewMoney(b.TravelCostPerPersonOrigin, b.OriginCurrencyCode).Times(float64(people))

	localTag := language.Make(loc.Language())
	originTag := localTag
	if strings.EqualFold(b.OriginCurrencyCode, "INR") {
		originTag = language.MustParse("en-IN")
	}

	line := func(l, o types.Money) Line {
		return Line{
			Local:     l,
			Origin:    o,
			Formatted: Format(localTag, l) + " / " + Format(originTag, o),
		}
	}

	return Result{
		People:   people,
		Duration: duration,
		Stay:     line(stayLocal, stayOrigin),
		Travel:   line(travelLocal, travelOrigin),
		Total:    line(stayLocal.Plus(travelLocal), stayOrigin.Plus(travelOrigin)),
		Summary:  loc.T("tripDetailsSummary", map[string]any{"people": people, "duration": duration}),
	}, nil
}

// Format renders m as the currency's symbol (A$, CA$, $, €) followed by the amount grouped for
// tag with at most two fraction digits. Unknown codes are printed as "<CODE> <amount>".
func Format(tag language.Tag, m types.Money) string {
	p := message.NewPrinter(tag)
	amount := p.Sprint(number.Decimal(m.Amount, number.MaxFractionDigits(2)))
	unit, err := currency.ParseISO(m.Currency)
	if err != nil {
		if m.Currency == "" {
			return amount
		}
		return m.Currency + " " + amount
	}
	return p.Sprint(currency.Symbol(unit)) + amount
}

func invalid(loc locale.Localizer, key string) error {
	return &types.Error{Kind: types.KindValidation, Op: op, Message: loc.T(key, nil)}
}
