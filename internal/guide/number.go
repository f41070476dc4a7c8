// README: Lenient decoding for numeric guide fields the model sometimes quotes.
package guide

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// parseNumber accepts a JSON number or a string holding one ("4.5", "1,200").
// Absent, null and blank values report ok=false.
func parseNumber(raw json.RawMessage) (v float64, ok bool, err error) {
	text := strings.TrimSpace(string(raw))
	if text == "" || text == "null" {
		return 0, false, nil
	}
	if text[0] != '"' {
		if err := json.Unmarshal(raw, &v); err != nil {
			return 0, false, err
		}
		return v, true, nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, false, err
	}
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0, false, nil
	}
	v, err = strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false, fmt.Errorf("%q is not a number", s)
	}
	return v, true, nil
}

func (it *GuideItem) UnmarshalJSON(b []byte) error {
	type plain GuideItem
	aux := struct {
		*plain
		Rating json.RawMessage `json:"rating"`
	}{plain: (*plain)(it)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}

	it.Rating = nil
	v, ok, err := parseNumber(aux.Rating)
	if err != nil {
		return fmt.Errorf("rating: %w", err)
	}
	if ok {
		it.Rating = &v
	}
	return nil
}

func (bg *Budget) UnmarshalJSON(b []byte) error {
	type plain Budget
	aux := struct {
		*plain
		CostPerPersonLocal        json.RawMessage `json:"costPerPersonLocal"`
		CostPerPersonOrigin       json.RawMessage `json:"costPerPersonOrigin"`
		TravelCostPerPersonLocal  json.RawMessage `json:"travelCostPerPersonLocal"`
		TravelCostPerPersonOrigin json.RawMessage `json:"travelCostPerPersonOrigin"`
	}{plain: (*plain)(bg)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}

	fields := []struct {
		name string
		raw  json.RawMessage
		dst  *float64
	}{
		{"costPerPersonLocal", aux.CostPerPersonLocal, &bg.CostPerPersonLocal},
		{"costPerPersonOrigin", aux.CostPerPersonOrigin, &bg.CostPerPersonOrigin},
		{"travelCostPerPersonLocal", aux.TravelCostPerPersonLocal, &bg.TravelCostPerPersonLocal},
		{"travelCostPerPersonOrigin", aux.TravelCostPerPersonOrigin, &bg.TravelCostPerPersonOrigin},
	}
	for _, f := range fields {
		v, _, err := parseNumber(f.raw)
		if err != nil {
			return fmt.Errorf("%s: %w", f.name, err)
		}
		*f.dst = v
	}
	return nil
}
