// README: Locates and decodes the JSON guide embedded in free-form model output.
package guide

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"tripguide/internal/types"
)

// ErrMalformedResponse is wrapped by every Extract failure.
var ErrMalformedResponse = errors.New("could not find a valid JSON object in the model's response")

// fencedJSON matches a ```json block up to the next closing fence.
var fencedJSON = regexp.MustCompile("```json\\s*([\\s\\S]*?)\\s*```")

// Extract returns the guide embedded in raw. A ```json fenced block is preferred; the
// fallback is the span from the first '{' to the last '}' of the text. Nested or multiple
// bare objects are not disambiguated: the greedy span is taken as-is.
func Extract(raw string) (*TravelGuide, error) {
	text := strings.TrimSpace(raw)

	var lastErr error
	for _, candidate := range candidates(text) {
		g, err := decode(candidate)
		if err == nil {
			return g, nil
		}
		lastErr = err
	}

	if lastErr == nil {
		return nil, types.E(types.KindMalformedResponse, "guide.extract", ErrMalformedResponse)
	}
	return nil, types.E(types.KindMalformedResponse, "guide.extract",
		fmt.Errorf("%w: %v", ErrMalformedResponse, lastErr))
}

// candidates lists the substrings to try, fenced block first.
func candidates(text string) []string {
	var out []string
	if m := fencedJSON.FindStringSubmatch(text); m != nil && m[1] != "" {
		out = append(out, m[1])
	}
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		bare := text[start : end+1]
		if len(out) == 0 || out[0] != bare {
			out = append(out, bare)
		}
	}
	return out
}

func decode(candidate string) (*TravelGuide, error) {
	if !strings.HasPrefix(strings.TrimSpace(candidate), "{") {
		return nil, errors.New("candidate is not a JSON object")
	}
	var g TravelGuide
	if err := json.Unmarshal([]byte(candidate), &g); err != nil {
		return nil, err
	}
	return &g, nil
}
