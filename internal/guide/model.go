// README: Travel guide document produced by the generation service.
package guide

import "regexp"

// GuideItem is one entry of a categorized guide list. Only Name and Description are
// expected from the model; the rest may be absent.
type GuideItem struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Location    string   `json:"location,omitempty"`
	PriceRange  string   `json:"priceRange,omitempty"`
	Rating      *float64 `json:"rating,omitempty"`
	WebsiteURL  string   `json:"websiteUrl,omitempty"`
}

type Phrase struct {
	Phrase      string `json:"phrase"`
	Translation string `json:"translation"`
}

type Transport struct {
	RailwayStations []GuideItem `json:"railwayStations"`
	Airports        []GuideItem `json:"airports"`
	GettingAround   string      `json:"gettingAround"`
}

type Safety struct {
	PoliceStations []GuideItem `json:"policeStations"`
}

type Culture struct {
	LocalLanguage string   `json:"localLanguage"`
	UsefulPhrases []Phrase `json:"usefulPhrases"`
}

// Budget holds the model's cost estimates. The numeric fields also decode from quoted
// numbers; see number.go.
type Budget struct {
	EstimatedDailyCost        string  `json:"estimatedDailyCost"`
	CostPerPersonLocal        float64 `json:"costPerPersonLocal"`
	LocalCurrencyCode         string  `json:"localCurrencyCode"`
	CostPerPersonOrigin       float64 `json:"costPerPersonOrigin"`
	OriginCurrencyCode        string  `json:"originCurrencyCode"`
	EstimatedTravelCost       string  `json:"estimatedTravelCost"`
	TravelCostPerPersonLocal  float64 `json:"travelCostPerPersonLocal"`
	TravelCostPerPersonOrigin float64 `json:"travelCostPerPersonOrigin"`
}

// TravelGuide is the structured document for one destination.
type TravelGuide struct {
	Destination   string      `json:"destination"`
	ThemeColorHex string      `json:"themeColorHex"`
	PopularPlaces []GuideItem `json:"popularPlaces"`
	Restaurants   []GuideItem `json:"restaurants"`
	Cafes         []GuideItem `json:"cafes"`
	Hotels        []GuideItem `json:"hotels"`
	Transport     Transport   `json:"transport"`
	Safety        Safety      `json:"safety"`
	Culture       Culture     `json:"culture"`
	Budget        Budget      `json:"budget"`
}

// Source is a grounding citation returned alongside the generated text.
type Source struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Normalize replaces absent lists with empty ones so every list serializes as [].
func (g *TravelGuide) Normalize() {
	g.PopularPlaces = orEmpty(g.PopularPlaces)
	g.Restaurants = orEmpty(g.Restaurants)
	g.Cafes = orEmpty(g.Cafes)
	g.Hotels = orEmpty(g.Hotels)
	g.Transport.RailwayStations = orEmpty(g.Transport.RailwayStations)
	g.Transport.Airports = orEmpty(g.Transport.Airports)
	g.Safety.PoliceStations = orEmpty(g.Safety.PoliceStations)
	if g.Culture.UsefulPhrases == nil {
		g.Culture.UsefulPhrases = []Phrase{}
	}
}

// AccentColor returns the theme color when it is a #RGB or #RRGGBB value.
func (g *TravelGuide) AccentColor() (string, bool) {
	if hexColor.MatchString(g.ThemeColorHex) {
		return g.ThemeColorHex, true
	}
	return "", false
}

// Sections returns pointers to every categorized list, keyed by JSON name.
func (g *TravelGuide) Sections() map[string]*[]GuideItem {
	return map[string]*[]GuideItem{
		"popularPlaces":   &g.PopularPlaces,
		"restaurants":     &g.Restaurants,
		"cafes":           &g.Cafes,
		"hotels":          &g.Hotels,
		"railwayStations": &g.Transport.RailwayStations,
		"airports":        &g.Transport.Airports,
		"policeStations":  &g.Safety.PoliceStations,
	}
}

func orEmpty(items []GuideItem) []GuideItem {
	if items == nil {
		return []GuideItem{}
	}
	return items
}
