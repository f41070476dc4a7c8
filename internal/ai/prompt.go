package ai

import "fmt"

// GuideRequest is the traveler input embedded into the guide prompt.
type GuideRequest struct {
	Destination     string
	Origin          string
	HotelPreference string
	TravelMode      string
}

// GuideTemperature keeps the JSON output predictable.
const GuideTemperature float32 = 0.2

// GuidePrompt builds the guide instructions. The model must look up the current round-trip
// price and answer with one JSON object shaped like guide.TravelGuide.
func GuidePrompt(req GuideRequest) string {
	return fmt.Sprintf(`Act as an expert travel guide. Your primary goal is to generate a comprehensive travel guide for a tourist from %[1]s traveling to %[2]s by %[3]s.

CRITICAL INSTRUCTIONS:
1. You MUST use your web search tool to find the current, most accurate price for a round-trip ticket for one person traveling by %[3]s from %[1]s to %[2]s. The accuracy of this travel cost is the most important part of your task.
2. The entire "budget" section of your response, specifically the travel cost fields, MUST be based on the real-time data you find from your web search.
3. Your entire response MUST be a single, valid JSON object. There should be no text, explanations, or markdown formatting before or after the JSON object.

JSON STRUCTURE:
The JSON object must have these top-level keys: "destination", "themeColorHex", "popularPlaces", "restaurants", "cafes", "hotels", "transport", "safety", "culture", "budget".
- "themeColorHex": a hex color such as "#1E90FF" that evokes the destination.
- Each item in arrays like "popularPlaces", "restaurants", "cafes", "hotels", "transport.railwayStations", "transport.airports" and "safety.policeStations" must be an object with "name" (string), "description" (string), and optional "location" (string), "priceRange" (string), "rating" (a number between 1.0 and 5.0), and "websiteUrl" (string).
- Provide 3-5 hotels matching the user's preference of '%[4]s'.
- "transport.gettingAround": a helpful string with tips on local transport.
- "culture": an object with "localLanguage" (string) and "usefulPhrases" (an array of objects with "phrase" and "translation").
- "budget": a JSON object with the following exact keys and value types. All numerical costs must be simple numbers without currency symbols or commas.
  - "estimatedDailyCost": string (costs in both currencies, e.g. "€140 / $150")
  - "costPerPersonLocal": number (e.g. 140)
  - "localCurrencyCode": string (3-letter currency code for the destination, e.g. "EUR")
  - "costPerPersonOrigin": number (e.g. 150)
  - "originCurrencyCode": string (3-letter currency code for the origin, e.g. "USD")
  - "estimatedTravelCost": string (costs in both currencies, e.g. "€460 / $500")
  - "travelCostPerPersonLocal": number (round-trip travel cost in the destination's currency, from your web search, e.g. 460)
  - "travelCostPerPersonOrigin": number (round-trip travel cost in the origin's currency, from your web search, e.g. 500)`,
		req.Origin, req.Destination, req.TravelMode, req.HotelPreference)
}

// ImagePrompt describes the background photograph for destination.
func ImagePrompt(destination string) string {
	return fmt.Sprintf("A vibrant, picturesque travel photograph of the iconic scenery of %s. Breathtaking landscape, high resolution, travel magazine style, ultra realistic. No text or logos.", destination)
}
