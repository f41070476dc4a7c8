// README: Trip history item and the preference enums it records.
package history

import (
	"errors"
	"strings"
)

type HotelPreference string

const (
	HotelLow     HotelPreference = "low"
	HotelAverage HotelPreference = "average"
	HotelPremium HotelPreference = "premium"
)

type TravelMode string

const (
	ModeFlight TravelMode = "flight"
	ModeTrain  TravelMode = "train"
)

// MaxItems is the number of distinct destinations kept.
const MaxItems = 5

// RecordName is the storage record holding the serialized list.
const RecordName = "tripHistory"

var (
	ErrInvalidHotelPreference = errors.New("hotel preference must be low, average or premium")
	ErrInvalidTravelMode      = errors.New("travel mode must be flight or train")
)

// Item is one generated trip. Timestamp is Unix milliseconds.
type Item struct {
	Destination     string          `json:"destination"`
	Origin          string          `json:"origin"`
	Timestamp       int64           `json:"timestamp"`
	HotelPreference HotelPreference `json:"hotelPreference"`
	TravelMode      TravelMode      `json:"travelMode"`
}

func ParseHotelPreference(v string) (HotelPreference, error) {
	switch p := HotelPreference(strings.ToLower(strings.TrimSpace(v))); p {
	case HotelLow, HotelAverage, HotelPremium:
		return p, nil
	}
	return "", ErrInvalidHotelPreference
}

func ParseTravelMode(v string) (TravelMode, error) {
	switch m := TravelMode(strings.ToLower(strings.TrimSpace(v))); m {
	case ModeFlight, ModeTrain:
		return m, nil
	}
	return "", ErrInvalidTravelMode
}
