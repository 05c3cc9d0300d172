package record

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// HabitID identifies one of the fixed journal habits.
type HabitID int8

const (
	HabitDiet HabitID = iota
	HabitFitness
	HabitProductive
	HabitBusiness
	HabitStockMarket
	HabitTech
	HabitMd
	HabitMood
	HabitSocial

	HabitCount = int(HabitSocial) + 1
)

var habitKeys = [HabitCount]string{
	HabitDiet:        "diet",
	HabitFitness:     "fitness",
	HabitProductive:  "productive",
	HabitBusiness:    "business",
	HabitStockMarket: "stockMarket",
	HabitTech:        "tech",
	HabitMd:          "md",
	HabitMood:        "mood",
	HabitSocial:      "social",
}

var habitLabels = [HabitCount]string{
	HabitDiet:        "Diet",
	HabitFitness:     "Fitness",
	HabitProductive:  "Productive",
	HabitBusiness:    "Business",
	HabitStockMarket: "Stock Market",
	HabitTech:        "Tech",
	HabitMd:          "Md",
	HabitMood:        "Mood",
	HabitSocial:      "Social",
}

// HabitIDs returns every habit in display order.
func HabitIDs() []HabitID {
	ids := make([]HabitID, HabitCount)
	for i := range ids {
		ids[i] = HabitID(i)
	}
	return ids
}

// Key is the identifier used in rows and URLs, e.g. "stockMarket".
func (h HabitID) Key() string {
	if h < 0 || int(h) >= HabitCount {
		return ""
	}
	return habitKeys[h]
}

// Label is the human readable habit name.
func (h HabitID) Label() string {
	if h < 0 || int(h) >= HabitCount {
		return ""
	}
	return habitLabels[h]
}

// ParseHabitID resolves a habit key.
func ParseHabitID(key string) (HabitID, bool) {
	for i, k := range habitKeys {
		if k == key {
			return HabitID(i), true
		}
	}
	return 0, false
}

// Habits holds one rating per habit. The zero value rates every habit 0.
type Habits [HabitCount]Rating

// Get returns the rating for id.
func (h Habits) Get(id HabitID) Rating {
	return h[id]
}

// Set stores the rating for id.
func (h *Habits) Set(id HabitID, r Rating) {
	h[id] = r
}

// MarshalJSON writes the ratings as an object keyed by habit key.
func (h Habits) MarshalJSON() ([]byte, error) {
	m := make(map[string]int, HabitCount)
	for i, r := range h {
		m[habitKeys[i]] = int(r)
	}
	return json.Marshal(m)
}

// UnmarshalJSON reads an object keyed by habit key. Unknown keys are ignored, and
// missing, blank or out-of-range values rate 0. A value that is not an object rates
// every habit 0.
func (h *Habits) UnmarshalJSON(data []byte) error {
	*h = Habits{}
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}
	for key, value := range raw {
		id, ok := ParseHabitID(key)
		if !ok {
			continue
		}
		h[id] = decodeRating(value)
	}
	return nil
}

func decodeRating(value json.RawMessage) Rating {
	text := strings.Trim(strings.TrimSpace(string(value)), `"`)
	if text == "" || text == "null" {
		return 0
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || f != float64(int(f)) {
		return 0
	}
	return RatingFrom(int(f))
}
