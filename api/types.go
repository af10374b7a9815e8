// Package api provides the Winnipeg Transit v3 REST API client.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Sentinel errors for option parsing.
var (
	ErrInvalidUsage    = errors.New("invalid usage")
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidPriority = errors.New("invalid priority")
)

// Usage selects how verbose names in API responses are.
type Usage string

const (
	UsageNormal Usage = "normal"
	UsageLong   Usage = "long"
	UsageShort  Usage = "short"
)

// ValidUsages returns the accepted usage names.
func ValidUsages() []string {
	return []string{string(UsageNormal), string(UsageLong), string(UsageShort)}
}

// ParseUsage validates a usage name. An empty name selects UsageNormal.
func ParseUsage(s string) (Usage, error) {
	switch Usage(strings.ToLower(s)) {
	case "", UsageNormal:
		return UsageNormal, nil
	case UsageLong:
		return UsageLong, nil
	case UsageShort:
		return UsageShort, nil
	}
	return "", fmt.Errorf("%w: %q (valid: %s)", ErrInvalidUsage, s, strings.Join(ValidUsages(), ", "))
}

// apply adds the usage parameter; normal usage is the API default and is omitted.
func (u Usage) apply(params url.Values) {
	if u == UsageLong || u == UsageShort {
		params.Set("usage", string(u))
	}
}

// Priority indicates how urgent an advisory is. Lower is more urgent.
type Priority int

const (
	PriorityVeryHigh Priority = iota + 1
	PriorityHigh
	PriorityMedium
	PriorityLow
	PriorityVeryLow
)

var priorityNames = map[Priority]string{
	PriorityVeryHigh: "very high",
	PriorityHigh:     "high",
	PriorityMedium:   "medium",
	PriorityLow:      "low",
	PriorityVeryLow:  "very low",
}

func (p Priority) String() string {
	if name, ok := priorityNames[p]; ok {
		return name
	}
	return "unknown"
}

// Valid reports whether p is one of the five API priorities.
func (p Priority) Valid() bool {
	return p >= PriorityVeryHigh && p <= PriorityVeryLow
}

// ParsePriority accepts a priority number (1-5) or name such as "high".
func ParsePriority(s string) (Priority, error) {
	if n, err := strconv.Atoi(s); err == nil {
		if p := Priority(n); p.Valid() {
			return p, nil
		}
	}
	name := strings.ToLower(strings.ReplaceAll(s, "-", " "))
	for p, n := range priorityNames {
		if n == name {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: %q (valid: 1-5)", ErrInvalidPriority, s)
}

// Category is the kind of service an advisory affects.
type Category string

const (
	CategoryTransit      Category = "Transit"
	CategoryHandiTransit Category = "Handi-Transit"
	CategoryAll          Category = "All"
)

// ParseCategory matches a category name case-insensitively.
func ParseCategory(s string) (Category, error) {
	for _, c := range []Category{CategoryTransit, CategoryHandiTransit, CategoryAll} {
		if strings.EqualFold(s, string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q (valid: transit, handi-transit, all)", ErrInvalidCategory, s)
}

// param is the lowercase form used in query strings.
func (c Category) param() string {
	return strings.ToLower(string(c))
}

// ServiceAdvisory is a notice about disruptions to transit service.
type ServiceAdvisory struct {
	Key       int      `json:"key"`
	Priority  Priority `json:"priority"`
	Title     string   `json:"title"`
	Body      string   `json:"body"`
	Category  Category `json:"category"`
	UpdatedAt Time     `json:"updated-at"`
}

// Stop is a transit stop.
type Stop struct {
	Key              int        `json:"key"`
	Name             string     `json:"name"`
	Number           int        `json:"number"`
	Distances        *Distances `json:"distances,omitempty"`
	Direction        string     `json:"direction"`
	Side             string     `json:"side"`
	Street           Street     `json:"street"`
	CrossStreet      Street     `json:"cross-street"`
	Centre           Centre     `json:"centre"`
	InternalName     string     `json:"internal-name,omitempty"`
	SequenceOnStreet int        `json:"sequence-on-street,omitempty"`
	IconStyle        string     `json:"icon-style,omitempty"`
}

// Street is a named street as the API describes it.
type Street struct {
	Key  int    `json:"key"`
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
	Leg  string `json:"leg,omitempty"`
}

// Centre wraps the geographic point of a stop.
type Centre struct {
	Geographic GeoLocation `json:"geographic"`
}

// GeoLocation is a latitude/longitude pair.
type GeoLocation struct {
	Latitude  Float `json:"latitude"`
	Longitude Float `json:"longitude"`
}

// Distances are metres from a queried location to a stop.
type Distances struct {
	Direct  Float `json:"direct"`
	Walking Float `json:"walking"`
}

// Feature is an amenity at a stop, such as a bench or heated shelter.
type Feature struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Float is a number the API encodes as either a JSON string or number.
type Float float64

// UnmarshalJSON accepts "49.89" as well as 49.89.
func (f *Float) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid number %q: %w", s, err)
	}
	*f = Float(v)
	return nil
}

// MarshalJSON always writes a JSON number.
func (f Float) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(f))
}

// timeLayout is the zone-less timestamp format the API uses.
const timeLayout = "2006-01-02T15:04:05"

// Time is a wrapper around time.Time for custom JSON parsing.
type Time struct {
	time.Time
}

// UnmarshalJSON parses the API's local timestamps, falling back to RFC 3339.
// Zone-less values are read as UTC.
func (t *Time) UnmarshalJSON(data []byte) error {
	s := string(data)

	if s == "null" || s == `""` || s == "" {
		return nil
	}

	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}

	parsed, err := time.Parse(timeLayout, s)
	if err != nil {
		parsed, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return err
		}
	}

	t.Time = parsed
	return nil
}

// MarshalJSON writes the same zone-less layout the API uses.
func (t Time) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + t.Format(timeLayout) + `"`), nil
}

// ErrorResponse represents an API error.
type ErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

func (e *ErrorResponse) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("API error (status %d)", e.StatusCode)
	}
	return e.Message
}
