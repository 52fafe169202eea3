package entities

import (
	"encoding/json"
	"errors"
	"strings"
)

var ErrInvalidBoardingLocations = errors.New("boarding locations must be a string or a list of strings")

// BoardingLocations is the normalized list of pick-up points of a package.
//
// Clients send it as a JSON array, a single JSON string or repeated form fields.
// It is parsed once at the boundary; everything downstream works on the list as
// stored. Entries are never split, so a location may contain commas.
type BoardingLocations []string

// ParseBoardingLocations trims every value and drops blanks, preserving order.
// Each value is one location.
func ParseBoardingLocations(values ...string) BoardingLocations {
	out := make(BoardingLocations, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func (b *BoardingLocations) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*b = ParseBoardingLocations(list...)
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*b = ParseBoardingLocations(single)
		return nil
	}
	if strings.TrimSpace(string(data)) == "null" {
		*b = nil
		return nil
	}
	return ErrInvalidBoardingLocations
}

// Contains is an exact, case-sensitive membership check.
func (b BoardingLocations) Contains(location string) bool {
	for _, l := range b {
		if l == location {
			return true
		}
	}
	return false
}

func (b BoardingLocations) String() string {
	return strings.Join(b, ", ")
}

func (b BoardingLocations) Clone() BoardingLocations {
	if b == nil {
		return nil
	}
	out := make(BoardingLocations, len(b))
	copy(out, b)
	return out
}
