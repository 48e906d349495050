package domain

import "strings"

// DefaultCity is assumed when a service address does not name one. Most of
// our service area is in town.
const DefaultCity = "Paducah"

// ParsedAddress is the structured form of a free-text service address.
type ParsedAddress struct {
	Line1 string
	City  string
	State string
	Zip   string
}

// ParseServiceAddress splits a "line1, city, state, zip" string into its
// components, trimming whitespace around each. Missing trailing segments
// become empty, except the city which falls back to DefaultCity. No format
// validation is performed; a malformed state or zip passes through as-is and
// surfaces as a data-quality issue downstream.
func ParseServiceAddress(address string) ParsedAddress {
	parts := strings.Split(address, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	segment := func(i int) string {
		if i < len(parts) {
			return parts[i]
		}

		return ""
	}

	parsed := ParsedAddress{
		Line1: segment(0),
		City:  segment(1),
		State: segment(2),
		Zip:   segment(3),
	}

	if parsed.City == "" {
		parsed.City = DefaultCity
	}

	return parsed
}
