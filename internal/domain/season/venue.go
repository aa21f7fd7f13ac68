package season

import (
	"fmt"
	"strings"
)

// Venue scopes a record to home matches, away matches or both.
type Venue int

const (
	VenueBoth Venue = iota
	VenueHome
	VenueAway
)

func (v Venue) String() string {
	switch v {
	case VenueHome:
		return "home"
	case VenueAway:
		return "away"
	case VenueBoth:
		return "both"
	default:
		return fmt.Sprintf("venue(%d)", int(v))
	}
}

func (v Venue) Valid() bool {
	return v == VenueBoth || v == VenueHome || v == VenueAway
}

// ParseVenue accepts "home", "away" and "both"; "overall", "all" and the empty
// string mean both.
func ParseVenue(value string) (Venue, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "both", "overall", "all":
		return VenueBoth, nil
	case "home":
		return VenueHome, nil
	case "away":
		return VenueAway, nil
	default:
		return VenueBoth, fmt.Errorf("invalid venue %q: valid values are home, away, both", value)
	}
}

// formLength is the number of matches in a form window for the venue.
func (v Venue) formLength() int {
	if v == VenueBoth {
		return 6
	}
	return 4
}

func (v Venue) matchNoun() string {
	switch v {
	case VenueHome:
		return "home matches"
	case VenueAway:
		return "away matches"
	default:
		return "matches"
	}
}
