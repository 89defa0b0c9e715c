// Package season maps calendar dates to Northern Hemisphere seasons.
package season

import (
	"strings"
	"time"
)

// Season is one of the four Northern Hemisphere season labels.
type Season string

const (
	Spring Season = "Spring"
	Summer Season = "Summer"
	Autumn Season = "Autumn"
	Winter Season = "Winter"
)

// ForDate returns the season for the given date. The date is always passed
// explicitly so callers stay testable across time.
func ForDate(t time.Time) Season {
	switch m := t.Month(); {
	case m >= time.March && m <= time.May:
		return Spring
	case m >= time.June && m <= time.August:
		return Summer
	case m >= time.September && m <= time.November:
		return Autumn
	default:
		return Winter
	}
}

// Lower returns the lower-cased token used for preference membership tests.
func (s Season) Lower() string {
	return strings.ToLower(string(s))
}
