// Package pricing derives enrollment prices from course and accommodation data.
package pricing

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	daysPerWeek  = 7
	daysPerMonth = 30
)

var digits = regexp.MustCompile(`\d+`)

// ParseDurationDays converts a free-text course duration such as "2 weeks",
// "10 days" or "3 Months" into days. The first number is the count; a "week"
// or "month" unit scales it, anything else counts as days. Input without a
// number yields 0.
func ParseDurationDays(duration string) int {
	text := strings.ToLower(strings.TrimSpace(duration))
	match := digits.FindString(text)
	if match == "" {
		return 0
	}
	n, err := strconv.Atoi(match)
	if err != nil {
		return 0
	}

	switch {
	case strings.Contains(text, "week"):
		return n * daysPerWeek
	case strings.Contains(text, "month"):
		return n * daysPerMonth
	default:
		return n
	}
}

// Quote is the price breakdown of one enrollment.
type Quote struct {
	DurationDays      int
	CoursePrice       float64
	AccommodationCost float64
	TotalPrice        float64
}

// Calculate prices an enrollment. accommodationPrice is per day and is ignored
// when hasAccommodation is false or the duration is unknown.
func Calculate(coursePrice float64, duration string, accommodationPrice float64, hasAccommodation bool) Quote {
	days := ParseDurationDays(duration)

	var cost float64
	if hasAccommodation && days > 0 {
		cost = float64(days) * accommodationPrice
	}

	return Quote{
		DurationDays:      days,
		CoursePrice:       coursePrice,
		AccommodationCost: cost,
		TotalPrice:        coursePrice + cost,
	}
}
