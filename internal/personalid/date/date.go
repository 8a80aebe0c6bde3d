// Package date holds the birth-date and gender primitives every personal-ID
// scheme builds on. Nothing in here knows about a specific country.
package date

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
)

// Default window used when the caller does not ask for a specific birth year.
const (
	DefaultMinYear = 1930
	DefaultMaxYear = 2015
)

// Gender is the binary sex encoded by personal identification codes.
// The zero value means "no constraint".
type Gender int

const (
	Unspecified Gender = iota
	Male
	Female
)

func (g Gender) String() string {
	switch g {
	case Male:
		return "Male"
	case Female:
		return "Female"
	default:
		return ""
	}
}

// ParseGender accepts "male"/"m", "female"/"f" and "", "any" (case-insensitive).
func ParseGender(s string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "any":
		return Unspecified, nil
	case "male", "m":
		return Male, nil
	case "female", "f":
		return Female, nil
	default:
		return Unspecified, fmt.Errorf("unknown gender %q", s)
	}
}

// PickGender returns want, or a fair coin flip when want is Unspecified.
func PickGender(rng *rand.Rand, want Gender) Gender {
	if want != Unspecified {
		return want
	}
	if rng.IntN(2) == 0 {
		return Male
	}
	return Female
}

// PickYear returns want when it lies within [lo, hi]. With no requested year
// it draws from the default window clipped to [lo, hi]. The second result is
// false when the requested year cannot be represented.
func PickYear(rng *rand.Rand, want, lo, hi int) (int, bool) {
	if want != 0 {
		return want, want >= lo && want <= hi
	}
	from, to := max(lo, DefaultMinYear), min(hi, DefaultMaxYear)
	if from > to {
		from, to = lo, hi
	}
	return from + rng.IntN(to-from+1), true
}

// RandomDay draws a calendar day uniformly from the given year.
func RandomDay(rng *rand.Rand, year int) (month, day int) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	t := start.AddDate(0, 0, rng.IntN(DaysIn(year)))
	return int(t.Month()), t.Day()
}

// DaysIn returns 366 for leap years and 365 otherwise.
func DaysIn(year int) int {
	if year%4 == 0 && (year%100 != 0 || year%400 == 0) {
		return 366
	}
	return 365
}

// Valid reports whether year-month-day is a real calendar date.
func Valid(year, month, day int) bool {
	if month < 1 || month > 12 || day < 1 {
		return false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Year() == year && int(t.Month()) == month && t.Day() == day
}

// Format renders a date as YYYY-MM-DD, or returns false for impossible dates.
func Format(year, month, day int) (string, bool) {
	if !Valid(year, month, day) {
		return "", false
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day), true
}
