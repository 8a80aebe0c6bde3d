// Package norway implements the Norwegian national identity number
// (fødselsnummer): DDMMYYIIIKK.
//
// The individual number III selects the century together with YY, and its
// last digit is odd for men. K1 and K2 are mod-11 check digits; a remainder
// that would require the digit 10 makes the individual number unusable.
package norway

import (
	"fmt"
	"math/rand/v2"

	"eutestdata/internal/personalid/date"
	"eutestdata/internal/personalid/scheme"
)

const (
	Code = "NO"
	Name = "Norway"

	length  = 11
	minYear = 1854
	maxYear = 2039
)

var (
	k1Weights = []int{3, 7, 6, 1, 8, 9, 4, 5, 2}
	k2Weights = []int{5, 4, 3, 2, 7, 6, 5, 4, 3, 2}
)

type Scheme struct{}

func New() Scheme { return Scheme{} }

func (Scheme) Generate(opts scheme.Options, rng *rand.Rand) (string, bool) {
	year, ok := date.PickYear(rng, opts.Year, minYear, maxYear)
	if !ok {
		return "", false
	}
	month, day := date.RandomDay(rng, year)
	male := date.PickGender(rng, opts.Gender) == date.Male

	lo, hi := individualRange(year)
	dob := fmt.Sprintf("%02d%02d%02d", day, month, year%100)

	// Walk the range once from a random start, keeping the gender parity,
	// until both check digits are representable.
	span := (hi - lo + 1) / 2
	start := rng.IntN(span)
	for i := range span {
		individual := lo + 2*((start+i)%span)
		if male {
			individual++
		}
		base := fmt.Sprintf("%s%03d", dob, individual)
		d, _ := scheme.Digits(base)
		k1 := checkDigit(d, k1Weights)
		if k1 < 0 {
			continue
		}
		k2 := checkDigit(append(d, k1), k2Weights)
		if k2 < 0 {
			continue
		}
		return fmt.Sprintf("%s%d%d", base, k1, k2), true
	}
	return "", false
}

func (Scheme) Parse(code string) (scheme.Parsed, bool) {
	if len(code) != length {
		return scheme.Parsed{}, false
	}
	d, ok := scheme.Digits(code)
	if !ok {
		return scheme.Parsed{}, false
	}

	k1 := checkDigit(d[:9], k1Weights)
	k2 := checkDigit(d[:10], k2Weights)
	valid := k1 >= 0 && k2 >= 0 && k1 == d[9] && k2 == d[10]

	gender := date.Female
	if d[8]%2 == 1 {
		gender = date.Male
	}
	yy := scheme.Number(d[4:6])
	century, known := centuryOf(scheme.Number(d[6:9]), yy)
	if !known {
		return scheme.NewParsed(code, gender, 0, 0, 0, valid), true
	}
	return scheme.NewParsed(code, gender, century+yy, scheme.Number(d[2:4]), scheme.Number(d[0:2]), valid), true
}

// individualRange returns an even-aligned individual number range that
// encodes year's century.
func individualRange(year int) (lo, hi int) {
	switch {
	case year < 1900:
		return 500, 749
	case year < 2000:
		return 0, 499
	default:
		return 500, 999
	}
}

func centuryOf(individual, yy int) (int, bool) {
	switch {
	case individual <= 499:
		return 1900, true
	case individual <= 749 && yy >= 54:
		return 1800, true
	case yy <= 39:
		return 2000, true
	case individual >= 900:
		return 1900, true
	default:
		return 0, false
	}
}

// checkDigit returns -1 when the remainder maps to the unusable digit 10.
func checkDigit(d, weights []int) int {
	sum := 0
	for i, w := range weights {
		sum += d[i] * w
	}
	switch k := 11 - sum%11; k {
	case 11:
		return 0
	case 10:
		return -1
	default:
		return k
	}
}
