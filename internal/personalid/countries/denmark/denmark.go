// Package denmark implements the Danish CPR number: DDMMYY-SSSS.
//
// The first serial digit together with YY selects the century; the last
// serial digit is odd for men. The weighted sum of all ten digits must be
// divisible by 11.
package denmark

import (
	"fmt"
	"math/rand/v2"

	"eutestdata/internal/personalid/date"
	"eutestdata/internal/personalid/scheme"
)

const (
	Code = "DK"
	Name = "Denmark"

	length  = 11
	minYear = 1858
	maxYear = 2057
)

var weights = []int{4, 3, 2, 7, 6, 5, 4, 3, 2, 1}

type Scheme struct{}

func New() Scheme { return Scheme{} }

func (Scheme) Generate(opts scheme.Options, rng *rand.Rand) (string, bool) {
	year, ok := date.PickYear(rng, opts.Year, minYear, maxYear)
	if !ok {
		return "", false
	}
	month, day := date.RandomDay(rng, year)
	parity := 0
	if date.PickGender(rng, opts.Gender) == date.Male {
		parity = 1
	}

	d, _ := scheme.Digits(fmt.Sprintf("%02d%02d%02d", day, month, year%100))
	d = append(d, centuryDigit(rng, year), rng.IntN(10), 0, 0)

	// The ninth digit's weight is coprime to 11, so the scan reaches every
	// remainder but one and always finds a last digit of the right parity.
	start := rng.IntN(10)
	for i := range 10 {
		d[8] = (start + i) % 10
		d[9] = 0
		last := (11 - weightedSum(d)%11) % 11
		if last > 9 || last%2 != parity {
			continue
		}
		d[9] = last
		return fmt.Sprintf("%d%d%d%d%d%d-%d%d%d%d", d[0], d[1], d[2], d[3], d[4], d[5], d[6], d[7], d[8], d[9]), true
	}
	return "", false
}

func (Scheme) Parse(code string) (scheme.Parsed, bool) {
	if len(code) != length || code[6] != '-' {
		return scheme.Parsed{}, false
	}
	d, ok := scheme.Digits(code[:6] + code[7:])
	if !ok {
		return scheme.Parsed{}, false
	}

	valid := weightedSum(d)%11 == 0
	gender := date.Female
	if d[9]%2 == 1 {
		gender = date.Male
	}
	yy := scheme.Number(d[4:6])
	year := centuryOf(d[6], yy) + yy
	return scheme.NewParsed(code, gender, year, scheme.Number(d[2:4]), scheme.Number(d[0:2]), valid), true
}

// centuryDigit draws a first serial digit that encodes year's century.
func centuryDigit(rng *rand.Rand, year int) int {
	yy := year % 100
	switch {
	case year < 1900:
		return 5 + rng.IntN(4)
	case year < 2000:
		return rng.IntN(4)
	case yy <= 36:
		if rng.IntN(2) == 0 {
			return 4
		}
		return 9
	default:
		return 5 + rng.IntN(4)
	}
}

func centuryOf(first, yy int) int {
	switch {
	case first <= 3:
		return 1900
	case first == 4 || first == 9:
		if yy <= 36 {
			return 2000
		}
		return 1900
	default:
		if yy <= 57 {
			return 2000
		}
		return 1800
	}
}

func weightedSum(d []int) int {
	sum := 0
	for i, w := range weights {
		sum += d[i] * w
	}
	return sum
}
