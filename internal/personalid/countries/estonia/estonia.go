// Package estonia implements the Estonian personal identification code
// (isikukood): GYYMMDDSSSC.
//
// G folds century and sex together (1/2 = 1800s, 3/4 = 1900s, 5/6 = 2000s,
// 7/8 = 2100s; odd is male). SSS is a serial number and C a check digit
// computed with two weight passes modulo 11.
package estonia

import (
	"fmt"
	"math/rand/v2"

	"eutestdata/internal/personalid/date"
	"eutestdata/internal/personalid/scheme"
)

const (
	Code = "EE"
	Name = "Estonia"

	length  = 11
	minYear = 1800
	maxYear = 2199
)

var (
	firstWeights  = [10]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 1}
	secondWeights = [10]int{3, 4, 5, 6, 7, 8, 9, 1, 2, 3}
)

// Scheme is the isikukood scheme.
type Scheme struct{}

// New returns the Estonian scheme.
func New() Scheme { return Scheme{} }

func (Scheme) Generate(opts scheme.Options, rng *rand.Rand) (string, bool) {
	year, ok := date.PickYear(rng, opts.Year, minYear, maxYear)
	if !ok {
		return "", false
	}
	gender := date.PickGender(rng, opts.Gender)
	month, day := date.RandomDay(rng, year)

	lead := (year/100-18)*2 + 1
	if gender == date.Female {
		lead++
	}
	body := fmt.Sprintf("%d%02d%02d%02d%03d", lead, year%100, month, day, rng.IntN(1000))
	d, _ := scheme.Digits(body)
	return fmt.Sprintf("%s%d", body, checkDigit(d)), true
}

func (Scheme) Parse(code string) (scheme.Parsed, bool) {
	if len(code) != length {
		return scheme.Parsed{}, false
	}
	d, ok := scheme.Digits(code)
	if !ok {
		return scheme.Parsed{}, false
	}

	valid := checkDigit(d[:10]) == d[10]
	lead := d[0]
	if lead < 1 || lead > 8 {
		return scheme.Parsed{Code: code, Valid: valid}, true
	}

	gender := date.Male
	if lead%2 == 0 {
		gender = date.Female
	}
	year := 1800 + (lead-1)/2*100 + d[1]*10 + d[2]
	month := d[3]*10 + d[4]
	day := d[5]*10 + d[6]
	return scheme.NewParsed(code, gender, year, month, day, valid), true
}

func checkDigit(d []int) int {
	if r := weighted(d, firstWeights) % 11; r < 10 {
		return r
	}
	if r := weighted(d, secondWeights) % 11; r < 10 {
		return r
	}
	return 0
}

func weighted(d []int, w [10]int) int {
	sum := 0
	for i := range w {
		sum += d[i] * w[i]
	}
	return sum
}
