// Package bulgaria implements the Bulgarian uniform civil number (ЕГН):
// YYMMDDSSSC.
//
// Births in the 1800s carry +20 on the month and births from 2000 on carry
// +40. The ninth digit is even for men.
package bulgaria

import (
	"fmt"
	"math/rand/v2"

	"eutestdata/internal/personalid/date"
	"eutestdata/internal/personalid/scheme"
)

const (
	Code = "BG"
	Name = "Bulgaria"

	length  = 10
	minYear = 1800
	maxYear = 2099
)

var weights = []int{2, 4, 8, 5, 10, 9, 7, 3, 6}

type Scheme struct{}

func New() Scheme { return Scheme{} }

func (Scheme) Generate(opts scheme.Options, rng *rand.Rand) (string, bool) {
	year, ok := date.PickYear(rng, opts.Year, minYear, maxYear)
	if !ok {
		return "", false
	}
	month, day := date.RandomDay(rng, year)
	switch {
	case year < 1900:
		month += 20
	case year >= 2000:
		month += 40
	}

	last := 2 * rng.IntN(5)
	if date.PickGender(rng, opts.Gender) == date.Female {
		last++
	}

	base := fmt.Sprintf("%02d%02d%02d%02d%d", year%100, month, day, rng.IntN(100), last)
	d, _ := scheme.Digits(base)
	return fmt.Sprintf("%s%d", base, check(d)), true
}

func (Scheme) Parse(code string) (scheme.Parsed, bool) {
	if len(code) != length {
		return scheme.Parsed{}, false
	}
	d, ok := scheme.Digits(code)
	if !ok {
		return scheme.Parsed{}, false
	}

	valid := check(d) == d[9]
	gender := date.Male
	if d[8]%2 == 1 {
		gender = date.Female
	}

	mm := scheme.Number(d[2:4])
	century := 1900
	switch {
	case mm > 40:
		century, mm = 2000, mm-40
	case mm > 20:
		century, mm = 1800, mm-20
	}
	return scheme.NewParsed(code, gender, century+scheme.Number(d[0:2]), mm, scheme.Number(d[4:6]), valid), true
}

func check(d []int) int {
	sum := 0
	for i, w := range weights {
		sum += d[i] * w
	}
	return sum % 11 % 10
}
