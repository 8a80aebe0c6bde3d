// Package poland implements the Polish PESEL number: YYMMDDZZZXQ.
//
// The century is folded into the month (1800s +80, 1900s +0, 2000s +20,
// 2100s +40, 2200s +60). X is odd for men and Q is a mod-10 check digit.
package poland

import (
	"fmt"
	"math/rand/v2"

	"eutestdata/internal/personalid/date"
	"eutestdata/internal/personalid/scheme"
)

const (
	Code = "PL"
	Name = "Poland"

	length  = 11
	minYear = 1800
	maxYear = 2299
)

var weights = []int{1, 3, 7, 9, 1, 3, 7, 9, 1, 3}

// monthOffsets is indexed by the century's distance from 1800.
var monthOffsets = []int{80, 0, 20, 40, 60}

type Scheme struct{}

func New() Scheme { return Scheme{} }

func (Scheme) Generate(opts scheme.Options, rng *rand.Rand) (string, bool) {
	year, ok := date.PickYear(rng, opts.Year, minYear, maxYear)
	if !ok {
		return "", false
	}
	month, day := date.RandomDay(rng, year)
	month += monthOffsets[year/100-18]

	x := 2 * rng.IntN(5)
	if date.PickGender(rng, opts.Gender) == date.Male {
		x++
	}

	base := fmt.Sprintf("%02d%02d%02d%03d%d", year%100, month, day, rng.IntN(1000), x)
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

	valid := check(d) == d[10]
	gender := date.Female
	if d[9]%2 == 1 {
		gender = date.Male
	}

	mm := scheme.Number(d[2:4])
	century := 1900
	switch mm / 20 {
	case 1:
		century = 2000
	case 2:
		century = 2100
	case 3:
		century = 2200
	case 4:
		century = 1800
	}
	year := century + scheme.Number(d[0:2])
	return scheme.NewParsed(code, gender, year, mm%20, scheme.Number(d[4:6]), valid), true
}

func check(d []int) int {
	sum := 0
	for i, w := range weights {
		sum += d[i] * w
	}
	return (10 - sum%10) % 10
}
