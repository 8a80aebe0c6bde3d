// Package slovenia implements the Slovenian unique master citizen number
// (EMŠO): DDMMYYYRRBBBK.
//
// YYY is the year without its millennium digit, RR the register (50 for
// Slovenia) and BBB the serial: below 500 for men. K is a mod-11 check digit;
// serials whose remainder would need the digit 10 are never issued.
package slovenia

import (
	"fmt"
	"math/rand/v2"

	"eutestdata/internal/personalid/date"
	"eutestdata/internal/personalid/scheme"
)

const (
	Code = "SI"
	Name = "Slovenia"

	length  = 13
	minYear = 1800
	maxYear = 2199

	register = 50
)

var weights = []int{7, 6, 5, 4, 3, 2, 7, 6, 5, 4, 3, 2}

type Scheme struct{}

func New() Scheme { return Scheme{} }

func (Scheme) Generate(opts scheme.Options, rng *rand.Rand) (string, bool) {
	year, ok := date.PickYear(rng, opts.Year, minYear, maxYear)
	if !ok {
		return "", false
	}
	month, day := date.RandomDay(rng, year)

	serial := rng.IntN(50) * 10
	if date.PickGender(rng, opts.Gender) == date.Female {
		serial += 500
	}

	start := rng.IntN(10)
	for i := range 10 {
		base := fmt.Sprintf("%02d%02d%03d%02d%03d", day, month, year%1000, register, serial+(start+i)%10)
		d, _ := scheme.Digits(base)
		if k := check(d); k >= 0 {
			return fmt.Sprintf("%s%d", base, k), true
		}
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

	k := check(d)
	valid := k >= 0 && k == d[12]
	gender := date.Male
	if scheme.Number(d[9:12]) >= 500 {
		gender = date.Female
	}

	yyy := scheme.Number(d[4:7])
	year := 2000 + yyy
	if yyy >= 800 {
		year = 1000 + yyy
	}
	return scheme.NewParsed(code, gender, year, scheme.Number(d[2:4]), scheme.Number(d[0:2]), valid), true
}

// check returns -1 when the remainder leaves no valid digit.
func check(d []int) int {
	sum := 0
	for i, w := range weights {
		sum += d[i] * w
	}
	switch m := 11 - sum%11; m {
	case 11:
		return 0
	case 10:
		return -1
	default:
		return m
	}
}
