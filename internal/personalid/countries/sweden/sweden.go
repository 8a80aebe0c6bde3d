// Package sweden implements the Swedish personal identity number
// (personnummer) in its twelve-digit form: YYYYMMDD-NNNC.
//
// The third digit of NNN is odd for men. C is a Luhn check digit over the
// ten-digit form YYMMDDNNN.
package sweden

import (
	"fmt"
	"math/rand/v2"

	"eutestdata/internal/personalid/date"
	"eutestdata/internal/personalid/scheme"
)

const (
	Code = "SE"
	Name = "Sweden"

	length  = 13
	minYear = 1900
	maxYear = 2099
)

type Scheme struct{}

func New() Scheme { return Scheme{} }

func (Scheme) Generate(opts scheme.Options, rng *rand.Rand) (string, bool) {
	year, ok := date.PickYear(rng, opts.Year, minYear, maxYear)
	if !ok {
		return "", false
	}
	month, day := date.RandomDay(rng, year)

	birth := rng.IntN(1000)
	birth -= birth % 2
	if date.PickGender(rng, opts.Gender) == date.Male {
		birth++
	}

	short := fmt.Sprintf("%02d%02d%02d%03d", year%100, month, day, birth)
	d, _ := scheme.Digits(short)
	return fmt.Sprintf("%04d%02d%02d-%03d%d", year, month, day, birth, luhn(d)), true
}

func (Scheme) Parse(code string) (scheme.Parsed, bool) {
	if len(code) != length || code[8] != '-' {
		return scheme.Parsed{}, false
	}
	full, ok := scheme.Digits(code[:8] + code[9:])
	if !ok {
		return scheme.Parsed{}, false
	}

	valid := luhn(full[2:11]) == full[11]
	gender := date.Female
	if full[10]%2 == 1 {
		gender = date.Male
	}
	year := scheme.Number(full[:4])
	return scheme.NewParsed(code, gender, year, scheme.Number(full[4:6]), scheme.Number(full[6:8]), valid), true
}

// luhn returns the check digit for nine digits, doubling from the left.
func luhn(d []int) int {
	sum := 0
	for i, v := range d {
		if i%2 == 0 {
			v *= 2
			if v > 9 {
				v -= 9
			}
		}
		sum += v
	}
	return (10 - sum%10) % 10
}
