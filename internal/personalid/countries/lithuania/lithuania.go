// Package lithuania implements the Lithuanian personal code (asmens kodas):
// GYYMMDDNNNC.
package lithuania

import (
	"fmt"
	"math/rand/v2"

	"eutestdata/internal/personalid/date"
	"eutestdata/internal/personalid/scheme"
)

const (
	Code = "LT"
	Name = "Lithuania"

	length  = 11
	minYear = 1800
	maxYear = 2099
)

// Scheme is the asmens kodas scheme. G is 1-6 (century and sex, odd male),
// NNN is the sequence number of the day and C a two-stage mod 11 checksum.
type Scheme struct{}

func New() Scheme { return Scheme{} }

func (Scheme) Generate(opts scheme.Options, rng *rand.Rand) (string, bool) {
	year, ok := date.PickYear(rng, opts.Year, minYear, maxYear)
	if !ok {
		return "", false
	}
	gender := date.PickGender(rng, opts.Gender)
	month, day := date.RandomDay(rng, year)

	g := 2*(year/100-18) + 1
	if gender == date.Female {
		g++
	}
	body := fmt.Sprintf("%d%02d%02d%02d%03d", g, year%100, month, day, rng.IntN(1000))
	d, _ := scheme.Digits(body)
	return body + fmt.Sprint(control(d)), true
}

func (Scheme) Parse(code string) (scheme.Parsed, bool) {
	if len(code) != length {
		return scheme.Parsed{}, false
	}
	d, ok := scheme.Digits(code)
	if !ok {
		return scheme.Parsed{}, false
	}
	valid := control(d) == d[10]

	g := d[0]
	if g < 1 || g > 6 {
		return scheme.Parsed{Code: code, Valid: valid}, true
	}
	gender := date.Female
	if g%2 == 1 {
		gender = date.Male
	}
	year := 1800 + 100*((g-1)/2) + 10*d[1] + d[2]
	return scheme.NewParsed(code, gender, year, 10*d[3]+d[4], 10*d[5]+d[6], valid), true
}

// control computes the check digit from the first ten digits of d.
func control(d []int) int {
	sum := 0
	for i := 0; i < 10; i++ {
		sum += d[i] * (i%9 + 1)
	}
	if sum%11 != 10 {
		return sum % 11
	}

	sum = 0
	for i := 0; i < 10; i++ {
		sum += d[i] * ((i+2)%9 + 1)
	}
	if sum%11 != 10 {
		return sum % 11
	}
	return 0
}
