// Package romania implements the Romanian personal numeric code (CNP):
// SYYMMDDJJNNNC.
//
// S folds century and gender (1/2 for the 1900s, 3/4 for the 1800s, 5/6 from
// 2000), JJ is the county of registration and NNN a sequence number.
package romania

import (
	"fmt"
	"math/rand/v2"

	"eutestdata/internal/personalid/date"
	"eutestdata/internal/personalid/scheme"
)

const (
	Code = "RO"
	Name = "Romania"

	length  = 13
	minYear = 1800
	maxYear = 2099
)

var weights = []int{2, 7, 9, 1, 4, 6, 3, 5, 8, 2, 7, 9}

// counties lists the registered JJ codes: the 41 counties plus Bucharest
// (40), its former sectors (41-46) and the Călărași/Giurgiu codes.
var counties = func() []int {
	out := make([]int, 0, 48)
	for c := 1; c <= 46; c++ {
		out = append(out, c)
	}
	return append(out, 51, 52)
}()

var centuries = map[int]int{1: 1900, 2: 1900, 3: 1800, 4: 1800, 5: 2000, 6: 2000}

type Scheme struct{}

func New() Scheme { return Scheme{} }

func (Scheme) Generate(opts scheme.Options, rng *rand.Rand) (string, bool) {
	year, ok := date.PickYear(rng, opts.Year, minYear, maxYear)
	if !ok {
		return "", false
	}
	month, day := date.RandomDay(rng, year)

	s := 1
	switch year / 100 {
	case 18:
		s = 3
	case 20:
		s = 5
	}
	if date.PickGender(rng, opts.Gender) == date.Female {
		s++
	}

	county := counties[rng.IntN(len(counties))]
	base := fmt.Sprintf("%d%02d%02d%02d%02d%03d", s, year%100, month, day, county, 1+rng.IntN(999))
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

	valid := check(d) == d[12]

	// 7 and 8 mark resident foreigners; the century is not encoded.
	gender := date.Unspecified
	if d[0] >= 1 && d[0] <= 8 {
		gender = date.Female
		if d[0]%2 == 1 {
			gender = date.Male
		}
	}
	century, known := centuries[d[0]]
	if !known {
		return scheme.NewParsed(code, gender, 0, 0, 0, valid), true
	}
	return scheme.NewParsed(code, gender, century+scheme.Number(d[1:3]), scheme.Number(d[3:5]), scheme.Number(d[5:7]), valid), true
}

func check(d []int) int {
	sum := 0
	for i, w := range weights {
		sum += d[i] * w
	}
	if r := sum % 11; r != 10 {
		return r
	}
	return 1
}
