// Package belgium implements the Belgian national register number:
// YYMMDDSSSCC.
//
// SSS is odd for men. CC is 97 minus the nine-digit prefix modulo 97; for
// births from 2000 on the prefix is preceded by a 2, which is also how the
// century is recovered.
package belgium

import (
	"fmt"
	"math/rand/v2"

	"eutestdata/internal/personalid/date"
	"eutestdata/internal/personalid/scheme"
)

const (
	Code = "BE"
	Name = "Belgium"

	length  = 11
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

	// 001-996
	serial := 2 + 2*rng.IntN(498)
	if date.PickGender(rng, opts.Gender) == date.Male {
		serial--
	}

	base := fmt.Sprintf("%02d%02d%02d%03d", year%100, month, day, serial)
	d, _ := scheme.Digits(base)
	return fmt.Sprintf("%s%02d", base, check(scheme.Number(d), year >= 2000)), true
}

func (Scheme) Parse(code string) (scheme.Parsed, bool) {
	if len(code) != length {
		return scheme.Parsed{}, false
	}
	d, ok := scheme.Digits(code)
	if !ok {
		return scheme.Parsed{}, false
	}

	prefix := scheme.Number(d[:9])
	cc := scheme.Number(d[9:])
	gender := date.Female
	if d[8]%2 == 1 {
		gender = date.Male
	}

	var century int
	switch cc {
	case check(prefix, false):
		century = 1900
	case check(prefix, true):
		century = 2000
	default:
		return scheme.NewParsed(code, gender, 0, 0, 0, false), true
	}
	year := century + scheme.Number(d[0:2])
	return scheme.NewParsed(code, gender, year, scheme.Number(d[2:4]), scheme.Number(d[4:6]), true), true
}

func check(prefix int, since2000 bool) int {
	if since2000 {
		prefix += 2_000_000_000
	}
	return 97 - prefix%97
}
