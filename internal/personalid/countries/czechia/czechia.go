// Package czechia implements the Czech birth number (rodné číslo) in its
// ten-digit form: YYMMDD/SSSC.
//
// Women carry +50 on the month; +20 marks the overflow series issued since
// 2004 and is accepted on parse. The ten-digit number is divisible by 11,
// except that a nine-digit remainder of 10 is written with check digit 0.
package czechia

import (
	"fmt"
	"math/rand/v2"

	"eutestdata/internal/personalid/date"
	"eutestdata/internal/personalid/scheme"
)

const (
	Code = "CZ"
	Name = "Czechia"

	length  = 11
	minYear = 1954
	maxYear = 2053
)

type Scheme struct{}

func New() Scheme { return Scheme{} }

func (Scheme) Generate(opts scheme.Options, rng *rand.Rand) (string, bool) {
	year, ok := date.PickYear(rng, opts.Year, minYear, maxYear)
	if !ok {
		return "", false
	}
	month, day := date.RandomDay(rng, year)
	if date.PickGender(rng, opts.Gender) == date.Female {
		month += 50
	}

	dob := fmt.Sprintf("%02d%02d%02d", year%100, month, day)
	serial := fmt.Sprintf("%03d", rng.IntN(1000))
	d, _ := scheme.Digits(dob + serial)
	return fmt.Sprintf("%s/%s%d", dob, serial, check(d)), true
}

func (Scheme) Parse(code string) (scheme.Parsed, bool) {
	if len(code) != length || code[6] != '/' {
		return scheme.Parsed{}, false
	}
	d, ok := scheme.Digits(code[:6] + code[7:])
	if !ok {
		return scheme.Parsed{}, false
	}

	valid := check(d[:9]) == d[9]

	mm := scheme.Number(d[2:4])
	gender := date.Male
	if mm > 50 {
		gender = date.Female
		mm -= 50
	}
	if mm > 20 {
		mm -= 20
	}

	yy := scheme.Number(d[0:2])
	year := 1900 + yy
	if yy < 54 {
		year = 2000 + yy
	}
	return scheme.NewParsed(code, gender, year, mm, scheme.Number(d[4:6]), valid), true
}

// check returns the digit that makes the ten-digit number divisible by 11.
// Since 10 ≡ -1 (mod 11) that digit equals the nine-digit remainder.
func check(d []int) int {
	return scheme.Number(d[:9]) % 11 % 10
}
