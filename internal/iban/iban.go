// Package iban generates, validates and formats International Bank Account
// Numbers for the countries listed in the built-in catalog.
//
// Generation and validation are independent: Generate always produces a code
// that Validate accepts, and Validate is a total function over arbitrary
// strings.
package iban

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"eutestdata/internal/checksum"
	"eutestdata/pkg/platform/sentinel"
)

const (
	digits  = "0123456789"
	letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	alnums  = digits + letters

	// minLength covers the country code, the check digits and at least one
	// BBAN character.
	minLength = 5
)

// Generate builds a random IBAN for country. An empty country picks one
// uniformly from the catalog. The result always passes Validate.
func Generate(country string, rng *rand.Rand) (string, error) {
	if country == "" {
		country = supported[rng.IntN(len(supported))]
	}
	layout, ok := LayoutFor(country)
	if !ok {
		return "", fmt.Errorf("generate iban for %q: %w", country, sentinel.ErrUnsupportedCountry)
	}

	bban := randomBBAN(layout, rng)
	return country + CheckDigits(country, bban) + bban, nil
}

// CheckDigits computes the two ISO 7064 check digits for a country and BBAN.
func CheckDigits(country, bban string) string {
	rem := checksum.Mod97(checksum.Expand(bban + country + "00"))
	return fmt.Sprintf("%02d", 98-rem)
}

// Validate reports whether code is a well-formed IBAN with a correct
// checksum. It never panics: short, mis-sized, unknown-country and
// non-alphanumeric inputs simply yield false.
func Validate(code string) bool {
	if len(code) < minLength || !isAlnum(code) {
		return false
	}
	layout, ok := LayoutFor(code[:2])
	if !ok || len(code) != layout.Length {
		return false
	}
	rearranged := code[4:] + code[:4]
	return checksum.Mod97(checksum.Expand(rearranged)) == 1
}

// Format groups code into blocks of four characters separated by a single
// space. No validation is performed.
func Format(code string) string {
	if len(code) <= 4 {
		return code
	}
	var b strings.Builder
	b.Grow(len(code) + len(code)/4)
	for i := 0; i < len(code); i += 4 {
		if i > 0 {
			b.WriteByte(' ')
		}
		end := min(i+4, len(code))
		b.WriteString(code[i:end])
	}
	return b.String()
}

// Normalize strips whitespace and upper-cases user supplied input so that
// printed (grouped) IBANs can be validated.
func Normalize(input string) string {
	return strings.ToUpper(strings.Join(strings.Fields(input), ""))
}

func randomBBAN(layout Layout, rng *rand.Rand) string {
	var b strings.Builder
	b.Grow(layout.BBANLength())
	for _, seg := range layout.Segments {
		pool := alphabetPool(seg.Alphabet)
		for range seg.Length {
			b.WriteByte(pool[rng.IntN(len(pool))])
		}
	}
	return b.String()
}

func alphabetPool(a Alphabet) string {
	switch a {
	case Alpha:
		return letters
	case Alphanumeric:
		return alnums
	default:
		return digits
	}
}

func isAlnum(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}
