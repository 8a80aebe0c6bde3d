// Package scheme defines the capability contract every national personal-ID
// scheme implements, plus the value types that cross it.
package scheme

import (
	"math/rand/v2"

	"eutestdata/internal/personalid/date"
)

// Options constrains generation. Zero values mean "no constraint".
type Options struct {
	Gender date.Gender
	Year   int
}

// Parsed is the decoded view of a personal-ID code.
//
// Gender and DOB are empty when the scheme cannot decode them. Valid only
// reflects the country-specific checksum; a code with a correct checksum and
// an impossible date is still Valid.
type Parsed struct {
	Code   string
	Gender string
	DOB    string
	Valid  bool
}

// Scheme generates and parses one country's personal identification codes.
//
// Generate returns false when the constraints cannot be represented by the
// scheme (for example a birth year outside its century encoding) or when a
// bounded search finds no code. Parse returns false only when the input
// cannot be segmented into the scheme's layout.
type Scheme interface {
	Generate(opts Options, rng *rand.Rand) (string, bool)
	Parse(code string) (Parsed, bool)
}

// NewParsed assembles a Parsed value, leaving Gender empty for Unspecified
// and DOB empty for impossible dates.
func NewParsed(code string, gender date.Gender, year, month, day int, valid bool) Parsed {
	p := Parsed{Code: code, Gender: gender.String(), Valid: valid}
	if dob, ok := date.Format(year, month, day); ok {
		p.DOB = dob
	}
	return p
}

// Digits converts an ASCII digit string into its values. It returns false if
// any byte is not a digit.
func Digits(s string) ([]int, bool) {
	out := make([]int, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return nil, false
		}
		out[i] = int(c - '0')
	}
	return out, true
}

// Number folds a digit slice into its decimal value.
func Number(d []int) int {
	n := 0
	for _, v := range d {
		n = n*10 + v
	}
	return n
}
