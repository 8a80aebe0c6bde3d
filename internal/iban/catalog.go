package iban

import (
	"sort"
)

// Alphabet is the character class a BBAN segment is drawn from.
type Alphabet int

const (
	// Numeric segments hold digits 0-9 ("n" in the SWIFT registry).
	Numeric Alphabet = iota
	// Alpha segments hold uppercase letters A-Z ("a").
	Alpha
	// Alphanumeric segments hold digits and uppercase letters ("c").
	Alphanumeric
)

func (a Alphabet) String() string {
	switch a {
	case Numeric:
		return "n"
	case Alpha:
		return "a"
	case Alphanumeric:
		return "c"
	default:
		return "?"
	}
}

// Role describes what a BBAN segment carries. It is informational only;
// generation treats every role the same way.
type Role string

const (
	RoleBank    Role = "bank"
	RoleBranch  Role = "branch"
	RoleAccount Role = "account"
	RoleCheck   Role = "check"
	RoleOther   Role = "other"
)

// Segment is one fixed-width field of a BBAN.
type Segment struct {
	Role     Role
	Length   int
	Alphabet Alphabet
}

// Layout is the registered IBAN structure of one country.
type Layout struct {
	Country  string
	Length   int // total IBAN length, country code and check digits included
	Segments []Segment
}

// BBANLength returns the summed width of all segments.
func (l Layout) BBANLength() int {
	n := 0
	for _, s := range l.Segments {
		n += s.Length
	}
	return n
}

func num(role Role, length int) Segment   { return Segment{Role: role, Length: length, Alphabet: Numeric} }
func alpha(role Role, length int) Segment { return Segment{Role: role, Length: length, Alphabet: Alpha} }
func alnum(role Role, length int) Segment { return Segment{Role: role, Length: length, Alphabet: Alphanumeric} }

// layouts follows the SWIFT IBAN registry BBAN structures.
var layouts = map[string]Layout{
	"AD": {Length: 24, Segments: []Segment{num(RoleBank, 4), num(RoleBranch, 4), alnum(RoleAccount, 12)}},
	"AE": {Length: 23, Segments: []Segment{num(RoleBank, 3), num(RoleAccount, 16)}},
	"AL": {Length: 28, Segments: []Segment{num(RoleBank, 3), num(RoleBranch, 4), num(RoleCheck, 1), alnum(RoleAccount, 16)}},
	"AT": {Length: 20, Segments: []Segment{num(RoleBank, 5), num(RoleAccount, 11)}},
	"AZ": {Length: 28, Segments: []Segment{alpha(RoleBank, 4), alnum(RoleAccount, 20)}},
	"BA": {Length: 20, Segments: []Segment{num(RoleBank, 3), num(RoleBranch, 3), num(RoleAccount, 8), num(RoleCheck, 2)}},
	"BE": {Length: 16, Segments: []Segment{num(RoleBank, 3), num(RoleAccount, 7), num(RoleCheck, 2)}},
	"BG": {Length: 22, Segments: []Segment{alpha(RoleBank, 4), num(RoleBranch, 4), num(RoleOther, 2), alnum(RoleAccount, 8)}},
	"BH": {Length: 22, Segments: []Segment{alpha(RoleBank, 4), alnum(RoleAccount, 14)}},
	"BR": {Length: 29, Segments: []Segment{num(RoleBank, 8), num(RoleBranch, 5), num(RoleAccount, 10), alpha(RoleOther, 1), alnum(RoleOther, 1)}},
	"CH": {Length: 21, Segments: []Segment{num(RoleBank, 5), alnum(RoleAccount, 12)}},
	"CR": {Length: 22, Segments: []Segment{num(RoleBank, 4), num(RoleAccount, 14)}},
	"CY": {Length: 28, Segments: []Segment{num(RoleBank, 3), num(RoleBranch, 5), alnum(RoleAccount, 16)}},
	"CZ": {Length: 24, Segments: []Segment{num(RoleBank, 4), num(RoleBranch, 6), num(RoleAccount, 10)}},
	"DE": {Length: 22, Segments: []Segment{num(RoleBank, 8), num(RoleAccount, 10)}},
	"DK": {Length: 18, Segments: []Segment{num(RoleBank, 4), num(RoleAccount, 9), num(RoleCheck, 1)}},
	"DO": {Length: 28, Segments: []Segment{alnum(RoleBank, 4), num(RoleAccount, 20)}},
	"EE": {Length: 20, Segments: []Segment{num(RoleBank, 2), num(RoleBranch, 2), num(RoleAccount, 11), num(RoleCheck, 1)}},
	"EG": {Length: 29, Segments: []Segment{num(RoleBank, 4), num(RoleBranch, 4), num(RoleAccount, 17)}},
	"ES": {Length: 24, Segments: []Segment{num(RoleBank, 4), num(RoleBranch, 4), num(RoleCheck, 1), num(RoleCheck, 1), num(RoleAccount, 10)}},
	"FI": {Length: 18, Segments: []Segment{num(RoleBank, 3), num(RoleAccount, 11)}},
	"FO": {Length: 18, Segments: []Segment{num(RoleBank, 4), num(RoleAccount, 9), num(RoleCheck, 1)}},
	"FR": {Length: 27, Segments: []Segment{num(RoleBank, 5), num(RoleBranch, 5), alnum(RoleAccount, 11), num(RoleCheck, 2)}},
	"GB": {Length: 22, Segments: []Segment{alpha(RoleBank, 4), num(RoleBranch, 6), num(RoleAccount, 8)}},
	"GE": {Length: 22, Segments: []Segment{alpha(RoleBank, 2), num(RoleAccount, 16)}},
	"GI": {Length: 23, Segments: []Segment{alpha(RoleBank, 4), alnum(RoleAccount, 15)}},
	"GL": {Length: 18, Segments: []Segment{num(RoleBank, 4), num(RoleAccount, 9), num(RoleCheck, 1)}},
	"GR": {Length: 27, Segments: []Segment{num(RoleBank, 3), num(RoleBranch, 4), alnum(RoleAccount, 16)}},
	"GT": {Length: 28, Segments: []Segment{alnum(RoleBank, 4), alnum(RoleAccount, 20)}},
	"HR": {Length: 21, Segments: []Segment{num(RoleBank, 7), num(RoleAccount, 10)}},
	"HU": {Length: 28, Segments: []Segment{num(RoleBank, 3), num(RoleBranch, 4), num(RoleCheck, 1), num(RoleAccount, 15), num(RoleCheck, 1)}},
	"IE": {Length: 22, Segments: []Segment{alpha(RoleBank, 4), num(RoleBranch, 6), num(RoleAccount, 8)}},
	"IL": {Length: 23, Segments: []Segment{num(RoleBank, 3), num(RoleBranch, 3), num(RoleAccount, 13)}},
	"IS": {Length: 26, Segments: []Segment{num(RoleBank, 4), num(RoleOther, 2), num(RoleAccount, 6), num(RoleOther, 10)}},
	"IT": {Length: 27, Segments: []Segment{alpha(RoleCheck, 1), num(RoleBank, 5), num(RoleBranch, 5), alnum(RoleAccount, 12)}},
	"JO": {Length: 30, Segments: []Segment{alpha(RoleBank, 4), num(RoleBranch, 4), alnum(RoleAccount, 18)}},
	"KW": {Length: 30, Segments: []Segment{alpha(RoleBank, 4), alnum(RoleAccount, 22)}},
	"KZ": {Length: 20, Segments: []Segment{num(RoleBank, 3), alnum(RoleAccount, 13)}},
	"LB": {Length: 28, Segments: []Segment{num(RoleBank, 4), alnum(RoleAccount, 20)}},
	"LI": {Length: 21, Segments: []Segment{num(RoleBank, 5), alnum(RoleAccount, 12)}},
	"LT": {Length: 20, Segments: []Segment{num(RoleBank, 5), num(RoleAccount, 11)}},
	"LU": {Length: 20, Segments: []Segment{num(RoleBank, 3), alnum(RoleAccount, 13)}},
	"LV": {Length: 21, Segments: []Segment{alpha(RoleBank, 4), alnum(RoleAccount, 13)}},
	"MC": {Length: 27, Segments: []Segment{num(RoleBank, 5), num(RoleBranch, 5), alnum(RoleAccount, 11), num(RoleCheck, 2)}},
	"MD": {Length: 24, Segments: []Segment{alnum(RoleBank, 2), alnum(RoleAccount, 18)}},
	"ME": {Length: 22, Segments: []Segment{num(RoleBank, 3), num(RoleAccount, 13), num(RoleCheck, 2)}},
	"MK": {Length: 19, Segments: []Segment{num(RoleBank, 3), alnum(RoleAccount, 10), num(RoleCheck, 2)}},
	"MR": {Length: 27, Segments: []Segment{num(RoleBank, 5), num(RoleBranch, 5), num(RoleAccount, 11), num(RoleCheck, 2)}},
	"MT": {Length: 31, Segments: []Segment{alpha(RoleBank, 4), num(RoleBranch, 5), alnum(RoleAccount, 18)}},
	"MU": {Length: 30, Segments: []Segment{alpha(RoleBank, 4), num(RoleBank, 2), num(RoleBranch, 2), num(RoleAccount, 12), num(RoleOther, 3), alpha(RoleOther, 3)}},
	"NL": {Length: 18, Segments: []Segment{alpha(RoleBank, 4), num(RoleAccount, 10)}},
	"NO": {Length: 15, Segments: []Segment{num(RoleBank, 4), num(RoleAccount, 6), num(RoleCheck, 1)}},
	"PK": {Length: 24, Segments: []Segment{alpha(RoleBank, 4), alnum(RoleAccount, 16)}},
	"PL": {Length: 28, Segments: []Segment{num(RoleBank, 8), num(RoleAccount, 16)}},
	"PS": {Length: 29, Segments: []Segment{alpha(RoleBank, 4), alnum(RoleAccount, 21)}},
	"PT": {Length: 25, Segments: []Segment{num(RoleBank, 4), num(RoleBranch, 4), num(RoleAccount, 11), num(RoleCheck, 2)}},
	"QA": {Length: 29, Segments: []Segment{alpha(RoleBank, 4), alnum(RoleAccount, 21)}},
	"RO": {Length: 24, Segments: []Segment{alpha(RoleBank, 4), alnum(RoleAccount, 16)}},
	"RS": {Length: 22, Segments: []Segment{num(RoleBank, 3), num(RoleAccount, 13), num(RoleCheck, 2)}},
	"SA": {Length: 24, Segments: []Segment{num(RoleBank, 2), alnum(RoleAccount, 18)}},
	"SE": {Length: 24, Segments: []Segment{num(RoleBank, 3), num(RoleAccount, 16), num(RoleCheck, 1)}},
	"SI": {Length: 19, Segments: []Segment{num(RoleBank, 5), num(RoleAccount, 8), num(RoleCheck, 2)}},
	"SK": {Length: 24, Segments: []Segment{num(RoleBank, 4), num(RoleBranch, 6), num(RoleAccount, 10)}},
	"SM": {Length: 27, Segments: []Segment{alpha(RoleCheck, 1), num(RoleBank, 5), num(RoleBranch, 5), alnum(RoleAccount, 12)}},
	"TN": {Length: 24, Segments: []Segment{num(RoleBank, 2), num(RoleBranch, 3), num(RoleAccount, 13), num(RoleCheck, 2)}},
	"TR": {Length: 26, Segments: []Segment{num(RoleBank, 5), num(RoleOther, 1), alnum(RoleAccount, 16)}},
	"UA": {Length: 29, Segments: []Segment{num(RoleBank, 6), alnum(RoleAccount, 19)}},
	"VG": {Length: 24, Segments: []Segment{alpha(RoleBank, 4), num(RoleAccount, 16)}},
	"XK": {Length: 20, Segments: []Segment{num(RoleBank, 4), num(RoleAccount, 10), num(RoleCheck, 2)}},
}

var supported = func() []string {
	codes := make([]string, 0, len(layouts))
	for code := range layouts {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}()

// LayoutFor returns the registered layout of a country.
func LayoutFor(country string) (Layout, bool) {
	l, ok := layouts[country]
	if !ok {
		return Layout{}, false
	}
	l.Country = country
	return l, true
}

// SupportedCountries returns every catalog country code in ascending order.
// The returned slice is a copy.
func SupportedCountries() []string {
	out := make([]string, len(supported))
	copy(out, supported)
	return out
}
