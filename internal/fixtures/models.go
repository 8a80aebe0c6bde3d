package fixtures

import (
	"eutestdata/internal/personalid/date"
)

// RandomCountry asks for a country drawn per row.
const RandomCountry = "random"

// IBANRequest asks for Count IBANs. Seed, when set, makes the batch
// reproducible.
type IBANRequest struct {
	Country string
	Count   int
	Spaces  bool
	Seed    *uint64
}

// IBANRow is one generated IBAN. Code is grouped in blocks of four when the
// request asked for spaces; Electronic is always ungrouped.
type IBANRow struct {
	Country    string
	Code       string
	Electronic string
	Valid      bool
}

type IBANBatch struct {
	Seed uint64
	Rows []IBANRow
}

// IBANCheck is the result of validating a user-supplied IBAN.
type IBANCheck struct {
	IBAN      string
	Formatted string
	Country   string
	Valid     bool
}

type IBANCountry struct {
	Code   string
	Name   string
	Length int
}

// IDRequest asks for Count personal IDs of one country. Year 0 means any.
type IDRequest struct {
	Country string
	Count   int
	Gender  date.Gender
	Year    int
	Seed    *uint64
}

// IDRow is one generated code with its re-parsed fields.
type IDRow struct {
	Code   string
	Gender string
	DOB    string
	Valid  bool
}

// IDBatch holds the produced rows. Skipped counts draws the scheme could not
// satisfy.
type IDBatch struct {
	Country string
	Seed    uint64
	Rows    []IDRow
	Skipped int
}
