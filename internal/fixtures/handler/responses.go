package handler

import (
	"eutestdata/internal/fixtures"
	"eutestdata/internal/personalid"
	"eutestdata/internal/personalid/scheme"
)

type IBANCountryResponse struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Length int    `json:"length"`
}

type IBANRowResponse struct {
	Country    string `json:"country"`
	IBAN       string `json:"iban"`
	Electronic string `json:"electronic"`
	Valid      bool   `json:"valid"`
}

type IBANBatchResponse struct {
	Seed  uint64            `json:"seed"`
	IBANs []IBANRowResponse `json:"ibans"`
}

type IBANCheckResponse struct {
	IBAN      string `json:"iban"`
	Formatted string `json:"formatted"`
	Country   string `json:"country,omitempty"`
	Valid     bool   `json:"valid"`
}

type IDCountryResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// ParsedIDResponse leaves gender and dob out when the scheme could not
// decode them.
type ParsedIDResponse struct {
	Code   string `json:"code"`
	Gender string `json:"gender,omitempty"`
	DOB    string `json:"dob,omitempty"`
	Valid  bool   `json:"valid"`
}

type IDBatchResponse struct {
	Country string             `json:"country"`
	Seed    uint64             `json:"seed"`
	IDs     []ParsedIDResponse `json:"ids"`
	Skipped int                `json:"skipped"`
}

func toIBANCountries(in []fixtures.IBANCountry) []IBANCountryResponse {
	out := make([]IBANCountryResponse, 0, len(in))
	for _, c := range in {
		out = append(out, IBANCountryResponse{Code: c.Code, Name: c.Name, Length: c.Length})
	}
	return out
}

func toIBANBatch(b *fixtures.IBANBatch) IBANBatchResponse {
	out := IBANBatchResponse{Seed: b.Seed, IBANs: make([]IBANRowResponse, 0, len(b.Rows))}
	for _, row := range b.Rows {
		out.IBANs = append(out.IBANs, IBANRowResponse{
			Country:    row.Country,
			IBAN:       row.Code,
			Electronic: row.Electronic,
			Valid:      row.Valid,
		})
	}
	return out
}

func toIBANCheck(c fixtures.IBANCheck) IBANCheckResponse {
	return IBANCheckResponse{IBAN: c.IBAN, Formatted: c.Formatted, Country: c.Country, Valid: c.Valid}
}

func toIDCountries(in []personalid.Country) []IDCountryResponse {
	out := make([]IDCountryResponse, 0, len(in))
	for _, c := range in {
		out = append(out, IDCountryResponse{Code: c.Code, Name: c.Name})
	}
	return out
}

func toIDBatch(b *fixtures.IDBatch) IDBatchResponse {
	out := IDBatchResponse{
		Country: b.Country,
		Seed:    b.Seed,
		IDs:     make([]ParsedIDResponse, 0, len(b.Rows)),
		Skipped: b.Skipped,
	}
	for _, row := range b.Rows {
		out.IDs = append(out.IDs, ParsedIDResponse{Code: row.Code, Gender: row.Gender, DOB: row.DOB, Valid: row.Valid})
	}
	return out
}

func toParsed(p scheme.Parsed) ParsedIDResponse {
	return ParsedIDResponse{Code: p.Code, Gender: p.Gender, DOB: p.DOB, Valid: p.Valid}
}
