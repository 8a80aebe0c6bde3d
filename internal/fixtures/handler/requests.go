package handler

import (
	"strings"

	"eutestdata/internal/fixtures"
	"eutestdata/internal/personalid/date"
	dErrors "eutestdata/pkg/domain-errors"
)

const maxCodeLength = 64

// GenerateIBANsRequest is the body of POST /iban/generate.
type GenerateIBANsRequest struct {
	Country string  `json:"country"`
	Count   int     `json:"count"`
	Spaces  bool    `json:"spaces"`
	Seed    *uint64 `json:"seed,omitempty"`
}

// Validate implements httputil.Validatable. Count defaults to 1; the range
// check belongs to the service.
func (r *GenerateIBANsRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	r.Country = strings.TrimSpace(r.Country)
	if len(r.Country) > len(fixtures.RandomCountry) {
		return dErrors.New(dErrors.CodeValidation, "country must be a two-letter code or \"random\"")
	}
	if r.Count == 0 {
		r.Count = 1
	}
	return nil
}

func (r *GenerateIBANsRequest) toDomain() fixtures.IBANRequest {
	return fixtures.IBANRequest{
		Country: r.Country,
		Count:   r.Count,
		Spaces:  r.Spaces,
		Seed:    r.Seed,
	}
}

// ValidateIBANRequest is the body of POST /iban/validate.
type ValidateIBANRequest struct {
	IBAN string `json:"iban"`
}

func (r *ValidateIBANRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if strings.TrimSpace(r.IBAN) == "" {
		return dErrors.New(dErrors.CodeValidation, "iban is required")
	}
	if len(r.IBAN) > maxCodeLength {
		return dErrors.New(dErrors.CodeValidation, "iban is too long")
	}
	return nil
}

// GenerateIDsRequest is the body of POST /personal-ids/generate.
type GenerateIDsRequest struct {
	Country string  `json:"country"`
	Count   int     `json:"count"`
	Gender  string  `json:"gender"`
	Year    int     `json:"year"`
	Seed    *uint64 `json:"seed,omitempty"`

	parsedGender date.Gender
}

func (r *GenerateIDsRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	r.Country = strings.TrimSpace(r.Country)
	if r.Country == "" {
		return dErrors.New(dErrors.CodeValidation, "country is required")
	}
	gender, err := date.ParseGender(r.Gender)
	if err != nil {
		return dErrors.New(dErrors.CodeValidation, "gender must be male, female or any")
	}
	r.parsedGender = gender
	if r.Count == 0 {
		r.Count = 1
	}
	return nil
}

func (r *GenerateIDsRequest) toDomain() fixtures.IDRequest {
	return fixtures.IDRequest{
		Country: r.Country,
		Count:   r.Count,
		Gender:  r.parsedGender,
		Year:    r.Year,
		Seed:    r.Seed,
	}
}

// ParseIDRequest is the body of POST /personal-ids/parse.
type ParseIDRequest struct {
	Country string `json:"country"`
	Code    string `json:"code"`
}

func (r *ParseIDRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	r.Country = strings.TrimSpace(r.Country)
	if r.Country == "" {
		return dErrors.New(dErrors.CodeValidation, "country is required")
	}
	if strings.TrimSpace(r.Code) == "" {
		return dErrors.New(dErrors.CodeValidation, "code is required")
	}
	if len(r.Code) > maxCodeLength {
		return dErrors.New(dErrors.CodeValidation, "code is too long")
	}
	return nil
}
