// Package fixtures turns the IBAN and personal-ID engines into batch
// operations for the HTTP API and the CLI.
package fixtures

import (
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"eutestdata/internal/fixtures/metrics"
	"eutestdata/internal/iban"
	"eutestdata/internal/personalid"
	"eutestdata/internal/personalid/scheme"
	dErrors "eutestdata/pkg/domain-errors"
	"eutestdata/pkg/platform/sentinel"
	"eutestdata/pkg/requestcontext"
)

// DefaultMaxBatch is used when the service is built with a non-positive limit.
const DefaultMaxBatch = 100

// Service generates, validates and parses test codes.
type Service struct {
	registry *personalid.Registry
	maxBatch int
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

// New constructs the service. logger and m may be nil.
func New(registry *personalid.Registry, maxBatch int, logger *slog.Logger, m *metrics.Metrics) *Service {
	if maxBatch <= 0 {
		maxBatch = DefaultMaxBatch
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{
		registry: registry,
		maxBatch: maxBatch,
		logger:   logger,
		metrics:  m,
	}
}

// MaxBatch is the largest Count a request may ask for.
func (s *Service) MaxBatch() int { return s.maxBatch }

// GenerateIBANs draws req.Count IBANs. Each row is re-validated.
func (s *Service) GenerateIBANs(ctx context.Context, req IBANRequest) (*IBANBatch, error) {
	start := time.Now()
	defer s.metrics.ObserveBatch(metrics.KindIBAN, start)

	if err := s.checkCount(req.Count); err != nil {
		return nil, err
	}
	country := strings.ToUpper(strings.TrimSpace(req.Country))
	if country == strings.ToUpper(RandomCountry) {
		country = ""
	}
	if country != "" {
		if _, ok := iban.LayoutFor(country); !ok {
			return nil, unsupported(country)
		}
	}

	seed, rng, err := newRand(req.Seed)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to seed generator")
	}

	batch := &IBANBatch{Seed: seed, Rows: make([]IBANRow, 0, req.Count)}
	for range req.Count {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		code, err := iban.Generate(country, rng)
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to generate iban")
		}
		row := IBANRow{
			Country:    code[:2],
			Code:       code,
			Electronic: code,
			Valid:      iban.Validate(code),
		}
		if req.Spaces {
			row.Code = iban.Format(code)
		}
		batch.Rows = append(batch.Rows, row)
		s.metrics.IncrementCode(metrics.KindIBAN, row.Country, metrics.OutcomeGenerated)
	}

	s.logger.InfoContext(ctx, "iban batch generated",
		"request_id", requestcontext.RequestID(ctx),
		"country", displayCountry(country),
		"count", len(batch.Rows),
		"seed", seed,
	)
	return batch, nil
}

// ValidateIBAN normalises input and checks it.
func (s *Service) ValidateIBAN(_ context.Context, input string) IBANCheck {
	code := iban.Normalize(input)
	check := IBANCheck{
		IBAN:      code,
		Formatted: iban.Format(code),
		Valid:     iban.Validate(code),
	}
	if len(code) >= 2 {
		if _, ok := iban.LayoutFor(code[:2]); ok {
			check.Country = code[:2]
		}
	}
	return check
}

// IBANCountries lists the catalog with display names and lengths.
func (s *Service) IBANCountries(_ context.Context) []IBANCountry {
	codes := iban.SupportedCountries()
	out := make([]IBANCountry, 0, len(codes))
	for _, code := range codes {
		layout, _ := iban.LayoutFor(code)
		out = append(out, IBANCountry{Code: code, Name: countryName(code), Length: layout.Length})
	}
	return out
}

// GenerateIDs makes one draw per requested row. Draws the scheme cannot
// satisfy are skipped; when no draw succeeds the constraints are reported
// as unsatisfiable.
func (s *Service) GenerateIDs(ctx context.Context, req IDRequest) (*IDBatch, error) {
	start := time.Now()
	defer s.metrics.ObserveBatch(metrics.KindPersonalID, start)

	if err := s.checkCount(req.Count); err != nil {
		return nil, err
	}
	if req.Year < 0 || req.Year > 9999 {
		return nil, dErrors.New(dErrors.CodeValidation, "year must be between 1 and 9999")
	}
	country, ok := s.registry.Lookup(strings.TrimSpace(req.Country))
	if !ok {
		return nil, unsupported(req.Country)
	}

	seed, rng, err := newRand(req.Seed)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to seed generator")
	}

	opts := scheme.Options{Gender: req.Gender, Year: req.Year}
	batch := &IDBatch{Country: country.Code, Seed: seed, Rows: make([]IDRow, 0, req.Count)}
	for range req.Count {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		code, ok := s.registry.Generate(country.Code, opts, rng)
		if !ok {
			batch.Skipped++
			s.metrics.IncrementCode(metrics.KindPersonalID, country.Code, metrics.OutcomeSkipped)
			continue
		}
		parsed, _ := s.registry.Parse(country.Code, code)
		batch.Rows = append(batch.Rows, IDRow{
			Code:   code,
			Gender: parsed.Gender,
			DOB:    parsed.DOB,
			Valid:  parsed.Valid,
		})
		s.metrics.IncrementCode(metrics.KindPersonalID, country.Code, metrics.OutcomeGenerated)
	}

	if len(batch.Rows) == 0 {
		s.logger.WarnContext(ctx, "no personal id satisfied the constraints",
			"request_id", requestcontext.RequestID(ctx),
			"country", country.Code,
			"gender", req.Gender.String(),
			"year", req.Year,
		)
		return nil, dErrors.Wrap(sentinel.ErrExhaustedConstraints, dErrors.CodeUnprocessable,
			fmt.Sprintf("%s cannot encode the requested gender and year", country.Name))
	}

	s.logger.InfoContext(ctx, "personal id batch generated",
		"request_id", requestcontext.RequestID(ctx),
		"country", country.Code,
		"count", len(batch.Rows),
		"skipped", batch.Skipped,
		"seed", seed,
	)
	return batch, nil
}

// ParseID decodes code with the country's scheme.
func (s *Service) ParseID(_ context.Context, country, code string) (scheme.Parsed, error) {
	c, ok := s.registry.Lookup(strings.TrimSpace(country))
	if !ok {
		return scheme.Parsed{}, unsupported(country)
	}
	parsed, ok := s.registry.Parse(c.Code, strings.TrimSpace(code))
	if !ok {
		return scheme.Parsed{}, dErrors.Wrap(sentinel.ErrMalformedInput, dErrors.CodeUnprocessable,
			fmt.Sprintf("code does not match the %s layout", c.Name))
	}
	return parsed, nil
}

// IDCountries lists the registered personal-ID schemes.
func (s *Service) IDCountries(_ context.Context) []personalid.Country {
	return s.registry.ListCountries()
}

func (s *Service) checkCount(n int) error {
	if n < 1 || n > s.maxBatch {
		return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("count must be between 1 and %d", s.maxBatch))
	}
	return nil
}

func unsupported(country string) error {
	return dErrors.Wrap(sentinel.ErrUnsupportedCountry, dErrors.CodeNotFound,
		fmt.Sprintf("unsupported country %q", country))
}

// newRand returns the seed in use and a generator owned by one call.
func newRand(seed *uint64) (uint64, *rand.Rand, error) {
	var s uint64
	if seed != nil {
		s = *seed
	} else {
		var buf [8]byte
		if _, err := crand.Read(buf[:]); err != nil {
			return 0, nil, fmt.Errorf("read seed: %w", err)
		}
		s = binary.LittleEndian.Uint64(buf[:])
	}
	return s, rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15)), nil
}

func displayCountry(country string) string {
	if country == "" {
		return RandomCountry
	}
	return country
}
