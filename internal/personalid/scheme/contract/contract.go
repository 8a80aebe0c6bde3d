// Package contract holds the behavioural contract every personal-ID scheme
// must satisfy. Country packages run it from their tests.
package contract

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eutestdata/internal/personalid/date"
	"eutestdata/internal/personalid/scheme"
)

// KnownCode pins the parse result of a hand-checked code.
type KnownCode struct {
	Name string
	Code string
	Want scheme.Parsed
}

// Suite is the contract test for one scheme.
type Suite struct {
	Scheme scheme.Scheme
	Length int

	// MinYear and MaxYear bound the birth years the scheme can encode.
	MinYear int
	MaxYear int

	Known     []KnownCode
	Malformed []string

	// Draws per property; defaults to 200.
	Draws int
	Seed  uint64
}

// Run executes every contract check as a subtest.
func (s *Suite) Run(t *testing.T) {
	draws := s.Draws
	if draws == 0 {
		draws = 200
	}
	rng := rand.New(rand.NewPCG(s.Seed, 0x5eed))

	t.Run("round trip without constraints", func(t *testing.T) {
		produced := s.drawValid(t, rng, scheme.Options{}, draws)
		assert.Greater(t, produced, draws/2, "most unconstrained draws must succeed")
	})

	for _, g := range []date.Gender{date.Male, date.Female} {
		t.Run("gender constraint "+g.String(), func(t *testing.T) {
			opts := scheme.Options{Gender: g}
			produced := s.drawValid(t, rng, opts, draws)
			assert.Greater(t, produced, draws/2)
		})
	}

	for _, year := range []int{s.MinYear, (s.MinYear + s.MaxYear) / 2, s.MaxYear} {
		t.Run(fmt.Sprintf("year constraint %d", year), func(t *testing.T) {
			opts := scheme.Options{Year: year, Gender: date.Female}
			produced := s.drawValid(t, rng, opts, draws/4)
			assert.Positive(t, produced)
		})
	}

	t.Run("infeasible years yield nothing", func(t *testing.T) {
		for _, year := range []int{s.MinYear - 1, s.MaxYear + 1} {
			assert.NotPanics(t, func() {
				code, ok := s.Scheme.Generate(scheme.Options{Year: year}, rng)
				assert.False(t, ok, "year %d produced %q", year, code)
				assert.Empty(t, code)
			})
		}
	})

	t.Run("deterministic for a fixed seed", func(t *testing.T) {
		a, okA := s.Scheme.Generate(scheme.Options{}, rand.New(rand.NewPCG(9, 9)))
		b, okB := s.Scheme.Generate(scheme.Options{}, rand.New(rand.NewPCG(9, 9)))
		assert.Equal(t, okA, okB)
		assert.Equal(t, a, b)
	})

	for _, k := range s.Known {
		t.Run("known "+k.Name, func(t *testing.T) {
			got, ok := s.Scheme.Parse(k.Code)
			require.True(t, ok, "parse %q", k.Code)
			assert.Equal(t, k.Want, got)
		})
	}

	t.Run("malformed input", func(t *testing.T) {
		inputs := append([]string{"", strings.Repeat("1", s.Length+1), strings.Repeat("1", s.Length-1)}, s.Malformed...)
		for _, in := range inputs {
			assert.NotPanics(t, func() {
				_, ok := s.Scheme.Parse(in)
				assert.False(t, ok, "parse %q", in)
			})
		}
	})
}

// drawValid generates up to n codes with opts and checks each one that is
// produced. It returns how many draws produced a code.
func (s *Suite) drawValid(t *testing.T, rng *rand.Rand, opts scheme.Options, n int) int {
	t.Helper()
	produced := 0
	for range n {
		code, ok := s.Scheme.Generate(opts, rng)
		if !ok {
			continue
		}
		produced++

		require.Len(t, code, s.Length)
		parsed, ok := s.Scheme.Parse(code)
		require.True(t, ok, "parse %q", code)
		assert.True(t, parsed.Valid, "generated %q must be valid", code)
		assert.Equal(t, code, parsed.Code)
		assert.NotEmpty(t, parsed.DOB, "dob of %q", code)

		if opts.Gender != date.Unspecified {
			assert.Equal(t, opts.Gender.String(), parsed.Gender, "gender of %q", code)
		} else {
			assert.NotEmpty(t, parsed.Gender, "gender of %q", code)
		}
		if opts.Year != 0 {
			assert.True(t, strings.HasPrefix(parsed.DOB, fmt.Sprintf("%04d-", opts.Year)),
				"dob %s of %q must be in %d", parsed.DOB, code, opts.Year)
		} else {
			year := 0
			_, err := fmt.Sscanf(parsed.DOB, "%4d", &year)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, year, s.MinYear)
			assert.LessOrEqual(t, year, s.MaxYear)
		}
	}
	return produced
}
