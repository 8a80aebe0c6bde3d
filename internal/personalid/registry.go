// Package personalid maps country codes to their national personal-ID
// schemes and dispatches generate and parse calls to them.
package personalid

import (
	"math/rand/v2"
	"slices"
	"strings"

	"eutestdata/internal/personalid/countries/belgium"
	"eutestdata/internal/personalid/countries/bulgaria"
	"eutestdata/internal/personalid/countries/czechia"
	"eutestdata/internal/personalid/countries/denmark"
	"eutestdata/internal/personalid/countries/estonia"
	"eutestdata/internal/personalid/countries/finland"
	"eutestdata/internal/personalid/countries/lithuania"
	"eutestdata/internal/personalid/countries/norway"
	"eutestdata/internal/personalid/countries/poland"
	"eutestdata/internal/personalid/countries/romania"
	"eutestdata/internal/personalid/countries/slovenia"
	"eutestdata/internal/personalid/countries/sweden"
	"eutestdata/internal/personalid/scheme"
)

// Country identifies a registered scheme.
type Country struct {
	Code string
	Name string
}

type entry struct {
	country Country
	scheme  scheme.Scheme
}

// Registry is read-only after construction and safe for concurrent use.
type Registry struct {
	entries map[string]entry
	sorted  []Country
}

// NewRegistry returns a registry holding every built-in scheme.
func NewRegistry() *Registry {
	r := &Registry{entries: make(map[string]entry)}
	r.register(belgium.Code, belgium.Name, belgium.New())
	r.register(bulgaria.Code, bulgaria.Name, bulgaria.New())
	r.register(czechia.Code, czechia.Name, czechia.New())
	r.register(denmark.Code, denmark.Name, denmark.New())
	r.register(estonia.Code, estonia.Name, estonia.New())
	r.register(finland.Code, finland.Name, finland.New())
	r.register(lithuania.Code, lithuania.Name, lithuania.New())
	r.register(norway.Code, norway.Name, norway.New())
	r.register(poland.Code, poland.Name, poland.New())
	r.register(romania.Code, romania.Name, romania.New())
	r.register(slovenia.Code, slovenia.Name, slovenia.New())
	r.register(sweden.Code, sweden.Name, sweden.New())

	slices.SortFunc(r.sorted, func(a, b Country) int { return strings.Compare(a.Code, b.Code) })
	return r
}

func (r *Registry) register(code, name string, s scheme.Scheme) {
	c := Country{Code: code, Name: name}
	r.entries[code] = entry{country: c, scheme: s}
	r.sorted = append(r.sorted, c)
}

// ListCountries returns the registered countries ordered by code.
func (r *Registry) ListCountries() []Country {
	return slices.Clone(r.sorted)
}

// Lookup reports whether country has a registered scheme.
func (r *Registry) Lookup(country string) (Country, bool) {
	e, ok := r.entries[strings.ToUpper(country)]
	return e.country, ok
}

// Generate draws one code for country. It returns false for unregistered
// countries and for constraints the scheme cannot satisfy.
func (r *Registry) Generate(country string, opts scheme.Options, rng *rand.Rand) (string, bool) {
	e, ok := r.entries[strings.ToUpper(country)]
	if !ok {
		return "", false
	}
	return e.scheme.Generate(opts, rng)
}

// Parse decodes code with country's scheme. It returns false for
// unregistered countries and for input the scheme cannot segment.
func (r *Registry) Parse(country, code string) (scheme.Parsed, bool) {
	e, ok := r.entries[strings.ToUpper(country)]
	if !ok {
		return scheme.Parsed{}, false
	}
	return e.scheme.Parse(code)
}
