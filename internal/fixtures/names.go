package fixtures

import (
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

var regionNames = display.English.Regions()

// countryName returns the English name of an ISO 3166 region code, or the
// code itself when the region is unknown to CLDR.
func countryName(code string) string {
	region, err := language.ParseRegion(code)
	if err != nil {
		return code
	}
	if name := regionNames.Name(region); name != "" {
		return name
	}
	return code
}
