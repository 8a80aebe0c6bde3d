package poland

import (
	"testing"

	"eutestdata/internal/personalid/scheme"
	"eutestdata/internal/personalid/scheme/contract"
)

func TestPolishScheme(t *testing.T) {
	suite := &contract.Suite{
		Scheme:  New(),
		Length:  length,
		MinYear: minYear,
		MaxYear: maxYear,
		Seed:    7,
		Known: []contract.KnownCode{
			{
				Name: "male 1944",
				Code: "44051401359",
				Want: scheme.Parsed{Code: "44051401359", Gender: "Male", DOB: "1944-05-14", Valid: true},
			},
			{
				Name: "serial digit mutated",
				Code: "44051401459",
				Want: scheme.Parsed{Code: "44051401459", Gender: "Male", DOB: "1944-05-14", Valid: false},
			},
			{
				Name: "month offset for the 2000s",
				Code: "02221500013",
				Want: scheme.Parsed{Code: "02221500013", Gender: "Male", DOB: "2002-02-15", Valid: true},
			},
			{
				Name: "month outside every offset",
				Code: "44331401359",
				Want: scheme.Parsed{Code: "44331401359", Gender: "Male", Valid: false},
			},
		},
		Malformed: []string{"4405140135X", "44-05-14013"},
	}
	suite.Run(t)
}
