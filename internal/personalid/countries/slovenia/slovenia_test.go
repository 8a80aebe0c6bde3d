package slovenia

import (
	"testing"

	"eutestdata/internal/personalid/scheme"
	"eutestdata/internal/personalid/scheme/contract"
)

func TestSlovenianScheme(t *testing.T) {
	suite := &contract.Suite{
		Scheme:  New(),
		Length:  length,
		MinYear: minYear,
		MaxYear: maxYear,
		Seed:    12,
		Known: []contract.KnownCode{
			{
				Name: "male 2006",
				Code: "0101006500006",
				Want: scheme.Parsed{Code: "0101006500006", Gender: "Male", DOB: "2006-01-01", Valid: true},
			},
			{
				Name: "female 1980",
				Code: "0101980505007",
				Want: scheme.Parsed{Code: "0101980505007", Gender: "Female", DOB: "1980-01-01", Valid: true},
			},
			{
				Name: "serial digit mutated",
				Code: "0101006500016",
				Want: scheme.Parsed{Code: "0101006500016", Gender: "Male", DOB: "2006-01-01", Valid: false},
			},
		},
		Malformed: []string{"010100650000X", "01.01.006.500"},
	}
	suite.Run(t)
}
