package lithuania

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"eutestdata/internal/personalid/scheme"
	"eutestdata/internal/personalid/scheme/contract"
)

func TestLithuanianScheme(t *testing.T) {
	suite := &contract.Suite{
		Scheme:  New(),
		Length:  length,
		MinYear: minYear,
		MaxYear: maxYear,
		Seed:    2,
		Known: []contract.KnownCode{
			{
				Name: "male 1987",
				Code: "38703181745",
				Want: scheme.Parsed{Code: "38703181745", Gender: "Male", DOB: "1987-03-18", Valid: true},
			},
			{
				Name: "female 1990",
				Code: "49001011238",
				Want: scheme.Parsed{Code: "49001011238", Gender: "Female", DOB: "1990-01-01", Valid: true},
			},
			{
				Name: "male 2005",
				Code: "50506150123",
				Want: scheme.Parsed{Code: "50506150123", Gender: "Male", DOB: "2005-06-15", Valid: true},
			},
			{
				Name: "serial digit mutated",
				Code: "38703181845",
				Want: scheme.Parsed{Code: "38703181845", Gender: "Male", DOB: "1987-03-18", Valid: false},
			},
			{
				Name: "century digit out of range",
				Code: "78703181745",
				Want: scheme.Parsed{Code: "78703181745", Valid: false},
			},
		},
		Malformed: []string{"3870318174X", " 3870318174"},
	}
	suite.Run(t)
}

func TestControlSecondStage(t *testing.T) {
	// first stage sums to 10, second stage to 5
	d := []int{1, 0, 0, 0, 0, 0, 0, 0, 1, 0}
	assert.Equal(t, 5, control(d))
}
