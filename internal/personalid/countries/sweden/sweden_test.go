package sweden

import (
	"testing"

	"eutestdata/internal/personalid/scheme"
	"eutestdata/internal/personalid/scheme/contract"
)

func TestSwedishScheme(t *testing.T) {
	suite := &contract.Suite{
		Scheme:  New(),
		Length:  length,
		MinYear: minYear,
		MaxYear: maxYear,
		Seed:    4,
		Known: []contract.KnownCode{
			{
				Name: "male 1981",
				Code: "19811218-9876",
				Want: scheme.Parsed{Code: "19811218-9876", Gender: "Male", DOB: "1981-12-18", Valid: true},
			},
			{
				Name: "last serial digit mutated",
				Code: "19811218-9866",
				Want: scheme.Parsed{Code: "19811218-9866", Gender: "Female", DOB: "1981-12-18", Valid: false},
			},
			{
				Name: "century does not enter the checksum",
				Code: "20811218-9876",
				Want: scheme.Parsed{Code: "20811218-9876", Gender: "Male", DOB: "2081-12-18", Valid: true},
			},
		},
		Malformed: []string{"198112189876X", "19811218+987", "811218-9876", "19811218 9876", "1981121A-9876"},
	}
	suite.Run(t)
}

func TestLuhn(t *testing.T) {
	tests := []struct {
		digits []int
		want   int
	}{
		{[]int{8, 1, 1, 2, 1, 8, 9, 8, 7}, 6},
		{[]int{0, 0, 0, 0, 0, 0, 0, 0, 0}, 0},
		{[]int{6, 4, 0, 8, 2, 3, 3, 2, 3}, 4},
	}
	for _, tt := range tests {
		if got := luhn(tt.digits); got != tt.want {
			t.Errorf("luhn(%v) = %d, want %d", tt.digits, got, tt.want)
		}
	}
}
