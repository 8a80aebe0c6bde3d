package denmark

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"eutestdata/internal/personalid/scheme"
	"eutestdata/internal/personalid/scheme/contract"
)

func TestDanishScheme(t *testing.T) {
	suite := &contract.Suite{
		Scheme:  New(),
		Length:  length,
		MinYear: minYear,
		MaxYear: maxYear,
		Seed:    6,
		Known: []contract.KnownCode{
			{
				Name: "male 1961",
				Code: "070761-4285",
				Want: scheme.Parsed{Code: "070761-4285", Gender: "Male", DOB: "1961-07-07", Valid: true},
			},
			{
				Name: "serial digit mutated",
				Code: "070761-4295",
				Want: scheme.Parsed{Code: "070761-4295", Gender: "Male", DOB: "1961-07-07", Valid: false},
			},
			{
				Name: "impossible day",
				Code: "320761-4285",
				Want: scheme.Parsed{Code: "320761-4285", Gender: "Male", Valid: false},
			},
		},
		Malformed: []string{"0707614285X", "070761 4285", "07076A-4285", "070761-428X"},
	}
	suite.Run(t)
}

func TestCenturyOf(t *testing.T) {
	tests := []struct {
		first, yy int
		want      int
	}{
		{0, 99, 1900},
		{3, 0, 1900},
		{4, 36, 2000},
		{4, 37, 1900},
		{9, 10, 2000},
		{9, 80, 1900},
		{5, 57, 2000},
		{8, 58, 1800},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, centuryOf(tt.first, tt.yy), "digit %d yy %d", tt.first, tt.yy)
	}
}
