package scheme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eutestdata/internal/personalid/date"
)

func TestNewParsed(t *testing.T) {
	t.Run("all fields decodable", func(t *testing.T) {
		p := NewParsed("X", date.Female, 1990, 1, 31, true)
		assert.Equal(t, Parsed{Code: "X", Gender: "Female", DOB: "1990-01-31", Valid: true}, p)
	})

	t.Run("impossible date leaves dob empty", func(t *testing.T) {
		p := NewParsed("X", date.Male, 1990, 2, 30, true)
		assert.Empty(t, p.DOB)
		assert.Equal(t, "Male", p.Gender)
		assert.True(t, p.Valid)
	})

	t.Run("unknown gender leaves gender empty", func(t *testing.T) {
		p := NewParsed("X", date.Unspecified, 1990, 2, 1, false)
		assert.Empty(t, p.Gender)
		assert.Equal(t, "1990-02-01", p.DOB)
		assert.False(t, p.Valid)
	})
}

func TestDigits(t *testing.T) {
	d, ok := Digits("0907")
	require.True(t, ok)
	assert.Equal(t, []int{0, 9, 0, 7}, d)
	assert.Equal(t, 907, Number(d))

	_, ok = Digits("12a4")
	assert.False(t, ok)

	d, ok = Digits("")
	require.True(t, ok)
	assert.Empty(t, d)
}
