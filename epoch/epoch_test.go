package epoch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPad(t *testing.T) {
	tests := []struct {
		name     string
		in       []int
		length   int
		expected []int
	}{
		{"PadToSeven", []int{2000, 1, 1}, 7, []int{2000, 1, 1, 0, 0, 0, 0}},
		{"PadToFour", []int{2000, 1, 1}, 4, []int{2000, 1, 1, 0}},
		{"Truncate", []int{2000, 1, 1, 2, 3, 4}, 3, []int{2000, 1, 1}},
		{"ExactLength", []int{2000, 1, 1, 12}, 4, []int{2000, 1, 1, 12}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Pad(tt.in, tt.length)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	t.Run("TooShort", func(t *testing.T) {
		_, err := Pad([]int{2000, 1}, 7)
		assert.ErrorIs(t, err, ErrInvalidTime)
	})

	t.Run("DoesNotAliasInput", func(t *testing.T) {
		in := []int{2000, 1, 1, 2, 3, 4}
		got, err := Pad(in, 6)
		require.NoError(t, err)
		got[0] = 1999
		assert.Equal(t, 2000, in[0])
	})
}

func TestToDayOfYear(t *testing.T) {
	tests := []struct {
		name     string
		in       []int
		expected Encoded
	}{
		{"FebFirst", []int{2000, 2, 1, 9, 9, 9}, Encoded{2000, 32, 9, 9, 9}},
		{"JanFirst", []int{2000, 1, 1}, Encoded{2000, 1, 0, 0, 0}},
		{"LeapDay", []int{2000, 2, 29, 1, 2, 3}, Encoded{2000, 60, 1, 2, 3}},
		{"YearEnd", []int{1999, 12, 31, 23, 59, 59}, Encoded{1999, 365, 23, 59, 59}},
		{"IgnoresExtraFields", []int{2000, 2, 1, 9, 9, 9, 123, 456}, Encoded{2000, 32, 9, 9, 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToDayOfYear(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	t.Run("Invalid", func(t *testing.T) {
		invalid := [][]int{
			{2000, 13, 1},  // month 13
			{2000, 1, 32},  // day 32
			{2001, 2, 29},  // not a leap year
			{2000, 0, 10},  // month 0
			{2000, 1},      // too short
		}
		for _, in := range invalid {
			_, err := ToDayOfYear(in)
			assert.ErrorIs(t, err, ErrInvalidTime, "time %v", in)
		}
	})
}

func TestHoursToHMS(t *testing.T) {
	tests := []struct {
		name    string
		ut      float64
		keep24  bool
		h, m, s int
	}{
		{"Noon", 12, false, 12, 0, 0},
		{"Midnight24", 24, false, 0, 0, 0},
		{"Midnight24Keep", 24, true, 24, 0, 0},
		{"Zero", 0, false, 0, 0, 0},
		{"HalfPastSix", 6.5, false, 6, 30, 0},
		{"WithSeconds", 1.5025, false, 1, 30, 9},
		{"SecondCarry", 10.99999999, false, 11, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m, s, err := HoursToHMS(tt.ut, tt.keep24)
			require.NoError(t, err)
			assert.Equal(t, tt.h, h)
			assert.Equal(t, tt.m, m)
			assert.Equal(t, tt.s, s)
		})
	}

	t.Run("OutOfRange", func(t *testing.T) {
		_, _, _, err := HoursToHMS(25, false)
		assert.ErrorIs(t, err, ErrUTRange)

		_, _, _, err = HoursToHMS(-0.1, false)
		assert.ErrorIs(t, err, ErrUTRange)
	})
}
