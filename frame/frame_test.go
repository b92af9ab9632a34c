package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	assert.Equal(t, "MAG", MAG.String())
	assert.Equal(t, "GEI", GEI.String())
	assert.Equal(t, "GEO", GEO.String())
	assert.Equal(t, "GSE", GSE.String())
	assert.Equal(t, "GSM", GSM.String())
	assert.Equal(t, "SM", SM.String())
	assert.Equal(t, "Unknown(99)", Frame(99).String())
}

func TestParse(t *testing.T) {
	for _, f := range All {
		got, err := Parse(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}

	_, err := Parse("ECEF")
	assert.ErrorIs(t, err, ErrUnsupported)

	_, err = Parse("gsm")
	assert.ErrorIs(t, err, ErrUnsupported, "frame names are case-sensitive")
}

func TestTransformCode(t *testing.T) {
	tests := []struct {
		from, to Frame
		expected string
	}{
		{GSM, MAG, "GSMtoMAG"},
		{MAG, GSM, "MAGtoGSM"},
		{GEO, GEI, "GEOtoGEI"},
		{SM, SM, "SMtoSM"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			code, err := TransformCode(tt.from, tt.to)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, code)
		})
	}

	_, err := TransformCode(Frame(99), MAG)
	assert.ErrorIs(t, err, ErrUnsupported)

	_, err = TransformCode(MAG, Frame(-1))
	assert.ErrorIs(t, err, ErrUnsupported)
}
