package coords

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartesianToSpherical(t *testing.T) {
	tests := []struct {
		name        string
		x, y, z     float64
		r, lat, lon float64
	}{
		{"XAxis", 1, 0, 0, 1, 0, 0},
		{"YAxis", 0, 1, 0, 1, 0, 90},
		{"NorthPole", 0, 0, 1, 1, 90, 0},
		{"SouthPole", 0, 0, -2, 2, -90, 0},
		{"NegX", -1, 0, 0, 1, 0, 180},
		{"Diagonal", 1, 1, math.Sqrt2, 2, 45, 45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, lat, lon := CartesianToSpherical(tt.x, tt.y, tt.z)
			assert.InDelta(t, tt.r, r, 1e-12)
			assert.InDelta(t, tt.lat, lat, 1e-9)
			assert.InDelta(t, tt.lon, lon, 1e-9)
		})
	}

	t.Run("Origin", func(t *testing.T) {
		r, lat, lon := CartesianToSpherical(0, 0, 0)
		assert.Zero(t, r)
		assert.Zero(t, lat)
		assert.Zero(t, lon)
	})
}

func TestSphericalToCartesian(t *testing.T) {
	tests := []struct {
		name        string
		r, lat, lon float64
		x, y, z     float64
	}{
		{"XAxis", 1, 0, 0, 1, 0, 0},
		{"NorthPole", 1, 90, 0, 0, 0, 1},
		{"SouthPole", 1, -90, 45, 0, 0, -1},
		{"Equator90E", 1, 0, 90, 0, 1, 0},
		{"Equator180", 2, 0, 180, -2, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, z := SphericalToCartesian(tt.r, tt.lat, tt.lon)
			assert.InDelta(t, tt.x, x, 1e-12)
			assert.InDelta(t, tt.y, y, 1e-12)
			assert.InDelta(t, tt.z, z, 1e-12)
		})
	}
}

// Both directions use latitude, so a round trip must reproduce the input for
// any vector with r > 0.
func TestRoundTrip(t *testing.T) {
	vectors := [][3]float64{
		{1, 0, 0},
		{0.3, -0.4, 0.5},
		{-2.5, 1.25, -7},
		{1e-6, 2e-6, -3e-6},
		{6371.2, -6371.2, 6371.2},
	}

	for _, v := range vectors {
		r, lat, lon := CartesianToSpherical(v[0], v[1], v[2])
		x, y, z := SphericalToCartesian(r, lat, lon)
		mag := math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
		assert.InDelta(t, v[0], x, 1e-12*mag)
		assert.InDelta(t, v[1], y, 1e-12*mag)
		assert.InDelta(t, v[2], z, 1e-12*mag)
	}
}

func TestRows(t *testing.T) {
	rows := [][3]float64{
		{1, 0, 0},
		{0, 0, 1},
	}

	ToSphericalRows(rows)
	assert.InDelta(t, 1.0, rows[0][0], 1e-12)
	assert.InDelta(t, 0.0, rows[0][1], 1e-12)
	assert.InDelta(t, 90.0, rows[1][1], 1e-9)

	ToCartesianRows(rows)
	assert.InDelta(t, 1.0, rows[0][0], 1e-12)
	assert.InDelta(t, 1.0, rows[1][2], 1e-12)
	assert.InDelta(t, 0.0, rows[1][0], 1e-12)
}

func TestRepresentation(t *testing.T) {
	t.Run("String", func(t *testing.T) {
		assert.Equal(t, "car", Cartesian.String())
		assert.Equal(t, "sph", Spherical.String())
		assert.Equal(t, "Unknown(9)", Representation(9).String())
	})

	t.Run("Parse", func(t *testing.T) {
		r, err := ParseRepresentation("car")
		require.NoError(t, err)
		assert.Equal(t, Cartesian, r)

		r, err = ParseRepresentation("sph")
		require.NoError(t, err)
		assert.Equal(t, Spherical, r)

		_, err = ParseRepresentation("cylindrical")
		assert.ErrorIs(t, err, ErrUnknownRepresentation)
	})

	t.Run("Valid", func(t *testing.T) {
		assert.True(t, Cartesian.Valid())
		assert.True(t, Spherical.Valid())
		assert.False(t, Representation(2).Valid())
	})
}
