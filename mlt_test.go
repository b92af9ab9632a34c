package hxform_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/hxform"
	"github.com/hupe1980/hxform/testutil"
)

// refMLT is the documented magnetic local time of MAG longitude 0 at
// 2000-01-01T00:00:00 under the dipole model.
const refMLT = 18.869936573301775

// subsolarAngle seeds the static backend so that rotating GSM (1, 0, 0)
// into MAG lands at the magnetic longitude that reproduces refMLT.
var subsolarAngle = -(refMLT - 12.0) * math.Pi / 12.0

func newMLTBackend() *testutil.Static {
	return newStatic(map[string]float64{"GSMtoMAG": subsolarAngle})
}

func TestMagToMLT(t *testing.T) {
	newMLTBackend()

	mlt, err := hxform.MagToMLT(0, t1, hxform.WithBackend(testutil.StaticName))
	require.NoError(t, err)
	assert.InDelta(t, refMLT, mlt, 1e-9)
}

func TestMagToMLTBatch(t *testing.T) {
	newMLTBackend()

	t.Run("TwoLongitudesOneTime", func(t *testing.T) {
		out, err := hxform.MagToMLTBatch([]float64{0, 0}, []hxform.Time{t1}, hxform.WithBackend(testutil.StaticName))
		require.NoError(t, err)
		require.Len(t, out, 2)
		assert.InDelta(t, refMLT, out[0], 1e-9)
		assert.InDelta(t, refMLT, out[1], 1e-9)
	})

	t.Run("OneLongitudeTwoTimes", func(t *testing.T) {
		out, err := hxform.MagToMLTBatch([]float64{0}, []hxform.Time{t1, t1}, hxform.WithBackend(testutil.StaticName))
		require.NoError(t, err)
		require.Len(t, out, 2)
		assert.InDelta(t, refMLT, out[0], 1e-9)
	})

	t.Run("Mismatch", func(t *testing.T) {
		_, err := hxform.MagToMLTBatch([]float64{0, 0}, []hxform.Time{t1, t1, t1}, hxform.WithBackend(testutil.StaticName))
		var sm *hxform.ErrShapeMismatch
		assert.ErrorAs(t, err, &sm)
	})
}

func TestMagVectorToMLT(t *testing.T) {
	newMLTBackend()

	// (-1, 0, 0) is longitude 180°, exactly 12 hours from longitude 0.
	mlt, err := hxform.MagVectorToMLT(hxform.Vector{-1, 0, 0}, t1, hxform.WithBackend(testutil.StaticName))
	require.NoError(t, err)
	assert.InDelta(t, refMLT-12.0, mlt, 1e-9)

	out, err := hxform.MagVectorToMLTBatch(
		[]hxform.Vector{{-1, 0, 0}, {-1, 0, 0}},
		[]hxform.Time{t1},
		hxform.WithBackend(testutil.StaticName),
	)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.InDelta(t, refMLT-12.0, out[0], 1e-9)
	assert.InDelta(t, refMLT-12.0, out[1], 1e-9)
}

// The wrap must keep MLT in [0, 24) for any longitude.
func TestMagToMLTRange(t *testing.T) {
	newMLTBackend()
	rng := testutil.NewRNG(3)

	lons := make([]float64, 64)
	rng.FillUniformRange(lons, -360, 360)

	out, err := hxform.MagToMLTBatch(lons, []hxform.Time{t1}, hxform.WithBackend(testutil.StaticName))
	require.NoError(t, err)
	for i, mlt := range out {
		assert.GreaterOrEqual(t, mlt, 0.0, "lon %v", lons[i])
		assert.Less(t, mlt, 24.0, "lon %v", lons[i])
	}
}

func TestMagToMLTErrors(t *testing.T) {
	t.Run("BadTime", func(t *testing.T) {
		newMLTBackend()
		_, err := hxform.MagToMLT(0, hxform.Time{2000, 2, 30}, hxform.WithBackend(testutil.StaticName))
		assert.ErrorIs(t, err, hxform.ErrInvalidInput)
	})

	t.Run("BackendFailure", func(t *testing.T) {
		s := newMLTBackend()
		s.Err = assert.AnError

		_, err := hxform.MagToMLT(0, t1, hxform.WithBackend(testutil.StaticName))
		var be *hxform.ErrBackend
		assert.ErrorAs(t, err, &be)
	})
}
