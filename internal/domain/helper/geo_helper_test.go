package helper

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"UrbanGuide-App/internal/domain/model"
)

func TestDistanceMeters(t *testing.T) {
	// 緯度1度 ≒ 111.2km
	d := DistanceMeters(model.LatLng{Lat: 0, Lng: 0}, model.LatLng{Lat: 1, Lng: 0})
	assert.InDelta(t, 111195, d, 10)

	assert.Zero(t, DistanceMeters(model.Modena, model.Modena))
}

func TestPointInDisk(t *testing.T) {
	t.Run("u=0 は原点", func(t *testing.T) {
		p := pointInDisk(model.Modena, 500, 0, 0.3)
		assert.InDelta(t, model.Modena.Lat, p.Lat, 1e-12)
		assert.InDelta(t, model.Modena.Lng, p.Lng, 1e-12)
	})

	t.Run("v=0 は東方向に補正付きでずれる", func(t *testing.T) {
		p := pointInDisk(model.Modena, 500, 0.25, 0)
		want := 0.5 * 500 / MetersPerDegree / math.Cos(model.Modena.Lat*math.Pi/180)
		assert.InDelta(t, model.Modena.Lat, p.Lat, 1e-12)
		assert.InDelta(t, model.Modena.Lng+want, p.Lng, 1e-12)
	})

	t.Run("v=0.25 は北方向", func(t *testing.T) {
		p := pointInDisk(model.Modena, 500, 1, 0.25)
		assert.InDelta(t, model.Modena.Lat+500/MetersPerDegree, p.Lat, 1e-9)
		assert.InDelta(t, model.Modena.Lng, p.Lng, 1e-9)
	})
}

func TestSampler_WithinRadius(t *testing.T) {
	sampler := NewSamplerWithRand(model.Modena, model.DefaultRadiusMeters, rand.New(rand.NewSource(1)))

	for i := 0; i < 5000; i++ {
		p := sampler.Next()
		assert.LessOrEqual(t, DistanceMeters(model.Modena, p), model.DefaultRadiusMeters+0.5)
	}
}

func TestRandomLocation_WithinRadius(t *testing.T) {
	for i := 0; i < 1000; i++ {
		p := RandomLocation()
		require.LessOrEqual(t, DistanceMeters(model.Modena, p), model.DefaultRadiusMeters+0.5)
	}
}

func TestSampler_UniformAreaDensity(t *testing.T) {
	const n = 40000
	sampler := NewSamplerWithRand(model.Modena, 1000, rand.New(rand.NewSource(42)))

	// 実際の最大距離で正規化して、半径の半分以内に約1/4が入ることを確認
	maxDist := 1000 * (EarthRadiusMeters * math.Pi / 180) / MetersPerDegree
	inner := 0
	quadrants := [4]int{}
	for _, p := range sampler.Take(n) {
		if DistanceMeters(model.Modena, p) <= maxDist/2 {
			inner++
		}
		q := 0
		if p.Lat >= model.Modena.Lat {
			q |= 1
		}
		if p.Lng >= model.Modena.Lng {
			q |= 2
		}
		quadrants[q]++
	}

	assert.InDelta(t, 0.25, float64(inner)/n, 0.02)
	for _, c := range quadrants {
		assert.InDelta(t, 0.25, float64(c)/n, 0.02)
	}
}

func TestSampler_LongitudeCorrection(t *testing.T) {
	spread := func(origin model.LatLng) float64 {
		sampler := NewSamplerWithRand(origin, 500, rand.New(rand.NewSource(7)))
		minLng, maxLng := math.Inf(1), math.Inf(-1)
		for _, p := range sampler.Take(2000) {
			minLng = math.Min(minLng, p.Lng)
			maxLng = math.Max(maxLng, p.Lng)
		}
		return maxLng - minLng
	}

	equator := spread(model.LatLng{Lat: 0, Lng: 10})
	modena := spread(model.Modena)
	north := spread(model.LatLng{Lat: 70, Lng: 10})

	assert.Greater(t, modena, equator)
	assert.Greater(t, north, modena)
}

func TestSampler_Take(t *testing.T) {
	sampler := NewSampler(model.Modena, 100)
	points := sampler.Take(10)
	assert.Len(t, points, 10)
	assert.Equal(t, model.Modena, sampler.Origin())
	assert.Equal(t, 100.0, sampler.RadiusMeters())
}

func TestNormalizeLongitude(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{10, 10},
		{180, 180},
		{-180, -180},
		{190, -170},
		{-190, 170},
		{540, -180},
		{725, 5},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, normalizeLongitude(tt.in), 1e-9, tt.in)
	}
}

func TestWrapLatLng(t *testing.T) {
	p := wrapLatLng(90.5, 10)
	assert.InDelta(t, 89.5, p.Lat, 1e-9)
	assert.InDelta(t, -170, p.Lng, 1e-9)

	p = wrapLatLng(-90.25, -100)
	assert.InDelta(t, -89.75, p.Lat, 1e-9)
	assert.InDelta(t, 80, p.Lng, 1e-9)

	assert.Equal(t, model.Modena, wrapLatLng(model.Modena.Lat, model.Modena.Lng))
}

func TestSampler_NearPoleStaysInRange(t *testing.T) {
	for _, origin := range []model.LatLng{
		{Lat: 90, Lng: 0},
		{Lat: -89.9999, Lng: 179.99},
		{Lat: 0, Lng: 179.999},
	} {
		sampler := NewSamplerWithRand(origin, model.DefaultRadiusMeters, rand.New(rand.NewSource(7)))
		for _, p := range sampler.Take(500) {
			require.NoError(t, p.Validate(), "origin %v -> %v", origin, p)
		}
	}
}
