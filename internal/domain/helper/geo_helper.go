package helper

import (
	"math"
	"math/rand"
	"sync"

	"github.com/golang/geo/s2"

	"UrbanGuide-App/internal/domain/model"
)

// EarthRadiusMeters 地球の平均半径 (m)
const EarthRadiusMeters = 6371008.8

// MetersPerDegree 緯度1度あたりの距離 (m)
const MetersPerDegree = 111320.0

// DistanceMeters 2地点間の大円距離を計算する (m)
func DistanceMeters(p1, p2 model.LatLng) float64 {
	a := s2.LatLngFromDegrees(p1.Lat, p1.Lng)
	b := s2.LatLngFromDegrees(p2.Lat, p2.Lng)
	return a.Distance(b).Radians() * EarthRadiusMeters
}

// Sampler 原点を中心とする円内に一様分布する座標を生成する
type Sampler struct {
	origin       model.LatLng
	radiusMeters float64

	mu  sync.Mutex
	rnd *rand.Rand // nil の場合はグローバルな乱数源を使う
}

// NewSampler シードなしの Sampler を作成
func NewSampler(origin model.LatLng, radiusMeters float64) *Sampler {
	return &Sampler{origin: origin, radiusMeters: radiusMeters}
}

// NewSamplerWithRand 乱数源を指定して Sampler を作成（再現性が必要なテスト用）
func NewSamplerWithRand(origin model.LatLng, radiusMeters float64, rnd *rand.Rand) *Sampler {
	return &Sampler{origin: origin, radiusMeters: radiusMeters, rnd: rnd}
}

func (s *Sampler) Origin() model.LatLng   { return s.origin }
func (s *Sampler) RadiusMeters() float64 { return s.radiusMeters }

// Next 円内のランダムな座標を1つ返す
func (s *Sampler) Next() model.LatLng {
	u, v := s.draw()
	return pointInDisk(s.origin, s.radiusMeters, u, v)
}

// Take n 個の座標をまとめて生成
func (s *Sampler) Take(n int) []model.LatLng {
	points := make([]model.LatLng, 0, n)
	for i := 0; i < n; i++ {
		points = append(points, s.Next())
	}
	return points
}

func (s *Sampler) draw() (float64, float64) {
	if s.rnd == nil {
		return rand.Float64(), rand.Float64()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Float64(), s.rnd.Float64()
}

// pointInDisk u, v ∈ [0,1) から円内の座標を求める。
// sqrt(u) で面積あたりの密度を一様にし、経度方向は cos(緯度) で補正する
func pointInDisk(origin model.LatLng, radiusMeters, u, v float64) model.LatLng {
	radiusDegrees := radiusMeters / MetersPerDegree

	w := radiusDegrees * math.Sqrt(u)
	t := 2 * math.Pi * v
	x := w * math.Cos(t)
	y := w * math.Sin(t)

	x = x / math.Cos(origin.Lat*math.Pi/180)

	return wrapLatLng(origin.Lat+y, origin.Lng+x)
}

// wrapLatLng 極を越えた緯度を反対側の経線に折り返し、経度を正規化する。
// 極付近では cos(緯度) が 0 に近く、補正後の経度が大きく外れる
func wrapLatLng(lat, lng float64) model.LatLng {
	switch {
	case lat > 90:
		lat = 180 - lat
		lng += 180
	case lat < -90:
		lat = -180 - lat
		lng += 180
	}
	return model.LatLng{Lat: lat, Lng: normalizeLongitude(lng)}
}

// normalizeLongitude ±180 を超えた経度を [-180, 180) に折り返す
func normalizeLongitude(lng float64) float64 {
	if lng >= -180 && lng <= 180 {
		return lng
	}
	lng = math.Mod(lng+180, 360)
	if lng < 0 {
		lng += 360
	}
	return lng - 180
}

// RandomLocation モデナから半径500m以内のランダムな座標
func RandomLocation() model.LatLng {
	return RandomLocationAround(model.Modena, model.DefaultRadiusMeters)
}

// RandomLocationAround 任意の原点・半径でランダムな座標を生成
func RandomLocationAround(origin model.LatLng, radiusMeters float64) model.LatLng {
	return pointInDisk(origin, radiusMeters, rand.Float64(), rand.Float64())
}
