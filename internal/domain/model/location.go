package model

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// LatLng 緯度経度（度）を表す基本的な型
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Modena サンプルデータとカメラ初期位置の基準点
var Modena = LatLng{Lat: 44.646469, Lng: 10.925139}

// ToPoint orb.Point（経度, 緯度の順）に変換
func (l LatLng) ToPoint() orb.Point {
	return orb.Point{l.Lng, l.Lat}
}

// Validate 緯度経度の範囲チェック
func (l LatLng) Validate() error {
	if !IsFinite(l.Lat) || !IsFinite(l.Lng) {
		return fmt.Errorf("緯度経度に有限の数値を指定してください: %f, %f", l.Lat, l.Lng)
	}
	if l.Lat < -90 || l.Lat > 90 {
		return fmt.Errorf("緯度は-90から90の範囲で指定してください: %f", l.Lat)
	}
	if l.Lng < -180 || l.Lng > 180 {
		return fmt.Errorf("経度は-180から180の範囲で指定してください: %f", l.Lng)
	}
	return nil
}

func (l LatLng) String() string {
	return fmt.Sprintf("(%.6f, %.6f)", l.Lat, l.Lng)
}

// IsFinite NaN と ±Inf を除外する
func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
