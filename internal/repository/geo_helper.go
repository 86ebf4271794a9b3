package repository

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"UrbanGuide-App/internal/domain/model"
)

// AnnotationsToFeatureCollection アノテーションを GeoJSON FeatureCollection に変換
func AnnotationsToFeatureCollection(annotations []model.PointAnnotation) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, a := range annotations {
		f := geojson.NewFeature(a.Point.ToPoint())
		f.ID = a.ID
		f.Properties["title"] = a.TextField
		f.Properties["icon_image"] = a.IconImage
		fc.Append(f)
	}
	return fc
}

// MarkersToFeatureCollection マーカーデータを GeoJSON FeatureCollection に変換
func MarkersToFeatureCollection(markers []model.MarkerData) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, m := range markers {
		f := geojson.NewFeature(m.Position.ToPoint())
		f.ID = m.ID
		f.Properties["title"] = m.Title
		f.Properties["category"] = m.Category.Name
		fc.Append(f)
	}
	return fc
}

// MarkersBound 全マーカーを含む境界ボックス。マーカーがなければ ok=false
func MarkersBound(markers []model.MarkerData) (orb.Bound, bool) {
	if len(markers) == 0 {
		return orb.Bound{}, false
	}
	bound := markers[0].Position.ToPoint().Bound()
	for _, m := range markers[1:] {
		bound = bound.Extend(m.Position.ToPoint())
	}
	return bound, true
}
