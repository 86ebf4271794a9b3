package helper

import (
	"UrbanGuide-App/internal/domain/model"
)

// FilterByCategory 指定カテゴリと一致するデータのみを順序を保って抽出する
func FilterByCategory(beams []model.DataBeam, category model.Category) []model.DataBeam {
	filtered := make([]model.DataBeam, 0)
	for _, b := range beams {
		if b.GetCategory() == category {
			filtered = append(filtered, b)
		}
	}
	return filtered
}

// Markers MarkerData のみを抽出
func Markers(beams []model.DataBeam) []model.MarkerData {
	markers := make([]model.MarkerData, 0)
	for _, b := range beams {
		if m, ok := b.(model.MarkerData); ok {
			markers = append(markers, m)
		}
	}
	return markers
}

// Heatmaps HeatmapData のみを抽出
func Heatmaps(beams []model.DataBeam) []model.HeatmapData {
	heatmaps := make([]model.HeatmapData, 0)
	for _, b := range beams {
		if h, ok := b.(model.HeatmapData); ok {
			heatmaps = append(heatmaps, h)
		}
	}
	return heatmaps
}
