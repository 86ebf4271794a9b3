package model

import (
	"fmt"
	"strings"
)

// VisualizationType データの表示方法（ピンかヒートマップか）
type VisualizationType string

const (
	VisualizationPins    VisualizationType = "pins"
	VisualizationHeatMap VisualizationType = "heatmap"
)

// ParseVisualizationType 文字列から VisualizationType を取得（大文字小文字は区別しない）
func ParseVisualizationType(s string) (VisualizationType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(VisualizationPins):
		return VisualizationPins, nil
	case string(VisualizationHeatMap):
		return VisualizationHeatMap, nil
	}
	return "", fmt.Errorf("不明な表示タイプです: %q", s)
}

// Category 表示名と表示タイプの組。比較は値で行う
type Category struct {
	Name          string            `json:"name"`
	Visualization VisualizationType `json:"visualization"`
}

// カテゴリの定数
var (
	CategoryMonuments    = Category{Name: "Monuments", Visualization: VisualizationPins}
	CategoryAirPollution = Category{Name: "Air Pollution", Visualization: VisualizationHeatMap}
)

// GetAllCategories サンプルデータで使われるカテゴリ一覧
func GetAllCategories() []Category {
	return []Category{
		CategoryMonuments,
		CategoryAirPollution,
	}
}
