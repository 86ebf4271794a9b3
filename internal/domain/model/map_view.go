package model

import "strings"

// PointAnnotation 地図上に作成されたポイントアノテーション
type PointAnnotation struct {
	ID        string `json:"id"`
	Point     LatLng `json:"point"`
	TextField string `json:"text_field"`
	IconImage string `json:"icon_image"`
}

// PointAnnotationOptions アノテーション作成時のオプション
type PointAnnotationOptions struct {
	Point     LatLng
	TextField string
	IconImage string
}

// CameraOptions カメラの状態
type CameraOptions struct {
	Center LatLng  `json:"center"`
	Zoom   float64 `json:"zoom"`
	Pitch  float64 `json:"pitch"`
}

// DefaultCamera モデナ中心の初期カメラ
func DefaultCamera() CameraOptions {
	return CameraOptions{
		Center: Modena,
		Zoom:   DefaultZoom,
		Pitch:  DefaultPitch,
	}
}

// RasterSource XYZタイルソース
type RasterSource struct {
	ID       string   `json:"id"`
	Tiles    []string `json:"tiles"`
	TileSize int      `json:"tile_size"`
	MaxZoom  int      `json:"max_zoom"`
}

// RasterLayer ラスターレイヤー
type RasterLayer struct {
	ID       string  `json:"id"`
	SourceID string  `json:"source_id"`
	Opacity  float64 `json:"opacity"`
}

// Style 地図スタイル。ヒートマップがある場合のみラスターソース/レイヤーを持つ
type Style struct {
	URI     string         `json:"uri"`
	Sources []RasterSource `json:"sources"`
	Layers  []RasterLayer  `json:"layers"`
}

// ヒートマップタイルの定数
const (
	StyleStandard       = "mapbox://styles/mapbox/standard"
	HeatmapSourceID     = "xyz-tile-source"
	HeatmapLayerID      = "xyz-tile-layer"
	HeatmapTileSize     = 256
	HeatmapMaxZoom      = 16
	HeatmapOpacity      = 0.8
	heatmapTileTemplate = "https://airquality.googleapis.com/v1/mapTypes/UAQI_RED_GREEN/heatmapTiles/{z}/{x}/{y}?key={key}"
)

// HeatmapTileURL APIキーを埋め込んだタイルURL
func HeatmapTileURL(apiKey string) string {
	return strings.Replace(heatmapTileTemplate, "{key}", apiKey, 1)
}

// NewStyle ヒートマップの有無に応じたスタイルを作成
func NewStyle(withHeatmap bool, apiKey string) Style {
	style := Style{
		URI:     StyleStandard,
		Sources: []RasterSource{},
		Layers:  []RasterLayer{},
	}
	if !withHeatmap {
		return style
	}
	style.Sources = append(style.Sources, RasterSource{
		ID:       HeatmapSourceID,
		Tiles:    []string{HeatmapTileURL(apiKey)},
		TileSize: HeatmapTileSize,
		MaxZoom:  HeatmapMaxZoom,
	})
	style.Layers = append(style.Layers, RasterLayer{
		ID:       HeatmapLayerID,
		SourceID: HeatmapSourceID,
		Opacity:  HeatmapOpacity,
	})
	return style
}

// HasHeatmapLayer ヒートマップレイヤーが含まれているか
func (s Style) HasHeatmapLayer() bool {
	for _, l := range s.Layers {
		if l.ID == HeatmapLayerID {
			return true
		}
	}
	return false
}
