package model

import (
	"encoding/json"
	"fmt"
)

// DataBeam 地図に表示する1件のデータ。MarkerData と HeatmapData のみが実装する
type DataBeam interface {
	GetID() string
	GetTitle() string
	GetCategory() Category
	isDataBeam()
}

// MarkerData 地図上のピンとして描画されるデータ
type MarkerData struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Category Category `json:"category"`
	Position LatLng   `json:"position"`
}

func (m MarkerData) GetID() string         { return m.ID }
func (m MarkerData) GetTitle() string      { return m.Title }
func (m MarkerData) GetCategory() Category { return m.Category }
func (MarkerData) isDataBeam()             {}

// MarshalJSON "type" フィールドを付与してシリアライズ
func (m MarkerData) MarshalJSON() ([]byte, error) {
	type alias MarkerData
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{Type: "marker", alias: alias(m)})
}

// HeatmapData エリア単位のヒートマップとして描画されるデータ
type HeatmapData struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Category Category `json:"category"`
	Area     string   `json:"area"`
}

func (h HeatmapData) GetID() string         { return h.ID }
func (h HeatmapData) GetTitle() string      { return h.Title }
func (h HeatmapData) GetCategory() Category { return h.Category }
func (HeatmapData) isDataBeam()             {}

func (h HeatmapData) MarshalJSON() ([]byte, error) {
	type alias HeatmapData
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{Type: "heatmap", alias: alias(h)})
}

// DataBeamRecord DB保存用のフラットな表現（data_beams テーブル）
type DataBeamRecord struct {
	ID            string   `json:"id" db:"id"`
	Kind          string   `json:"kind" db:"kind"` // "marker" | "heatmap"
	Title         string   `json:"title" db:"title"`
	CategoryName  string   `json:"category_name" db:"category_name"`
	Visualization string   `json:"visualization" db:"visualization"`
	Lat           *float64 `json:"lat,omitempty" db:"lat"`
	Lng           *float64 `json:"lng,omitempty" db:"lng"`
	Area          *string  `json:"area,omitempty" db:"area"`
	Position      int      `json:"position" db:"position"` // 表示順
}

// ToDataBeam レコードを DataBeam に変換
func (r *DataBeamRecord) ToDataBeam() (DataBeam, error) {
	visualization, err := ParseVisualizationType(r.Visualization)
	if err != nil {
		return nil, err
	}
	category := Category{Name: r.CategoryName, Visualization: visualization}

	switch r.Kind {
	case "marker":
		if r.Lat == nil || r.Lng == nil {
			return nil, fmt.Errorf("マーカー %s に位置情報がありません", r.ID)
		}
		return MarkerData{
			ID:       r.ID,
			Title:    r.Title,
			Category: category,
			Position: LatLng{Lat: *r.Lat, Lng: *r.Lng},
		}, nil
	case "heatmap":
		area := ""
		if r.Area != nil {
			area = *r.Area
		}
		return HeatmapData{
			ID:       r.ID,
			Title:    r.Title,
			Category: category,
			Area:     area,
		}, nil
	}
	return nil, fmt.Errorf("不明なデータ種別です: %q", r.Kind)
}
