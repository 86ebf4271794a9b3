package model

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVisualizationType(t *testing.T) {
	tests := []struct {
		in      string
		want    VisualizationType
		wantErr bool
	}{
		{"pins", VisualizationPins, false},
		{"Pins", VisualizationPins, false},
		{" HeatMap ", VisualizationHeatMap, false},
		{"heatmap", VisualizationHeatMap, false},
		{"polygon", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseVisualizationType(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		assert.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestCategoryEquality(t *testing.T) {
	assert.Equal(t, CategoryMonuments, Category{Name: "Monuments", Visualization: VisualizationPins})
	assert.NotEqual(t, CategoryMonuments, Category{Name: "Monuments", Visualization: VisualizationHeatMap})
	assert.True(t, CategoryAirPollution == Category{Name: "Air Pollution", Visualization: VisualizationHeatMap})
}

func TestDataBeamJSON(t *testing.T) {
	marker := MarkerData{ID: "1", Title: "Monument 1", Category: CategoryMonuments, Position: LatLng{Lat: 1, Lng: 2}}
	data, err := json.Marshal(marker)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"marker","id":"1","title":"Monument 1","category":{"name":"Monuments","visualization":"pins"},"position":{"lat":1,"lng":2}}`, string(data))

	heatmap := HeatmapData{ID: "1", Title: "Air", Category: CategoryAirPollution, Area: "Area1"}
	data, err = json.Marshal(heatmap)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"heatmap","id":"1","title":"Air","category":{"name":"Air Pollution","visualization":"heatmap"},"area":"Area1"}`, string(data))
}

func TestDataBeamRecord_ToDataBeam(t *testing.T) {
	lat, lng := 44.6, 10.9
	area := "Area1"

	beam, err := (&DataBeamRecord{ID: "1", Kind: "marker", Title: "M", CategoryName: "Monuments", Visualization: "pins", Lat: &lat, Lng: &lng}).ToDataBeam()
	require.NoError(t, err)
	assert.Equal(t, MarkerData{ID: "1", Title: "M", Category: CategoryMonuments, Position: LatLng{Lat: lat, Lng: lng}}, beam)

	beam, err = (&DataBeamRecord{ID: "1", Kind: "heatmap", Title: "H", CategoryName: "Air Pollution", Visualization: "heatmap", Area: &area}).ToDataBeam()
	require.NoError(t, err)
	assert.Equal(t, HeatmapData{ID: "1", Title: "H", Category: CategoryAirPollution, Area: "Area1"}, beam)

	_, err = (&DataBeamRecord{ID: "1", Kind: "marker", Visualization: "pins"}).ToDataBeam()
	assert.Error(t, err)

	_, err = (&DataBeamRecord{ID: "1", Kind: "polygon", Visualization: "pins"}).ToDataBeam()
	assert.Error(t, err)

	_, err = (&DataBeamRecord{ID: "1", Kind: "heatmap", Visualization: "bars"}).ToDataBeam()
	assert.Error(t, err)
}

func TestSentTimestamp_UnmarshalJSON(t *testing.T) {
	var e DrawPointEvent
	require.NoError(t, json.Unmarshal([]byte(`{"title":"a","position":{"lat":1,"lng":2},"timestamp_sent":1717171717171}`), &e))
	assert.Equal(t, SentTimestamp("1717171717171"), e.TimestampSent)

	require.NoError(t, json.Unmarshal([]byte(`{"timestamp_sent":"2024-05-31T10:00:00Z"}`), &e))
	assert.Equal(t, SentTimestamp("2024-05-31T10:00:00Z"), e.TimestampSent)

	require.NoError(t, json.Unmarshal([]byte(`{"timestamp_sent":null}`), &e))
	assert.Equal(t, SentTimestamp(""), e.TimestampSent)

	require.NoError(t, json.Unmarshal([]byte(`{"timestamp_sent":-1.5e3}`), &e))
	assert.Equal(t, SentTimestamp("-1.5e3"), e.TimestampSent)

	for _, raw := range []string{
		`{"timestamp_sent":{"x":1,"y":2}}`,
		`{"timestamp_sent":[1,2]}`,
		`{"timestamp_sent":true}`,
	} {
		assert.Error(t, json.Unmarshal([]byte(raw), &e), raw)
	}
}

func TestTopics(t *testing.T) {
	assert.Equal(t, "AndroidKotlinMapboxDrawPointReceive", ReceiveTopic(DefaultBaseTopic, TopicDrawPoint))
	assert.Equal(t, "AndroidKotlinMapboxMoveMapComplete", CompleteTopic(DefaultBaseTopic, TopicMoveMap))
	assert.Len(t, GetAllTopics(), 3)
}

func TestLatencyReport_CSV(t *testing.T) {
	r := &LatencyReport{TimestampSent: "123", Platform: DefaultPlatform, Topic: TopicDrawPointBatch, ElapsedNanos: 4567}
	assert.Equal(t, "123,Server,Go,orb,DrawPointBatch,0,0,4567", r.CSV())
}

func TestNewStyle(t *testing.T) {
	plain := NewStyle(false, "key")
	assert.False(t, plain.HasHeatmapLayer())
	assert.Empty(t, plain.Sources)

	heat := NewStyle(true, "secret")
	assert.True(t, heat.HasHeatmapLayer())
	require.Len(t, heat.Sources, 1)
	assert.Equal(t, "https://airquality.googleapis.com/v1/mapTypes/UAQI_RED_GREEN/heatmapTiles/{z}/{x}/{y}?key=secret", heat.Sources[0].Tiles[0])
	assert.Equal(t, 256, heat.Sources[0].TileSize)
	assert.Equal(t, 16, heat.Sources[0].MaxZoom)
	assert.Equal(t, 0.8, heat.Layers[0].Opacity)
}

func TestLatLng(t *testing.T) {
	p := Modena.ToPoint()
	assert.Equal(t, Modena.Lng, p.Lon())
	assert.Equal(t, Modena.Lat, p.Lat())
	assert.NoError(t, Modena.Validate())
	assert.Error(t, LatLng{Lat: 91}.Validate())
	assert.Error(t, LatLng{Lng: -181}.Validate())

	for _, l := range []LatLng{
		{Lat: math.NaN(), Lng: 10},
		{Lat: 44, Lng: math.NaN()},
		{Lat: math.Inf(1), Lng: 10},
		{Lat: 44, Lng: math.Inf(-1)},
	} {
		assert.Error(t, l.Validate(), l)
	}
	assert.True(t, IsFinite(0))
	assert.False(t, IsFinite(math.NaN()))
	assert.False(t, IsFinite(math.Inf(1)))
}
