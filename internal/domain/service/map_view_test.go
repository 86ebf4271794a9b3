package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"UrbanGuide-App/internal/domain/model"
)

func TestPointAnnotationManager(t *testing.T) {
	m := NewPointAnnotationManager()
	a := m.Create(model.PointAnnotationOptions{Point: model.Modena, TextField: "one"})
	b := m.Create(model.PointAnnotationOptions{Point: model.Modena, TextField: "two"})

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, 2, m.Count())

	list := m.List()
	require.Len(t, list, 2)
	assert.Equal(t, "one", list[0].TextField)

	list[0].TextField = "changed"
	assert.Equal(t, "one", m.List()[0].TextField)

	m.DeleteAll()
	assert.Zero(t, m.Count())
	assert.Empty(t, m.List())
}

func TestMapView_CameraSubscription(t *testing.T) {
	v := NewMapView("key")
	assert.Equal(t, model.DefaultCamera(), v.Camera())

	var got []model.CameraOptions
	sub := v.SubscribeCameraChanged(func(c model.CameraOptions) {
		got = append(got, c)
	})

	target := model.CameraOptions{Center: model.LatLng{Lat: 45, Lng: 11}, Zoom: 12, Pitch: 0}
	v.SetCamera(target)
	require.Len(t, got, 1)
	assert.Equal(t, target, got[0])
	assert.Equal(t, target, v.Camera())

	sub.Cancel()
	sub.Cancel()
	v.SetCamera(model.DefaultCamera())
	assert.Len(t, got, 1)
}

func TestMapView_LoadData(t *testing.T) {
	v := NewMapView("secret")
	v.SetCamera(model.CameraOptions{Center: model.LatLng{Lat: 1, Lng: 1}})

	v.LoadData([]model.DataBeam{
		model.MarkerData{ID: "1", Title: "Monument 1", Category: model.CategoryMonuments, Position: model.Modena},
		model.MarkerData{ID: "2", Title: "Monument 2", Category: model.CategoryMonuments, Position: model.Modena},
	})
	assert.False(t, v.Style().HasHeatmapLayer())
	assert.Equal(t, model.DefaultCamera(), v.Camera())
	require.Equal(t, 2, v.Annotations().Count())
	assert.Equal(t, model.MarkerIconImage, v.Annotations().List()[0].IconImage)

	v.LoadData([]model.DataBeam{
		model.HeatmapData{ID: "1", Title: "Air", Category: model.CategoryAirPollution, Area: "Area1"},
	})
	assert.True(t, v.Style().HasHeatmapLayer())
	assert.Contains(t, v.Style().Sources[0].Tiles[0], "key=secret")
	assert.Zero(t, v.Annotations().Count())
}
