package repository

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"UrbanGuide-App/internal/domain/helper"
	"UrbanGuide-App/internal/domain/model"
)

func TestStaticDataBeamsRepository_GetData(t *testing.T) {
	repo := NewStaticDataBeamsRepository()
	ctx := context.Background()

	t.Run("Monuments は5件", func(t *testing.T) {
		beams, err := repo.GetData(ctx, model.Category{Name: "Monuments", Visualization: model.VisualizationPins})
		require.NoError(t, err)
		require.Len(t, beams, 5)
		for i, b := range beams {
			assert.Equal(t, "Monument "+string(rune('1'+i)), b.GetTitle())
			_, ok := b.(model.MarkerData)
			assert.True(t, ok)
		}
	})

	t.Run("Air Pollution は1件", func(t *testing.T) {
		beams, err := repo.GetData(ctx, model.Category{Name: "Air Pollution", Visualization: model.VisualizationHeatMap})
		require.NoError(t, err)
		require.Len(t, beams, 1)
		assert.Equal(t, model.HeatmapData{ID: "1", Title: "Air Pollution Heatmap", Category: model.CategoryAirPollution, Area: "Area1"}, beams[0])
	})

	t.Run("存在しないカテゴリは空", func(t *testing.T) {
		for _, c := range []model.Category{
			{Name: "Parks", Visualization: model.VisualizationPins},
			{Name: "Monuments", Visualization: model.VisualizationHeatMap},
			{Name: "Air Pollution", Visualization: model.VisualizationPins},
			{},
		} {
			beams, err := repo.GetData(ctx, c)
			require.NoError(t, err)
			assert.Empty(t, beams, c.Name)
		}
	})
}

func TestStaticDataBeamsRepository_SampleData(t *testing.T) {
	repo := NewStaticDataBeamsRepositoryWithSampler(
		helper.NewSamplerWithRand(model.Modena, model.DefaultRadiusMeters, rand.New(rand.NewSource(3))))

	all, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 6)

	// IDの重複は元データのまま保持する
	ids := make([]string, 0, len(all))
	for _, b := range all {
		ids = append(ids, b.GetID())
	}
	assert.Equal(t, []string{"1", "2", "2", "2", "2", "1"}, ids)

	for _, m := range helper.Markers(all) {
		assert.LessOrEqual(t, helper.DistanceMeters(model.Modena, m.Position), model.DefaultRadiusMeters+0.5)
	}
}

func TestStaticDataBeamsRepository_ResultsDoNotAlias(t *testing.T) {
	repo := NewStaticDataBeamsRepositoryWithSampler(helper.NewSampler(model.Modena, 100))
	ctx := context.Background()

	all, _ := repo.GetAll(ctx)
	all[0] = model.HeatmapData{ID: "x"}

	again, _ := repo.GetAll(ctx)
	assert.Equal(t, "Monument 1", again[0].GetTitle())

	monuments, _ := repo.GetData(ctx, model.CategoryMonuments)
	monuments[0] = nil
	monuments, _ = repo.GetData(ctx, model.CategoryMonuments)
	assert.NotNil(t, monuments[0])
}
