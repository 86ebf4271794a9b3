package repository

import (
	"context"

	"UrbanGuide-App/internal/domain/helper"
	"UrbanGuide-App/internal/domain/model"
	"UrbanGuide-App/internal/domain/repository"
)

// StaticDataBeamsRepository プロセス内に固定のサンプルデータを保持するリポジトリ
type StaticDataBeamsRepository struct {
	db []model.DataBeam
}

// NewStaticDataBeamsRepository モデナ周辺のランダムな位置でサンプルデータを作成
func NewStaticDataBeamsRepository() repository.DataBeamsRepository {
	return NewStaticDataBeamsRepositoryWithSampler(helper.NewSampler(model.Modena, model.DefaultRadiusMeters))
}

// NewStaticDataBeamsRepositoryWithSampler マーカー位置の生成に sampler を使う
func NewStaticDataBeamsRepositoryWithSampler(sampler *helper.Sampler) *StaticDataBeamsRepository {
	return &StaticDataBeamsRepository{db: sampleData(sampler)}
}

// sampleData サンプルデータ。IDの重複（"2" が4件、"1" が2件）は元データのまま
func sampleData(sampler *helper.Sampler) []model.DataBeam {
	return []model.DataBeam{
		model.MarkerData{ID: "1", Title: "Monument 1", Category: model.CategoryMonuments, Position: sampler.Next()},
		model.MarkerData{ID: "2", Title: "Monument 2", Category: model.CategoryMonuments, Position: sampler.Next()},
		model.MarkerData{ID: "2", Title: "Monument 3", Category: model.CategoryMonuments, Position: sampler.Next()},
		model.MarkerData{ID: "2", Title: "Monument 4", Category: model.CategoryMonuments, Position: sampler.Next()},
		model.MarkerData{ID: "2", Title: "Monument 5", Category: model.CategoryMonuments, Position: sampler.Next()},
		model.HeatmapData{ID: "1", Title: "Air Pollution Heatmap", Category: model.CategoryAirPollution, Area: "Area1"},
	}
}

// GetData カテゴリでフィルタリング（エラーは返さない）
func (r *StaticDataBeamsRepository) GetData(ctx context.Context, category model.Category) ([]model.DataBeam, error) {
	return helper.FilterByCategory(r.db, category), nil
}

// GetAll 全データのコピーを返す
func (r *StaticDataBeamsRepository) GetAll(ctx context.Context) ([]model.DataBeam, error) {
	all := make([]model.DataBeam, len(r.db))
	copy(all, r.db)
	return all, nil
}
