package usecase

import (
	"context"
	"fmt"
	"log"

	"UrbanGuide-App/internal/domain/helper"
	"UrbanGuide-App/internal/domain/model"
	"UrbanGuide-App/internal/domain/repository"
	"UrbanGuide-App/internal/domain/service"
)

type MapDataUseCase interface {
	// GetData カテゴリに一致するデータを返す
	GetData(ctx context.Context, category model.Category) ([]model.DataBeam, error)
	// Categories 既知のカテゴリとデータソースに存在するカテゴリを件数付きで返す
	Categories(ctx context.Context) ([]CategorySummary, error)
	// ShowCategory カテゴリのデータを地図に読み込む
	ShowCategory(ctx context.Context, category model.Category) ([]model.DataBeam, error)
	// RandomLocations origin を中心に半径 radiusMeters 以内の座標を count 個生成する
	RandomLocations(origin model.LatLng, radiusMeters float64, count int) ([]model.LatLng, error)
	// LatencyReports 保存済みの計測結果
	LatencyReports(ctx context.Context, topic model.Topic, limit int) ([]*model.LatencyReport, error)
}

// CategorySummary カテゴリとそのデータ件数
type CategorySummary struct {
	Category model.Category `json:"category"`
	Count    int            `json:"count"`
}

type mapDataUseCaseImpl struct {
	dataRepo    repository.DataBeamsRepository
	reportsRepo repository.LatencyReportsRepository
	view        *service.MapView
}

const maxRandomLocations = 1000

func NewMapDataUseCase(dataRepo repository.DataBeamsRepository, reportsRepo repository.LatencyReportsRepository, view *service.MapView) MapDataUseCase {
	return &mapDataUseCaseImpl{
		dataRepo:    dataRepo,
		reportsRepo: reportsRepo,
		view:        view,
	}
}

func (u *mapDataUseCaseImpl) GetData(ctx context.Context, category model.Category) ([]model.DataBeam, error) {
	beams, err := u.dataRepo.GetData(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("データの取得に失敗: %w", err)
	}
	return beams, nil
}

func (u *mapDataUseCaseImpl) Categories(ctx context.Context) ([]CategorySummary, error) {
	beams, err := u.dataRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("データの取得に失敗: %w", err)
	}

	summaries := make([]CategorySummary, 0, len(model.GetAllCategories()))
	index := make(map[model.Category]int)
	for _, c := range model.GetAllCategories() {
		index[c] = len(summaries)
		summaries = append(summaries, CategorySummary{Category: c})
	}
	for _, b := range beams {
		c := b.GetCategory()
		i, ok := index[c]
		if !ok {
			i = len(summaries)
			index[c] = i
			summaries = append(summaries, CategorySummary{Category: c})
		}
		summaries[i].Count++
	}
	return summaries, nil
}

func (u *mapDataUseCaseImpl) ShowCategory(ctx context.Context, category model.Category) ([]model.DataBeam, error) {
	beams, err := u.GetData(ctx, category)
	if err != nil {
		return nil, err
	}

	u.view.LoadData(beams)
	log.Printf("📍 地図にデータを読み込み: %s/%s (%d件)", category.Name, category.Visualization, len(beams))
	return beams, nil
}

func (u *mapDataUseCaseImpl) RandomLocations(origin model.LatLng, radiusMeters float64, count int) ([]model.LatLng, error) {
	if err := origin.Validate(); err != nil {
		return nil, err
	}
	if !model.IsFinite(radiusMeters) || radiusMeters <= 0 {
		return nil, fmt.Errorf("半径は0より大きい値を指定してください: %f", radiusMeters)
	}
	if count < 1 || count > maxRandomLocations {
		return nil, fmt.Errorf("件数は1から%dの範囲で指定してください: %d", maxRandomLocations, count)
	}
	return helper.NewSampler(origin, radiusMeters).Take(count), nil
}

func (u *mapDataUseCaseImpl) LatencyReports(ctx context.Context, topic model.Topic, limit int) ([]*model.LatencyReport, error) {
	if u.reportsRepo == nil {
		return []*model.LatencyReport{}, nil
	}
	reports, err := u.reportsRepo.GetByTopic(ctx, topic, limit)
	if err != nil {
		return nil, fmt.Errorf("計測結果の取得に失敗: %w", err)
	}
	return reports, nil
}
