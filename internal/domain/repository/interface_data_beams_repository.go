package repository

import (
	"context"

	"UrbanGuide-App/internal/domain/model"
)

// DataBeamsRepository 地図に表示するデータの取得元
type DataBeamsRepository interface {
	// GetData カテゴリが一致するデータを登録順に返す。該当なしは空スライス
	GetData(ctx context.Context, category model.Category) ([]model.DataBeam, error)
	GetAll(ctx context.Context) ([]model.DataBeam, error)
}
