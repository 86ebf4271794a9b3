package repository

import (
	"context"

	"UrbanGuide-App/internal/domain/model"
)

// LatencyReportsRepository 計測結果の保存先
type LatencyReportsRepository interface {
	Save(ctx context.Context, report *model.LatencyReport) error
	// GetByTopic topic が空なら全件を返す
	GetByTopic(ctx context.Context, topic model.Topic, limit int) ([]*model.LatencyReport, error)
}
