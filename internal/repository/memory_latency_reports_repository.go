package repository

import (
	"context"
	"sync"

	"UrbanGuide-App/internal/domain/model"
	"UrbanGuide-App/internal/domain/repository"
)

// MemoryLatencyReportsRepository Firestoreを使わない場合の計測結果リポジトリ。
// 最大 capacity 件を保持し、超えた分は古いものから捨てる
type MemoryLatencyReportsRepository struct {
	mu       sync.RWMutex
	reports  []*model.LatencyReport
	capacity int
}

func NewMemoryLatencyReportsRepository(capacity int) repository.LatencyReportsRepository {
	if capacity <= 0 {
		capacity = 1000
	}
	return &MemoryLatencyReportsRepository{capacity: capacity}
}

func (r *MemoryLatencyReportsRepository) Save(ctx context.Context, report *model.LatencyReport) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *report
	r.reports = append(r.reports, &copied)
	if over := len(r.reports) - r.capacity; over > 0 {
		r.reports = append([]*model.LatencyReport(nil), r.reports[over:]...)
	}
	return nil
}

// GetByTopic 新しい順に返す
func (r *MemoryLatencyReportsRepository) GetByTopic(ctx context.Context, topic model.Topic, limit int) ([]*model.LatencyReport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*model.LatencyReport, 0)
	for i := len(r.reports) - 1; i >= 0; i-- {
		if topic != "" && r.reports[i].Topic != topic {
			continue
		}
		copied := *r.reports[i]
		result = append(result, &copied)
		if limit > 0 && len(result) >= limit {
			break
		}
	}
	return result, nil
}
