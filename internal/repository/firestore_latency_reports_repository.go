package repository

import (
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"

	"UrbanGuide-App/internal/domain/model"
	"UrbanGuide-App/internal/domain/repository"
)

const latencyReportsCollection = "latencyReports"

// FirestoreLatencyReportsRepository Firestoreを使用した計測結果リポジトリ
type FirestoreLatencyReportsRepository struct {
	client *firestore.Client
}

func NewFirestoreLatencyReportsRepository(client *firestore.Client) repository.LatencyReportsRepository {
	return &FirestoreLatencyReportsRepository{
		client: client,
	}
}

// Save 計測結果を report.ID をドキュメントIDとして保存
func (r *FirestoreLatencyReportsRepository) Save(ctx context.Context, report *model.LatencyReport) error {
	_, err := r.client.Collection(latencyReportsCollection).Doc(report.ID).Set(ctx, report)
	if err != nil {
		log.Printf("❌ Failed to save latency report %s: %v", report.ID, err)
		return fmt.Errorf("計測結果の保存に失敗しました: %w", err)
	}
	return nil
}

// GetByTopic 新しい順に最大 limit 件を取得
func (r *FirestoreLatencyReportsRepository) GetByTopic(ctx context.Context, topic model.Topic, limit int) ([]*model.LatencyReport, error) {
	query := r.client.Collection(latencyReportsCollection).OrderBy("recorded_at", firestore.Desc)
	if topic != "" {
		query = r.client.Collection(latencyReportsCollection).
			Where("topic", "==", string(topic)).
			OrderBy("recorded_at", firestore.Desc)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("計測結果の取得に失敗しました: %w", err)
	}

	reports := make([]*model.LatencyReport, 0, len(docs))
	for _, doc := range docs {
		var report model.LatencyReport
		if err := doc.DataTo(&report); err != nil {
			return nil, fmt.Errorf("データの変換に失敗しました: %w", err)
		}
		reports = append(reports, &report)
	}
	return reports, nil
}
