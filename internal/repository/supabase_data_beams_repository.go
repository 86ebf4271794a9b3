package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"UrbanGuide-App/internal/domain/model"
	"UrbanGuide-App/internal/domain/repository"
	"UrbanGuide-App/internal/infrastructure/database"
)

type SupabaseDataBeamsRepository struct {
	client *database.SupabaseClient
}

func NewSupabaseDataBeamsRepository(client *database.SupabaseClient) repository.DataBeamsRepository {
	return &SupabaseDataBeamsRepository{
		client: client,
	}
}

func (r *SupabaseDataBeamsRepository) GetData(ctx context.Context, category model.Category) ([]model.DataBeam, error) {
	data, _, err := r.client.GetClient().From("data_beams").
		Select("*", "exact", false).
		Eq("category_name", category.Name).
		Eq("visualization", string(category.Visualization)).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("カテゴリ別データの取得失敗: %w", err)
	}

	return decodeDataBeamRecords(data)
}

func (r *SupabaseDataBeamsRepository) GetAll(ctx context.Context) ([]model.DataBeam, error) {
	data, _, err := r.client.GetClient().From("data_beams").Select("*", "exact", false).Execute()
	if err != nil {
		return nil, fmt.Errorf("データの取得失敗: %w", err)
	}

	return decodeDataBeamRecords(data)
}

// decodeDataBeamRecords PostgRESTのJSONレスポンスを position 順の DataBeam に変換
func decodeDataBeamRecords(data []byte) ([]model.DataBeam, error) {
	var records []model.DataBeamRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("データのJSONアンマーシャル失敗: %w", err)
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Position < records[j].Position
	})

	beams := make([]model.DataBeam, 0, len(records))
	for i := range records {
		beam, err := records[i].ToDataBeam()
		if err != nil {
			return nil, fmt.Errorf("データ %s の変換失敗: %w", records[i].ID, err)
		}
		beams = append(beams, beam)
	}
	return beams, nil
}
