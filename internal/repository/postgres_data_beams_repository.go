package repository

import (
	"context"
	"database/sql"
	"fmt"

	"UrbanGuide-App/internal/domain/model"
	"UrbanGuide-App/internal/domain/repository"
	"UrbanGuide-App/internal/infrastructure/database"
)

type PostgresDataBeamsRepository struct {
	client *database.PostgreSQLClient
}

func NewPostgresDataBeamsRepository(client *database.PostgreSQLClient) repository.DataBeamsRepository {
	return &PostgresDataBeamsRepository{
		client: client,
	}
}

const dataBeamColumns = `id, kind, title, category_name, visualization, lat, lng, area, position`

func (r *PostgresDataBeamsRepository) GetData(ctx context.Context, category model.Category) ([]model.DataBeam, error) {
	query := `SELECT ` + dataBeamColumns + ` FROM data_beams WHERE category_name = $1 AND visualization = $2 ORDER BY position`

	rows, err := r.client.DB.QueryContext(ctx, query, category.Name, string(category.Visualization))
	if err != nil {
		return nil, fmt.Errorf("カテゴリ別データの取得失敗: %w", err)
	}
	defer rows.Close()

	return scanDataBeams(rows)
}

func (r *PostgresDataBeamsRepository) GetAll(ctx context.Context) ([]model.DataBeam, error) {
	query := `SELECT ` + dataBeamColumns + ` FROM data_beams ORDER BY position`

	rows, err := r.client.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("データの取得失敗: %w", err)
	}
	defer rows.Close()

	return scanDataBeams(rows)
}

func scanDataBeams(rows *sql.Rows) ([]model.DataBeam, error) {
	beams := make([]model.DataBeam, 0)
	for rows.Next() {
		var (
			rec      model.DataBeamRecord
			lat, lng sql.NullFloat64
			area     sql.NullString
		)
		if err := rows.Scan(&rec.ID, &rec.Kind, &rec.Title, &rec.CategoryName, &rec.Visualization,
			&lat, &lng, &area, &rec.Position); err != nil {
			return nil, fmt.Errorf("行データの読み取り失敗: %w", err)
		}
		if lat.Valid {
			rec.Lat = &lat.Float64
		}
		if lng.Valid {
			rec.Lng = &lng.Float64
		}
		if area.Valid {
			rec.Area = &area.String
		}

		beam, err := rec.ToDataBeam()
		if err != nil {
			return nil, fmt.Errorf("データ %s の変換失敗: %w", rec.ID, err)
		}
		beams = append(beams, beam)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("行の走査中にエラー: %w", err)
	}
	return beams, nil
}
