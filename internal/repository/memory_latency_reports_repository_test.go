package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"UrbanGuide-App/internal/domain/model"
)

func TestMemoryLatencyReportsRepository(t *testing.T) {
	repo := NewMemoryLatencyReportsRepository(3)
	ctx := context.Background()

	topics := []model.Topic{model.TopicDrawPoint, model.TopicMoveMap, model.TopicDrawPoint, model.TopicDrawPointBatch}
	for i, topic := range topics {
		require.NoError(t, repo.Save(ctx, &model.LatencyReport{ID: fmt.Sprint(i), Topic: topic, ElapsedNanos: int64(i)}))
	}

	all, err := repo.GetByTopic(ctx, "", 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "3", all[0].ID)
	assert.Equal(t, "1", all[2].ID)

	draw, err := repo.GetByTopic(ctx, model.TopicDrawPoint, 0)
	require.NoError(t, err)
	require.Len(t, draw, 1)
	assert.Equal(t, "2", draw[0].ID)

	limited, err := repo.GetByTopic(ctx, "", 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestMemoryLatencyReportsRepository_CopiesOnSave(t *testing.T) {
	repo := NewMemoryLatencyReportsRepository(0)
	ctx := context.Background()

	report := &model.LatencyReport{ID: "a", ElapsedNanos: 1}
	require.NoError(t, repo.Save(ctx, report))
	report.ElapsedNanos = 99

	got, _ := repo.GetByTopic(ctx, "", 0)
	require.Len(t, got, 1)
	assert.EqualValues(t, 1, got[0].ElapsedNanos)
}
