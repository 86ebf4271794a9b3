package service

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"UrbanGuide-App/internal/domain/model"
	"UrbanGuide-App/internal/domain/repository"
)

const reportTimeout = 5 * time.Second

// MapEventService MQTTイベントを地図に反映し、処理時間を完了トピックに送信する
type MapEventService struct {
	view      *MapView
	publisher repository.MessagePublisher
	reports   repository.LatencyReportsRepository
	baseTopic string
	platform  string

	mu             sync.Mutex
	idleCancelable Cancelable
}

// NewMapEventService reports は nil でもよい（保存しない）
func NewMapEventService(view *MapView, publisher repository.MessagePublisher, reports repository.LatencyReportsRepository, baseTopic, platform string) *MapEventService {
	if baseTopic == "" {
		baseTopic = model.DefaultBaseTopic
	}
	if platform == "" {
		platform = model.DefaultPlatform
	}
	return &MapEventService{
		view:      view,
		publisher: publisher,
		reports:   reports,
		baseTopic: baseTopic,
		platform:  platform,
	}
}

// Handle イベントの種類に応じて地図を更新する
func (s *MapEventService) Handle(ctx context.Context, event model.MqttEvent) error {
	switch e := event.(type) {
	case model.DrawPointEvent:
		return s.handleDrawPoint(ctx, e)
	case model.DrawPointEventBatch:
		return s.handleDrawPointBatch(ctx, e)
	case model.MoveMapEvent:
		s.handleMoveMap(ctx, e)
		return nil
	}
	return fmt.Errorf("未対応のイベントです: %T", event)
}

func (s *MapEventService) handleDrawPoint(ctx context.Context, e model.DrawPointEvent) error {
	start := time.Now()
	s.createAnnotation(e)
	elapsed := time.Since(start)

	return s.report(ctx, model.TopicDrawPoint, e.TimestampSent, elapsed)
}

func (s *MapEventService) handleDrawPointBatch(ctx context.Context, e model.DrawPointEventBatch) error {
	start := time.Now()
	for _, ev := range e.Events {
		s.createAnnotation(ev)
	}
	elapsed := time.Since(start)

	return s.report(ctx, model.TopicDrawPointBatch, e.TimestampSent, elapsed)
}

// handleMoveMap 前回のカメラ購読を解除し、カメラ変更までの時間を計測する。
// 購読は次の MoveMap まで有効なので、以降のカメラ変更でも送信される
func (s *MapEventService) handleMoveMap(ctx context.Context, e model.MoveMapEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.idleCancelable != nil {
		s.idleCancelable.Cancel()
	}

	reportCtx := context.WithoutCancel(ctx)
	start := time.Now()
	s.idleCancelable = s.view.SubscribeCameraChanged(func(model.CameraOptions) {
		elapsed := time.Since(start)
		ctx, cancel := context.WithTimeout(reportCtx, reportTimeout)
		defer cancel()
		if err := s.report(ctx, model.TopicMoveMap, e.TimestampSent, elapsed); err != nil {
			log.Printf("❌ MoveMap report failed: %v", err)
		}
	})

	s.view.SetCamera(model.CameraOptions{
		Center: e.Position,
		Zoom:   model.DefaultZoom,
		Pitch:  model.DefaultPitch,
	})
}

func (s *MapEventService) createAnnotation(e model.DrawPointEvent) model.PointAnnotation {
	return s.view.Annotations().Create(model.PointAnnotationOptions{
		Point:     e.Position,
		TextField: e.Title,
		IconImage: model.MarkerIconImage,
	})
}

// report 計測結果を完了トピックに送信し、リポジトリがあれば保存する
func (s *MapEventService) report(ctx context.Context, topic model.Topic, sent model.SentTimestamp, elapsed time.Duration) error {
	r := &model.LatencyReport{
		ID:            uuid.New().String(),
		TimestampSent: sent,
		Platform:      s.platform,
		Topic:         topic,
		ElapsedNanos:  elapsed.Nanoseconds(),
		RecordedAt:    time.Now().UTC(),
	}
	payload := r.CSV()

	if err := s.publisher.Publish(ctx, model.CompleteTopic(s.baseTopic, topic), payload); err != nil {
		return fmt.Errorf("計測結果の送信失敗: %w", err)
	}
	log.Printf("Performance payload: %s", payload)

	if s.reports != nil {
		if err := s.reports.Save(ctx, r); err != nil {
			log.Printf("⚠️ 計測結果の保存失敗: %v", err)
		}
	}
	return nil
}
