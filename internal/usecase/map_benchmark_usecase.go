package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync/atomic"

	"UrbanGuide-App/internal/domain/model"
	"UrbanGuide-App/internal/domain/repository"
	"UrbanGuide-App/internal/domain/service"
)

type MapBenchmarkUseCase interface {
	// Subscribe 3つの受信トピックを購読する
	Subscribe(ctx context.Context) error
	// Run ctx がキャンセルされるまで受信イベントを到着順に処理する
	Run(ctx context.Context) error
	// Enqueue 受信メッセージをデコードして処理待ちに積む（MQTTハンドラーから呼ばれる）
	Enqueue(topic string, payload []byte)
	Stats() BenchmarkStats
}

// BenchmarkStats 処理件数の統計
type BenchmarkStats struct {
	Received  int64 `json:"received"`
	Processed int64 `json:"processed"`
	Dropped   int64 `json:"dropped"`
	Failed    int64 `json:"failed"`
}

type mapBenchmarkUseCaseImpl struct {
	subscriber repository.MessageSubscriber
	decoder    *service.EventDecoder
	events     *service.MapEventService
	baseTopic  string
	queue      chan model.MqttEvent

	received  atomic.Int64
	processed atomic.Int64
	dropped   atomic.Int64
	failed    atomic.Int64
}

// NewMapBenchmarkUseCase bufferSize は処理待ちイベントの上限。超えたイベントは破棄する
func NewMapBenchmarkUseCase(
	subscriber repository.MessageSubscriber,
	events *service.MapEventService,
	baseTopic string,
	bufferSize int,
) MapBenchmarkUseCase {
	if baseTopic == "" {
		baseTopic = model.DefaultBaseTopic
	}
	if bufferSize <= 0 {
		bufferSize = 256
	}
	return &mapBenchmarkUseCaseImpl{
		subscriber: subscriber,
		decoder:    service.NewEventDecoder(baseTopic),
		events:     events,
		baseTopic:  baseTopic,
		queue:      make(chan model.MqttEvent, bufferSize),
	}
}

func (u *mapBenchmarkUseCaseImpl) Subscribe(ctx context.Context) error {
	for _, topic := range model.GetAllTopics() {
		name := model.ReceiveTopic(u.baseTopic, topic)
		if err := u.subscriber.Subscribe(ctx, name, u.Enqueue); err != nil {
			return fmt.Errorf("ベンチマークトピックの購読に失敗: %w", err)
		}
	}
	return nil
}

// Enqueue MQTTクライアントのコールバックをブロックしないよう、キューが満杯なら破棄する
func (u *mapBenchmarkUseCaseImpl) Enqueue(topic string, payload []byte) {
	u.received.Add(1)

	event, err := u.decoder.Decode(topic, payload)
	if err != nil {
		u.failed.Add(1)
		if errors.Is(err, service.ErrUnknownTopic) {
			log.Printf("⚠️ 未対応のトピックを無視: %s", topic)
			return
		}
		log.Printf("❌ ペイロードのデコード失敗 (%s): %v", topic, err)
		return
	}

	select {
	case u.queue <- event:
	default:
		u.dropped.Add(1)
		log.Printf("⚠️ イベントキューが満杯のため破棄: %s", event.EventTopic())
	}
}

func (u *mapBenchmarkUseCaseImpl) Run(ctx context.Context) error {
	log.Printf("🚀 MQTTベンチマーク処理開始 (base topic: %s)", u.baseTopic)
	for {
		select {
		case <-ctx.Done():
			log.Printf("🛑 MQTTベンチマーク処理終了: %+v", u.Stats())
			return ctx.Err()
		case event := <-u.queue:
			if err := u.events.Handle(ctx, event); err != nil {
				u.failed.Add(1)
				log.Printf("❌ イベント処理失敗 (%s): %v", event.EventTopic(), err)
				continue
			}
			u.processed.Add(1)
		}
	}
}

func (u *mapBenchmarkUseCaseImpl) Stats() BenchmarkStats {
	return BenchmarkStats{
		Received:  u.received.Load(),
		Processed: u.processed.Load(),
		Dropped:   u.dropped.Load(),
		Failed:    u.failed.Load(),
	}
}
