package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"UrbanGuide-App/internal/domain/model"
)

var (
	ErrUnknownTopic   = errors.New("unknown topic")
	ErrInvalidPayload = errors.New("invalid payload")
)

// EventDecoder 受信トピックとペイロードから MqttEvent を復元する
type EventDecoder struct {
	baseTopic string
}

func NewEventDecoder(baseTopic string) *EventDecoder {
	return &EventDecoder{baseTopic: baseTopic}
}

// 受信時のJSON表現。位置の欠落を検出するためポインタで受ける
type drawPointPayload struct {
	Title         string              `json:"title"`
	Position      *model.LatLng       `json:"position"`
	TimestampSent model.SentTimestamp `json:"timestamp_sent"`
}

type drawPointBatchPayload struct {
	Events        []drawPointPayload  `json:"events"`
	TimestampSent model.SentTimestamp `json:"timestamp_sent"`
}

type moveMapPayload struct {
	Position      *model.LatLng       `json:"position"`
	TimestampSent model.SentTimestamp `json:"timestamp_sent"`
}

// TopicOf 受信トピック名から Topic を判定
func (d *EventDecoder) TopicOf(topic string) (model.Topic, error) {
	for _, t := range model.GetAllTopics() {
		if topic == model.ReceiveTopic(d.baseTopic, t) {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownTopic, topic)
}

// Decode ペイロードをトピックに対応するイベントに変換
func (d *EventDecoder) Decode(topic string, payload []byte) (model.MqttEvent, error) {
	t, err := d.TopicOf(topic)
	if err != nil {
		return nil, err
	}

	switch t {
	case model.TopicDrawPoint:
		var p drawPointPayload
		if err := json.Unmarshal(payload, &p); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
		}
		return p.toEvent()

	case model.TopicDrawPointBatch:
		var p drawPointBatchPayload
		if err := json.Unmarshal(payload, &p); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
		}
		events := make([]model.DrawPointEvent, 0, len(p.Events))
		for i, e := range p.Events {
			ev, err := e.toEvent()
			if err != nil {
				return nil, fmt.Errorf("events[%d]: %w", i, err)
			}
			events = append(events, ev)
		}
		return model.DrawPointEventBatch{Events: events, TimestampSent: p.TimestampSent}, nil

	case model.TopicMoveMap:
		var p moveMapPayload
		if err := json.Unmarshal(payload, &p); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
		}
		if p.Position == nil {
			return nil, fmt.Errorf("%w: position is required", ErrInvalidPayload)
		}
		if err := p.Position.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
		}
		return model.MoveMapEvent{Position: *p.Position, TimestampSent: p.TimestampSent}, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownTopic, topic)
}

func (p drawPointPayload) toEvent() (model.DrawPointEvent, error) {
	if p.Position == nil {
		return model.DrawPointEvent{}, fmt.Errorf("%w: position is required", ErrInvalidPayload)
	}
	if err := p.Position.Validate(); err != nil {
		return model.DrawPointEvent{}, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return model.DrawPointEvent{
		Title:         strings.TrimSpace(p.Title),
		Position:      *p.Position,
		TimestampSent: p.TimestampSent,
	}, nil
}
