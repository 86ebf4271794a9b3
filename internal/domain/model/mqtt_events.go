package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// SentTimestamp 送信側が付与したタイムスタンプ。数値でも文字列でもそのまま保持する
type SentTimestamp string

// UnmarshalJSON 文字列ならクォートを外し、数値はJSONの表記のまま保持。
// オブジェクト・配列・真偽値はエラー
func (t *SentTimestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*t = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = SentTimestamp(strings.TrimSpace(s))
		return nil
	}
	if len(data) == 0 || (data[0] != '-' && (data[0] < '0' || data[0] > '9')) {
		return fmt.Errorf("timestamp_sent は文字列か数値で指定してください: %s", data)
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("timestamp_sent の数値が不正です: %w", err)
	}
	*t = SentTimestamp(n)
	return nil
}

// MqttEvent MQTTで受信したベンチマーク用イベント
type MqttEvent interface {
	EventTopic() Topic
	SentAt() SentTimestamp
}

// DrawPointEvent 1点のマーカー描画
type DrawPointEvent struct {
	Title         string        `json:"title"`
	Position      LatLng        `json:"position"`
	TimestampSent SentTimestamp `json:"timestamp_sent"`
}

func (e DrawPointEvent) EventTopic() Topic     { return TopicDrawPoint }
func (e DrawPointEvent) SentAt() SentTimestamp { return e.TimestampSent }

// DrawPointEventBatch 複数マーカーの一括描画
type DrawPointEventBatch struct {
	Events        []DrawPointEvent `json:"events"`
	TimestampSent SentTimestamp    `json:"timestamp_sent"`
}

func (e DrawPointEventBatch) EventTopic() Topic     { return TopicDrawPointBatch }
func (e DrawPointEventBatch) SentAt() SentTimestamp { return e.TimestampSent }

// MoveMapEvent カメラ移動
type MoveMapEvent struct {
	Position      LatLng        `json:"position"`
	TimestampSent SentTimestamp `json:"timestamp_sent"`
}

func (e MoveMapEvent) EventTopic() Topic     { return TopicMoveMap }
func (e MoveMapEvent) SentAt() SentTimestamp { return e.TimestampSent }
