package model

import (
	"fmt"
	"time"
)

// LatencyReport 1イベントの処理時間の計測結果
type LatencyReport struct {
	ID            string        `json:"id" firestore:"id"`
	TimestampSent SentTimestamp `json:"timestamp_sent" firestore:"timestamp_sent"`
	Platform      string        `json:"platform" firestore:"platform"`
	Topic         Topic         `json:"topic" firestore:"topic"`
	ElapsedNanos  int64         `json:"elapsed_ns" firestore:"elapsed_ns"`
	RecordedAt    time.Time     `json:"recorded_at" firestore:"recorded_at"`
}

// CSV 完了トピックに送信するペイロード
// 形式: <timestamp_sent>,<platform>,<topic>,0,0,<elapsed_ns>
func (r *LatencyReport) CSV() string {
	return fmt.Sprintf("%s,%s,%s,0,0,%d", r.TimestampSent, r.Platform, r.Topic, r.ElapsedNanos)
}
