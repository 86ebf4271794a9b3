package model

// Topic ベンチマーク用MQTTトピックの種類
type Topic string

const (
	TopicDrawPoint      Topic = "DrawPoint"
	TopicDrawPointBatch Topic = "DrawPointBatch"
	TopicMoveMap        Topic = "MoveMap"
)

// DefaultBaseTopic 全トピック共通のプレフィックス
const DefaultBaseTopic = "AndroidKotlinMapbox"

// DefaultPlatform 計測結果に付与するプラットフォーム識別子
const DefaultPlatform = "Server,Go,orb"

// 地図表示の定数
const (
	DefaultZoom         = 15.0
	DefaultPitch        = 30.0
	DefaultRadiusMeters = 500.0
	MarkerIconImage     = "mapbox_marker_icon_20px_blue"
)

// GetAllTopics 購読対象のトピック一覧
func GetAllTopics() []Topic {
	return []Topic{
		TopicDrawPoint,
		TopicDrawPointBatch,
		TopicMoveMap,
	}
}

// ReceiveTopic 受信トピック名（例: AndroidKotlinMapboxDrawPointReceive）
func ReceiveTopic(base string, topic Topic) string {
	return base + string(topic) + "Receive"
}

// CompleteTopic 完了通知トピック名
func CompleteTopic(base string, topic Topic) string {
	return base + string(topic) + "Complete"
}
