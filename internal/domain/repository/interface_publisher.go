package repository

import "context"

// MessagePublisher 完了通知の送信先（MQTTクライアントが実装する）
type MessagePublisher interface {
	Publish(ctx context.Context, topic string, payload string) error
}

// MessageHandler 受信メッセージのハンドラー
type MessageHandler func(topic string, payload []byte)

// MessageSubscriber トピック購読（MQTTクライアントが実装する）
type MessageSubscriber interface {
	Subscribe(ctx context.Context, topic string, handler MessageHandler) error
}
