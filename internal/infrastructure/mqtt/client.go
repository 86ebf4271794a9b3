package mqtt

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"

	"UrbanGuide-App/internal/domain/repository"
)

// Options MQTTクライアントの接続設定
type Options struct {
	BrokerURL      string
	ClientID       string
	QoS            byte
	ConnectTimeout time.Duration
}

// Client paho.mqtt.golang のラッパー。再接続時に購読を復元する
type Client struct {
	client paho.Client
	qos    byte

	mu            sync.Mutex
	subscriptions map[string]repository.MessageHandler
}

var _ repository.MessagePublisher = (*Client)(nil)
var _ repository.MessageSubscriber = (*Client)(nil)

// NewClient 新しいMQTTクライアントを作成（接続は Connect で行う）
func NewClient(opts Options) *Client {
	if opts.ClientID == "" {
		opts.ClientID = "urbanguide-" + uuid.New().String()
	}
	if opts.ConnectTimeout <= 0 {
		opts.ConnectTimeout = 10 * time.Second
	}

	c := &Client{
		qos:           opts.QoS,
		subscriptions: make(map[string]repository.MessageHandler),
	}

	pahoOpts := paho.NewClientOptions().
		AddBroker(opts.BrokerURL).
		SetClientID(opts.ClientID).
		SetAutoReconnect(true).
		SetConnectTimeout(opts.ConnectTimeout).
		SetOrderMatters(true).
		SetOnConnectHandler(c.onConnect).
		SetConnectionLostHandler(func(_ paho.Client, err error) {
			log.Printf("⚠️ MQTT connection lost: %v", err)
		})

	c.client = paho.NewClient(pahoOpts)
	return c
}

// Connect ブローカーに接続する
func (c *Client) Connect(ctx context.Context) error {
	if err := wait(ctx, c.client.Connect()); err != nil {
		return fmt.Errorf("MQTTブローカーへの接続に失敗: %w", err)
	}
	log.Printf("✅ MQTT connected")
	return nil
}

// IsConnected 接続状態
func (c *Client) IsConnected() bool {
	return c.client.IsConnected()
}

// Subscribe トピックを購読する
// 成功した購読のみ再接続時の復元対象になる
func (c *Client) Subscribe(ctx context.Context, topic string, handler repository.MessageHandler) error {
	if err := wait(ctx, c.client.Subscribe(topic, c.qos, wrap(handler))); err != nil {
		return fmt.Errorf("トピック %s の購読に失敗: %w", topic, err)
	}

	c.mu.Lock()
	c.subscriptions[topic] = handler
	c.mu.Unlock()
	log.Printf("📡 MQTT subscribed: %s", topic)
	return nil
}

// Publish メッセージを送信する
func (c *Client) Publish(ctx context.Context, topic string, payload string) error {
	if err := wait(ctx, c.client.Publish(topic, c.qos, false, payload)); err != nil {
		return fmt.Errorf("トピック %s への送信に失敗: %w", topic, err)
	}
	return nil
}

// Close 切断する
func (c *Client) Close() {
	c.client.Disconnect(250)
	log.Printf("👋 MQTT disconnected")
}

// onConnect 再接続時にクリーンセッションで失われた購読を復元
func (c *Client) onConnect(client paho.Client) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for topic, handler := range c.subscriptions {
		token := client.Subscribe(topic, c.qos, wrap(handler))
		go func(topic string, token paho.Token) {
			if token.Wait() && token.Error() != nil {
				log.Printf("❌ MQTT resubscribe failed: %s: %v", topic, token.Error())
			}
		}(topic, token)
	}
}

func wrap(handler repository.MessageHandler) paho.MessageHandler {
	return func(_ paho.Client, msg paho.Message) {
		handler(msg.Topic(), msg.Payload())
	}
}

func wait(ctx context.Context, token paho.Token) error {
	select {
	case <-token.Done():
		return token.Error()
	case <-ctx.Done():
		return ctx.Err()
	}
}
