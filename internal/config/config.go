package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"UrbanGuide-App/internal/domain/model"
	"UrbanGuide-App/internal/infrastructure/database"
)

// DataSource データ取得元
const (
	DataSourceStatic   = "static"
	DataSourcePostgres = "postgres"
	DataSourceSupabase = "supabase"
)

// Config アプリケーション設定
type Config struct {
	Port string

	MQTTBrokerURL string
	MQTTClientID  string
	MQTTBaseTopic string
	MQTTQoS       byte
	EventBuffer   int

	MapsAPIKey string
	Platform   string

	DataSource         string
	DatabaseURL        string
	SupabaseURL        string
	SupabaseAnonKey    string
	SupabaseDBPassword string

	FirestoreProjectID    string
	GoogleCredentialsFile string
	ReportRetention       int
}

// Load .env があれば読み込み、環境変数から設定を作成する
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		log.Printf("⚠️ .env file not found, using system environment variables")
	}
	return FromEnv()
}

// FromEnv 環境変数のみから設定を作成する
func FromEnv() (*Config, error) {
	qos, err := getInt("MQTT_QOS", 0)
	if err != nil {
		return nil, err
	}
	if qos < 0 || qos > 2 {
		return nil, fmt.Errorf("MQTT_QOSは0から2の範囲で指定してください: %d", qos)
	}

	eventBuffer, err := getInt("EVENT_BUFFER", 256)
	if err != nil {
		return nil, err
	}
	retention, err := getInt("REPORT_RETENTION", 1000)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:                  getEnv("PORT", ":8080"),
		MQTTBrokerURL:         getEnv("MQTT_BROKER_URL", "tcp://localhost:1883"),
		MQTTClientID:          os.Getenv("MQTT_CLIENT_ID"),
		MQTTBaseTopic:         getEnv("MQTT_BASE_TOPIC", model.DefaultBaseTopic),
		MQTTQoS:               byte(qos),
		EventBuffer:           eventBuffer,
		MapsAPIKey:            os.Getenv("MAPS_API_KEY"),
		Platform:              getEnv("BENCHMARK_PLATFORM", model.DefaultPlatform),
		DataSource:            getEnv("DATA_SOURCE", DataSourceStatic),
		DatabaseURL:           os.Getenv("DATABASE_URL"),
		SupabaseURL:           os.Getenv("SUPABASE_URL"),
		SupabaseAnonKey:       os.Getenv("SUPABASE_ANON_KEY"),
		SupabaseDBPassword:    os.Getenv("SUPABASE_DB_PASSWORD"),
		FirestoreProjectID:    os.Getenv("FIRESTORE_PROJECT_ID"),
		GoogleCredentialsFile: os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		ReportRetention:       retention,
	}

	if cfg.Port[0] != ':' {
		cfg.Port = ":" + cfg.Port
	}

	switch cfg.DataSource {
	case DataSourceStatic, DataSourcePostgres, DataSourceSupabase:
	default:
		return nil, fmt.Errorf("DATA_SOURCEはstatic|postgres|supabaseのいずれかを指定してください: %q", cfg.DataSource)
	}

	return cfg, nil
}

// PostgresDSN DATABASE_URL があればそれを、なければSupabaseの接続情報から構築する
func (c *Config) PostgresDSN() (string, error) {
	if c.DatabaseURL != "" {
		return c.DatabaseURL, nil
	}
	return database.BuildSupabaseDSN(c.SupabaseURL, c.SupabaseDBPassword)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%sの値が不正です: %q: %w", key, v, err)
	}
	return n, nil
}
