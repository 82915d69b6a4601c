package config

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const MenuScansTopic = "menu_scans"

type Config struct {
	HTTPAddr      string
	PublicBaseURL string

	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	RedisHost string
	RedisPort string

	KafkaBroker string

	MenuCacheTTL        time.Duration
	PreferencesCacheTTL time.Duration

	MenuSvcURL      string
	ProfileSvcURL   string
	AnalyticsSvcURL string

	LogLevel  string
	LogFormat string
}

// Load reads an optional YAML file named by DINEFINE_CONFIG and overlays
// environment variables on top of it.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path := os.Getenv("DINEFINE_CONFIG"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	cfg := &Config{
		HTTPAddr:            v.GetString("http_addr"),
		PublicBaseURL:       strings.TrimRight(v.GetString("public_base_url"), "/"),
		DBHost:              v.GetString("db_host"),
		DBPort:              v.GetString("db_port"),
		DBName:              v.GetString("db_name"),
		DBUser:              v.GetString("db_user"),
		DBPassword:          v.GetString("db_password"),
		DBSSLMode:           v.GetString("db_sslmode"),
		RedisHost:           v.GetString("redis_host"),
		RedisPort:           v.GetString("redis_port"),
		KafkaBroker:         v.GetString("kafka_broker"),
		MenuCacheTTL:        v.GetDuration("menu_cache_ttl"),
		PreferencesCacheTTL: v.GetDuration("preferences_cache_ttl"),
		MenuSvcURL:          v.GetString("menu_svc_url"),
		ProfileSvcURL:       v.GetString("profile_svc_url"),
		AnalyticsSvcURL:     v.GetString("analytics_svc_url"),
		LogLevel:            v.GetString("log_level"),
		LogFormat:           v.GetString("log_format"),
	}

	if cfg.MenuCacheTTL <= 0 || cfg.PreferencesCacheTTL <= 0 {
		return nil, fmt.Errorf("cache TTLs must be positive")
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("public_base_url", "http://localhost:8080")
	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_port", "5432")
	v.SetDefault("db_name", "dinefine")
	v.SetDefault("db_user", "postgres")
	v.SetDefault("db_password", "")
	v.SetDefault("db_sslmode", "disable")
	v.SetDefault("redis_host", "localhost")
	v.SetDefault("redis_port", "6379")
	v.SetDefault("kafka_broker", "localhost:9092")
	v.SetDefault("menu_cache_ttl", time.Hour)
	v.SetDefault("preferences_cache_ttl", 24*time.Hour)
	v.SetDefault("menu_svc_url", "http://localhost:8081")
	v.SetDefault("profile_svc_url", "http://localhost:8082")
	v.SetDefault("analytics_svc_url", "http://localhost:8083")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
}

// MustLoad is Load for service entry points.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		zap.Must(zap.NewProduction()).Sugar().Fatalf("Failed to load configuration: %v", err)
	}
	return cfg
}

// PostgresDSN builds a keyword/value connection string. Values are quoted so
// an empty or space-bearing value cannot shift the keys after it.
func (c *Config) PostgresDSN() string {
	pairs := []struct{ key, value string }{
		{"host", c.DBHost},
		{"port", c.DBPort},
		{"user", c.DBUser},
		{"password", c.DBPassword},
		{"dbname", c.DBName},
		{"sslmode", c.DBSSLMode},
	}
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, p.key+"='"+dsnQuoter.Replace(p.value)+"'")
	}
	return strings.Join(parts, " ")
}

var dsnQuoter = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

func (c *Config) RedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

// Addr returns the configured listen address or the service's default.
func (c *Config) Addr(fallback string) string {
	if c.HTTPAddr != "" {
		return c.HTTPAddr
	}
	return fallback
}

func MustInitPostgres(cfg *Config) *sql.DB {
	db, err := sql.Open("postgres", cfg.PostgresDSN())
	if err != nil {
		zap.S().Fatalf("Failed to connect to database: %v", err)
	}

	if err = db.Ping(); err != nil {
		zap.S().Fatalf("Failed to ping database: %v", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis(cfg *Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr(),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		zap.S().Fatalf("Failed to connect to Redis: %v", err)
	}

	return client
}

func NewKafkaReader(cfg *Config, topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{cfg.KafkaBroker},
		Topic:   topic,
		GroupID: groupID,
	})
}

func NewKafkaWriter(cfg *Config, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(cfg.KafkaBroker),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
}
