package config

import (
	"context"
	"database/sql"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// StorageBackend selects the slot store: "file" (default), "postgres" or
// "redis".
func StorageBackend() string {
	return envOr("STORAGE_BACKEND", "file")
}

func DataDir() string {
	return envOr("DATA_DIR", "./data")
}

func HTTPAddr() string {
	return envOr("HTTP_ADDR", ":8080")
}

// PublicBaseURL is what tracking QR codes point at.
func PublicBaseURL() string {
	return envOr("PUBLIC_BASE_URL", "http://localhost:8080")
}

func AdminUser() string {
	return envOr("ADMIN_USER", "admin")
}

func AdminPassword() string {
	return envOr("ADMIN_PASSWORD", "admin123")
}

// KafkaBroker is empty when no broker is configured; order events are then
// skipped.
func KafkaBroker() string {
	return os.Getenv("KAFKA_BROKER")
}

func MustInitPostgres() *sql.DB {
	connStr := "host=" + os.Getenv("DB_HOST") + " port=" + os.Getenv("DB_PORT") +
		" user=" + os.Getenv("DB_USER") + " password=" + os.Getenv("DB_PASSWORD") +
		" dbname=" + os.Getenv("DB_NAME") + " sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err = db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis() *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: os.Getenv("REDIS_HOST") + ":" + os.Getenv("REDIS_PORT"),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	return client
}

func NewKafkaWriter(topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(KafkaBroker()),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
}
