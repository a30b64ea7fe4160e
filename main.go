package main

import (
	"log"

	"jolof-kitchen/config"
	httpapi "jolof-kitchen/internal/api/http"
	"jolof-kitchen/internal/gateway"
	"jolof-kitchen/internal/service"
	"jolof-kitchen/internal/storage"
)

func main() {
	var store storage.SlotStore
	switch backend := config.StorageBackend(); backend {
	case "postgres":
		db := config.MustInitPostgres()
		defer db.Close()
		pg := storage.NewPostgresStore(db)
		if err := pg.EnsureSchema(); err != nil {
			log.Fatal("Failed to ensure schema:", err)
		}
		store = pg
	case "redis":
		store = storage.NewRedisStore(config.MustInitRedis())
	case "file":
		fs, err := storage.NewFileStore(config.DataDir())
		if err != nil {
			log.Fatal("Failed to open data directory:", err)
		}
		store = fs
	default:
		log.Fatalf("Unknown storage backend %q", backend)
	}

	gw := gateway.New(store)

	var events service.EventPublisher
	if config.KafkaBroker() != "" {
		events = storage.NewOrderEventPublisher(config.NewKafkaWriter("order-events"))
	}

	catalog := service.NewCatalogService(gw)
	orders := service.NewOrderService(gw, events)
	auth := service.NewAuthService(gw, config.AdminUser(), config.AdminPassword())
	qr := service.TrackingQRGenerator{BaseURL: config.PublicBaseURL()}

	handler := httpapi.NewHandler(catalog, orders, auth, qr)
	httpapi.StartServer(config.HTTPAddr(), httpapi.NewRouter(handler))
}
