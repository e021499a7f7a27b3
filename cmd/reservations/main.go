package main

import (
	"tessera/internal/reservations/availability"
	"tessera/internal/reservations/catalog"
	"tessera/internal/reservations/eligibility"
	"tessera/internal/reservations/events"
	"tessera/internal/reservations/handler"
	"tessera/internal/reservations/lock"
	"tessera/internal/reservations/service"
	"tessera/internal/reservations/store"
	"tessera/internal/reservations/validator"
	"tessera/pkg/app"
	"tessera/pkg/config"
	"tessera/pkg/kafka"
	kafka_config "tessera/pkg/kafka/config"
)

const ServiceName = "reservations"

func main() {
	cfg := config.Load(ServiceName)

	cfg.Log.Info("Starting Reservations service")

	bookingStore := initStore(cfg)
	reservationService := initServices(cfg, bookingStore)

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(
		handler.NewReservationHandler(reservationService, cfg.Log),
		handler.NewHealthHandler(bookingStore, cfg.Log),
	)
	serverApp.Run()
}

func initStore(cfg *config.Config) store.Store {
	if cfg.StoreBackend == config.StoreBackendMongo {
		cfg.SetMongo()
		cfg.Log.Info("Booking store initialized", "backend", "mongo", "database", cfg.MongoDatabase)
		return store.NewMongoStore(cfg.Client.Mongo, cfg.MongoDatabase)
	}

	fileStore, err := store.NewFileStore(cfg.BookingsFile)
	if err != nil {
		cfg.Log.Fatal("Failed to load booking store", "file", cfg.BookingsFile, "error", err)
	}
	cfg.Log.Info("Booking store initialized", "backend", "file", "file", cfg.BookingsFile)
	return fileStore
}

// initServices builds the catalog, roster, lock table and service. The store
// and catalog are fully loaded before the server accepts any request.
func initServices(cfg *config.Config, bookingStore store.Store) service.ReservationService {
	cat, err := catalog.LoadFile(cfg.CatalogFile)
	if err != nil {
		cfg.Log.Fatal("Failed to load museum catalog", "file", cfg.CatalogFile, "error", err)
	}

	roster, err := eligibility.LoadFile(cfg.RosterFile)
	if err != nil {
		cfg.Log.Fatal("Failed to load personnel roster", "file", cfg.RosterFile, "error", err)
	}

	reservationService := service.NewReservationService(
		cat,
		roster,
		bookingStore,
		lock.NewTable(),
		availability.NewCalculator(cat),
		validator.NewReservationValidator(cfg.Log),
		initPublisher(cfg),
		cfg,
	)

	cfg.Log.Info("Reservation service initialized",
		"museums", len(cat.Museums()),
		"roster_size", roster.Size(),
	)
	return reservationService
}

// initPublisher wires the Kafka event publisher when enabled. A nil
// publisher is valid: event emission is skipped entirely.
func initPublisher(cfg *config.Config) *events.Publisher {
	if !cfg.KafkaEnabled {
		return nil
	}

	kafkaCfg, err := kafka_config.Load()
	if err != nil {
		cfg.Log.Fatal("Invalid Kafka configuration", "error", err)
	}

	producer, err := kafka.NewProducer(kafkaCfg, cfg.KafkaTopic)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka producer", "error", err)
	}

	cfg.Log.Info("Kafka event publishing enabled", "topic", cfg.KafkaTopic, "brokers", kafkaCfg.Brokers)
	return events.NewPublisher(producer, cfg.Log)
}
