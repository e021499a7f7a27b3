package config

import "time"

const (
	DefaultPort = "8080"

	DefaultCatalogFile  = "museum_tickets.json"
	DefaultRosterFile   = "oec_personnel.json"
	DefaultBookingsFile = "booking_records.json"

	StoreBackendFile  = "file"
	StoreBackendMongo = "mongo"

	DefaultStoreBackend     = StoreBackendFile
	DefaultMongoURI         = "mongodb://localhost:27017"
	DefaultMongoDatabase    = "tessera"
	DefaultMongoConnTimeout = 10 * time.Second

	DefaultLockTimeout = 5 * time.Second

	DefaultRateLimitRequests = 10
	DefaultRateLimitWindow   = 1 * time.Minute

	DefaultRequestTimeout = 30 * time.Second
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultCORSAllowedOrigin = "http://localhost:8080"

	DefaultKafkaEnabled = false
	DefaultKafkaTopic   = "reservations.confirmed"
)
