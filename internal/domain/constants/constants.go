// Package constants defines configuration values shared across layers.
package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Backend providers for identity and document storage
const (
	BackendFirebase = "firebase"
	BackendLocal    = "local"
)

// Local document store drivers
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Inbox and rate limiter stores
const (
	StoreMemory   = "memory"
	StoreRedis    = "redis"
	StoreDatabase = "database"
)

// Mail providers
const (
	MailProviderSMTP = "smtp"
	MailProviderLog  = "log"
)
