package env

const (
	EnvHttpPort = "HTTP_PORT"

	EnvDatabaseHost     = "DB_HOST"
	EnvDatabasePort     = "DB_PORT"
	EnvDatabaseUser     = "DB_USER"
	EnvDatabasePassword = "DB_PASSWORD"
	EnvDatabaseName     = "DB_NAME"
	EnvDatabaseSSL      = "DB_SSL"

	EnvJwtSecret      = "JWT_SECRET"
	EnvMigrateOnStart = "MIGRATE_ON_START"
	EnvLogFormat      = "LOG_FORMAT"
)
