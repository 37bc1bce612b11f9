package config

type Config struct {
	Environment Environment
	Log         Log
	Database    Database
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level string `env:"LOG_LEVEL" envDefault:"warn"`
}

type Database struct {
	// URL is a MySQL DSN. When empty the store falls back to SQLite.
	URL        string `env:"DATABASE_URL"`
	SQLitePath string `env:"SQLITE_PATH" envDefault:"store.db"`

	// BusyTimeoutMS bounds how long a writer waits for the SQLite lock
	// before the operation fails with a timeout.
	BusyTimeoutMS int `env:"DB_BUSY_TIMEOUT_MS" envDefault:"5000"`
}
