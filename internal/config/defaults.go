package config

import "time"

const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "go-pii-keeper",
			TokenDuration: 24 * time.Hour,
		},
		KDF: KDF{
			Time:    1,
			Memory:  64 * 1024,
			Threads: 4,
		},
		Storage: Storage{
			DB: DB{Driver: DriverPostgres},
		},
		Server: Server{
			HTTPAddress:     "localhost:8080",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Workers: Workers{
			SessionSweepInterval: 10 * time.Minute,
		},
		Log: Log{Level: "info"},
	}
}
