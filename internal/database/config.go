package database

import "fmt"

// Config holds database connection configuration.
type Config struct {
	// Driver specifies which database to use: "sqlite" or "postgres".
	Driver string `yaml:"driver"`

	// SQLitePath is the database file path when Driver is "sqlite".
	SQLitePath string `yaml:"sqlite_path"`

	// Postgres holds the connection settings when Driver is "postgres".
	Postgres PostgresConfig `yaml:"postgres"`
}

// PostgresConfig holds PostgreSQL-specific configuration.
type PostgresConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"sslmode"`
}

// DefaultConfig returns a Config with SQLite defaults.
func DefaultConfig(sqlitePath string) Config {
	return Config{
		Driver:     "sqlite",
		SQLitePath: sqlitePath,
		Postgres: PostgresConfig{
			Host:    "localhost",
			Port:    5432,
			SSLMode: "disable",
		},
	}
}

// DialectType returns the dialect the config selects.
func (c Config) DialectType() DialectType {
	if c.Driver == string(DialectPostgres) {
		return DialectPostgres
	}
	return DialectSQLite
}

// DSN returns the driver-specific data source name.
func (c Config) DSN() string {
	if c.DialectType() == DialectPostgres {
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			c.Postgres.Host, c.Postgres.Port, c.Postgres.User,
			c.Postgres.Password, c.Postgres.Database, c.Postgres.SSLMode)
	}
	return c.SQLitePath
}
