package config

import (
	"books-api/internal/infrastructure/database"
)

// DBConfig converts the database section into the connection settings
// consumed by the infrastructure layer.
func (c *Config) DBConfig() *database.DBConfig {
	return &database.DBConfig{
		URL:               c.Database.URL,
		MaxConns:          int32(c.Database.MaxConns),
		MinConns:          int32(c.Database.MinConns),
		MaxConnLifetime:   c.Database.MaxConnLifetime,
		MaxConnIdleTime:   c.Database.MaxConnIdleTime,
		HealthCheckPeriod: c.Database.HealthCheckPeriod,
		MaxRetries:        c.Database.MaxRetries,
		RetryDelay:        c.Database.RetryDelay,
		ConnectTimeout:    c.Database.ConnectTimeout,
	}
}
