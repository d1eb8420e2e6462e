package statestore

import (
	"errors"
	"strings"

	"github.com/lumenwell/lumen/internal/statestore/postgres"
	"github.com/lumenwell/lumen/internal/statestore/sqlite"
)

// IsPostgres reports whether config looks like a PostgreSQL connection
// string rather than a sqlite file path.
func IsPostgres(config string) bool {
	return strings.HasPrefix(config, "postgres://") || strings.HasPrefix(config, "postgresql://")
}

// HasEmbeddedCredentials reports whether a PostgreSQL connection string
// carries an inline password. Such strings are refused; credentials belong
// in the OS keyring, environment, or .pgpass.
func HasEmbeddedCredentials(connStr string) bool {
	ok, err := postgres.ValidateConnString(connStr)
	return !ok && errors.Is(err, postgres.ErrEmbeddedCredentials)
}

// New selects a backend from the config value: a PostgreSQL connection
// string, or a sqlite database path otherwise.
func New(config string) Provider {
	if IsPostgres(config) {
		return postgres.New(config)
	}
	return sqlite.NewStore(config)
}
