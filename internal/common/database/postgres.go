// internal/common/database/postgres.go
package database

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"time"

	"github.com/lib/pq"

	"tribunal-workers/internal/common/config"
)

var identifierPattern = regexp.MustCompile(`^[a-z_][a-z0-9_]{0,62}$`)

// PostgresClient wraps the SQL database connection
type PostgresClient struct {
	DB *sql.DB
}

// NewPostgres opens a pooled connection; it does not dial until first use.
func NewPostgres(cfg config.PostgresConfig) (*PostgresClient, error) {
	db, err := sql.Open("postgres", cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxConnections)
	db.SetMaxIdleConns(cfg.MaxIdle)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(5 * time.Minute)

	return &PostgresClient{DB: db}, nil
}

func (c *PostgresClient) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}

func (c *PostgresClient) Close() error {
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}

// ValidateIdentifier rejects table names that would need quoting.
func ValidateIdentifier(name string) error {
	if !identifierPattern.MatchString(name) {
		return fmt.Errorf("invalid sql identifier %q", name)
	}
	return nil
}

// MigrateAuditTable creates the decision outcome audit table and its case
// index when they do not exist.
func MigrateAuditTable(ctx context.Context, db *sql.DB, table string) error {
	if err := ValidateIdentifier(table); err != nil {
		return err
	}

	quoted := pq.QuoteIdentifier(table)
	statements := []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	id UUID PRIMARY KEY,
	evaluation_id TEXT NOT NULL UNIQUE,
	case_id TEXT NOT NULL,
	benefit TEXT NOT NULL,
	generated BOOLEAN NOT NULL,
	valid BOOLEAN NOT NULL,
	points_total INTEGER NOT NULL,
	points_condition_id TEXT,
	outcome_condition_id TEXT,
	award TEXT,
	scenario TEXT,
	entitled BOOLEAN NOT NULL DEFAULT FALSE,
	validation_errors JSONB NOT NULL DEFAULT '[]',
	result JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`, quoted),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s ON %s (case_id, created_at DESC)`, pq.QuoteIdentifier(table+"_case_id_idx"), quoted),
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate %s: %w", table, err)
		}
	}
	return nil
}
