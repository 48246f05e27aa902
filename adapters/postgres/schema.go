package postgres

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS submissions (
		id UUID PRIMARY KEY,
		client_name TEXT NOT NULL DEFAULT '',
		client_email TEXT NOT NULL DEFAULT '',
		answers JSONB NOT NULL DEFAULT '{}'::jsonb,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS diagnoses (
		id UUID PRIMARY KEY,
		submission_id UUID NOT NULL REFERENCES submissions(id) ON DELETE CASCADE,
		track TEXT NOT NULL,
		primary_key TEXT NOT NULL,
		primary_name TEXT NOT NULL,
		primary_score INT NOT NULL,
		secondary_key TEXT,
		secondary_score INT,
		hourly_rate INT NOT NULL,
		waste_hours_min DOUBLE PRECISION NOT NULL,
		waste_hours_max DOUBLE PRECISION NOT NULL,
		annual_cost_low BIGINT NOT NULL,
		annual_cost_mid BIGINT NOT NULL,
		annual_cost_high BIGINT NOT NULL,
		turnover_cost BIGINT NOT NULL DEFAULT 0,
		team_idle_cost BIGINT NOT NULL DEFAULT 0,
		revenue_leakage BIGINT NOT NULL DEFAULT 0,
		growth_blocked BIGINT NOT NULL DEFAULT 0,
		trapped_scale INT NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_diagnoses_submission ON diagnoses(submission_id)`,
	`CREATE INDEX IF NOT EXISTS idx_diagnoses_created ON diagnoses(created_at DESC)`,
}

// Migrate creates the schema if it does not exist
func Migrate(db *sqlx.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("applying schema statement: %w", err)
		}
	}
	return nil
}

// Reset drops all tables and recreates the schema (development only)
func Reset(db *sqlx.DB) error {
	for _, table := range []string{"diagnoses", "submissions"} {
		if _, err := db.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE", table)); err != nil {
			return fmt.Errorf("dropping table %s: %w", table, err)
		}
	}
	return Migrate(db)
}
