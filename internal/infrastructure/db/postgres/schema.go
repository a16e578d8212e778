package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS internships (
  id UUID PRIMARY KEY,
  company_name VARCHAR(255) NOT NULL,
  job_description TEXT NOT NULL,
  url VARCHAR(500) NOT NULL,
  created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS internships_url_unique ON internships (url)`,
	`CREATE INDEX IF NOT EXISTS idx_internships_created_at ON internships (created_at DESC)`,

	`CREATE TABLE IF NOT EXISTS events (
  id TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  date TEXT NOT NULL,
  time TEXT NOT NULL,
  location TEXT NOT NULL,
  description TEXT NOT NULL,
  details TEXT NOT NULL,
  host TEXT NOT NULL,
  price TEXT NOT NULL,
  registration_link TEXT NOT NULL,
  tags TEXT[] NOT NULL DEFAULT '{}',
  ends_at TIMESTAMPTZ,
  created_by TEXT,
  created_by_email TEXT,
  deleted_at TIMESTAMPTZ,
  deleted_by TEXT,
  created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`,
	`CREATE INDEX IF NOT EXISTS idx_events_deleted_at ON events (deleted_at)`,
	`CREATE INDEX IF NOT EXISTS idx_events_created_by ON events (created_by)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS events_registration_link_live_unique
  ON events (registration_link) WHERE deleted_at IS NULL`,

	`CREATE TABLE IF NOT EXISTS fluency_questions (
  id BIGSERIAL PRIMARY KEY,
  question TEXT NOT NULL,
  options JSONB NOT NULL,
  correct_answer INT NOT NULL,
  type VARCHAR(20) NOT NULL CHECK (type IN ('true-false', 'multiple-choice')),
  category VARCHAR(100) NOT NULL DEFAULT 'general',
  difficulty VARCHAR(10) NOT NULL DEFAULT 'medium' CHECK (difficulty IN ('easy', 'medium', 'hard')),
  is_active BOOLEAN NOT NULL DEFAULT TRUE,
  created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`,
	`CREATE INDEX IF NOT EXISTS idx_fluency_questions_active ON fluency_questions (is_active, category)`,

	`CREATE TABLE IF NOT EXISTS user_fluency_test_results (
  id BIGSERIAL PRIMARY KEY,
  user_sub TEXT NOT NULL,
  score INT NOT NULL,
  total_questions INT NOT NULL,
  percentage DECIMAL(5,2) NOT NULL,
  level VARCHAR(50) NOT NULL,
  completed_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`,
	`CREATE INDEX IF NOT EXISTS idx_fluency_results_user ON user_fluency_test_results (user_sub, completed_at DESC)`,

	`CREATE TABLE IF NOT EXISTS users (
  auth0_id TEXT PRIMARY KEY,
  role TEXT NOT NULL DEFAULT 'student'
)`,
}

// EnsureSchema applies the idempotent DDL. Safe to run on every start.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for i, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("schema statement %d: %w", i, err)
		}
	}
	return nil
}
