// Package audit keeps a local log of completed moderation decisions in
// SQLite, so prior submissions can be reviewed without the backend.
package audit

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"cerberus/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS audit_log (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	audit_id TEXT UNIQUE NOT NULL,
	user_id TEXT NOT NULL,
	content_preview TEXT,
	content_type TEXT NOT NULL,
	risk_score REAL NOT NULL,
	risk_level TEXT NOT NULL,
	recommendation TEXT NOT NULL,
	actions_taken TEXT NOT NULL,
	summary TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);`

// Store is the SQLite-backed decision log.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the audit database at path. Use
// ":memory:" for an ephemeral store.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open audit db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init audit schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Record inserts one decision. A missing audit id (the backend may not
// return one) gets a locally generated UUID so the row stays unique.
func (s *Store) Record(ctx context.Context, rec *models.AuditRecord) error {
	if rec.AuditID == "" {
		rec.AuditID = uuid.NewString()
	}
	if rec.UserID == "" {
		rec.UserID = "anonymous"
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}

	actions, err := json.Marshal(rec.Actions)
	if err != nil {
		return fmt.Errorf("encode actions: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO audit_log (
			audit_id, user_id, content_preview, content_type,
			risk_score, risk_level, recommendation, actions_taken,
			summary, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.AuditID, rec.UserID, rec.ContentPreview, rec.ContentType,
		rec.RiskScore, rec.RiskLevel, rec.Recommendation, string(actions),
		rec.Summary, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit record: %w", err)
	}
	return nil
}

// Recent returns up to limit decisions, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]models.AuditRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, audit_id, user_id, content_preview, content_type,
		       risk_score, risk_level, recommendation, actions_taken,
		       summary, created_at
		FROM audit_log
		ORDER BY created_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query audit log: %w", err)
	}
	defer rows.Close()

	var records []models.AuditRecord
	for rows.Next() {
		var rec models.AuditRecord
		var actions string
		if err := rows.Scan(
			&rec.ID, &rec.AuditID, &rec.UserID, &rec.ContentPreview,
			&rec.ContentType, &rec.RiskScore, &rec.RiskLevel,
			&rec.Recommendation, &actions, &rec.Summary, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan audit record: %w", err)
		}
		if actions != "" {
			if err := json.Unmarshal([]byte(actions), &rec.Actions); err != nil {
				return nil, fmt.Errorf("decode actions: %w", err)
			}
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
