package history

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/btccrack27/ai-reels/internal/api"
	"github.com/btccrack27/ai-reels/internal/config"
)

//go:embed schema.sql
var schemaSQL string

// schemaVersion is the current cache schema version. Bump this when the
// schema changes; the cache is rebuilt from scratch on mismatch.
const schemaVersion = 1

// Store is the local cache of generated content backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the history cache database.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := filepath.Join(cfg.Paths.StateDir, "history.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the cache database location.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) initSchema(ctx context.Context) error {
	var tableExists int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	).Scan(&tableExists)
	if err != nil {
		return fmt.Errorf("check schema_version table: %w", err)
	}

	if tableExists == 0 {
		return s.createSchema(ctx)
	}

	var version int
	err = s.db.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version == schemaVersion {
		return nil
	}

	// The cache holds no authoritative data, so an old schema is dropped
	// and rebuilt instead of migrated.
	if _, err := s.db.ExecContext(ctx, "DROP TABLE IF EXISTS content_items"); err != nil {
		return fmt.Errorf("drop stale cache: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, "DROP TABLE IF EXISTS schema_version"); err != nil {
		return fmt.Errorf("drop stale schema version: %w", err)
	}
	return s.createSchema(ctx)
}

func (s *Store) createSchema(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO schema_version (version) VALUES (?)", schemaVersion); err != nil {
		return fmt.Errorf("record schema version: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema: %w", err)
	}
	return nil
}

// Record stores one generated result. Re-recording the same ID overwrites
// the earlier row, so replays stay idempotent.
func (s *Store) Record(ctx context.Context, id string, kind api.ContentKind, prompt, preview string, result any, createdAt time.Time) error {
	if id == "" {
		return errors.New("record content: id required")
	}
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	_, err = s.db.ExecContext(
		ctx,
		`INSERT INTO content_items (id, kind, prompt, preview, result_json, created_at)
         VALUES (?, ?, ?, ?, ?, ?)
         ON CONFLICT(id) DO UPDATE SET
             kind = excluded.kind,
             prompt = excluded.prompt,
             preview = excluded.preview,
             result_json = excluded.result_json,
             created_at = excluded.created_at`,
		id,
		string(kind),
		prompt,
		preview,
		string(resultJSON),
		createdAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert content item: %w", err)
	}
	return nil
}

// Recent returns cached items newest first, at most limit rows. A limit of
// zero or below returns everything.
func (s *Store) Recent(ctx context.Context, limit int) ([]api.ContentItem, error) {
	query := "SELECT id, kind, prompt, preview, created_at FROM content_items ORDER BY created_at DESC"
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query content items: %w", err)
	}
	defer rows.Close()

	items := make([]api.ContentItem, 0)
	for rows.Next() {
		var (
			item    api.ContentItem
			kind    string
			preview sql.NullString
			created string
		)
		if err := rows.Scan(&item.ID, &kind, &item.Prompt, &preview, &created); err != nil {
			return nil, fmt.Errorf("scan content item: %w", err)
		}
		item.Type = api.ContentKind(kind)
		item.Preview = preview.String
		if ts, parseErr := time.Parse(time.RFC3339Nano, created); parseErr == nil {
			item.CreatedAt = ts
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate content items: %w", err)
	}
	return items, nil
}

// Result returns the stored result payload for one item.
func (s *Store) Result(ctx context.Context, id string) (json.RawMessage, error) {
	var raw string
	err := s.db.QueryRowContext(ctx,
		"SELECT result_json FROM content_items WHERE id = ?", id,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("content item %s not cached", id)
	}
	if err != nil {
		return nil, fmt.Errorf("query result: %w", err)
	}
	return json.RawMessage(raw), nil
}
