// Package snapshot persists the last successfully fetched dataset for each
// dashboard panel, so a restart or a failed fetch still has something to
// show.
package snapshot

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/FransDroid/sentiment-analysis-project/internal/api"
	"github.com/FransDroid/sentiment-analysis-project/internal/trend"
)

// ErrNotFound is returned when no snapshot exists for a key.
var ErrNotFound = errors.New("snapshot not found")

type Store struct {
	readDB  *sql.DB
	writeDB *sql.DB
}

func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating snapshot dir: %w", err)
	}

	writeDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening write db: %w", err)
	}
	writeDB.SetMaxOpenConns(1)

	readDB, err := sql.Open("sqlite", dbPath+"?mode=ro")
	if err != nil {
		writeDB.Close()
		return nil, fmt.Errorf("opening read db: %w", err)
	}

	s := &Store{readDB: readDB, writeDB: writeDB}
	if err := s.init(); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) init() error {
	_, err := s.writeDB.Exec(`
		CREATE TABLE IF NOT EXISTS snapshots (
			key      TEXT PRIMARY KEY,
			payload  TEXT NOT NULL,
			saved_at DATETIME NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("initializing schema: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	var errs []error
	if s.readDB != nil {
		errs = append(errs, s.readDB.Close())
	}
	if s.writeDB != nil {
		errs = append(errs, s.writeDB.Close())
	}
	for _, e := range errs {
		if e != nil {
			return e
		}
	}
	return nil
}

func (s *Store) save(key string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding snapshot %s: %w", key, err)
	}
	_, err = s.writeDB.Exec(`
		INSERT INTO snapshots (key, payload, saved_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			payload = excluded.payload,
			saved_at = excluded.saved_at
	`, key, string(payload), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("saving snapshot %s: %w", key, err)
	}
	return nil
}

func (s *Store) load(key string, out any) (time.Time, error) {
	var (
		payload string
		savedAt time.Time
	)
	err := s.readDB.QueryRow("SELECT payload, saved_at FROM snapshots WHERE key = ?", key).Scan(&payload, &savedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, ErrNotFound
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("loading snapshot %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(payload), out); err != nil {
		return time.Time{}, fmt.Errorf("decoding snapshot %s: %w", key, err)
	}
	return savedAt, nil
}

func (s *Store) SaveSummary(v api.Summary) error { return s.save("summary", v) }

func (s *Store) LoadSummary() (api.Summary, time.Time, error) {
	var v api.Summary
	at, err := s.load("summary", &v)
	return v, at, err
}

func (s *Store) SaveTrend(points []trend.Point) error { return s.save("trend", points) }

func (s *Store) LoadTrend() ([]trend.Point, time.Time, error) {
	var v []trend.Point
	at, err := s.load("trend", &v)
	return v, at, err
}

func (s *Store) SaveOverview(v api.Overview) error { return s.save("overview", v) }

func (s *Store) LoadOverview() (api.Overview, time.Time, error) {
	var v api.Overview
	at, err := s.load("overview", &v)
	return v, at, err
}

func (s *Store) SavePosts(sentiment api.Sentiment, posts []api.Post) error {
	return s.save("posts:"+string(sentiment), posts)
}

func (s *Store) LoadPosts(sentiment api.Sentiment) ([]api.Post, time.Time, error) {
	var v []api.Post
	at, err := s.load("posts:"+string(sentiment), &v)
	return v, at, err
}

// Prune removes snapshots older than the retention period and reclaims
// disk space.
func (s *Store) Prune(olderThan time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-olderThan)
	res, err := s.writeDB.Exec("DELETE FROM snapshots WHERE saved_at < ?", cutoff)
	if err != nil {
		return 0, err
	}
	deleted, _ := res.RowsAffected()
	if deleted > 0 {
		s.writeDB.Exec("VACUUM")
	}
	return deleted, nil
}

// Stats returns the snapshot count and database file size.
func (s *Store) Stats(dbPath string) (int, int64, error) {
	var count int
	if err := s.readDB.QueryRow("SELECT COUNT(*) FROM snapshots").Scan(&count); err != nil {
		return 0, 0, err
	}
	info, err := os.Stat(dbPath)
	if err != nil {
		return count, 0, err
	}
	return count, info.Size(), nil
}
