// Package storage keeps a ledger of the matches played in this process.
// Uses the pure-Go modernc.org/sqlite driver with an in-memory database, so
// nothing outlives the process.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the in-memory SQLite ledger.
type Store struct {
	db *sql.DB
}

// MatchRecord is one finished match.
type MatchRecord struct {
	ID          int64
	Session     string
	Category    int
	Level       int
	PlayerScore int
	BotScore    int
	Won         bool
	EarnedXP    int
	EarnedCoins int
	Duration    time.Duration
	CreatedAt   time.Time
}

// Open creates an empty in-memory ledger and runs migrations.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session TEXT NOT NULL,
			category INTEGER NOT NULL,
			level INTEGER NOT NULL,
			player_score INTEGER NOT NULL,
			bot_score INTEGER NOT NULL,
			won INTEGER NOT NULL,
			earned_xp INTEGER NOT NULL DEFAULT 0,
			earned_coins INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_matches_session ON matches(session, id DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection and drops the ledger.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveMatch records a finished match for a session.
// Returns the ID of the inserted record.
func (s *Store) SaveMatch(r MatchRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO matches
		 (session, category, level, player_score, bot_score, won, earned_xp, earned_coins, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Session, r.Category, r.Level, r.PlayerScore, r.BotScore,
		r.Won, r.EarnedXP, r.EarnedCoins, r.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save match: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentMatches retrieves the latest matches of a session, newest first.
func (s *Store) RecentMatches(session string, limit int) ([]MatchRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, session, category, level, player_score, bot_score, won,
		        earned_xp, earned_coins, duration_ms, created_at
		 FROM matches
		 WHERE session = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		session, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var records []MatchRecord
	for rows.Next() {
		var r MatchRecord
		var durationMS int64
		var createdAt any
		if err := rows.Scan(
			&r.ID, &r.Session, &r.Category, &r.Level, &r.PlayerScore, &r.BotScore, &r.Won,
			&r.EarnedXP, &r.EarnedCoins, &durationMS, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationMS) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// SessionStats contains aggregated statistics for one session.
type SessionStats struct {
	Session       string
	Matches       int
	Wins          int
	PointsFor     int
	PointsAgainst int
	EarnedXP      int
	EarnedCoins   int
	PlayTime      time.Duration
	BestCategory  int
	BestLevel     int
}

// Losses returns the number of matches lost.
func (st SessionStats) Losses() int {
	return st.Matches - st.Wins
}

// GetSessionStats aggregates every match of a session. A session with no
// matches yields zero stats.
func (s *Store) GetSessionStats(session string) (*SessionStats, error) {
	stats := &SessionStats{Session: session}

	var playMS int64
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(won), 0),
		        COALESCE(SUM(player_score), 0), COALESCE(SUM(bot_score), 0),
		        COALESCE(SUM(earned_xp), 0), COALESCE(SUM(earned_coins), 0),
		        COALESCE(SUM(duration_ms), 0)
		 FROM matches WHERE session = ?`,
		session,
	).Scan(&stats.Matches, &stats.Wins, &stats.PointsFor, &stats.PointsAgainst,
		&stats.EarnedXP, &stats.EarnedCoins, &playMS)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get session stats: %w", err)
	}
	stats.PlayTime = time.Duration(playMS) * time.Millisecond

	// Best stage reached with a win.
	err = s.db.QueryRow(
		`SELECT category, level FROM matches
		 WHERE session = ? AND won = 1
		 ORDER BY category DESC, level DESC
		 LIMIT 1`,
		session,
	).Scan(&stats.BestCategory, &stats.BestLevel)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get best stage: %w", err)
	}

	return stats, nil
}

// ClearSession deletes every match of a session.
func (s *Store) ClearSession(session string) error {
	_, err := s.db.Exec("DELETE FROM matches WHERE session = ?", session)
	if err != nil {
		return fmt.Errorf("storage: cannot clear session: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
