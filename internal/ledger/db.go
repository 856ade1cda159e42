// Package ledger provides SQLite-backed storage for the front office's
// negotiation history. The negotiation engine itself runs in memory; callers
// record rounds, events, and signings here after the fact.
package ledger

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/frontoffice/internal/contract"
	"github.com/talgya/frontoffice/internal/negotiation"
)

// DB wraps a SQLite connection for negotiation history storage.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS rounds (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		player_id TEXT NOT NULL,
		round INTEGER NOT NULL,
		offer_id TEXT NOT NULL,
		years INTEGER NOT NULL,
		total_value INTEGER NOT NULL,
		apy INTEGER NOT NULL,
		guaranteed INTEGER NOT NULL,
		outcome TEXT NOT NULL,
		mood TEXT NOT NULL,
		agent_leverage REAL NOT NULL,
		user_leverage REAL NOT NULL,
		created_at INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		player_id TEXT NOT NULL,
		round INTEGER NOT NULL,
		kind TEXT NOT NULL,
		detail TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS signings (
		player_id TEXT PRIMARY KEY,
		player_name TEXT NOT NULL,
		offer_id TEXT NOT NULL,
		years INTEGER NOT NULL,
		total_value INTEGER NOT NULL,
		guaranteed INTEGER NOT NULL,
		signed_round INTEGER NOT NULL,
		signed_at INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_rounds_player ON rounds(player_id);
	CREATE INDEX IF NOT EXISTS idx_events_player ON events(player_id);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// RoundRecord is one evaluated offer as stored.
type RoundRecord struct {
	PlayerID      string         `db:"player_id"`
	Round         int            `db:"round"`
	OfferID       string         `db:"offer_id"`
	Years         int            `db:"years"`
	TotalValue    contract.Money `db:"total_value"`
	APY           contract.Money `db:"apy"`
	Guaranteed    contract.Money `db:"guaranteed"`
	Outcome       string         `db:"outcome"`
	Mood          string         `db:"mood"`
	AgentLeverage float64        `db:"agent_leverage"`
	UserLeverage  float64        `db:"user_leverage"`
	CreatedAt     int64          `db:"created_at"`
}

// EventRecord is one table event as stored.
type EventRecord struct {
	PlayerID string `db:"player_id"`
	Round    int    `db:"round"`
	Kind     string `db:"kind"`
	Detail   string `db:"detail"`
}

// SigningRecord is one closed deal as stored.
type SigningRecord struct {
	PlayerID    string         `db:"player_id"`
	PlayerName  string         `db:"player_name"`
	OfferID     string         `db:"offer_id"`
	Years       int            `db:"years"`
	TotalValue  contract.Money `db:"total_value"`
	Guaranteed  contract.Money `db:"guaranteed"`
	SignedRound int            `db:"signed_round"`
	SignedAt    int64          `db:"signed_at"`
}

// RecordRound appends one evaluated offer and any events it triggered.
func (db *DB) RecordRound(s *negotiation.Session, offer contract.Offer, resp negotiation.Response) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`INSERT INTO rounds
		(player_id, round, offer_id, years, total_value, apy, guaranteed,
		 outcome, mood, agent_leverage, user_leverage, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.Player.ID, s.Round, offer.ID, offer.Years,
		contract.TotalValue(offer), contract.AveragePerYear(offer), offer.GuaranteedMoney,
		resp.Outcome.String(), resp.NewMood.String(),
		s.Leverage.Agent, s.Leverage.User, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("insert round for %s: %w", s.Player.ID, err)
	}

	for _, e := range resp.Events {
		_, err := tx.Exec(
			"INSERT INTO events (player_id, round, kind, detail) VALUES (?, ?, ?, ?)",
			s.Player.ID, e.Round, e.Kind.String(), e.Detail,
		)
		if err != nil {
			return fmt.Errorf("insert event for %s: %w", s.Player.ID, err)
		}
	}

	return tx.Commit()
}

// RecordSigning stores the final terms of an accepted deal.
func (db *DB) RecordSigning(s *negotiation.Session, offer contract.Offer) error {
	_, err := db.conn.Exec(`INSERT OR REPLACE INTO signings
		(player_id, player_name, offer_id, years, total_value, guaranteed, signed_round, signed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		s.Player.ID, s.Player.Name, offer.ID, offer.Years,
		contract.TotalValue(offer), offer.GuaranteedMoney, s.Round, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("insert signing for %s: %w", s.Player.ID, err)
	}
	slog.Info("signing recorded",
		"player", s.Player.Name,
		"years", offer.Years,
		"total", contract.TotalValue(offer).String(),
	)
	return nil
}

// History returns a player's rounds, oldest first.
func (db *DB) History(playerID string) ([]RoundRecord, error) {
	var rounds []RoundRecord
	err := db.conn.Select(&rounds, `SELECT
		player_id, round, offer_id, years, total_value, apy, guaranteed,
		outcome, mood, agent_leverage, user_leverage, created_at
		FROM rounds WHERE player_id = ? ORDER BY id`, playerID)
	return rounds, err
}

// RecentEvents returns the most recent N table events across all sessions.
func (db *DB) RecentEvents(limit int) ([]EventRecord, error) {
	var events []EventRecord
	err := db.conn.Select(&events,
		"SELECT player_id, round, kind, detail FROM events ORDER BY id DESC LIMIT ?",
		limit,
	)
	return events, err
}

// Signings returns every closed deal.
func (db *DB) Signings() ([]SigningRecord, error) {
	var signings []SigningRecord
	err := db.conn.Select(&signings,
		`SELECT player_id, player_name, offer_id, years, total_value,
		 guaranteed, signed_round, signed_at FROM signings ORDER BY signed_at`)
	return signings, err
}
