package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// FileName is the database file inside the config directory.
const FileName = "trades.db"

// DB wraps the SQLite trade history database.
type DB struct {
	db   *sql.DB
	path string
}

// Open opens (or creates) the trade database in dir.
func Open(dir string) (*DB, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	return openPath(filepath.Join(dir, FileName))
}

func openPath(dbPath string) (*DB, error) {
	sqlDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := sqlDB.Exec("PRAGMA journal_mode=WAL"); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}
	s := &DB{db: sqlDB, path: dbPath}
	if err := s.migrate(); err != nil {
		sqlDB.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the database.
func (s *DB) Close() error {
	return s.db.Close()
}

// Path returns the path to the database file.
func (s *DB) Path() string {
	return s.path
}

func (s *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS trades (
		id INTEGER PRIMARY KEY,
		state TEXT NOT NULL,
		is_buy INTEGER NOT NULL DEFAULT 0,
		created_at INTEGER NOT NULL,
		btc_amount TEXT NOT NULL DEFAULT '0',
		fiat_amount TEXT NOT NULL DEFAULT '0',
		fiat_currency TEXT NOT NULL DEFAULT '',
		fee TEXT NOT NULL DEFAULT '0',
		bank_account_number TEXT NOT NULL DEFAULT '',
		subscription_id INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS subscriptions (
		id INTEGER PRIMARY KEY,
		frequency TEXT NOT NULL DEFAULT '',
		end_time INTEGER,
		is_active INTEGER NOT NULL DEFAULT 1
	);

	CREATE INDEX IF NOT EXISTS idx_trades_created ON trades(created_at);
	CREATE INDEX IF NOT EXISTS idx_trades_subscription ON trades(subscription_id);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}
