package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/kuza-analytics/metrics-gateway/services/gateway/common"
	_ "github.com/mattn/go-sqlite3"
	logger "github.com/multiversx/mx-chain-logger-go"
)

const createdAtLayout = time.RFC3339Nano

var log = logger.GetOrCreate("storage")

// sqliteStorage is the sqlite implementation of the append-only message log
type sqliteStorage struct {
	db    *sql.DB
	mutDB sync.Mutex
}

// NewSQLiteStorage creates the database and the messages schema if absent
func NewSQLiteStorage(dbPath string) (*sqliteStorage, error) {
	err := prepareDirectories(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create initial empty DB file: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// a single connection keeps commit order equal to arrival order and :memory: usable
	db.SetMaxOpenConns(1)

	err = createSchema(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	log.Debug("message store opened", "path", dbPath)

	return &sqliteStorage{
		db: db,
	}, nil
}

func prepareDirectories(dbPath string) error {
	return os.MkdirAll(filepath.Dir(dbPath), os.ModePerm)
}

func createSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS messages (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		code       INTEGER,
		title      TEXT,
		body       TEXT,
		created_at TEXT
	);
	`

	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// SaveMessage appends a message and returns the stored record
func (s *sqliteStorage) SaveMessage(ctx context.Context, code int, title string, body string, createdAt time.Time) (*common.MessageRecord, error) {
	s.mutDB.Lock()
	defer s.mutDB.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Debug("failed to begin transaction", "code", code, "error", err)
		return nil, common.NewDataAccessError(err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO messages (code, title, body, created_at)
		VALUES (?, ?, ?, ?)
	`, code, title, body, createdAt.Format(createdAtLayout))
	if err != nil {
		log.Debug("failed to insert message", "code", code, "error", err)
		return nil, common.NewDataAccessError(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, common.NewDataAccessError(err)
	}

	err = tx.Commit()
	if err != nil {
		return nil, common.NewDataAccessError(err)
	}

	return &common.MessageRecord{
		ID:        id,
		Code:      code,
		Title:     title,
		Body:      body,
		CreatedAt: createdAt,
	}, nil
}

// GetMessages returns every stored message in insertion order
func (s *sqliteStorage) GetMessages(ctx context.Context) ([]common.MessageRecord, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, code, title, body, created_at FROM messages ORDER BY id")
	if err != nil {
		return nil, common.NewDataAccessError(err)
	}
	defer func() {
		_ = rows.Close()
	}()

	results := make([]common.MessageRecord, 0)
	for rows.Next() {
		var record common.MessageRecord
		var createdAt string

		err = rows.Scan(&record.ID, &record.Code, &record.Title, &record.Body, &createdAt)
		if err != nil {
			return nil, common.NewDataAccessError(err)
		}

		record.CreatedAt, err = time.Parse(createdAtLayout, createdAt)
		if err != nil {
			return nil, fmt.Errorf("invalid created_at for message %d: %w", record.ID, err)
		}

		results = append(results, record)
	}

	return results, common.NewDataAccessError(rows.Err())
}

// Close closes the database
func (s *sqliteStorage) Close() error {
	return s.db.Close()
}

// IsInterfaceNil returns true if the value under the interface is nil
func (s *sqliteStorage) IsInterfaceNil() bool {
	return s == nil
}
