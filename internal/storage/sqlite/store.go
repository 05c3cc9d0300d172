package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/stephenafamo/bob"
	_ "modernc.org/sqlite"

	"github.com/carson-networks/flow-server/internal/record"
)

// Store keeps the raw rows in an embedded SQLite database.
type Store struct {
	DB           *sql.DB
	Transactions ITransactionTable
	Journal      IJournalTable

	// SQLite allows one writer at a time.
	mu sync.Mutex
}

// Open opens (or creates) the database at path and creates the row tables.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}
	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	exec := bob.NewDB(db)
	logrus.WithField("path", path).Info("SQLiteStore.Open.opened")
	return &Store{
		DB:           db,
		Transactions: NewTransactionsTable(exec),
		Journal:      NewJournalTable(exec),
	}, nil
}

func migrate(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS transactions (
			seq          INTEGER PRIMARY KEY AUTOINCREMENT,
			id           TEXT NOT NULL UNIQUE,
			txn_date     TEXT NOT NULL,
			txn_type     TEXT NOT NULL,
			category     TEXT NOT NULL DEFAULT '',
			amount       TEXT,
			from_account TEXT NOT NULL DEFAULT '',
			to_account   TEXT NOT NULL DEFAULT '',
			notes        TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS journal (
			entry_date   TEXT PRIMARY KEY,
			text_entry   TEXT NOT NULL DEFAULT '',
			diet         INTEGER NOT NULL DEFAULT 0,
			fitness      INTEGER NOT NULL DEFAULT 0,
			productive   INTEGER NOT NULL DEFAULT 0,
			business     INTEGER NOT NULL DEFAULT 0,
			stock_market INTEGER NOT NULL DEFAULT 0,
			tech         INTEGER NOT NULL DEFAULT 0,
			md           INTEGER NOT NULL DEFAULT 0,
			mood         INTEGER NOT NULL DEFAULT 0,
			social       INTEGER NOT NULL DEFAULT 0
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) Fetch(ctx context.Context) (*record.Snapshot, error) {
	txRows, err := s.Transactions.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	journalRows, err := s.Journal.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list journal: %w", err)
	}

	snapshot := &record.Snapshot{
		Transactions: make([]record.TransactionRecord, len(txRows)),
		Journal:      make([]record.JournalRecord, len(journalRows)),
	}
	for i, row := range txRows {
		snapshot.Transactions[i] = transactionToRecord(row)
	}
	for i, row := range journalRows {
		snapshot.Journal[i] = journalToRecord(row)
	}
	return snapshot, nil
}

func (s *Store) AppendTransaction(ctx context.Context, txn record.TransactionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.Transactions.Insert(ctx, txn); err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

func (s *Store) UpsertJournal(ctx context.Context, entry record.JournalRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.Journal.Upsert(ctx, entry); err != nil {
		return fmt.Errorf("upsert journal: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	if s.DB == nil {
		return nil
	}
	return s.DB.Close()
}
