package sqlconfig

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/flow-server/internal/record"
)

// Store is a row store kept in Postgres. The schema comes from scripts/db_migrations.
type Store struct {
	DB           *sql.DB
	Transactions ITransactionTable
	Journal      IJournalTable
}

// Open connects to Postgres at connStr.
func Open(connStr string) (*Store, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	exec := bob.NewDB(db)
	return &Store{
		DB:           db,
		Transactions: NewTransactionsTable(exec),
		Journal:      NewJournalTable(exec),
	}, nil
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
	_, err := s.Transactions.Insert(ctx, txn)
	return err
}

func (s *Store) UpsertJournal(ctx context.Context, entry record.JournalRecord) error {
	return s.Journal.Upsert(ctx, entry)
}

func (s *Store) Close() error {
	if s.DB == nil {
		return nil
	}
	return s.DB.Close()
}
