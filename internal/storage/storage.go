package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/flow-server/internal/config"
	"github.com/carson-networks/flow-server/internal/record"
	"github.com/carson-networks/flow-server/internal/storage/remote"
	"github.com/carson-networks/flow-server/internal/storage/sqlconfig"
	"github.com/carson-networks/flow-server/internal/storage/sqlite"
)

// RowStore is the raw row store: every derived view is computed from what Fetch returns.
type RowStore interface {
	Fetch(ctx context.Context) (*record.Snapshot, error)
	AppendTransaction(ctx context.Context, txn record.TransactionRecord) error
	// UpsertJournal replaces the row with the same canonical date, or appends one.
	UpsertJournal(ctx context.Context, entry record.JournalRecord) error
	Close() error
}

// Storage holds the configured row store.
type Storage struct {
	Rows RowStore
}

// NewStorage opens the backend selected by env.StoreBackend.
func NewStorage(env *config.Config) (*Storage, error) {
	backend, err := openBackend(env)
	if err != nil {
		return nil, err
	}
	logrus.WithField("backend", env.StoreBackend).Info("Storage.NewStorage.opened")
	return &Storage{Rows: Guard(backend)}, nil
}

func openBackend(env *config.Config) (RowStore, error) {
	loc, err := env.Location()
	if err != nil {
		return nil, err
	}

	switch env.StoreBackend {
	case config.BackendRemote:
		return remote.NewClient(env.StoreURL, env.StoreTimeout, loc), nil
	case config.BackendPostgres:
		return sqlconfig.Open(env.PostgresURL())
	case config.BackendSQLite:
		return sqlite.Open(env.SQLitePath)
	}
	return nil, fmt.Errorf("unknown store backend %q", env.StoreBackend)
}

// StoreError is the uniform failure result of a row store operation.
type StoreError struct {
	Op      string
	Message string
	err     error
}

func (e *StoreError) Error() string {
	return "store " + e.Op + ": " + e.Message
}

func (e *StoreError) Unwrap() error {
	return e.err
}

// IsStoreError reports whether err came from the row store.
func IsStoreError(err error) bool {
	var storeErr *StoreError
	return errors.As(err, &storeErr)
}

// Guard wraps a backend so every failure surfaces as a *StoreError.
func Guard(backend RowStore) RowStore {
	return &guardedStore{backend: backend}
}

type guardedStore struct {
	backend RowStore
}

func (g *guardedStore) Fetch(ctx context.Context) (*record.Snapshot, error) {
	defer logDuration("fetch")()
	snapshot, err := g.backend.Fetch(ctx)
	if err != nil {
		return nil, wrap("fetch", err)
	}
	if snapshot == nil {
		snapshot = &record.Snapshot{}
	}
	return snapshot, nil
}

func (g *guardedStore) AppendTransaction(ctx context.Context, txn record.TransactionRecord) error {
	defer logDuration("append_transaction")()
	return wrap("append_transaction", g.backend.AppendTransaction(ctx, txn))
}

func (g *guardedStore) UpsertJournal(ctx context.Context, entry record.JournalRecord) error {
	defer logDuration("update_journal")()
	return wrap("update_journal", g.backend.UpsertJournal(ctx, entry))
}

func (g *guardedStore) Close() error {
	return g.backend.Close()
}

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	var storeErr *StoreError
	if errors.As(err, &storeErr) {
		return err
	}
	return &StoreError{Op: op, Message: err.Error(), err: err}
}

func logDuration(op string) func() {
	start := time.Now()
	return func() {
		logrus.WithFields(logrus.Fields{
			"op":         op,
			"durationMs": time.Since(start).Milliseconds(),
		}).Debug("Storage.RowStore.call")
	}
}
