package service

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/flow-server/internal/habit"
	"github.com/carson-networks/flow-server/internal/record"
	"github.com/carson-networks/flow-server/internal/storage"
)

// mutation is a local write applied over the authoritative rows until the first
// successful re-fetch after the write was confirmed replaces it.
type mutation struct {
	id          uint64
	transaction *record.TransactionRecord
	journal     *record.JournalRecord
	confirmed   bool
}

// WorkspaceStatus describes the loaded state.
type WorkspaceStatus struct {
	Loaded   bool
	LoadedAt time.Time
	Pending  int
}

// Workspace holds the rows of the last successful fetch plus pending local mutations.
// Derived views are always computed from View; nothing derived is cached.
type Workspace struct {
	store storage.RowStore
	now   func() time.Time

	mu            sync.RWMutex
	authoritative record.Snapshot
	pending       []mutation
	nextID        uint64
	loaded        bool
	loadedAt      time.Time
}

// NewWorkspace creates an empty Workspace over store.
func NewWorkspace(store storage.RowStore, now func() time.Time) *Workspace {
	return &Workspace{store: store, now: now}
}

// Refresh re-fetches the rows. On success they replace the authoritative snapshot and
// every confirmed mutation is dropped, since the store already holds it. Writes still in
// flight stay pending. On failure the previous view stays in place and the StoreError is
// returned.
func (w *Workspace) Refresh(ctx context.Context) error {
	snapshot, err := w.store.Fetch(ctx)
	if err != nil {
		logrus.WithError(err).Warn("Workspace.Refresh.keeping previous view")
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.authoritative = *snapshot
	w.loaded = true
	w.loadedAt = w.now()

	kept := w.pending[:0]
	for _, m := range w.pending {
		if !m.confirmed {
			kept = append(kept, m)
		}
	}
	w.pending = kept

	logrus.WithFields(logrus.Fields{
		"transactions": len(snapshot.Transactions),
		"journal":      len(snapshot.Journal),
		"pending":      len(w.pending),
	}).Info("Workspace.Refresh.Complete")
	return nil
}

// View returns the authoritative rows merged with pending mutations, in staging order.
func (w *Workspace) View() record.Snapshot {
	w.mu.RLock()
	defer w.mu.RUnlock()

	view := record.Snapshot{
		Transactions: append([]record.TransactionRecord(nil), w.authoritative.Transactions...),
		Journal:      append([]record.JournalRecord(nil), w.authoritative.Journal...),
	}
	for _, m := range w.pending {
		if m.transaction != nil {
			view.Transactions = append(view.Transactions, *m.transaction)
		}
		if m.journal != nil {
			view.Journal, _ = habit.Upsert(view.Journal, *m.journal)
		}
	}
	return view
}

// Status reports whether rows were ever loaded and how many mutations are pending.
func (w *Workspace) Status() WorkspaceStatus {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkspaceStatus{Loaded: w.loaded, LoadedAt: w.loadedAt, Pending: len(w.pending)}
}

func (w *Workspace) stage(m mutation) uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.nextID++
	m.id = w.nextID
	w.pending = append(w.pending, m)
	return m.id
}

func (w *Workspace) confirm(id uint64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for i := range w.pending {
		if w.pending[i].id == id {
			w.pending[i].confirmed = true
			return
		}
	}
}

func (w *Workspace) discard(id uint64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for i, m := range w.pending {
		if m.id == id {
			w.pending = append(w.pending[:i], w.pending[i+1:]...)
			return
		}
	}
}
