package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/carson-networks/flow-server/internal/habit"
	"github.com/carson-networks/flow-server/internal/operator/actions"
	"github.com/carson-networks/flow-server/internal/record"
)

var (
	ErrOutsideWriteWindow = errors.New("only today's journal entry can be saved")
	ErrInvalidDate        = errors.New("invalid date")
)

// JournalService handles journal and habit business logic.
type JournalService struct {
	workspace *Workspace
	processor actionProcessor
	now       func() time.Time
}

// NewJournalService creates a new JournalService.
func NewJournalService(ws *Workspace, processor actionProcessor, now func() time.Time) *JournalService {
	return &JournalService{workspace: ws, processor: processor, now: now}
}

// Today is the canonical date of the current day.
func (s *JournalService) Today() string {
	return record.FormatDate(s.now())
}

// CheckWriteWindow rejects any date other than today.
func CheckWriteWindow(date string, today time.Time) error {
	if record.DateKey(date) != record.FormatDate(today) {
		return ErrOutsideWriteWindow
	}
	return nil
}

// Journal returns every entry ordered by date.
func (s *JournalService) Journal() []record.JournalRecord {
	journal := s.workspace.View().Journal
	sort.SliceStable(journal, func(i, j int) bool {
		return record.DateKey(journal[i].Date) < record.DateKey(journal[j].Date)
	})
	return journal
}

// Entry returns the entry for date, or an empty entry when none exists.
func (s *JournalService) Entry(date string) (record.JournalRecord, bool, error) {
	key, err := record.CanonicalDate(date)
	if err != nil {
		return record.JournalRecord{}, false, ErrInvalidDate
	}
	for _, entry := range s.workspace.View().Journal {
		if record.DateKey(entry.Date) == key {
			entry.Date = key
			return entry, true, nil
		}
	}
	return record.EmptyJournalRecord(key), false, nil
}

// SaveEntry upserts today's entry, showing it immediately and writing it to the row store.
// Entries for any other date are rejected before the store is contacted.
func (s *JournalService) SaveEntry(ctx context.Context, entry record.JournalRecord) (record.JournalRecord, error) {
	key, err := record.CanonicalDate(entry.Date)
	if err != nil {
		return record.JournalRecord{}, ErrInvalidDate
	}
	entry.Date = key
	if err := CheckWriteWindow(key, s.now()); err != nil {
		return record.JournalRecord{}, err
	}

	staged := entry
	mutationID := s.workspace.stage(mutation{journal: &staged})

	if err := s.processor.Process(ctx, &actions.UpsertJournal{Entry: entry}); err != nil {
		s.workspace.discard(mutationID)
		return record.JournalRecord{}, err
	}
	s.workspace.confirm(mutationID)

	return entry, nil
}

// Streaks returns the current streak of every habit.
func (s *JournalService) Streaks() habit.Streaks {
	return habit.CurrentStreaks(s.workspace.View().Journal, s.now())
}

// Flow scores the entry for date.
func (s *JournalService) Flow(date string) (habit.FlowScore, error) {
	entry, _, err := s.Entry(date)
	if err != nil {
		return habit.FlowScore{}, err
	}
	return habit.Flow(entry.Habits), nil
}

// Calendar returns the yearly grid for one habit.
func (s *JournalService) Calendar(id record.HabitID, year int) habit.Calendar {
	return habit.YearCalendar(s.workspace.View().Journal, id, year)
}
