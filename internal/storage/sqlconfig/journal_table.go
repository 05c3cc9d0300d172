package sqlconfig

import (
	"context"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/flow-server/internal/record"
)

const journalTable = "journal"

var _ IJournalTable = (*JournalTable)(nil)

type JournalTable struct {
	exec bob.Executor
}

func NewJournalTable(exec bob.Executor) *JournalTable {
	return &JournalTable{exec: exec}
}

// Upsert inserts the entry or overwrites every column of the row with the same date.
func (t *JournalTable) Upsert(ctx context.Context, entry record.JournalRecord) error {
	columns := []string{"entry_date", "text_entry"}
	values := []any{record.DateKey(entry.Date), entry.Text}
	for _, id := range record.HabitIDs() {
		columns = append(columns, habitColumns[id])
		values = append(values, int16(entry.Habits.Get(id)))
	}

	q := psql.Insert(
		im.Into(journalTable, columns...),
		im.Values(psql.Arg(values...)),
		im.OnConflict("entry_date").DoUpdate(
			im.SetExcluded(columns[1:]...),
		),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}

// List returns every journal row ordered by date.
func (t *JournalTable) List(ctx context.Context) ([]*JournalEntry, error) {
	columns := []any{"entry_date", "text_entry"}
	for _, c := range habitColumns {
		columns = append(columns, c)
	}

	q := psql.Select(
		sm.Columns(columns...),
		sm.From(journalTable),
		sm.OrderBy("entry_date").Asc(),
	)
	return bob.All(ctx, t.exec, q, scan.StructMapper[*JournalEntry]())
}
