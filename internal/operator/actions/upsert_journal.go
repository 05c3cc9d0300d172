package actions

import (
	"context"

	"github.com/carson-networks/flow-server/internal/record"
	"github.com/carson-networks/flow-server/internal/storage"
)

type UpsertJournal struct {
	Entry record.JournalRecord
}

func (u *UpsertJournal) Name() string {
	return "UpsertJournal"
}

func (u *UpsertJournal) Perform(ctx context.Context, store storage.RowStore) error {
	return store.UpsertJournal(ctx, u.Entry)
}
