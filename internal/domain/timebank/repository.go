package timebank

import "context"

// DayLedgerRepository persists resolved day entries for downstream payroll.
// The engine itself never writes; the snapshot job does.
type DayLedgerRepository interface {
	// Upsert stores entry, replacing any previous snapshot of the same employee-day.
	Upsert(ctx context.Context, entry DayLedgerEntry) error

	// UpsertMany stores all entries in one transaction.
	UpsertMany(ctx context.Context, entries []DayLedgerEntry) error
}
