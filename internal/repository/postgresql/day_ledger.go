package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/timebank"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/database"
)

type dayLedgerRepositoryImpl struct {
	db database.TxQuerier
}

func NewDayLedgerRepository(db database.TxQuerier) timebank.DayLedgerRepository {
	return &dayLedgerRepositoryImpl{db: db}
}

const upsertDayLedgerQuery = `
	INSERT INTO day_ledgers (
		employee_id, ledger_date, expected_hours, worked_hours, overtime_hours,
		overtime_hours_tier1, overtime_hours_tier2, owed_hours, notes, computed_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
	ON CONFLICT (employee_id, ledger_date) DO UPDATE SET
		expected_hours = EXCLUDED.expected_hours,
		worked_hours = EXCLUDED.worked_hours,
		overtime_hours = EXCLUDED.overtime_hours,
		overtime_hours_tier1 = EXCLUDED.overtime_hours_tier1,
		overtime_hours_tier2 = EXCLUDED.overtime_hours_tier2,
		owed_hours = EXCLUDED.owed_hours,
		notes = EXCLUDED.notes,
		computed_at = NOW()
`

// Upsert implements timebank.DayLedgerRepository.
func (r *dayLedgerRepositoryImpl) Upsert(ctx context.Context, entry timebank.DayLedgerEntry) error {
	q := GetQuerier(ctx, r.db)

	notes := entry.Notes
	if notes == nil {
		notes = []string{}
	}

	_, err := q.Exec(ctx, upsertDayLedgerQuery,
		entry.EmployeeID,
		entry.Date.StartOfDay().Stored(),
		entry.ExpectedHours,
		entry.WorkedHours,
		entry.OvertimeHours,
		entry.OvertimeHoursTier1,
		entry.OvertimeHoursTier2,
		entry.OwedHours,
		notes,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert day ledger for employee %s on %s: %w", entry.EmployeeID, entry.Date, err)
	}
	return nil
}

// UpsertMany implements timebank.DayLedgerRepository.
func (r *dayLedgerRepositoryImpl) UpsertMany(ctx context.Context, entries []timebank.DayLedgerEntry) error {
	if len(entries) == 0 {
		return nil
	}
	return WithTransaction(ctx, r.db, func(ctx context.Context) error {
		for _, entry := range entries {
			if err := r.Upsert(ctx, entry); err != nil {
				return err
			}
		}
		return nil
	})
}
