package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/timebank"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/wallclock"
)

// snapshotHour is the local hour the daily snapshot runs in, leaving late
// exits of the previous day time to be recorded.
const snapshotHour = 1

type LedgerJobs struct {
	timeBankService timebank.Service
	employeeRepo    employee.Repository
	dayLedgerRepo   timebank.DayLedgerRepository
	loc             *time.Location
	now             func() time.Time
	interval        time.Duration
}

func NewLedgerJobs(
	timeBankService timebank.Service,
	employeeRepo employee.Repository,
	dayLedgerRepo timebank.DayLedgerRepository,
	loc *time.Location,
	now func() time.Time,
	interval time.Duration,
) *LedgerJobs {
	if loc == nil {
		loc = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	if interval <= 0 || interval > time.Hour {
		interval = time.Hour
	}
	return &LedgerJobs{
		timeBankService: timeBankService,
		employeeRepo:    employeeRepo,
		dayLedgerRepo:   dayLedgerRepo,
		loc:             loc,
		now:             now,
		interval:        interval,
	}
}

func (j *LedgerJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("snapshot_day_ledgers", j.interval, AtLocalHour(snapshotHour, j.loc, j.now, j.SnapshotYesterday))
}

// SnapshotYesterday resolves the previous local day for every active
// employee and stores the entries for payroll.
func (j *LedgerJobs) SnapshotYesterday(ctx context.Context) error {
	yesterday := wallclock.DateOf(j.now().In(j.loc)).AddDays(-1)
	return j.SnapshotDay(ctx, yesterday)
}

// SnapshotDay resolves date for every active employee hired on or before it.
// A failing employee is logged and skipped; the others are still stored.
func (j *LedgerJobs) SnapshotDay(ctx context.Context, date wallclock.Date) error {
	slog.Info("Cron: Starting day ledger snapshot", "date", date.String())

	profiles, err := j.employeeRepo.ListActive(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to list active employees: %w", err)
	}

	entries := make([]timebank.DayLedgerEntry, 0, len(profiles))
	failed := 0
	for _, p := range profiles {
		if p.HireDate.After(date) {
			continue
		}
		entry, err := j.timeBankService.ResolveDay(ctx, p.ID, date)
		if err != nil {
			slog.Error("Cron: Failed to resolve day", "employee_id", p.ID, "date", date.String(), "error", err)
			failed++
			continue
		}
		entries = append(entries, entry)
	}

	if err := j.dayLedgerRepo.UpsertMany(ctx, entries); err != nil {
		return fmt.Errorf("failed to store day ledgers: %w", err)
	}

	slog.Info("Cron: Day ledger snapshot completed", "date", date.String(), "stored", len(entries), "failed", failed)
	if failed > 0 {
		return fmt.Errorf("snapshot of %s failed for %d employee(s)", date, failed)
	}
	return nil
}
