package postgresql

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/wallclock"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type employeeRepositoryImpl struct {
	db database.Querier
}

func NewEmployeeRepository(db database.Querier) employee.Repository {
	return &employeeRepositoryImpl{db: db}
}

// scanProfile returns employee.ErrHireDateMissing alongside the scanned
// profile when hire_date is NULL.
func scanProfile(row pgx.Row) (employee.Profile, error) {
	var (
		p          employee.Profile
		department string
		hireDate   pgtype.Date
	)
	if err := row.Scan(&p.ID, &p.FullName, &department, &hireDate, &p.Active); err != nil {
		return employee.Profile{}, err
	}
	if department != "" {
		p.Department = &department
	}
	if !hireDate.Valid {
		return p, employee.ErrHireDateMissing
	}
	p.HireDate = wallclock.DateOf(hireDate.Time)
	return p, nil
}

// GetByID implements employee.Repository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, full_name, COALESCE(department, ''), hire_date, is_active
		FROM employees
		WHERE id = $1 AND deleted_at IS NULL
	`

	p, err := scanProfile(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Profile{}, employee.ErrEmployeeNotFound
		}
		if errors.Is(err, employee.ErrHireDateMissing) {
			return employee.Profile{}, err
		}
		return employee.Profile{}, fmt.Errorf("failed to get employee with id %s: %w", id, err)
	}
	return p, nil
}

// GetHireDate implements employee.Repository.
func (r *employeeRepositoryImpl) GetHireDate(ctx context.Context, id string) (wallclock.Date, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT hire_date FROM employees WHERE id = $1 AND deleted_at IS NULL`

	var hireDate pgtype.Date
	if err := q.QueryRow(ctx, query, id).Scan(&hireDate); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return wallclock.Date{}, employee.ErrEmployeeNotFound
		}
		return wallclock.Date{}, fmt.Errorf("failed to get hire date for employee with id %s: %w", id, err)
	}
	if !hireDate.Valid {
		return wallclock.Date{}, employee.ErrHireDateMissing
	}
	return wallclock.DateOf(hireDate.Time), nil
}

// ListActive implements employee.Repository.
func (r *employeeRepositoryImpl) ListActive(ctx context.Context, department *string) ([]employee.Profile, error) {
	q := GetQuerier(ctx, r.db)

	var sb strings.Builder
	sb.WriteString(`
		SELECT id, full_name, COALESCE(department, ''), hire_date, is_active
		FROM employees
		WHERE is_active = TRUE AND deleted_at IS NULL`)

	args := []interface{}{}
	if department != nil {
		args = append(args, *department)
		sb.WriteString(fmt.Sprintf(" AND department = $%d", len(args)))
	}
	sb.WriteString(" ORDER BY full_name ASC, id ASC")

	rows, err := q.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query active employees: %w", err)
	}
	defer rows.Close()

	profiles := make([]employee.Profile, 0)
	for rows.Next() {
		p, err := scanProfile(rows)
		if errors.Is(err, employee.ErrHireDateMissing) {
			slog.Warn("Skipping active employee without hire date", "employee_id", p.ID)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		profiles = append(profiles, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating employees: %w", err)
	}

	return profiles, nil
}

// GetScheduleDefaults implements employee.Repository. An organization that
// never saved its schedule gets employee.DefaultScheduleDefaults.
func (r *employeeRepositoryImpl) GetScheduleDefaults(ctx context.Context) (employee.ScheduleDefaults, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT to_char(start_time, 'HH24:MI:SS'), to_char(end_time, 'HH24:MI:SS'),
			to_char(lunch_start, 'HH24:MI:SS'), to_char(lunch_end, 'HH24:MI:SS'),
			tolerance_minutes
		FROM org_schedule_settings
		ORDER BY updated_at DESC
		LIMIT 1
	`

	var start, end, lunchStart, lunchEnd string
	var tolerance int
	err := q.QueryRow(ctx, query).Scan(&start, &end, &lunchStart, &lunchEnd, &tolerance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.DefaultScheduleDefaults(), nil
		}
		return employee.ScheduleDefaults{}, fmt.Errorf("failed to get schedule defaults: %w", err)
	}

	defaults := employee.ScheduleDefaults{ToleranceMinutes: tolerance}
	fields := []struct {
		raw string
		dst *wallclock.TimeOfDay
	}{
		{start, &defaults.StartTime},
		{end, &defaults.EndTime},
		{lunchStart, &defaults.LunchStart},
		{lunchEnd, &defaults.LunchEnd},
	}
	for _, f := range fields {
		t, err := wallclock.ParseTimeOfDay(f.raw)
		if err != nil {
			return employee.ScheduleDefaults{}, fmt.Errorf("%w: %v", employee.ErrInvalidScheduleDefaults, err)
		}
		*f.dst = t
	}

	if err := defaults.Validate(); err != nil {
		return employee.ScheduleDefaults{}, err
	}
	return defaults, nil
}
