package postgresql

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/punch"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/wallclock"
)

type punchRepositoryImpl struct {
	db database.Querier
}

func NewPunchRepository(db database.Querier) punch.Repository {
	return &punchRepositoryImpl{db: db}
}

// ListByEmployeeBetween implements punch.Repository.
// punched_at is a TIMESTAMP column holding local clock digits, so the bounds
// are passed as stored values and the results are read back the same way.
func (r *punchRepositoryImpl) ListByEmployeeBetween(ctx context.Context, employeeID string, from, to wallclock.WallClock) ([]punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, kind, punched_at, is_valid, created_at
		FROM punches
		WHERE employee_id = $1 AND punched_at >= $2 AND punched_at < $3
		ORDER BY punched_at ASC, id ASC
	`

	rows, err := q.Query(ctx, query, employeeID, from.Stored(), to.Stored())
	if err != nil {
		return nil, fmt.Errorf("failed to query punches: %w", err)
	}
	defer rows.Close()

	punches := make([]punch.Punch, 0)
	for rows.Next() {
		var (
			p         punch.Punch
			kind      string
			punchedAt time.Time
		)
		if err := rows.Scan(&p.ID, &p.EmployeeID, &kind, &punchedAt, &p.Valid, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan punch: %w", err)
		}

		p.Kind = punch.Kind(kind)
		p.At = wallclock.FromStored(punchedAt)
		if !p.Kind.IsValid() {
			slog.Warn("Unknown punch kind, treating as invalid", "punch_id", p.ID, "kind", kind)
			p.Valid = false
		}
		punches = append(punches, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating punches: %w", err)
	}

	return punches, nil
}
