package postgresql

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/punch"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/wallclock"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const employeeID = "5f0c6a1e-8d2b-4c3a-9e7f-1a2b3c4d5e6f"

var punchColumns = []string{"id", "employee_id", "kind", "punched_at", "is_valid", "created_at"}

func TestPunchRepository_ListByEmployeeBetween(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPunchRepository(mock)
	day := wallclock.NewDate(2024, time.January, 3)
	from, to := day.Bounds()
	created := time.Date(2024, 1, 3, 10, 0, 0, 0, time.UTC)

	// Local clock digits stored under a UTC label
	rows := pgxmock.NewRows(punchColumns).
		AddRow("p-1", employeeID, "ENTRY", time.Date(2024, 1, 3, 7, 0, 0, 0, time.UTC), true, created).
		AddRow("p-2", employeeID, "EXIT", time.Date(2024, 1, 3, 22, 30, 0, 0, time.UTC), true, created).
		AddRow("p-3", employeeID, "OVERTIME_START", time.Date(2024, 1, 3, 23, 0, 0, 0, time.UTC), true, created).
		AddRow("p-4", employeeID, "BREAK_START", time.Date(2024, 1, 3, 23, 59, 59, 400_000_000, time.UTC), true, created)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE employee_id = $1 AND punched_at >= $2 AND punched_at < $3")).
		WithArgs(employeeID, time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC)).
		WillReturnRows(rows)

	punches, err := repo.ListByEmployeeBetween(context.Background(), employeeID, from, to)
	require.NoError(t, err)
	require.Len(t, punches, 4)

	assert.Equal(t, punch.KindEntry, punches[0].Kind)
	assert.Equal(t, "2024-01-03 07:00:00", punches[0].At.String())
	assert.True(t, punches[0].Valid)
	assert.Equal(t, "2024-01-03 22:30:00", punches[1].At.String())
	assert.False(t, punches[2].Valid, "unknown kinds are flagged invalid")
	assert.Equal(t, "2024-01-03 23:59:59", punches[3].At.String())
	assert.Equal(t, day, punches[3].At.Date())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPunchRepository_ListByEmployeeBetween_QueryError(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPunchRepository(mock)
	day := wallclock.NewDate(2024, time.January, 3)
	dbErr := errors.New("connection reset")

	mock.ExpectQuery(regexp.QuoteMeta("FROM punches")).
		WithArgs(employeeID, day.StartOfDay().Stored(), day.AddDays(1).StartOfDay().Stored()).
		WillReturnError(dbErr)

	from, to := day.Bounds()
	_, err = repo.ListByEmployeeBetween(context.Background(), employeeID, from, to)
	assert.ErrorIs(t, err, dbErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}
