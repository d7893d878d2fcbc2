package postgresql

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/wallclock"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var profileColumns = []string{"id", "full_name", "department", "hire_date", "is_active"}

func TestEmployeeRepository_GetByID(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewEmployeeRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1 AND deleted_at IS NULL")).
		WithArgs(employeeID).
		WillReturnRows(pgxmock.NewRows(profileColumns).
			AddRow(employeeID, "Ana Souza", "", time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC), true))

	p, err := repo.GetByID(context.Background(), employeeID)
	require.NoError(t, err)
	assert.Equal(t, "Ana Souza", p.FullName)
	assert.Nil(t, p.Department)
	assert.Equal(t, wallclock.NewDate(2023, time.June, 1), p.HireDate)
	assert.True(t, p.Active)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_GetHireDate(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewEmployeeRepository(mock)
	query := regexp.QuoteMeta("SELECT hire_date FROM employees WHERE id = $1 AND deleted_at IS NULL")

	mock.ExpectQuery(query).
		WithArgs(employeeID).
		WillReturnRows(pgxmock.NewRows([]string{"hire_date"}).AddRow(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
	mock.ExpectQuery(query).
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)

	hire, err := repo.GetHireDate(context.Background(), employeeID)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", hire.String())

	_, err = repo.GetHireDate(context.Background(), "missing")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_GetHireDate_Null(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT hire_date FROM employees")).
		WithArgs(employeeID).
		WillReturnRows(pgxmock.NewRows([]string{"hire_date"}).AddRow(nil))

	_, err = NewEmployeeRepository(mock).GetHireDate(context.Background(), employeeID)
	assert.ErrorIs(t, err, employee.ErrHireDateMissing)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_ListActive_SkipsMissingHireDate(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	hire := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("FROM employees")).
		WillReturnRows(pgxmock.NewRows(profileColumns).
			AddRow("emp-ana", "Ana Souza", "", hire, true).
			AddRow("emp-caio", "Caio Prado", "", nil, true).
			AddRow("emp-bruno", "Bruno Lima", "", hire, true))

	profiles, err := NewEmployeeRepository(mock).ListActive(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, profiles, 2)
	assert.Equal(t, "emp-ana", profiles[0].ID)
	assert.Equal(t, "emp-bruno", profiles[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_GetByID_NullHireDate(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1 AND deleted_at IS NULL")).
		WithArgs(employeeID).
		WillReturnRows(pgxmock.NewRows(profileColumns).AddRow(employeeID, "Caio Prado", "", nil, true))

	_, err = NewEmployeeRepository(mock).GetByID(context.Background(), employeeID)
	assert.ErrorIs(t, err, employee.ErrHireDateMissing)
}

func TestEmployeeRepository_ListActive(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewEmployeeRepository(mock)
	hire := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	department := "operations"

	mock.ExpectQuery(regexp.QuoteMeta("AND department = $1 ORDER BY full_name ASC, id ASC")).
		WithArgs(department).
		WillReturnRows(pgxmock.NewRows(profileColumns).
			AddRow("emp-ana", "Ana Souza", department, hire, true).
			AddRow("emp-bruno", "Bruno Lima", department, hire, true))

	profiles, err := repo.ListActive(context.Background(), &department)
	require.NoError(t, err)
	require.Len(t, profiles, 2)
	require.NotNil(t, profiles[0].Department)
	assert.Equal(t, department, *profiles[0].Department)
	assert.Equal(t, "Bruno Lima", profiles[1].FullName)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_ListActive_AllDepartments(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewEmployeeRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE is_active = TRUE AND deleted_at IS NULL ORDER BY full_name ASC")).
		WillReturnRows(pgxmock.NewRows(profileColumns))

	profiles, err := repo.ListActive(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, profiles)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_GetScheduleDefaults(t *testing.T) {
	t.Parallel()

	columns := []string{"start_time", "end_time", "lunch_start", "lunch_end", "tolerance_minutes"}

	t.Run("configured", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery(regexp.QuoteMeta("FROM org_schedule_settings")).
			WillReturnRows(pgxmock.NewRows(columns).AddRow("07:30:00", "17:00:00", "11:30:00", "12:30:00", 5))

		defaults, err := NewEmployeeRepository(mock).GetScheduleDefaults(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "07:30:00", defaults.StartTime.String())
		assert.Equal(t, "17:00:00", defaults.EndTime.String())
		assert.Equal(t, 5, defaults.ToleranceMinutes)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("falls back when unset", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery(regexp.QuoteMeta("FROM org_schedule_settings")).
			WillReturnError(pgx.ErrNoRows)

		defaults, err := NewEmployeeRepository(mock).GetScheduleDefaults(context.Background())
		require.NoError(t, err)
		assert.Equal(t, employee.DefaultScheduleDefaults(), defaults)
	})

	t.Run("rejects inverted schedule", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery(regexp.QuoteMeta("FROM org_schedule_settings")).
			WillReturnRows(pgxmock.NewRows(columns).AddRow("18:00:00", "08:00:00", "12:00:00", "13:00:00", 10))

		_, err = NewEmployeeRepository(mock).GetScheduleDefaults(context.Background())
		assert.ErrorIs(t, err, employee.ErrInvalidScheduleDefaults)
	})

	t.Run("database error", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		dbErr := errors.New("timeout")
		mock.ExpectQuery(regexp.QuoteMeta("FROM org_schedule_settings")).
			WillReturnError(dbErr)

		_, err = NewEmployeeRepository(mock).GetScheduleDefaults(context.Background())
		assert.ErrorIs(t, err, dbErr)
	})
}
