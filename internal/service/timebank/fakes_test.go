package timebank

import (
	"context"
	"sort"
	"sync"
	"testing"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/punch"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/wallclock"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/require"
)

type fakePunchRepository struct {
	mu      sync.Mutex
	punches map[string][]punch.Punch
	calls   int
	err     error
}

func newFakePunchRepository(punches ...punch.Punch) *fakePunchRepository {
	repo := &fakePunchRepository{punches: map[string][]punch.Punch{}}
	for _, p := range punches {
		repo.punches[p.EmployeeID] = append(repo.punches[p.EmployeeID], p)
	}
	return repo
}

func (f *fakePunchRepository) ListByEmployeeBetween(ctx context.Context, employeeID string, from, to wallclock.WallClock) ([]punch.Punch, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}

	var out []punch.Punch
	for _, p := range f.punches[employeeID] {
		if !p.At.Before(from) && p.At.Before(to) {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].At.Before(out[j].At) })
	return out, nil
}

type fakeEmployeeRepository struct {
	mu            sync.Mutex
	profiles      map[string]employee.Profile
	schedule      employee.ScheduleDefaults
	scheduleCalls int
}

func newFakeEmployeeRepository(profiles ...employee.Profile) *fakeEmployeeRepository {
	repo := &fakeEmployeeRepository{
		profiles: map[string]employee.Profile{},
		schedule: employee.DefaultScheduleDefaults(),
	}
	for _, p := range profiles {
		repo.profiles[p.ID] = p
	}
	return repo
}

func (f *fakeEmployeeRepository) GetByID(ctx context.Context, id string) (employee.Profile, error) {
	p, ok := f.profiles[id]
	if !ok {
		return employee.Profile{}, employee.ErrEmployeeNotFound
	}
	return p, nil
}

func (f *fakeEmployeeRepository) GetHireDate(ctx context.Context, id string) (wallclock.Date, error) {
	p, err := f.GetByID(ctx, id)
	if err != nil {
		return wallclock.Date{}, err
	}
	return p.HireDate, nil
}

func (f *fakeEmployeeRepository) ListActive(ctx context.Context, department *string) ([]employee.Profile, error) {
	var out []employee.Profile
	for _, p := range f.profiles {
		if p.Active && (department == nil || (p.Department != nil && *p.Department == *department)) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FullName < out[j].FullName })
	return out, nil
}

func (f *fakeEmployeeRepository) GetScheduleDefaults(ctx context.Context) (employee.ScheduleDefaults, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scheduleCalls++
	return f.schedule, nil
}

// authContext returns a context carrying a verified access token, the way
// jwtauth.Verifier leaves it for handlers.
func authContext(t *testing.T, employeeID string, role user.Role) context.Context {
	t.Helper()
	svc := jwt.NewJWTService("test-secret", "15m")

	var empID *string
	if employeeID != "" {
		empID = &employeeID
	}
	tokenString, _, err := svc.GenerateAccessToken("user-"+string(role), empID, role)
	require.NoError(t, err)

	token, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}
