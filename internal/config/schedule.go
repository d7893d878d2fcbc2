package config

import (
	"fmt"
	"os"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/wallclock"
	"gopkg.in/yaml.v3"
)

// scheduleFile is the YAML shape of SCHEDULE_DEFAULTS_FILE.
type scheduleFile struct {
	StartTime        string `yaml:"start_time"`
	EndTime          string `yaml:"end_time"`
	LunchStart       string `yaml:"lunch_start"`
	LunchEnd         string `yaml:"lunch_end"`
	ToleranceMinutes *int   `yaml:"tolerance_minutes"`
}

// LoadScheduleDefaults reads an organization schedule from a YAML file.
// Omitted keys keep employee.DefaultScheduleDefaults values.
func LoadScheduleDefaults(path string) (employee.ScheduleDefaults, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return employee.ScheduleDefaults{}, fmt.Errorf("config: read file %s: %w", path, err)
	}

	var raw scheduleFile
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return employee.ScheduleDefaults{}, fmt.Errorf("config: parse yaml: %w", err)
	}

	defaults := employee.DefaultScheduleDefaults()
	fields := []struct {
		key string
		raw string
		dst *wallclock.TimeOfDay
	}{
		{"start_time", raw.StartTime, &defaults.StartTime},
		{"end_time", raw.EndTime, &defaults.EndTime},
		{"lunch_start", raw.LunchStart, &defaults.LunchStart},
		{"lunch_end", raw.LunchEnd, &defaults.LunchEnd},
	}
	for _, f := range fields {
		if f.raw == "" {
			continue
		}
		t, err := wallclock.ParseTimeOfDay(f.raw)
		if err != nil {
			return employee.ScheduleDefaults{}, fmt.Errorf("config: %s: %w", f.key, err)
		}
		*f.dst = t
	}
	if raw.ToleranceMinutes != nil {
		defaults.ToleranceMinutes = *raw.ToleranceMinutes
	}

	if err := defaults.Validate(); err != nil {
		return employee.ScheduleDefaults{}, fmt.Errorf("config: %w", err)
	}
	return defaults, nil
}
