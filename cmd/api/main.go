package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/config"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/employee"
	appHTTP "github.com/cmlabs-hris/timeclock-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/cron"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/repository/postgresql"
	reportService "github.com/cmlabs-hris/timeclock-backend-go/internal/service/report"
	timeBankService "github.com/cmlabs-hris/timeclock-backend-go/internal/service/timebank"
)

const version = "v1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Error loading config", "error", err)
		os.Exit(1)
	}

	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.App.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     logLevel,
		AddSource: !cfg.IsProduction(),
	})))

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		slog.Error("Error connecting to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	punchRepo := postgresql.NewPunchRepository(db)
	var employeeRepo employee.Repository = postgresql.NewEmployeeRepository(db)
	dayLedgerRepo := postgresql.NewDayLedgerRepository(db)

	if path := cfg.TimeBank.ScheduleDefaultsFile; path != "" {
		defaults, err := config.LoadScheduleDefaults(path)
		if err != nil {
			slog.Error("Error loading schedule defaults", "path", path, "error", err)
			os.Exit(1)
		}
		employeeRepo = employee.WithScheduleDefaults(employeeRepo, defaults)
		slog.Info("Schedule defaults loaded from file", "path", path)
	}

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	timeBankSvc := timeBankService.NewTimeBankService(punchRepo, employeeRepo, timeBankService.Config{
		Location:         cfg.TimeBank.Location,
		Now:              time.Now,
		FetchConcurrency: cfg.TimeBank.FetchConcurrency,
	})
	reportSvc := reportService.NewReportService(timeBankSvc, employeeRepo, time.Now)

	scheduler := cron.NewScheduler()
	ledgerJobs := cron.NewLedgerJobs(timeBankSvc, employeeRepo, dayLedgerRepo, cfg.TimeBank.Location, time.Now, cfg.TimeBank.SnapshotInterval)
	ledgerJobs.RegisterJobs(scheduler)
	scheduler.Start()

	timeBankHandler := appHTTP.NewTimeBankHandler(timeBankSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterOptions{
			AllowedOrigins: cfg.CORS.AllowedOrigins,
			Env:            cfg.App.Env,
			Version:        version,
			LogLevel:       logLevel,
		},
		JWTService,
		timeBankHandler,
		reportHandler,
		db,
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("Server running", "addr", server.Addr, "env", cfg.App.Env, "timezone", cfg.TimeBank.Timezone)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down")

	scheduler.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}
}
