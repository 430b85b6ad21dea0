package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"hrms-backend/internal/config"
	"hrms-backend/internal/dispatch"
	"hrms-backend/internal/handler"
	"hrms-backend/internal/repository"
	"hrms-backend/internal/service"
	"hrms-backend/pkg/telegram"
)

func main() {
	logrus.Info("Initializing config...")
	cfg := config.Load()
	logrus.Info("Config initialized...")

	db, err := gorm.Open(sqlite.Open(cfg.DatabaseURL), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true, // SQLite limitation
	})
	if err != nil {
		logrus.Fatal("Failed to connect to database:", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logrus.Fatal("Failed to get database instance:", err)
	}

	// SQLite needs the pragma for foreign keys.
	if _, err = sqlDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		logrus.Infof("Warning: Failed to enable foreign keys: %v", err)
	}

	employeeRepo, err := repository.NewGormEmployeeRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create employee repository")
	}

	attendanceRepo, err := repository.NewGormAttendanceRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create attendance repository")
	}

	holidayRepo, err := repository.NewGormHolidayRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create holiday repository")
	}

	projectRepo, err := repository.NewGormProjectRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create project repository")
	}

	salaryRepo, err := repository.NewGormSalaryConfigRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create salary config repository")
	}

	payslipRepo, err := repository.NewGormPayslipRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create payslip repository")
	}

	lockRepo, err := repository.NewGormSummaryLockRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create summary lock repository")
	}

	shift := service.ShiftConfig{
		Window:          cfg.ShiftWindow,
		GraceMinutes:    cfg.ShiftGraceMinutes,
		StandardMinutes: cfg.StandardShiftMinutes,
	}

	registry := dispatch.NewRegistry()
	directory := service.NewDirectoryService(employeeRepo, projectRepo)
	dispatcher := dispatch.NewDispatcher(registry, directory)

	if cfg.TelegramToken != "" && cfg.AdminAlertChatID != 0 {
		client, err := telegram.NewClient(cfg.TelegramToken)
		if err != nil {
			logrus.WithError(err).Warn("Failed to create Telegram client, admin alerts disabled")
		} else {
			dispatcher.SetAlerter(telegram.NewAdminAlerter(client, cfg.AdminAlertChatID))
			logrus.Info("Telegram admin alerts enabled")
		}
	}

	aggregationService := service.NewAggregationService(attendanceRepo, employeeRepo, holidayRepo, lockRepo, shift)
	payrollService := service.NewPayrollService(aggregationService, salaryRepo, payslipRepo)
	attendanceService := service.NewAttendanceService(attendanceRepo, employeeRepo, shift, dispatcher)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.Logger())
	e.Use(echomw.CORS())

	handler.Register(
		e,
		cfg.JWTSecret,
		handler.NewAuthHandler(employeeRepo, cfg.JWTSecret),
		handler.NewAttendanceHandler(attendanceService, aggregationService),
		handler.NewPayrollHandler(payrollService),
		handler.NewProjectHandler(projectRepo, dispatcher),
		handler.NewHolidayHandler(holidayRepo),
		handler.NewNotificationHandler(dispatcher),
		handler.NewWSHandler(registry),
	)

	go func() {
		logrus.Infof("Server listening at %s", cfg.ServerAddr)
		if err := e.Start(cfg.ServerAddr); err != nil {
			logrus.Info("Server stopped: ", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logrus.WithError(err).Error("Failed to shut down server")
	}

	if err := sqlDB.Close(); err != nil {
		logrus.Infof("Error closing database: %v", err)
	}

	logrus.Info("Server stopped gracefully")
}
