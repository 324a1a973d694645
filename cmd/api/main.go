package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/attendly/attendance-backend-go/internal/config"
	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	appHTTP "github.com/attendly/attendance-backend-go/internal/handler/http"
	"github.com/attendly/attendance-backend-go/internal/pkg/cron"
	"github.com/attendly/attendance-backend-go/internal/pkg/database"
	"github.com/attendly/attendance-backend-go/internal/pkg/jwt"
	"github.com/attendly/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/attendly/attendance-backend-go/internal/service/attendance"
	serviceAuth "github.com/attendly/attendance-backend-go/internal/service/auth"
	employeeService "github.com/attendly/attendance-backend-go/internal/service/employee"
	leaveService "github.com/attendly/attendance-backend-go/internal/service/leave"
	"github.com/attendly/attendance-backend-go/internal/service/master"
	reportService "github.com/attendly/attendance-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	rules, err := attendance.NewRules(
		cfg.Attendance.LateCutoff,
		cfg.Attendance.SweepTime,
		cfg.Attendance.StandardShiftHours,
		cfg.Attendance.Timezone,
	)
	if err != nil {
		fmt.Println("Error building attendance rules:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	leaveTypeRepo := postgresql.NewLeaveTypeRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	reportRepo := postgresql.NewReportRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	authSvc := serviceAuth.NewAuthService(db, userRepo, leaveTypeRepo, jwtService)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, rules, logger)
	leaveSvc := leaveService.NewLeaveService(db, leaveRequestRepo, leaveTypeRepo, userRepo)
	holidaySvc := master.NewHolidayService(holidayRepo)
	leaveTypeSvc := master.NewLeaveTypeService(leaveTypeRepo)
	employeeSvc := employeeService.NewEmployeeService(db, userRepo, attendanceRepo, leaveRequestRepo, authSvc)
	reportSvc := reportService.NewReportService(reportRepo, userRepo, holidayRepo, leaveRequestRepo, rules.Location)

	router := appHTTP.NewRouter(cfg, jwtService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Master:     appHTTP.NewMasterHandler(holidaySvc, leaveTypeSvc),
		Admin:      appHTTP.NewAdminHandler(employeeSvc, leaveSvc, reportSvc, attendanceSvc),
	})

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(attendanceSvc, rules).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	server := &http.Server{Addr: addr, Handler: router}

	go func() {
		slog.Info("Server starting", "addr", addr, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down")
	if err := server.Close(); err != nil {
		slog.Error("Server close error", "error", err)
	}
}
