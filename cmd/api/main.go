package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/suweldo/suweldo-backend-go/internal/config"
	"github.com/suweldo/suweldo-backend-go/internal/domain/statutory"
	appHTTP "github.com/suweldo/suweldo-backend-go/internal/handler/http"
	"github.com/suweldo/suweldo-backend-go/internal/pkg/database"
	"github.com/suweldo/suweldo-backend-go/internal/pkg/jwt"
	"github.com/suweldo/suweldo-backend-go/internal/repository/postgresql"
	attendanceService "github.com/suweldo/suweldo-backend-go/internal/service/attendance"
	holidayService "github.com/suweldo/suweldo-backend-go/internal/service/holiday"
	payrollService "github.com/suweldo/suweldo-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	loc, err := time.LoadLocation(cfg.Payroll.Timezone)
	if err != nil {
		log.Fatal("Invalid payroll timezone: ", err)
	}

	rules, err := statutory.RulesetForVersion(cfg.Payroll.RulesetVersion)
	if err != nil {
		log.Fatal("Invalid statutory ruleset: ", err)
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "suweldo"),
		slog.String("env", cfg.App.Env),
	)

	loader := payrollService.NewLoader(employeeRepo, attendanceRepo, holidayRepo, payrollRepo, rules)
	engine := payrollService.NewEngine(rules)
	payrollSvc := payrollService.NewService(db, payrollRepo, loader, engine, loc, cfg.Payroll.ComputeWorkers, logger)
	attendanceSvc := attendanceService.NewService(attendanceRepo, employeeRepo, loc)
	holidaySvc := holidayService.NewService(holidayRepo, loc)

	authHandler := appHTTP.NewAuthHandler(JWTService, cfg.Auth.ClientID, cfg.Auth.ClientSecret)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc, loc)
	holidayHandler := appHTTP.NewHolidayHandler(holidaySvc, loc)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		payrollHandler,
		attendanceHandler,
		holidayHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
