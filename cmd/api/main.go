package main

import (
	"fmt"
	"net/http"

	"github.com/softventure/timesheet-backend-go/internal/config"
	appHTTP "github.com/softventure/timesheet-backend-go/internal/handler/http"
	"github.com/softventure/timesheet-backend-go/internal/pkg/database"
	"github.com/softventure/timesheet-backend-go/internal/pkg/jwt"
	"github.com/softventure/timesheet-backend-go/internal/repository/postgresql"
	serviceAuth "github.com/softventure/timesheet-backend-go/internal/service/auth"
	dailyReportService "github.com/softventure/timesheet-backend-go/internal/service/dailyreport"
	employeeService "github.com/softventure/timesheet-backend-go/internal/service/employee"
	"github.com/softventure/timesheet-backend-go/internal/service/master"
	recordService "github.com/softventure/timesheet-backend-go/internal/service/record"
	reportService "github.com/softventure/timesheet-backend-go/internal/service/report"
	"github.com/softventure/timesheet-backend-go/internal/service/worktime"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	companyRepo := postgresql.NewCompanyRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	workRecordRepo := postgresql.NewWorkRecordRepository(db)
	dailyReportRepo := postgresql.NewDailyReportRepository(db)
	monthlyReportRepo := postgresql.NewMonthlyReportRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	calculator := worktime.NewCalculator(cfg.Work.Policy())

	authService := serviceAuth.NewAuthService(employeeRepo, JWTService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	masterService := master.NewMasterService(companyRepo, holidayRepo)
	workRecordService := recordService.NewWorkRecordService(db, workRecordRepo, monthlyReportRepo)
	dailyReportSvc := dailyReportService.NewDailyReportService(dailyReportRepo)
	monthlyReportService := reportService.NewMonthlyReportService(
		monthlyReportRepo,
		workRecordRepo,
		holidayRepo,
		calculator,
	)

	authHandler := appHTTP.NewAuthHandler(authService)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	masterHandler := appHTTP.NewMasterHandler(masterService)
	recordHandler := appHTTP.NewWorkRecordHandler(workRecordService)
	dailyReportHandler := appHTTP.NewDailyReportHandler(dailyReportSvc)
	reportHandler := appHTTP.NewMonthlyReportHandler(monthlyReportService)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			FrontendURL: cfg.App.FrontendURL,
			Env:         cfg.App.Env,
		},
		JWTService,
		authHandler,
		employeeHandler,
		masterHandler,
		recordHandler,
		dailyReportHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
