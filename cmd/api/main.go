package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/wageflow/payroll-backend-go/internal/config"
	appHTTP "github.com/wageflow/payroll-backend-go/internal/handler/http"
	"github.com/wageflow/payroll-backend-go/internal/pkg/database"
	"github.com/wageflow/payroll-backend-go/internal/pkg/jwt"
	"github.com/wageflow/payroll-backend-go/internal/pkg/storage"
	"github.com/wageflow/payroll-backend-go/internal/repository/postgresql"
	authService "github.com/wageflow/payroll-backend-go/internal/service/auth"
	employeeService "github.com/wageflow/payroll-backend-go/internal/service/employee"
	payslipService "github.com/wageflow/payroll-backend-go/internal/service/payslip"
	timesheetService "github.com/wageflow/payroll-backend-go/internal/service/timesheet"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	if err := database.RunMigrations(context.Background(), dsn); err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	timesheetRepo := postgresql.NewTimesheetRepository(db)
	payslipRepo := postgresql.NewPayslipRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiration)

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		log.Fatal("Failed to initialize local storage: ", err)
	}

	authSvc := authService.NewAuthService(userRepo, JWTService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	timesheetSvc := timesheetService.NewTimesheetService(timesheetRepo)
	payslipSvc := payslipService.NewPayslipService(payslipRepo, employeeRepo, fileStorage)

	router := appHTTP.NewRouter(
		cfg,
		JWTService,
		appHTTP.NewAuthHandler(authSvc),
		appHTTP.NewEmployeeHandler(employeeSvc),
		appHTTP.NewTimesheetHandler(timesheetSvc),
		appHTTP.NewPayslipHandler(payslipSvc),
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error: ", err)
	}
}
