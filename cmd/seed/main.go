package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/wageflow/payroll-backend-go/internal/config"
	"github.com/wageflow/payroll-backend-go/internal/domain/payslip"
	"github.com/wageflow/payroll-backend-go/internal/domain/timesheet"
	"github.com/wageflow/payroll-backend-go/internal/domain/user"
	"github.com/wageflow/payroll-backend-go/internal/pkg/database"
	"github.com/wageflow/payroll-backend-go/internal/repository/postgresql"
)

type seedEmployee struct {
	fullName string
	email    string
	rate     string
}

var seedEmployees = []seedEmployee{
	{"Abby Gingell", "abby.gingell@wageflow.com", "24.50"},
	{"Alex White", "alex.white@wageflow.com", "23.00"},
	{"George Brown", "george.brown@wageflow.com", "22.75"},
	{"Ashley Harold", "ashley.harold@wageflow.com", "25.00"},
	{"Coby Campbell", "coby.campbell@wageflow.com", "21.50"},
	{"Christina Mavridis", "christina.mavridis@wageflow.com", "26.00"},
	{"Hanna Larson", "hanna.larson@wageflow.com", "22.00"},
	{"Izzy Rose", "izzy.rose@wageflow.com", "20.75"},
	{"Sydney Stewart", "sydney.stewart@wageflow.com", "23.25"},
	{"Ryan Taylor", "ryan.taylor@wageflow.com", "24.00"},
}

var seedWeekHours = []int64{38, 40, 36, 39, 35}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	ctx := context.Background()
	dsn := cfg.DatabaseURL()

	if err := database.RunMigrations(ctx, dsn); err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	timesheetRepo := postgresql.NewTimesheetRepository(db)
	payslipRepo := postgresql.NewPayslipRepository(db)

	err = postgresql.WithTransaction(ctx, db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		// Manager account
		managerHash, err := hash("admin")
		if err != nil {
			return err
		}
		if _, err := userRepo.Upsert(txCtx, "manager@company.com", user.RoleManager, managerHash); err != nil {
			return fmt.Errorf("seed manager: %w", err)
		}

		employeeHash, err := hash("1234")
		if err != nil {
			return err
		}

		weekOne := time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)

		for idx, e := range seedEmployees {
			uid, err := userRepo.Upsert(txCtx, e.email, user.RoleEmployee, employeeHash)
			if err != nil {
				return fmt.Errorf("seed user %s: %w", e.email, err)
			}

			rate := decimal.RequireFromString(e.rate)
			empID, err := employeeRepo.Upsert(txCtx, e.fullName, e.email, rate, uid)
			if err != nil {
				return fmt.Errorf("seed employee %s: %w", e.email, err)
			}

			// Five weekly timesheets; every third row lands approved so
			// both states show up in the UI.
			for i, hours := range seedWeekHours {
				status := timesheet.StatusPending
				if (i+idx+1)%3 == 0 {
					status = timesheet.StatusApproved
				}
				row := timesheet.Timesheet{
					EmployeeID: empID,
					WeekStart:  weekOne.AddDate(0, 0, 7*i),
					Hours:      decimal.NewFromInt(hours),
					Status:     status,
				}
				if err := timesheetRepo.CreateIfMissing(txCtx, row); err != nil {
					return fmt.Errorf("seed timesheet %s week %d: %w", e.email, i+1, err)
				}
			}

			// Two biweekly payslips covering the first four seeded weeks.
			// Net is gross after a flat 20% deduction.
			periods := []struct {
				start, end time.Time
				hours      int64
			}{
				{time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC), seedWeekHours[0] + seedWeekHours[1]},
				{time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC), time.Date(2025, 10, 28, 0, 0, 0, 0, time.UTC), seedWeekHours[2] + seedWeekHours[3]},
			}
			for _, p := range periods {
				gross := rate.Mul(decimal.NewFromInt(p.hours)).Round(2)
				net := gross.Mul(decimal.RequireFromString("0.80")).Round(2)
				if _, err := payslipRepo.Upsert(txCtx, payslip.Payslip{
					EmployeeID:  empID,
					PeriodStart: p.start,
					PeriodEnd:   p.end,
					Gross:       gross,
					Net:         net,
				}); err != nil {
					return fmt.Errorf("seed payslip %s: %w", e.email, err)
				}
			}
		}

		return nil
	})
	if err != nil {
		log.Fatal("Seed failed: ", err)
	}

	fmt.Println("Seed complete: manager + 10 employees, timesheets and payslips inserted.")
}

func hash(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(h), nil
}
