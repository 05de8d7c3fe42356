package main

import (
	"fmt"
	"net/http"

	"github.com/atlashr/hrms-backend-go/internal/config"
	appHTTP "github.com/atlashr/hrms-backend-go/internal/handler/http"
	"github.com/atlashr/hrms-backend-go/internal/pkg/database"
	"github.com/atlashr/hrms-backend-go/internal/pkg/jwt"
	"github.com/atlashr/hrms-backend-go/internal/repository/postgresql"
	employeeService "github.com/atlashr/hrms-backend-go/internal/service/employee"
	"github.com/atlashr/hrms-backend-go/internal/service/export"
	payrollService "github.com/atlashr/hrms-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), int32(cfg.Database.MaxConns), int32(cfg.Database.MinConns))
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	payslipRepo := postgresql.NewPayslipRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	calculator, err := payrollService.NewCalculator(cfg.Payroll.Rules())
	if err != nil {
		fmt.Println("Error building payroll calculator:", err)
		return
	}

	payrollSvc := payrollService.NewPayrollService(db, payslipRepo, employeeRepo, calculator)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo)
	exportSvc := export.NewExportService(cfg.App.CompanyName, payslipRepo, employeeRepo)

	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	exportHandler := appHTTP.NewExportHandler(exportSvc)

	router := appHTTP.NewRouter(cfg, jwtService, payrollHandler, employeeHandler, exportHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
