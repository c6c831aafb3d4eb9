package main

import (
	"fmt"
	"net/http"

	"github.com/nomina-hr/nomina-backend-go/internal/config"
	"github.com/nomina-hr/nomina-backend-go/internal/domain/payroll"
	appHTTP "github.com/nomina-hr/nomina-backend-go/internal/handler/http"
	"github.com/nomina-hr/nomina-backend-go/internal/pkg/database"
	"github.com/nomina-hr/nomina-backend-go/internal/pkg/jwt"
	"github.com/nomina-hr/nomina-backend-go/internal/repository/postgresql"
	authService "github.com/nomina-hr/nomina-backend-go/internal/service/auth"
	employeeService "github.com/nomina-hr/nomina-backend-go/internal/service/employee"
	payrollService "github.com/nomina-hr/nomina-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	calculator := payroll.NewCalculator(payroll.DefaultRates())

	authSvc := authService.NewAuthService(userRepo, employeeRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, userRepo)
	payrollSvc := payrollService.NewPayrollService(calculator, payrollRepo, employeeRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc, jwtService)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	router := appHTTP.NewRouter(cfg, jwtService, authHandler, employeeHandler, payrollHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
