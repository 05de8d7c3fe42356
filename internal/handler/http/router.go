package http

import (
	"log/slog"
	"os"

	"github.com/atlashr/hrms-backend-go/internal/config"
	"github.com/atlashr/hrms-backend-go/internal/domain/employee"
	"github.com/atlashr/hrms-backend-go/internal/handler/http/middleware"
	"github.com/atlashr/hrms-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	payrollHandler PayrollHandler,
	employeeHandler EmployeeHandler,
	exportHandler ExportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", cfg.App.Name),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.App.CORSOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.ListEmployees)
				r.Get("/{id}", employeeHandler.GetEmployee)

				// Admin and above
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(employee.RoleOwner, employee.RoleSeniorAdmin, employee.RoleAdmin))
					r.Post("/", employeeHandler.CreateEmployee)
					r.Put("/{id}/compensation", employeeHandler.UpdateCompensation)
					r.Delete("/{id}", employeeHandler.DeactivateEmployee)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Route("/payslips", func(r chi.Router) {
					r.Get("/", payrollHandler.ListPayslips)
					r.Get("/{id}", payrollHandler.GetPayslip)
					r.Get("/{id}/pdf", exportHandler.DownloadPayslipPDF)

					// Admin and above
					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireRole(employee.RoleOwner, employee.RoleSeniorAdmin, employee.RoleAdmin))
						r.Post("/", payrollHandler.GeneratePayslip)
						r.Post("/bulk", payrollHandler.BulkGeneratePayslips)
						r.Delete("/{id}", payrollHandler.DeletePayslip)
					})

					// Approval and payment are restricted further
					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireRole(employee.RoleOwner, employee.RoleSeniorAdmin))
						r.Put("/{id}/approve", payrollHandler.ApprovePayslip)
						r.Put("/approve-all", payrollHandler.ApproveAllPayslips)
						r.Put("/{id}/pay", payrollHandler.MarkPayslipPaid)
					})
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(employee.RoleOwner, employee.RoleSeniorAdmin, employee.RoleAdmin))
					r.Get("/summary", payrollHandler.GetPayrollSummary)
					r.Get("/wps-register", exportHandler.DownloadWPSRegister)
					r.Get("/gratuity/report", payrollHandler.GetGratuityReport)
					r.Get("/gratuity/{employeeId}", payrollHandler.GetGratuity)
				})
			})
		})
	})
	return r
}
