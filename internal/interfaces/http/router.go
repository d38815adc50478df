package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/hrms-api/internal/application/auth"
	"github.com/jhoicas/hrms-api/internal/application/dto"
	"github.com/jhoicas/hrms-api/internal/application/org"
	"github.com/jhoicas/hrms-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	EmployeeUC    *org.EmployeeUseCase
	RosterUC      *org.RosterUseCase
	DepartmentUC  *org.CatalogUseCase[entity.Department]
	DesignationUC *org.CatalogUseCase[entity.Designation]
	PostUC        *org.CatalogUseCase[entity.Post]
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/verify-register-otp", authHandler.VerifyRegisterOTP)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/verify-login-otp", authHandler.VerifyLoginOTP)
	authGroup.Post("/forgot-password", authHandler.ForgotPassword)
	authGroup.Post("/reset-password", authHandler.ResetPassword)

	// Auth (protegido con Bearer Token)
	protectedAuth := authGroup.Group("/", AuthMiddleware(deps.JWTSecret))
	protectedAuth.Get("/profile", authHandler.GetProfile)
	protectedAuth.Put("/profile", authHandler.UpdateProfile)
	protectedAuth.Post("/change-password", authHandler.ChangePassword)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Employees (protegido)
	employees := protected.Group("/employees")
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC, deps.RosterUC)
	employees.Get("/", employeeHandler.List)
	employees.Get("/report", employeeHandler.Report)
	employees.Get("/:id", employeeHandler.Get)
	employees.Post("/", employeeHandler.Create)
	employees.Put("/:id", employeeHandler.Update)
	employees.Delete("/:id", employeeHandler.Delete)

	// Catálogos maestros (protegido): tres instancias del mismo patrón genérico
	master := protected.Group("/master")
	registerCatalogRoutes[entity.Department, dto.DepartmentRequest](master.Group("/departments"), deps.DepartmentUC)
	registerCatalogRoutes[entity.Designation, dto.DesignationRequest](master.Group("/designations"), deps.DesignationUC)
	registerCatalogRoutes[entity.Post, dto.PostRequest](master.Group("/posts"), deps.PostUC)
}
