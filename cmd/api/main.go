package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/hrms-api/internal/application/auth"
	"github.com/jhoicas/hrms-api/internal/application/org"
	"github.com/jhoicas/hrms-api/internal/domain/entity"
	"github.com/jhoicas/hrms-api/internal/infrastructure/mail"
	infrapdf "github.com/jhoicas/hrms-api/internal/infrastructure/pdf"
	"github.com/jhoicas/hrms-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/hrms-api/internal/interfaces/http"
	"github.com/jhoicas/hrms-api/pkg/config"
	"github.com/jhoicas/hrms-api/pkg/jwt"
	"github.com/jhoicas/hrms-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Configuración crítica ausente (clave JWT, SMTP) es fatal:
	// nunca se arranca con defaults silenciosos.
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("configuración inválida")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	issuer, err := jwt.NewIssuer(
		cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Audience,
		cfg.JWT.ExpMinutes, cfg.JWT.RememberMeExpMinutes,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("emisor de tokens")
	}

	notifier, err := mail.NewSMTPNotifier(cfg.SMTP)
	if err != nil {
		log.Fatal().Err(err).Msg("notificador SMTP")
	}

	userRepo := postgres.NewUserRepository(pool)
	authUC := auth.NewAuthUseCase(userRepo, notifier, issuer, auth.Policy{
		OTPRequired: cfg.Auth.OTPRequired,
		OTPTTL:      time.Duration(cfg.Auth.OTPTTLMinutes) * time.Minute,
		ResetTTL:    time.Duration(cfg.Auth.ResetTTLMinutes) * time.Minute,
		FrontendURL: cfg.Auth.FrontendURL,
	})

	departmentStore := postgres.NewDepartmentStore(pool)
	designationStore := postgres.NewDesignationStore(pool)
	postStore := postgres.NewPostStore(pool)
	employeeStore := postgres.NewEmployeeStore(pool)

	departmentUC := org.NewCatalogUseCase[entity.Department](departmentStore)
	designationUC := org.NewCatalogUseCase[entity.Designation](designationStore)
	postUC := org.NewCatalogUseCase[entity.Post](postStore)
	employeeUC := org.NewEmployeeUseCase(employeeStore)

	rosterGenerator := infrapdf.NewMarotoRosterGenerator()
	rosterUC := org.NewRosterUseCase(employeeStore, departmentStore, designationStore, postStore, rosterGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "HRMS API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		EmployeeUC:    employeeUC,
		RosterUC:      rosterUC,
		DepartmentUC:  departmentUC,
		DesignationUC: designationUC,
		PostUC:        postUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
