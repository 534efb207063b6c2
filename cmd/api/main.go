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

	_ "github.com/davinlab/salonlink-api/docs"
	"github.com/davinlab/salonlink-api/internal/application/approval"
	"github.com/davinlab/salonlink-api/internal/application/auth"
	appbackup "github.com/davinlab/salonlink-api/internal/application/backup"
	"github.com/davinlab/salonlink-api/internal/application/invitation"
	"github.com/davinlab/salonlink-api/internal/application/report"
	"github.com/davinlab/salonlink-api/internal/application/usecase"
	infrabackup "github.com/davinlab/salonlink-api/internal/infrastructure/backup"
	infrapdf "github.com/davinlab/salonlink-api/internal/infrastructure/pdf"
	"github.com/davinlab/salonlink-api/internal/infrastructure/postgres"
	httpRouter "github.com/davinlab/salonlink-api/internal/interfaces/http"
	"github.com/davinlab/salonlink-api/pkg/config"
	"github.com/davinlab/salonlink-api/pkg/logger"
)

// @title        SalonLink API
// @version      1.0
// @description  Franchise salon CRM: role-gated onboarding, HQ approval workflow, branch-scoped customers and appointments.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	branchRepo := postgres.NewBranchRepository(pool)
	invitationRepo := postgres.NewInvitationRepository(pool)
	approvalLogRepo := postgres.NewApprovalLogRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	appointmentRepo := postgres.NewAppointmentRepository(pool)
	apiKeyRepo := postgres.NewAPIKeyRepository(pool)
	statsRepo := postgres.NewStatsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, txRunner, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	invitationUC := invitation.New(invitationRepo, branchRepo, time.Duration(cfg.Invite.ExpiryHours)*time.Hour)
	approvalUC := approval.New(userRepo, approvalLogRepo)
	userUC := usecase.NewUserUseCase(userRepo, branchRepo)
	branchUC := usecase.NewBranchUseCase(branchRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	appointmentUC := usecase.NewAppointmentUseCase(appointmentRepo)
	statsUC := usecase.NewStatsUseCase(statsRepo)
	apiKeyUC := usecase.NewAPIKeyUseCase(apiKeyRepo)

	backupUC := appbackup.NewUseCase(
		userRepo, branchRepo, customerRepo, appointmentRepo, invitationRepo,
		infrabackup.NewXMLExporter(),
	)
	reportUC := report.NewUseCase(statsUC, infrapdf.NewMarotoReportGenerator())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI locally: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "SalonLink API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		UserUC:        userUC,
		BranchUC:      branchUC,
		CustomerUC:    customerUC,
		AppointmentUC: appointmentUC,
		StatsUC:       statsUC,
		APIKeyUC:      apiKeyUC,
		InvitationUC:  invitationUC,
		ApprovalUC:    approvalUC,
		BackupUC:      backupUC,
		ReportUC:      reportUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, closing server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
