package routes

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"forms-backend/internal/controllers"
	"forms-backend/internal/repositories"
	"forms-backend/internal/services"
	"forms-backend/pkg/config"
	"forms-backend/pkg/filestorage"
	"forms-backend/pkg/mailer"
)

func runSubmissionRouter(
	group *echo.Group,
	dbConn *pgxpool.Pool,
	fileStorage filestorage.FileStorageInterface,
	m mailer.MailerInterface,
	logger *zap.Logger,
	cfg *config.Config,
) {
	contactRepo := repositories.NewContactRepository(dbConn, cfg.Postgres.AcquireTimeout)
	applicationRepo := repositories.NewApplicationRepository(dbConn, cfg.Postgres.AcquireTimeout)

	submissionService := services.NewSubmissionService(
		contactRepo,
		applicationRepo,
		fileStorage,
		m,
		cfg.SMTP.To,
		logger,
	)

	submissionController := controllers.NewSubmissionController(
		submissionService,
		fileStorage,
		cfg.Uploads.MaxSizeMB,
		logger,
	)

	group.POST("/contact", submissionController.CreateContact)
	group.POST("/applications", submissionController.CreateApplication)
}
