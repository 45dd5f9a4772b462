package routes

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"forms-backend/pkg/config"
	"forms-backend/pkg/filestorage"
	"forms-backend/pkg/mailer"
)

func InitRouter(
	e *echo.Echo,
	dbConn *pgxpool.Pool,
	fileStorage filestorage.FileStorageInterface,
	m mailer.MailerInterface,
	logger *zap.Logger,
	cfg *config.Config,
) {
	api := e.Group("/api")

	runSubmissionRouter(api, dbConn, fileStorage, m, logger, cfg)
	runReportRouter(api, dbConn, logger, cfg)
}
