package routes

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"forms-backend/internal/controllers"
	"forms-backend/internal/repositories"
	"forms-backend/internal/services"
	"forms-backend/pkg/config"
)

func runReportRouter(
	group *echo.Group,
	dbConn *pgxpool.Pool,
	logger *zap.Logger,
	cfg *config.Config,
) {
	reportRepo := repositories.NewReportRepository(dbConn, cfg.Postgres.AcquireTimeout)
	reportService := services.NewReportService(reportRepo, logger)
	reportController := controllers.NewReportController(reportService, logger)

	group.GET("/reports/submissions", reportController.GetSubmissions)
}
