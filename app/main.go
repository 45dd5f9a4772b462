package main

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"forms-backend/internal/routes"
	"forms-backend/internal/services"
	"forms-backend/pkg/config"
	"forms-backend/pkg/customvalidator"
	"forms-backend/pkg/database/postgresql"
	apperrors "forms-backend/pkg/errors"
	"forms-backend/pkg/filestorage"
	applogger "forms-backend/pkg/logger"
	"forms-backend/pkg/mailer"
	appmiddleware "forms-backend/pkg/middleware"
	"forms-backend/pkg/utils"
)

func main() {
	e := echo.New()
	logger := applogger.NewLogger()
	defer logger.Sync()

	cfg := config.New()

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("panic recovered",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				httpErr := apperrors.NewHttpError(http.StatusInternalServerError, "internal server error", err)
				utils.ErrorResponse(c, httpErr, logger)
			}
			return err
		},
	}))

	e.Use(middleware.CORS())
	e.Use(middleware.Gzip())
	e.Use(middleware.Secure())
	e.Use(middleware.BodyLimit("12M"))
	e.Use(appmiddleware.RequestLogger(logger))

	v := validator.New()
	if err := customvalidator.RegisterCustomValidations(v); err != nil {
		logger.Fatal("failed to register custom validation rules", zap.Error(err))
	}
	e.Validator = utils.NewValidator(v)

	dbConn := postgresql.ConnectDB(cfg.Postgres)
	defer dbConn.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       0,
	})
	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		logger.Warn("redis unavailable, rate limiting will fail open",
			zap.Error(err), zap.String("address", cfg.Redis.Address))
	}
	e.Use(appmiddleware.RateLimitWithRedis(redisClient, cfg.RateLimit.Window, cfg.RateLimit.Max, logger))

	fileStorage, err := filestorage.NewLocalFileStorage(cfg.Uploads.Dir, logger)
	if err != nil {
		logger.Fatal("failed to initialize the attachment store", zap.Error(err))
	}

	smtpMailer := mailer.NewSMTPMailer(cfg.SMTP, logger)

	sweeper := services.NewSweeper(cfg.Uploads.Dir, cfg.Sweeper.Retention, cfg.Sweeper.Interval, logger)
	sweeper.Start()
	defer sweeper.Stop()

	routes.InitRouter(e, dbConn, fileStorage, smtpMailer, logger, cfg)

	logger.Info("server listening", zap.String("port", cfg.Server.Port))
	if err := e.Start(":" + cfg.Server.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
