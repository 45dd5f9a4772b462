package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"forms-backend/internal/dto"
	"forms-backend/internal/services"
	apperrors "forms-backend/pkg/errors"
	"forms-backend/pkg/filestorage"
	"forms-backend/pkg/utils"
)

type SubmissionController struct {
	submissionService services.SubmissionServiceInterface
	fileStorage       filestorage.FileStorageInterface
	maxUploadSizeMB   int64
	logger            *zap.Logger
}

func NewSubmissionController(
	submissionService services.SubmissionServiceInterface,
	fileStorage filestorage.FileStorageInterface,
	maxUploadSizeMB int64,
	logger *zap.Logger,
) *SubmissionController {
	return &SubmissionController{
		submissionService: submissionService,
		fileStorage:       fileStorage,
		maxUploadSizeMB:   maxUploadSizeMB,
		logger:            logger,
	}
}

func (c *SubmissionController) CreateContact(ctx echo.Context) error {
	var d dto.ContactFormDTO
	if err := ctx.Bind(&d); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewInvalidInputError("malformed form data: %v", err), c.logger)
	}
	if err := ctx.Validate(&d); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.submissionService.SubmitContact(ctx.Request().Context(), d); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, nil, "Contact submission stored successfully", http.StatusOK)
}

func (c *SubmissionController) CreateApplication(ctx echo.Context) error {
	var d dto.JobApplicationDTO
	if err := ctx.Bind(&d); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewInvalidInputError("malformed form data: %v", err), c.logger)
	}
	if err := ctx.Validate(&d); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	// A request without the resume field still goes through the service so the
	// missing-attachment outcome is decided in one place, with no side effects.
	var att *filestorage.Attachment
	fileHeader, err := ctx.FormFile("resume")
	if err == nil {
		if err := utils.ValidateUpload(fileHeader, c.maxUploadSizeMB); err != nil {
			return utils.ErrorResponse(ctx, err, c.logger)
		}

		src, err := fileHeader.Open()
		if err != nil {
			return utils.ErrorResponse(ctx, apperrors.ErrInvalidUpload, c.logger)
		}
		att, err = c.fileStorage.Save(src, fileHeader.Filename)
		src.Close()
		if err != nil {
			c.logger.Error("failed to store uploaded resume", zap.Error(err))
			return utils.ErrorResponse(ctx, err, c.logger)
		}
	}

	if err := c.submissionService.SubmitApplication(ctx.Request().Context(), d, att); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, nil, "Application submitted successfully", http.StatusOK)
}
