package services

import (
	"context"

	"go.uber.org/zap"

	"forms-backend/internal/entities"
	"forms-backend/internal/repositories"
)

type ReportServiceInterface interface {
	GetContacts(ctx context.Context, filter repositories.ReportFilter) ([]entities.ContactSubmission, error)
	GetApplications(ctx context.Context, filter repositories.ReportFilter) ([]entities.JobApplication, error)
}

type reportService struct {
	reportRepo repositories.ReportRepositoryInterface
	logger     *zap.Logger
}

func NewReportService(reportRepo repositories.ReportRepositoryInterface, logger *zap.Logger) ReportServiceInterface {
	return &reportService{reportRepo: reportRepo, logger: logger}
}

func (s *reportService) GetContacts(ctx context.Context, filter repositories.ReportFilter) ([]entities.ContactSubmission, error) {
	contacts, err := s.reportRepo.GetContacts(ctx, filter)
	if err != nil {
		s.logger.Error("failed to load contact submissions", zap.Error(err))
		return nil, err
	}
	return contacts, nil
}

func (s *reportService) GetApplications(ctx context.Context, filter repositories.ReportFilter) ([]entities.JobApplication, error) {
	applications, err := s.reportRepo.GetApplications(ctx, filter)
	if err != nil {
		s.logger.Error("failed to load job applications", zap.Error(err))
		return nil, err
	}
	return applications, nil
}
