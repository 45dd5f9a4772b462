package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"

	"forms-backend/internal/dto"
	"forms-backend/internal/entities"
	"forms-backend/internal/repositories"
	apperrors "forms-backend/pkg/errors"
	"forms-backend/pkg/filestorage"
	"forms-backend/pkg/mailer"
)

type SubmissionServiceInterface interface {
	SubmitContact(ctx context.Context, d dto.ContactFormDTO) error
	SubmitApplication(ctx context.Context, d dto.JobApplicationDTO, att *filestorage.Attachment) error
}

type SubmissionService struct {
	contactRepo     repositories.ContactRepositoryInterface
	applicationRepo repositories.ApplicationRepositoryInterface
	fileStorage     filestorage.FileStorageInterface
	mailer          mailer.MailerInterface
	recipient       string
	logger          *zap.Logger
}

func NewSubmissionService(
	contactRepo repositories.ContactRepositoryInterface,
	applicationRepo repositories.ApplicationRepositoryInterface,
	fileStorage filestorage.FileStorageInterface,
	m mailer.MailerInterface,
	recipient string,
	logger *zap.Logger,
) SubmissionServiceInterface {
	return &SubmissionService{
		contactRepo:     contactRepo,
		applicationRepo: applicationRepo,
		fileStorage:     fileStorage,
		mailer:          m,
		recipient:       recipient,
		logger:          logger,
	}
}

// SubmitContact persists one contact-form submission. Persistence failure is
// terminal for this path.
func (s *SubmissionService) SubmitContact(ctx context.Context, d dto.ContactFormDTO) error {
	contact := &entities.ContactSubmission{
		Name:     d.Name,
		Surname:  d.Surname,
		Age:      null.Int64FromPtr(d.Age),
		Phone:    d.Phone,
		Email:    d.Email,
		Province: d.Province,
		Locality: d.Locality,
	}

	id, err := s.contactRepo.Insert(ctx, contact)
	if err != nil {
		s.logger.Error("failed to insert contact submission", zap.Error(err))
		// A saturated pool is transient; it keeps its own identity so the
		// boundary can answer 503 instead of a terminal 500.
		if errors.Is(err, apperrors.ErrPoolExhausted) {
			return err
		}
		return fmt.Errorf("%w: %v", apperrors.ErrPersistence, err)
	}

	s.logger.Info("contact submission stored", zap.Uint64("id", id))
	return nil
}

// SubmitApplication runs the job-application flow: persist the record, email
// the résumé to the hiring inbox, and release the attachment.
//
// Persist and notify are independent obligations: a database failure does not
// cancel the email attempt, because the mailed résumé is what the hiring inbox
// actually consumes. The caller sees the last failure encountered (a
// notification error wins when both fail) and never a success when either
// step failed.
//
// The attachment is released on every path that passed the presence check,
// including panics in the downstream steps; a release failure is logged and
// never surfaced.
func (s *SubmissionService) SubmitApplication(ctx context.Context, d dto.JobApplicationDTO, att *filestorage.Attachment) error {
	if att == nil {
		return apperrors.ErrMissingAttachment
	}

	defer func() {
		if relErr := s.fileStorage.Release(att); relErr != nil {
			s.logger.Warn("failed to release resume attachment", zap.String("path", att.Path), zap.Error(relErr))
		}
	}()

	application := &entities.JobApplication{
		Name:           d.Name,
		Surname:        d.Surname,
		Age:            d.Age,
		Phone:          d.Phone,
		Email:          d.Email,
		Province:       d.Province,
		Locality:       d.Locality,
		NationalID:     d.NationalID,
		Address:        d.Address,
		ResumeFilename: att.OriginalName,
	}

	var persistErr error
	if id, err := s.applicationRepo.Insert(ctx, application); err != nil {
		s.logger.Error("failed to insert job application", zap.Error(err))
		persistErr = err
	} else {
		s.logger.Info("job application stored", zap.Uint64("id", id))
	}

	notification := mailer.Notification{
		To:      s.recipient,
		Subject: fmt.Sprintf("New job application: %s %s", d.Name, d.Surname),
		Body: fmt.Sprintf(
			"Name: %s %s\nAge: %d\nPhone: %s\nEmail: %s\nProvince: %s\nLocality: %s\nNational ID: %s\nAddress: %s\n",
			d.Name, d.Surname, d.Age, d.Phone, d.Email, d.Province, d.Locality, d.NationalID, d.Address,
		),
		Attachment: att,
	}

	if err := s.mailer.Send(ctx, notification); err != nil {
		s.logger.Error("failed to send application email", zap.Error(err))
		return fmt.Errorf("%w: %v", apperrors.ErrNotification, err)
	}

	if persistErr != nil {
		if errors.Is(persistErr, apperrors.ErrPoolExhausted) {
			return persistErr
		}
		return fmt.Errorf("%w: %v", apperrors.ErrPersistence, persistErr)
	}
	return nil
}
