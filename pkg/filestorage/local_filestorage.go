package filestorage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "forms-backend/pkg/errors"
)

// Attachment is the lifecycle handle around one uploaded file. It is owned by
// exactly one request and must reach the released state exactly once, either
// through Release or through the sweeper once it is old enough.
type Attachment struct {
	Path         string
	OriginalName string
	Size         int64
	CreatedAt    time.Time
}

type FileStorageInterface interface {
	Save(file io.Reader, originalFileName string) (*Attachment, error)
	Release(att *Attachment) error
}

type LocalFileStorage struct {
	basePath string
	logger   *zap.Logger
}

func NewLocalFileStorage(basePath string, logger *zap.Logger) (FileStorageInterface, error) {
	if _, err := os.Stat(basePath); os.IsNotExist(err) {
		if err := os.MkdirAll(basePath, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create the upload directory: %w", err)
		}
	}
	return &LocalFileStorage{basePath: basePath, logger: logger}, nil
}

// Save materializes an upload under a unique name and wraps it into an
// Attachment handle. Zero-length uploads are rejected and leave nothing on disk.
func (s *LocalFileStorage) Save(file io.Reader, originalFileName string) (*Attachment, error) {
	ext := filepath.Ext(originalFileName)
	uniqueFileName := fmt.Sprintf("%s-%s%s", time.Now().Format("2006-01-02"), uuid.New().String(), ext)

	datePath := time.Now().Format("2006/01/02")
	fullDirPath := filepath.Join(s.basePath, datePath)
	if err := os.MkdirAll(fullDirPath, 0o755); err != nil {
		return nil, err
	}

	fullPath := filepath.Join(fullDirPath, uniqueFileName)
	dst, err := os.Create(fullPath)
	if err != nil {
		return nil, err
	}

	written, err := io.Copy(dst, file)
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(fullPath)
		return nil, err
	}
	if written == 0 {
		_ = os.Remove(fullPath)
		return nil, apperrors.ErrInvalidUpload
	}

	return &Attachment{
		Path:         fullPath,
		OriginalName: originalFileName,
		Size:         written,
		CreatedAt:    time.Now(),
	}, nil
}

// Release deletes the underlying file. Deleting an already-absent file is not
// an error, so a second Release on the same handle is harmless.
func (s *LocalFileStorage) Release(att *Attachment) error {
	if att == nil {
		return nil
	}
	if _, err := os.Stat(att.Path); os.IsNotExist(err) {
		s.logger.Debug("attachment already removed", zap.String("path", att.Path))
		return nil
	}
	if err := os.Remove(att.Path); err != nil {
		return fmt.Errorf("failed to remove attachment %s: %w", att.Path, err)
	}
	return nil
}
