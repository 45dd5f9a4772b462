package utils

import (
	"mime/multipart"

	apperrors "forms-backend/pkg/errors"
)

// ValidateUpload runs the cheap checks available before the file is
// materialized on disk. Content checks belong to the attachment store.
func ValidateUpload(fileHeader *multipart.FileHeader, maxSizeMB int64) error {
	if fileHeader == nil || fileHeader.Size == 0 {
		return apperrors.ErrInvalidUpload
	}
	if maxSizeMB > 0 && fileHeader.Size > maxSizeMB*1024*1024 {
		return apperrors.NewInvalidInputError("file size (%d KB) exceeds the %d MB limit", fileHeader.Size/1024, maxSizeMB)
	}
	return nil
}
