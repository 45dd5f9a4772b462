package filestorage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "forms-backend/pkg/errors"
)

func newTestStorage(t *testing.T) FileStorageInterface {
	t.Helper()
	store, err := NewLocalFileStorage(t.TempDir(), zap.NewNop())
	require.NoError(t, err)
	return store
}

func TestSave(t *testing.T) {
	store := newTestStorage(t)

	att, err := store.Save(strings.NewReader("%PDF-1.4 content"), "resume.pdf")
	require.NoError(t, err)

	assert.FileExists(t, att.Path)
	assert.Equal(t, "resume.pdf", att.OriginalName)
	assert.Equal(t, int64(len("%PDF-1.4 content")), att.Size)
	assert.False(t, att.CreatedAt.IsZero())
	assert.True(t, strings.HasSuffix(att.Path, ".pdf"), "stored name keeps the original extension")
}

func TestSave_UniqueNames(t *testing.T) {
	store := newTestStorage(t)

	first, err := store.Save(strings.NewReader("one"), "resume.pdf")
	require.NoError(t, err)
	second, err := store.Save(strings.NewReader("two"), "resume.pdf")
	require.NoError(t, err)

	assert.NotEqual(t, first.Path, second.Path)
}

func TestSave_RejectsEmptyUpload(t *testing.T) {
	store := newTestStorage(t)

	att, err := store.Save(strings.NewReader(""), "empty.pdf")
	assert.ErrorIs(t, err, apperrors.ErrInvalidUpload)
	assert.Nil(t, att)
}

func TestRelease_IsIdempotent(t *testing.T) {
	store := newTestStorage(t)

	att, err := store.Save(strings.NewReader("content"), "resume.pdf")
	require.NoError(t, err)

	require.NoError(t, store.Release(att))
	assert.NoFileExists(t, att.Path)

	assert.NoError(t, store.Release(att), "releasing an absent file is not an error")
	assert.NoError(t, store.Release(nil))
}
