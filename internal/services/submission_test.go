package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"forms-backend/internal/dto"
	"forms-backend/internal/entities"
	apperrors "forms-backend/pkg/errors"
	"forms-backend/pkg/filestorage"
	"forms-backend/pkg/mailer"
)

type fakeContactRepo struct {
	mu      sync.Mutex
	inserts int
	fail    bool
	err     error
}

func (r *fakeContactRepo) Insert(ctx context.Context, c *entities.ContactSubmission) (uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return 0, r.err
	}
	if r.fail {
		return 0, errors.New("connection refused")
	}
	r.inserts++
	return uint64(r.inserts), nil
}

type fakeApplicationRepo struct {
	mu      sync.Mutex
	inserts int
	fail    bool
	err     error
}

func (r *fakeApplicationRepo) Insert(ctx context.Context, a *entities.JobApplication) (uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return 0, r.err
	}
	if r.fail {
		return 0, errors.New("connection refused")
	}
	r.inserts++
	return uint64(r.inserts), nil
}

type fakeMailer struct {
	mu          sync.Mutex
	sent        []mailer.Notification
	fail        bool
	missingFile bool
}

func (m *fakeMailer) Send(ctx context.Context, n mailer.Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if n.Attachment != nil {
		// The attachment must still be readable while the notification is in flight.
		if _, err := os.Stat(n.Attachment.Path); err != nil {
			m.missingFile = true
		}
	}
	m.sent = append(m.sent, n)
	if m.fail {
		return errors.New("smtp: connection refused")
	}
	return nil
}

func newTestService(t *testing.T, contactRepo *fakeContactRepo, appRepo *fakeApplicationRepo, m *fakeMailer) (SubmissionServiceInterface, filestorage.FileStorageInterface) {
	t.Helper()
	store, err := filestorage.NewLocalFileStorage(t.TempDir(), zap.NewNop())
	require.NoError(t, err)
	svc := NewSubmissionService(contactRepo, appRepo, store, m, "jobs@example.com", zap.NewNop())
	return svc, store
}

func saveAttachment(t *testing.T, store filestorage.FileStorageInterface) *filestorage.Attachment {
	t.Helper()
	att, err := store.Save(strings.NewReader("%PDF-1.4 fake resume"), "resume.pdf")
	require.NoError(t, err)
	require.FileExists(t, att.Path)
	return att
}

func applicationDTO() dto.JobApplicationDTO {
	return dto.JobApplicationDTO{
		Name:       "Ana",
		Surname:    "Gomez",
		Age:        30,
		Phone:      "123456789",
		Email:      "a@x.com",
		Province:   "X",
		Locality:   "Y",
		NationalID: "12345678",
		Address:    "Main St 1",
	}
}

func TestSubmitContact(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		contactRepo := &fakeContactRepo{}
		svc, _ := newTestService(t, contactRepo, &fakeApplicationRepo{}, &fakeMailer{})

		age := int64(30)
		err := svc.SubmitContact(context.Background(), dto.ContactFormDTO{
			Name: "Ana", Surname: "Gomez", Age: &age, Phone: "123456789",
			Email: "a@x.com", Province: "X", Locality: "Y",
		})
		require.NoError(t, err)
		assert.Equal(t, 1, contactRepo.inserts)
	})

	t.Run("persistence failure is terminal", func(t *testing.T) {
		contactRepo := &fakeContactRepo{fail: true}
		svc, _ := newTestService(t, contactRepo, &fakeApplicationRepo{}, &fakeMailer{})

		err := svc.SubmitContact(context.Background(), dto.ContactFormDTO{
			Name: "Ana", Surname: "Gomez", Phone: "123456789",
			Email: "a@x.com", Province: "X", Locality: "Y",
		})
		assert.ErrorIs(t, err, apperrors.ErrPersistence)
		assert.Equal(t, 0, contactRepo.inserts)
	})

	t.Run("pool exhaustion keeps its identity", func(t *testing.T) {
		contactRepo := &fakeContactRepo{err: fmt.Errorf("%w: acquire timed out", apperrors.ErrPoolExhausted)}
		svc, _ := newTestService(t, contactRepo, &fakeApplicationRepo{}, &fakeMailer{})

		err := svc.SubmitContact(context.Background(), dto.ContactFormDTO{
			Name: "Ana", Surname: "Gomez", Phone: "123456789",
			Email: "a@x.com", Province: "X", Locality: "Y",
		})
		assert.ErrorIs(t, err, apperrors.ErrPoolExhausted, "a saturated pool is transient, not a terminal store failure")
		assert.NotErrorIs(t, err, apperrors.ErrPersistence)
	})
}

func TestSubmitApplication_PoolExhaustion(t *testing.T) {
	appRepo := &fakeApplicationRepo{err: fmt.Errorf("%w: acquire timed out", apperrors.ErrPoolExhausted)}
	m := &fakeMailer{}
	svc, store := newTestService(t, &fakeContactRepo{}, appRepo, m)
	att := saveAttachment(t, store)

	err := svc.SubmitApplication(context.Background(), applicationDTO(), att)
	assert.ErrorIs(t, err, apperrors.ErrPoolExhausted)
	assert.NotErrorIs(t, err, apperrors.ErrPersistence)
	assert.Len(t, m.sent, 1, "the email attempt still happens")
	assert.NoFileExists(t, att.Path, "the attachment is still released")
}

// The attachment must be gone after SubmitApplication returns, for every
// combination of persist/notify outcomes.
func TestSubmitApplication_AttachmentAlwaysReleased(t *testing.T) {
	cases := []struct {
		name        string
		persistFail bool
		notifyFail  bool
		wantErr     error
	}{
		{"both succeed", false, false, nil},
		{"persist fails", true, false, apperrors.ErrPersistence},
		{"notify fails", false, true, apperrors.ErrNotification},
		{"both fail", true, true, apperrors.ErrNotification},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			appRepo := &fakeApplicationRepo{fail: tc.persistFail}
			m := &fakeMailer{fail: tc.notifyFail}
			svc, store := newTestService(t, &fakeContactRepo{}, appRepo, m)
			att := saveAttachment(t, store)

			err := svc.SubmitApplication(context.Background(), applicationDTO(), att)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}

			assert.NoFileExists(t, att.Path, "attachment must be removed on every outcome")
			assert.Len(t, m.sent, 1, "the email attempt must happen regardless of persistence")
			assert.False(t, m.missingFile, "attachment must not be removed before the send finishes")
		})
	}
}

func TestSubmitApplication_MissingAttachment(t *testing.T) {
	appRepo := &fakeApplicationRepo{}
	m := &fakeMailer{}
	svc, _ := newTestService(t, &fakeContactRepo{}, appRepo, m)

	err := svc.SubmitApplication(context.Background(), applicationDTO(), nil)
	assert.ErrorIs(t, err, apperrors.ErrMissingAttachment)
	assert.Equal(t, 0, appRepo.inserts, "missing attachment must not reach the repository")
	assert.Empty(t, m.sent, "missing attachment must not reach the mailer")
}

func TestSubmitApplication_ReleaseIsIdempotent(t *testing.T) {
	svc, store := newTestService(t, &fakeContactRepo{}, &fakeApplicationRepo{}, &fakeMailer{})
	att := saveAttachment(t, store)

	require.NoError(t, svc.SubmitApplication(context.Background(), applicationDTO(), att))
	assert.NoFileExists(t, att.Path)

	// Releasing an already-released handle must not raise anything user-visible.
	assert.NoError(t, store.Release(att))
	assert.NoError(t, store.Release(att))
}

func TestSubmitApplication_Concurrent(t *testing.T) {
	appRepo := &fakeApplicationRepo{}
	m := &fakeMailer{}
	svc, store := newTestService(t, &fakeContactRepo{}, appRepo, m)

	const workers = 20
	attachments := make([]*filestorage.Attachment, workers)
	for i := range attachments {
		att, err := store.Save(strings.NewReader(fmt.Sprintf("resume %d", i)), fmt.Sprintf("cv-%d.pdf", i))
		require.NoError(t, err)
		attachments[i] = att
	}

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(att *filestorage.Attachment) {
			defer wg.Done()
			assert.NoError(t, svc.SubmitApplication(context.Background(), applicationDTO(), att))
		}(attachments[i])
	}
	wg.Wait()

	assert.Equal(t, workers, appRepo.inserts, "exactly one insert per request")
	assert.Len(t, m.sent, workers, "exactly one email per request")
	assert.False(t, m.missingFile, "no cross-request deletion while a send is in flight")
	for _, att := range attachments {
		assert.NoFileExists(t, att.Path)
	}
}
