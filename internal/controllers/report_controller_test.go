package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"forms-backend/internal/entities"
	"forms-backend/internal/repositories"
)

type fakeReportService struct {
	contacts     []entities.ContactSubmission
	applications []entities.JobApplication
	gotFilter    repositories.ReportFilter
}

func (s *fakeReportService) GetContacts(ctx context.Context, filter repositories.ReportFilter) ([]entities.ContactSubmission, error) {
	s.gotFilter = filter
	return s.contacts, nil
}

func (s *fakeReportService) GetApplications(ctx context.Context, filter repositories.ReportFilter) ([]entities.JobApplication, error) {
	s.gotFilter = filter
	return s.applications, nil
}

func TestGetSubmissions_JSON(t *testing.T) {
	e := echo.New()
	svc := &fakeReportService{contacts: []entities.ContactSubmission{
		{ID: 1, Name: "Ana", Surname: "Gomez", Age: null.Int64From(30), CreatedAt: time.Now()},
	}}
	ctrl := NewReportController(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/reports/submissions?kind=contacts&limit=5", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, ctrl.GetSubmissions(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Ana")
	assert.Equal(t, uint64(5), svc.gotFilter.Limit)
}

func TestGetSubmissions_XLSX(t *testing.T) {
	e := echo.New()
	svc := &fakeReportService{applications: []entities.JobApplication{
		{ID: 1, Name: "Ana", Surname: "Gomez", Age: 30, NationalID: "12345678", CreatedAt: time.Now()},
	}}
	ctrl := NewReportController(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/reports/submissions?kind=applications&format=xlsx", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, ctrl.GetSubmissions(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		rec.Header().Get(echo.HeaderContentType))
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "applications-")
	assert.NotEmpty(t, rec.Body.Bytes())
}

func TestGetSubmissions_UnknownKind(t *testing.T) {
	e := echo.New()
	ctrl := NewReportController(&fakeReportService{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/reports/submissions?kind=bogus", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, ctrl.GetSubmissions(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
