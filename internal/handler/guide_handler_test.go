package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/yatrika/service-planner/internal/application"
	"github.com/yatrika/service-planner/internal/domain/trip"
	"github.com/yatrika/service-planner/internal/repository"
)

type stubGenerator struct{}

func (stubGenerator) GenerateText(context.Context, string) (string, error) {
	return "An engaging travel guide.", nil
}

type recordingWriter struct{}

func (recordingWriter) WriteDocument(path, _, content string) error {
	return os.WriteFile(path, []byte("%PDF-1.4 "+content), 0o644)
}

func newGuideRouter(t *testing.T) (*gin.Engine, trip.TripRepository, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo, err := repository.NewFileTripRepository(t.TempDir())
	require.NoError(t, err)

	guideDir := t.TempDir()
	svc, err := application.NewGuideService(
		repo, stubGenerator{}, recordingWriter{}, noopPublisher{}, guideDir, zap.NewNop(),
	)
	require.NoError(t, err)

	router := gin.New()
	NewGuideHandler(svc).RegisterRoutes(&router.RouterGroup)
	return router, repo, guideDir
}

func seedRecord(t *testing.T, repo trip.TripRepository) string {
	t.Helper()
	record := trip.NewTripRecord("Mumbai", "Pune", trip.ModeDrive, []trip.Route{{
		Strategy:     "Default",
		DistanceText: "148 km",
		DurationText: "2 hours 30 mins",
		RouteNumber:  1,
		FareInfo: &trip.FareInfo{
			Fares:      map[string]trip.Fare{"personal_car": {Amount: 1036, Currency: "INR"}},
			DistanceKm: 148,
		},
	}})
	path, err := repo.Save(context.Background(), record, "route_data_test.json")
	require.NoError(t, err)
	return path
}

func TestGenerateGuide_Endpoint_Success(t *testing.T) {
	router, repo, _ := newGuideRouter(t)
	dataFile := seedRecord(t, repo)

	w := postJSON(router, "/generate-guide", gin.H{"data_file": dataFile})

	require.Equal(t, http.StatusOK, w.Code)

	var resp GenerateGuideResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.FileExists(t, resp.PDFFile)
}

func TestGenerateGuide_Endpoint_MissingDataFile(t *testing.T) {
	router, _, _ := newGuideRouter(t)

	w := postJSON(router, "/generate-guide", gin.H{"data_file": "/tmp/does-not-exist.json"})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGenerateGuide_Endpoint_MissingField(t *testing.T) {
	router, _, _ := newGuideRouter(t)

	w := postJSON(router, "/generate-guide", gin.H{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDownloadGuide_Endpoint(t *testing.T) {
	router, _, guideDir := newGuideRouter(t)
	require.NoError(t, os.WriteFile(filepath.Join(guideDir, "Tour_guide_abc.pdf"), []byte("%PDF-1.4"), 0o644))

	req := httptest.NewRequest(http.MethodGet, "/download-guide/Tour_guide_abc.pdf", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "Tour_guide_abc.pdf")
	assert.Equal(t, "%PDF-1.4", w.Body.String())
}

func TestDownloadGuide_Endpoint_NotFound(t *testing.T) {
	router, _, _ := newGuideRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/download-guide/Tour_guide_missing.pdf", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
