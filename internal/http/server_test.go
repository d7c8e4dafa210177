package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baobao/elxup/internal/extension"
)

func newTestRouter(dir string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/models", snapshotHandler(dir, extension.ModelsSnapshotFile))
	r.GET("/api/voices", snapshotHandler(dir, extension.VoicesSnapshotFile))
	r.GET("/api/report", reportHandler(dir))
	r.GET("/api/health", healthHandler(dir))
	return r
}

func doGet(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSnapshotHandler_NotGeneratedYet(t *testing.T) {
	r := newTestRouter(t.TempDir())

	w := doGet(t, r, "/api/models")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "not generated yet")
}

func TestSnapshotHandler_ServesFileBytes(t *testing.T) {
	dir := t.TempDir()
	content := `[{"model_id": "eleven_turbo_v2"}]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, extension.ModelsSnapshotFile), []byte(content), 0644))
	r := newTestRouter(dir)

	w := doGet(t, r, "/api/models")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, content, w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
}

func TestReportHandler(t *testing.T) {
	dir := t.TempDir()
	r := newTestRouter(dir)

	w := doGet(t, r, "/api/report")
	assert.Equal(t, http.StatusNotFound, w.Code)

	require.NoError(t, os.WriteFile(filepath.Join(dir, extension.ReportFile), []byte("Models found: 3\n"), 0644))
	w = doGet(t, r, "/api/report")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Models found: 3\n", w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
}

func TestHealthHandler_ReportsSnapshotPresence(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, extension.ModelsSnapshotFile), []byte("[]"), 0644))
	r := newTestRouter(dir)

	w := doGet(t, r, "/api/health")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Status    string          `json:"status"`
		Snapshots map[string]bool `json:"snapshots"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
	assert.True(t, body.Snapshots["models"])
	assert.False(t, body.Snapshots["voices"])
	assert.False(t, body.Snapshots["report"])
}

func TestLoadCorsOrigins_Defaults(t *testing.T) {
	t.Setenv("ELXUP_CORS_ORIGINS", "")

	origins := loadCorsOrigins()
	assert.Contains(t, origins, "http://localhost:5173")
	assert.Contains(t, origins, "http://localhost:3000")
}

func TestLoadCorsOrigins_ParsesEnv(t *testing.T) {
	t.Setenv("ELXUP_CORS_ORIGINS", " https://a.example , https://b.example ,")

	origins := loadCorsOrigins()
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, origins)
}

func TestLoadCorsOrigins_OnlySeparatorsMeansWildcard(t *testing.T) {
	t.Setenv("ELXUP_CORS_ORIGINS", " , ,")

	assert.Equal(t, []string{"*"}, loadCorsOrigins())
}
