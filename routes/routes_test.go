package routes

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eagleboard/eagleboard-backend/config"
)

func newTestApp(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	dir := t.TempDir()
	cfg := &config.Config{
		Port:              "0",
		StoreBackend:      "file",
		DataFile:          filepath.Join(dir, "events.json"),
		UploadDir:         filepath.Join(dir, "uploads"),
		RequireFutureDate: true,
	}

	r := gin.New()
	require.NoError(t, Setup(r, cfg))
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRootInfo(t *testing.T) {
	w := get(newTestApp(t), "/")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"EagleBoard","version":"1.0.0"}`, w.Body.String())
}

func TestHealthz(t *testing.T) {
	w := get(newTestApp(t), "/healthz")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"OK"}`, w.Body.String())
}

func TestUploadNotFound(t *testing.T) {
	w := get(newTestApp(t), "/uploads/missing.png")

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "File not found")
}

func TestCreateListAndFetchPoster(t *testing.T) {
	r := newTestApp(t)

	// Create an event with a poster
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fields := url.Values{
		"title":       {"Fair"},
		"description": {"Spring fair"},
		"event_date":  {"2099-01-01T10:00:00Z"},
		"location":    {"Quad"},
	}
	for field, vals := range fields {
		require.NoError(t, mw.WriteField(field, vals[0]))
	}
	fw, err := mw.CreateFormFile("poster", "fair.png")
	require.NoError(t, err)
	_, err = fw.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/events", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		ID        string  `json:"id"`
		PosterURL *string `json:"poster_url"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotNil(t, created.PosterURL)

	// The created event shows up in the listing
	lw := get(r, "/events")
	require.Equal(t, http.StatusOK, lw.Code)
	assert.Contains(t, lw.Body.String(), created.ID)

	// The poster reference serves the uploaded bytes back
	pw := get(r, *created.PosterURL)
	require.Equal(t, http.StatusOK, pw.Code)
	assert.Equal(t, "png-bytes", pw.Body.String())
	assert.True(t, strings.HasPrefix(*created.PosterURL, "/uploads/"))
}

func TestCreateEventRejectsMissingFields(t *testing.T) {
	r := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/events", strings.NewReader("title=Fair"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "description")
}
