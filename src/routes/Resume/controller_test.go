package resume

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	user "portfolio-backend/src/routes/User"
)

func TestRenderHTML(t *testing.T) {
	renderer, err := NewRenderer(user.DefaultProfile)
	require.NoError(t, err)

	body, err := renderer.RenderHTML(time.Date(2025, 8, 30, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	html := string(body)
	assert.Contains(t, html, "<!DOCTYPE html>")
	assert.Contains(t, html, "Dinesh E")
	assert.Contains(t, html, "Vellore Institute of Technology")
	assert.Contains(t, html, "Generated on August 30, 2025")
}

func TestDownloadResume(t *testing.T) {
	renderer, err := NewRenderer(user.DefaultProfile)
	require.NoError(t, err)

	router := ResumeRouter(renderer)

	req := httptest.NewRequest(http.MethodGet, "/download", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=Dinesh_E_Resume.html", rec.Header().Get("Content-Disposition"))
	assert.Contains(t, rec.Body.String(), "Dinesh E")
}
