package health

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"portfolio-backend/mailer"
)

func TestGetHealth(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	defer db.Close()

	router := HealthRouter(db, &mailer.Mailer{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Status    string            `json:"status"`
		Timestamp string            `json:"timestamp"`
		Services  map[string]string `json:"services"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "healthy", resp.Status)

	_, err = time.Parse(time.RFC3339, resp.Timestamp)
	assert.NoError(t, err)

	assert.Contains(t, resp.Services, "database")
	assert.Contains(t, resp.Services, "github_api")
	assert.Contains(t, resp.Services, "email_service")
	assert.Equal(t, "not_configured", resp.Services["email_service"])
}

func TestGetHealthEmailConfigured(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	defer db.Close()

	m := &mailer.Mailer{User: "owner@example.com", Password: "app-password"}
	router := HealthRouter(db, m)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Services map[string]string `json:"services"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "configured", resp.Services["email_service"])
}
