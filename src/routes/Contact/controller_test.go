package contact

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"portfolio-backend/mailer"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	// One shared in-memory database for the whole pool.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	store := NewStore(db)
	require.NoError(t, store.EnsureSchema())

	return store
}

func postContact(t *testing.T, handler http.Handler, payload map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	return rec
}

func validPayload() map[string]string {
	return map[string]string{
		"name":    "Test Visitor",
		"email":   "a@b.co",
		"message": "Hello, I would like to get in touch about a project.",
	}
}

func TestSubmitContactFormAccepted(t *testing.T) {
	store := newTestStore(t)
	router := ContactRouter(store, &mailer.Mailer{})

	rec := postContact(t, router, validPayload())

	require.Equal(t, http.StatusOK, rec.Code)

	var resp ContactResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Message received and stored successfully!", resp.Message)
}

func TestSubmitContactFormMessageLengthBoundary(t *testing.T) {
	store := newTestStore(t)
	router := ContactRouter(store, &mailer.Mailer{})

	tooShort := validPayload()
	tooShort["message"] = "123456789" // 9 chars
	rec := postContact(t, router, tooShort)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "message")

	minimal := validPayload()
	minimal["message"] = "1234567890" // 10 chars
	rec = postContact(t, router, minimal)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSubmitContactFormEmailValidation(t *testing.T) {
	store := newTestStore(t)
	router := ContactRouter(store, &mailer.Mailer{})

	invalid := validPayload()
	invalid["email"] = "not-an-email"
	rec := postContact(t, router, invalid)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "email")

	rec = postContact(t, router, validPayload())
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSubmitContactFormNameValidation(t *testing.T) {
	store := newTestStore(t)
	router := ContactRouter(store, &mailer.Mailer{})

	missing := validPayload()
	missing["name"] = ""
	rec := postContact(t, router, missing)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	long := validPayload()
	for len(long["name"]) <= 100 {
		long["name"] += "xxxxxxxxxx"
	}
	rec = postContact(t, router, long)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestSubmitContactFormRejectsBadJSON(t *testing.T) {
	store := newTestStore(t)
	router := ContactRouter(store, &mailer.Mailer{})

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmissionRoundTrip(t *testing.T) {
	store := newTestStore(t)
	router := ContactRouter(store, &mailer.Mailer{})

	payload := validPayload()
	rec := postContact(t, router, payload)
	require.Equal(t, http.StatusOK, rec.Code)

	submissions, err := store.ListRecent(100)
	require.NoError(t, err)
	require.Len(t, submissions, 1)

	stored := submissions[0]
	assert.NotEmpty(t, stored.ID)
	assert.Equal(t, payload["name"], stored.Name)
	assert.Equal(t, payload["email"], stored.Email)
	assert.Equal(t, payload["message"], stored.Message)
	// Mailer unconfigured: no send is attempted, status stays pending.
	assert.Equal(t, StatusPending, stored.Status)
	assert.False(t, stored.Timestamp.IsZero())
}

func TestListRecentOrdersAndCaps(t *testing.T) {
	store := newTestStore(t)
	router := ContactRouter(store, &mailer.Mailer{})

	for i := 0; i < 3; i++ {
		payload := validPayload()
		payload["name"] = string(rune('A' + i))
		rec := postContact(t, router, payload)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	submissions, err := store.ListRecent(2)
	require.NoError(t, err)
	require.Len(t, submissions, 2)
	assert.False(t, submissions[0].Timestamp.Before(submissions[1].Timestamp))
}
