package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/haamee/haamee-api/internal/config"
	"github.com/haamee/haamee-api/internal/repository/dao"
	"github.com/haamee/haamee-api/internal/storage"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	dir := t.TempDir()
	db, err := gorm.Open(sqlite.Open(filepath.Join(dir, "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, dao.InitTables(db))

	uploads, err := storage.New(filepath.Join(dir, "uploads"))
	require.NoError(t, err)

	conf := &config.AppConfig{
		API: &config.APIConfig{
			Environment:        "test",
			BaseURL:            "localhost",
			Port:               "0",
			AllowedCORSDomains: []string{"http://localhost:3000"},
			JWTSigningKey:      "test-signing-key",
			UploadsDir:         uploads.Dir(),
			AdminUsername:      "admin",
			AdminPassword:      "123456",
		},
		Gin: &config.GinConfig{Mode: gin.TestMode},
	}

	return NewServer(conf, db, uploads)
}

func doJSON(t *testing.T, s *Server, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	s.Router.ServeHTTP(recorder, req)

	return recorder
}

func login(t *testing.T, s *Server) string {
	t.Helper()

	recorder := doJSON(t, s, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": "admin",
		"password": "123456",
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)

	return resp.Token
}

func TestHealthcheckIsOpen(t *testing.T) {
	s := newTestServer(t)

	recorder := doJSON(t, s, http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Haamee Server Running")
}

func TestAPIRequiresToken(t *testing.T) {
	s := newTestServer(t)

	for _, path := range []string{"/api/persons", "/api/organizations", "/api/events", "/api/applications", "/api/payments"} {
		recorder := doJSON(t, s, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code, path)
		assert.Contains(t, recorder.Body.String(), `"error"`)
	}

	recorder := doJSON(t, s, http.MethodGet, "/api/persons", "not-a-valid-token", nil)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestLoginRejectsWrongCredentials(t *testing.T) {
	s := newTestServer(t)

	recorder := doJSON(t, s, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": "admin",
		"password": "nope",
	})
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	recorder = doJSON(t, s, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": "admin",
	})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestPersonLifecycle(t *testing.T) {
	s := newTestServer(t)
	token := login(t, s)

	recorder := doJSON(t, s, http.MethodPost, "/api/persons", token, map[string]any{
		"firstName":    "Sara",
		"lastName":     "Ahmadi",
		"nationalCode": "0012345678",
		"contacts": []map[string]string{
			{"contactType": "mobile", "contactValue": "09120000001"},
		},
		"roles": []map[string]string{
			{"roleTitle": "Researcher"},
		},
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	var created struct {
		ID      uint   `json:"id"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &created))
	assert.Equal(t, "Person created", created.Message)
	require.NotZero(t, created.ID)

	recorder = doJSON(t, s, http.MethodGet, fmt.Sprintf("/api/persons/%d/contacts", created.ID), token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "09120000001")

	recorder = doJSON(t, s, http.MethodPut, fmt.Sprintf("/api/persons/%d", created.ID), token, map[string]any{
		"firstName": "Sara",
		"lastName":  "Rahimi",
	})
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Person updated")

	recorder = doJSON(t, s, http.MethodGet, fmt.Sprintf("/api/persons/%d", created.ID), token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Rahimi")
	// Full overwrite cleared the national code.
	assert.NotContains(t, recorder.Body.String(), "0012345678")

	recorder = doJSON(t, s, http.MethodPut, "/api/persons/99999", token, map[string]any{"firstName": "Ghost"})
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	recorder = doJSON(t, s, http.MethodDelete, fmt.Sprintf("/api/persons/%d", created.ID), token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Person deleted")

	recorder = doJSON(t, s, http.MethodGet, fmt.Sprintf("/api/persons/%d", created.ID), token, nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestUpdateMissingIDFor404(t *testing.T) {
	s := newTestServer(t)
	token := login(t, s)

	cases := []struct {
		path string
		body map[string]any
	}{
		{"/api/organizations/99999", map[string]any{"name": "Ghost"}},
		{"/api/events/99999", map[string]any{"title": "Ghost"}},
		{"/api/applications/99999", map[string]any{"applicantName": "Ghost"}},
		{"/api/payments/99999", map[string]any{"title": "Ghost"}},
	}
	for _, tc := range cases {
		recorder := doJSON(t, s, http.MethodPut, tc.path, token, tc.body)
		assert.Equal(t, http.StatusNotFound, recorder.Code, tc.path)
	}
}

func TestGetByIDRoundTrip(t *testing.T) {
	s := newTestServer(t)
	token := login(t, s)

	cases := []struct {
		collection string
		body       map[string]any
		field      string
		want       string
	}{
		{"/api/organizations", map[string]any{"name": "Alpha"}, "name", "Alpha"},
		{"/api/events", map[string]any{"title": "Annual Gathering"}, "title", "Annual Gathering"},
		{"/api/applications", map[string]any{"applicantName": "Sara"}, "applicantName", "Sara"},
		{"/api/payments", map[string]any{"title": "Donation", "amount": "1250000"}, "title", "Donation"},
	}
	for _, tc := range cases {
		recorder := doJSON(t, s, http.MethodPost, tc.collection, token, tc.body)
		require.Equal(t, http.StatusOK, recorder.Code, tc.collection)

		var created struct {
			ID uint `json:"id"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &created))

		recorder = doJSON(t, s, http.MethodGet, fmt.Sprintf("%v/%d", tc.collection, created.ID), token, nil)
		require.Equal(t, http.StatusOK, recorder.Code, tc.collection)

		var row map[string]any
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &row))
		assert.Equal(t, tc.want, row[tc.field], tc.collection)

		recorder = doJSON(t, s, http.MethodGet, fmt.Sprintf("%v/99999", tc.collection), token, nil)
		assert.Equal(t, http.StatusNotFound, recorder.Code, tc.collection)
	}
}

func TestBadIDParamIsBadRequest(t *testing.T) {
	s := newTestServer(t)
	token := login(t, s)

	recorder := doJSON(t, s, http.MethodGet, "/api/persons/abc", token, nil)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestEventCollaboratorsAndParticipants(t *testing.T) {
	s := newTestServer(t)
	token := login(t, s)

	recorder := doJSON(t, s, http.MethodPost, "/api/organizations", token, map[string]any{"name": "Sponsor"})
	require.Equal(t, http.StatusOK, recorder.Code)
	var org struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &org))

	recorder = doJSON(t, s, http.MethodPost, "/api/events", token, map[string]any{"title": "Workshop"})
	require.Equal(t, http.StatusOK, recorder.Code)
	var event struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &event))

	recorder = doJSON(t, s, http.MethodPost, fmt.Sprintf("/api/events/%d/org-collaborators", event.ID), token, map[string]any{
		"organizationId":   org.ID,
		"organizationName": "Sponsor",
	})
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Organization collaborator added")

	recorder = doJSON(t, s, http.MethodPost, fmt.Sprintf("/api/events/%d/participants", event.ID), token, map[string]any{
		"firstName": "Reza",
		"lastName":  "Karimi",
	})
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Participant added")

	recorder = doJSON(t, s, http.MethodGet, fmt.Sprintf("/api/events/%d/participants", event.ID), token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Reza")
}

func TestDocumentUploadAndDelete(t *testing.T) {
	s := newTestServer(t)
	token := login(t, s)

	recorder := doJSON(t, s, http.MethodPost, "/api/persons", token, map[string]any{"firstName": "Sara"})
	require.Equal(t, http.StatusOK, recorder.Code)
	var person struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &person))

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", "certificate.pdf")
	require.NoError(t, err)
	_, err = part.Write([]byte("pdf-bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.WriteField("documentType", "certificate"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/persons/%d/documents", person.ID), &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	uploadRecorder := httptest.NewRecorder()
	s.Router.ServeHTTP(uploadRecorder, req)
	require.Equal(t, http.StatusOK, uploadRecorder.Code)

	var uploaded struct {
		ID       uint   `json:"id"`
		Message  string `json:"message"`
		FileName string `json:"fileName"`
		FilePath string `json:"filePath"`
	}
	require.NoError(t, json.Unmarshal(uploadRecorder.Body.Bytes(), &uploaded))
	assert.Equal(t, "Document uploaded", uploaded.Message)
	assert.Equal(t, "certificate.pdf", uploaded.FileName)
	assert.NotContains(t, uploaded.FilePath, "certificate.pdf")

	// The backing file exists and holds the uploaded bytes.
	content, err := os.ReadFile(uploaded.FilePath)
	require.NoError(t, err)
	assert.Equal(t, "pdf-bytes", string(content))

	recorder = doJSON(t, s, http.MethodDelete, fmt.Sprintf("/api/persons/%d/documents/%d", person.ID, uploaded.ID), token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Document deleted")

	_, err = os.Stat(uploaded.FilePath)
	assert.True(t, os.IsNotExist(err))

	// Deleting again is a 404 on the row, not a filesystem error.
	recorder = doJSON(t, s, http.MethodDelete, fmt.Sprintf("/api/persons/%d/documents/%d", person.ID, uploaded.ID), token, nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestApplicationExport(t *testing.T) {
	s := newTestServer(t)
	token := login(t, s)

	recorder := doJSON(t, s, http.MethodPost, "/api/applications", token, map[string]any{
		"applicantName": "Sara Ahmadi",
		"status":        "accepted",
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = doJSON(t, s, http.MethodGet, "/api/applications/export?status=accepted", token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, recorder.Header().Get("Content-Disposition"), "applications.csv")
	assert.True(t, strings.HasPrefix(recorder.Body.String(), "\ufeff"))
	assert.Contains(t, recorder.Body.String(), `"Sara Ahmadi"`)

	recorder = doJSON(t, s, http.MethodGet, "/api/applications/export?status=rejected", token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	lines := strings.Split(strings.TrimRight(recorder.Body.String(), "\n"), "\n")
	assert.Len(t, lines, 1, "header only when nothing matches")
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t)

	// Drive one request through the counter middleware first.
	doJSON(t, s, http.MethodGet, "/api/health", "", nil)

	recorder := doJSON(t, s, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "haamee_http_requests_total")
}
