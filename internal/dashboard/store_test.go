package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haamee/haamee-api/internal/domain"
)

// fakeAPI serves the handful of endpoints the store touches, with canned
// data and a fixed token.
func fakeAPI(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.Username != "admin" || req.Password != "123456" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "wrong username or password"})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"token": "test-token",
			"user":  map[string]string{"username": "admin"},
		})
	})

	requireToken := func(w http.ResponseWriter, r *http.Request) bool {
		if r.Header.Get("Authorization") != "Bearer test-token" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "authorization token required"})
			return false
		}
		return true
	}

	mux.HandleFunc("GET /api/persons", func(w http.ResponseWriter, r *http.Request) {
		if !requireToken(w, r) {
			return
		}
		json.NewEncoder(w).Encode([]domain.Person{{ID: 2, FirstName: "Sara"}, {ID: 1, FirstName: "Reza"}})
	})
	mux.HandleFunc("GET /api/organizations", func(w http.ResponseWriter, r *http.Request) {
		if !requireToken(w, r) {
			return
		}
		json.NewEncoder(w).Encode([]domain.Organization{{ID: 1, Name: "Haamee Foundation"}})
	})
	mux.HandleFunc("GET /api/events", func(w http.ResponseWriter, r *http.Request) {
		if !requireToken(w, r) {
			return
		}
		json.NewEncoder(w).Encode([]domain.Event{})
	})
	mux.HandleFunc("GET /api/applications", func(w http.ResponseWriter, r *http.Request) {
		if !requireToken(w, r) {
			return
		}
		json.NewEncoder(w).Encode([]domain.Application{{ID: 5, ApplicantName: "Sara", Status: "pending"}})
	})
	mux.HandleFunc("GET /api/payments", func(w http.ResponseWriter, r *http.Request) {
		if !requireToken(w, r) {
			return
		}
		json.NewEncoder(w).Encode([]domain.Payment{})
	})
	mux.HandleFunc("GET /api/applications/export", func(w http.ResponseWriter, r *http.Request) {
		if !requireToken(w, r) {
			return
		}
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Write([]byte("\ufeff\"h\"\n"))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return server
}

func TestClient_LoginKeepsToken(t *testing.T) {
	server := fakeAPI(t)
	client := NewClient(server.URL)
	ctx := context.Background()

	_, err := client.ListPersons(ctx)
	require.Error(t, err, "calls before login must be rejected")

	admin, err := client.Login(ctx, "admin", "123456")
	require.NoError(t, err)
	assert.Equal(t, "admin", admin.Username)

	persons, err := client.ListPersons(ctx)
	require.NoError(t, err)
	assert.Len(t, persons, 2)
}

func TestClient_LoginWrongPassword(t *testing.T) {
	server := fakeAPI(t)
	client := NewClient(server.URL)

	_, err := client.Login(context.Background(), "admin", "wrong")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wrong username or password")
}

func TestStore_RefreshLoadsAllLists(t *testing.T) {
	server := fakeAPI(t)
	client := NewClient(server.URL)
	ctx := context.Background()

	_, err := client.Login(ctx, "admin", "123456")
	require.NoError(t, err)

	store := NewStore(client)
	require.NoError(t, store.Refresh(ctx))

	assert.Len(t, store.Persons(), 2)
	assert.Len(t, store.Organizations(), 1)
	assert.Empty(t, store.Events())
	assert.Len(t, store.Applications(), 1)
	assert.Empty(t, store.Payments())

	assert.Equal(t, "Haamee Foundation", store.OrganizationName(1))
	assert.Empty(t, store.OrganizationName(42))
}

func TestClient_ExportApplicationsCSV(t *testing.T) {
	server := fakeAPI(t)
	client := NewClient(server.URL)
	ctx := context.Background()

	_, err := client.Login(ctx, "admin", "123456")
	require.NoError(t, err)

	data, err := client.ExportApplicationsCSV(ctx, "accepted", "", "")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "\ufeff"))
}
