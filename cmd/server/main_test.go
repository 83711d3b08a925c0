package main

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"finance-tracker/internal/handlers"
	"finance-tracker/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupRouter(t *testing.T) {
	db, err := storage.NewDB(":memory:")
	require.NoError(t, err, "failed to create database")
	defer db.Close()

	// Use relative paths for tests running in cmd/server
	if _, err := os.Stat("../../web/templates"); os.IsNotExist(err) {
		t.Skip("Template directory not found, skipping router test")
	}
	h := handlers.NewHandlers(db, "../../web/templates", false, 24*time.Hour)

	router := setupRouter(h, "../../web/static")

	tests := []struct {
		name         string
		method       string
		path         string
		wantStatus   int
		wantLocation string
	}{
		{
			name:         "Dashboard requires auth",
			method:       "GET",
			path:         "/",
			wantStatus:   http.StatusFound,
			wantLocation: "/login",
		},
		{
			name:       "Login page is public",
			method:     "GET",
			path:       "/login",
			wantStatus: http.StatusOK,
		},
		{
			name:       "Register page is public",
			method:     "GET",
			path:       "/register",
			wantStatus: http.StatusOK,
		},
		{
			name:         "Logout is public and redirects home",
			method:       "GET",
			path:         "/logout",
			wantStatus:   http.StatusFound,
			wantLocation: "/",
		},
		{
			name:         "Add income requires auth",
			method:       "GET",
			path:         "/add_income",
			wantStatus:   http.StatusFound,
			wantLocation: "/login",
		},
		{
			name:         "Set budget POST requires auth",
			method:       "POST",
			path:         "/set_budget",
			wantStatus:   http.StatusFound,
			wantLocation: "/login",
		},
		{
			name:         "Change password requires auth",
			method:       "GET",
			path:         "/change_password",
			wantStatus:   http.StatusFound,
			wantLocation: "/login",
		},
		{
			name:       "Static file access",
			method:     "GET",
			path:       "/static/style.css",
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body *strings.Reader
			if tt.method == "POST" {
				body = strings.NewReader(url.Values{}.Encode())
			} else {
				body = strings.NewReader("")
			}
			req := httptest.NewRequest(tt.method, tt.path, body)
			if tt.method == "POST" {
				req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			}
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code,
				"%s %s returned unexpected status", tt.method, tt.path)
			if tt.wantLocation != "" {
				assert.Equal(t, tt.wantLocation, w.Header().Get("Location"))
			}
		})
	}
}

func TestNoCacheHeadersApplied(t *testing.T) {
	db, err := storage.NewDB(":memory:")
	require.NoError(t, err)
	defer db.Close()

	h := handlers.NewHandlers(db, "../../web/templates", false, 24*time.Hour)
	router := setupRouter(h, "../../web/static")

	req := httptest.NewRequest("GET", "/", http.NoBody)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "no-cache, no-store, must-revalidate", w.Header().Get("Cache-Control"))
	assert.Equal(t, "no-cache", w.Header().Get("Pragma"))
}
