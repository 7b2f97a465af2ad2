// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danielhkuo/audiobook-votes/cliparse"
	"github.com/danielhkuo/audiobook-votes/db"
)

// SetupTestDB creates a fresh SQLite database with the full schema in a
// temporary directory. It is closed when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	cfg := GetTestConfig(t)
	conn, err := db.Open(cfg)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration pointing at a temp database
func GetTestConfig(t *testing.T) cliparse.Config {
	t.Helper()

	return cliparse.Config{
		Port:         5000,
		DatabaseType: cliparse.DatabaseSQLite,
		DatabaseURL:  filepath.Join(t.TempDir(), "test.db"),
	}
}

// CreateTestUser inserts a user and returns its ID
func CreateTestUser(t *testing.T, db *sql.DB, username string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(`
		INSERT INTO users (username) VALUES ($1) RETURNING id
	`, username).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return id
}

// CreateTestAudioBook inserts an audiobook and returns its ID
func CreateTestAudioBook(t *testing.T, db *sql.DB, title, author string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(`
		INSERT INTO audiobook (title, author, cover_image)
		VALUES ($1, $2, $3)
		RETURNING id
	`, title, author, "https://example.com/"+strings.ReplaceAll(title, " ", "_")+".jpg").Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test audiobook: %v", err)
	}

	return id
}

// CreateTestVote inserts a vote directly, bypassing the guards
func CreateTestVote(t *testing.T, db *sql.DB, userID, audioBookID int64) {
	t.Helper()

	_, err := db.Exec(`
		INSERT INTO vote (user_id, audiobook_id) VALUES ($1, $2)
	`, userID, audioBookID)
	if err != nil {
		t.Fatalf("Failed to create test vote: %v", err)
	}
}

// CountRows returns the number of rows in table
func CountRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()

	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM ` + table).Scan(&n); err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return n
}

// MakeRequest creates an HTTP test request with a JSON body
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// MakeFormRequest creates an HTTP test request with a form-encoded body
func MakeFormRequest(method, path string, form url.Values) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
