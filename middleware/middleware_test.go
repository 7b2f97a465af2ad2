// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/danielhkuo/audiobook-votes/models"
)

func TestWithLogging(t *testing.T) {
	handlerCalled := false
	testHandler := func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("success"))
	}

	wrappedHandler := WithLogging(testHandler)

	req := httptest.NewRequest("GET", "/test-path", nil)
	w := httptest.NewRecorder()

	wrappedHandler(w, req)

	if !handlerCalled {
		t.Error("Expected handler to be called")
	}
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if w.Body.String() != "success" {
		t.Errorf("Expected body 'success', got '%s'", w.Body.String())
	}
}

func TestWithLogging_PreservesResponse(t *testing.T) {
	testCases := []struct {
		name       string
		statusCode int
		body       string
	}{
		{"OK", http.StatusOK, "ok"},
		{"Created", http.StatusCreated, `{"id":1}`},
		{"BadRequest", http.StatusBadRequest, `{"error":"bad request"}`},
		{"NotFound", http.StatusNotFound, "not found"},
		{"InternalError", http.StatusInternalServerError, "error"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler := WithLogging(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.statusCode)
				w.Write([]byte(tc.body))
			})

			req := httptest.NewRequest("POST", "/votes", nil)
			w := httptest.NewRecorder()

			handler(w, req)

			if w.Code != tc.statusCode {
				t.Errorf("Expected status %d, got %d", tc.statusCode, w.Code)
			}
			if w.Body.String() != tc.body {
				t.Errorf("Expected body '%s', got '%s'", tc.body, w.Body.String())
			}
		})
	}
}

func TestWithRequestID(t *testing.T) {
	var seen string
	handler := WithRequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestID(r.Context())
	}))

	t.Run("generated", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/users", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		if _, err := uuid.Parse(seen); err != nil {
			t.Errorf("Expected a UUID request ID, got %q", seen)
		}
		if w.Header().Get(RequestIDHeader) != seen {
			t.Errorf("Expected response header %q, got %q", seen, w.Header().Get(RequestIDHeader))
		}
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/users", nil)
		req.Header.Set(RequestIDHeader, "client-abc")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		if seen != "client-abc" {
			t.Errorf("Expected client request ID, got %q", seen)
		}
		if w.Header().Get(RequestIDHeader) != "client-abc" {
			t.Errorf("Expected echoed request ID, got %q", w.Header().Get(RequestIDHeader))
		}
	})
}

func TestRequestIDOutsideMiddleware(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	if id := RequestID(req.Context()); id != "" {
		t.Errorf("Expected empty request ID, got %q", id)
	}
}

func TestJSONResponse(t *testing.T) {
	cover := "https://example.com/dune.jpg"
	testCases := []struct {
		name       string
		statusCode int
		data       interface{}
		expected   string
	}{
		{
			name:       "simple struct",
			statusCode: http.StatusOK,
			data:       map[string]string{"message": "hello"},
			expected:   `{"message":"hello"}`,
		},
		{
			name:       "created user",
			statusCode: http.StatusCreated,
			data:       models.User{ID: 1, Username: "alice"},
			expected:   `{"id":1,"username":"alice"}`,
		},
		{
			name:       "audiobook with votes",
			statusCode: http.StatusOK,
			data: models.AudioBookWithVotes{
				AudioBook: models.AudioBook{ID: 1, Title: "Dune", Author: "Frank Herbert", CoverImage: &cover},
				VoteCount: 1,
				UserVoted: true,
			},
			expected: `{"id":1,"title":"Dune","author":"Frank Herbert","cover_image":"https://example.com/dune.jpg","vote_count":1,"user_voted":true}`,
		},
		{
			name:       "error response",
			statusCode: http.StatusBadRequest,
			data:       models.ErrorResponse{Error: "Bad Request", Message: "missing field"},
			expected:   `{"error":"Bad Request","message":"missing field"}`,
		},
		{
			name:       "array data",
			statusCode: http.StatusOK,
			data:       []string{"a", "b", "c"},
			expected:   `["a","b","c"]`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			JSONResponse(w, tc.statusCode, tc.data)

			if w.Code != tc.statusCode {
				t.Errorf("Expected status %d, got %d", tc.statusCode, w.Code)
			}

			contentType := w.Header().Get("Content-Type")
			if contentType != "application/json" {
				t.Errorf("Expected Content-Type 'application/json', got '%s'", contentType)
			}

			// Encode appends a newline
			body := strings.TrimSpace(w.Body.String())
			if body != tc.expected {
				t.Errorf("Expected body '%s', got '%s'", tc.expected, body)
			}
		})
	}
}

func TestErrorResponse(t *testing.T) {
	testCases := []struct {
		name          string
		statusCode    int
		message       string
		expectedError string
	}{
		{"bad request", http.StatusBadRequest, "User has already voted for this audiobook", "Bad Request"},
		{"not found", http.StatusNotFound, "User not found", "Not Found"},
		{"internal error", http.StatusInternalServerError, "Database error", "Internal Server Error"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			ErrorResponse(w, tc.statusCode, tc.message)

			if w.Code != tc.statusCode {
				t.Errorf("Expected status %d, got %d", tc.statusCode, w.Code)
			}

			var resp models.ErrorResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("Failed to decode response: %v", err)
			}
			if resp.Error != tc.expectedError {
				t.Errorf("Expected error '%s', got '%s'", tc.expectedError, resp.Error)
			}
			if resp.Message != tc.message {
				t.Errorf("Expected message '%s', got '%s'", tc.message, resp.Message)
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	t.Run("missing parameter", func(t *testing.T) {
		w := httptest.NewRecorder()
		ValidationError(w, &models.MissingParameterError{Field: "username"})

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
		var resp models.ErrorResponse
		json.NewDecoder(w.Body).Decode(&resp)
		if resp.Field != "username" {
			t.Errorf("Expected field 'username', got '%s'", resp.Field)
		}
		if resp.Message != "username is required" {
			t.Errorf("Unexpected message '%s'", resp.Message)
		}
	})

	t.Run("other error", func(t *testing.T) {
		w := httptest.NewRecorder()
		ValidationError(w, errors.New("bad input"))

		var resp models.ErrorResponse
		json.NewDecoder(w.Body).Decode(&resp)
		if resp.Field != "" {
			t.Errorf("Expected no field, got '%s'", resp.Field)
		}
	})
}

func TestParseRequest(t *testing.T) {
	testCases := []struct {
		name        string
		contentType string
		target      string
		body        string
		expected    models.CastVoteRequest
		expectErr   bool
	}{
		{
			name:        "json numbers",
			contentType: "application/json",
			target:      "/votes",
			body:        `{"user_id": 1, "audiobook_id": 2}`,
			expected:    models.CastVoteRequest{UserID: "1", AudioBookID: "2"},
		},
		{
			name:        "json with charset",
			contentType: "application/json; charset=utf-8",
			target:      "/votes",
			body:        `{"user_id": "3", "audiobook_id": "4"}`,
			expected:    models.CastVoteRequest{UserID: "3", AudioBookID: "4"},
		},
		{
			name:        "empty json body",
			contentType: "application/json",
			target:      "/votes",
			body:        "",
		},
		{
			name:        "invalid json",
			contentType: "application/json",
			target:      "/votes",
			body:        "{not json",
			expectErr:   true,
		},
		{
			name:        "form body",
			contentType: "application/x-www-form-urlencoded",
			target:      "/votes",
			body:        "user_id=5&audiobook_id=6",
			expected:    models.CastVoteRequest{UserID: "5", AudioBookID: "6"},
		},
		{
			name:     "query string",
			target:   "/votes?user_id=7&audiobook_id=8",
			expected: models.CastVoteRequest{UserID: "7", AudioBookID: "8"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", tc.target, bytes.NewBufferString(tc.body))
			if tc.contentType != "" {
				req.Header.Set("Content-Type", tc.contentType)
			}

			var got models.CastVoteRequest
			err := ParseRequest(req, &got)

			if tc.expectErr {
				if err == nil {
					t.Error("Expected parse error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tc.expected {
				t.Errorf("Expected %+v, got %+v", tc.expected, got)
			}
		})
	}
}

func TestCORS(t *testing.T) {
	nextCalled := false
	handler := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		w.WriteHeader(http.StatusTeapot)
	}))

	t.Run("preflight", func(t *testing.T) {
		nextCalled = false
		req := httptest.NewRequest("OPTIONS", "/votes", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", w.Code)
		}
		if nextCalled {
			t.Error("Preflight should not reach the next handler")
		}
		if w.Header().Get("Access-Control-Allow-Origin") != "*" {
			t.Errorf("Expected wildcard origin, got '%s'", w.Header().Get("Access-Control-Allow-Origin"))
		}
	})

	t.Run("simple request", func(t *testing.T) {
		nextCalled = false
		req := httptest.NewRequest("GET", "/audiobooks?user_id=1", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		if !nextCalled {
			t.Error("Expected next handler to be called")
		}
		if w.Code != http.StatusTeapot {
			t.Errorf("Expected status from next handler, got %d", w.Code)
		}
		if !strings.Contains(w.Header().Get("Access-Control-Allow-Methods"), "POST") {
			t.Error("Expected POST in allowed methods")
		}
	})
}
