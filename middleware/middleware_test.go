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

	promtest "github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/boswachter/observations/metrics"
	"github.com/boswachter/observations/models"
)

func TestWithLogging(t *testing.T) {
	testCases := []struct {
		name       string
		statusCode int
		body       string
		writeOnly  bool
	}{
		{"created observation", http.StatusCreated, `{"id":1}`, false},
		{"listing", http.StatusOK, `[]`, true},
		{"validation failure", http.StatusBadRequest, `{"error":"Bad Request"}`, false},
		{"bad edit key", http.StatusUnauthorized, `{"error":"Unauthorized"}`, false},
		{"deleted", http.StatusNoContent, "", false},
		{"store failure", http.StatusInternalServerError, `{"error":"Internal Server Error"}`, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler := WithLogging(func(w http.ResponseWriter, r *http.Request) {
				if !tc.writeOnly {
					w.WriteHeader(tc.statusCode)
				}
				w.Write([]byte(tc.body))
			})

			w := httptest.NewRecorder()
			handler(w, httptest.NewRequest("POST", "/observations/", nil))

			if w.Code != tc.statusCode {
				t.Errorf("Expected status %d, got %d", tc.statusCode, w.Code)
			}
			if w.Body.String() != tc.body {
				t.Errorf("Expected body '%s', got '%s'", tc.body, w.Body.String())
			}
			if w.Header().Get(RequestIDHeader) == "" {
				t.Error("Expected a generated X-Request-ID header")
			}
		})
	}
}

func TestWithLogging_EchoesRequestID(t *testing.T) {
	handler := WithLogging(func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest("GET", "/observations", nil)
	req.Header.Set(RequestIDHeader, "field-app-42")
	w := httptest.NewRecorder()
	handler(w, req)

	if got := w.Header().Get(RequestIDHeader); got != "field-app-42" {
		t.Errorf("Expected X-Request-ID 'field-app-42', got '%s'", got)
	}
}

func TestWithMetrics(t *testing.T) {
	m := metrics.New()
	route := "GET /observations/{id}"

	handler := WithLogging(WithMetrics(m, route, func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") == "404" {
			ErrorResponse(w, http.StatusNotFound, "Observation not found")
			return
		}
		JSONResponse(w, http.StatusOK, models.Observation{ID: 1})
	}))

	for _, id := range []string{"1", "1", "404"} {
		req := httptest.NewRequest("GET", "/observations/"+id, nil)
		req.SetPathValue("id", id)
		handler(httptest.NewRecorder(), req)
	}

	// One series per status code
	if n := promtest.CollectAndCount(m.RequestDuration, "boswachter_http_request_duration_seconds"); n != 2 {
		t.Errorf("Expected 2 recorded series, got %d", n)
	}
}

func TestJSONResponse(t *testing.T) {
	testCases := []struct {
		name       string
		statusCode int
		data       any
		expected   string
	}{
		{
			name:       "created observation",
			statusCode: http.StatusCreated,
			data: models.CreateObservationResponse{
				Observation: models.Observation{ID: 3, ObservationCreate: models.ObservationCreate{
					Species: models.SpeciesWolf, ObservedCount: 1, Gender: models.GenderUnknown,
					Age: models.AgeYoung, Timestamp: 1718000000000, User: "ranger1",
				}},
				EditKey: "key456",
			},
			expected: `{"id":3,"species":"Wolf","observed_count":1,"gender":"Onbekend","age":"Jong","health":"","location":"","timestamp":1718000000000,"user":"ranger1","additional_description":"","edit_key":"key456"}`,
		},
		{
			name:       "empty listing",
			statusCode: http.StatusOK,
			data:       []models.Observation{},
			expected:   `[]`,
		},
		{
			name:       "error body",
			statusCode: http.StatusBadRequest,
			data:       models.ErrorResponse{Error: "Bad Request", Message: models.ErrInvalidCount.Error()},
			expected:   `{"error":"Bad Request","message":"observed_count must be a positive integer"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			JSONResponse(w, tc.statusCode, tc.data)

			if w.Code != tc.statusCode {
				t.Errorf("Expected status %d, got %d", tc.statusCode, w.Code)
			}
			if ct := w.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Expected Content-Type application/json, got %s", ct)
			}
			if got := strings.TrimSpace(w.Body.String()); got != tc.expected {
				t.Errorf("Expected body\n%s\ngot\n%s", tc.expected, got)
			}
		})
	}
}

func TestErrorResponse(t *testing.T) {
	testCases := []struct {
		statusCode int
		message    string
	}{
		{http.StatusBadRequest, "Invalid JSON"},
		{http.StatusUnauthorized, "Invalid edit key"},
		{http.StatusNotFound, "Observation not found"},
		{http.StatusInternalServerError, "Database error"},
	}

	for _, tc := range testCases {
		t.Run(http.StatusText(tc.statusCode), func(t *testing.T) {
			w := httptest.NewRecorder()
			ErrorResponse(w, tc.statusCode, tc.message)

			var resp models.ErrorResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("Failed to decode error body: %v", err)
			}
			if w.Code != tc.statusCode {
				t.Errorf("Expected status %d, got %d", tc.statusCode, w.Code)
			}
			if resp.Error != http.StatusText(tc.statusCode) {
				t.Errorf("Expected error '%s', got '%s'", http.StatusText(tc.statusCode), resp.Error)
			}
			if resp.Message != tc.message {
				t.Errorf("Expected message '%s', got '%s'", tc.message, resp.Message)
			}
		})
	}
}

func TestParseJSONBody(t *testing.T) {
	testCases := []struct {
		name    string
		body    string
		wantErr error
		anyErr  bool
	}{
		{name: "observation", body: `{"species":"Ree","observed_count":2,"user":"ranger1"}`},
		{name: "unknown fields ignored", body: `{"species":"Ree","remarks":"legacy name"}`},
		{name: "trailing whitespace", body: "{\"species\":\"Ree\"}\n"},
		{name: "malformed", body: `{"species":`, anyErr: true},
		{name: "empty", body: ``, anyErr: true},
		{name: "wrong type", body: `{"observed_count":"two"}`, anyErr: true},
		{name: "two values", body: `{"species":"Ree"} {"species":"Wolf"}`, wantErr: ErrTrailingData},
		{name: "stray closing brace", body: `{"species":"Ree"}}`, wantErr: ErrTrailingData},
		{name: "stray closing bracket", body: `{"species":"Ree"}]`, wantErr: ErrTrailingData},
		{name: "stray text", body: `{"species":"Ree"}x`, wantErr: ErrTrailingData},
		{name: "too large", body: `{"additional_description":"` + strings.Repeat("x", MaxBodyBytes) + `"}`, wantErr: ErrBodyTooLarge},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/observations", bytes.NewBufferString(tc.body))

			var obs models.ObservationCreate
			err := ParseJSONBody(req, &obs)

			switch {
			case tc.wantErr != nil:
				if !errors.Is(err, tc.wantErr) {
					t.Errorf("Expected %v, got %v", tc.wantErr, err)
				}
			case tc.anyErr:
				if err == nil {
					t.Error("Expected an error, got nil")
				}
			default:
				if err != nil {
					t.Fatalf("Unexpected error: %v", err)
				}
				if obs.Species != models.SpeciesRoeDeer {
					t.Errorf("Expected species Ree, got '%s'", obs.Species)
				}
			}
		})
	}
}

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("listed"))
	})
	handler := CORS(next)

	t.Run("preflight is answered without the handler", func(t *testing.T) {
		req := httptest.NewRequest("OPTIONS", "/observations/7", nil)
		req.Header.Set("Origin", "https://field.example")
		req.Header.Set("Access-Control-Request-Method", "PATCH")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Errorf("Expected status 204, got %d", w.Code)
		}
		if w.Body.Len() != 0 {
			t.Errorf("Expected empty preflight body, got '%s'", w.Body.String())
		}
		if !strings.Contains(w.Header().Get("Access-Control-Allow-Methods"), "PATCH") {
			t.Error("Expected PATCH in allowed methods")
		}
		if !strings.Contains(w.Header().Get("Access-Control-Allow-Headers"), "X-Edit-Key") {
			t.Error("Expected X-Edit-Key in allowed headers")
		}
	})

	t.Run("origin is reflected with credentials", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/observations", nil)
		req.Header.Set("Origin", "https://field.example")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://field.example" {
			t.Errorf("Expected reflected origin, got '%s'", got)
		}
		if w.Header().Get("Access-Control-Allow-Credentials") != "true" {
			t.Error("Expected credentials to be allowed")
		}
		if w.Body.String() != "listed" {
			t.Errorf("Expected handler body, got '%s'", w.Body.String())
		}
	})

	t.Run("no origin gets wildcard without credentials", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest("GET", "/observations", nil))

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
			t.Errorf("Expected '*', got '%s'", got)
		}
		if w.Header().Get("Access-Control-Allow-Credentials") != "" {
			t.Error("Credentials must not be combined with a wildcard origin")
		}
	})

	t.Run("request ID is readable by scripts", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest("GET", "/observations", nil))

		if got := w.Header().Get("Access-Control-Expose-Headers"); got != RequestIDHeader {
			t.Errorf("Expected exposed header %s, got '%s'", RequestIDHeader, got)
		}
	})
}

func TestGetClientIP(t *testing.T) {
	testCases := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		expectedIP string
	}{
		{"forwarded chain uses first hop", map[string]string{"X-Forwarded-For": "203.0.113.195, 70.41.3.18"}, "127.0.0.1:1", "203.0.113.195"},
		{"forwarded beats real IP", map[string]string{"X-Forwarded-For": "192.0.2.7", "X-Real-IP": "198.51.100.2"}, "127.0.0.1:1", "192.0.2.7"},
		{"blank forwarded entry falls through", map[string]string{"X-Forwarded-For": " , 70.41.3.18", "X-Real-IP": "198.51.100.2"}, "127.0.0.1:1", "198.51.100.2"},
		{"real IP", map[string]string{"X-Real-IP": "198.51.100.2"}, "10.0.0.1:5000", "198.51.100.2"},
		{"forwarded IPv6", map[string]string{"X-Forwarded-For": "2001:db8::1"}, "127.0.0.1:1", "2001:db8::1"},
		{"remote with port", nil, "192.168.1.50:54321", "192.168.1.50"},
		{"remote without port", nil, "192.168.1.50", "192.168.1.50"},
		{"remote IPv6 with port", nil, "[::1]:12345", "::1"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tc.remoteAddr
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}

			if got := GetClientIP(req); got != tc.expectedIP {
				t.Errorf("Expected IP '%s', got '%s'", tc.expectedIP, got)
			}
		})
	}
}
