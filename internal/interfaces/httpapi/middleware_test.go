package httpapi

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/riskibarqy/football-stats/internal/platform/logging"
)

func TestShouldTraceRequest_HealthPaths(t *testing.T) {
	paths := []string{"/healthz", "/health", "/livez", "/readyz", " /healthz "}
	for _, path := range paths {
		if shouldTraceRequest(path) {
			t.Fatalf("expected no tracing for path %q", path)
		}
	}
}

func TestShouldTraceRequest_NonHealthPaths(t *testing.T) {
	paths := []string{"/v1/leagues", "/v1/leagues/premier/summary", "/", "/docs"}
	for _, path := range paths {
		if !shouldTraceRequest(path) {
			t.Fatalf("expected tracing for path %q", path)
		}
	}
}

func TestRequireInternalJobToken(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})

	tests := []struct {
		name       string
		configured string
		provided   string
		wantStatus int
	}{
		{name: "valid token", configured: "s3cret", provided: "s3cret", wantStatus: http.StatusAccepted},
		{name: "missing token", configured: "s3cret", provided: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong token", configured: "s3cret", provided: "guess", wantStatus: http.StatusUnauthorized},
		{name: "not configured", configured: " ", provided: "anything", wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/internal/leagues/premier/reload", nil)
			if tt.provided != "" {
				req.Header.Set(internalJobTokenHeader, tt.provided)
			}
			rec := httptest.NewRecorder()

			RequireInternalJobToken(tt.configured, next).ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}
		})
	}
}

func TestRequestLogging_RecordsStatus(t *testing.T) {
	var out bytes.Buffer
	logger := logging.NewJSONWriter(&out, logging.LevelInfo)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		loggerFromContext(r.Context()).Info("inside handler")
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/leagues", nil)
	rec := httptest.NewRecorder()
	RequestLogging(logger, next).ServeHTTP(rec, req)
	_ = logger.Sync()

	logs := out.String()
	if !strings.Contains(logs, `"msg":"http request"`) || !strings.Contains(logs, `"status":418`) {
		t.Fatalf("unexpected request log: %s", logs)
	}
	if !strings.Contains(logs, `"msg":"inside handler"`) || !strings.Contains(logs, `"path":"/v1/leagues"`) {
		t.Fatalf("expected request-scoped logger in handler: %s", logs)
	}
	generated := rec.Header().Get(requestIDHeader)
	if generated == "" || !strings.Contains(logs, `"request_id":"`+generated+`"`) {
		t.Fatalf("expected generated request id in logs, header=%q logs=%s", generated, logs)
	}
}

func TestRequestLogging_RequestID(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	cases := []struct {
		name     string
		provided string
		keep     bool
	}{
		{name: "well formed id is kept", provided: "edge-42_a", keep: true},
		{name: "malformed id is replaced", provided: "bad id;", keep: false},
		{name: "missing id is generated", provided: "", keep: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
			if tc.provided != "" {
				req.Header.Set(requestIDHeader, tc.provided)
			}
			rec := httptest.NewRecorder()
			RequestLogging(logging.NewNop(), next).ServeHTTP(rec, req)

			got := rec.Header().Get(requestIDHeader)
			if got == "" {
				t.Fatalf("expected a request id header")
			}
			if tc.keep && got != tc.provided {
				t.Fatalf("expected %q to be kept, got %q", tc.provided, got)
			}
			if !tc.keep && got == tc.provided {
				t.Fatalf("expected %q to be replaced", tc.provided)
			}
		})
	}
}
