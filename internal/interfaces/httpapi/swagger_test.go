package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSwaggerRoutes(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/openapi.yaml", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "/v1/leagues/{leagueID}/tables/{kind}") {
		t.Fatalf("unexpected openapi response: %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/docs", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "Football Stats API Docs") {
		t.Fatalf("unexpected docs response: %d", rec.Code)
	}
}

func TestOpenAPI_Revalidation(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/openapi.yaml", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	etag := rec.Header().Get("ETag")
	if rec.Code != http.StatusOK || etag == "" {
		t.Fatalf("expected 200 with etag, got %d etag=%q", rec.Code, etag)
	}

	for _, header := range []string{etag, "W/" + etag, `"stale", ` + etag, "*"} {
		req = httptest.NewRequest(http.MethodGet, "/openapi.yaml", nil)
		req.Header.Set("If-None-Match", header)
		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusNotModified || rec.Body.Len() != 0 {
			t.Fatalf("If-None-Match %q: expected 304 with empty body, got %d", header, rec.Code)
		}
	}

	req = httptest.NewRequest(http.MethodGet, "/openapi.yaml", nil)
	req.Header.Set("If-None-Match", `"stale"`)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || rec.Body.Len() == 0 {
		t.Fatalf("expected full document for a stale etag, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodHead, "/openapi.yaml", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || rec.Body.Len() != 0 {
		t.Fatalf("expected HEAD to return headers only, got %d len=%d", rec.Code, rec.Body.Len())
	}
}
