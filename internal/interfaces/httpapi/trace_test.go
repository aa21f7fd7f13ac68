package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.opentelemetry.io/otel/attribute"
)

func TestShouldCreateHTTPAPISpan(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{name: "handler span", in: "httpapi.Handler.GetLeagueTable", want: true},
		{name: "middleware span", in: "httpapi.RequestLogging", want: false},
		{name: "helper span", in: "httpapi.writeError", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shouldCreateHTTPAPISpan(tt.in)
			if got != tt.want {
				t.Fatalf("shouldCreateHTTPAPISpan(%q)=%v want=%v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRouteAttributes(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/leagues/Premier/teams/Crewe", nil)
	req.SetPathValue("leagueID", " Premier ")
	req.SetPathValue("team", "Crewe")

	got := routeAttributes(req)
	want := []attribute.KeyValue{
		attribute.String(spanAttrLeague, "premier"),
		attribute.String(spanAttrTeam, "Crewe"),
	}
	if len(got) != len(want) {
		t.Fatalf("routeAttributes=%v want=%v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("routeAttributes[%d]=%v want=%v", i, got[i], want[i])
		}
	}

	if attrs := routeAttributes(httptest.NewRequest(http.MethodGet, "/healthz", nil)); len(attrs) != 0 {
		t.Fatalf("expected no attributes without path values, got %v", attrs)
	}
}
