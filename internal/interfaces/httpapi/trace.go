package httpapi

import (
	"context"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	spanAttrLeague    = "football.league_id"
	spanAttrTeam      = "football.team"
	spanAttrTableKind = "football.table_kind"
)

var apiTracer = otel.Tracer("football-stats/internal/interfaces/httpapi")
var noopSpan = trace.SpanFromContext(context.Background())

// startSpan opens a child span for handler names only; filtered routes such
// as /healthz carry no parent span and stay untraced.
func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() || !shouldCreateHTTPAPISpan(name) {
		return ctx, noopSpan
	}
	return apiTracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// startHandlerSpan tags the handler span with the league, team and table
// kind taken from the matched route.
func startHandlerSpan(r *http.Request, name string) (context.Context, trace.Span) {
	return startSpan(r.Context(), name, routeAttributes(r)...)
}

func routeAttributes(r *http.Request) []attribute.KeyValue {
	var attrs []attribute.KeyValue
	for _, p := range []struct {
		key   string
		value string
	}{
		{key: spanAttrLeague, value: strings.ToLower(strings.TrimSpace(r.PathValue("leagueID")))},
		{key: spanAttrTeam, value: strings.TrimSpace(r.PathValue("team"))},
		{key: spanAttrTableKind, value: strings.TrimSpace(r.PathValue("kind"))},
	} {
		if p.value != "" {
			attrs = append(attrs, attribute.String(p.key, p.value))
		}
	}
	return attrs
}

func shouldCreateHTTPAPISpan(name string) bool {
	return strings.HasPrefix(name, "httpapi.Handler.")
}
