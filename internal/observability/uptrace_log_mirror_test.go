package observability

import (
	"errors"
	"testing"
	"time"

	otellog "go.opentelemetry.io/otel/log"
	"go.uber.org/zap/zapcore"
)

func TestShouldSkipUptraceLog(t *testing.T) {
	if !shouldSkipUptraceLog("http request", []any{"method", "GET", "path", "/healthz"}) {
		t.Fatalf("expected health check log to be skipped")
	}
	if shouldSkipUptraceLog("http request", []any{"path", "/v1/players"}) {
		t.Fatalf("did not expect non-health log to be skipped")
	}
	if shouldSkipUptraceLog("load batted balls failed", []any{"path", "/healthz"}) {
		t.Fatalf("did not expect non-request event to be skipped")
	}
}

func TestBuildOTelLogAttributes(t *testing.T) {
	attrs := buildOTelLogAttributes([]any{"player", "Mike Trout", "season", 2023, "hits"})
	if len(attrs) != 3 {
		t.Fatalf("expected 3 attributes, got %d", len(attrs))
	}
	if attrs[0].Key != "player" || attrs[0].Value.AsString() != "Mike Trout" {
		t.Fatalf("unexpected player attribute")
	}
	if attrs[1].Key != "season" || attrs[1].Value.AsInt64() != 2023 {
		t.Fatalf("unexpected season attribute")
	}
	if attrs[2].Key != "hits" || attrs[2].Value.Kind() != otellog.KindEmpty {
		t.Fatalf("unexpected trailing attribute")
	}
}

func TestBuildOTelLogAttributes_NonStringKey(t *testing.T) {
	attrs := buildOTelLogAttributes([]any{42, "value"})
	if len(attrs) != 1 || attrs[0].Key != "arg_0" {
		t.Fatalf("expected positional key, got %+v", attrs)
	}
}

func TestToOTelLogValue(t *testing.T) {
	tests := []struct {
		name  string
		value any
		kind  otellog.Kind
	}{
		{name: "string", value: "Mike Trout", kind: otellog.KindString},
		{name: "int", value: 2023, kind: otellog.KindInt64},
		{name: "float", value: 0.312, kind: otellog.KindFloat64},
		{name: "bool", value: true, kind: otellog.KindBool},
		{name: "strings", value: []string{"*"}, kind: otellog.KindSlice},
		{name: "error", value: errors.New("source unavailable"), kind: otellog.KindString},
		{name: "duration", value: 250 * time.Millisecond, kind: otellog.KindString},
		{name: "nil", value: nil, kind: otellog.KindEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := toOTelLogValue(tt.value)
			if got.Kind() != tt.kind {
				t.Fatalf("expected kind %s, got %s", tt.kind, got.Kind())
			}
		})
	}
}

func TestToOTelLogValue_CompositeEncodesJSON(t *testing.T) {
	got := toOTelLogValue(map[string]int{"hr": 2})
	if got.Kind() != otellog.KindString || got.AsString() != `{"hr":2}` {
		t.Fatalf("unexpected composite value: %s", got.String())
	}
}

func TestBuildOTelLogRecord(t *testing.T) {
	now := time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)
	record := buildOTelLogRecord(now, zapcore.WarnLevel, "load player profiles failed", []any{"source", "file"})

	if record.Severity() != otellog.SeverityWarn || record.SeverityText() != "WARN" {
		t.Fatalf("unexpected severity %v %q", record.Severity(), record.SeverityText())
	}
	if record.Body().AsString() != "load player profiles failed" {
		t.Fatalf("unexpected body %q", record.Body().AsString())
	}
	if !record.Timestamp().Equal(now) {
		t.Fatalf("unexpected timestamp %v", record.Timestamp())
	}
	if record.AttributesLen() != 1 {
		t.Fatalf("expected 1 attribute, got %d", record.AttributesLen())
	}
}

func TestToOTelSeverity(t *testing.T) {
	if toOTelSeverity(zapcore.InfoLevel) != otellog.SeverityInfo {
		t.Fatalf("unexpected info severity")
	}
	if toOTelSeverity(zapcore.WarnLevel) != otellog.SeverityWarn {
		t.Fatalf("unexpected warn severity")
	}
	if toOTelSeverity(zapcore.ErrorLevel) != otellog.SeverityError {
		t.Fatalf("unexpected error severity")
	}
}
