package logger

import (
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestStringFields(t *testing.T) {
	fields := StringFields(
		StringField{Key: "  company  ", Value: "  Initech  "},
		StringField{Key: "ignored", Value: "   "},
		StringField{Key: "   ", Value: "empty key"},
	)

	if len(fields) != 1 {
		t.Fatalf("expected 1 field, got %d", len(fields))
	}

	if fields[0].Key != "company" || fields[0].String != "Initech" {
		t.Fatalf("unexpected company field: %+v", fields[0])
	}

	empty := StringFields()
	if len(empty) != 0 {
		t.Fatalf("expected empty fields, got %d", len(empty))
	}
}

func TestWithFields(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	enriched := WithFields(logger, zap.String("foo", "bar"))
	enriched.Info("test log")

	entries := observed.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	ctx := entries[0].ContextMap()
	if ctx["foo"] != "bar" {
		t.Fatalf("expected field to be bar, got %q", ctx["foo"])
	}

	enriched = WithFields(nil, zap.String("baz", "qux"))
	if enriched == nil {
		t.Fatalf("expected fallback logger when nil provided")
	}

	// Ensure logging with the fallback logger does not panic.
	enriched.Info("another log")
}

func TestPostingFields(t *testing.T) {
	fields := PostingFields("  job-42  ", "Initech")
	if len(fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(fields))
	}

	if fields[0].Key != FieldPostingID || fields[0].String != "job-42" {
		t.Fatalf("unexpected posting id field: %+v", fields[0])
	}

	if fields[1].Key != FieldCompany || fields[1].String != "Initech" {
		t.Fatalf("unexpected company field: %+v", fields[1])
	}

	empty := PostingFields("", "")
	if len(empty) != 0 {
		t.Fatalf("expected empty fields, got %d", len(empty))
	}
}

func TestTruncateForLog(t *testing.T) {
	if got := TruncateForLog("  short  ", 20); got != "short" {
		t.Fatalf("expected trimmed string, got %q", got)
	}

	long := strings.Repeat("a", 30)
	if got := TruncateForLog(long, 10); got != strings.Repeat("a", 10)+"..." {
		t.Fatalf("unexpected truncation: %q", got)
	}

	if got := TruncateForLog("anything", 0); got != "" {
		t.Fatalf("expected empty string for zero limit, got %q", got)
	}
}
