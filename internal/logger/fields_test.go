package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestStringFields(t *testing.T) {
	t.Parallel()

	fields := StringFields(
		StringField{Key: "  session_id  ", Value: "  abc  "},
		StringField{Key: "ignored", Value: "   "},
		StringField{Key: "   ", Value: "empty key"},
	)

	if len(fields) != 1 {
		t.Fatalf("expected 1 field, got %d", len(fields))
	}

	if fields[0].Key != "session_id" || fields[0].String != "abc" {
		t.Fatalf("unexpected field: %+v", fields[0])
	}

	if empty := StringFields(); len(empty) != 0 {
		t.Fatalf("expected empty fields, got %d", len(empty))
	}
}

func TestWithFields(t *testing.T) {
	t.Parallel()

	core, observed := observer.New(zapcore.InfoLevel)

	WithFields(zap.New(core), CommonFields("abc", "interviewing")...).Info("answer recorded")

	entries := observed.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	ctx := entries[0].ContextMap()
	if ctx[FieldSession] != "abc" {
		t.Fatalf("expected session field to be abc, got %q", ctx[FieldSession])
	}
	if ctx[FieldState] != "interviewing" {
		t.Fatalf("expected state field to be interviewing, got %q", ctx[FieldState])
	}

	fallback := WithFields(nil, zap.String("baz", "qux"))
	if fallback == nil {
		t.Fatalf("expected fallback logger when nil provided")
	}
	fallback.Info("another log")
}

func TestCommonFieldsDropsEmptyValues(t *testing.T) {
	t.Parallel()

	fields := CommonFields("abc", "")
	if len(fields) != 1 || fields[0].Key != FieldSession {
		t.Fatalf("unexpected fields: %+v", fields)
	}

	if empty := CommonFields("", " "); len(empty) != 0 {
		t.Fatalf("expected empty fields, got %d", len(empty))
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		json, debug bool
	}{
		{false, false},
		{true, true},
	} {
		log, err := New(Options{App: "cv-assistant", JSON: tc.json, Debug: tc.debug})
		if err != nil {
			t.Fatalf("building logger: %v", err)
		}
		if got := log.Core().Enabled(zapcore.DebugLevel); got != tc.debug {
			t.Fatalf("debug enabled = %v, want %v", got, tc.debug)
		}
	}
}

func TestNewWritesJSONEntries(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "log.json")
	log, err := New(Options{App: "cv-assistant", JSON: true, Output: []string{path}})
	if err != nil {
		t.Fatalf("building logger: %v", err)
	}

	log.Info("interview started", zap.Duration("took", 1500*time.Millisecond))
	_ = log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}

	var entry map[string]any
	if err := json.Unmarshal(data, &entry); err != nil {
		t.Fatalf("decoding entry %q: %v", data, err)
	}

	for key, want := range map[string]any{"step": "interview started", "app": "cv-assistant", "level": "info", "took": "1.5s"} {
		if entry[key] != want {
			t.Fatalf("%s = %v, want %v", key, entry[key], want)
		}
	}
}
