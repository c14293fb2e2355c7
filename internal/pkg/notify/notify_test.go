package notify

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestRecorderDrain(t *testing.T) {
	var rec Recorder
	Success(&rec, "Course created")
	Error(&rec, "Delete failed")
	Info(&rec, "")

	last, ok := rec.Last()
	if !ok || last.Level != LevelError || last.Message != "Delete failed" {
		t.Fatalf("Last() = %+v, %v", last, ok)
	}

	items := rec.Drain()
	if len(items) != 2 {
		t.Fatalf("Drain() returned %d items, want 2", len(items))
	}
	if len(rec.Drain()) != 0 {
		t.Fatal("second Drain() should be empty")
	}
}

func TestFanoutAndLog(t *testing.T) {
	var buf bytes.Buffer
	var rec Recorder
	target := Fanout{&rec, Log{Logger: zerolog.New(&buf)}, nil}

	Error(target, "Failed to update status")

	if got := rec.Messages(); len(got) != 1 || got[0] != "Failed to update status" {
		t.Fatalf("recorder got %v", got)
	}
	if !strings.Contains(buf.String(), `"level":"warn"`) {
		t.Fatalf("error notifications should log at warn: %s", buf.String())
	}
}
