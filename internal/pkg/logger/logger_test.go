package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestConfigureJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	lgr := Configure(Config{Level: DebugLevel, Output: &buf})
	defer Configure(Config{Level: InfoLevel, Pretty: true})

	lgr.Info().Str("entity", "course").Msg("refreshed")

	var line map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("expected JSON log line, got %q: %v", buf.String(), err)
	}
	if line["entity"] != "course" || line["message"] != "refreshed" {
		t.Fatalf("unexpected log line: %v", line)
	}
}

func TestConfigFrom(t *testing.T) {
	cfg := ConfigFrom(" WARN ", "pretty")
	if cfg.Level != WarnLevel || !cfg.Pretty {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if parseLevel(LogLevel("bogus")) != zerolog.InfoLevel {
		t.Fatal("unknown level should fall back to info")
	}
}
