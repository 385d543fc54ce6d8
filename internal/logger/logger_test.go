package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/chepyr/taskboard/internal/config"
)

func TestNewForEnv_Levels(t *testing.T) {
	tests := []struct {
		env  string
		want zerolog.Level
	}{
		{config.EnvDev, zerolog.DebugLevel},
		{config.EnvProd, zerolog.InfoLevel},
		{config.EnvLocal, zerolog.TraceLevel},
	}
	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			l, err := newForEnv(tt.env, &bytes.Buffer{})
			if err != nil {
				t.Fatalf("newForEnv: %v", err)
			}
			if l.GetLevel() != tt.want {
				t.Errorf("level = %v, want %v", l.GetLevel(), tt.want)
			}
		})
	}
}

func TestNewForEnv_UnknownEnv(t *testing.T) {
	if _, err := newForEnv("staging", &bytes.Buffer{}); err == nil {
		t.Fatal("expected error for unknown env")
	}
}

func TestNewForEnv_ProdWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	l, err := newForEnv(config.EnvProd, &buf)
	if err != nil {
		t.Fatalf("newForEnv: %v", err)
	}
	l.Debug().Msg("hidden")
	l.Info().Int64("task_id", 7).Msg("updated task")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected one line (debug filtered), got %d: %q", len(lines), buf.String())
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	for _, key := range []string{"timestamp", "pid", "caller", "message", "task_id"} {
		if _, ok := entry[key]; !ok {
			t.Errorf("log entry missing %q: %v", key, entry)
		}
	}
}
