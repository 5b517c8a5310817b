package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/nerrad567/qpudev-core/internal/infrastructure/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.input); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestNew_Outputs(t *testing.T) {
	for _, cfg := range []config.LoggingConfig{
		{Level: "info", Format: "json", Output: "stdout"},
		{Level: "debug", Format: "text", Output: "stderr"},
		{},
	} {
		if New(cfg, "1.0.0") == nil {
			t.Errorf("New(%+v) returned nil", cfg)
		}
	}
	if Default() == nil {
		t.Error("Default() returned nil")
	}
}

func TestLogger_JSONRecord(t *testing.T) {
	var buf bytes.Buffer

	logger := newWithWriter(&buf, config.LoggingConfig{Level: "info", Format: "json"}, "test")
	logger.Component("catalog").Info("device registered", "device", "ibmq_belem")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("parsing %q: %v", buf.String(), err)
	}

	want := map[string]any{
		"service":   ServiceName,
		"version":   "test",
		"component": "catalog",
		"msg":       "device registered",
		"device":    "ibmq_belem",
	}
	for k, v := range want {
		if rec[k] != v {
			t.Errorf("%s = %v, want %v", k, rec[k], v)
		}
	}
}

func TestLogger_TextAndLevelFiltering(t *testing.T) {
	var buf bytes.Buffer

	logger := newWithWriter(&buf, config.LoggingConfig{Level: "WARN", Format: "Text"}, "test")
	logger.Info("dropped")
	logger.Warn("kept", "device", "ibmq_belem")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Error("info record written at warn level")
	}
	if !strings.Contains(out, "device=ibmq_belem") || !strings.Contains(out, "service=qpudev") {
		t.Errorf("text output = %q", out)
	}
}

func TestLogger_WithIsIndependent(t *testing.T) {
	var buf bytes.Buffer

	parent := newWithWriter(&buf, config.LoggingConfig{Format: "text"}, "test")
	child := parent.With("component", "api")
	if child == parent {
		t.Fatal("With() returned the parent")
	}

	parent.Info("from parent")
	if strings.Contains(buf.String(), "component=api") {
		t.Errorf("parent record carries child attribute: %q", buf.String())
	}
}
