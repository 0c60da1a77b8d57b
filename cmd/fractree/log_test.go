package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{
			name:    "info at info level",
			level:   log.InfoLevel,
			logFunc: func(l *log.Logger) { l.Info("test") },
			wantLog: true,
		},
		{
			name:    "debug at info level",
			level:   log.InfoLevel,
			logFunc: func(l *log.Logger) { l.Debug("test") },
			wantLog: false,
		},
		{
			name:    "debug at debug level",
			level:   log.DebugLevel,
			logFunc: func(l *log.Logger) { l.Debug("test") },
			wantLog: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newLogger(&buf, tt.level)
			tt.logFunc(logger)

			gotLog := buf.Len() > 0
			if gotLog != tt.wantLog {
				t.Errorf("got log output = %v, want %v", gotLog, tt.wantLog)
			}
		})
	}
}

func TestProgress(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	newProgress(logger).done("generated", "variant", "basic")

	out := buf.String()
	if !strings.Contains(out, "generated") || !strings.Contains(out, "took") {
		t.Errorf("expected message and duration, got %q", out)
	}
}

func TestLoggerContext(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("empty context should yield the default logger")
	}

	logger := newLogger(&bytes.Buffer{}, log.InfoLevel)
	ctx := withLogger(context.Background(), logger)
	if loggerFromContext(ctx) != logger {
		t.Error("logger not recovered from context")
	}
}

func TestLoadConfig(t *testing.T) {
	defer func() { preset, configFile = "", "" }()

	newCmd := func() *cobra.Command {
		cmd := &cobra.Command{}
		cmd.Flags().Int64Var(&seed, "seed", 99, "")
		return cmd
	}

	preset = "print"
	cfg, err := loadConfig(newCmd(), []string{"random"})
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Variant != "random" {
		t.Errorf("argument should override the preset variant, got %s", cfg.Variant)
	}
	if cfg.Seed != 1 {
		t.Errorf("preset seed should win over the default flag, got %d", cfg.Seed)
	}

	cmd := newCmd()
	if err := cmd.Flags().Set("seed", "7"); err != nil {
		t.Fatal(err)
	}
	cfg, err = loadConfig(cmd, nil)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Seed != 7 {
		t.Errorf("explicit --seed should win, got %d", cfg.Seed)
	}

	preset = ""
	cfg, err = loadConfig(newCmd(), nil)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Seed != 99 {
		t.Errorf("unseeded config should take the flag default, got %d", cfg.Seed)
	}

	preset = "nope"
	if _, err := loadConfig(newCmd(), nil); err == nil {
		t.Error("expected error for unknown preset")
	}

	preset = ""
	if _, err := loadConfig(newCmd(), []string{"oak"}); err == nil {
		t.Error("expected error for unknown variant")
	}
}
