package main

import (
	"io"
	"testing"

	"github.com/vovakirdan/dodge-rock/internal/config"
)

// resetFlags restores the global flags after a test.
func resetFlags(t *testing.T) {
	t.Helper()
	saved := []any{flagConfig, flagFPS, flagSeed, flagDebug, flagDifficulty, flagLogLevel}
	t.Cleanup(func() {
		flagConfig = saved[0].(string)
		flagFPS = saved[1].(int)
		flagSeed = saved[2].(int64)
		flagDebug = saved[3].(bool)
		flagDifficulty = saved[4].(string)
		flagLogLevel = saved[5].(string)
	})
	t.Setenv("HOME", t.TempDir())
}

func TestLoadConfigOverrides(t *testing.T) {
	resetFlags(t)
	flagDifficulty = "hard"
	flagFPS = 30
	flagDebug = true

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Difficulty.InitialSpeed != 3.5 {
		t.Errorf("initial speed = %v, expected 3.5", cfg.Difficulty.InitialSpeed)
	}
	if cfg.TickRate != 30 {
		t.Errorf("tick rate = %d, expected 30", cfg.TickRate)
	}
	if !cfg.Debug {
		t.Error("--debug should enable debug mode")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	resetFlags(t)

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.TickRate != config.DefaultConfig().TickRate {
		t.Errorf("tick rate = %d, expected the default", cfg.TickRate)
	}
}

func TestLoadConfigRejectsUnknownPreset(t *testing.T) {
	resetFlags(t)
	flagDifficulty = "impossible"

	if _, err := loadConfig(); err == nil {
		t.Error("unknown preset should be rejected")
	}
}

func TestApplyEnv(t *testing.T) {
	resetFlags(t)
	t.Setenv("DODGE_DEBUG", "true")
	t.Setenv("DODGE_LOG_LEVEL", "debug")
	t.Setenv("DODGE_CONFIG", "/tmp/dodge.yaml")

	if err := applyEnv(rootCmd, nil); err != nil {
		t.Fatalf("applyEnv: %v", err)
	}
	if !flagDebug {
		t.Error("DODGE_DEBUG should enable debug mode")
	}
	if flagLogLevel != "debug" {
		t.Errorf("log level = %q, expected debug", flagLogLevel)
	}
	if flagConfig != "/tmp/dodge.yaml" {
		t.Errorf("config = %q, expected the env path", flagConfig)
	}
}

func TestApplyEnvRejectsBadBool(t *testing.T) {
	resetFlags(t)
	t.Setenv("DODGE_DEBUG", "sometimes")

	if err := applyEnv(rootCmd, nil); err == nil {
		t.Error("invalid DODGE_DEBUG should be rejected")
	}
}

func TestNewLogger(t *testing.T) {
	resetFlags(t)

	flagLogLevel = "warn"
	if _, err := newLogger(io.Discard); err != nil {
		t.Errorf("newLogger: %v", err)
	}

	flagLogLevel = "loud"
	if _, err := newLogger(io.Discard); err == nil {
		t.Error("unknown level should be rejected")
	}
}
