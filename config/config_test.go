package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog/log"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvDataDir, EnvSeed, EnvDebug, EnvWatch, EnvStarter, EnvLogFile, EnvLevel} {
		t.Setenv(k, "")
	}
}

func TestLoadPrecedence(t *testing.T) {
	cases := []struct {
		name  string
		env   map[string]string
		args  []string
		check func(t *testing.T, c Config)
	}{
		{
			name: "defaults",
			check: func(t *testing.T, c Config) {
				if c.HasSeed || c.Debug || c.Watch || c.StarterInventory || c.DataDir != "" {
					t.Fatalf("unexpected defaults %+v", c)
				}
				if c.LogLevel != "info" {
					t.Fatalf("expected info level, got %q", c.LogLevel)
				}
			},
		},
		{
			name: "env",
			env:  map[string]string{EnvSeed: "42", EnvDebug: "true", EnvDataDir: "data", EnvWatch: "1", EnvLevel: "debug"},
			check: func(t *testing.T, c Config) {
				if !c.HasSeed || c.Seed != 42 || !c.Debug || !c.Watch || c.DataDir != "data" || c.LogLevel != "debug" {
					t.Fatalf("env not applied: %+v", c)
				}
			},
		},
		{
			name: "flags_override_env",
			env:  map[string]string{EnvSeed: "42", EnvDebug: "true"},
			args: []string{"-seed", "7", "-debug=false", "-starter"},
			check: func(t *testing.T, c Config) {
				if c.Seed != 7 || c.Debug || !c.StarterInventory {
					t.Fatalf("flags not applied: %+v", c)
				}
			},
		},
		{
			name: "seed_flag_zero_counts_as_set",
			args: []string{"-seed=0"},
			check: func(t *testing.T, c Config) {
				if !c.HasSeed || c.Seed != 0 {
					t.Fatalf("expected explicit zero seed, got %+v", c)
				}
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range c.env {
				t.Setenv(k, v)
			}
			cfg, err := Load("test", c.args)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			c.check(t, cfg)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{"bad_seed_env", map[string]string{EnvSeed: "abc"}, nil},
		{"bad_bool_env", map[string]string{EnvDebug: "maybe"}, nil},
		{"bad_level", nil, []string{"-log-level", "loud"}},
		{"watch_without_dir", nil, []string{"-watch"}},
		{"unknown_flag", nil, []string{"-nope"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range c.env {
				t.Setenv(k, v)
			}
			if _, err := Load("test", c.args); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestRandIsDeterministicWithSeed(t *testing.T) {
	a := Config{Seed: 99, HasSeed: true}.Rand()
	b := Config{Seed: 99, HasSeed: true}.Rand()
	for i := 0; i < 8; i++ {
		if x, y := a.Uint64(), b.Uint64(); x != y {
			t.Fatalf("draw %d differs: %d vs %d", i, x, y)
		}
	}
}

func TestSetupLogger(t *testing.T) {
	t.Cleanup(func() { log.Logger = log.Output(os.Stderr) })

	var buf bytes.Buffer
	closer, err := Config{LogLevel: "info"}.SetupLogger(&buf)
	if err != nil {
		t.Fatalf("SetupLogger: %v", err)
	}
	log.Info().Str("k", "v").Msg("hello")
	log.Debug().Msg("hidden")
	_ = closer.Close()
	if !strings.Contains(buf.String(), `"message":"hello"`) || strings.Contains(buf.String(), "hidden") {
		t.Fatalf("unexpected log output %q", buf.String())
	}

	path := filepath.Join(t.TempDir(), "cheaters.log")
	closer, err = Config{LogLevel: "debug", LogFile: path}.SetupLogger(nil)
	if err != nil {
		t.Fatalf("SetupLogger file: %v", err)
	}
	log.Debug().Msg("to file")
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil || !strings.Contains(string(data), "to file") {
		t.Fatalf("log file missing entry: %q %v", data, err)
	}
}
