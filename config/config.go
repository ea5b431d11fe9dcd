// Package config resolves runtime settings from a .env file, the
// environment and command-line flags, in increasing priority.
package config

import (
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	EnvDataDir = "CHEATERS_DATA_DIR"
	EnvSeed    = "CHEATERS_SEED"
	EnvDebug   = "CHEATERS_DEBUG"
	EnvWatch   = "CHEATERS_WATCH"
	EnvStarter = "CHEATERS_STARTER"
	EnvLogFile = "CHEATERS_LOG_FILE"
	EnvLevel   = "LOG_LEVEL"
)

// seedStream is the fixed PCG stream paired with a configured seed.
const seedStream = 0x9e3779b97f4a7c15

type Config struct {
	// DataDir overrides embedded prefabs with files on disk when set.
	DataDir  string
	Seed     uint64
	HasSeed  bool
	LogLevel string
	LogFile  string
	Debug    bool
	// Watch reloads the session when files under DataDir change.
	Watch bool
	// StarterInventory gives the player the test inventory from player.yaml.
	StarterInventory bool
}

// Load reads .env (if present), then the environment, then args.
func Load(name string, args []string) (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		DataDir:  os.Getenv(EnvDataDir),
		LogLevel: getEnv(EnvLevel, "info"),
		LogFile:  os.Getenv(EnvLogFile),
	}

	var err error
	if v := os.Getenv(EnvSeed); v != "" {
		if cfg.Seed, err = strconv.ParseUint(v, 10, 64); err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", EnvSeed, err)
		}
		cfg.HasSeed = true
	}
	if cfg.Debug, err = getBool(EnvDebug); err != nil {
		return Config{}, err
	}
	if cfg.Watch, err = getBool(EnvWatch); err != nil {
		return Config{}, err
	}
	if cfg.StarterInventory, err = getBool(EnvStarter); err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&cfg.DataDir, "data", cfg.DataDir, "directory whose prefab files override the embedded ones")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "seed for phrase generation (random when unset)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "zerolog level: trace, debug, info, warn, error")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "append logs to this file")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "enable debug commands and log generated codes")
	fs.BoolVar(&cfg.Watch, "watch", cfg.Watch, "rebuild the session when data files change (needs -data)")
	fs.BoolVar(&cfg.StarterInventory, "starter", cfg.StarterInventory, "start with the test inventory")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			cfg.HasSeed = true
		}
	})

	if cfg.Watch && cfg.DataDir == "" {
		return Config{}, fmt.Errorf("config: -watch requires -data or %s", EnvDataDir)
	}
	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, fmt.Errorf("config: log level: %w", err)
	}
	return cfg, nil
}

// Rand returns the session random source: deterministic when a seed was
// configured, otherwise randomly seeded.
func (c Config) Rand() *rand.Rand {
	if c.HasSeed {
		return rand.New(rand.NewPCG(c.Seed, seedStream))
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// SetupLogger points the global zerolog logger at LogFile, or at fallback
// when no file is configured. A nil fallback discards output. The returned
// closer releases the log file.
func (c Config) SetupLogger(fallback io.Writer) (io.Closer, error) {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("config: log level: %w", err)
	}
	zerolog.SetGlobalLevel(lvl)

	if c.LogFile != "" {
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("config: open log file: %w", err)
		}
		log.Logger = zerolog.New(f).With().Timestamp().Logger()
		return f, nil
	}

	if fallback == nil {
		fallback = io.Discard
	}
	log.Logger = zerolog.New(fallback).With().Timestamp().Logger()
	return nopCloser{}, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getBool(k string) (bool, error) {
	v := os.Getenv(k)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("config: %s: %w", k, err)
	}
	return b, nil
}
