// dodgerock is an arcade game: steer a ship between falling rocks that keep
// getting faster.
//
// Usage:
//
//	dodgerock                - Play in a desktop window
//	dodgerock window         - Play in a desktop window
//	dodgerock play           - Play in the terminal
//	dodgerock config         - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Custom config YAML
//	--fps <rate>        - Override the tick rate
//	--seed <value>      - RNG seed for reproducible games (0 = time based)
//	--debug             - Enable debug mode (F1 spawns a rock, hitbox shown)
//	--difficulty <name> - Difficulty preset: easy, normal, hard, fixed
//	--log-level <level> - debug, info, warn or error
//
// Flags fall back to DODGE_CONFIG, DODGE_DEBUG and DODGE_LOG_LEVEL, which may
// also come from a .env file in the working directory.
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dodge-rock/internal/config"
	"github.com/vovakirdan/dodge-rock/internal/games/dodge"
)

var version = "dev"

var (
	// Global flags
	flagConfig     string
	flagFPS        int
	flagSeed       int64
	flagDebug      bool
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "dodgerock",
	Short:   "Dodge Rock - dodge the falling rocks",
	Version: version,
	Long: `Dodge Rock is a small arcade game: steer the ship left and right,
up and down, and stay clear of the rocks. Rocks fall faster every half second
and a new one joins every four seconds.

Available commands:
  window   - Play in a desktop window (default)
  play     - Play in the terminal
  config   - Print the effective configuration

Examples:
  dodgerock
  dodgerock play --difficulty hard
  dodgerock window --seed 42 --debug
  dodgerock config --config ./my-dodge.yaml`,
	SilenceUsage:      true,
	PersistentPreRunE: applyEnv,
	RunE:              runWindow,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug mode")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(configCmd)
}

// applyEnv fills flags the user did not set from the environment.
func applyEnv(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	flags := cmd.Flags()
	if v := os.Getenv("DODGE_CONFIG"); v != "" && !flags.Changed("config") {
		flagConfig = v
	}
	if v := os.Getenv("DODGE_LOG_LEVEL"); v != "" && !flags.Changed("log-level") {
		flagLogLevel = v
	}
	if v := os.Getenv("DODGE_DEBUG"); v != "" && !flags.Changed("debug") {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("DODGE_DEBUG: %w", err)
		}
		flagDebug = debug
	}
	return nil
}

// newLogger builds the application logger writing to w.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "dodgerock",
		Level:           level,
	}), nil
}

// loadConfig resolves the configuration and applies the command-line
// overrides on top of it.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.Config{}, err
	}
	config.ApplyPreset(&cfg, preset)

	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	if flagDebug {
		cfg.Debug = true
	}
	return cfg, cfg.Validate()
}

// newGame loads the configuration and builds the simulation.
func newGame(logger *log.Logger) (*dodge.Game, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return dodge.New(cfg, seed, dodge.WithLogger(logger))
}
