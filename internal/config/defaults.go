package config

import (
	_ "embed"
)

//go:embed defaults/dodge.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration. It mirrors the embedded
// defaults/dodge.yaml and is used when that file cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Width:  360,
			Height: 480,
			Title:  "Dodge Rock Game",
		},
		TickRate: 60,
		Player: PlayerConfig{
			Width:     29,
			Height:    48,
			MoveSpeed: 1.0,
		},
		Enemy: EnemyConfig{
			Width:  32,
			Height: 32,
		},
		Difficulty: DifficultyConfig{
			InitialSpeed: 1.0,
			CheckEvery:   30,
			Bands: []RampBand{
				{Below: 5.0, Step: 0.1},
				{Below: 7.0, Step: 0.05},
			},
			FinalStep: 0.025,
		},
		Spawn: SpawnConfig{
			Every: 240,
		},
		Text: TextConfig{
			Title:         "DODGE ROCK",
			PressAnyKey:   "press any key to start",
			GameOverTitle: "GAME OVER",
			GameOverScore: "score",
			GameOverTips: []string{
				"R / Start : play again",
				"T / Back  : back to title",
				"Q / Esc   : quit",
			},
		},
		TUI: TUIConfig{
			KeyHoldMS: 250,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
