package config

import "math"

// DifficultyConfig defines the enemy speed ramp.
//
// Every CheckEvery ticks the speed grows by the step of the first band whose
// Below threshold is above the current speed, or by FinalStep once the speed
// is past every band.
type DifficultyConfig struct {
	InitialSpeed float64    `yaml:"initial_speed"`
	CheckEvery   int        `yaml:"check_every"`
	Bands        []RampBand `yaml:"bands"`
	FinalStep    float64    `yaml:"final_step"`
}

// RampBand is one segment of the speed ramp.
type RampBand struct {
	Below float64 `yaml:"below"`
	Step  float64 `yaml:"step"`
}

// StepFor returns the speed increment applied at a check when the enemy
// speed is currently speed.
func (d DifficultyConfig) StepFor(speed float64) float64 {
	for _, b := range d.Bands {
		if speed < b.Below {
			return b.Step
		}
	}
	return d.FinalStep
}

func (d DifficultyConfig) validate() error {
	if !nonNegative(d.InitialSpeed) {
		return invalid("difficulty.initial_speed must be finite and not negative, got %g", d.InitialSpeed)
	}
	if d.CheckEvery <= 0 {
		return invalid("difficulty.check_every must be positive, got %d", d.CheckEvery)
	}
	prev := 0.0
	for i, b := range d.Bands {
		if !nonNegative(b.Step) {
			return invalid("difficulty.bands[%d].step must be finite and not negative, got %g", i, b.Step)
		}
		if math.IsNaN(b.Below) || math.IsInf(b.Below, 0) {
			return invalid("difficulty.bands[%d].below must be finite, got %g", i, b.Below)
		}
		if i > 0 && b.Below <= prev {
			return invalid("difficulty.bands must have increasing thresholds, band %d is %g after %g", i, b.Below, prev)
		}
		prev = b.Below
	}
	if !nonNegative(d.FinalStep) {
		return invalid("difficulty.final_step must be finite and not negative, got %g", d.FinalStep)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. The empty string keeps the
// configured values.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", invalid("unknown difficulty preset %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialSpeedForPreset returns the starting enemy speed of a preset.
func InitialSpeedForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 2.0
	case DifficultyHard:
		return 3.5
	default:
		return 1.0
	}
}

// ApplyPreset modifies the difficulty section for a preset.
// The fixed preset keeps the configured initial speed and disables the ramp.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Bands = nil
		cfg.Difficulty.FinalStep = 0
	default:
		cfg.Difficulty.InitialSpeed = InitialSpeedForPreset(preset)
	}
}
