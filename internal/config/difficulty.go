package config

// Preset represents a named difficulty level. Presets scale the density of
// the generated collision grid and the double-tap window; physics constants
// stay fixed so the movement feel is identical across presets.
type Preset string

const (
	PresetEasy   Preset = "easy"
	PresetNormal Preset = "normal"
	PresetHard   Preset = "hard"
)

// ParsePreset maps a CLI string to a Preset. Unknown values return the
// empty preset, meaning "use the config as loaded".
func ParsePreset(s string) Preset {
	switch s {
	case "easy":
		return PresetEasy
	case "normal":
		return PresetNormal
	case "hard":
		return PresetHard
	default:
		return ""
	}
}

// ApplyPreset adjusts the config for a difficulty preset.
func ApplyPreset(cfg *Config, preset Preset) {
	switch preset {
	case PresetEasy:
		cfg.Grid.AirSolidPercent = 4
		cfg.Grid.GroundSolidPercent = 3
		cfg.Grid.PickupPercent = 14
		cfg.Jump.DoubleTapMS = 400
	case PresetNormal:
		cfg.Grid.AirSolidPercent = 6
		cfg.Grid.GroundSolidPercent = 5
		cfg.Grid.PickupPercent = 10
	case PresetHard:
		cfg.Grid.AirSolidPercent = 9
		cfg.Grid.GroundSolidPercent = 8
		cfg.Grid.PickupPercent = 7
		cfg.Jump.DoubleTapMS = 220
	}
}
