// Package config provides YAML-based game configuration loading and
// difficulty presets for the PANIS platformer.
package config

// Config contains all tunables for the simulation. Every value is an
// integer: the core runs on fixed-step integer arithmetic.
type Config struct {
	World   WorldConfig   `yaml:"world"`
	Physics PhysicsConfig `yaml:"physics"`
	Jump    JumpConfig    `yaml:"jump"`
	Grid    GridConfig    `yaml:"grid"`
}

// WorldConfig defines the coordinate spaces and character geometry.
type WorldConfig struct {
	ScreenWidth  int `yaml:"screen_width"`  // Viewport width in pixels
	ScreenHeight int `yaml:"screen_height"` // Viewport height in pixels
	TileWidth    int `yaml:"tile_width"`    // Width of one background tile
	NumTiles     int `yaml:"num_tiles"`     // World width = tile_width * num_tiles
	GroundY      int `yaml:"ground_y"`      // Y of the ground line (0 = top)
	CharWidth    int `yaml:"char_width"`
	CharHeight   int `yaml:"char_height"`
	MoveSpeed    int `yaml:"move_speed"` // Horizontal pixels per move command
	CellSize     int `yaml:"cell_size"`  // Collision grid cell size in pixels
}

// Width returns the total world width in pixels.
func (w WorldConfig) Width() int {
	return w.TileWidth * w.NumTiles
}

// ScrollThreshold is the screen x past which movement scrolls the camera
// instead of the character.
func (w WorldConfig) ScrollThreshold() int {
	return w.ScreenWidth / 2
}

// StartX is the character's spawn x in both world and screen space.
func (w WorldConfig) StartX() int {
	return w.ScreenWidth / 4
}

// GroundTop is the y position of a character standing on the ground line.
func (w WorldConfig) GroundTop() int {
	return w.GroundY - w.CharHeight
}

// MaxCameraX is the largest valid scroll offset.
func (w WorldConfig) MaxCameraX() int {
	return w.Width() - w.ScreenWidth
}

// PhysicsConfig defines vertical motion parameters.
type PhysicsConfig struct {
	Gravity       int `yaml:"gravity"`         // Added to velocity each airborne tick
	MaxFallSpeed  int `yaml:"max_fall_speed"`  // Downward velocity clamp
	MaxJumpHeight int `yaml:"max_jump_height"` // Highest rise above the ground top
}

// JumpConfig selects and parameterizes the jump trigger policy.
type JumpConfig struct {
	// Policy is "double_tap" (second press within the window launches the
	// big jump) or "hold" (long press launches big, release mid-rise cuts
	// the jump short).
	Policy        string `yaml:"policy"`
	SmallVelocity int    `yaml:"small_velocity"` // Negative = upward
	BigVelocity   int    `yaml:"big_velocity"`
	DoubleTapMS   int    `yaml:"double_tap_ms"` // Double-tap window in milliseconds
}

// Policy values for JumpConfig.
const (
	JumpPolicyDoubleTap = "double_tap"
	JumpPolicyHold      = "hold"
)

// GridConfig drives procedural collision-grid generation.
type GridConfig struct {
	AirSolidPercent    int `yaml:"air_solid_percent"`    // % of cells placed as floating blocks
	GroundSolidPercent int `yaml:"ground_solid_percent"` // % of cells stacked up from columns
	PickupPercent      int `yaml:"pickup_percent"`       // % of remaining empty cells turned into pickups
	MaxAttempts        int `yaml:"max_attempts"`         // Rejection sampling attempt cap per phase
}
