package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// PlayerSpec is the player's tuning and collider geometry, in world units.
type PlayerSpec struct {
	Name               string       `yaml:"name"`
	JumpVelocity       float64      `yaml:"jump_velocity"`
	HorizontalSpeed    float64      `yaml:"horizontal_speed"`
	MaxSpeed           float64      `yaml:"max_speed"`
	JumpAllowance      int          `yaml:"jump_allowance"`
	AscentGravityScale float64      `yaml:"ascent_gravity_scale"`
	StopFriction       float64      `yaml:"stop_friction"`
	FatalHeight        float64      `yaml:"fatal_height"`
	Collider           ColliderSpec `yaml:"collider"`
	GroundSensor       SensorSpec   `yaml:"ground_sensor"`
	WallJumpSensor     SensorSpec   `yaml:"wall_jump_sensor"`
	Color              YAMLColor    `yaml:"color"`
	EmptyColor         YAMLColor    `yaml:"empty_color"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: player.yaml: %w", err)
	}
	return &spec, nil
}

// Validate rejects tunings the movement code cannot honor.
func (s *PlayerSpec) Validate() error {
	switch {
	case s.JumpVelocity <= 0:
		return fmt.Errorf("jump_velocity must be positive, got %v", s.JumpVelocity)
	case s.HorizontalSpeed <= 0:
		return fmt.Errorf("horizontal_speed must be positive, got %v", s.HorizontalSpeed)
	case s.MaxSpeed <= 0:
		return fmt.Errorf("max_speed must be positive, got %v", s.MaxSpeed)
	case s.JumpAllowance < 0:
		return fmt.Errorf("jump_allowance must not be negative, got %d", s.JumpAllowance)
	case s.AscentGravityScale <= 0 || s.AscentGravityScale > 1:
		return fmt.Errorf("ascent_gravity_scale must be in (0, 1], got %v", s.AscentGravityScale)
	case s.Collider.Radius <= 0 && (s.Collider.Width <= 0 || s.Collider.Height <= 0):
		return fmt.Errorf("collider needs a radius or a width and height")
	}
	return nil
}

// WorldSpec configures the physics space and the view.
type WorldSpec struct {
	Gravity       float64 `yaml:"gravity"`
	Iterations    int     `yaml:"iterations"`
	PixelsPerUnit float64 `yaml:"pixels_per_unit"`
	CameraSmooth  float64 `yaml:"camera_smoothness"`
}

func LoadWorldSpec() (*WorldSpec, error) {
	spec, err := LoadSpec[WorldSpec]("world.yaml")
	if err != nil {
		return nil, err
	}
	if spec.Iterations <= 0 {
		spec.Iterations = 10
	}
	if spec.PixelsPerUnit <= 0 {
		spec.PixelsPerUnit = 48
	}
	if spec.CameraSmooth <= 0 || spec.CameraSmooth > 1 {
		spec.CameraSmooth = 1
	}
	return &spec, nil
}

type ColliderSpec struct {
	Radius     float64 `yaml:"radius"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Mass       float64 `yaml:"mass"`
	Friction   float64 `yaml:"friction"`
	Elasticity float64 `yaml:"elasticity"`
}

// SensorSpec is a box relative to the owner's center, y-up.
type SensorSpec struct {
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
}

type YAMLColor struct {
	color.RGBA
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.RGBA = color.RGBA{R: r, G: g, B: b, A: a}
	return nil
}
