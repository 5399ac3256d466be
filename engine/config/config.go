// package config loads creature tuning from YAML files and merges it over
// the built-in defaults, so a tuning file only has to name the values it
// changes.
package config

import (
	"fmt"
	"os"

	"github.com/TomWoodling/pippis-poc/common"
	"gopkg.in/yaml.v3"
)

// Tuning holds every simulation constant a creature controller consumes.
// Zero values in a loaded file fall back to the defaults, so negative
// defaults (the sink threshold) survive an omitted field.
type Tuning struct {
	Swim       SwimTuning       `yaml:"swim"`
	Crawl      CrawlTuning      `yaml:"crawl"`
	Transition TransitionTuning `yaml:"transition"`
	Camera     CameraTuning     `yaml:"camera"`
	Body       BodyTuning       `yaml:"body"`
	Animation  AnimationTuning  `yaml:"animation"`
	Input      InputTuning      `yaml:"input"`
}

// SwimTuning is the FLOATING-state force set.
type SwimTuning struct {
	Power         float32 `yaml:"power"`
	Resistance    float32 `yaml:"resistance"`
	Buoyancy      float32 `yaml:"buoyancy"`
	AirGravity    float32 `yaml:"air_gravity"`
	MaxSpeed      float32 `yaml:"max_speed"`
	WaterSurfaceY float32 `yaml:"water_surface_y"`
}

// CrawlTuning is the GROUNDED-state force set.
type CrawlTuning struct {
	Power      float32 `yaml:"power"`
	Resistance float32 `yaml:"resistance"`
	Gravity    float32 `yaml:"gravity"`
	MaxSpeed   float32 `yaml:"max_speed"`
}

// TransitionTuning gates mode switching.
type TransitionTuning struct {
	Delay         float32 `yaml:"delay"`
	SinkThreshold float32 `yaml:"sink_threshold"`
}

// CameraTuning shapes the gimbal follow rig.
type CameraTuning struct {
	MaxPitch         float32 `yaml:"max_pitch"`
	ArmLength        float32 `yaml:"arm_length"`
	FollowSpeed      float32 `yaml:"follow_speed"`
	MouseSensitivity float32 `yaml:"mouse_sensitivity"`
}

// BodyTuning shapes body reorientation.
type BodyTuning struct {
	AlignSpeed        float32 `yaml:"align_speed"`
	IdleStabilization float32 `yaml:"idle_stabilization"`
}

// AnimationTuning shapes clip blending.
type AnimationTuning struct {
	BlendTime float32 `yaml:"blend_time"`
}

// InputTuning shapes analog look input.
type InputTuning struct {
	StickSensitivity float32 `yaml:"stick_sensitivity"`
}

// DefaultTuning returns the shipping constants.
//
// Returns:
//   - Tuning: the default tuning set
func DefaultTuning() Tuning {
	return Tuning{
		Swim: SwimTuning{
			Power:         8.0,
			Resistance:    0.88,
			Buoyancy:      0.9,
			AirGravity:    9.8,
			MaxSpeed:      6.0,
			WaterSurfaceY: 0.0,
		},
		Crawl: CrawlTuning{
			Power:      2.5,
			Resistance: 0.85,
			Gravity:    9.8,
			MaxSpeed:   3.0,
		},
		Transition: TransitionTuning{
			Delay:         0.5,
			SinkThreshold: -0.15,
		},
		Camera: CameraTuning{
			MaxPitch:         1.2,
			ArmLength:        4.0,
			FollowSpeed:      5.0,
			MouseSensitivity: 0.002,
		},
		Body: BodyTuning{
			AlignSpeed:        4.0,
			IdleStabilization: 2.0,
		},
		Animation: AnimationTuning{
			BlendTime: 0.3,
		},
		Input: InputTuning{
			StickSensitivity: 2.0,
		},
	}
}

// Load reads a YAML tuning file and merges it over the defaults. Fields the
// file omits keep their default values.
//
// Parameters:
//   - path: path to the YAML tuning file
//
// Returns:
//   - Tuning: the merged tuning set
//   - error: an error if the file cannot be read or parsed
func Load(path string) (Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("error reading tuning file %s: %w", path, err)
	}

	var loaded Tuning
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return Tuning{}, fmt.Errorf("error parsing tuning file %s: %w", path, err)
	}
	return merge(loaded, DefaultTuning()), nil
}

// merge fills every zero-valued field of loaded from fallback.
func merge(loaded, fallback Tuning) Tuning {
	return Tuning{
		Swim: SwimTuning{
			Power:         common.Coalesce(loaded.Swim.Power, fallback.Swim.Power),
			Resistance:    common.Coalesce(loaded.Swim.Resistance, fallback.Swim.Resistance),
			Buoyancy:      common.Coalesce(loaded.Swim.Buoyancy, fallback.Swim.Buoyancy),
			AirGravity:    common.Coalesce(loaded.Swim.AirGravity, fallback.Swim.AirGravity),
			MaxSpeed:      common.Coalesce(loaded.Swim.MaxSpeed, fallback.Swim.MaxSpeed),
			WaterSurfaceY: common.Coalesce(loaded.Swim.WaterSurfaceY, fallback.Swim.WaterSurfaceY),
		},
		Crawl: CrawlTuning{
			Power:      common.Coalesce(loaded.Crawl.Power, fallback.Crawl.Power),
			Resistance: common.Coalesce(loaded.Crawl.Resistance, fallback.Crawl.Resistance),
			Gravity:    common.Coalesce(loaded.Crawl.Gravity, fallback.Crawl.Gravity),
			MaxSpeed:   common.Coalesce(loaded.Crawl.MaxSpeed, fallback.Crawl.MaxSpeed),
		},
		Transition: TransitionTuning{
			Delay:         common.Coalesce(loaded.Transition.Delay, fallback.Transition.Delay),
			SinkThreshold: common.Coalesce(loaded.Transition.SinkThreshold, fallback.Transition.SinkThreshold),
		},
		Camera: CameraTuning{
			MaxPitch:         common.Coalesce(loaded.Camera.MaxPitch, fallback.Camera.MaxPitch),
			ArmLength:        common.Coalesce(loaded.Camera.ArmLength, fallback.Camera.ArmLength),
			FollowSpeed:      common.Coalesce(loaded.Camera.FollowSpeed, fallback.Camera.FollowSpeed),
			MouseSensitivity: common.Coalesce(loaded.Camera.MouseSensitivity, fallback.Camera.MouseSensitivity),
		},
		Body: BodyTuning{
			AlignSpeed:        common.Coalesce(loaded.Body.AlignSpeed, fallback.Body.AlignSpeed),
			IdleStabilization: common.Coalesce(loaded.Body.IdleStabilization, fallback.Body.IdleStabilization),
		},
		Animation: AnimationTuning{
			BlendTime: common.Coalesce(loaded.Animation.BlendTime, fallback.Animation.BlendTime),
		},
		Input: InputTuning{
			StickSensitivity: common.Coalesce(loaded.Input.StickSensitivity, fallback.Input.StickSensitivity),
		},
	}
}
