// Package config holds the negotiation tunables. Every threshold and
// probability in the evaluator and event scheduler is policy, not physics, so
// all of it loads from YAML with playable defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Evaluator controls offer acceptance.
type Evaluator struct {
	// BaseThreshold is the fit (APY / market value) a neutral agent with
	// balanced leverage signs at.
	BaseThreshold float64 `yaml:"base_threshold"`

	// LeverageWeight scales how far the agent/user leverage gap moves the
	// threshold.
	LeverageWeight float64 `yaml:"leverage_weight"`

	// Mood adjustments, applied on top of the base threshold.
	ExcitedAdjust    float64 `yaml:"excited_adjust"`
	InterestedAdjust float64 `yaml:"interested_adjust"`
	AngryAdjust      float64 `yaml:"angry_adjust"`

	// NearMissFloor is the lowest fit that still draws a counter-offer.
	NearMissFloor float64 `yaml:"near_miss_floor"`
}

// Leverage controls the bilateral leverage model.
type Leverage struct {
	Base              float64 `yaml:"base"`                // both sides start here
	CapPressureWeight float64 `yaml:"cap_pressure_weight"` // agent: market value vs cap space
	ScarcityWeight    float64 `yaml:"scarcity_weight"`     // agent: thin positional depth
	ScarcityDepth     int     `yaml:"scarcity_depth"`      // depth at or under which scarcity bites
	RoundFatigue      float64 `yaml:"round_fatigue"`       // agent: per-round gain
	RoundFatigueCap   int     `yaml:"round_fatigue_cap"`   // rounds after which fatigue stops growing
	CapMarginWeight   float64 `yaml:"cap_margin_weight"`   // user: headroom over the cap hit
	ContenderBonus    float64 `yaml:"contender_bonus"`     // user: ring discount
	PressLeakBonus    float64 `yaml:"press_leak_bonus"`    // user: per leak
	PressLeakCap      float64 `yaml:"press_leak_cap"`      // total leak effect ceiling
	DistrustPenalty   float64 `yaml:"distrust_penalty"`    // user: after reporting a shadow advisor
}

// Events controls the per-round special-event gates.
type Events struct {
	PressLeakBase       float64 `yaml:"press_leak_base"`        // base leak probability
	PressLeakMinRound   int     `yaml:"press_leak_min_round"`   // leaks need a story first
	PhoneDeadAfterAngry int     `yaml:"phone_dead_after_angry"` // consecutive angry rejections
	PhoneDeadCooldown   int     `yaml:"phone_dead_cooldown"`    // rounds the phone stays off
	ShadowBase          float64 `yaml:"shadow_base"`            // base shadow-advisor probability
	ShadowLeverageGate  float64 `yaml:"shadow_leverage_gate"`   // min agent leverage for a shadow approach
	ShadowDemandMarkup  float64 `yaml:"shadow_demand_markup"`   // demand as multiple of market value
	ShadowPatience      int     `yaml:"shadow_patience"`        // rounds before an ignored shadow turns terminal
	MaxRounds           int     `yaml:"max_rounds"`             // hard cap before talks collapse
}

// Config is the full tunable set.
type Config struct {
	Evaluator Evaluator `yaml:"evaluator"`
	Leverage  Leverage  `yaml:"leverage"`
	Events    Events    `yaml:"events"`

	// WindowHours is how long an open negotiation session lives before the
	// window closes on it.
	WindowHours int `yaml:"window_hours"`
}

// Default returns the shipped policy.
func Default() Config {
	return Config{
		Evaluator: Evaluator{
			BaseThreshold:    0.92,
			LeverageWeight:   0.04,
			ExcitedAdjust:    -0.04,
			InterestedAdjust: -0.02,
			AngryAdjust:      0.06,
			NearMissFloor:    0.80,
		},
		Leverage: Leverage{
			Base:              0.35,
			CapPressureWeight: 0.30,
			ScarcityWeight:    0.25,
			ScarcityDepth:     3,
			RoundFatigue:      0.02,
			RoundFatigueCap:   8,
			CapMarginWeight:   0.25,
			ContenderBonus:    0.12,
			PressLeakBonus:    0.05,
			PressLeakCap:      0.15,
			DistrustPenalty:   0.05,
		},
		Events: Events{
			PressLeakBase:       0.12,
			PressLeakMinRound:   3,
			PhoneDeadAfterAngry: 2,
			PhoneDeadCooldown:   2,
			ShadowBase:          0.05,
			ShadowLeverageGate:  0.60,
			ShadowDemandMarkup:  1.15,
			ShadowPatience:      3,
			MaxRounds:           10,
		},
		WindowHours: 72,
	}
}

// Load reads YAML tunables over the defaults: absent keys keep shipped values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects configs the engine cannot run on.
func (c Config) Validate() error {
	if c.Evaluator.BaseThreshold <= 0 || c.Evaluator.BaseThreshold > 1.5 {
		return fmt.Errorf("base_threshold %.3f out of range", c.Evaluator.BaseThreshold)
	}
	if c.Evaluator.NearMissFloor < 0 || c.Evaluator.NearMissFloor >= c.Evaluator.BaseThreshold {
		return fmt.Errorf("near_miss_floor %.3f must sit below base_threshold", c.Evaluator.NearMissFloor)
	}
	for name, p := range map[string]float64{
		"press_leak_base":      c.Events.PressLeakBase,
		"shadow_base":          c.Events.ShadowBase,
		"shadow_leverage_gate": c.Events.ShadowLeverageGate,
	} {
		if p < 0 || p > 1 {
			return fmt.Errorf("%s %.3f must be a probability", name, p)
		}
	}
	if c.Events.MaxRounds < 1 {
		return fmt.Errorf("max_rounds must be at least 1")
	}
	if c.Events.PhoneDeadCooldown < 1 {
		return fmt.Errorf("phone_dead_cooldown must be at least 1")
	}
	if c.Events.ShadowDemandMarkup < 1 {
		return fmt.Errorf("shadow_demand_markup below 1 would be a discount")
	}
	if c.WindowHours < 1 {
		return fmt.Errorf("window_hours must be at least 1")
	}
	return nil
}
