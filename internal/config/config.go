// Package config provides YAML-based configuration for the cart-pole
// environment: physical constants, termination limits, and seeding mode.
package config

import "github.com/ndmitriev/pixelpole/internal/physics"

// Config is the full environment configuration.
type Config struct {
	Physics PhysicsConfig `yaml:"physics"`
	Limits  LimitsConfig  `yaml:"limits"`
	Seeding SeedingConfig `yaml:"seeding"`
}

// PhysicsConfig defines the physical constants and the integration scheme.
type PhysicsConfig struct {
	Gravity        float64 `yaml:"gravity"`
	CartMass       float64 `yaml:"cart_mass"`
	PoleMass       float64 `yaml:"pole_mass"`
	PoleHalfLength float64 `yaml:"pole_half_length"`
	ForceMag       float64 `yaml:"force_mag"`
	Tau            float64 `yaml:"tau"`
	// Integrator is "euler" unless "semi_implicit" is requested explicitly.
	Integrator string `yaml:"integrator"`
}

// Params converts the section to physics parameters.
func (c PhysicsConfig) Params() physics.Params {
	integ := physics.IntegratorEuler
	if c.Integrator == string(physics.IntegratorSemiImplicit) {
		integ = physics.IntegratorSemiImplicit
	}
	return physics.Params{
		Gravity:        c.Gravity,
		CartMass:       c.CartMass,
		PoleMass:       c.PoleMass,
		PoleHalfLength: c.PoleHalfLength,
		ForceMag:       c.ForceMag,
		Tau:            c.Tau,
		Integrator:     integ,
	}
}

// LimitsConfig defines the episode termination thresholds.
type LimitsConfig struct {
	XThreshold        float64 `yaml:"x_threshold"`
	ThetaThresholdDeg float64 `yaml:"theta_threshold_deg"`
}

// SeedingConfig defines the per-episode seeding mode. NumLevels == 0 means
// a fresh random seed every reset; any other value pins the seed to
// StartLevel.
type SeedingConfig struct {
	NumLevels  uint  `yaml:"num_levels"`
	StartLevel int32 `yaml:"start_level"`
}
