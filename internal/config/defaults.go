package config

import (
	_ "embed"

	"github.com/ndmitriev/pixelpole/internal/physics"
)

//go:embed defaults/cartpole.yaml
var defaultCartpoleYAML []byte

// Default returns the hardcoded default configuration, matching the
// embedded YAML.
func Default() Config {
	p := physics.DefaultParams()
	return Config{
		Physics: PhysicsConfig{
			Gravity:        p.Gravity,
			CartMass:       p.CartMass,
			PoleMass:       p.PoleMass,
			PoleHalfLength: p.PoleHalfLength,
			ForceMag:       p.ForceMag,
			Tau:            p.Tau,
			Integrator:     string(physics.IntegratorEuler),
		},
		Limits: LimitsConfig{
			XThreshold:        2.4,
			ThetaThresholdDeg: 24,
		},
		Seeding: SeedingConfig{
			NumLevels:  0,
			StartLevel: 0,
		},
	}
}
