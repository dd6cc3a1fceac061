// Package physics implements the cart-pole dynamics: a pole attached by an
// un-actuated joint to a cart on a frictionless track. The model and
// constants follow Barto, Sutton and Anderson's classic formulation.
package physics

import "math"

// Action is a discrete push applied to the cart for one time step.
type Action int

const (
	// ActionLeft pushes the cart to the left (force -ForceMag).
	ActionLeft Action = 0
	// ActionRight pushes the cart to the right (force +ForceMag).
	ActionRight Action = 1
)

// Valid reports whether a is one of the two defined actions.
func (a Action) Valid() bool {
	return a == ActionLeft || a == ActionRight
}

func (a Action) String() string {
	switch a {
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	default:
		return "invalid"
	}
}

// Integrator selects the kinematics update ordering.
type Integrator string

const (
	// IntegratorEuler is the default explicit (forward) Euler scheme:
	// positions advance on the pre-update velocities, then velocities
	// advance on accelerations computed at the pre-update state.
	IntegratorEuler Integrator = "euler"
	// IntegratorSemiImplicit updates velocities first and advances
	// positions on the new velocities. Never used unless configured
	// explicitly; it changes trajectories bit-for-bit.
	IntegratorSemiImplicit Integrator = "semi_implicit"
)

// State is the full physical state of the system. The pole angle is in
// radians with 0 = upright, positive clockwise when the x axis points right.
type State struct {
	X        float64 // cart position
	XDot     float64 // cart velocity
	Theta    float64 // pole angle
	ThetaDot float64 // pole angular velocity
}

// Params holds the physical constants and the integration step.
// Values are fixed for the lifetime of an environment instance.
type Params struct {
	Gravity        float64
	CartMass       float64
	PoleMass       float64
	PoleHalfLength float64 // half the pole's length
	ForceMag       float64
	Tau            float64 // seconds between state updates
	Integrator     Integrator
}

// DefaultParams returns the classic cart-pole constants.
func DefaultParams() Params {
	return Params{
		Gravity:        9.8,
		CartMass:       1.0,
		PoleMass:       0.1,
		PoleHalfLength: 5.0,
		ForceMag:       10.0,
		Tau:            0.02,
		Integrator:     IntegratorEuler,
	}
}

// TotalMass returns the combined cart and pole mass.
func (p Params) TotalMass() float64 {
	return p.CartMass + p.PoleMass
}

// PoleMassLength returns poleMass * poleHalfLength.
func (p Params) PoleMassLength() float64 {
	return p.PoleMass * p.PoleHalfLength
}

// Step advances the state by one time step under the given action.
// It is a pure function: identical inputs produce bit-identical outputs.
// The caller is responsible for validating the action.
func Step(s State, a Action, p Params) State {
	force := -p.ForceMag
	if a == ActionRight {
		force = p.ForceMag
	}

	costheta := math.Cos(s.Theta)
	sintheta := math.Sin(s.Theta)

	temp := (force + p.PoleMassLength()*s.ThetaDot*s.ThetaDot*sintheta) / p.TotalMass()
	thetaAcc := (p.Gravity*sintheta - costheta*temp) /
		(p.PoleHalfLength * (4.0/3.0 - p.PoleMass*costheta*costheta/p.TotalMass()))
	xAcc := temp - p.PoleMassLength()*thetaAcc*costheta/p.TotalMass()

	if p.Integrator == IntegratorSemiImplicit {
		s.XDot += p.Tau * xAcc
		s.X += p.Tau * s.XDot
		s.ThetaDot += p.Tau * thetaAcc
		s.Theta += p.Tau * s.ThetaDot
		return s
	}

	// Explicit Euler: positions move on the old velocities.
	s.X += p.Tau * s.XDot
	s.XDot += p.Tau * xAcc
	s.Theta += p.Tau * s.ThetaDot
	s.ThetaDot += p.Tau * thetaAcc
	return s
}
