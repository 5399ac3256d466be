package creature

import "github.com/TomWoodling/pippis-poc/common"

// Body is the creature's kinematic state: a world transform plus a velocity.
// Velocity is mutated by the locomotion machine's integrator and the
// orientation controller mutates the transform basis; the body itself only
// advances position.
type Body struct {
	Transform common.Transform
	Velocity  common.Vec3
}

// NewBody creates a body at the given position with identity orientation.
//
// Parameters:
//   - position: starting position in world space
//
// Returns:
//   - *Body: the newly created body
func NewBody(position common.Vec3) *Body {
	return &Body{
		Transform: common.Transform{
			Basis:  common.IdentityBasis(),
			Origin: position,
		},
	}
}

// Position returns the body's world-space position.
func (b *Body) Position() common.Vec3 {
	return b.Transform.Origin
}

// Forward returns the body's facing direction.
func (b *Body) Forward() common.Vec3 {
	return b.Transform.Forward()
}

// Speed returns the full velocity magnitude.
func (b *Body) Speed() float32 {
	return b.Velocity.Length()
}

// HorizontalSpeed returns the velocity magnitude on the XZ plane.
func (b *Body) HorizontalSpeed() float32 {
	return b.Velocity.HorizontalLength()
}

// Advance integrates position by the current velocity over dt.
//
// Parameters:
//   - dt: tick delta time in seconds
func (b *Body) Advance(dt float32) {
	b.Transform.Origin = b.Transform.Origin.Add(b.Velocity.Scale(dt))
}
