package object

import "github.com/go-gl/mathgl/mgl32"

// Object is the read surface every live instance exposes to the registry
// and the radar scan. Construction and rendering live behind Factory; the
// registry never reaches past this interface.
type Object interface {
	ID() uint32
	Type() ObjectType
	Team() int
	Position() mgl32.Vec3
	RotationY() float32
	Active() bool
	ProxyActivate() bool
	Implements(Capability) bool
}

// Destroyable objects receive a pre-delete notification before the registry
// releases them. all is true during bulk teardown.
type Destroyable interface {
	OnDelete(all bool)
}

// Damageable objects can be blown up with a given effect and intensity.
type Damageable interface {
	Explode(kind ExplosionKind, force float32)
}

// Transportable objects may be carried by another object. A non-nil
// Transporter means the object is contained and not independently
// targetable.
type Transportable interface {
	Transporter() Object
}

// Movable objects expose their physics state. Physics may be nil when the
// object is movable in principle but currently has no body.
type Movable interface {
	Physics() Physics
}

// Physics reports whether a body is grounded. Airborne bodies return false.
type Physics interface {
	Land() bool
}

// IsBeingTransported reports whether obj is currently carried by another
// object.
func IsBeingTransported(obj Object) bool {
	t, ok := obj.(Transportable)
	return ok && t.Transporter() != nil
}
