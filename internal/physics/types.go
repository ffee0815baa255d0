// Package physics wraps the chipmunk rigid-body simulation behind handles.
//
// Callers never hold *cp.Body directly. They address bodies through a
// BodyHandle, read and write linear velocity, and consume contact events
// from a single FIFO queue that the space fills while stepping.
package physics

// BodyHandle identifies a rigid body owned by a Space. Zero is never issued.
type BodyHandle uint32

// Vec2 is a 2D vector in world units. Y points up.
type Vec2 struct {
	X, Y float64
}

// BodyKind selects how the simulation treats a body
type BodyKind int

const (
	BodyDynamic BodyKind = iota
	BodyStatic
)

// String returns the string representation of the body kind
func (k BodyKind) String() string {
	switch k {
	case BodyDynamic:
		return "dynamic"
	case BodyStatic:
		return "static"
	default:
		return "unknown"
	}
}

// BodyDef describes a box-shaped body to add to a Space.
// X, Y is the box center in world units.
type BodyDef struct {
	Kind          BodyKind
	X, Y          float64
	Width, Height float64
	Mass          float64 // dynamic only, defaults to 1
	Friction      float64
	LockRotation  bool    // dynamic only
	GravityScale  float64 // dynamic only, 0 is treated as 1; use SetGravityScale for weightless bodies
}

// ContactKind distinguishes the start and end of a contact
type ContactKind int

const (
	ContactStarted ContactKind = iota
	ContactStopped
)

// String returns the string representation of the contact kind
func (k ContactKind) String() string {
	switch k {
	case ContactStarted:
		return "started"
	case ContactStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// ContactEvent names the two bodies whose shapes began or stopped touching
type ContactEvent struct {
	Kind ContactKind
	A, B BodyHandle
}
