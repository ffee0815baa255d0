package entity

// FlightMode tells whether a character stands on something or is in the air
type FlightMode int

const (
	FlightGrounded FlightMode = iota
	FlightAirborne
)

// String returns the string representation of the mode
func (m FlightMode) String() string {
	switch m {
	case FlightGrounded:
		return "Grounded"
	case FlightAirborne:
		return "Airborne"
	default:
		return "Unknown"
	}
}

// Flight is the character's flight state.
// Takeoff and ReachedJumpApex only carry meaning while airborne.
type Flight struct {
	Mode            FlightMode
	Takeoff         LookDirection // direction faced when the jump started
	ReachedJumpApex bool
}

// Grounded returns the grounded state
func Grounded() Flight {
	return Flight{Mode: FlightGrounded}
}

// TakeOff returns a fresh airborne state for a jump started facing dir
func TakeOff(dir LookDirection) Flight {
	return Flight{Mode: FlightAirborne, Takeoff: dir}
}

// IsAirborne returns true while the character is off the ground
func (f Flight) IsAirborne() bool {
	return f.Mode == FlightAirborne
}
