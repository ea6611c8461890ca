package component

import "github.com/jakecoffman/cp"

// Pointer is the binding between the user's pointer and a grabbed body.
// Body is a kinematic body that follows the cursor; Joint exists only while
// something is held.
type Pointer struct {
	Body    *cp.Body
	Joint   *cp.Constraint
	Grabbed *cp.Body

	Stiffness  float64
	MaxForce   float64
	GrabRadius float64
	// Follow is the fraction of the remaining distance to the cursor the
	// pointer body covers each step.
	Follow float64
}

var PointerComponent = NewComponent[Pointer]()

// PointerInput is the per-frame pointer state in world coordinates.
type PointerInput struct {
	X        float64
	Y        float64
	Down     bool
	Pressed  bool
	Released bool
}

var PointerInputComponent = NewComponent[PointerInput]()
