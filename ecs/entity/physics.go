package entity

import "github.com/jakecoffman/cp"

// GrabbableMask is the shape category the pointer may pick up.
const GrabbableMask uint = 1 << 31

var (
	// GrabFilter restricts point queries to grabbable shapes.
	GrabFilter = cp.ShapeFilter{Group: cp.NO_GROUP, Categories: GrabbableMask, Mask: GrabbableMask}
	// NotGrabbableFilter collides with everything but is skipped by GrabFilter.
	NotGrabbableFilter = cp.ShapeFilter{Group: cp.NO_GROUP, Categories: ^GrabbableMask, Mask: ^GrabbableMask}
)
