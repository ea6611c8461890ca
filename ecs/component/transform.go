package component

// Transform is the render-facing pose of a body, synced from the physics
// space after every step. X and Y are the body centre.
type Transform struct {
	X        float64
	Y        float64
	Rotation float64
}

var TransformComponent = NewComponent[Transform]()
