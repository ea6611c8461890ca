package component

type BoundarySide int

const (
	BoundaryLeft BoundarySide = iota
	BoundaryRight
	BoundaryGround
)

func (s BoundarySide) String() string {
	switch s {
	case BoundaryLeft:
		return "left"
	case BoundaryRight:
		return "right"
	case BoundaryGround:
		return "ground"
	default:
		return "unknown"
	}
}

// Boundary marks one of the static walls or the floor.
type Boundary struct {
	Side BoundarySide
}

var BoundaryComponent = NewComponent[Boundary]()
