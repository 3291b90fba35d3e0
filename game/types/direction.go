package types

// Direction is one of the four cardinal headings
type Direction int

const (
	None Direction = iota // 0
	Up                    // 1
	Right                 // 2
	Down                  // 3
	Left                  // 4
)

// Directions lists every valid heading
var Directions = []Direction{Up, Right, Down, Left}

func (d Direction) Valid() bool {
	return d >= Up && d <= Left
}

// Delta converts a Direction into a unit step. Y grows downwards.
func (d Direction) Delta() (dx, dy int, ok bool) {
	switch d {
	case Up:
		return 0, -1, true
	case Right:
		return 1, 0, true
	case Down:
		return 0, 1, true
	case Left:
		return -1, 0, true
	default:
		return 0, 0, false
	}
}

// Reverse returns the opposite heading. None maps to None.
func (d Direction) Reverse() Direction {
	switch d {
	case Up:
		return Down
	case Right:
		return Left
	case Down:
		return Up
	case Left:
		return Right
	default:
		return None
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "none"
	}
}
