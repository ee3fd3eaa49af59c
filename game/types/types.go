package types

// Point is a cell on the board. Y grows upward.
type Point struct {
	X, Y int
}

// Add returns the point shifted by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Collides reports whether p matches any member of points.
func (p Point) Collides(points []Point) bool {
	for _, q := range points {
		if p == q {
			return true
		}
	}
	return false
}

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

// Direction is one of the four cardinal headings.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// ToPoint converts a Direction into a unit shift.
func (d Direction) ToPoint() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: 1}
	case Right:
		return Point{X: 1, Y: 0}
	case Down:
		return Point{X: 0, Y: -1}
	case Left:
		return Point{X: -1, Y: 0}
	default:
		return Point{}
	}
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Right:
		return Left
	case Down:
		return Up
	default:
		return Right
	}
}

// TurnLeft returns the heading after a quarter turn counter-clockwise.
func (d Direction) TurnLeft() Direction {
	switch d {
	case Up:
		return Left
	case Right:
		return Up
	case Down:
		return Right
	default:
		return Down
	}
}

// TurnRight returns the heading after a quarter turn clockwise.
func (d Direction) TurnRight() Direction {
	switch d {
	case Up:
		return Right
	case Right:
		return Down
	case Down:
		return Left
	default:
		return Up
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
		return "unknown"
	}
}

// KeyCode is an input event code. Frontends translate their native key
// events into these values; anything else is ignored by the session.
type KeyCode int

const (
	KeyPause  KeyCode = 32
	KeyLeft   KeyCode = 37
	KeyUp     KeyCode = 38
	KeyRight  KeyCode = 39
	KeyDown   KeyCode = 40
	KeyResume KeyCode = 82
)

// Direction returns the heading a key requests, if it is a direction key.
func (k KeyCode) Direction() (Direction, bool) {
	switch k {
	case KeyUp:
		return Up, true
	case KeyRight:
		return Right, true
	case KeyDown:
		return Down, true
	case KeyLeft:
		return Left, true
	}
	return 0, false
}

// Key returns the key code that requests direction d.
func (d Direction) Key() KeyCode {
	switch d {
	case Up:
		return KeyUp
	case Right:
		return KeyRight
	case Down:
		return KeyDown
	default:
		return KeyLeft
	}
}
