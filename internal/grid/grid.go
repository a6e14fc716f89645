package grid

// Side identifies one of the four sides of a cell.
type Side int

const (
	Up Side = iota
	Down
	Right
	Left
)

// Opposite returns the side facing s from the adjacent cell.
func (s Side) Opposite() Side {
	switch s {
	case Up:
		return Down
	case Down:
		return Up
	case Right:
		return Left
	default:
		return Right
	}
}

func (s Side) String() string {
	switch s {
	case Up:
		return "up"
	case Down:
		return "down"
	case Right:
		return "right"
	default:
		return "left"
	}
}

// Point is a grid coordinate.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Cell is one grid position. Open[k] means a passage exists on side k;
// a closed side is a solid wall. Openings are always written in pairs
// with the adjacent cell's opposite side, never independently.
type Cell struct {
	Visited bool
	Open    [4]bool
}

// Board is the full grid, indexed by the linear index x + y*width.
// It is owned by a single generation run and treated as immutable once
// handed to room assignment.
type Board struct {
	Width  int
	Height int
	Cells  []Cell
}

// NewBoard returns a board of width*height closed, unvisited cells.
func NewBoard(width, height int) *Board {
	return &Board{
		Width:  width,
		Height: height,
		Cells:  make([]Cell, width*height),
	}
}

// Size returns the total cell count.
func (b *Board) Size() int {
	return b.Width * b.Height
}

// Index converts (x, y) to the linear cell index.
func (b *Board) Index(x, y int) int {
	return x + y*b.Width
}

// Coords recovers (x, y) from a linear cell index.
func (b *Board) Coords(i int) (int, int) {
	return i % b.Width, i / b.Width
}

// VisitedCount returns how many cells the maze walk reached.
func (b *Board) VisitedCount() int {
	n := 0
	for i := range b.Cells {
		if b.Cells[i].Visited {
			n++
		}
	}
	return n
}
