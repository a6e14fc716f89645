package maze

import (
	"errors"
	"fmt"

	"github.com/Ko-stant/dungeon-layout-engine/internal/grid"
)

// MaxSteps bounds a single carving run. The walk aborts once this many
// iterations have happened regardless of how much of the grid has been
// reached; cells still unvisited at that point simply get no room. This
// is a deliberate safety ceiling for pathological configurations on
// large grids, not a coverage guarantee.
const MaxSteps = 1000

var (
	ErrInvalidDimensions = errors.New("maze: width and height must be positive")
	ErrInvalidStart      = errors.New("maze: start index out of grid bounds")
)

// Rand is the uniform random source the walk consumes. *math/rand.Rand
// satisfies it.
type Rand interface {
	Intn(n int) int
}

// Generate carves a maze over a width×height grid using a randomized
// depth-first walk with explicit backtracking, starting from the given
// linear cell index. Callers are expected to clamp start into range
// beforehand; an out-of-range start is an error, not a correction.
//
// The walk stops on any of three conditions: the backtrack stack is
// exhausted, the current cell is the final linear index (width*height-1),
// or MaxSteps iterations have run. The second condition biases which
// cells get visited and is kept on purpose; changing it changes which
// dungeons are reachable.
//
// With the same random source state and arguments the resulting board is
// bit-for-bit reproducible.
func Generate(width, height, start int, rng Rand) (*grid.Board, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	total := width * height
	if start < 0 || start >= total {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrInvalidStart, start, total)
	}

	board := grid.NewBoard(width, height)
	current := start
	stack := make([]int, 0, total)
	last := total - 1

	for step := 0; step < MaxSteps; step++ {
		board.Cells[current].Visited = true
		if current == last {
			break
		}

		neighbors := unvisitedNeighbors(board, current)
		if len(neighbors) == 0 {
			if len(stack) == 0 {
				break
			}
			current = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			continue
		}

		stack = append(stack, current)
		next := neighbors[rng.Intn(len(neighbors))]
		openBetween(board, current, next)
		current = next
	}

	return board, nil
}

// unvisitedNeighbors lists the grid-adjacent unvisited cells of i in
// up, down, right, left order. Right and left are rejected when the
// step would cross a row boundary.
func unvisitedNeighbors(b *grid.Board, i int) []int {
	neighbors := make([]int, 0, 4)
	if up := i - b.Width; up >= 0 && !b.Cells[up].Visited {
		neighbors = append(neighbors, up)
	}
	if down := i + b.Width; down < len(b.Cells) && !b.Cells[down].Visited {
		neighbors = append(neighbors, down)
	}
	if (i+1)%b.Width != 0 && !b.Cells[i+1].Visited {
		neighbors = append(neighbors, i+1)
	}
	if i%b.Width != 0 && !b.Cells[i-1].Visited {
		neighbors = append(neighbors, i-1)
	}
	return neighbors
}

// openBetween opens the matching pair of sides between two adjacent
// cells. The pair is derived from index arithmetic: a difference of one
// is a horizontal step, anything else is a vertical step of one row.
func openBetween(b *grid.Board, from, to int) {
	switch {
	case to == from+1:
		b.Cells[from].Open[grid.Right] = true
		b.Cells[to].Open[grid.Left] = true
	case to > from:
		b.Cells[from].Open[grid.Down] = true
		b.Cells[to].Open[grid.Up] = true
	case to == from-1:
		b.Cells[from].Open[grid.Left] = true
		b.Cells[to].Open[grid.Right] = true
	default:
		b.Cells[from].Open[grid.Up] = true
		b.Cells[to].Open[grid.Down] = true
	}
}
