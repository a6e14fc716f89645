package layout

import (
	"errors"
	"fmt"

	"github.com/Ko-stant/dungeon-layout-engine/internal/grid"
)

// Rand is the uniform random source used for may-spawn and fallback
// picks. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

var (
	ErrEmptyRuleSet     = errors.New("layout: rule set is empty")
	ErrNoRoomsGenerated = errors.New("layout: no cells were visited, nothing to assign")
)

// PlacementRule is one candidate room variant and the rectangle of the
// grid where it may (or, when Obligatory, must) appear.
type PlacementRule struct {
	Min        grid.Point `json:"min"`
	Max        grid.Point `json:"max"`
	Obligatory bool       `json:"obligatory"`
	Variant    string     `json:"variant"`
}

// covers reports whether (x, y) lies inside the rule's rectangle.
func (r PlacementRule) covers(x, y int) bool {
	return x >= r.Min.X && x <= r.Max.X && y >= r.Min.Y && y <= r.Max.Y
}

// Room is one assigned cell of the final layout.
type Room struct {
	Index   int
	Variant string
	Open    [4]bool
	IsEnd   bool
}

// Layout is the engine's final output: a room per visited cell plus a
// single designated end cell. Consumed read-only by presentation.
type Layout struct {
	Width    int
	Height   int
	Rooms    []Room
	EndIndex int
}

// Assign selects a room variant for every visited cell of the board and
// designates the end room, the visited cell farthest (Euclidean) from
// the start cell. Unvisited cells are skipped entirely.
//
// Variant selection per cell, in priority order: the first rule in list
// order that is obligatory and covers the cell; failing that, a uniform
// pick among the non-obligatory rules covering the cell; failing that, a
// uniform pick among all rules, so a visited cell always gets a variant
// even when no rectangle covers it.
func Assign(board *grid.Board, rules []PlacementRule, start int, rng Rand) (*Layout, error) {
	if len(rules) == 0 {
		return nil, ErrEmptyRuleSet
	}

	startX, startY := board.Coords(start)

	out := &Layout{
		Width:    board.Width,
		Height:   board.Height,
		Rooms:    make([]Room, 0, board.VisitedCount()),
		EndIndex: -1,
	}

	// Row-major scan; strict > keeps the first cell at the maximum
	// distance when several tie.
	bestDist := -1
	bestRoom := -1

	for i := range board.Cells {
		cell := &board.Cells[i]
		if !cell.Visited {
			continue
		}
		x, y := board.Coords(i)

		out.Rooms = append(out.Rooms, Room{
			Index:   i,
			Variant: pickVariant(rules, x, y, rng),
			Open:    cell.Open,
		})

		dx, dy := x-startX, y-startY
		if d := dx*dx + dy*dy; d > bestDist {
			bestDist = d
			bestRoom = len(out.Rooms) - 1
		}
	}

	if len(out.Rooms) == 0 {
		return nil, fmt.Errorf("%w (start %d)", ErrNoRoomsGenerated, start)
	}

	out.Rooms[bestRoom].IsEnd = true
	out.EndIndex = out.Rooms[bestRoom].Index
	return out, nil
}

// pickVariant applies the selection policy for one cell. An obligatory
// match never consumes randomness, which keeps rule-order ties
// reproducible across runs.
func pickVariant(rules []PlacementRule, x, y int, rng Rand) string {
	candidates := make([]int, 0, len(rules))
	for ri, rule := range rules {
		if !rule.covers(x, y) {
			continue
		}
		if rule.Obligatory {
			return rule.Variant
		}
		candidates = append(candidates, ri)
	}
	if len(candidates) > 0 {
		return rules[candidates[rng.Intn(len(candidates))]].Variant
	}
	return rules[rng.Intn(len(rules))].Variant
}
