package main

import (
	"sync"

	"github.com/Ko-stant/dungeon-layout-engine/internal/layout"
	"github.com/Ko-stant/dungeon-layout-engine/internal/maze"
	"github.com/Ko-stant/dungeon-layout-engine/internal/protocol"
	"github.com/Ko-stant/dungeon-layout-engine/internal/random"
)

// DungeonState holds the layout currently being served. Regeneration
// is atomic: either a complete new snapshot replaces the old one, or
// the old one is kept unchanged.
type DungeonState struct {
	lock        sync.Mutex
	rules       []layout.PlacementRule
	startIndex  int
	cellSpacing float64
	snapshot    protocol.LayoutSnapshot
	logger      Logger
}

func NewDungeonState(rules []layout.PlacementRule, startIndex int, cellSpacing float64, logger Logger) *DungeonState {
	return &DungeonState{
		rules:       rules,
		startIndex:  startIndex,
		cellSpacing: cellSpacing,
		logger:      logger,
	}
}

// Snapshot returns the layout currently in effect.
func (s *DungeonState) Snapshot() protocol.LayoutSnapshot {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.snapshot
}

// Regenerate builds a fresh dungeon and swaps it in. On any failure the
// previous snapshot stays in effect and the error is returned.
func (s *DungeonState) Regenerate(width, height int, seed int64) (protocol.LayoutSnapshot, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	rng, usedSeed, err := random.NewSeededRNG(seed)
	if err != nil {
		return protocol.LayoutSnapshot{}, err
	}

	start := s.startIndex
	if max := width*height - 1; start > max {
		start = max
	}

	board, err := maze.Generate(width, height, start, rng)
	if err != nil {
		return protocol.LayoutSnapshot{}, err
	}

	lay, err := layout.Assign(board, s.rules, start, rng)
	if err != nil {
		return protocol.LayoutSnapshot{}, err
	}

	snapshot := buildSnapshot(lay, start, usedSeed, s.cellSpacing)
	s.snapshot = snapshot
	s.logger.Printf("generated dungeon %dx%d seed=%d rooms=%d end=%d",
		width, height, usedSeed, len(snapshot.Rooms), snapshot.EndIndex)
	return snapshot, nil
}

// buildSnapshot converts a layout into its wire form.
func buildSnapshot(lay *layout.Layout, start int, seed int64, cellSpacing float64) protocol.LayoutSnapshot {
	rooms := make([]protocol.RoomLite, 0, len(lay.Rooms))
	for _, room := range lay.Rooms {
		x := room.Index % lay.Width
		y := room.Index / lay.Width
		rooms = append(rooms, protocol.RoomLite{
			Index:     room.Index,
			X:         x,
			Y:         y,
			Variant:   room.Variant,
			OpenSides: room.Open,
			IsEnd:     room.IsEnd,
		})
	}
	return protocol.LayoutSnapshot{
		MapWidth:        lay.Width,
		MapHeight:       lay.Height,
		StartIndex:      start,
		EndIndex:        lay.EndIndex,
		Seed:            seed,
		CellSpacing:     cellSpacing,
		Rooms:           rooms,
		ProtocolVersion: "v0",
	}
}
