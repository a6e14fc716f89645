package main

import (
	"testing"

	"github.com/Ko-stant/dungeon-layout-engine/internal/layout"
)

// testLogger implements Logger for testing
type testLogger struct{}

func (tl *testLogger) Printf(format string, v ...interface{}) {}

func newTestState() *DungeonState {
	return NewDungeonState(defaultRules(4, 4), 0, 1.0, &testLogger{})
}

func TestDungeonState_RegenerateProducesCompleteSnapshot(t *testing.T) {
	state := newTestState()
	snapshot, err := state.Regenerate(4, 4, 99)
	if err != nil {
		t.Fatalf("regeneration failed: %v", err)
	}
	if snapshot.MapWidth != 4 || snapshot.MapHeight != 4 {
		t.Errorf("unexpected dimensions %dx%d", snapshot.MapWidth, snapshot.MapHeight)
	}
	if snapshot.Seed != 99 {
		t.Errorf("expected seed 99, got %d", snapshot.Seed)
	}
	if len(snapshot.Rooms) == 0 {
		t.Fatal("snapshot has no rooms")
	}

	ends := 0
	for _, room := range snapshot.Rooms {
		if room.IsEnd {
			ends++
		}
		if room.Variant == "" {
			t.Errorf("room %d has no variant", room.Index)
		}
	}
	if ends != 1 {
		t.Errorf("expected exactly one end room, got %d", ends)
	}
}

func TestDungeonState_RegenerateIsDeterministicPerSeed(t *testing.T) {
	first, err := newTestState().Regenerate(4, 4, 7)
	if err != nil {
		t.Fatalf("first regeneration failed: %v", err)
	}
	second, err := newTestState().Regenerate(4, 4, 7)
	if err != nil {
		t.Fatalf("second regeneration failed: %v", err)
	}
	if len(first.Rooms) != len(second.Rooms) {
		t.Fatalf("room counts differ: %d vs %d", len(first.Rooms), len(second.Rooms))
	}
	for i := range first.Rooms {
		if first.Rooms[i] != second.Rooms[i] {
			t.Errorf("room %d differs: %+v vs %+v", i, first.Rooms[i], second.Rooms[i])
		}
	}
	if first.EndIndex != second.EndIndex {
		t.Errorf("end rooms differ: %d vs %d", first.EndIndex, second.EndIndex)
	}
}

func TestDungeonState_FailedRegenerationKeepsPreviousLayout(t *testing.T) {
	state := newTestState()
	previous, err := state.Regenerate(4, 4, 7)
	if err != nil {
		t.Fatalf("initial regeneration failed: %v", err)
	}

	if _, err := state.Regenerate(0, 0, 7); err == nil {
		t.Fatal("expected regeneration with zero dimensions to fail")
	}

	current := state.Snapshot()
	if current.Seed != previous.Seed || len(current.Rooms) != len(previous.Rooms) {
		t.Error("failed regeneration must leave the previous snapshot in effect")
	}
}

func TestBuildSnapshot_CarriesRoomCoordinates(t *testing.T) {
	lay := &layout.Layout{
		Width:  3,
		Height: 3,
		Rooms: []layout.Room{
			{Index: 0, Variant: "entry"},
			{Index: 5, Variant: "chamber", IsEnd: true},
		},
		EndIndex: 5,
	}
	snapshot := buildSnapshot(lay, 0, 11, 2.5)
	if snapshot.Rooms[1].X != 2 || snapshot.Rooms[1].Y != 1 {
		t.Errorf("room 5 mapped to (%d,%d), want (2,1)", snapshot.Rooms[1].X, snapshot.Rooms[1].Y)
	}
	if !snapshot.Rooms[1].IsEnd || snapshot.EndIndex != 5 {
		t.Error("end room flag lost in snapshot")
	}
	if snapshot.CellSpacing != 2.5 {
		t.Errorf("cell spacing lost: %v", snapshot.CellSpacing)
	}
}

func TestConfig_ClampStart(t *testing.T) {
	cfg := &Config{StartIndex: -3}
	if got := cfg.ClampStart(4, 4); got != 0 {
		t.Errorf("negative start clamped to %d, want 0", got)
	}
	cfg.StartIndex = 99
	if got := cfg.ClampStart(4, 4); got != 15 {
		t.Errorf("oversized start clamped to %d, want 15", got)
	}
	cfg.StartIndex = 5
	if got := cfg.ClampStart(4, 4); got != 5 {
		t.Errorf("in-range start changed to %d", got)
	}
}

func TestDefaultRules(t *testing.T) {
	rules := defaultRules(8, 8)
	if err := layout.ValidateRules(rules); err != nil {
		t.Fatalf("default rules are invalid: %v", err)
	}
	if !rules[0].Obligatory {
		t.Error("first default rule should pin the entry hall")
	}
}
