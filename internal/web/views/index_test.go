package views

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/Ko-stant/dungeon-layout-engine/internal/protocol"
)

func TestIndexPage_RendersRoomsAndSnapshot(t *testing.T) {
	snapshot := protocol.LayoutSnapshot{
		MapWidth:   2,
		MapHeight:  1,
		StartIndex: 0,
		EndIndex:   1,
		Seed:       42,
		Rooms: []protocol.RoomLite{
			{Index: 0, Variant: "entry-hall", OpenSides: [4]bool{false, false, true, false}},
			{Index: 1, X: 1, Variant: "stone-chamber", OpenSides: [4]bool{false, false, false, true}, IsEnd: true},
		},
		ProtocolVersion: "v0",
	}

	var buf bytes.Buffer
	if err := IndexPage(snapshot).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	page := buf.String()

	if !strings.Contains(page, "dungeon 2x1 seed 42") {
		t.Error("page heading missing")
	}
	if !strings.Contains(page, "cell end") {
		t.Error("end room cell missing")
	}
	if !strings.Contains(page, "entry-hall") {
		t.Error("variant title missing")
	}
	if !strings.Contains(page, `"protocolVersion":"v0"`) {
		t.Error("embedded snapshot JSON missing")
	}
}
