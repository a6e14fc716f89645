package protocol

import "encoding/json"

type IntentEnvelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// RequestRegenerate asks for a fresh dungeon. A zero seed means "pick
// one for me".
type RequestRegenerate struct {
	Seed int64 `json:"seed"`
}

// RequestResize changes the grid dimensions and regenerates.
type RequestResize struct {
	Width  int   `json:"width"`
	Height int   `json:"height"`
	Seed   int64 `json:"seed"`
}

// RequestEnterRoom reports a player entity entering a cell, so the
// server can announce the end room being reached.
type RequestEnterRoom struct {
	EntityID string `json:"entityId"`
	Index    int    `json:"index"`
}
