package protocol

type PatchEnvelope struct {
	Sequence uint64 `json:"seq"`
	Type     string `json:"type"`
	Payload  any    `json:"payload"`
}

// LayoutGenerated carries a complete replacement snapshot. A consumer
// swaps the whole layout at once; there is no partial update.
type LayoutGenerated struct {
	Snapshot LayoutSnapshot `json:"snapshot"`
}

// GenerationFailed reports a rejected regeneration request. The previous
// layout stays in effect.
type GenerationFailed struct {
	Reason string `json:"reason"`
}

// EndRoomEntered notifies presentation that a player-controlled entity
// reached the cell flagged as the end room.
type EndRoomEntered struct {
	EntityID string `json:"entityId"`
	Index    int    `json:"index"`
}
