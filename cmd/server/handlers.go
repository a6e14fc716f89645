package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/coder/websocket"

	"github.com/Ko-stant/dungeon-layout-engine/internal/protocol"
	"github.com/Ko-stant/dungeon-layout-engine/internal/web/views"
	"github.com/Ko-stant/dungeon-layout-engine/internal/ws"
)

// maxGridEdge bounds client-requested resizes; the carving walk is
// capped anyway, so larger grids would only produce unvisited fringe.
const maxGridEdge = 64

func handleIndex(state *DungeonState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := views.IndexPage(state.Snapshot()).Render(r.Context(), w); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}

func handleLayoutJSON(state *DungeonState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(state.Snapshot()); err != nil {
			log.Printf("encode layout snapshot: %v", err)
		}
	}
}

func handleStream(state *DungeonState, hub *ws.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
		if err != nil {
			return
		}
		hub.Add(conn)
		log.Printf("viewer connected (%d total)", hub.Len())

		hello, _ := json.Marshal(protocol.PatchEnvelope{
			Type:    "LayoutGenerated",
			Payload: protocol.LayoutGenerated{Snapshot: state.Snapshot()},
		})
		_ = conn.Write(context.Background(), websocket.MessageText, hello)

		go func(c *websocket.Conn) {
			defer hub.Remove(c)
			defer c.Close(websocket.StatusNormalClosure, "")
			for {
				_, data, err := c.Read(context.Background())
				if err != nil {
					return
				}
				var env protocol.IntentEnvelope
				if err := json.Unmarshal(data, &env); err != nil {
					continue
				}
				dispatchIntent(state, hub, env)
			}
		}(conn)
	}
}

// dispatchIntent applies one client intent against the current state
// and broadcasts the outcome.
func dispatchIntent(state *DungeonState, hub Broadcaster, env protocol.IntentEnvelope) {
	switch env.Type {
	case "RequestRegenerate":
		var req protocol.RequestRegenerate
		if err := json.Unmarshal(env.Payload, &req); err != nil {
			return
		}
		current := state.Snapshot()
		regenerate(state, hub, current.MapWidth, current.MapHeight, req.Seed)

	case "RequestResize":
		var req protocol.RequestResize
		if err := json.Unmarshal(env.Payload, &req); err != nil {
			return
		}
		if err := validateResize(req.Width, req.Height); err != nil {
			log.Printf("rejected resize: %v", err)
			_ = hub.BroadcastPatch("GenerationFailed", protocol.GenerationFailed{Reason: err.Error()})
			return
		}
		regenerate(state, hub, req.Width, req.Height, req.Seed)

	case "RequestEnterRoom":
		var req protocol.RequestEnterRoom
		if err := json.Unmarshal(env.Payload, &req); err != nil {
			return
		}
		if snapshot := state.Snapshot(); req.Index == snapshot.EndIndex {
			log.Printf("entity %s reached the end room at %d", req.EntityID, req.Index)
			_ = hub.BroadcastPatch("EndRoomEntered", protocol.EndRoomEntered{
				EntityID: req.EntityID,
				Index:    req.Index,
			})
		}
	}
}

func regenerate(state *DungeonState, hub Broadcaster, width, height int, seed int64) {
	snapshot, err := state.Regenerate(width, height, seed)
	if err != nil {
		log.Printf("regeneration failed, keeping previous layout: %v", err)
		_ = hub.BroadcastPatch("GenerationFailed", protocol.GenerationFailed{Reason: err.Error()})
		return
	}
	_ = hub.BroadcastPatch("LayoutGenerated", protocol.LayoutGenerated{Snapshot: snapshot})
}

func validateResize(width, height int) error {
	if width <= 0 || height <= 0 {
		return &IntentError{Code: "INVALID_DIMENSIONS", Message: "width and height must be positive"}
	}
	if width > maxGridEdge || height > maxGridEdge {
		return &IntentError{Code: "GRID_TOO_LARGE", Message: "requested grid exceeds the supported size"}
	}
	return nil
}
