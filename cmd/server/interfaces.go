package main

// Broadcaster interface for WebSocket fan-out
type Broadcaster interface {
	BroadcastPatch(patchType string, payload any) error
}

// Logger interface for logging abstraction
type Logger interface {
	Printf(format string, v ...interface{})
}
