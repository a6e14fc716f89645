package protocol

// RoomLite is one assigned cell as sent to presentation. OpenSides is
// indexed 0=up, 1=down, 2=right, 3=left; a true entry is a door, a
// false entry a solid wall.
type RoomLite struct {
	Index     int     `json:"index"`
	X         int     `json:"x"`
	Y         int     `json:"y"`
	Variant   string  `json:"variant"`
	OpenSides [4]bool `json:"openSides"`
	IsEnd     bool    `json:"isEnd"`
}

type LayoutSnapshot struct {
	MapWidth        int        `json:"mapWidth"`
	MapHeight       int        `json:"mapHeight"`
	StartIndex      int        `json:"startIndex"`
	EndIndex        int        `json:"endIndex"`
	Seed            int64      `json:"seed"`
	CellSpacing     float64    `json:"cellSpacing"`
	Rooms           []RoomLite `json:"rooms"`
	ProtocolVersion string     `json:"protocolVersion"`
}
