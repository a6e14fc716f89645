// Package views renders the server's HTML surface as templ components.
package views

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/Ko-stant/dungeon-layout-engine/internal/protocol"
)

// IndexPage renders the dungeon viewer: a cell grid where each room's
// open sides are drawn as missing borders, with the raw snapshot
// embedded for the client script on /stream.
func IndexPage(s protocol.LayoutSnapshot) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		snapshotJSON, err := json.Marshal(s)
		if err != nil {
			return err
		}

		if _, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>dungeon layout</title>
<style>
 body { font-family: monospace; background: #111; color: #ddd; }
 .grid { display: grid; grid-template-columns: repeat(%d, 28px); gap: 2px; }
 .cell { width: 28px; height: 28px; box-sizing: border-box; background: #333; }
 .cell.room { background: #2a4; }
 .cell.end { background: #a42; }
 .cell.start { outline: 1px solid #fff; }
</style>
</head>
<body>
<h1>dungeon %dx%d seed %d</h1>
<div class="grid">
`, s.MapWidth, s.MapWidth, s.MapHeight, s.Seed); err != nil {
			return err
		}

		rooms := make(map[int]protocol.RoomLite, len(s.Rooms))
		for _, room := range s.Rooms {
			rooms[room.Index] = room
		}

		for i := 0; i < s.MapWidth*s.MapHeight; i++ {
			room, ok := rooms[i]
			if !ok {
				if _, err := fmt.Fprint(w, "<div class=\"cell\"></div>\n"); err != nil {
					return err
				}
				continue
			}
			class := "cell room"
			if room.IsEnd {
				class = "cell end"
			}
			if room.Index == s.StartIndex {
				class += " start"
			}
			if _, err := fmt.Fprintf(w, "<div class=\"%s\" style=\"%s\" title=\"%s\"></div>\n",
				class, borderStyle(room.OpenSides), templ.EscapeString(room.Variant)); err != nil {
				return err
			}
		}

		_, err = fmt.Fprintf(w, `</div>
<script id="snapshot" type="application/json">%s</script>
</body>
</html>
`, snapshotJSON)
		return err
	})
}

// borderStyle turns the open-side flags into CSS: a closed side is a
// solid wall, an open one a doorway.
func borderStyle(open [4]bool) string {
	border := func(isOpen bool) string {
		if isOpen {
			return "2px dashed #888"
		}
		return "2px solid #000"
	}
	return fmt.Sprintf("border-top:%s;border-bottom:%s;border-right:%s;border-left:%s",
		border(open[0]), border(open[1]), border(open[2]), border(open[3]))
}
