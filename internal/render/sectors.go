package render

import (
	"fmt"

	"github.com/spacepatrol/space_patrol/internal/world"
)

// Sector tags, in precedence order.
const (
	TagPlayer   = "py"
	TagStarbase = "sb"
	TagPirates  = "pr"
	TagEmpty    = "  "
)

// SectorTag returns the two-letter tag for s and its colour. The player's
// own sector wins over a starbase, which wins over pirates.
func SectorTag(s world.Sector, playerSector int) (tag string, fg uint8) {
	switch {
	case s.Number == playerSector:
		return TagPlayer, ColorLightGreen
	case s.IsStarbase:
		return TagStarbase, ColorLightBlue
	case s.HasPirates:
		return TagPirates, ColorLightRed
	default:
		return TagEmpty, ColorDarkGray
	}
}

// sectorCellWidth is the width of "[n:xx]" plus the gap after it.
const sectorCellWidth = 7

// RenderSectorGrid writes the 3x3 sector map at the given offset, one row
// of three cells per grid row.
func RenderSectorGrid(buf *CellBuffer, sectors []world.Sector, playerSector, offsetX, offsetY int) {
	for _, s := range sectors {
		col, row := world.GridPos(s.Number)
		if col < 0 {
			continue
		}
		x := offsetX + col*sectorCellWidth
		y := offsetY + row
		tag, fg := SectorTag(s, playerSector)

		x += buf.WriteString(x, y, fmt.Sprintf("[%d:", s.Number), ColorLightGray, ColorBlack)
		x += buf.WriteString(x, y, tag, fg, ColorBlack)
		buf.WriteString(x, y, "]", ColorLightGray, ColorBlack)
	}
}
