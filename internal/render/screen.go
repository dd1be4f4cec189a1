package render

import (
	"fmt"
	"strings"

	"github.com/spacepatrol/space_patrol/internal/game"
)

// Screen size in cells.
const (
	ScreenCols = 80
	ScreenRows = 34
)

// CommsLines is how many comms lines the screen shows.
const CommsLines = 10

// Screen is everything one frame shows. Front ends build it from the
// presenter snapshot and the keypad line.
type Screen struct {
	View      game.View
	HasView   bool // false until the first Render
	MenuTitle string
	Menu      []string
	Comms     []game.Message // oldest first
	Prompt    string
	Input     string
	Waiting   bool // a prompt is open
	Over      bool // the session has ended
}

// Panel geometry.
const (
	leftX    = 1
	leftW    = 24
	rightX   = 26
	rightW   = 53
	sectorsY = 2
	sectorsH = 6
	weaponsY = 8
	weaponsH = 11
	statusY  = 2
	statusH  = 8
	bridgeY  = 10
	bridgeH  = 3
	menuY    = 13
	menuH    = 6
	commsX   = 1
	commsW   = 78
	commsY   = 19
	commsH   = CommsLines + 2
	promptY  = 31
	footerY  = 33
)

// DrawPatrol composes a whole frame into buf, which should be at least
// ScreenCols x ScreenRows.
func DrawPatrol(buf *CellBuffer, s Screen) {
	buf.Clear()

	buf.Fill(0, 0, buf.Cols, 1, ' ', ColorYellow, ColorBlue)
	buf.WriteCentered(0, 0, buf.Cols, "S P A C E   P A T R O L", ColorYellow, ColorBlue)

	buf.DrawBox(leftX, sectorsY, leftW, sectorsH, BoxDouble, "Space Grid", ColorCyan, ColorBlack)
	buf.DrawBox(leftX, weaponsY, leftW, weaponsH, BoxSingle, "Weapons", ColorCyan, ColorBlack)
	buf.DrawBox(rightX, statusY, rightW, statusH, BoxDouble, "Player Status", ColorBlue, ColorBlack)
	buf.DrawBox(rightX, bridgeY, rightW, bridgeH, BoxSingle, "Bridge", ColorCyan, ColorBlack)
	buf.DrawBox(rightX, menuY, rightW, menuH, BoxSingle, menuTitle(s.MenuTitle), ColorCyan, ColorBlack)
	buf.DrawBox(commsX, commsY, commsW, commsH, BoxSingle, "Comms", ColorCyan, ColorBlack)

	if s.HasView {
		drawSectors(buf, s.View)
		drawWeapons(buf, s.View.Player)
		drawStatus(buf, s.View.Player)
		buf.WriteClipped(rightX+2, bridgeY+1, rightW-4, s.View.Message, ColorWhite, ColorBlack)
	}
	drawMenu(buf, s.Menu)
	drawComms(buf, s.Comms)
	drawPrompt(buf, s)

	buf.WriteString(1, footerY, "Enter: submit  Backspace: erase  Esc: quit", ColorDarkGray, ColorBlack)
}

func menuTitle(t string) string {
	if t == "" {
		return "Main Menu"
	}
	return strings.TrimSuffix(t, ":")
}

func drawSectors(buf *CellBuffer, v game.View) {
	RenderSectorGrid(buf, v.Sectors, v.Player.Sector, leftX+2, sectorsY+1)
	y := sectorsY + 4
	x := leftX + 2
	x += buf.WriteString(x, y, TagPlayer, ColorLightGreen, ColorBlack) + 1
	x += buf.WriteString(x, y, TagStarbase, ColorLightBlue, ColorBlack) + 1
	buf.WriteString(x, y, TagPirates, ColorLightRed, ColorBlack)
}

func drawWeapons(buf *CellBuffer, p game.Player) {
	for i, slot := range p.Weapons {
		y := weaponsY + 2 + i
		buf.WriteString(leftX+2, y, fmt.Sprintf("%d", i+1), ColorDarkGray, ColorBlack)
		if !slot.Mounted {
			buf.WriteString(leftX+4, y, "Empty", ColorDarkGray, ColorBlack)
			continue
		}
		buf.WriteClipped(leftX+4, y, leftW-6, slot.Weapon.Name, ColorWhite, ColorBlack)
	}
	buf.WriteString(leftX+2, weaponsY+8,
		fmt.Sprintf("Slots: %d/%d", p.Weapons.UsedSlots(), game.MaxWeapons), ColorLightGray, ColorBlack)
}

func drawStatus(buf *CellBuffer, p game.Player) {
	x := rightX + 2
	y := statusY + 1
	label := func(row int, s string) {
		buf.WriteString(x, y+row, s, ColorLightGray, ColorBlack)
	}

	label(0, "Commander:")
	buf.WriteClipped(x+11, y, rightW-15, p.Name, ColorWhite, ColorBlack)

	label(1, "Health:")
	buf.WriteString(x+11, y+1, fmt.Sprintf("%d/%d", p.Health, p.MaxHealth), healthColor(p), ColorBlack)
	drawBar(buf, x+23, y+1, 24, p.Health, p.MaxHealth, healthColor(p))

	label(2, "Fuel:")
	buf.WriteString(x+11, y+2, fmt.Sprintf("%d/%d", p.Fuel, p.MaxFuel), ColorLightMagenta, ColorBlack)
	drawBar(buf, x+23, y+2, 24, p.Fuel, p.MaxFuel, ColorLightMagenta)

	label(3, "Money:")
	buf.WriteString(x+11, y+3, fmt.Sprintf("%d", p.Money), ColorYellow, ColorBlack)

	label(4, "Sector:")
	buf.WriteString(x+11, y+4, fmt.Sprintf("%d", p.Sector), ColorWhite, ColorBlack)

	label(5, "ETA:")
	eta := "arrived"
	if p.ETA > 0 {
		eta = fmt.Sprintf("%d turns", p.ETA)
	}
	buf.WriteString(x+11, y+5, eta, ColorWhite, ColorBlack)
}

func healthColor(p game.Player) uint8 {
	switch {
	case p.Health*4 <= p.MaxHealth:
		return ColorLightRed
	case p.Health*2 <= p.MaxHealth:
		return ColorYellow
	default:
		return ColorLightGreen
	}
}

// drawBar draws a width-cell gauge of value out of limit.
func drawBar(buf *CellBuffer, x, y, width, value, limit int, fg uint8) {
	filled := 0
	if limit > 0 {
		filled = min(max(value, 0)*width/limit, width)
	}
	for i := range width {
		if i < filled {
			buf.Set(x+i, y, 219, fg, ColorBlack)
		} else {
			buf.Set(x+i, y, 176, ColorDarkGray, ColorBlack)
		}
	}
}

func drawMenu(buf *CellBuffer, options []string) {
	for i, opt := range options {
		if i >= menuH-2 {
			break
		}
		buf.WriteClipped(rightX+2, menuY+1+i, rightW-4, fmt.Sprintf("%d. %s", i+1, opt), ColorWhite, ColorBlack)
	}
}

func drawComms(buf *CellBuffer, comms []game.Message) {
	if len(comms) > CommsLines {
		comms = comms[len(comms)-CommsLines:]
	}
	for i, m := range comms {
		buf.WriteClipped(commsX+2, commsY+1+i, commsW-4, m.Text, PriorityColor(m.Priority), ColorBlack)
	}
}

func drawPrompt(buf *CellBuffer, s Screen) {
	switch {
	case s.Over:
		buf.WriteString(1, promptY, "Session over. Press Esc to close.", ColorYellow, ColorBlack)
	case s.Waiting:
		x := 1 + buf.WriteString(1, promptY, s.Prompt, ColorLightCyan, ColorBlack)
		x += buf.WriteString(x, promptY, s.Input, ColorWhite, ColorBlack)
		buf.Set(x, promptY, '_', ColorWhite, ColorBlack)
	}
}
