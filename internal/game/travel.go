package game

import (
	"fmt"

	"github.com/spacepatrol/space_patrol/internal/world"
)

// fuelPerSector is the fuel burned per sector crossed. The same number is
// the turns of ETA per sector.
const fuelPerSector = 2

// FuelCost returns the fuel needed to travel between two sectors.
func FuelCost(from, to int) int {
	return world.Distance(from, to) * fuelPerSector
}

// Move sends the ship to sector dest. On failure nothing changes and the
// reason is posted to the log.
func (g *Game) Move(dest int) error {
	p := &g.Player

	if !world.InBounds(dest) {
		g.Log.Post("Invalid sector!", MsgWarning, CueError)
		return fmt.Errorf("move to sector %d: %w", dest, ErrInvalidInput)
	}
	if dest == p.Sector {
		g.Log.Post("You are already in this sector!", MsgWarning, CueError)
		return fmt.Errorf("move to current sector %d: %w", dest, ErrInvalidInput)
	}

	cost := FuelCost(p.Sector, dest)
	if p.Fuel < cost {
		g.Log.Post("Not enough fuel to move!", MsgWarning, CueError)
		return fmt.Errorf("move to sector %d needs %d, have %d: %w", dest, cost, p.Fuel, ErrInsufficientFuel)
	}

	p.Fuel -= cost
	p.ETA = cost
	p.Sector = dest
	g.Log.Post(fmt.Sprintf("Moved to sector %d. It will take %d turns to arrive.", dest, cost), MsgInfo, CueWarp)
	return nil
}

// AdvanceETA counts the arrival timer down by one turn.
// ETA never blocks any action; it is a countdown for the status screen.
func (g *Game) AdvanceETA() {
	if g.Player.ETA > 0 {
		g.Player.ETA--
	}
}
