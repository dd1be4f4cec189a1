package game

import (
	"github.com/spacepatrol/space_patrol/internal/world"
)

// DefaultPlayerName is the commander's name when none is configured.
const DefaultPlayerName = "Player"

const (
	logSize        = 50
	welcomeMessage = "Welcome to Space Patrol! Prepare for your mission."
)

// Game is the whole session state. It is created once, mutated in place by
// the session that owns it, and dropped at exit.
type Game struct {
	Player  Player
	Galaxy  *world.Galaxy
	Pirate  Pirate
	Message string // status line shown on the next render
	Log     *MessageLog

	// RearmPirates restores a destroyed pirate before the next encounter.
	RearmPirates bool
}

// NewGame creates a game. dice places the pirate nests.
func NewGame(name string, dice Dice) *Game {
	if name == "" {
		name = DefaultPlayerName
	}
	return &Game{
		Player:  NewPlayer(name),
		Galaxy:  world.NewGalaxy(dice),
		Pirate:  NewPirate(),
		Message: welcomeMessage,
		Log:     NewMessageLog(logSize),
	}
}

// CurrentSector returns the sector the player is in.
func (g *Game) CurrentSector() world.Sector {
	s, _ := g.Galaxy.Sector(g.Player.Sector)
	return s
}

// View returns a snapshot for rendering.
func (g *Game) View() View {
	return View{
		Sectors: g.Galaxy.Sectors(),
		Player:  g.Player,
		Message: g.Message,
	}
}
