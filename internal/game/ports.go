package game

import "github.com/spacepatrol/space_patrol/internal/world"

// View is a snapshot of everything a status screen shows.
// It shares no memory with the Game it was taken from.
type View struct {
	Sectors []world.Sector
	Player  Player
	Message string
}

// Presenter renders game output. Nothing it does feeds back into the game.
type Presenter interface {
	// Render shows the grid, the player status and the current message.
	Render(v View)
	// Menu shows a numbered list of options. Options are numbered from 1.
	Menu(title string, options []string)
	// Notify shows one line of game output.
	Notify(msg Message)
}

// Input supplies the player's numeric choices. ReadInt blocks until a value
// is entered. Malformed entries return an error wrapping ErrInvalidInput;
// io.EOF means the player has gone and the session should end.
type Input interface {
	ReadInt(prompt string) (int, error)
}
