package game

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spacepatrol/space_patrol/internal/world"
)

// State is where the session is in its lifecycle.
type State uint8

const (
	StateRunning State = iota
	StateQuit
	StatePlayerDefeated
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateQuit:
		return "quit"
	case StatePlayerDefeated:
		return "player defeated"
	default:
		return "unknown"
	}
}

// Main menu commands, in menu order.
const (
	CmdMove = iota + 1
	CmdScan
	CmdStarbase
	CmdQuit
)

var mainMenu = []string{
	"Move to a sector",
	"Scan for pirates",
	"Visit " + world.StarbaseName,
	"Quit game",
}

// Starbase menu commands.
const (
	starbasePurchase = iota + 1
	starbaseRefuel
	starbaseLeave
)

var starbaseMenu = []string{
	"Purchase Weapons",
	"Refuel Ship",
	"Leave Starbase",
}

const (
	choicePrompt = "Enter your choice: "
	sectorPrompt = "Enter the sector number to move to (1-9): "
	weaponPrompt = "Enter the number of the weapon to purchase: "
)

// Session runs the turn loop over one Game. It is the only thing that
// mutates the game, and it does so from a single goroutine.
type Session struct {
	game   *Game
	in     Input
	out    Presenter
	dice   Dice
	logger *slog.Logger

	state State
	turn  int
	mark  uint64 // log position already sent to out
}

// NewSession wires a game to its input, output and random source.
// A nil logger discards.
func NewSession(g *Game, in Input, out Presenter, dice Dice, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Session{
		game:   g,
		in:     in,
		out:    out,
		dice:   dice,
		logger: logger,
		mark:   g.Log.Mark(),
	}
}

// Game returns the state the session drives.
func (s *Session) Game() *Game { return s.game }

// State returns the current lifecycle state.
func (s *Session) State() State { return s.state }

// Turns returns the number of turns started.
func (s *Session) Turns() int { return s.turn }

// Run plays turns until the player quits or is destroyed. The input running
// dry counts as quitting. Any other input error is returned.
func (s *Session) Run() (State, error) {
	s.logger.Info("session started", "player", s.game.Player.Name, "pirates", s.game.Galaxy.PirateSectors())

	for s.state == StateRunning {
		if err := s.Turn(); err != nil {
			if errors.Is(err, io.EOF) {
				s.quit()
				break
			}
			s.flush()
			s.logger.Error("session aborted", "turn", s.turn, "error", err)
			return s.state, err
		}
	}

	s.logger.Info("session ended", "state", s.state, "turns", s.turn,
		"health", s.game.Player.Health, "fuel", s.game.Player.Fuel, "money", s.game.Player.Money)
	return s.state, nil
}

// Turn plays one turn: render, read a command, dispatch it, roll the event,
// count down the ETA and check for defeat.
func (s *Session) Turn() error {
	if s.state != StateRunning {
		return nil
	}
	s.turn++

	s.flush()
	s.out.Render(s.game.View())
	s.out.Menu("", mainMenu)

	choice, err := s.readSelection(choicePrompt)
	if err != nil {
		return err
	}
	s.logger.Debug("turn", "n", s.turn, "command", choice, "sector", s.game.Player.Sector)

	switch choice {
	case CmdMove:
		err = s.move()
	case CmdScan:
		err = s.Scan()
	case CmdStarbase:
		err = s.VisitStarbase()
	case CmdQuit:
		s.quit()
		return nil
	default:
		s.game.Log.Post("Invalid choice! Please try again.", MsgWarning, CueError)
	}
	if err := s.settle(err); err != nil {
		return err
	}

	if _, err := s.GenerateEvent(); err != nil {
		return err
	}
	s.game.AdvanceETA()

	if !s.game.Player.Alive() {
		s.state = StatePlayerDefeated
		s.game.Log.Post("Game over! Your ship was destroyed.", MsgCritical, CueDefeat)
		s.logger.Info("player defeated", "turn", s.turn, "sector", s.game.Player.Sector)
	}
	s.flush()
	return nil
}

// Scan looks for pirates in the current sector and fights them if found.
func (s *Session) Scan() error {
	sec := s.game.CurrentSector()
	if !sec.HasPirates {
		s.game.Log.Add("No pirates in this sector.", MsgInfo)
		return nil
	}
	s.game.Log.Post(fmt.Sprintf("Pirates detected in sector %d!", sec.Number), MsgCritical, CueAlert)
	return s.Engage()
}

// Engage fights the pirate template in the current sector. The template is
// shared by every encounter, so once destroyed it pays the bounty without a
// fight unless RearmPirates is set.
func (s *Session) Engage() error {
	pr := &s.game.Pirate
	if !pr.Alive() && s.game.RearmPirates {
		pr.Rearm()
		s.logger.Debug("pirate rearmed", "health", pr.Health)
	}

	rep, err := ResolveBattle(&s.game.Player, pr, flushingInput{s}, s.dice, s.game.Log)
	s.logger.Info("battle",
		"sector", s.game.Player.Sector,
		"rounds", rep.Rounds,
		"draws", rep.Draws,
		"won", rep.Won,
		"lost", rep.Lost,
		"outcome", rep.Outcome,
		"aborted", rep.Aborted,
		"bounty", rep.Bounty,
	)
	return err
}

// VisitStarbase runs the starbase menu. It works from any sector.
func (s *Session) VisitStarbase() error {
	s.game.Log.Add("Welcome to "+world.StarbaseName+"!", MsgInfo)
	s.flush()
	s.out.Menu(world.StarbaseName, starbaseMenu)

	choice, err := s.readSelection(choicePrompt)
	if err != nil {
		return err
	}

	switch choice {
	case starbasePurchase:
		return s.purchase()
	case starbaseRefuel:
		err := s.game.Refuel()
		s.logger.Debug("refuel", "fuel", s.game.Player.Fuel, "money", s.game.Player.Money, "error", err)
		return err
	case starbaseLeave:
		s.game.Log.Add("Leaving "+world.StarbaseName+".", MsgInfo)
		return nil
	default:
		s.game.Log.Post("Invalid choice!", MsgWarning, CueError)
		return fmt.Errorf("starbase selection %d: %w", choice, ErrInvalidInput)
	}
}

func (s *Session) purchase() error {
	catalog := world.Catalog()
	options := make([]string, len(catalog))
	for i, w := range catalog {
		options[i] = fmt.Sprintf("%s (Damage: %d, Cost: %d)", w.Name, w.Damage, w.Cost)
	}
	s.flush()
	s.out.Menu("Available Weapons:", options)

	sel, err := s.readSelection(weaponPrompt)
	if err != nil {
		return err
	}
	err = s.game.PurchaseWeapon(sel)
	s.logger.Debug("purchase", "selection", sel, "money", s.game.Player.Money, "error", err)
	return err
}

func (s *Session) move() error {
	dest, err := s.readSelection(sectorPrompt)
	if err != nil {
		return err
	}
	from := s.game.Player.Sector
	err = s.game.Move(dest)
	s.logger.Debug("move", "from", from, "to", dest, "fuel", s.game.Player.Fuel, "error", err)
	return err
}

func (s *Session) quit() {
	p := &s.game.Player
	s.state = StateQuit
	s.game.Log.Add(fmt.Sprintf("Quitting game. Final status: Health = %d, Fuel = %d, Money = %d",
		p.Health, p.Fuel, p.Money), MsgInfo)
	s.flush()
}

// settle swallows recoverable failures; they have already been posted.
func (s *Session) settle(err error) error {
	if err == nil || !Recoverable(err) {
		return err
	}
	s.logger.Debug("action failed", "turn", s.turn, "error", err)
	return nil
}

// readSelection reads a number. Malformed input selects 0, which every menu
// and operation rejects as out of range.
func (s *Session) readSelection(prompt string) (int, error) {
	n, err := s.readInt(prompt)
	if errors.Is(err, ErrInvalidInput) {
		return 0, nil
	}
	return n, err
}

// readInt shows pending output before blocking on the player.
func (s *Session) readInt(prompt string) (int, error) {
	s.flush()
	return s.in.ReadInt(prompt)
}

// flush sends log lines the presenter hasn't seen yet.
func (s *Session) flush() {
	msgs, mark := s.game.Log.Since(s.mark)
	s.mark = mark
	for _, m := range msgs {
		s.out.Notify(m)
	}
}

// flushingInput makes every battle prompt show the previous round first.
type flushingInput struct{ s *Session }

func (f flushingInput) ReadInt(prompt string) (int, error) { return f.s.readInt(prompt) }
