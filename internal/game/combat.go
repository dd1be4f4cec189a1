package game

import (
	"errors"
	"fmt"
)

const (
	roundDamage  = 10  // flat; weapons are not consulted
	pirateBounty = 100 // paid when a pirate is destroyed
)

const strategyPrompt = "Choose your strategy (0: Attack, 1: Defense): "

// RoundOutcome is the result of one exchange of fire.
type RoundOutcome uint8

const (
	RoundDraw RoundOutcome = iota
	RoundPlayerWin
	RoundPirateWin
)

// BattleOutcome is how an encounter ended.
type BattleOutcome uint8

const (
	PirateDefeated BattleOutcome = iota
	PlayerDefeated
)

// BattleReport summarises a finished encounter.
type BattleReport struct {
	Outcome BattleOutcome
	Rounds  int
	Draws   int
	Won     int // rounds the player won
	Lost    int // rounds the pirate won
	Bounty  int
	Aborted bool       // input ended mid-fight
	Choices []Strategy // player stances, in round order
}

// ResolveRound decides one round. Matching stances cancel out. With only
// two stances, any mismatch is a pairing the player wins; RoundPirateWin is
// returned only for stances outside the two.
func ResolveRound(player, pirate Strategy) RoundOutcome {
	switch {
	case player == pirate:
		return RoundDraw
	case player == StrategyAttack && pirate == StrategyDefense,
		player == StrategyDefense && pirate == StrategyAttack:
		return RoundPlayerWin
	default:
		return RoundPirateWin
	}
}

// ResolveBattle fights rounds until one side has no health left. The player's
// stance comes from in, the pirate's from dice. Progress is posted to log.
//
// An input error other than ErrInvalidInput stops the fight and is returned
// with a report marked Aborted; nothing is paid in that case.
func ResolveBattle(p *Player, pr *Pirate, in Input, dice Dice, log *MessageLog) (BattleReport, error) {
	var rep BattleReport

	for p.Alive() && pr.Alive() {
		choice, err := readStrategy(in, log)
		if err != nil {
			rep.Aborted = true
			return rep, err
		}
		pirateChoice := Strategy(dice.IntN(int(StrategyCount)))

		rep.Rounds++
		rep.Choices = append(rep.Choices, choice)
		log.Add(fmt.Sprintf("You chose %s, Pirate chose %s.", choice, pirateChoice), MsgSocial)

		switch ResolveRound(choice, pirateChoice) {
		case RoundDraw:
			rep.Draws++
			log.Post("It's a draw!", MsgInfo, CueDraw)
		case RoundPlayerWin:
			rep.Won++
			pr.TakeDamage(roundDamage)
			log.Post("You win this round!", MsgDiscovery, CueRoundWon)
		case RoundPirateWin:
			rep.Lost++
			p.TakeDamage(roundDamage)
			log.Post("Pirate wins this round!", MsgCritical, CueRoundLost)
		}
		log.Add(fmt.Sprintf("Player health: %d, Pirate health: %d", p.Health, pr.Health), MsgInfo)
	}

	if p.Alive() {
		rep.Outcome = PirateDefeated
		rep.Bounty = pirateBounty
		p.Money += pirateBounty
		log.Post("You defeated the pirates!", MsgDiscovery, CueVictory)
	} else {
		rep.Outcome = PlayerDefeated
		log.Post("You were defeated by the pirates!", MsgCritical, CueDefeat)
	}
	return rep, nil
}

// readStrategy asks until the player enters a valid stance.
func readStrategy(in Input, log *MessageLog) (Strategy, error) {
	for {
		n, err := in.ReadInt(strategyPrompt)
		switch {
		case errors.Is(err, ErrInvalidInput):
		case err != nil:
			return 0, err
		case n >= 0 && n < int(StrategyCount):
			return Strategy(n), nil
		}
		log.Post("Invalid strategy!", MsgWarning, CueError)
	}
}

func (o BattleOutcome) String() string {
	if o == PlayerDefeated {
		return "player defeated"
	}
	return "pirate defeated"
}
