package game

// EventKind is the random happening that closes every turn.
type EventKind uint8

const (
	EventDistressCall EventKind = iota
	EventAmbush
	EventAllClear
	EventKindCount // sentinel
)

var eventMessages = [EventKindCount]string{
	EventDistressCall: "You have received an SOS signal from a nearby ship.",
	EventAmbush:       "Pirates are ambushing you! Prepare for battle.",
	EventAllClear:     "All systems are normal. Continue your journey.",
}

// EventMessage returns the status line an event sets.
func EventMessage(k EventKind) string {
	if k < EventKindCount {
		return eventMessages[k]
	}
	return "Unknown event."
}

// GenerateEvent rolls the turn's event and sets the status message.
// An ambush forces a battle in the current sector whether or not a scan
// would find pirates there.
func (s *Session) GenerateEvent() (EventKind, error) {
	kind := EventKind(s.dice.IntN(int(EventKindCount)))
	s.game.Message = EventMessage(kind)
	s.logger.Debug("event", "kind", kind, "sector", s.game.Player.Sector)

	if kind != EventAmbush {
		return kind, nil
	}
	s.game.Log.Post(s.game.Message, MsgCritical, CueAlert)
	return kind, s.Engage()
}

func (k EventKind) String() string {
	switch k {
	case EventDistressCall:
		return "distress call"
	case EventAmbush:
		return "ambush"
	case EventAllClear:
		return "all clear"
	default:
		return "unknown"
	}
}
