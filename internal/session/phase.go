package session

// Phase is where a Game is in the lobby lifecycle.
type Phase int

const (
	PhaseIdle       Phase = iota // nothing started
	PhaseLobby                   // teacher configuring a lobby
	PhaseJoining                 // student entering a code
	PhaseWaiting                 // roster assembling
	PhaseInProgress              // questions being served
	PhaseFinished                // results shown
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLobby:
		return "lobby"
	case PhaseJoining:
		return "joining"
	case PhaseWaiting:
		return "waiting"
	case PhaseInProgress:
		return "in-progress"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}
