package models

// Phase is the current mode of a session.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseCountdown
	PhaseHit
	PhaseRest
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseCountdown:
		return "countdown"
	case PhaseHit:
		return "hit"
	case PhaseRest:
		return "rest"
	default:
		return "unknown"
	}
}

// Active reports whether the phase accumulates elapsed time.
func (p Phase) Active() bool {
	return p == PhaseHit || p == PhaseRest
}

// Running reports whether a session is in progress, countdown included.
func (p Phase) Running() bool {
	return p != PhaseIdle
}
