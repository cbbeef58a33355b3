package round

// Phase is the orchestrator state
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseAwaitingStart
	PhaseRoundPreview
	PhaseRoundActive
	PhaseRoundTransition
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseAwaitingStart:
		return "AwaitingStart"
	case PhaseRoundPreview:
		return "RoundPreview"
	case PhaseRoundActive:
		return "RoundActive"
	case PhaseRoundTransition:
		return "RoundTransition"
	case PhaseFinished:
		return "Finished"
	default:
		return "Unknown"
	}
}

var validTransitions = map[Phase][]Phase{
	PhaseIdle:            {PhaseAwaitingStart},
	PhaseAwaitingStart:   {PhaseRoundPreview},
	PhaseRoundPreview:    {PhaseRoundActive},
	PhaseRoundActive:     {PhaseRoundTransition},
	PhaseRoundTransition: {PhaseRoundPreview, PhaseFinished},
	PhaseFinished:        {PhaseAwaitingStart},
}

// CanTransition checks if a phase transition is valid
func CanTransition(from, to Phase) bool {
	for _, phase := range validTransitions[from] {
		if phase == to {
			return true
		}
	}
	return false
}
