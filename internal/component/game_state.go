package component

// Phase is where a session is in its lifecycle.
type Phase int

const (
	Idle Phase = iota // до первого попадания
	InProgress
	GameOver
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case InProgress:
		return "in-progress"
	case GameOver:
		return "game-over"
	}
	return "unknown"
}
