package config

// StateID identifies the pose the animator should show.
type StateID int

const (
	StateNone StateID = iota
	Idle
	Walk
	Jump
)

func (s StateID) String() string {
	switch s {
	case Idle:
		return "idle"
	case Walk:
		return "walk"
	case Jump:
		return "jump"
	default:
		return "none"
	}
}
