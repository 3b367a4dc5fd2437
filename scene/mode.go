package scene

// Mode is the global arrangement state of the particle scene
// A single authoritative value is owned by the engine director
type Mode uint8

const (
	ModeTree Mode = iota
	ModeScatter
	ModeFocus
)

func (m Mode) String() string {
	switch m {
	case ModeTree:
		return "TREE"
	case ModeScatter:
		return "SCATTER"
	case ModeFocus:
		return "FOCUS"
	}
	return "UNKNOWN"
}
