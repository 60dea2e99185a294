package core

// Status tells the read loop whether to keep prompting.
type Status int

const (
	// Continue keeps the shell reading commands.
	Continue Status = iota
	// Terminate stops the shell.
	Terminate
)

func (s Status) String() string {
	switch s {
	case Continue:
		return "continue"
	case Terminate:
		return "terminate"
	default:
		return "unknown"
	}
}
