package core

// Command is one of the four held movement commands the simulation accepts.
// Raw key handling (repeat, debounce) belongs to the input collector.
type Command int

const (
	CommandForward  Command = iota // W, Up arrow - raise sail
	CommandBackward                // S, Down arrow - lower sail
	CommandLeft                    // A, Left arrow - turn to port
	CommandRight                   // D, Right arrow - turn to starboard
)

// AllCommands lists every movement command in a stable order.
var AllCommands = [...]Command{CommandForward, CommandBackward, CommandLeft, CommandRight}

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CommandForward:
		return "Forward"
	case CommandBackward:
		return "Backward"
	case CommandLeft:
		return "Left"
	case CommandRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Opposite returns the command that cancels this one.
func (c Command) Opposite() Command {
	switch c {
	case CommandForward:
		return CommandBackward
	case CommandBackward:
		return CommandForward
	case CommandLeft:
		return CommandRight
	default:
		return CommandLeft
	}
}

// Commands is the set of held movement commands for one simulation step.
type Commands struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
}

// Set marks a command as held.
func (c *Commands) Set(cmd Command) {
	switch cmd {
	case CommandForward:
		c.Forward = true
	case CommandBackward:
		c.Backward = true
	case CommandLeft:
		c.Left = true
	case CommandRight:
		c.Right = true
	}
}

// Has reports whether a command is held.
func (c Commands) Has(cmd Command) bool {
	switch cmd {
	case CommandForward:
		return c.Forward
	case CommandBackward:
		return c.Backward
	case CommandLeft:
		return c.Left
	case CommandRight:
		return c.Right
	default:
		return false
	}
}

// Any reports whether any movement command is held.
func (c Commands) Any() bool {
	return c.Forward || c.Backward || c.Left || c.Right
}

// Steer returns -1 for port, +1 for starboard and 0 when both or neither are held.
func (c Commands) Steer() float64 {
	steer := 0.0
	if c.Left {
		steer--
	}
	if c.Right {
		steer++
	}
	return steer
}
