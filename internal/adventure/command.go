package adventure

import "strings"

// Command is the closed set of things a player can ask for.
type Command int

const (
	CmdError Command = iota
	CmdQuit
	CmdHelp
	CmdLook
	CmdMoveForward
	CmdMoveBack
	CmdMoveLeft
	CmdMoveRight
)

var phrases = map[string]Command{
	"quit":         CmdQuit,
	"help":         CmdHelp,
	"look around":  CmdLook,
	"move forward": CmdMoveForward,
	"move back":    CmdMoveBack,
	"move left":    CmdMoveLeft,
	"move right":   CmdMoveRight,
}

// ParseCommand maps an input line to a Command. Matching is exact after
// lowercasing and trimming; anything unrecognised is CmdError.
func ParseCommand(line string) Command {
	if c, ok := phrases[strings.ToLower(strings.TrimSpace(line))]; ok {
		return c
	}
	return CmdError
}

// Direction returns the direction of a movement command.
func (c Command) Direction() (Direction, bool) {
	switch c {
	case CmdMoveForward:
		return Forward, true
	case CmdMoveBack:
		return Back, true
	case CmdMoveLeft:
		return Left, true
	case CmdMoveRight:
		return Right, true
	}
	return 0, false
}

func (c Command) String() string {
	switch c {
	case CmdQuit:
		return "quit"
	case CmdHelp:
		return "help"
	case CmdLook:
		return "look"
	}
	if d, ok := c.Direction(); ok {
		return "move " + d.String()
	}
	return "error"
}
