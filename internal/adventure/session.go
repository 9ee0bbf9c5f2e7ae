// internal/adventure/session.go
//
// Read-eval-print loop for the adventure.
// Each turn prints the current room, reads one command and acts on it:
//   - quit:  end the session.
//   - help:  print the command list.
//   - look:  print the room's description.
//   - move:  step the player; report when the move is not possible.
//   - other: report invalid input and prompt again.
//
// Input errors never end the session. End of input is treated as quit.

package adventure

import (
	"context"
	"errors"
	"io"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/robalobadob/text-games/apps/go-cli/internal/console"
)

const (
	Prompt = "What would you like to do? "

	HelpText = `quit: quit the game
look around: look around the room you are in
move (forward, back, left, right): move in the specified direction`

	MsgCannotMove = "You cannot move there."
	MsgInvalid    = `Invalid command. Type "help" for a list of commands.`
)

// Session drives one player through the map.
type Session struct {
	ID     string
	player *Player
	io     *console.Prompter
	log    zerolog.Logger
}

// NewSession binds a player to a prompter. The logger gets the session id
// and game name attached.
func NewSession(p *Player, prompter *console.Prompter, logger zerolog.Logger) *Session {
	id := uuid.NewString()
	return &Session{
		ID:     id,
		player: p,
		io:     prompter,
		log:    logger.With().Str("game", "adventure").Str("session", id).Logger(),
	}
}

// Run loops until the player quits, input ends, or ctx is cancelled.
func (s *Session) Run(ctx context.Context) error {
	s.log.Info().Str("room", s.player.Room().Name()).Msg("session started")
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.io.Sayf("You are in the %s", s.player.Room().Name())

		line, err := s.io.Ask(ctx, Prompt)
		if errors.Is(err, io.EOF) {
			s.finish("eof")
			return nil
		}
		if err != nil {
			return err
		}

		if !s.Handle(ParseCommand(line)) {
			s.finish("quit")
			return nil
		}
	}
}

// Handle executes one command and reports whether the session continues.
func (s *Session) Handle(cmd Command) bool {
	room := s.player.Room()
	s.log.Debug().Str("cmd", cmd.String()).Str("room", room.Name()).Msg("command")

	switch cmd {
	case CmdQuit:
		return false
	case CmdHelp:
		s.io.Say(HelpText)
	case CmdLook:
		s.io.SayWrapped(room.Description())
	case CmdMoveForward, CmdMoveBack, CmdMoveLeft, CmdMoveRight:
		d, _ := cmd.Direction()
		to, ok := s.player.Move(d)
		if !ok {
			s.log.Debug().Str("dir", d.String()).Stringer("at", room.Coord()).Msg("move refused")
			s.io.Say(MsgCannotMove)
			return true
		}
		s.log.Debug().Str("from", room.Name()).Str("to", to.Name()).Msg("moved")
	default:
		s.io.Say(MsgInvalid)
	}
	return true
}

func (s *Session) finish(reason string) {
	s.log.Info().
		Str("reason", reason).
		Int("visited", s.player.Visited()).
		Str("room", s.player.Room().Name()).
		Msg("session finished")
}
