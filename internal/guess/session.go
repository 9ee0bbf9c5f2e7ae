// internal/guess/session.go
//
// Interactive loop for the guessing game.
// Flow:
//   1. Ask whether to play (then "play again" after each round).
//   2. Draw a number and read guesses until it is found, printing hints.
//   3. Record the attempt count on the scoreboard and announce new bests.
//
// "q" quits from any prompt, as does end of input.

package guess

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/robalobadob/text-games/apps/go-cli/internal/console"
	"github.com/robalobadob/text-games/apps/go-cli/internal/store"
)

// ScoreKey is the scoreboard entry the guessing game writes to.
const ScoreKey = "guess"

const (
	MsgIntro   = "Enter Q at any time to quit."
	MsgThanks  = "Thank you for playing!"
	MsgInteger = "Please enter an integer."
	MsgTooLow  = "You guessed too low."
	MsgTooHigh = "You guessed too high."
	MsgWin     = "You did it! You Win!"
	MsgBest    = "You got a new highscore!"
)

var (
	confirm = []string{"yes", "y"}
	deny    = []string{"no", "n", "q"}
)

// errQuit ends the session from inside a round.
var errQuit = errors.New("quit")

// Options configures a Session.
type Options struct {
	Min, Max int
	// Answer fixes every round's answer when non-zero.
	Answer int
}

// Session plays rounds until the player declines or quits.
type Session struct {
	ID     string
	opts   Options
	io     *console.Prompter
	scores store.Scoreboard
	log    zerolog.Logger
}

// NewSession constructs a Session.
func NewSession(opts Options, prompter *console.Prompter, scores store.Scoreboard, logger zerolog.Logger) *Session {
	id := uuid.NewString()
	return &Session{
		ID:     id,
		opts:   opts,
		io:     prompter,
		scores: scores,
		log:    logger.With().Str("game", "guess").Str("session", id).Logger(),
	}
}

// Run plays until the player stops. Setup errors (a bad range) are returned;
// bad input is reported and asked again.
func (s *Session) Run(ctx context.Context) error {
	s.io.Say(MsgIntro)
	first := true
	for {
		play, err := s.askPlay(ctx, first)
		if err != nil {
			return s.stop(err)
		}
		if !play {
			return s.stop(errQuit)
		}
		if err := s.round(ctx); err != nil {
			return s.stop(err)
		}
		first = false
	}
}

// stop prints the farewell for a normal exit and passes real errors through.
func (s *Session) stop(err error) error {
	if errors.Is(err, errQuit) || errors.Is(err, io.EOF) {
		s.io.Say(MsgThanks)
		s.log.Info().Msg("session finished")
		return nil
	}
	return err
}

func (s *Session) askPlay(ctx context.Context, first bool) (bool, error) {
	again := ""
	if !first {
		again = "again "
	}
	prompt := fmt.Sprintf("Would you like to play %s(%s/%s)? ", again, confirm[0], deny[0])
	for {
		in, err := s.io.Ask(ctx, prompt)
		if err != nil {
			return false, err
		}
		decision := strings.ToLower(in)
		if contains(confirm, decision) {
			return true, nil
		}
		if contains(deny, decision) {
			return false, nil
		}
		s.io.Sayf("Please enter %s/%s.", confirm[0], deny[0])
	}
}

func (s *Session) round(ctx context.Context) error {
	g, err := New(s.opts.Min, s.opts.Max, s.opts.Answer)
	if err != nil {
		return err
	}
	s.io.Sayf("Generating a number from %d to %d...", g.Min, g.Max)
	s.log.Debug().Int("min", g.Min).Int("max", g.Max).Msg("round started")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		in, err := s.io.Ask(ctx, "What is the number? ")
		if err != nil {
			return err
		}
		if strings.EqualFold(in, "q") {
			return errQuit
		}
		n, err := strconv.Atoi(in)
		if err != nil {
			s.io.Say(MsgInteger)
			continue
		}

		hint, _, err := g.ApplyGuess(n)
		if err != nil {
			return err
		}
		switch hint {
		case HintTooLow:
			s.io.Say(MsgTooLow)
		case HintTooHigh:
			s.io.Say(MsgTooHigh)
		case HintCorrect:
			s.io.Say(MsgWin)
			s.io.Sayf("You guessed in %d attempts.", g.Attempts)
			return s.record(ctx, g.Attempts)
		}
	}
}

func (s *Session) record(ctx context.Context, score int) error {
	best, improved, err := s.scores.Record(ctx, ScoreKey, score)
	if err != nil {
		return err
	}
	if improved {
		s.io.Say(MsgBest)
	}
	s.log.Info().Int("score", score).Int("best", best).Msg("round won")
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
