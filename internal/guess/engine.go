// internal/guess/engine.go
//
// Core engine for a single number-guessing round.
// Responsibilities:
//   - Create rounds with a random answer in an inclusive range.
//   - Compare guesses and report too low / too high / correct.
//   - Count attempts; the score of a round is its attempt count on a win.

package guess

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
)

var (
	ErrInvalidRange = errors.New("invalid range")
	ErrFinished     = errors.New("round finished")
)

// New constructs a round over [min, max].
// If answer is 0 a random answer is drawn; otherwise it must lie in range.
func New(min, max, answer int) (*Game, error) {
	if min > max {
		return nil, fmt.Errorf("%d..%d: %w", min, max, ErrInvalidRange)
	}
	if answer == 0 {
		n, err := randomInRange(min, max)
		if err != nil {
			return nil, fmt.Errorf("draw answer: %w", err)
		}
		answer = n
	} else if answer < min || answer > max {
		return nil, fmt.Errorf("answer %d outside %d..%d: %w", answer, min, max, ErrInvalidRange)
	}
	return &Game{Min: min, Max: max, Answer: answer, Attempts: 1}, nil
}

// ApplyGuess compares n with the answer.
// Returns: the hint, the state after the guess, or ErrFinished if the round
// was already won.
func (g *Game) ApplyGuess(n int) (Hint, State, error) {
	if g.Won {
		return "", g.state(), ErrFinished
	}
	switch {
	case n < g.Answer:
		g.Attempts++
		return HintTooLow, g.state(), nil
	case n > g.Answer:
		g.Attempts++
		return HintTooHigh, g.state(), nil
	}
	g.Won = true
	return HintCorrect, g.state(), nil
}

func (g *Game) state() State {
	if g.Won {
		return StateWon
	}
	return StatePlaying
}

// randomInRange returns a uniformly random int in [min, max].
// The span is computed in big.Int so the full int range does not overflow.
func randomInRange(min, max int) (int, error) {
	lo := big.NewInt(int64(min))
	span := new(big.Int).Sub(big.NewInt(int64(max)), lo)
	span.Add(span, big.NewInt(1))
	n, err := rand.Int(rand.Reader, span)
	if err != nil {
		return 0, err
	}
	return int(n.Add(n, lo).Int64()), nil
}
