// internal/guess/types.go
//
// Core type definitions for the number-guessing engine.
// Defines:
//   - Hint: per-guess feedback (too low / too high / correct).
//   - State: coarse round state (playing / won).
//   - Game: state for a single round.

package guess

// Hint is the feedback for a single guess.
type Hint string

const (
	HintTooLow  Hint = "low"
	HintTooHigh Hint = "high"
	HintCorrect Hint = "correct"
)

// State is the coarse state of a round.
type State string

const (
	StatePlaying State = "playing"
	StateWon     State = "won"
)

// Game holds the state of one round.
type Game struct {
	Min, Max int  // Inclusive range the answer was drawn from.
	Answer   int  // The number to find.
	Attempts int  // Starts at 1; grows with every wrong guess.
	Won      bool // True once the answer has been guessed.
}
