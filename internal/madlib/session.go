package madlib

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/robalobadob/text-games/apps/go-cli/internal/console"
)

// Session asks for one word per blank and prints the finished story.
type Session struct {
	ID    string
	story *Template
	io    *console.Prompter
	log   zerolog.Logger
}

// NewSession binds a story to a prompter. The logger gets the session id
// and game name attached.
func NewSession(story *Template, prompter *console.Prompter, logger zerolog.Logger) *Session {
	id := uuid.NewString()
	return &Session{
		ID:    id,
		story: story,
		io:    prompter,
		log:   logger.With().Str("game", "madlibs").Str("session", id).Logger(),
	}
}

// Run collects the words and prints the story. Ending input early abandons
// the story without error.
func (s *Session) Run(ctx context.Context) error {
	blanks := s.story.Blanks()
	words := make([]string, 0, len(blanks))
	for _, pos := range blanks {
		if err := ctx.Err(); err != nil {
			return err
		}
		w, err := s.io.Ask(ctx, fmt.Sprintf("Please enter %s %s. ", Article(pos), pos))
		if errors.Is(err, io.EOF) {
			s.log.Info().Int("answered", len(words)).Msg("story abandoned")
			return nil
		}
		if err != nil {
			return err
		}
		words = append(words, w)
	}

	text, err := s.story.Fill(words)
	if err != nil {
		return err
	}
	s.io.SayWrapped(text)
	s.log.Info().Int("blanks", len(blanks)).Msg("story finished")
	return nil
}
