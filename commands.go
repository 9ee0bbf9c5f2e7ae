// commands.go
//
// Command tree for the text-games binary:
//   textgames              → adventure (default)
//   textgames adventure    → explore the house
//   textgames guess        → guess the number
//   textgames madlibs      → fill in a story
//
// Setup failures (a broken map, an unreadable story) abort the command.
// Everything the player types is handled inside the game sessions.

package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/text-games/apps/go-cli/internal/adventure"
	"github.com/robalobadob/text-games/apps/go-cli/internal/config"
	"github.com/robalobadob/text-games/apps/go-cli/internal/console"
	"github.com/robalobadob/text-games/apps/go-cli/internal/guess"
	"github.com/robalobadob/text-games/apps/go-cli/internal/httpserver"
	"github.com/robalobadob/text-games/apps/go-cli/internal/madlib"
	"github.com/robalobadob/text-games/apps/go-cli/internal/store"
	"github.com/robalobadob/text-games/apps/go-cli/internal/world"
)

// app is the state shared by every subcommand of one process.
type app struct {
	cfg    config.Config
	scores store.Scoreboard
}

func newRootCmd(cfg config.Config) *cobra.Command {
	a := &app{cfg: cfg, scores: store.NewMemoryScoreboard()}

	adv := &cobra.Command{
		Use:   "adventure",
		Short: "Explore a small house, one room at a time",
		Args:  cobra.NoArgs,
		RunE:  a.runAdventure,
	}
	root := &cobra.Command{
		Use:           "textgames",
		Short:         "Small terminal games: a text adventure, guess the number and mad libs",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          a.runAdventure,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.serveDiagnostics()
		},
	}
	root.AddCommand(
		adv,
		&cobra.Command{
			Use:   "guess",
			Short: "Guess the number in as few attempts as possible",
			Args:  cobra.NoArgs,
			RunE:  a.runGuess,
		},
		&cobra.Command{
			Use:   "madlibs",
			Short: "Fill in the blanks of a story",
			Args:  cobra.NoArgs,
			RunE:  a.runMadLibs,
		},
	)
	return root
}

func (a *app) prompter(cmd *cobra.Command) *console.Prompter {
	return console.New(cmd.InOrStdin(), cmd.OutOrStdout(), a.cfg.WrapWidth)
}

func (a *app) runAdventure(cmd *cobra.Command, _ []string) error {
	m, start, err := world.House()
	if err != nil {
		return err
	}
	log.Debug().Int("rooms", m.Len()).Str("start", start.Name()).Msg("house loaded")

	p, err := adventure.NewPlayer(m, start)
	if err != nil {
		return err
	}
	return adventure.NewSession(p, a.prompter(cmd), log.Logger).Run(cmd.Context())
}

func (a *app) runGuess(cmd *cobra.Command, _ []string) error {
	opts := guess.Options{Min: a.cfg.GuessMin, Max: a.cfg.GuessMax}
	return guess.NewSession(opts, a.prompter(cmd), a.scores, log.Logger).Run(cmd.Context())
}

func (a *app) runMadLibs(cmd *cobra.Command, _ []string) error {
	story, err := madlib.Load(a.cfg.MadLibsTemplate)
	if err != nil {
		return err
	}
	log.Debug().Str("source", madlib.Source()).Int("blanks", len(story.Blanks())).Msg("story loaded")
	return madlib.NewSession(story, a.prompter(cmd), log.Logger).Run(cmd.Context())
}

// serveDiagnostics starts the read-only HTTP endpoint in the background when
// DIAG_ADDR is configured. A failure to listen is logged, never fatal.
func (a *app) serveDiagnostics() error {
	if a.cfg.DiagAddr == "" {
		return nil
	}
	m, start, err := world.House()
	if err != nil {
		return err
	}
	srv := httpserver.New(m, start, a.scores)
	go func() {
		log.Info().Str("addr", a.cfg.DiagAddr).Msg("starting diagnostics")
		if err := srv.Start(a.cfg.DiagAddr); err != nil {
			log.Error().Err(err).Msg("diagnostics server exited")
		}
	}()
	return nil
}
