package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/text-games/apps/go-cli/internal/config"
)

func run(t *testing.T, input string, args ...string) string {
	t.Helper()
	cfg := config.Config{LogLevel: "disabled", GuessMin: 1, GuessMax: 1, WrapWidth: 72}
	cmd := newRootCmd(cfg)
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.ExecuteContext(context.Background()))
	return out.String()
}

func TestAdventureIsDefault(t *testing.T) {
	out := run(t, "move forward\nmove left\nquit\n")
	assert.Contains(t, out, "You are in the front garden\n")
	assert.Contains(t, out, "You are in the living room\n")
	assert.Contains(t, out, "You cannot move there.")
}

func TestAdventureCommand(t *testing.T) {
	out := run(t, "banana\nquit\n", "adventure")
	assert.Contains(t, out, "Invalid command.")
	assert.Equal(t, 2, strings.Count(out, "What would you like to do? "))
}

func TestGuessCommand(t *testing.T) {
	// With a 1..1 range the answer is always 1.
	out := run(t, "yes\n1\nno\n", "guess")
	assert.Contains(t, out, "Generating a number from 1 to 1...")
	assert.Contains(t, out, "You guessed in 1 attempts.")
	assert.Contains(t, out, "You got a new highscore!")
	assert.True(t, strings.HasSuffix(out, "Thank you for playing!\n"))
}

func TestMadLibsCommand(t *testing.T) {
	words := "pocket\nbuttons\ncount\nsing\nhands\nshiny\nstars\nstrange\n"
	out := strings.ReplaceAll(run(t, words, "madlibs"), "\n", " ")
	assert.Contains(t, out, "Please enter a noun. ")
	assert.Contains(t, out, "Please enter an adjective. ")
	assert.Contains(t, out, "small enough to fit into his pocket.")
	assert.Contains(t, out, "strange figures.")
}

func TestUnknownArgs(t *testing.T) {
	cmd := newRootCmd(config.Config{})
	cmd.SetArgs([]string{"chess"})
	cmd.SetOut(&bytes.Buffer{})
	assert.Error(t, cmd.Execute())
}
