package adventure

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/text-games/apps/go-cli/internal/console"
)

func runSession(t *testing.T, input string) (*Player, string) {
	t.Helper()
	p, _ := newHousePlayer(t)
	var out bytes.Buffer
	s := NewSession(p, console.New(strings.NewReader(input), &out, 0), zerolog.Nop())
	require.NoError(t, s.Run(context.Background()))
	return p, out.String()
}

func TestSessionQuit(t *testing.T) {
	_, out := runSession(t, "quit\nmove forward\n")
	assert.Equal(t, "You are in the front garden\n"+Prompt, out)
}

func TestSessionMoves(t *testing.T) {
	p, out := runSession(t, "move forward\nmove left\nquit\n")
	assert.Equal(t, "living room", p.Room().Name())
	assert.Contains(t, out, "You are in the living room\n")
	assert.Equal(t, 1, strings.Count(out, MsgCannotMove))
}

func TestSessionMoveRefused(t *testing.T) {
	p, out := runSession(t, "move left\nquit\n")
	assert.Equal(t, "front garden", p.Room().Name())
	assert.Contains(t, out, MsgCannotMove)
	assert.Equal(t, 2, strings.Count(out, "You are in the front garden"))
}

func TestSessionLook(t *testing.T) {
	p, out := runSession(t, "look around\nquit\n")
	desc := p.Room().Description()
	assert.Contains(t, out, console.Wrap(desc, console.DefaultWidth))
	assert.Equal(t, "front garden", p.Room().Name())
}

func TestSessionHelpAndInvalid(t *testing.T) {
	p, out := runSession(t, "help\nbanana\nquit\n")
	assert.Contains(t, out, HelpText)
	assert.Contains(t, out, MsgInvalid)
	assert.Equal(t, "front garden", p.Room().Name())
}

func TestSessionEOF(t *testing.T) {
	p, out := runSession(t, "move forward\n")
	assert.Equal(t, "living room", p.Room().Name())
	assert.True(t, strings.HasSuffix(out, Prompt+"\n"))
}

func TestSessionCancelled(t *testing.T) {
	p, _ := newHousePlayer(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	s := NewSession(p, console.New(strings.NewReader("quit\n"), &out, 0), zerolog.Nop())
	assert.ErrorIs(t, s.Run(ctx), context.Canceled)
	assert.Empty(t, out.String())
}

func TestSessionOverlongLineIsInvalid(t *testing.T) {
	p, out := runSession(t, strings.Repeat("x", 70000)+"\nmove forward\nquit\n")
	assert.Contains(t, out, MsgInvalid)
	assert.Equal(t, "living room", p.Room().Name())
}

func TestSessionCancelledAtPrompt(t *testing.T) {
	p, _ := newHousePlayer(t)
	r, w := io.Pipe()
	defer w.Close()
	s := NewSession(p, console.New(r, io.Discard, 0), zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	time.Sleep(20 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("session kept waiting for input after cancel")
	}
}
