package tui

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sync"

	"github.com/rs/zerolog/log"
)

// ErrNoPlayer is returned when no player command is configured
var ErrNoPlayer = errors.New("no audio player configured")

// Player plays pronunciation audio
type Player interface {
	// Play starts playing the URL, the channel is closed when playback ends
	Play(url string) (<-chan struct{}, error)
	Stop()
	Playing() bool
}

// CommandPlayer plays audio with an external program, the URL is passed
// as its last argument. Pausing stops the program.
type CommandPlayer struct {
	args []string
	cmd  *exec.Cmd
	mx   sync.Mutex
}

// Play stops any current playback and starts the player for the URL
func (p *CommandPlayer) Play(url string) (<-chan struct{}, error) {
	if len(p.args) == 0 {
		return nil, ErrNoPlayer
	}
	p.Stop()

	cmd := exec.Command(p.args[0], append(p.args[1:len(p.args):len(p.args)], url)...)
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %s: %w", p.args[0], err)
	}
	p.mx.Lock()
	p.cmd = cmd
	p.mx.Unlock()

	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := cmd.Wait(); err != nil {
			log.Debug().Err(err).Str("url", url).Msg("player exited")
		}
		p.mx.Lock()
		if p.cmd == cmd {
			p.cmd = nil
		}
		p.mx.Unlock()
	}()
	return done, nil
}

// Stop kills the running player, if any
func (p *CommandPlayer) Stop() {
	p.mx.Lock()
	defer p.mx.Unlock()
	if p.cmd == nil {
		return
	}
	if err := p.cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		log.Warn().Err(err).Msg("failed to stop player")
	}
	p.cmd = nil
}

// Playing reports whether the player is running
func (p *CommandPlayer) Playing() bool {
	p.mx.Lock()
	defer p.mx.Unlock()
	return p.cmd != nil
}

// NewCommandPlayer creates CommandPlayer for the program and its arguments
func NewCommandPlayer(args []string) *CommandPlayer {
	return &CommandPlayer{args: args}
}
