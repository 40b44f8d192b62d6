// Package player plays in-memory audio clips through an external player.
//
// Each playback writes the clip to its own temporary file, runs the player
// on it and removes the file afterwards.
package player

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"sync"

	"codeberg.org/snonux/spellbee/internal/audio"
)

// ErrNoPlayer is returned when no supported audio player is installed
var ErrNoPlayer = errors.New("no audio player found. Install mpg123, ffplay, sox, paplay, or aplay")

// Player runs an external program to play clips
type Player struct {
	command  string // Custom command, the clip file is appended as last argument
	goos     string
	lookPath func(string) (string, error)

	mu     sync.Mutex
	cmd    *exec.Cmd
	killed map[*exec.Cmd]bool
}

// New creates a player. An empty command selects a platform default.
func New(command string) *Player {
	return &Player{
		command:  strings.TrimSpace(command),
		goos:     runtime.GOOS,
		lookPath: exec.LookPath,
		killed:   make(map[*exec.Cmd]bool),
	}
}

// Play plays the clip and blocks until playback finishes, fails or is
// stopped. A playback stopped by Stop or replaced by another Play returns
// nil.
func (p *Player) Play(ctx context.Context, clip *audio.Clip) error {
	if clip.Len() == 0 {
		return fmt.Errorf("no audio to play")
	}

	name, args, err := p.resolve(clip.Format)
	if err != nil {
		return err
	}

	file, err := os.CreateTemp("", "spellbee-*"+clip.Extension())
	if err != nil {
		return fmt.Errorf("failed to create audio file: %w", err)
	}
	path := file.Name()
	defer os.Remove(path)

	if _, err := file.Write(clip.Data); err != nil {
		file.Close()
		return fmt.Errorf("failed to write audio file: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to write audio file: %w", err)
	}

	// Stopping the previous playback and registering this one is atomic
	cmd := exec.CommandContext(ctx, name, append(args, path)...)
	p.mu.Lock()
	p.stopLocked()
	if err := cmd.Start(); err != nil {
		p.mu.Unlock()
		return fmt.Errorf("failed to start %s: %w", name, err)
	}
	p.cmd = cmd
	p.mu.Unlock()

	err = cmd.Wait()

	p.mu.Lock()
	killed := p.killed[cmd]
	delete(p.killed, cmd)
	if p.cmd == cmd {
		p.cmd = nil
	}
	p.mu.Unlock()

	if err != nil && !killed && ctx.Err() == nil {
		return fmt.Errorf("%s failed: %w", name, err)
	}
	return nil
}

// Stop kills the running playback, if any
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
}

func (p *Player) stopLocked() {
	if p.cmd != nil && p.cmd.Process != nil {
		p.killed[p.cmd] = true
		p.cmd.Process.Kill()
		p.cmd = nil
	}
}

// Playing reports whether a playback process is running
func (p *Player) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cmd != nil
}

// resolve returns the program and its arguments, without the file to play
func (p *Player) resolve(format string) (string, []string, error) {
	if p.command != "" {
		fields := strings.Fields(p.command)
		return fields[0], fields[1:], nil
	}

	switch p.goos {
	case "darwin":
		return "afplay", nil, nil
	case "windows":
		return "cmd", []string{"/c", "start", "/min", "/wait", ""}, nil
	case "linux", "freebsd", "openbsd", "netbsd":
		for _, c := range candidates(format) {
			if _, err := p.lookPath(c[0]); err == nil {
				return c[0], c[1:], nil
			}
		}
		return "", nil, ErrNoPlayer
	default:
		return "", nil, fmt.Errorf("unsupported platform: %s", p.goos)
	}
}

// candidates lists players in order of preference. mpg123 cannot play WAV,
// aplay cannot play MP3.
func candidates(format string) [][]string {
	ffplay := []string{"ffplay", "-nodisp", "-autoexit", "-loglevel", "quiet"}
	sox := []string{"play", "-q"}

	if strings.EqualFold(format, "mp3") {
		return [][]string{
			{"mpg123", "-q"},
			ffplay,
			sox,
			{"paplay"},
		}
	}
	return [][]string{
		{"paplay"},
		{"aplay", "-q"},
		ffplay,
		sox,
	}
}
