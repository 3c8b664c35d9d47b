package tts

import (
	"fmt"
	"os/exec"
	"runtime"
	"time"
)

// watchdogTimeout bounds a single verse's playback. A player that hangs past
// this is killed so the reading loop can report and stop.
const watchdogTimeout = 3 * time.Minute

// playerCommand picks a command line that plays the file and exits when it
// ends.
func playerCommand(path string) (*exec.Cmd, error) {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("afplay", path), nil
	case "linux":
		// Try mpv first, then ffplay, then plain aplay.
		if _, err := exec.LookPath("mpv"); err == nil {
			return exec.Command("mpv", "--no-video", "--really-quiet", path), nil
		}
		if _, err := exec.LookPath("ffplay"); err == nil {
			return exec.Command("ffplay", "-nodisp", "-autoexit", "-loglevel", "quiet", path), nil
		}
		if _, err := exec.LookPath("aplay"); err == nil {
			return exec.Command("aplay", "-q", path), nil
		}
		return nil, fmt.Errorf("no audio player found (install mpv, ffplay, or aplay)")
	default:
		return nil, fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}
}

// Playback is one running audio process.
type Playback struct {
	cmd     *exec.Cmd
	started time.Time
	done    chan error
}

// Play starts playing the file in the background.
func Play(path string) (*Playback, error) {
	cmd, err := playerCommand(path)
	if err != nil {
		return nil, err
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start audio player: %w", err)
	}

	p := &Playback{cmd: cmd, started: time.Now(), done: make(chan error, 1)}
	go func() { p.done <- cmd.Wait() }()
	return p, nil
}

// StartedAt returns when playback began.
func (p *Playback) StartedAt() time.Time {
	return p.started
}

// Wait blocks until the player exits, killing it after the watchdog timeout.
func (p *Playback) Wait() error {
	select {
	case err := <-p.done:
		if err != nil {
			return fmt.Errorf("audio player: %w", err)
		}
		return nil
	case <-time.After(watchdogTimeout):
		p.Stop()
		return fmt.Errorf("audio player stalled after %s", watchdogTimeout)
	}
}

// Stop kills the player process. Safe to call after the player exited.
func (p *Playback) Stop() {
	if p == nil || p.cmd == nil || p.cmd.Process == nil {
		return
	}
	_ = p.cmd.Process.Kill()
}
