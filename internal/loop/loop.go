// Package loop runs one terminal game: the Input → Update → Draw cycle at a
// fixed frame rate, restarts after the outcome and idle disconnects.
package loop

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/tomz197/starwarp/internal/config"
	"github.com/tomz197/starwarp/internal/draw"
	"github.com/tomz197/starwarp/internal/game"
	"github.com/tomz197/starwarp/internal/input"
)

// maxFrameDelta caps the time advanced in one frame after a stall.
const maxFrameDelta = 250 * time.Millisecond

// Options configures Run.
type Options struct {
	// TermSizeFunc reports the terminal size. Defaults to os.Stdout.
	TermSizeFunc draw.TermSizeFunc
	// Logger receives session events. Defaults to a discarding logger.
	Logger *log.Logger
	// Renderer styles HUD text. Defaults to lipgloss's default renderer.
	Renderer *lipgloss.Renderer
	// Game overrides the gameplay configuration. The zero value means
	// game.DefaultConfig().
	Game game.Config
}

func (o Options) withDefaults() Options {
	if o.TermSizeFunc == nil {
		o.TermSizeFunc = draw.DefaultTermSizeFunc
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	if o.Game.Screen.Width == 0 {
		o.Game = game.DefaultConfig()
	}
	return o
}

// Run plays games on the terminal behind r and w until the player quits,
// the input stream ends, the player idles out or ctx is cancelled.
func Run(ctx context.Context, r io.Reader, w io.Writer, opts Options) error {
	opts = opts.withDefaults()

	termWidth, termHeight, err := opts.TermSizeFunc()
	if err != nil {
		return fmt.Errorf("terminal size: %w", err)
	}

	s := newState(w, opts, time.Now())
	s.resize(termWidth, termHeight)
	s.stream = input.StartStream(r)
	defer s.stream.Close()

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)
	defer draw.ClearScreen(w)
	defer s.close()

	lastTime := time.Now()
	for s.running {
		if ctx.Err() != nil {
			s.log.Debug("context done", "err", ctx.Err())
			break
		}

		frameStart := time.Now()
		delta := min(frameStart.Sub(lastTime), maxFrameDelta)
		lastTime = frameStart

		// ===== INPUT + UPDATE =====
		if tw, th, err := opts.TermSizeFunc(); err == nil {
			s.resize(tw, th)
		}
		s.step(input.ReadInput(s.stream), frameStart, delta)

		// ===== DRAW =====
		if err := s.drawFrame(); err != nil {
			return err
		}

		// ===== FRAME TIMING =====
		if sleep := config.TargetFrameTime - time.Since(frameStart); sleep > 0 {
			select {
			case <-ctx.Done():
			case <-time.After(sleep):
			}
		}
	}
	return nil
}
