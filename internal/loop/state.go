package loop

import (
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/tomz197/starwarp/internal/config"
	"github.com/tomz197/starwarp/internal/draw"
	"github.com/tomz197/starwarp/internal/game"
	"github.com/tomz197/starwarp/internal/input"
)

// state is everything one terminal owns between frames.
type state struct {
	opts    Options
	log     *log.Logger
	session *game.Session
	stage   *draw.Stage
	canvas  *draw.Canvas
	cw      *draw.ChunkWriter
	stream  *input.Stream
	tracker input.Tracker
	hint    lipgloss.Style

	running   bool
	games     int
	reported  bool // Outcome of the current game has been logged
	lastInput time.Time
	idle      bool // Inactivity warning showing
	layoutSet bool
}

func newState(w io.Writer, opts Options, now time.Time) *state {
	s := &state{
		opts:      opts,
		log:       opts.Logger,
		stage:     draw.NewStage(opts.Renderer),
		canvas:    draw.NewScaledCanvas(1, 1, opts.Game.Screen.Width, opts.Game.Screen.Height),
		cw:        draw.NewChunkWriter(w, 0, 0),
		running:   true,
		lastInput: now,
		hint:      hintStyle(opts.Renderer),
	}
	s.startGame()
	return s
}

// startGame replaces the current session with a fresh one.
func (s *state) startGame() {
	if s.session != nil {
		s.session.Close()
	}
	s.session = game.NewSession(s.opts.Game, s.stage)
	s.games++
	s.reported = false
	s.tracker = input.Tracker{}
	if s.stream != nil {
		s.stream.Reset()
	}
	s.log.Info("game started", "game", s.games)
}

// step applies one frame of input and advances the session.
func (s *state) step(in input.Input, now time.Time, delta time.Duration) {
	if in.Quit {
		s.log.Info("player quit", "game", s.games, "closed", in.Closed)
		s.running = false
		return
	}

	switch idle := now.Sub(s.lastInput); {
	case len(in.Pressed) > 0:
		s.lastInput = now
		s.idle = false
	case idle > config.InactivityDisconnectUser*time.Second:
		s.log.Info("idle disconnect", "game", s.games, "idle", idle.Round(time.Second))
		s.running = false
		return
	case idle > config.InactivityWarnUser*time.Second:
		s.idle = true
	}

	if in.Enter && s.session.Over() {
		s.log.Info("restart", "game", s.games)
		s.startGame()
		s.canvas.ForceRedraw()
		return
	}

	s.tracker.Update(in, s.keyDown, s.keyUp)
	if in.Fire {
		s.session.KeyDown(game.KeyFire)
	}
	s.session.Advance(delta)

	if s.session.Over() && !s.reported {
		st := s.session.State()
		s.log.Info("game over",
			"game", s.games,
			"outcome", s.session.Outcome(),
			"destroyed", st.Destroyed,
			"ammo", st.Ammo,
			"elapsed", s.session.Elapsed().Round(time.Second),
		)
		s.reported = true
	}
}

func (s *state) keyDown(b input.Button) {
	if k, ok := buttonKey(b); ok {
		s.session.KeyDown(k)
	}
}

func (s *state) keyUp(b input.Button) {
	if k, ok := buttonKey(b); ok {
		s.session.KeyUp(k)
	}
}

func buttonKey(b input.Button) (game.Key, bool) {
	switch b {
	case input.ButtonLeft:
		return game.KeyLeft, true
	case input.ButtonRight:
		return game.KeyRight, true
	case input.ButtonWarp:
		return game.KeyWarp, true
	}
	return 0, false
}

// resize fits the render area to the terminal. A changed layout clears the
// screen and redraws the border.
func (s *state) resize(termWidth, termHeight int) {
	width, height, offCol, offRow := draw.FitRenderArea(termWidth, termHeight, config.MaxTermWidth, config.MaxTermHeight)
	col, row := s.canvas.Offset()
	if s.layoutSet && width == s.canvas.TerminalWidth() && height == s.canvas.TerminalHeight() &&
		offCol == col && offRow == row {
		return
	}
	s.layoutSet = true

	s.canvas.Resize(width, height)
	s.canvas.SetOffset(offCol, offRow)
	s.cw.SetOffset(offCol, offRow)
	s.canvas.ForceRedraw()
	draw.ClearScreen(s.cw)
	s.canvas.RenderBorder(s.cw)
}

// close destroys the session's visuals.
func (s *state) close() {
	if s.session != nil {
		s.session.Close()
	}
}
