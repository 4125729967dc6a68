package loop

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/tomz197/starwarp/internal/config"
	"github.com/tomz197/starwarp/internal/draw"
)

const controlsHint = "←/→ move · space fire · ↑ warp · q quit"

// drawFrame draws the stage and any prompt for the current state, then
// flushes the frame.
func (s *state) drawFrame() error {
	s.stage.Draw(s.canvas, s.cw)

	centerX := s.canvas.TerminalWidth() / 2
	centerY := s.canvas.TerminalHeight() / 2
	switch {
	case s.idle:
		s.drawInactivityScreen(centerX, centerY)
	case s.session.Over():
		s.centered(centerX, centerY+2, s.hint.Render("Press ENTER to play again"))
	default:
		s.centered(centerX, s.canvas.TerminalHeight(), s.hint.Render(controlsHint))
	}
	return s.cw.Flush()
}

func (s *state) drawInactivityScreen(centerX, centerY int) {
	style := s.hint
	s.centered(centerX, centerY-2, style.Bold(true).Render("INACTIVITY WARNING"))
	left := config.InactivityDisconnectUser*time.Second - time.Since(s.lastInput)
	msg := fmt.Sprintf("You will be disconnected in %d seconds.", int(left.Seconds()))
	s.centered(centerX, centerY, style.Render(msg))
	s.centered(centerX, centerY+2, style.Render("Press any key to continue"))
}

func (s *state) centered(centerX, row int, text string) {
	draw.WriteStyled(s.canvas, s.cw, centerX-lipgloss.Width(text)/2, row, text)
}

func hintStyle(r *lipgloss.Renderer) lipgloss.Style {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return r.NewStyle().Foreground(lipgloss.Color("#AAAAAA"))
}
