package ui

import (
	"os"

	"github.com/muesli/termenv"
)

// Screen owns the terminal the dashboard is drawn on. Frames are repainted
// in the alternate screen buffer so the user's scrollback survives.
type Screen struct {
	output *termenv.Output
}

func NewScreen() *Screen {
	return &Screen{output: termenv.NewOutput(os.Stdout)}
}

func (s *Screen) Enter() {
	s.output.AltScreen()
	s.output.HideCursor()
}

func (s *Screen) Leave() {
	s.output.ShowCursor()
	s.output.ExitAltScreen()
}

func (s *Screen) Draw(frame string) error {
	s.output.ClearScreen()
	s.output.MoveCursor(1, 1)
	_, err := s.output.WriteString(frame)
	return err
}
