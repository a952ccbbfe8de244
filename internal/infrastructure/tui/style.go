package tui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const bannerTitle = "FILE ENCRYPTOR/DECRYPTOR"

type Styles struct {
	banner  lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
}

// NewStyles renders for w, dropping colours when noColor is set or w is not
// a terminal.
func NewStyles(w io.Writer, noColor bool) *Styles {
	r := lipgloss.NewRenderer(w)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Styles{
		banner: r.NewStyle().
			Border(lipgloss.DoubleBorder()).
			Bold(true).
			Width(40).
			Align(lipgloss.Center),
		success: r.NewStyle().Foreground(lipgloss.Color("10")),
		failure: r.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

func (s *Styles) Banner() string {
	return s.banner.Render(bannerTitle) + "\n"
}

func (s *Styles) Success(msg string) string {
	return s.success.Render(msg)
}

func (s *Styles) Failure(msg string) string {
	return s.failure.Render(msg)
}
