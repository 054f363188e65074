package menu

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles holds the text styles shared by the menu and the list commands.
type Styles struct {
	Title    lipgloss.Style
	Index    lipgloss.Style
	Command  lipgloss.Style
	Category lipgloss.Style
	Count    lipgloss.Style
	Dim      lipgloss.Style
	Query    lipgloss.Style
	Warning  lipgloss.Style
	Error    lipgloss.Style
}

// NewRenderer returns a lipgloss renderer for w. Colors are dropped when
// color is false or NO_COLOR is set.
func NewRenderer(w io.Writer, color bool) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if !color || termenv.EnvNoColor() {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

// NewStyles builds the palette for theme ("dark" or "light").
func NewStyles(r *lipgloss.Renderer, theme string) Styles {
	if r == nil {
		r = NewRenderer(os.Stdout, true)
	}
	fg, dim, accent := lipgloss.Color("252"), lipgloss.Color("241"), lipgloss.Color("214")
	if theme == "light" {
		fg, dim, accent = lipgloss.Color("235"), lipgloss.Color("245"), lipgloss.Color("166")
	}
	return Styles{
		Title:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("62")),
		Index:    r.NewStyle().Foreground(dim),
		Command:  r.NewStyle().Foreground(fg),
		Category: r.NewStyle().Foreground(lipgloss.Color("69")),
		Count:    r.NewStyle().Foreground(dim),
		Dim:      r.NewStyle().Foreground(dim),
		Query:    r.NewStyle().Foreground(accent),
		Warning:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("208")),
		Error:    r.NewStyle().Foreground(lipgloss.Color("196")),
	}
}
