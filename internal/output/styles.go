package output

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Category is the visual class of a live result.
type Category int

const (
	CategoryNone Category = iota
	CategorySuccess
	CategoryRedirect
	CategoryDenied
)

// CategoryFor maps a status code to its live-output category.
func CategoryFor(code int) Category {
	switch code {
	case 200:
		return CategorySuccess
	case 301, 302:
		return CategoryRedirect
	case 403:
		return CategoryDenied
	default:
		return CategoryNone
	}
}

// Label is the plain-text marker for c. Labels keep categories apart when
// colour is off.
func (c Category) Label() string {
	switch c {
	case CategorySuccess:
		return "FOUND"
	case CategoryRedirect:
		return "REDIRECT"
	case CategoryDenied:
		return "FORBIDDEN"
	default:
		return ""
	}
}

var (
	successColor  = lipgloss.Color("#00D26A") // green
	redirectColor = lipgloss.Color("#FFD93D") // yellow
	deniedColor   = lipgloss.Color("#FF3838") // red
	mutedColor    = lipgloss.Color("#6B7280")
)

type styles struct {
	success  lipgloss.Style
	redirect lipgloss.Style
	denied   lipgloss.Style
	info     lipgloss.Style
	section  lipgloss.Style
	muted    lipgloss.Style
}

func newStyles(w io.Writer, noColor bool) styles {
	r := lipgloss.NewRenderer(w)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}
	return styles{
		success:  r.NewStyle().Foreground(successColor).Bold(true),
		redirect: r.NewStyle().Foreground(redirectColor).Bold(true),
		denied:   r.NewStyle().Foreground(deniedColor).Bold(true),
		info:     r.NewStyle().Bold(true),
		section:  r.NewStyle().Bold(true).Underline(true),
		muted:    r.NewStyle().Foreground(mutedColor),
	}
}

func (s styles) forCategory(c Category) lipgloss.Style {
	switch c {
	case CategorySuccess:
		return s.success
	case CategoryRedirect:
		return s.redirect
	case CategoryDenied:
		return s.denied
	default:
		return s.muted
	}
}
