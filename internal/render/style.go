package render

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

const terminalWidthBackup = 80

// Styles are the text styles for one theme.
type Styles struct {
	Title  lipgloss.Style
	Header lipgloss.Style
	Label  lipgloss.Style
	Value  lipgloss.Style
	Muted  lipgloss.Style
	Accent lipgloss.Style
	Error  lipgloss.Style
}

type palette struct {
	title, header, label, value, muted, accent, err string
}

var (
	darkPalette = palette{
		title:  "#F0F0F0",
		header: "#6E6E6E",
		label:  "#B0B0B0",
		value:  "#F0F0F0",
		muted:  "#8C8C8C",
		accent: "#C89A3A",
		err:    "#FF4D4F",
	}
	lightPalette = palette{
		title:  "#1F1F1F",
		header: "#8C8C8C",
		label:  "#4A4A4A",
		value:  "#1F1F1F",
		muted:  "#6E6E6E",
		accent: "#A0701A",
		err:    "#CF1322",
	}
)

// NewStyles returns the styles for a dark or light background. With color
// off every style is plain.
func NewStyles(dark, color bool) Styles {
	if !color {
		plain := lipgloss.NewStyle()
		return Styles{Title: plain, Header: plain, Label: plain, Value: plain, Muted: plain, Accent: plain, Error: plain}
	}
	p := lightPalette
	if dark {
		p = darkPalette
	}
	fg := func(c string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	}
	return Styles{
		Title:  fg(p.title).Bold(true),
		Header: fg(p.header),
		Label:  fg(p.label),
		Value:  fg(p.value).Bold(true),
		Muted:  fg(p.muted),
		Accent: fg(p.accent),
		Error:  fg(p.err),
	}
}

// TerminalDark reports whether the terminal background is dark.
func TerminalDark() bool {
	return lipgloss.HasDarkBackground()
}

// TerminalWidth returns the stdout width, or 80 when it is not a terminal.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}

// ShouldUseColor reports whether w should receive styled output.
func ShouldUseColor(w io.Writer, disabled bool) bool {
	if disabled || os.Getenv("NO_COLOR") != "" {
		return false
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
