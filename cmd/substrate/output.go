package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/wippyai/substrate-codec/errors"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	opStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// printer writes command results, styled only when the output is a terminal.
type printer struct {
	w      io.Writer
	styled bool
}

func newPrinter(f *os.File) *printer {
	return &printer{w: f, styled: term.IsTerminal(int(f.Fd()))}
}

func (p *printer) render(s lipgloss.Style, text string) string {
	if !p.styled {
		return text
	}
	return s.Render(text)
}

func (p *printer) result(text string) {
	fmt.Fprintln(p.w, p.render(resultStyle, text))
}

// fail prints err to w. Structured errors also report their category.
func (p *printer) fail(w io.Writer, err error) {
	msg := "Error: " + err.Error()
	if c := errors.CategoryOf(err); c != "" {
		msg += " [" + string(c) + "]"
	}
	fmt.Fprintln(w, p.render(errorStyle, msg))
}
