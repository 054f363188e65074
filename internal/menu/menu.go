// Package menu is the line-oriented command picker: it prints a numbered
// page of ranked commands and reads selections, page moves and filters
// from a readline prompt.
package menu

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/javiplav/terminal-command-menu/internal/executor"
	"github.com/javiplav/terminal-command-menu/internal/rank"
	"github.com/javiplav/terminal-command-menu/internal/sanitize"
)

// ErrCancelled is returned when the user leaves the menu without choosing.
var ErrCancelled = errors.New("menu cancelled")

// ErrEmpty is returned when there is nothing to choose from.
var ErrEmpty = errors.New("no commands to show")

const (
	defaultPrompt = "> "
	defaultWidth  = 80
	categoryWidth = 12
)

// Menu runs one interactive selection.
type Menu struct {
	Prompter       Prompter
	Out            io.Writer
	Styles         Styles
	PageSize       int
	Width          int  // Terminal columns; 0 uses 80
	Confirm        bool // Ask before returning a selection
	ShowCategories bool
}

// Run shows commands and returns the text of the chosen one.
func (m *Menu) Run(commands []rank.Command) (string, error) {
	if len(commands) == 0 {
		return "", ErrEmpty
	}
	model := NewModel(commands, m.PageSize)
	m.Prompter.SetPrompt(defaultPrompt)

	for {
		m.render(model)

		line, err := m.Prompter.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
				return "", ErrCancelled
			}
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		input := strings.TrimSpace(line)

		switch {
		case input == "":
			model.SetQuery("")
		case input == "q" || input == "quit":
			return "", ErrCancelled
		case input == "n":
			if !model.Next() {
				m.notice("Already on the last page.")
			}
		case input == "p":
			if !model.Prev() {
				m.notice("Already on the first page.")
			}
		case strings.HasPrefix(input, "/"):
			model.SetQuery(strings.TrimSpace(input[1:]))
		default:
			n, err := strconv.Atoi(input)
			if err != nil {
				model.SetQuery(input)
				continue
			}
			cmd, ok := model.Select(n)
			if !ok {
				m.notice(fmt.Sprintf("No command numbered %d.", n))
				continue
			}
			if !m.Confirm || m.confirm(cmd.Text) {
				return cmd.Text, nil
			}
		}
	}
}

// confirm shows a preview of cmd and asks for a yes/no answer. Anything
// but y or yes, including Ctrl-C, declines.
func (m *Menu) confirm(cmd string) bool {
	summary := executor.Preview(cmd)
	fmt.Fprintln(m.Out, m.Styles.Dim.Render(DisplayText(summary.Description)))
	if summary.Risk == sanitize.RiskDestructive {
		fmt.Fprintln(m.Out, m.Styles.Warning.Render("Warning: destructive command ("+summary.RiskPattern+")"))
	}

	m.Prompter.SetPrompt(fmt.Sprintf("Execute %s? [y/N] ", DisplayText(cmd)))
	defer m.Prompter.SetPrompt(defaultPrompt)

	answer, err := m.Prompter.Readline()
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		m.notice("Cancelled.")
		return false
	}
}

func (m *Menu) render(model *Model) {
	s := m.Styles
	header := fmt.Sprintf("Frequent commands (%d)", model.Len())
	if q := model.Query(); q != "" {
		header += "  " + s.Query.Render("filter: "+q)
	}
	if model.Pages() > 1 {
		header += s.Dim.Render(fmt.Sprintf("  page %d/%d", model.PageIndex()+1, model.Pages()))
	}
	fmt.Fprintln(m.Out, s.Title.Render(header))

	rows, first := model.Page()
	if len(rows) == 0 {
		fmt.Fprintln(m.Out, s.Dim.Render("  No matches"))
	}
	for i, c := range rows {
		fmt.Fprintln(m.Out, FormatRow(s, first+i, c, m.Width, m.ShowCategories))
	}
	fmt.Fprintln(m.Out, s.Dim.Render("number: run  n/p: page  /text: filter  enter: clear  q: quit"))
}

func (m *Menu) notice(msg string) {
	fmt.Fprintln(m.Out, m.Styles.Dim.Render(msg))
}

// FormatRow renders one numbered command line fitted to width columns.
func FormatRow(s Styles, n int, c rank.Command, width int, showCategory bool) string {
	if width <= 0 {
		width = defaultWidth
	}
	index := fmt.Sprintf("%4d. ", n)
	count := fmt.Sprintf(" %5dx", c.Count)

	textWidth := width - len(index) - len(count)
	var category string
	if showCategory {
		textWidth -= categoryWidth + 1
		category = " " + s.Category.Render(PadRight(c.Category, categoryWidth))
	}
	if textWidth < 10 {
		textWidth = 10
	}
	text := PadRight(MiddleTruncate(DisplayText(c.Text), textWidth), textWidth)

	return s.Index.Render(index) + s.Command.Render(text) + category + s.Count.Render(count)
}
