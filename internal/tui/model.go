// Package tui is the interactive terminal front-end: a bubbletea program over
// a manager.Manager rendering into a view.Page.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"pintask/internal/config"
	"pintask/internal/manager"
	"pintask/internal/output"
	"pintask/internal/view"
)

type focusArea int

const (
	focusInput focusArea = iota
	focusList
)

// Model is the bubbletea model.
type Model struct {
	mgr  *manager.Manager
	page *view.Page

	input  textinput.Model
	help   help.Model
	keys   keyMap
	styles styles

	focus  focusArea
	cursor int
}

// New creates a Model over mgr and the page it renders into.
func New(mgr *manager.Manager, page *view.Page, theme config.ThemeSettings) Model {
	input := textinput.New()
	input.Placeholder = "New task or filter..."
	input.Prompt = "> "
	input.CharLimit = 200
	input.SetValue(page.Input())
	input.Focus()

	keys := defaultKeyMap()
	keys.setListFocus(false)

	return Model{
		mgr:    mgr,
		page:   page,
		input:  input,
		help:   help.New(),
		keys:   keys,
		styles: newStyles(theme),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// InputValue returns the text currently in the input.
func (m Model) InputValue() string {
	return m.input.Value()
}

// InList reports whether the task lists have focus.
func (m Model) InList() bool {
	return m.focus == focusList
}

// Selected returns the name of the row under the cursor, if any.
func (m Model) Selected() (string, bool) {
	rows := m.toggleRows()
	if m.focus != focusList || m.cursor >= len(rows) {
		return "", false
	}
	return rows[m.cursor].Name, true
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case runMsg:
		msg.fn()
		return m, nil

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if key.Matches(msg, m.keys.Focus) {
			return m.switchFocus()
		}
		if m.focus == focusList {
			return m.updateList(msg)
		}
		return m.updateInput(msg)
	}

	if m.focus == focusInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) switchFocus() (tea.Model, tea.Cmd) {
	if m.focus == focusInput {
		return m.enterList(), nil
	}
	return m.enterInput()
}

func (m Model) enterList() Model {
	m.focus = focusList
	m.input.Blur()
	m.keys.setListFocus(true)
	m.clampCursor()
	return m
}

func (m Model) enterInput() (Model, tea.Cmd) {
	m.focus = focusInput
	m.keys.setListFocus(false)
	m.help.ShowAll = false
	return m, m.input.Focus()
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Submit) {
		m.mgr.Submit()
		m.input.SetValue(m.page.Input())
		return m, nil
	}

	prev := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if value := m.input.Value(); value != prev {
		m.mgr.HandleInput(value)
	}
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		return m.enterInput()
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.toggleRows())-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Toggle):
		if name, ok := m.Selected(); ok {
			m.mgr.TogglePin(name)
		}
	case key.Matches(msg, m.keys.Pin):
		if name, ok := m.Selected(); ok {
			m.mgr.Pin(name)
		}
	case key.Matches(msg, m.keys.Unpin):
		if name, ok := m.Selected(); ok {
			m.mgr.Unpin(name)
		}
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	m.clampCursor()
	return m, nil
}

// toggleRows lists the rows that carry a toggle, pinned view first.
func (m Model) toggleRows() []view.Row {
	snap := m.page.Snapshot()
	var rows []view.Row
	for _, region := range []view.RegionSnapshot{snap.Pinned, snap.Unpinned} {
		for _, row := range region.Rows {
			if row.Toggle != nil {
				rows = append(rows, row)
			}
		}
	}
	return rows
}

func (m *Model) clampCursor() {
	n := len(m.toggleRows())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// View implements tea.Model.
func (m Model) View() string {
	snap := m.page.Snapshot()

	var b strings.Builder
	b.WriteString(m.styles.title.Render("pintask"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if snap.Error != "" {
		b.WriteString(m.styles.err.Render(snap.Error))
		b.WriteString("\n")
	}

	// index counts toggle rows across both sections to match the cursor.
	index := 0
	m.writeSection(&b, output.PinnedTitle, snap.Pinned, &index)
	m.writeSection(&b, output.TasksTitle, snap.Unpinned, &index)

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) writeSection(b *strings.Builder, title string, region view.RegionSnapshot, index *int) {
	b.WriteString(m.styles.section.Render(title))
	b.WriteString("\n")

	if region.Placeholder != "" {
		b.WriteString(m.styles.placeholder.Render(region.Placeholder))
		b.WriteString("\n")
		return
	}

	for _, row := range region.Rows {
		if row.Toggle == nil {
			b.WriteString(m.styles.row.Render(row.Name))
			b.WriteString("\n")
			continue
		}
		line := fmt.Sprintf("[%s] %s", row.Toggle.Label, row.Name)
		if m.focus == focusList && *index == m.cursor {
			b.WriteString(m.styles.selected.Render(line))
		} else {
			b.WriteString(m.styles.row.Render(line))
		}
		b.WriteString("\n")
		*index++
	}
}

// Run starts the program and blocks until it exits. sched must be the
// scheduler the manager behind model was built with.
func Run(ctx context.Context, model Model, sched *Scheduler, in io.Reader, out io.Writer) error {
	opts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	}
	if in != nil {
		opts = append(opts, tea.WithInput(in))
	}

	p := tea.NewProgram(model, opts...)
	sched.Attach(p.Send)

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
