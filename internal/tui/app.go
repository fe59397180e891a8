// Package tui implements the interactive mode.
//
// It follows the bubbletea Elm shape: App is the model, Update reacts to
// key messages, View renders the task list. Mutations act on the in-memory
// store; the file is written on 's' and on quit.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"ftask/internal/store"
	"ftask/internal/task"
)

// appState represents which input mode the UI is in.
type appState int

const (
	stateList appState = iota
	stateAddTitle
	stateAddNotes
	stateEditTitle
	stateEditNotes
	stateConfirmDelete
	stateConfirmClear
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	doneStyle   = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	notesStyle  = lipgloss.NewStyle().Faint(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	helpStyle   = lipgloss.NewStyle().Faint(true)
)

// App is the interactive-mode model.
type App struct {
	store  *store.Store
	tasks  []task.Task
	cursor int
	state  appState
	input  textinput.Model
	status string

	// draftTitle carries the title between the two add/edit input steps.
	draftTitle string
	// targetID is the task being edited or deleted.
	targetID int

	// err is surfaced to Run when the final save on quit fails.
	err error
}

// NewApp creates the model over an already-loaded store.
func NewApp(st *store.Store) App {
	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 40

	return App{
		store:  st,
		tasks:  st.List(),
		input:  ti,
		status: "a add, e edit, t toggle, d delete, s save, q quit",
	}
}

// Run starts the interactive mode and blocks until the user quits.
// Quitting saves the collection, like the original menu's exit path.
func Run(st *store.Store) error {
	program := tea.NewProgram(NewApp(st))
	final, err := program.Run()
	if err != nil {
		return err
	}
	if a, ok := final.(App); ok {
		return a.err
	}
	return nil
}

func (m App) Init() tea.Cmd {
	return textinput.Blink
}

func (m App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch m.state {
	case stateList:
		return m.updateList(key)
	case stateAddTitle, stateAddNotes, stateEditTitle, stateEditNotes:
		return m.updateInput(key)
	case stateConfirmDelete, stateConfirmClear:
		return m.updateConfirm(key)
	}
	return m, nil
}

func (m App) updateList(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "ctrl+c", "q":
		if err := m.store.Save(); err != nil {
			m.err = err
		}
		return m, tea.Quit
	case "down", "j":
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "a":
		m.state = stateAddTitle
		m.input.Placeholder = "Title"
		m.input.SetValue("")
		m.input.Focus()
		m.status = "add: enter a title, esc to cancel"
		return m, textinput.Blink
	case "e":
		if len(m.tasks) == 0 {
			m.status = "no tasks to edit"
			return m, nil
		}
		m.state = stateEditTitle
		m.targetID = m.tasks[m.cursor].ID
		m.input.Placeholder = "New title (blank keeps current)"
		m.input.SetValue("")
		m.input.Focus()
		m.status = fmt.Sprintf("editing task %d, esc to cancel", m.targetID)
		return m, textinput.Blink
	case "t", " ":
		if len(m.tasks) == 0 {
			return m, nil
		}
		id := m.tasks[m.cursor].ID
		m.store.ToggleComplete(id)
		m.refresh()
		m.status = fmt.Sprintf("toggled task %d", id)
	case "d":
		if len(m.tasks) == 0 {
			return m, nil
		}
		t := m.tasks[m.cursor]
		m.state = stateConfirmDelete
		m.targetID = t.ID
		m.status = fmt.Sprintf("delete %q? y/n", t.Title)
	case "C":
		if len(m.tasks) == 0 {
			return m, nil
		}
		m.state = stateConfirmClear
		m.status = fmt.Sprintf("clear all %d task(s)? y/n", len(m.tasks))
	case "s":
		if err := m.store.Save(); err != nil {
			m.status = fmt.Sprintf("save failed: %v", err)
		} else {
			m.status = "saved"
		}
	case "r":
		if err := m.store.Load(); err != nil && !errors.Is(err, store.ErrNotFound) {
			m.status = fmt.Sprintf("reload failed: %v", err)
			return m, nil
		}
		m.refresh()
		m.status = "reloaded"
	}
	return m, nil
}

func (m App) updateInput(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		m.state = stateList
		m.input.Blur()
		m.status = "cancelled"
		return m, nil
	case "enter":
		value := strings.TrimSpace(m.input.Value())
		switch m.state {
		case stateAddTitle:
			if value == "" {
				m.status = "title cannot be empty"
				return m, nil
			}
			m.draftTitle = value
			m.state = stateAddNotes
			m.input.Placeholder = "Notes (optional)"
			m.input.SetValue("")
			return m, nil
		case stateAddNotes:
			id := m.store.Add(m.draftTitle, value)
			m.refresh()
			m.cursor = len(m.tasks) - 1
			m.state = stateList
			m.input.Blur()
			m.status = fmt.Sprintf("added task %d", id)
			return m, nil
		case stateEditTitle:
			m.draftTitle = value
			m.state = stateEditNotes
			m.input.Placeholder = "New notes (blank keeps current)"
			m.input.SetValue("")
			return m, nil
		case stateEditNotes:
			if m.store.Edit(m.targetID, m.draftTitle, value) {
				m.status = fmt.Sprintf("edited task %d", m.targetID)
			} else {
				m.status = fmt.Sprintf("task %d is gone", m.targetID)
			}
			m.refresh()
			m.state = stateList
			m.input.Blur()
			return m, nil
		}
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(key)
		return m, cmd
	}
}

func (m App) updateConfirm(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "y", "Y":
		if m.state == stateConfirmClear {
			m.store.Clear()
			m.status = "all tasks cleared"
		} else if m.store.RemoveByID(m.targetID) {
			m.status = fmt.Sprintf("deleted task %d", m.targetID)
		} else {
			m.status = fmt.Sprintf("task %d is gone", m.targetID)
		}
		m.refresh()
		m.state = stateList
	case "n", "N", "esc":
		m.state = stateList
		m.status = "cancelled"
	}
	return m, nil
}

// refresh re-reads the collection and keeps the cursor in range.
func (m *App) refresh() {
	m.tasks = m.store.List()
	if m.cursor >= len(m.tasks) {
		m.cursor = len(m.tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m App) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("ftask"))
	b.WriteString("\n\n")

	if len(m.tasks) == 0 {
		b.WriteString("No tasks yet. Press 'a' to add one.\n")
	} else {
		for i, t := range m.tasks {
			b.WriteString(m.renderRow(i, t))
			b.WriteString("\n")
		}
	}

	if m.state == stateAddTitle || m.state == stateAddNotes ||
		m.state == stateEditTitle || m.state == stateEditNotes {
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.status))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("j/k move | a add | e edit | t toggle | d delete | C clear | s save | r reload | q quit"))
	b.WriteString("\n")
	return b.String()
}

func (m App) renderRow(i int, t task.Task) string {
	cursor := "  "
	if i == m.cursor && m.state == stateList {
		cursor = cursorStyle.Render("> ")
	}

	checkbox := "[ ]"
	if t.Completed {
		checkbox = "[x]"
	}

	line := fmt.Sprintf("%s %-4d %s", checkbox, t.ID, t.Title)
	if t.Completed {
		line = doneStyle.Render(line)
	}
	if t.Notes != "" {
		line += notesStyle.Render(" • " + t.Notes)
	}
	return cursor + line
}
