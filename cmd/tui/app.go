package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/td0m/tasklist/internal/config"
	"github.com/td0m/tasklist/internal/ui"
	"github.com/td0m/tasklist/pkg/task"
)

const footerHeight = 1

// focus is the input that receives key presses
type focus int

const (
	focusTitle focus = iota
	focusDescription
	focusSearch
	focusTable

	focusCount
)

// tab indexes, see newApp
const (
	tabForm = iota
	tabSearch
	tabTasks
)

func (f focus) tab() int {
	switch f {
	case focusTitle, focusDescription:
		return tabForm
	case focusSearch:
		return tabSearch
	default:
		return tabTasks
	}
}

type app struct {
	cfg config.Config
	log *log.Logger

	title       textinput.Model
	description textarea.Model
	search      textinput.Model
	viewport    viewport.Model
	tabs        ui.Tabs

	focus   focus
	cursor  int
	visible []task.Task

	store task.StoreManager
}

func newApp(cfg config.Config, logger *log.Logger, store task.StoreManager) *app {
	title := textinput.New()
	title.Prompt = ""
	title.Placeholder = "Enter your Task Title..."
	title.Width = 60

	description := textarea.New()
	description.Placeholder = "Enter your Task Description..."
	description.ShowLineNumbers = false
	description.SetWidth(60)
	description.SetHeight(3)

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "Search Task..."
	search.Width = 40

	a := &app{
		cfg:         cfg,
		log:         logger,
		title:       title,
		description: description,
		search:      search,
		viewport:    viewport.New(0, 0),
		tabs:        ui.NewTabs([]string{"Form", "Search", "Tasks"}),
		store:       store,
	}
	a.setFocus(focusTitle)
	a.updateVisible()
	a.render()
	return a
}

// Init is the first function that will be called. It returns an optional
// initial command. To not perform an initial command return nil.
func (m app) Init() tea.Cmd {
	return textinput.Blink
}

// Update is called when a message is received. Use it to inspect messages
// and, in response, update the model and/or send a command.
func (m *app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.tabs.Width = msg.Width
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-lipgloss.Height(m.viewHeader())-footerHeight, 1)
		m.setCursor(m.cursor) // make sure cursor is visible
	case tea.MouseMsg:
		m.viewport, cmd = m.viewport.Update(msg)
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "tab":
			cmd = m.setFocus((m.focus + 1) % focusCount)
		case "shift+tab":
			cmd = m.setFocus((m.focus + focusCount - 1) % focusCount)
		case "esc":
			cmd = m.setFocus(focusTable)
		case "alt+1":
			cmd = m.setFocus(focusTitle)
		case "alt+2":
			cmd = m.setFocus(focusSearch)
		case "alt+3":
			cmd = m.setFocus(focusTable)
		default:
			cmd = m.keyUpdate(msg)
		}
	default:
		// cursor blinking and other input internals
		cmd = m.updateInputs(msg)
	}
	m.render()
	return m, cmd
}

// handle keys differently based on the focused input
func (m *app) keyUpdate(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	switch m.focus {
	case focusTitle:
		if msg.Type == tea.KeyEnter || msg.String() == "ctrl+s" {
			m.submit()
			return nil
		}
		m.title, cmd = m.title.Update(msg)
		m.store.SetDraftTitle(m.title.Value())
	case focusDescription:
		if msg.String() == "ctrl+s" {
			m.submit()
			return nil
		}
		m.description, cmd = m.description.Update(msg)
		m.store.SetDraftDescription(m.description.Value())
	case focusSearch:
		if msg.Type == tea.KeyEnter {
			return m.setFocus(focusTable)
		}
		m.search, cmd = m.search.Update(msg)
		m.store.SetSearchQuery(m.search.Value())
		m.updateVisible()
		m.setCursor(m.cursor)
	case focusTable:
		cmd = m.tableUpdate(msg)
	}
	return cmd
}

func (m *app) tableUpdate(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q":
		return tea.Quit
	case "j", "down":
		m.setCursor(m.cursor + 1)
	case "k", "up":
		m.setCursor(m.cursor - 1)
	case "g", "home":
		m.setCursor(0)
	case "G", "end":
		m.setCursor(len(m.visible))
	case "u":
		if t, ok := m.atCursor(); ok {
			m.store.BeginEdit(t)
			m.syncDraft()
			m.log.Debug("editing task", "id", t.ID)
			return m.setFocus(focusTitle)
		}
	case "s":
		if t, ok := m.atCursor(); ok {
			m.setStatus(t.ID, t.Status.Next())
		}
	case "p":
		if t, ok := m.atCursor(); ok {
			m.setStatus(t.ID, task.Pending)
		}
	case "c":
		if t, ok := m.atCursor(); ok {
			m.setStatus(t.ID, task.Completed)
		}
	case "enter", "d":
		if t, ok := m.atCursor(); ok {
			m.toggleDescription(t.ID)
		}
	}
	return nil
}

func (m *app) updateInputs(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.focus {
	case focusTitle:
		m.title, cmd = m.title.Update(msg)
	case focusDescription:
		m.description, cmd = m.description.Update(msg)
	case focusSearch:
		m.search, cmd = m.search.Update(msg)
	}
	return cmd
}

func (m *app) submit() {
	editing := m.store.State().Editing()
	t, err := m.store.SubmitDraft()
	switch {
	case errors.Is(err, task.ErrEmptyTitle):
		// the form is left as it is
		m.log.Debug("submit declined", "err", err)
		return
	case err != nil:
		m.log.Warn("edited task is gone", "err", err)
	case editing:
		m.log.Info("task updated", "id", t.ID, "title", t.Title)
	default:
		m.log.Info("task created", "id", t.ID, "title", t.Title, "status", t.Status)
	}
	m.syncDraft()
	m.updateVisible()
}

func (m *app) setStatus(id task.ID, status task.Status) {
	if err := m.store.SetStatus(id, status); err != nil {
		m.log.Debug("status not changed", "id", id, "err", err)
		return
	}
	m.log.Info("status changed", "id", id, "status", status)
	m.updateVisible()
}

func (m *app) toggleDescription(id task.ID) {
	if err := m.store.ToggleDescription(id); err != nil {
		m.log.Debug("description not toggled", "id", id, "err", err)
		return
	}
	m.updateVisible()
}

// syncDraft copies the draft held by the store into the form inputs
func (m *app) syncDraft() {
	d := m.store.State().Draft
	m.title.SetValue(d.Title)
	m.description.SetValue(d.Description)
}

func (m *app) setFocus(f focus) tea.Cmd {
	m.focus = f
	m.tabs.Set(f.tab())

	m.title.Blur()
	m.description.Blur()
	m.search.Blur()
	switch f {
	case focusTitle:
		return m.title.Focus()
	case focusDescription:
		return m.description.Focus()
	case focusSearch:
		return m.search.Focus()
	}
	return nil
}

// updateVisible recomputes the filtered task list
func (m *app) updateVisible() {
	m.visible = m.store.VisibleTasks()
	m.tabs.Info = fmt.Sprintf("%d/%d tasks", len(m.visible), len(m.store.State().Tasks))
}

func (m app) atCursor() (task.Task, bool) {
	// if no items visible
	if m.cursor >= len(m.visible) {
		return task.Task{}, false
	}
	return m.visible[m.cursor], true
}

func (m *app) setCursor(value int) {
	size := len(m.visible)
	m.cursor = clamp(value, 0, max(size-1, 0))

	// for when no tasks
	if size == 0 {
		return
	}

	linesBeforeCursor := 0
	for i := range m.visible[:m.cursor] {
		linesBeforeCursor += m.sizeOf(i)
	}
	cursorSize := m.sizeOf(m.cursor)

	if linesBeforeCursor+cursorSize > m.viewport.YOffset+m.viewport.Height {
		m.viewport.YOffset = linesBeforeCursor + cursorSize - m.viewport.Height
	}
	if linesBeforeCursor < m.viewport.YOffset {
		m.viewport.YOffset = linesBeforeCursor
	}
}

// sizeOf is the number of lines the i-th visible task takes up
func (m app) sizeOf(i int) int {
	return lipgloss.Height(ui.TaskRow(m.visible[i], false, m.cfg.TimeFormat))
}

func (m *app) render() {
	// SetContent would reset a scroll position past the new content
	offset := m.viewport.YOffset
	m.viewport.SetContent(m.viewTasks())
	m.viewport.SetYOffset(offset)
}

func (m app) viewTasks() string {
	if len(m.visible) == 0 {
		if len(m.store.State().Tasks) == 0 {
			return ui.Label.Render("  no tasks yet")
		}
		return ui.Label.Render("  no tasks match the search")
	}
	rows := make([]string, len(m.visible))
	for i, t := range m.visible {
		selected := m.focus == focusTable && i == m.cursor
		rows[i] = ui.TaskRow(t, selected, m.cfg.TimeFormat)
	}
	return strings.Join(rows, "\n")
}

func (m app) label(text string, f ...focus) string {
	for _, ff := range f {
		if m.focus == ff {
			return ui.FocusedLabel.Render(text)
		}
	}
	return ui.Label.Render(text)
}

// viewHeader renders everything above the task table
func (m app) viewHeader() string {
	editing := m.store.State().Editing()
	form := lipgloss.JoinVertical(lipgloss.Left,
		m.label("Task Title", focusTitle),
		m.title.View(),
		m.label("Enter Task Description", focusDescription),
		m.description.View(),
		ui.SubmitButton(editing),
	)
	return lipgloss.JoinVertical(lipgloss.Left,
		ui.Header.Render("Todo List"),
		m.tabs.View(),
		form,
		"",
		m.search.View(),
		"",
		ui.TableHeaderRow(),
	)
}

func (m app) viewFooter() string {
	var help string
	switch m.focus {
	case focusTitle:
		help = "enter: submit • tab: next • esc: tasks"
	case focusDescription:
		help = "ctrl+s: submit • tab: next • esc: tasks"
	case focusSearch:
		help = "enter: tasks • tab: next"
	default:
		help = "j/k: move • u: update • s/p/c: status • enter: details • tab: form • q: quit"
	}
	return ui.Label.Render(help)
}

// View renders the program's UI, which is just a string. The view is
// rendered after every Update.
func (m app) View() string {
	return m.viewHeader() + "\n" + m.viewport.View() + "\n" + m.viewFooter()
}

func clamp(v, low, high int) int {
	return min(high, max(low, v))
}
