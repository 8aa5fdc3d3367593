package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/matryer/is"

	"github.com/td0m/tasklist/internal/config"
	"github.com/td0m/tasklist/internal/logging"
	"github.com/td0m/tasklist/pkg/task"
)

func testApp(t *testing.T) (*app, *bytes.Buffer) {
	t.Helper()
	now := time.Date(2021, time.April, 21, 9, 0, 0, 0, time.UTC)
	store := task.NewStoreWithClock(func() time.Time {
		now = now.Add(time.Minute)
		return now
	})
	cfg := config.Default()
	cfg.LogLevel = "debug"
	var buf bytes.Buffer
	a := newApp(cfg, logging.NewWithWriter(&buf, cfg), store)
	a.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return a, &buf
}

func send(a *app, keys ...tea.KeyMsg) {
	for _, k := range keys {
		a.Update(k)
	}
}

func typed(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func key(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

var (
	enter = key(tea.KeyEnter)
	tab   = key(tea.KeyTab)
	esc   = key(tea.KeyEsc)
	ctrlS = key(tea.KeyCtrlS)
)

func addTask(a *app, title string) {
	a.setFocus(focusTitle)
	send(a, typed(title), enter)
}

func TestApp_AddTask(t *testing.T) {
	is := is.New(t)
	a, logs := testApp(t)

	is.Equal(a.focus, focusTitle)
	send(a, typed("Buy milk"), tab, typed("2 litres"), ctrlS)

	tasks := a.store.State().Tasks
	is.Equal(len(tasks), 1)
	is.Equal(tasks[0].Title, "Buy milk")
	is.Equal(tasks[0].Description, "2 litres")
	is.Equal(tasks[0].Status, task.Pending)

	// the form is cleared
	is.Equal(a.title.Value(), "")
	is.Equal(a.description.Value(), "")
	is.Equal(len(a.visible), 1)
	is.True(strings.Contains(logs.String(), "task created"))
	is.True(strings.Contains(a.View(), "Buy milk"))
}

func TestApp_BlankTitleIsIgnored(t *testing.T) {
	is := is.New(t)
	a, logs := testApp(t)

	send(a, typed("   "), tab, typed("keep me"), tab, key(tea.KeyShiftTab), key(tea.KeyShiftTab), enter)
	is.Equal(len(a.store.State().Tasks), 0)
	is.Equal(a.title.Value(), "   ")
	is.Equal(a.description.Value(), "keep me")
	is.True(strings.Contains(logs.String(), "submit declined"))
}

func TestApp_EditTask(t *testing.T) {
	is := is.New(t)
	a, _ := testApp(t)
	addTask(a, "Buy milk")
	addTask(a, "Walk dog")
	before, _ := a.store.Get(2)

	send(a, esc, typed("j"), typed("u"))
	is.Equal(a.focus, focusTitle)
	is.Equal(a.title.Value(), "Walk dog")
	is.True(strings.Contains(a.View(), "Update Task"))

	send(a, typed(" twice"), enter)
	after, err := a.store.Get(2)
	is.NoErr(err)
	is.Equal(after.Title, "Walk dog twice")
	is.Equal(after.StartDate, before.StartDate)
	is.True(after.UpdateDate.After(before.UpdateDate))
	is.True(!a.store.State().Editing())
	is.True(strings.Contains(a.View(), "Add Task"))
	is.Equal(len(a.store.State().Tasks), 2)
}

func TestApp_TableKeys(t *testing.T) {
	is := is.New(t)
	a, _ := testApp(t)
	addTask(a, "Buy milk")
	addTask(a, "Walk dog")
	send(a, esc)

	t.Run("status", func(t *testing.T) {
		is := is.New(t)
		send(a, typed("s"))
		got, _ := a.store.Get(1)
		is.Equal(got.Status, task.Completed)

		send(a, typed("p"))
		got, _ = a.store.Get(1)
		is.Equal(got.Status, task.Pending)

		send(a, typed("j"), typed("c"))
		got, _ = a.store.Get(2)
		is.Equal(got.Status, task.Completed)
	})

	t.Run("details", func(t *testing.T) {
		is := is.New(t)
		send(a, enter)
		got, _ := a.store.Get(2)
		is.True(got.ShowDescription)
		is.True(strings.Contains(a.View(), "Last Updated:"))

		send(a, typed("d"))
		got, _ = a.store.Get(2)
		is.True(!got.ShowDescription)
	})

	t.Run("cursor stays in range", func(t *testing.T) {
		is := is.New(t)
		send(a, typed("G"), typed("j"), typed("j"))
		is.Equal(a.cursor, 1)
		send(a, typed("g"), typed("k"))
		is.Equal(a.cursor, 0)
	})
	is.Equal(len(a.store.State().Tasks), 2)
}

func TestApp_Search(t *testing.T) {
	is := is.New(t)
	a, _ := testApp(t)
	addTask(a, "Write Docs")
	addTask(a, "docs review")
	addTask(a, "Ship")

	send(a, tab, tab)
	is.Equal(a.focus, focusSearch)
	send(a, typed("DOC"))
	is.Equal(a.store.State().Query, "DOC")
	is.Equal(len(a.visible), 2)
	is.Equal(a.visible[0].Title, "Write Docs")
	is.Equal(a.visible[1].Title, "docs review")
	is.True(!strings.Contains(a.View(), "Ship"))

	// actions on the filtered table hit the right task
	send(a, enter, typed("j"), typed("s"))
	is.Equal(a.focus, focusTable)
	got, _ := a.store.Get(2)
	is.Equal(got.Status, task.Completed)

	send(a, tab, tab, tab, key(tea.KeyBackspace), key(tea.KeyBackspace), key(tea.KeyBackspace))
	is.Equal(a.store.State().Query, "")
	is.Equal(len(a.visible), 3)
}

func TestApp_Quit(t *testing.T) {
	is := is.New(t)
	a, _ := testApp(t)

	_, cmd := a.Update(key(tea.KeyCtrlC))
	is.True(cmd != nil)
	is.Equal(cmd(), tea.Quit())

	// q is typed into the form, and only quits from the table
	a.Update(typed("q"))
	is.Equal(a.title.Value(), "q")
	send(a, esc)
	_, cmd = a.Update(typed("q"))
	is.Equal(cmd(), tea.Quit())
}
