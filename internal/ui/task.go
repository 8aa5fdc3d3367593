package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/td0m/tasklist/pkg/task"
)

// column widths of the task table
const (
	TitleWidth   = 24
	DateWidth    = 24
	ActionWidth  = 12
	StatusWidth  = 14
	DetailsWidth = 7
)

var (
	Header       = lipgloss.NewStyle().Bold(true).Foreground(Primary).Padding(0, 1)
	Label        = lipgloss.NewStyle().Foreground(Secondary)
	FocusedLabel = lipgloss.NewStyle().Foreground(Primary).Bold(true)

	TaskTitle = lipgloss.NewStyle().Bold(true)
	TaskDate  = lipgloss.NewStyle().Foreground(Secondary)

	TableHeader = lipgloss.NewStyle().Bold(true).Foreground(Secondary).Underline(true)

	button       = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	updateButton = lipgloss.NewStyle().Foreground(Orange)
	badge        = lipgloss.NewStyle().Foreground(Primary).Padding(0, 1)
	toggle       = lipgloss.NewStyle().Foreground(Secondary)

	panel      = lipgloss.NewStyle().Background(Panel).Padding(0, 1).MarginLeft(2)
	panelLabel = lipgloss.NewStyle().Bold(true)
)

// SubmitLabel is the text of the form's submit control
func SubmitLabel(editing bool) string {
	if editing {
		return "Update Task"
	}
	return "Add Task"
}

func SubmitButton(editing bool) string {
	return button.Render("[ " + SubmitLabel(editing) + " ]")
}

// StatusColor is the background of the status selector: warning while pending, success once completed
func StatusColor(s task.Status) lipgloss.Color {
	if s == task.Pending {
		return Warning
	}
	return Success
}

func StatusBadge(s task.Status) string {
	return badge.Background(StatusColor(s)).Render(string(s) + " ▾")
}

// pad fills s up to width cells
func pad(width int, s string) string {
	return lipgloss.NewStyle().Width(width).Render(s)
}

// cell fits plain text into a column, leaving one cell of spacing
func cell(width int, s string) string {
	return pad(width, truncate(s, width-1))
}

// truncate shortens s to at most n cells, ending it with an ellipsis when cut
func truncate(s string, n int) string {
	// newlines would break the row apart
	s = strings.ReplaceAll(s, "\n", " ")
	if lipgloss.Width(s) <= n {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r))+1 > n {
		r = r[:len(r)-1]
	}
	return string(r) + "…"
}

// TableHeaderRow renders the column headings of the task table
func TableHeaderRow() string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		"  ",
		pad(TitleWidth, TableHeader.Render("Task Title")),
		pad(DateWidth, TableHeader.Render("Start Date")),
		pad(DateWidth, TableHeader.Render("Updated Date")),
		pad(ActionWidth, TableHeader.Render("Edit/Update")),
		pad(StatusWidth, TableHeader.Render("Task Status")),
		pad(DetailsWidth, TableHeader.Render("Details")),
	)
}

// FormatDate prints a task timestamp with the given layout
func FormatDate(t time.Time, layout string) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(layout)
}

// TaskRow renders one task, followed by its description panel when expanded
func TaskRow(t task.Task, selected bool, layout string) string {
	cursor := "  "
	title := TaskTitle
	if selected {
		cursor = "> "
		title = title.Background(Faded)
	}
	details := "▼"
	if t.ShowDescription {
		details = "▲"
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top,
		cursor,
		title.Render(cell(TitleWidth, t.Title)),
		TaskDate.Render(cell(DateWidth, FormatDate(t.StartDate, layout))),
		TaskDate.Render(cell(DateWidth, FormatDate(t.UpdateDate, layout))),
		pad(ActionWidth, updateButton.Render("[Update]")),
		pad(StatusWidth, StatusBadge(t.Status)),
		pad(DetailsWidth, toggle.Render(details)),
	)
	if !t.ShowDescription {
		return row
	}
	return row + "\n" + DescriptionPanel(t, layout)
}

// DescriptionPanel renders the expanded details of a task
func DescriptionPanel(t task.Task, layout string) string {
	return panel.Render(
		panelLabel.Render("Description:") + " " + t.Description + "\n" +
			panelLabel.Render("Last Updated:") + " " + FormatDate(t.UpdateDate, layout),
	)
}
