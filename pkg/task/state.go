package task

import (
	"strings"
	"time"
)

// Draft holds the form values that have not been submitted yet
type Draft struct {
	Title       string
	Description string
	Status      Status
}

// State is everything the todo view knows about.
// It is a plain value: Reduce returns a new State and never writes into the
// one it was given, so older states stay valid after an update.
type State struct {
	Tasks  []Task
	EditID ID
	Draft  Draft
	Query  string

	// NextID is the id the next created task receives.
	// It only ever grows, so ids are not reused if tasks are ever removed.
	NextID ID
}

func NewState() State {
	return State{
		Draft:  Draft{Status: Pending},
		NextID: 1,
	}
}

// Editing reports whether a submit updates an existing task instead of creating one
func (s State) Editing() bool {
	return s.EditID != NoID
}

func (s State) Find(id ID) (Task, bool) {
	i := s.index(id)
	if i < 0 {
		return Task{}, false
	}
	return s.Tasks[i], true
}

func (s State) index(id ID) int {
	for i, t := range s.Tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Visible returns the tasks whose title contains the search query, ignoring case.
// The order of s.Tasks is kept and an empty query matches every task.
func (s State) Visible() []Task {
	query := strings.ToLower(s.Query)
	out := make([]Task, 0, len(s.Tasks))
	for _, t := range s.Tasks {
		if strings.Contains(strings.ToLower(t.Title), query) {
			out = append(out, t)
		}
	}
	return out
}

// update copies the task list, applies fn to the task with the given id and
// returns the new list. ok is false when no task matches.
func (s State) update(id ID, fn func(*Task)) (tasks []Task, ok bool) {
	i := s.index(id)
	if i < 0 {
		return s.Tasks, false
	}
	tasks = make([]Task, len(s.Tasks))
	copy(tasks, s.Tasks)
	fn(&tasks[i])
	return tasks, true
}

type Action interface {
	apply(State) State
}

// Reduce applies a to s and returns the resulting state
func Reduce(s State, a Action) State {
	if a == nil {
		return s
	}
	return a.apply(s)
}

// SubmitDraft commits the draft: it updates the task being edited or appends a new one
type SubmitDraft struct {
	At time.Time
}

func (a SubmitDraft) apply(s State) State {
	if strings.TrimSpace(s.Draft.Title) == "" {
		return s
	}
	if s.Editing() {
		// a missing target still leaves edit mode, nothing else changes
		s.Tasks, _ = s.update(s.EditID, func(t *Task) {
			t.Title = s.Draft.Title
			t.Description = s.Draft.Description
			t.UpdateDate = a.At
		})
		s.EditID = NoID
	} else {
		tasks := make([]Task, len(s.Tasks), len(s.Tasks)+1)
		copy(tasks, s.Tasks)
		s.Tasks = append(tasks, Task{
			ID:          s.NextID,
			Title:       s.Draft.Title,
			Description: s.Draft.Description,
			StartDate:   a.At,
			UpdateDate:  a.At,
			Status:      s.Draft.Status,
		})
		s.NextID++
	}
	s.Draft.Title = ""
	s.Draft.Description = ""
	return s
}

// BeginEdit loads a task into the draft and switches to edit mode
type BeginEdit struct {
	Task Task
}

func (a BeginEdit) apply(s State) State {
	s.Draft.Title = a.Task.Title
	s.Draft.Description = a.Task.Description
	s.EditID = a.Task.ID
	return s
}

type ToggleDescription struct {
	ID ID
}

func (a ToggleDescription) apply(s State) State {
	s.Tasks, _ = s.update(a.ID, func(t *Task) {
		t.ShowDescription = !t.ShowDescription
	})
	return s
}

// SetStatus sets the status of a task. The status is not validated.
type SetStatus struct {
	ID     ID
	Status Status
}

func (a SetStatus) apply(s State) State {
	s.Tasks, _ = s.update(a.ID, func(t *Task) {
		t.Status = a.Status
	})
	return s
}

type SetSearchQuery struct {
	Query string
}

func (a SetSearchQuery) apply(s State) State {
	s.Query = a.Query
	return s
}

type SetDraftTitle struct {
	Title string
}

func (a SetDraftTitle) apply(s State) State {
	s.Draft.Title = a.Title
	return s
}

type SetDraftDescription struct {
	Description string
}

func (a SetDraftDescription) apply(s State) State {
	s.Draft.Description = a.Description
	return s
}

// SetDraftStatus picks the status new tasks are created with
type SetDraftStatus struct {
	Status Status
}

func (a SetDraftStatus) apply(s State) State {
	s.Draft.Status = a.Status
	return s
}
