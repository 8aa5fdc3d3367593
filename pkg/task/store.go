package task

import (
	"errors"
	"strings"
	"time"
)

type StoreManager interface {
	SubmitDraft() (Task, error)
	BeginEdit(Task)
	ToggleDescription(ID) error
	SetStatus(ID, Status) error
	SetSearchQuery(string)

	SetDraftTitle(string)
	SetDraftDescription(string)
	SetDraftStatus(Status)

	State() State
	Get(ID) (Task, error)
	VisibleTasks() []Task
}

var _ StoreManager = &Store{}

var (
	ErrEmptyTitle = errors.New("title is empty")
	ErrNotFound   = errors.New("not found")
)

// Store owns the todo state and applies actions to it.
// Operations that decline return an error and leave the state as it was,
// apart from SubmitDraft on a vanished edit target.
type Store struct {
	state State
	now   func() time.Time
}

func NewStore() *Store {
	return NewStoreWithClock(time.Now)
}

// NewStoreWithClock creates a store that timestamps tasks using now
func NewStoreWithClock(now func() time.Time) *Store {
	return &Store{
		state: NewState(),
		now:   now,
	}
}

func (s *Store) dispatch(a Action) {
	s.state = Reduce(s.state, a)
}

func (s *Store) State() State {
	return s.state
}

// SubmitDraft creates a task from the draft, or updates the task being edited.
// It returns the created/updated task. If the edited task no longer exists the
// store still leaves edit mode and clears the draft, and ErrNotFound is returned.
func (s *Store) SubmitDraft() (Task, error) {
	if strings.TrimSpace(s.state.Draft.Title) == "" {
		return Task{}, ErrEmptyTitle
	}
	id := s.state.NextID
	if s.state.Editing() {
		id = s.state.EditID
	}
	s.dispatch(SubmitDraft{At: s.now()})
	t, ok := s.state.Find(id)
	if !ok {
		return Task{}, ErrNotFound
	}
	return t, nil
}

func (s *Store) BeginEdit(t Task) {
	s.dispatch(BeginEdit{Task: t})
}

func (s *Store) ToggleDescription(id ID) error {
	if _, ok := s.state.Find(id); !ok {
		return ErrNotFound
	}
	s.dispatch(ToggleDescription{ID: id})
	return nil
}

func (s *Store) SetStatus(id ID, status Status) error {
	if _, ok := s.state.Find(id); !ok {
		return ErrNotFound
	}
	s.dispatch(SetStatus{ID: id, Status: status})
	return nil
}

func (s *Store) SetSearchQuery(q string) {
	s.dispatch(SetSearchQuery{Query: q})
}

func (s *Store) SetDraftTitle(title string) {
	s.dispatch(SetDraftTitle{Title: title})
}

func (s *Store) SetDraftDescription(desc string) {
	s.dispatch(SetDraftDescription{Description: desc})
}

func (s *Store) SetDraftStatus(status Status) {
	s.dispatch(SetDraftStatus{Status: status})
}

func (s *Store) Get(id ID) (Task, error) {
	t, ok := s.state.Find(id)
	if !ok {
		return Task{}, ErrNotFound
	}
	return t, nil
}

func (s *Store) VisibleTasks() []Task {
	return s.state.Visible()
}
