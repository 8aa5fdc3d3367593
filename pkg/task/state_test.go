package task

import (
	"testing"
	"time"

	"github.com/matryer/is"
)

func TestReduce_DoesNotMutateInput(t *testing.T) {
	is := is.New(t)
	at := time.Date(2021, time.April, 21, 9, 0, 0, 0, time.UTC)

	s := NewState()
	s = Reduce(s, SetDraftTitle{Title: "Buy milk"})
	s = Reduce(s, SubmitDraft{At: at})
	s = Reduce(s, SetDraftTitle{Title: "Walk dog"})
	s = Reduce(s, SubmitDraft{At: at})

	before := s
	snapshot := append([]Task(nil), s.Tasks...)

	actions := []Action{
		SetStatus{ID: 1, Status: Completed},
		ToggleDescription{ID: 2},
		BeginEdit{Task: s.Tasks[0]},
		SetSearchQuery{Query: "milk"},
		SetDraftTitle{Title: "Buy bread"},
		SubmitDraft{At: at.Add(time.Hour)},
	}
	for _, a := range actions {
		Reduce(s, a)
	}
	is.Equal(s, before)
	is.Equal(s.Tasks, snapshot)

	// chaining the same actions does change the result
	next := s
	for _, a := range actions {
		next = Reduce(next, a)
	}
	is.Equal(next.Tasks[0].Status, Completed)
	is.True(next.Tasks[1].ShowDescription)
	is.Equal(s.Tasks[0].Status, Pending)
	is.True(!s.Tasks[1].ShowDescription)
}

func TestReduce_SubmitAppendsWithoutAliasing(t *testing.T) {
	is := is.New(t)
	at := time.Now()

	// leave spare capacity so a careless append would write into it
	s := NewState()
	s.Tasks = make([]Task, 0, 4)
	s = Reduce(s, SetDraftTitle{Title: "a"})
	base := Reduce(s, SubmitDraft{At: at})

	left := Reduce(Reduce(base, SetDraftTitle{Title: "left"}), SubmitDraft{At: at})
	right := Reduce(Reduce(base, SetDraftTitle{Title: "right"}), SubmitDraft{At: at})

	is.Equal(titles(left.Tasks), []string{"a", "left"})
	is.Equal(titles(right.Tasks), []string{"a", "right"})
	is.Equal(len(base.Tasks), 1)
}

func TestReduce_IDsAreMonotonic(t *testing.T) {
	is := is.New(t)
	s := NewState()
	// a list that does not start at one, as after removals
	s.Tasks = []Task{{ID: 7, Title: "seven", Status: Pending}}
	s.NextID = 8

	s = Reduce(s, SetDraftTitle{Title: "eight"})
	s = Reduce(s, SubmitDraft{At: time.Now()})
	is.Equal(s.Tasks[1].ID, ID(8))
	is.Equal(s.NextID, ID(9))
}

func TestReduce_SubmitForMissingEditTarget(t *testing.T) {
	is := is.New(t)
	s := NewState()
	s = Reduce(s, BeginEdit{Task: Task{ID: 5, Title: "ghost"}})
	s = Reduce(s, SubmitDraft{At: time.Now()})

	is.Equal(len(s.Tasks), 0)
	is.True(!s.Editing())
	is.Equal(s.Draft.Title, "")
}

func TestReduce_Nil(t *testing.T) {
	is := is.New(t)
	s := NewState()
	is.Equal(Reduce(s, nil), s)
}

func TestStatus_Next(t *testing.T) {
	tests := []struct {
		in   Status
		want Status
	}{
		{Pending, Completed},
		{Completed, Pending},
		{Status("Unknown"), Pending},
	}
	for _, tt := range tests {
		t.Run(string(tt.in), func(t *testing.T) {
			is := is.New(t)
			is.Equal(tt.in.Next(), tt.want)
		})
	}
}
