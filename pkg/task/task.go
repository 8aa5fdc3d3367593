package task

import "time"

type ID int

// NoID marks the absence of a task, e.g. when the store is not editing anything
const NoID ID = 0

type Status string

const (
	Pending   Status = "Pending"
	Completed Status = "Completed"
)

// Statuses lists the recognised statuses in the order a selector shows them
var Statuses = []Status{Pending, Completed}

// Next returns the status that follows s in the selector, wrapping around
func (s Status) Next() Status {
	for i, st := range Statuses {
		if st == s {
			return Statuses[(i+1)%len(Statuses)]
		}
	}
	return Pending
}

func (s Status) Valid() bool {
	return s == Pending || s == Completed
}

type Task struct {
	ID          ID
	Title       string
	Description string

	// constants
	StartDate time.Time

	UpdateDate time.Time
	Status     Status

	// visibility properties
	ShowDescription bool
}

func (t Task) Done() bool {
	return t.Status == Completed
}
