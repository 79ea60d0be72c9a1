package domain

import (
	"errors"
	"time"
)

// Status represents the lifecycle state of a task.
type Status string

const (
	StatusPending    Status = "pendente"
	StatusInProgress Status = "em andamento"
	StatusDone       Status = "concluída"
)

// Valid reports whether s is a member of the closed status set.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// Statuses returns every status value, in declaration order. Used by the
// enumeration listing endpoint.
func Statuses() []Status {
	return []Status{StatusPending, StatusInProgress, StatusDone}
}

// Priority represents how urgent a task is.
type Priority string

const (
	PriorityHigh   Priority = "alta"
	PriorityMedium Priority = "média"
	PriorityLow    Priority = "baixa"
)

// Valid reports whether p is a member of the closed priority set.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Rank is the ordering key for priorities: alta < média < baixa.
// Unknown values sort after every valid one.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	}
	return 4
}

// Priorities returns every priority value, most urgent first.
func Priorities() []Priority {
	return []Priority{PriorityHigh, PriorityMedium, PriorityLow}
}

var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrInvalidStatus   = errors.New("invalid status")
	ErrInvalidPriority = errors.New("invalid priority")
	ErrOwnerNotFound   = errors.New("task owner not found")
)

// Task is the core aggregate. CompletedAt is non-nil only while the task is
// in the concluída status.
type Task struct {
	ID          string     `json:"id" bson:"_id,omitempty"`
	Title       string     `json:"titulo" bson:"titulo"`
	Description string     `json:"descricao" bson:"descricao"`
	Status      Status     `json:"status" bson:"status"`
	Priority    Priority   `json:"prioridade" bson:"prioridade"`
	OwnerID     string     `json:"usuario_id" bson:"usuario_id"`
	CreatedAt   time.Time  `json:"data_insercao" bson:"data_insercao"`
	CompletedAt *time.Time `json:"data_conclusao" bson:"data_conclusao"`
}
