package handler

import (
	"time"

	"github.com/taskvault/todo-api/internal/core/domain"
	"github.com/taskvault/todo-api/internal/core/ports"
)

// taskRequest is the full task payload used by both create and update.
// Status and priority membership is checked against the domain enums by the
// service; the validator only enforces presence.
type taskRequest struct {
	Title       string `json:"titulo" validate:"required"`
	Description string `json:"descricao"`
	Status      string `json:"status" validate:"required"`
	Priority    string `json:"prioridade" validate:"required"`
	OwnerID     string `json:"usuario_id"`
}

type taskResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"titulo"`
	Description string     `json:"descricao"`
	Status      string     `json:"status"`
	Priority    string     `json:"prioridade"`
	OwnerID     string     `json:"usuario_id"`
	CreatedAt   time.Time  `json:"data_insercao"`
	CompletedAt *time.Time `json:"data_conclusao"`
}

func toTaskInput(r taskRequest) ports.TaskInput {
	return ports.TaskInput{
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status,
		Priority:    r.Priority,
		OwnerID:     r.OwnerID,
	}
}

func toTaskResponse(t *domain.Task) taskResponse {
	return taskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		Priority:    string(t.Priority),
		OwnerID:     t.OwnerID,
		CreatedAt:   t.CreatedAt,
		CompletedAt: t.CompletedAt,
	}
}

func toTaskListResponse(tasks []*domain.Task) []taskResponse {
	out := make([]taskResponse, len(tasks))
	for i, t := range tasks {
		out[i] = toTaskResponse(t)
	}
	return out
}
