package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskvault/todo-api/internal/core/domain"
	"github.com/taskvault/todo-api/internal/core/ports"
)

// TaskService implements task management. Writes follow a fixed order:
// enum validation, existence checks, policy, then persistence — so every
// rejection happens before the first mutation.
type TaskService struct {
	tasks ports.TaskRepository
	users ports.UserRepository
	log   zerolog.Logger
}

func NewTaskService(tasks ports.TaskRepository, users ports.UserRepository, log zerolog.Logger) *TaskService {
	return &TaskService{tasks: tasks, users: users, log: log}
}

// List returns the caller's visible tasks. Administrators see everything
// ordered by owner then priority rank; everyone else sees only their own
// tasks ordered by priority rank.
func (s *TaskService) List(ctx context.Context, caller *domain.User) ([]*domain.Task, error) {
	var (
		tasks []*domain.Task
		err   error
	)
	if caller.IsAdmin() {
		tasks, err = s.tasks.ListAll(ctx)
	} else {
		tasks, err = s.tasks.ListByOwner(ctx, caller.ID)
	}
	if err != nil {
		return nil, err
	}

	sortTasks(tasks, caller.IsAdmin())
	return tasks, nil
}

// sortTasks orders by priority rank, grouping by owner first when byOwner
// is set. The sort is stable so equal-rank tasks keep insertion order.
func sortTasks(tasks []*domain.Task, byOwner bool) {
	sort.SliceStable(tasks, func(i, j int) bool {
		if byOwner && tasks[i].OwnerID != tasks[j].OwnerID {
			return tasks[i].OwnerID < tasks[j].OwnerID
		}
		return tasks[i].Priority.Rank() < tasks[j].Priority.Rank()
	})
}

// Get returns one task. Absence wins over authorization here: a missing id
// is 404 for everyone, matching the listing the caller could already see.
func (s *TaskService) Get(ctx context.Context, caller *domain.User, id string) (*domain.Task, error) {
	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanViewTask(caller, task.OwnerID) {
		return nil, domain.ErrForbidden
	}
	return task, nil
}

// Create inserts a new task. The owner is forced to the caller; a supplied
// usuario_id is only honored for administrators, and the named user must
// exist.
func (s *TaskService) Create(ctx context.Context, caller *domain.User, in ports.TaskInput) (*domain.Task, error) {
	status, priority, err := parseEnums(in)
	if err != nil {
		return nil, err
	}

	ownerID := caller.ID
	if caller.IsAdmin() && in.OwnerID != "" {
		if err := s.ownerExists(ctx, in.OwnerID); err != nil {
			return nil, err
		}
		ownerID = in.OwnerID
	}

	now := time.Now().UTC()
	task := &domain.Task{
		Title:       in.Title,
		Description: in.Description,
		Status:      status,
		Priority:    priority,
		OwnerID:     ownerID,
		CreatedAt:   now,
	}
	if status == domain.StatusDone {
		task.CompletedAt = &now
	}

	created, err := s.tasks.Create(ctx, task)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("task_id", created.ID).Str("owner_id", ownerID).Msg("task created")
	return created, nil
}

// Update rewrites a task. Moving into concluída stamps the completion time
// once; moving out clears it; staying concluída keeps the original stamp.
func (s *TaskService) Update(ctx context.Context, caller *domain.User, id string, in ports.TaskInput) (*domain.Task, error) {
	status, priority, err := parseEnums(in)
	if err != nil {
		return nil, err
	}

	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	newOwnerID := in.OwnerID
	if newOwnerID == "" {
		newOwnerID = task.OwnerID
	}
	if err := s.ownerExists(ctx, newOwnerID); err != nil {
		return nil, err
	}

	if !domain.CanUpdateTask(caller, task.OwnerID, newOwnerID) {
		return nil, domain.ErrForbidden
	}

	task.Title = in.Title
	task.Description = in.Description
	task.Priority = priority
	task.OwnerID = newOwnerID

	switch {
	case status == domain.StatusDone && task.CompletedAt == nil:
		now := time.Now().UTC()
		task.CompletedAt = &now
	case status != domain.StatusDone:
		task.CompletedAt = nil
	}
	task.Status = status

	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}

	s.log.Info().Str("task_id", task.ID).Msg("task updated")
	return task, nil
}

// Delete removes a task owned by the caller, or any task for an admin.
func (s *TaskService) Delete(ctx context.Context, caller *domain.User, id string) error {
	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !domain.CanDeleteTask(caller, task.OwnerID) {
		return domain.ErrForbidden
	}

	if err := s.tasks.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Str("task_id", id).Msg("task deleted")
	return nil
}

func parseEnums(in ports.TaskInput) (domain.Status, domain.Priority, error) {
	status := domain.Status(in.Status)
	if !status.Valid() {
		return "", "", domain.ErrInvalidStatus
	}
	priority := domain.Priority(in.Priority)
	if !priority.Valid() {
		return "", "", domain.ErrInvalidPriority
	}
	return status, priority, nil
}

// ownerExists maps a missing referenced user to ErrOwnerNotFound so the API
// can answer 422 instead of 404 (the task route resource is the task).
func (s *TaskService) ownerExists(ctx context.Context, ownerID string) error {
	_, err := s.users.FindByID(ctx, ownerID)
	if errors.Is(err, domain.ErrUserNotFound) {
		return domain.ErrOwnerNotFound
	}
	return err
}
