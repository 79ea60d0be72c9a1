package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskvault/todo-api/internal/api/metrics"
	"github.com/taskvault/todo-api/internal/core/ports"
)

// TaskHandler serves the /tarefa routes. All of them run behind the guard.
type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// List handles GET /tarefa. Admins get every task grouped by owner; other
// callers get only their own. Both orderings are by priority rank.
//
// @Summary      List visible tasks
// @Tags         tarefa
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   taskResponse
// @Failure      401  {array}   map[string]string
// @Router       /tarefa [get]
func (h *TaskHandler) List(c echo.Context) error {
	caller, err := currentUser(c)
	if err != nil {
		return err
	}

	tasks, err := h.taskService.List(c.Request().Context(), caller)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTaskListResponse(tasks))
}

// Get handles GET /tarefa/:id.
//
// @Summary      Get a task by id
// @Tags         tarefa
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Task id"
// @Success      200  {object}  taskResponse
// @Failure      401  {array}   map[string]string
// @Failure      404  {array}   map[string]string
// @Router       /tarefa/{id} [get]
func (h *TaskHandler) Get(c echo.Context) error {
	caller, err := currentUser(c)
	if err != nil {
		return err
	}

	task, err := h.taskService.Get(c.Request().Context(), caller, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTaskResponse(task))
}

// Create handles POST /tarefa.
//
// @Summary      Create a task
// @Tags         tarefa
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      taskRequest  true  "Task details"
// @Success      200   {object}  taskResponse
// @Failure      401   {array}   map[string]string
// @Failure      422   {array}   map[string]string
// @Router       /tarefa [post]
func (h *TaskHandler) Create(c echo.Context) error {
	caller, err := currentUser(c)
	if err != nil {
		return err
	}

	var req taskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	task, err := h.taskService.Create(c.Request().Context(), caller, toTaskInput(req))
	if err != nil {
		return err
	}

	metrics.TasksCreatedTotal.WithLabelValues(string(task.Priority)).Inc()
	return c.JSON(http.StatusOK, toTaskResponse(task))
}

// Update handles PUT /tarefa/:id — full-field update.
//
// @Summary      Update a task
// @Tags         tarefa
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string       true  "Task id"
// @Param        body  body      taskRequest  true  "Task details"
// @Success      200   {object}  taskResponse
// @Failure      401   {array}   map[string]string
// @Failure      404   {array}   map[string]string
// @Failure      422   {array}   map[string]string
// @Router       /tarefa/{id} [put]
func (h *TaskHandler) Update(c echo.Context) error {
	caller, err := currentUser(c)
	if err != nil {
		return err
	}

	var req taskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	task, err := h.taskService.Update(c.Request().Context(), caller, c.Param("id"), toTaskInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTaskResponse(task))
}

// Delete handles DELETE /tarefa/:id — owner or admin.
//
// @Summary      Delete a task
// @Tags         tarefa
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Task id"
// @Success      200  {array}   map[string]string
// @Failure      401  {array}   map[string]string
// @Failure      404  {array}   map[string]string
// @Router       /tarefa/{id} [delete]
func (h *TaskHandler) Delete(c echo.Context) error {
	caller, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.taskService.Delete(c.Request().Context(), caller, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, []messageResponse{
		{Msg: "Tarefa excluída com sucesso.", Type: "success"},
	})
}
