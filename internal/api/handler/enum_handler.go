package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskvault/todo-api/internal/core/domain"
)

// EnumHandler serves the fixed enumeration value lists.
type EnumHandler struct{}

func NewEnumHandler() *EnumHandler {
	return &EnumHandler{}
}

// Statuses handles GET /status.
//
// @Summary      List task statuses
// @Tags         status
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  string
// @Router       /status [get]
func (h *EnumHandler) Statuses(c echo.Context) error {
	return c.JSON(http.StatusOK, domain.Statuses())
}

// Priorities handles GET /prioridade, most urgent first.
//
// @Summary      List task priorities
// @Tags         prioridade
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  string
// @Router       /prioridade [get]
func (h *EnumHandler) Priorities(c echo.Context) error {
	return c.JSON(http.StatusOK, domain.Priorities())
}
