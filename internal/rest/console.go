package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"driverStamps/business/console"
	"driverStamps/business/stamp"
	"driverStamps/domain"
	"driverStamps/internal/middleware"
	"driverStamps/internal/view"
	"driverStamps/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type ConsoleSessions interface {
	GetOrCreate(ctx context.Context, id string) *console.Console
}

type ConsoleHandler struct {
	sessions  ConsoleSessions
	validator *validator.Validate
	timeout   time.Duration
	appName   string
}

func NewConsoleHandler(sessions ConsoleSessions, appName string, timeout time.Duration) *ConsoleHandler {
	return &ConsoleHandler{
		sessions:  sessions,
		validator: validator.New(),
		timeout:   timeout,
		appName:   appName,
	}
}

type ConsoleQueryRequest struct {
	Query string `json:"query" validate:"max=100"`
}

type ConsoleSelectRequest struct {
	Index *int `json:"index" validate:"required,min=0"`
}

// Buttons 1 to 5 assign stamps, 6 redeems the reward.
type ConsoleStampsRequest struct {
	Count int `json:"count" validate:"required,oneof=1 2 3 4 5 6"`
}

type driverPage struct {
	AppName      string
	State        console.State
	StampButtons []int
	RewardCount  int
}

func (h *ConsoleHandler) console(ctx context.Context, c echo.Context) *console.Console {
	return h.sessions.GetOrCreate(ctx, middleware.SessionID(c))
}

func (h *ConsoleHandler) Page(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	con := h.console(ctx, c)

	return c.Render(http.StatusOK, view.DriverPage, driverPage{
		AppName:      h.appName,
		State:        con.Snapshot(),
		StampButtons: []int{1, 2, 3, 4, 5},
		RewardCount:  domain.RewardThreshold,
	})
}

func (h *ConsoleHandler) State(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	return c.JSON(http.StatusOK, h.console(ctx, c).Snapshot())
}

func (h *ConsoleHandler) Query(c echo.Context) error {
	var req ConsoleQueryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid request body"})
	}
	if err := h.validator.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	h.console(ctx, c).Type(req.Query)

	return c.NoContent(http.StatusNoContent)
}

func (h *ConsoleHandler) Select(c echo.Context) error {
	var req ConsoleSelectRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid request body"})
	}
	if err := h.validator.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	match, err := h.console(ctx, c).Select(*req.Index)
	if err != nil {
		if errors.Is(err, console.ErrNoSuchResult) {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(match))
}

func (h *ConsoleHandler) Clear(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	h.console(ctx, c).Clear()

	return c.NoContent(http.StatusNoContent)
}

func (h *ConsoleHandler) AssignStamps(c echo.Context) error {
	var req ConsoleStampsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid request body"})
	}
	if err := h.validator.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	result, err := h.console(ctx, c).AssignStamps(ctx, req.Count)
	if err != nil {
		switch {
		case errors.Is(err, stamp.ErrPhoneTooShort):
			return c.JSON(http.StatusUnprocessableEntity, ResponseError{Message: console.AlertPhoneTooShort})
		case errors.Is(err, console.ErrAssignmentInFlight):
			return c.JSON(http.StatusConflict, ResponseError{Message: err.Error()})
		default:
			logger.Error("Failed to assign stamps from console", "session_id", middleware.SessionID(c), "error", err)
			return c.JSON(http.StatusBadGateway, ResponseError{Message: console.AlertFailed})
		}
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(result))
}

func (h *ConsoleHandler) Refresh(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	h.console(ctx, c).Refresh(ctx)

	return c.NoContent(http.StatusNoContent)
}
