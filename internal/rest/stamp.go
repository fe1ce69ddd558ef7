package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"driverStamps/business/stamp"
	"driverStamps/domain"
	"driverStamps/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type StampService interface {
	AssignStamps(ctx context.Context, phone string, count int) (domain.StampAssignment, error)
}

type StampHandler struct {
	stampService StampService
	validator    *validator.Validate
	timeout      time.Duration
}

func NewStampHandler(stampService StampService, timeout time.Duration) *StampHandler {
	return &StampHandler{
		stampService: stampService,
		validator:    validator.New(),
		timeout:      timeout,
	}
}

// The stored count is not capped; anything from the threshold up is a reward.
type AssignStampsRequest struct {
	Phone string `json:"phone" validate:"required"`
	Count int    `json:"count" validate:"required,min=1"`
}

func (h *StampHandler) AssignStamps(c echo.Context) error {
	var req AssignStampsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid request body"})
	}
	if err := h.validator.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	result, err := h.stampService.AssignStamps(ctx, req.Phone, req.Count)
	if err != nil {
		if errors.Is(err, stamp.ErrPhoneTooShort) || errors.Is(err, stamp.ErrInvalidCount) {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}

		logger.Error("Failed to assign stamps", err)

		var stepErr *stamp.StepError
		if errors.As(err, &stepErr) {
			return c.JSON(http.StatusBadGateway, ResponseError{Message: "failed to " + stepErr.Step})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(result))
}
