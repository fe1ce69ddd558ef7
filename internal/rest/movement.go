package rest

import (
	"context"
	"net/http"
	"time"

	"driverStamps/domain"
	"driverStamps/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type ActivityService interface {
	Recent(ctx context.Context) (domain.ActivityFeed, error)
}

type MovementHandler struct {
	activityService ActivityService
	timeout         time.Duration
}

func NewMovementHandler(activityService ActivityService, timeout time.Duration) *MovementHandler {
	return &MovementHandler{
		activityService: activityService,
		timeout:         timeout,
	}
}

func (h *MovementHandler) Recent(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	feed, err := h.activityService.Recent(ctx)
	if err != nil {
		logger.Error("Failed to load movements", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(feed))
}
