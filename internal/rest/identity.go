package rest

import (
	"context"
	"net/http"
	"time"

	"driverStamps/domain"
	"driverStamps/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type IdentityService interface {
	Search(ctx context.Context, query string) ([]domain.IdentityMatch, error)
}

type IdentityHandler struct {
	identityService IdentityService
	validator       *validator.Validate
	timeout         time.Duration
}

func NewIdentityHandler(identityService IdentityService, timeout time.Duration) *IdentityHandler {
	return &IdentityHandler{
		identityService: identityService,
		validator:       validator.New(),
		timeout:         timeout,
	}
}

type IdentitySearchQuery struct {
	Q string `query:"q" validate:"required,max=100"`
}

func (h *IdentityHandler) Search(c echo.Context) error {
	var q IdentitySearchQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validator.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	matches, err := h.identityService.Search(ctx, q.Q)
	if err != nil {
		logger.Error("Failed to search identities", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}
	if matches == nil {
		matches = []domain.IdentityMatch{}
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(matches))
}
