package rest

import (
	"net/http"

	"driverStamps/business/loyaltycard"
	"driverStamps/internal/view"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// LoyaltyCardHandler shows the card for whatever count the caller passes.
// It never reads the backend.
type LoyaltyCardHandler struct {
	validator *validator.Validate
}

func NewLoyaltyCardHandler() *LoyaltyCardHandler {
	return &LoyaltyCardHandler{
		validator: validator.New(),
	}
}

type LoyaltyCardQuery struct {
	Stamps  int  `query:"stamps" validate:"min=0,max=1000"`
	Loading bool `query:"loading"`
}

func (h *LoyaltyCardHandler) bind(c echo.Context) (LoyaltyCardQuery, error) {
	var q LoyaltyCardQuery
	if err := c.Bind(&q); err != nil {
		return q, err
	}
	return q, h.validator.Struct(&q)
}

func (h *LoyaltyCardHandler) Page(c echo.Context) error {
	q, err := h.bind(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.Render(http.StatusOK, view.LoyaltyCardPage, loyaltycard.Render(q.Stamps, q.Loading))
}

func (h *LoyaltyCardHandler) View(c echo.Context) error {
	q, err := h.bind(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(loyaltycard.Render(q.Stamps, q.Loading)))
}
