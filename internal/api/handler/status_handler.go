package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/gemstack/inventory-system/internal/core/domain"
	"github.com/gemstack/inventory-system/internal/core/ports"
)

const statusListLimit = 1000

type StatusHandler struct {
	repo ports.StatusRepository
}

func NewStatusHandler(repo ports.StatusRepository) *StatusHandler {
	return &StatusHandler{repo: repo}
}

type createStatusRequest struct {
	ClientName string `json:"client_name" validate:"required"`
}

// Create records a client heartbeat.
//
// @Summary      Record a status check
// @Tags         status
// @Accept       json
// @Produce      json
// @Param        body  body      createStatusRequest  true  "Client name"
// @Success      201   {object}  domain.StatusCheck
// @Router       /api/status [post]
func (h *StatusHandler) Create(c echo.Context) error {
	var req createStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	check := &domain.StatusCheck{
		ID:         uuid.NewString(),
		ClientName: req.ClientName,
		Timestamp:  time.Now().UTC(),
	}
	if err := h.repo.Insert(c.Request().Context(), check); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, check)
}

// List returns recent status checks.
//
// @Summary      List status checks
// @Tags         status
// @Produce      json
// @Success      200  {array}  domain.StatusCheck
// @Router       /api/status [get]
func (h *StatusHandler) List(c echo.Context) error {
	checks, err := h.repo.List(c.Request().Context(), statusListLimit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, checks)
}
