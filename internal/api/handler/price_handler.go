package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gemstack/inventory-system/internal/api/metrics"
	"github.com/gemstack/inventory-system/internal/core/ports"
)

type PriceHandler struct {
	prices ports.PriceService
}

func NewPriceHandler(prices ports.PriceService) *PriceHandler {
	return &PriceHandler{prices: prices}
}

type updatePricesRequest struct {
	GoldPrice     float64 `json:"gold_price" validate:"gte=0"`
	SilverPrice   float64 `json:"silver_price" validate:"gte=0"`
	PlatinumPrice float64 `json:"platinum_price" validate:"gte=0"`
}

// Latest returns the current metal prices.
//
// @Summary      Current metal prices
// @Tags         prices
// @Produce      json
// @Success      200  {object}  domain.MetalPrice
// @Router       /api/metal-prices [get]
func (h *PriceHandler) Latest(c echo.Context) error {
	price, err := h.prices.Latest(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, price)
}

// Update records a new metal price quote. Admin only.
//
// @Summary      Update metal prices
// @Tags         prices
// @Accept       json
// @Produce      json
// @Param        body  body      updatePricesRequest  true  "New prices"
// @Success      200   {object}  domain.MetalPrice
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /api/metal-prices [put]
func (h *PriceHandler) Update(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req updatePricesRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	price, err := h.prices.Update(c.Request().Context(), ports.UpdatePricesInput{
		GoldPrice:     req.GoldPrice,
		SilverPrice:   req.SilverPrice,
		PlatinumPrice: req.PlatinumPrice,
		UpdatedBy:     user.Username,
	})
	if err != nil {
		return err
	}

	metrics.PriceUpdatesTotal.Inc()
	return c.JSON(http.StatusOK, price)
}
