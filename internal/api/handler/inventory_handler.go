package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gemstack/inventory-system/internal/api/metrics"
	"github.com/gemstack/inventory-system/internal/core/domain"
	"github.com/gemstack/inventory-system/internal/core/ports"
)

type InventoryHandler struct {
	inventory ports.InventoryService
}

func NewInventoryHandler(inventory ports.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventory: inventory}
}

type createItemRequest struct {
	SKU         string  `json:"sku" validate:"required"`
	Name        string  `json:"name" validate:"required"`
	MetalType   string  `json:"metal_type" validate:"required,oneof=gold silver platinum"`
	WeightGrams float64 `json:"weight_grams" validate:"gt=0"`
	CostPrice   float64 `json:"cost_price" validate:"gte=0"`
	PhotoBase64 string  `json:"photo_base64,omitempty"`
	Description string  `json:"description,omitempty"`
}

type updateItemRequest struct {
	Name        *string  `json:"name,omitempty"`
	MetalType   *string  `json:"metal_type,omitempty" validate:"omitempty,oneof=gold silver platinum"`
	WeightGrams *float64 `json:"weight_grams,omitempty" validate:"omitempty,gt=0"`
	CostPrice   *float64 `json:"cost_price,omitempty" validate:"omitempty,gte=0"`
	PhotoBase64 *string  `json:"photo_base64,omitempty"`
	Description *string  `json:"description,omitempty"`
}

// List returns all inventory items, newest first.
//
// @Summary      List inventory
// @Tags         inventory
// @Produce      json
// @Success      200  {array}  domain.InventoryItem
// @Failure      401  {object}  map[string]string
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c echo.Context) error {
	items, err := h.inventory.ListItems(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Get returns a single inventory item by id.
//
// @Summary      Get inventory item
// @Tags         inventory
// @Produce      json
// @Param        id   path      string  true  "Item id"
// @Success      200  {object}  domain.InventoryItem
// @Failure      404  {object}  map[string]string
// @Router       /api/inventory/{id} [get]
func (h *InventoryHandler) Get(c echo.Context) error {
	item, err := h.inventory.GetItem(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// Create registers a new inventory item. Admin and manager only.
//
// @Summary      Create inventory item
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body      createItemRequest  true  "Item details"
// @Success      201   {object}  domain.InventoryItem
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/inventory [post]
func (h *InventoryHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.inventory.CreateItem(c.Request().Context(), ports.CreateItemInput{
		SKU:         req.SKU,
		Name:        req.Name,
		MetalType:   domain.MetalType(req.MetalType),
		WeightGrams: req.WeightGrams,
		CostPrice:   req.CostPrice,
		PhotoBase64: req.PhotoBase64,
		Description: req.Description,
		CreatedBy:   user.Username,
	})
	if err != nil {
		return err
	}

	metrics.ItemsCreatedTotal.WithLabelValues(string(item.MetalType)).Inc()
	return c.JSON(http.StatusCreated, item)
}

// Update applies a partial update to an item. Admin and manager only.
//
// @Summary      Update inventory item
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "Item id"
// @Param        body  body      updateItemRequest  true  "Fields to change"
// @Success      200   {object}  domain.InventoryItem
// @Failure      404   {object}  map[string]string
// @Router       /api/inventory/{id} [put]
func (h *InventoryHandler) Update(c echo.Context) error {
	var req updateItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := ports.UpdateItemInput{
		Name:        req.Name,
		WeightGrams: req.WeightGrams,
		CostPrice:   req.CostPrice,
		PhotoBase64: req.PhotoBase64,
		Description: req.Description,
	}
	if req.MetalType != nil {
		mt := domain.MetalType(*req.MetalType)
		input.MetalType = &mt
	}

	item, err := h.inventory.UpdateItem(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// Delete removes an item. Admin and manager only.
//
// @Summary      Delete inventory item
// @Tags         inventory
// @Produce      json
// @Param        id   path      string  true  "Item id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/inventory/{id} [delete]
func (h *InventoryHandler) Delete(c echo.Context) error {
	if err := h.inventory.DeleteItem(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "item deleted"})
}
