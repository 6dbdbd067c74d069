// internal/handlers/inventory_item.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gpstracker/inventory-backend/internal/models"
	"github.com/gpstracker/inventory-backend/internal/repository"
	"github.com/gpstracker/inventory-backend/internal/services"
	"github.com/gpstracker/inventory-backend/internal/utils"
)

type InventoryItemHandler struct {
	inventory *services.InventoryService
}

func NewInventoryItemHandler(inventory *services.InventoryService) *InventoryItemHandler {
	return &InventoryItemHandler{inventory: inventory}
}

// POST /inventory-items
func (h *InventoryItemHandler) CreateItem(c *gin.Context) {
	req, ok := bindItemRequest(c)
	if !ok {
		return
	}

	item, err := h.inventory.CreateItem(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"item": item,
	})
}

// GET /inventory-items/:id
func (h *InventoryItemHandler) GetItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid item ID", nil)
		return
	}

	item, err := h.inventory.GetItemByID(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"item": item,
	})
}

// GET /inventory-items/imei/:imei
func (h *InventoryItemHandler) GetItemByImei(c *gin.Context) {
	item, err := h.inventory.GetItemByImei(c.Request.Context(), c.Param("imei"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"item": item,
	})
}

// GET /inventory-items/iccid/:iccid
func (h *InventoryItemHandler) GetItemByIccid(c *gin.Context) {
	item, err := h.inventory.GetItemByIccid(c.Request.Context(), c.Param("iccid"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"item": item,
	})
}

// GET /inventory-items/serial/:serialNumber
func (h *InventoryItemHandler) GetItemBySerialNumber(c *gin.Context) {
	item, err := h.inventory.GetItemBySerialNumber(c.Request.Context(), c.Param("serialNumber"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"item": item,
	})
}

// GET /inventory-items?product_id=&status=
func (h *InventoryItemHandler) GetItems(c *gin.Context) {
	var filter repository.ItemFilter

	if productIDStr := c.Query("product_id"); productIDStr != "" {
		productID, err := uuid.Parse(productIDStr)
		if err != nil {
			utils.BadRequestResponse(c, "Invalid product_id filter", nil)
			return
		}
		filter.ProductID = &productID
	}

	if statusStr := c.Query("status"); statusStr != "" {
		status := models.ItemStatus(statusStr)
		if !status.Valid() {
			utils.BadRequestResponse(c, "Invalid status filter", nil)
			return
		}
		filter.Status = &status
	}

	items, err := h.inventory.ListItems(c.Request.Context(), filter)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"items": items,
	})
}

// GET /inventory-items/count?product_id=&status=
func (h *InventoryItemHandler) CountItems(c *gin.Context) {
	productID, err := uuid.Parse(c.Query("product_id"))
	if err != nil {
		utils.BadRequestResponse(c, "product_id is required and must be a valid ID", nil)
		return
	}

	status := models.ItemStatus(c.Query("status"))
	if !status.Valid() {
		utils.BadRequestResponse(c, "status is required and must be a valid inventory status", nil)
		return
	}

	count, err := h.inventory.CountByProductAndStatus(c.Request.Context(), productID, status)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"product_id": productID,
		"status":     status,
		"count":      count,
	})
}

// PUT /inventory-items/:id
func (h *InventoryItemHandler) UpdateItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid item ID", nil)
		return
	}

	req, ok := bindItemRequest(c)
	if !ok {
		return
	}

	item, err := h.inventory.UpdateItem(c.Request.Context(), id, req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"item": item,
	})
}

// DELETE /inventory-items/:id
func (h *InventoryItemHandler) DeleteItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid item ID", nil)
		return
	}

	if err := h.inventory.DeleteItem(c.Request.Context(), id); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": "Inventory item deleted",
	})
}

func bindItemRequest(c *gin.Context) (*services.ItemRequest, bool) {
	var req services.ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return nil, false
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return nil, false
	}

	return &req, true
}
