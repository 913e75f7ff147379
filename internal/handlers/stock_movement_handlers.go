package handlers

import (
	"errors"
	"net/http"

	"buildops_backend/internal/models"
	"buildops_backend/internal/services"
	"buildops_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// StockMovementHandler holds the stock movement service.
type StockMovementHandler struct {
	movementService services.StockMovementService
}

// NewStockMovementHandler creates a new StockMovementHandler.
func NewStockMovementHandler(sms services.StockMovementService) *StockMovementHandler {
	return &StockMovementHandler{movementService: sms}
}

// GetStockMovements handles fetching the movement ledger, optionally
// filtered by material and movement type.
func (h *StockMovementHandler) GetStockMovements(c *gin.Context) {
	filter := services.MovementFilter{
		MaterialID: c.Query("material_id"),
		Type:       models.MovementType(c.Query("type")),
	}
	c.JSON(http.StatusOK, h.movementService.GetMovements(filter))
}

// RecordStockMovement handles posting a manual stock movement.
func (h *StockMovementHandler) RecordStockMovement(c *gin.Context) {
	var req services.RecordMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "RecordStockMovement: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	movement, err := h.movementService.RecordManualMovement(req)
	if err != nil {
		utils.LogError(err, "RecordStockMovement: Error from movementService.RecordManualMovement")
		if errors.Is(err, services.ErrMaterialNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Material not found.", err.Error()))
		} else if errors.Is(err, services.ErrMovementValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to record stock movement.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, movement)
}
