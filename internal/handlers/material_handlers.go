package handlers

import (
	"errors"
	"net/http"

	"buildops_backend/internal/services"
	"buildops_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// MaterialHandler holds the material and stock movement services.
type MaterialHandler struct {
	materialService services.MaterialService
	movementService services.StockMovementService
}

// NewMaterialHandler creates a new MaterialHandler.
func NewMaterialHandler(ms services.MaterialService, sms services.StockMovementService) *MaterialHandler {
	return &MaterialHandler{materialService: ms, movementService: sms}
}

// CreateMaterial handles the creation of a new material.
func (h *MaterialHandler) CreateMaterial(c *gin.Context) {
	var req services.CreateMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateMaterial: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	material, err := h.materialService.CreateMaterial(req)
	if err != nil {
		utils.LogError(err, "CreateMaterial: Error from materialService.CreateMaterial")
		if errors.Is(err, services.ErrMaterialValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create material.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, material)
}

// GetMaterials handles fetching all materials.
func (h *MaterialHandler) GetMaterials(c *gin.Context) {
	c.JSON(http.StatusOK, h.materialService.GetMaterials())
}

// GetLowStockMaterials handles fetching materials at or below their minimum.
func (h *MaterialHandler) GetLowStockMaterials(c *gin.Context) {
	c.JSON(http.StatusOK, h.materialService.GetLowStockMaterials())
}

// GetMaterialByID handles fetching a single material by ID.
func (h *MaterialHandler) GetMaterialByID(c *gin.Context) {
	id := c.Param("id")

	material, err := h.materialService.GetMaterialByID(id)
	if err != nil {
		utils.LogError(err, "GetMaterialByID: Error from materialService.GetMaterialByID for ID "+id)
		if errors.Is(err, services.ErrMaterialNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Material not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch material.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, material)
}

// GetMaterialMovements handles fetching the movement history of a material.
func (h *MaterialHandler) GetMaterialMovements(c *gin.Context) {
	id := c.Param("id")

	movements, err := h.movementService.GetMovementsForMaterial(id)
	if err != nil {
		utils.LogError(err, "GetMaterialMovements: Error from movementService.GetMovementsForMaterial for ID "+id)
		if errors.Is(err, services.ErrMaterialNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Material not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch material movements.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, movements)
}

// UpdateMaterial handles updating a material.
func (h *MaterialHandler) UpdateMaterial(c *gin.Context) {
	id := c.Param("id")

	var req services.UpdateMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateMaterial: Failed to bind JSON for ID "+id)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	material, err := h.materialService.UpdateMaterial(id, req)
	if err != nil {
		utils.LogError(err, "UpdateMaterial: Error from materialService.UpdateMaterial for ID "+id)
		if errors.Is(err, services.ErrMaterialNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Material not found to update.", err.Error()))
		} else if errors.Is(err, services.ErrMaterialValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update material.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, material)
}

// DeleteMaterial handles deleting a material.
func (h *MaterialHandler) DeleteMaterial(c *gin.Context) {
	id := c.Param("id")

	err := h.materialService.DeleteMaterial(id)
	if err != nil {
		utils.LogError(err, "DeleteMaterial: Error from materialService.DeleteMaterial for ID "+id)
		if errors.Is(err, services.ErrMaterialNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Material not found to delete.", err.Error()))
		} else if errors.Is(err, services.ErrMaterialInUse) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Material cannot be deleted as it has recorded stock movements.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete material.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Material deleted successfully"})
}
