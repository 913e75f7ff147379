package handlers

import (
	"errors"
	"net/http"

	"buildops_backend/internal/services"
	"buildops_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// BOQHandler holds the bill of quantities service.
type BOQHandler struct {
	boqService services.BOQService
}

// NewBOQHandler creates a new BOQHandler.
func NewBOQHandler(bs services.BOQService) *BOQHandler {
	return &BOQHandler{boqService: bs}
}

// CreateBOQ handles the creation of a new bill of quantities.
func (h *BOQHandler) CreateBOQ(c *gin.Context) {
	var req services.CreateBOQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateBOQ: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	boq, err := h.boqService.CreateBOQ(req)
	if err != nil {
		utils.LogError(err, "CreateBOQ: Error from boqService.CreateBOQ")
		if errors.Is(err, services.ErrMaterialNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Referenced record not found: "+err.Error(), err.Error()))
		} else if errors.Is(err, services.ErrBOQValidation) || errors.Is(err, services.ErrDateFormat) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create bill of quantities.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, boq)
}

// GetBOQs handles fetching all bills of quantities.
func (h *BOQHandler) GetBOQs(c *gin.Context) {
	c.JSON(http.StatusOK, h.boqService.GetBOQs())
}

// GetBOQByID handles fetching a single bill of quantities by ID.
func (h *BOQHandler) GetBOQByID(c *gin.Context) {
	id := c.Param("id")

	boq, err := h.boqService.GetBOQByID(id)
	if err != nil {
		utils.LogError(err, "GetBOQByID: Error from boqService.GetBOQByID for ID "+id)
		if errors.Is(err, services.ErrBOQNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Bill of quantities not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch bill of quantities.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, boq)
}

// UpdateBOQ handles updating a bill of quantities.
func (h *BOQHandler) UpdateBOQ(c *gin.Context) {
	id := c.Param("id")

	var req services.UpdateBOQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateBOQ: Failed to bind JSON for ID "+id)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	boq, err := h.boqService.UpdateBOQ(id, req)
	if err != nil {
		utils.LogError(err, "UpdateBOQ: Error from boqService.UpdateBOQ for ID "+id)
		if errors.Is(err, services.ErrBOQNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Bill of quantities not found to update.", err.Error()))
		} else if errors.Is(err, services.ErrMaterialNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Referenced record not found: "+err.Error(), err.Error()))
		} else if errors.Is(err, services.ErrBOQValidation) || errors.Is(err, services.ErrDateFormat) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update bill of quantities.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, boq)
}

// DeleteBOQ handles deleting a bill of quantities.
func (h *BOQHandler) DeleteBOQ(c *gin.Context) {
	id := c.Param("id")

	err := h.boqService.DeleteBOQ(id)
	if err != nil {
		utils.LogError(err, "DeleteBOQ: Error from boqService.DeleteBOQ for ID "+id)
		if errors.Is(err, services.ErrBOQNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Bill of quantities not found to delete.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete bill of quantities.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Bill of quantities deleted successfully"})
}
