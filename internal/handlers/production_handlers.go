package handlers

import (
	"errors"
	"net/http"

	"buildops_backend/internal/services"
	"buildops_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ProductionHandler holds the production service.
type ProductionHandler struct {
	productionService services.ProductionService
}

// NewProductionHandler creates a new ProductionHandler.
func NewProductionHandler(ps services.ProductionService) *ProductionHandler {
	return &ProductionHandler{productionService: ps}
}

// CreateProduction handles the creation of a new production order.
func (h *ProductionHandler) CreateProduction(c *gin.Context) {
	var req services.CreateProductionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateProduction: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	production, err := h.productionService.CreateProduction(req)
	if err != nil {
		utils.LogError(err, "CreateProduction: Error from productionService.CreateProduction")
		if errors.Is(err, services.ErrMaterialNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Referenced record not found: "+err.Error(), err.Error()))
		} else if errors.Is(err, services.ErrProductionValidation) || errors.Is(err, services.ErrDateFormat) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create production.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, production)
}

// GetProductions handles fetching all production orders.
func (h *ProductionHandler) GetProductions(c *gin.Context) {
	c.JSON(http.StatusOK, h.productionService.GetProductions())
}

// GetProductionByID handles fetching a single production order by ID.
func (h *ProductionHandler) GetProductionByID(c *gin.Context) {
	id := c.Param("id")

	production, err := h.productionService.GetProductionByID(id)
	if err != nil {
		utils.LogError(err, "GetProductionByID: Error from productionService.GetProductionByID for ID "+id)
		if errors.Is(err, services.ErrProductionNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Production not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch production.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, production)
}

// UpdateProduction handles updating a production order.
func (h *ProductionHandler) UpdateProduction(c *gin.Context) {
	id := c.Param("id")

	var req services.UpdateProductionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateProduction: Failed to bind JSON for ID "+id)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	production, err := h.productionService.UpdateProduction(id, req)
	if err != nil {
		utils.LogError(err, "UpdateProduction: Error from productionService.UpdateProduction for ID "+id)
		if errors.Is(err, services.ErrProductionNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Production not found to update.", err.Error()))
		} else if errors.Is(err, services.ErrMaterialNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Referenced record not found: "+err.Error(), err.Error()))
		} else if errors.Is(err, services.ErrProductionValidation) || errors.Is(err, services.ErrDateFormat) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update production.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, production)
}

// DeleteProduction handles deleting a production order.
func (h *ProductionHandler) DeleteProduction(c *gin.Context) {
	id := c.Param("id")

	err := h.productionService.DeleteProduction(id)
	if err != nil {
		utils.LogError(err, "DeleteProduction: Error from productionService.DeleteProduction for ID "+id)
		if errors.Is(err, services.ErrProductionNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Production not found to delete.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete production.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Production deleted successfully"})
}
