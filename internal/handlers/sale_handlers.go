package handlers

import (
	"errors"
	"net/http"

	"buildops_backend/internal/services"
	"buildops_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// SaleHandler holds the sale service.
type SaleHandler struct {
	saleService services.SaleService
}

// NewSaleHandler creates a new SaleHandler.
func NewSaleHandler(ss services.SaleService) *SaleHandler {
	return &SaleHandler{saleService: ss}
}

// CreateSale handles the creation of a new sale order.
func (h *SaleHandler) CreateSale(c *gin.Context) {
	var req services.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateSale: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	sale, err := h.saleService.CreateSale(req)
	if err != nil {
		utils.LogError(err, "CreateSale: Error from saleService.CreateSale")
		if errors.Is(err, services.ErrCustomerNotFound) || errors.Is(err, services.ErrMaterialNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Referenced record not found: "+err.Error(), err.Error()))
		} else if errors.Is(err, services.ErrSaleValidation) || errors.Is(err, services.ErrDateFormat) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create sale.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, sale)
}

// GetSales handles fetching all sale orders.
func (h *SaleHandler) GetSales(c *gin.Context) {
	c.JSON(http.StatusOK, h.saleService.GetSales())
}

// GetSaleByID handles fetching a single sale order by ID.
func (h *SaleHandler) GetSaleByID(c *gin.Context) {
	id := c.Param("id")

	sale, err := h.saleService.GetSaleByID(id)
	if err != nil {
		utils.LogError(err, "GetSaleByID: Error from saleService.GetSaleByID for ID "+id)
		if errors.Is(err, services.ErrSaleNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Sale not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch sale.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, sale)
}

// UpdateSale handles updating a sale order.
func (h *SaleHandler) UpdateSale(c *gin.Context) {
	id := c.Param("id")

	var req services.UpdateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateSale: Failed to bind JSON for ID "+id)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	sale, err := h.saleService.UpdateSale(id, req)
	if err != nil {
		utils.LogError(err, "UpdateSale: Error from saleService.UpdateSale for ID "+id)
		if errors.Is(err, services.ErrSaleNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Sale not found to update.", err.Error()))
		} else if errors.Is(err, services.ErrCustomerNotFound) || errors.Is(err, services.ErrMaterialNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Referenced record not found: "+err.Error(), err.Error()))
		} else if errors.Is(err, services.ErrSaleValidation) || errors.Is(err, services.ErrDateFormat) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update sale.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, sale)
}

// DeleteSale handles deleting a sale order.
func (h *SaleHandler) DeleteSale(c *gin.Context) {
	id := c.Param("id")

	err := h.saleService.DeleteSale(id)
	if err != nil {
		utils.LogError(err, "DeleteSale: Error from saleService.DeleteSale for ID "+id)
		if errors.Is(err, services.ErrSaleNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Sale not found to delete.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete sale.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Sale deleted successfully"})
}
