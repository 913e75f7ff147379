package router

import (
	"buildops_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupMaterialRoutes sets up the material routes.
func SetupMaterialRoutes(apiGroup *gin.RouterGroup, materialHandler *handlers.MaterialHandler) {
	materialRoutes := apiGroup.Group("/materials")
	{
		materialRoutes.POST("", materialHandler.CreateMaterial)
		materialRoutes.GET("", materialHandler.GetMaterials)
		materialRoutes.GET("/low-stock", materialHandler.GetLowStockMaterials)
		materialRoutes.GET("/:id", materialHandler.GetMaterialByID)
		materialRoutes.GET("/:id/movements", materialHandler.GetMaterialMovements)
		materialRoutes.PUT("/:id", materialHandler.UpdateMaterial)
		materialRoutes.DELETE("/:id", materialHandler.DeleteMaterial)
	}
}

// SetupStockMovementRoutes sets up the stock movement routes.
func SetupStockMovementRoutes(apiGroup *gin.RouterGroup, movementHandler *handlers.StockMovementHandler) {
	movementRoutes := apiGroup.Group("/stock-movements")
	{
		movementRoutes.GET("", movementHandler.GetStockMovements)
		movementRoutes.POST("", movementHandler.RecordStockMovement)
	}
}

// SetupSaleRoutes sets up the sale routes.
func SetupSaleRoutes(apiGroup *gin.RouterGroup, saleHandler *handlers.SaleHandler) {
	saleRoutes := apiGroup.Group("/sales")
	{
		saleRoutes.POST("", saleHandler.CreateSale)
		saleRoutes.GET("", saleHandler.GetSales)
		saleRoutes.GET("/:id", saleHandler.GetSaleByID)
		saleRoutes.PUT("/:id", saleHandler.UpdateSale)
		saleRoutes.DELETE("/:id", saleHandler.DeleteSale)
	}
}

// SetupBOQRoutes sets up the bill of quantities routes.
func SetupBOQRoutes(apiGroup *gin.RouterGroup, boqHandler *handlers.BOQHandler) {
	boqRoutes := apiGroup.Group("/boqs")
	{
		boqRoutes.POST("", boqHandler.CreateBOQ)
		boqRoutes.GET("", boqHandler.GetBOQs)
		boqRoutes.GET("/:id", boqHandler.GetBOQByID)
		boqRoutes.PUT("/:id", boqHandler.UpdateBOQ)
		boqRoutes.DELETE("/:id", boqHandler.DeleteBOQ)
	}
}

// SetupProductionRoutes sets up the production routes.
func SetupProductionRoutes(apiGroup *gin.RouterGroup, productionHandler *handlers.ProductionHandler) {
	productionRoutes := apiGroup.Group("/productions")
	{
		productionRoutes.POST("", productionHandler.CreateProduction)
		productionRoutes.GET("", productionHandler.GetProductions)
		productionRoutes.GET("/:id", productionHandler.GetProductionByID)
		productionRoutes.PUT("/:id", productionHandler.UpdateProduction)
		productionRoutes.DELETE("/:id", productionHandler.DeleteProduction)
	}
}

// SetupCustomerRoutes sets up the customer routes.
func SetupCustomerRoutes(apiGroup *gin.RouterGroup, customerHandler *handlers.CustomerHandler) {
	customerRoutes := apiGroup.Group("/customers")
	{
		customerRoutes.POST("", customerHandler.CreateCustomer)
		customerRoutes.GET("", customerHandler.GetCustomers)
		customerRoutes.GET("/:id", customerHandler.GetCustomerByID)
		customerRoutes.PUT("/:id", customerHandler.UpdateCustomer)
		customerRoutes.DELETE("/:id", customerHandler.DeleteCustomer)
	}
}

// SetupReportRoutes sets up the report routes.
func SetupReportRoutes(apiGroup *gin.RouterGroup, reportHandler *handlers.ReportHandler) {
	reportRoutes := apiGroup.Group("/reports")
	{
		reportRoutes.GET("/dashboard", reportHandler.GetDashboardSummary)
	}
}
