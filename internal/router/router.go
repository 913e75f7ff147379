package router

import (
	"buildops_backend/internal/handlers"
	"buildops_backend/internal/repositories"
	"buildops_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// Setup initializes the routing for the application.
func Setup(engine *gin.Engine, ds *repositories.Dataset) {
	// Initialize Repositories
	materialRepo := repositories.NewMaterialRepository(ds)
	movementRepo := repositories.NewStockMovementRepository(ds)
	saleRepo := repositories.NewSaleRepository(ds)
	boqRepo := repositories.NewBOQRepository(ds)
	productionRepo := repositories.NewProductionRepository(ds)
	customerRepo := repositories.NewCustomerRepository(ds)

	// Initialize Services
	ledgerService := services.NewLedgerService(materialRepo, movementRepo)
	materialService := services.NewMaterialService(materialRepo, movementRepo, ledgerService)
	movementService := services.NewStockMovementService(movementRepo, materialRepo, ledgerService)
	saleService := services.NewSaleService(saleRepo, materialRepo, customerRepo, movementRepo, ledgerService)
	boqService := services.NewBOQService(boqRepo, materialRepo)
	productionService := services.NewProductionService(productionRepo, materialRepo, movementRepo, ledgerService)
	customerService := services.NewCustomerService(customerRepo)
	reportService := services.NewReportService(materialRepo, saleRepo, productionRepo)

	// Initialize Handlers
	materialHandler := handlers.NewMaterialHandler(materialService, movementService)
	movementHandler := handlers.NewStockMovementHandler(movementService)
	saleHandler := handlers.NewSaleHandler(saleService)
	boqHandler := handlers.NewBOQHandler(boqService)
	productionHandler := handlers.NewProductionHandler(productionService)
	customerHandler := handlers.NewCustomerHandler(customerService)
	reportHandler := handlers.NewReportHandler(reportService)

	apiV1 := engine.Group("/api/v1")
	{
		SetupMaterialRoutes(apiV1, materialHandler)
		SetupStockMovementRoutes(apiV1, movementHandler)
		SetupSaleRoutes(apiV1, saleHandler)
		SetupBOQRoutes(apiV1, boqHandler)
		SetupProductionRoutes(apiV1, productionHandler)
		SetupCustomerRoutes(apiV1, customerHandler)
		SetupReportRoutes(apiV1, reportHandler)
	}
}
