package services

import (
	"buildops_backend/internal/models"
	"buildops_backend/internal/repositories"

	"github.com/shopspring/decimal"
)

// ReportService builds aggregate views over the datasets.
type ReportService interface {
	GetDashboardSummary() models.DashboardSummary
}

type reportService struct {
	materialRepo   repositories.MaterialRepository
	saleRepo       repositories.SaleRepository
	productionRepo repositories.ProductionRepository
}

// NewReportService creates a new instance of ReportService.
func NewReportService(
	mr repositories.MaterialRepository,
	sr repositories.SaleRepository,
	pr repositories.ProductionRepository,
) ReportService {
	return &reportService{
		materialRepo:   mr,
		saleRepo:       sr,
		productionRepo: pr,
	}
}

func (s *reportService) GetDashboardSummary() models.DashboardSummary {
	return models.DashboardSummary{
		Materials:  s.materialSummary(),
		Sales:      s.salesSummary(),
		Production: s.productionSummary(),
	}
}

func (s *reportService) materialSummary() models.MaterialValueSummary {
	materials := s.materialRepo.List()

	summary := models.MaterialValueSummary{
		TotalItems: len(materials),
		TotalValue: decimal.Zero,
	}
	for _, material := range materials {
		value := material.PricePerUnit.Mul(decimal.NewFromFloat(material.CurrentQuantity))
		summary.TotalValue = summary.TotalValue.Add(value)
		if material.CurrentQuantity <= material.MinQuantity {
			summary.LowStockItems++
		}
	}
	return summary
}

func (s *reportService) salesSummary() models.SalesSummary {
	sales := s.saleRepo.List()

	summary := models.SalesSummary{
		TotalSales:   len(sales),
		TotalRevenue: decimal.Zero,
	}
	for _, sale := range sales {
		switch sale.Status {
		case models.StatusPending:
			summary.PendingSales++
		case models.StatusCompleted:
			summary.CompletedSales++
			summary.TotalRevenue = summary.TotalRevenue.Add(sale.TotalAmount)
		case models.StatusCancelled:
			summary.CancelledSales++
		}
	}
	return summary
}

func (s *reportService) productionSummary() models.ProductionSummary {
	productions := s.productionRepo.List()

	summary := models.ProductionSummary{
		TotalProductions: len(productions),
	}
	for _, production := range productions {
		switch production.Status {
		case models.StatusInProgress:
			summary.InProgressProductions++
		case models.StatusCompleted:
			summary.CompletedProductions++
		case models.StatusCancelled:
			summary.CancelledProductions++
		}
	}
	return summary
}
