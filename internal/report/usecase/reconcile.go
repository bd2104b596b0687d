package usecase

import (
	"github.com/hvngo/stylehub-catalog-service/internal/model"
	"github.com/hvngo/stylehub-catalog-service/internal/report/dto"
)

// Reconcile computes closing balances and the aggregate summary for a set of
// movement rows. Pure arithmetic over the input slice: any combination of
// movement integers, including negative adjustments, yields a well-defined
// closing balance. An empty period gives an all-zero summary, not an error.
//
// closing = opening + import - export + adjustment + return
func Reconcile(rows []dto.VariantMovementRecord, lowThreshold int) ([]dto.VariantMovementRecord, dto.ReportSummary) {
	details := make([]dto.VariantMovementRecord, len(rows))
	copy(details, rows)

	var summary dto.ReportSummary
	summary.TotalVariants = len(details)

	for i := range details {
		d := &details[i]
		d.ClosingStock = d.OpeningStock + d.TotalImport - d.TotalExport + d.TotalAdjustment + d.TotalReturn
		d.StockValue = float64(d.ClosingStock) * d.Price
		d.StockStatus = model.ClassifyStock(d.ClosingStock, lowThreshold)

		summary.TotalClosingStock += d.ClosingStock
		summary.TotalStockValue += d.StockValue
		summary.TotalImport += d.TotalImport
		summary.TotalExport += d.TotalExport
		summary.TotalAdjustment += d.TotalAdjustment
		summary.TotalReturn += d.TotalReturn

		switch d.StockStatus {
		case model.StockStatusLow:
			summary.LowStockCount++
		case model.StockStatusOutOfStock:
			summary.OutOfStockCount++
		}
	}

	return details, summary
}
