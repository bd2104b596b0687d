package report

import (
	"context"

	"github.com/hvngo/stylehub-catalog-service/internal/report/dto"
)

type UseCase interface {
	// GetMonthlyReport reconciles every variant's movements for the given
	// period into closing balances plus an aggregate summary.
	GetMonthlyReport(ctx context.Context, filters *dto.ReportFilters) (*dto.ReconciliationReport, error)

	// ExportCSV renders the monthly report as the fixed-layout CSV document.
	ExportCSV(ctx context.Context, filters *dto.ReportFilters) ([]byte, error)
}
