package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/hvngo/stylehub-catalog-service/internal/pkg/logger"
	"github.com/hvngo/stylehub-catalog-service/internal/report"
	"github.com/hvngo/stylehub-catalog-service/internal/report/dto"
)

var ErrInvalidPeriod = errors.New("invalid report period")

type reportUseCase struct {
	repo         report.Repository
	lowThreshold int
	logger       logger.ZapLogger
}

func NewReportUseCase(repo report.Repository, lowThreshold int, log logger.ZapLogger) report.UseCase {
	return &reportUseCase{
		repo:         repo,
		lowThreshold: lowThreshold,
		logger:       log,
	}
}

func (uc *reportUseCase) GetMonthlyReport(ctx context.Context, filters *dto.ReportFilters) (*dto.ReconciliationReport, error) {
	if filters.Month < 1 || filters.Month > 12 || filters.Year < 2000 {
		return nil, ErrInvalidPeriod
	}

	periodStart := time.Date(filters.Year, time.Month(filters.Month), 1, 0, 0, 0, 0, time.UTC)
	periodEnd := periodStart.AddDate(0, 1, 0)

	rows, err := uc.repo.ListMovementRows(ctx, filters.MerchantID, periodStart, periodEnd)
	if err != nil {
		return nil, err
	}

	details, summary := Reconcile(rows, uc.lowThreshold)
	return &dto.ReconciliationReport{
		Year:    filters.Year,
		Month:   filters.Month,
		Details: details,
		Summary: summary,
	}, nil
}

func (uc *reportUseCase) ExportCSV(ctx context.Context, filters *dto.ReportFilters) ([]byte, error) {
	rep, err := uc.GetMonthlyReport(ctx, filters)
	if err != nil {
		return nil, err
	}
	return WriteCSV(rep, time.Now())
}
