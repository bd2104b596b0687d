package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hvngo/stylehub-catalog-service/internal/auth"
	"github.com/hvngo/stylehub-catalog-service/internal/pkg/i18n"
	"github.com/hvngo/stylehub-catalog-service/internal/pkg/logger"
	"github.com/hvngo/stylehub-catalog-service/internal/report"
	"github.com/hvngo/stylehub-catalog-service/internal/report/dto"
	ucpkg "github.com/hvngo/stylehub-catalog-service/internal/report/usecase"
	"go.uber.org/zap"
)

type ReportHandler struct {
	uc     report.UseCase
	logger logger.ZapLogger
}

func NewReportHandler(uc report.UseCase, log logger.ZapLogger) *ReportHandler {
	return &ReportHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *ReportHandler) GetMonthlyReport(c *gin.Context) {
	filters, ok := h.periodFilters(c)
	if !ok {
		return
	}

	rep, err := h.uc.GetMonthlyReport(c, filters)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, rep)
}

func (h *ReportHandler) ExportMonthlyReport(c *gin.Context) {
	filters, ok := h.periodFilters(c)
	if !ok {
		return
	}

	data, err := h.uc.ExportCSV(c, filters)
	if err != nil {
		h.respondError(c, err)
		return
	}

	filename := fmt.Sprintf("bao-cao-ton-kho-%04d-%02d.csv", filters.Year, filters.Month)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

func (h *ReportHandler) periodFilters(c *gin.Context) (*dto.ReportFilters, bool) {
	year, errY := strconv.Atoi(c.Query("year"))
	month, errM := strconv.Atoi(c.Query("month"))
	if errY != nil || errM != nil {
		lang := c.GetHeader("Accept-Language")
		c.JSON(http.StatusBadRequest, gin.H{"error": i18n.T(lang, "invalid_period")})
		return nil, false
	}

	return &dto.ReportFilters{
		MerchantID: auth.GetMerchantID(c),
		Year:       year,
		Month:      month,
	}, true
}

func (h *ReportHandler) respondError(c *gin.Context, err error) {
	lang := c.GetHeader("Accept-Language")
	if errors.Is(err, ucpkg.ErrInvalidPeriod) {
		c.JSON(http.StatusBadRequest, gin.H{"error": i18n.T(lang, "invalid_period")})
		return
	}
	h.logger.Error("failed to build inventory report", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
