package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hvngo/stylehub-catalog-service/internal/auth"
	"github.com/hvngo/stylehub-catalog-service/internal/model"
	"github.com/hvngo/stylehub-catalog-service/internal/pkg/i18n"
	"github.com/hvngo/stylehub-catalog-service/internal/pkg/logger"
	"github.com/hvngo/stylehub-catalog-service/internal/stock"
	"github.com/hvngo/stylehub-catalog-service/internal/stock/dto"
	ucpkg "github.com/hvngo/stylehub-catalog-service/internal/stock/usecase"
	"go.uber.org/zap"
)

type StockHandler struct {
	uc     stock.UseCase
	logger logger.ZapLogger
}

func NewStockHandler(uc stock.UseCase, log logger.ZapLogger) *StockHandler {
	return &StockHandler{
		uc:     uc,
		logger: log,
	}
}

type movementRequest struct {
	VariantID   string `json:"variant_id" binding:"required"`
	Quantity    int    `json:"quantity" binding:"required"`
	Reason      string `json:"reason"`
	ReferenceID string `json:"reference_id"`
}

func (h *StockHandler) ListGroupedStock(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	result, err := h.uc.ListGroupedStock(c, &dto.StockFilters{
		MerchantID:  auth.GetMerchantID(c),
		SearchQuery: c.Query("q"),
		CategoryID:  c.Query("category_id"),
		BrandID:     c.Query("brand_id"),
		Status:      model.StockStatus(c.Query("status")),
		Page:        page,
		PageSize:    pageSize,
	})
	if err != nil {
		h.logger.Error("failed to list grouped stock", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *StockHandler) AdjustStock(c *gin.Context) {
	h.applyMovement(c, "manual_adjustment", h.uc.AdjustStock)
}

func (h *StockHandler) ImportStock(c *gin.Context) {
	h.applyMovement(c, "goods_receipt", h.uc.ImportStock)
}

func (h *StockHandler) applyMovement(
	c *gin.Context,
	referenceType string,
	apply func(ctx context.Context, input *dto.ApplyMovementInput) (*model.Variant, error),
) {
	var req movementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	v, err := apply(c, &dto.ApplyMovementInput{
		MerchantID:    auth.GetMerchantID(c),
		VariantID:     req.VariantID,
		Quantity:      req.Quantity,
		Reason:        req.Reason,
		ReferenceID:   req.ReferenceID,
		ReferenceType: referenceType,
		UserID:        auth.GetUserID(c),
	})
	if err != nil {
		lang := c.GetHeader("Accept-Language")
		switch {
		case errors.Is(err, ucpkg.ErrVariantNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, ucpkg.ErrInsufficientStock):
			c.JSON(http.StatusConflict, gin.H{"error": i18n.T(lang, "insufficient_stock")})
		case errors.Is(err, ucpkg.ErrSystemBusy):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": i18n.T(lang, "system_busy")})
		case errors.Is(err, ucpkg.ErrInvalidQuantity):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.logger.Error("failed to apply stock movement", zap.String("variant_id", req.VariantID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}

	c.JSON(http.StatusOK, v)
}

func (h *StockHandler) ListMovements(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	movements, count, err := h.uc.ListMovements(c, &dto.MovementFilters{
		MerchantID:   auth.GetMerchantID(c),
		ProductID:    c.Query("product_id"),
		VariantID:    c.Query("variant_id"),
		MovementType: c.Query("movement_type"),
		Page:         page,
		PageSize:     pageSize,
	})
	if err != nil {
		h.logger.Error("failed to list stock movements", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": movements, "total": count})
}
