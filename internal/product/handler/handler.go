package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hvngo/stylehub-catalog-service/internal/auth"
	"github.com/hvngo/stylehub-catalog-service/internal/pkg/i18n"
	"github.com/hvngo/stylehub-catalog-service/internal/pkg/logger"
	"github.com/hvngo/stylehub-catalog-service/internal/product"
	"github.com/hvngo/stylehub-catalog-service/internal/product/dto"
	ucpkg "github.com/hvngo/stylehub-catalog-service/internal/product/usecase"
	"go.uber.org/zap"
)

type ProductHandler struct {
	uc     product.UseCase
	logger logger.ZapLogger
}

func NewProductHandler(uc product.UseCase, log logger.ZapLogger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: log,
	}
}

type productRequest struct {
	CategoryID  string  `json:"category_id"`
	BrandID     string  `json:"brand_id"`
	SKU         string  `json:"sku" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	BasePrice   float64 `json:"base_price" binding:"required,gt=0"`
	ImageURL    string  `json:"image_url"`
	IsActive    *bool   `json:"is_active"`
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := h.uc.CreateProduct(c, &dto.CreateProductInput{
		MerchantID:  auth.GetMerchantID(c),
		CategoryID:  req.CategoryID,
		BrandID:     req.BrandID,
		SKU:         req.SKU,
		Name:        req.Name,
		Description: req.Description,
		BasePrice:   req.BasePrice,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		if errors.Is(err, ucpkg.ErrSKUExists) {
			c.JSON(http.StatusConflict, gin.H{"error": i18n.T(c.GetHeader("Accept-Language"), "sku_already_exists")})
			return
		}
		h.logger.Error("failed to create product", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusCreated, p)
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	p, err := h.uc.GetProduct(c, c.Param("id"))
	if err != nil {
		if errors.Is(err, ucpkg.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": i18n.T(c.GetHeader("Accept-Language"), "product_not_found")})
			return
		}
		h.logger.Error("failed to get product", zap.String("id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	filters := &dto.ProductFilters{
		MerchantID:  auth.GetMerchantID(c),
		CategoryID:  c.Query("category_id"),
		BrandID:     c.Query("brand_id"),
		SearchQuery: c.Query("q"),
		SortBy:      c.Query("sort_by"),
		SortOrder:   c.Query("sort_order"),
		Page:        page,
		PageSize:    pageSize,
	}
	if active := c.Query("is_active"); active != "" {
		isActive := active == "true"
		filters.IsActive = &isActive
	}

	products, count, err := h.uc.ListProducts(c, filters)
	if err != nil {
		h.logger.Error("failed to list products", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": products, "total": count})
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	p, err := h.uc.UpdateProduct(c, &dto.UpdateProductInput{
		ID:          c.Param("id"),
		MerchantID:  auth.GetMerchantID(c),
		CategoryID:  req.CategoryID,
		BrandID:     req.BrandID,
		SKU:         req.SKU,
		Name:        req.Name,
		Description: req.Description,
		BasePrice:   req.BasePrice,
		ImageURL:    req.ImageURL,
		IsActive:    isActive,
	})
	if err != nil {
		switch {
		case errors.Is(err, ucpkg.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": i18n.T(c.GetHeader("Accept-Language"), "product_not_found")})
		case errors.Is(err, ucpkg.ErrSKUExists):
			c.JSON(http.StatusConflict, gin.H{"error": i18n.T(c.GetHeader("Accept-Language"), "sku_already_exists")})
		default:
			h.logger.Error("failed to update product", zap.String("id", c.Param("id")), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}

	c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	if err := h.uc.DeleteProduct(c, c.Param("id")); err != nil {
		h.logger.Error("failed to delete product", zap.String("id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.Status(http.StatusNoContent)
}
