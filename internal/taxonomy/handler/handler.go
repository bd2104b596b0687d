package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hvngo/stylehub-catalog-service/internal/auth"
	"github.com/hvngo/stylehub-catalog-service/internal/pkg/logger"
	"github.com/hvngo/stylehub-catalog-service/internal/taxonomy"
	"github.com/hvngo/stylehub-catalog-service/internal/taxonomy/dto"
	ucpkg "github.com/hvngo/stylehub-catalog-service/internal/taxonomy/usecase"
	"go.uber.org/zap"
)

type TaxonomyHandler struct {
	uc     taxonomy.UseCase
	logger logger.ZapLogger
}

func NewTaxonomyHandler(uc taxonomy.UseCase, log logger.ZapLogger) *TaxonomyHandler {
	return &TaxonomyHandler{
		uc:     uc,
		logger: log,
	}
}

type categoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	SortOrder   int    `json:"sort_order"`
	IsActive    *bool  `json:"is_active"`
}

type brandRequest struct {
	Name    string `json:"name" binding:"required"`
	LogoURL string `json:"logo_url"`
}

func listFilters(c *gin.Context) *dto.TaxonomyFilters {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	return &dto.TaxonomyFilters{
		MerchantID: auth.GetMerchantID(c),
		Page:       page,
		PageSize:   pageSize,
	}
}

func (h *TaxonomyHandler) CreateCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cat, err := h.uc.CreateCategory(c, &dto.CreateCategoryInput{
		MerchantID:  auth.GetMerchantID(c),
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		SortOrder:   req.SortOrder,
	})
	if err != nil {
		h.logger.Error("failed to create category", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusCreated, cat)
}

func (h *TaxonomyHandler) ListCategories(c *gin.Context) {
	categories, count, err := h.uc.ListCategories(c, listFilters(c))
	if err != nil {
		h.logger.Error("failed to list categories", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": categories, "total": count})
}

func (h *TaxonomyHandler) UpdateCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	cat, err := h.uc.UpdateCategory(c, &dto.UpdateCategoryInput{
		ID:          c.Param("id"),
		MerchantID:  auth.GetMerchantID(c),
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		SortOrder:   req.SortOrder,
		IsActive:    isActive,
	})
	if err != nil {
		if errors.Is(err, ucpkg.ErrCategoryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("failed to update category", zap.String("id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, cat)
}

func (h *TaxonomyHandler) DeleteCategory(c *gin.Context) {
	if err := h.uc.DeleteCategory(c, c.Param("id")); err != nil {
		h.logger.Error("failed to delete category", zap.String("id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TaxonomyHandler) CreateBrand(c *gin.Context) {
	var req brandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	brand, err := h.uc.CreateBrand(c, &dto.CreateBrandInput{
		MerchantID: auth.GetMerchantID(c),
		Name:       req.Name,
		LogoURL:    req.LogoURL,
	})
	if err != nil {
		h.logger.Error("failed to create brand", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusCreated, brand)
}

func (h *TaxonomyHandler) ListBrands(c *gin.Context) {
	brands, count, err := h.uc.ListBrands(c, listFilters(c))
	if err != nil {
		h.logger.Error("failed to list brands", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": brands, "total": count})
}

func (h *TaxonomyHandler) DeleteBrand(c *gin.Context) {
	if err := h.uc.DeleteBrand(c, c.Param("id")); err != nil {
		h.logger.Error("failed to delete brand", zap.String("id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.Status(http.StatusNoContent)
}
