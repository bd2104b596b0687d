package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	attruc "github.com/hvngo/stylehub-catalog-service/internal/attribute/usecase"
	"github.com/hvngo/stylehub-catalog-service/internal/auth"
	"github.com/hvngo/stylehub-catalog-service/internal/model"
	"github.com/hvngo/stylehub-catalog-service/internal/pkg/i18n"
	"github.com/hvngo/stylehub-catalog-service/internal/pkg/logger"
	productuc "github.com/hvngo/stylehub-catalog-service/internal/product/usecase"
	"github.com/hvngo/stylehub-catalog-service/internal/variant"
	"github.com/hvngo/stylehub-catalog-service/internal/variant/dto"
	ucpkg "github.com/hvngo/stylehub-catalog-service/internal/variant/usecase"
	"go.uber.org/zap"
)

type VariantHandler struct {
	uc     variant.UseCase
	logger logger.ZapLogger
}

func NewVariantHandler(uc variant.UseCase, log logger.ZapLogger) *VariantHandler {
	return &VariantHandler{
		uc:     uc,
		logger: log,
	}
}

type matrixRequest struct {
	BasePrice float64            `json:"base_price"`
	Selling   map[string][]int64 `json:"selling"`
	Display   map[string]int64   `json:"display"`
}

func (r *matrixRequest) toInput(c *gin.Context) (*dto.GenerateMatrixInput, error) {
	input := &dto.GenerateMatrixInput{
		ProductID:  c.Param("id"),
		MerchantID: auth.GetMerchantID(c),
		BasePrice:  r.BasePrice,
		Selling:    make(map[model.AttributeAxis][]int64, len(r.Selling)),
		Display:    make(map[model.AttributeAxis]int64, len(r.Display)),
	}
	for axisName, ids := range r.Selling {
		axis, err := model.ParseAxis(axisName)
		if err != nil {
			return nil, err
		}
		input.Selling[axis] = ids
	}
	for axisName, id := range r.Display {
		axis, err := model.ParseAxis(axisName)
		if err != nil {
			return nil, err
		}
		input.Display[axis] = id
	}
	return input, nil
}

func (h *VariantHandler) respondMatrixError(c *gin.Context, err error) {
	lang := c.GetHeader("Accept-Language")
	switch {
	case errors.Is(err, ucpkg.ErrEmptyAxis):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": i18n.T(lang, "selling_axis_empty")})
	case errors.Is(err, ucpkg.ErrAxisConflict):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": i18n.T(lang, "axis_conflict")})
	case errors.Is(err, ucpkg.ErrInvalidPrice):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": i18n.T(lang, "variant_price_invalid")})
	case errors.Is(err, attruc.ErrValueNotFound):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": i18n.T(lang, "attribute_not_found")})
	case errors.Is(err, productuc.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": i18n.T(lang, "product_not_found")})
	default:
		h.logger.Error("variant matrix failure", zap.String("product_id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func (h *VariantHandler) PreviewMatrix(c *gin.Context) {
	var req matrixRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input, err := req.toInput(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	drafts, err := h.uc.PreviewMatrix(c, input)
	if err != nil {
		h.respondMatrixError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": drafts, "total": len(drafts)})
}

func (h *VariantHandler) GenerateVariants(c *gin.Context) {
	var req matrixRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input, err := req.toInput(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	variants, err := h.uc.GenerateVariants(c, input)
	if err != nil {
		h.respondMatrixError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"items": variants, "total": len(variants)})
}

func (h *VariantHandler) ListVariants(c *gin.Context) {
	variants, err := h.uc.ListVariants(c, c.Param("id"))
	if err != nil {
		h.logger.Error("failed to list variants", zap.String("product_id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": variants, "total": len(variants)})
}
