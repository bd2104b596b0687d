package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hvngo/stylehub-catalog-service/internal/attribute"
	"github.com/hvngo/stylehub-catalog-service/internal/model"
	"github.com/hvngo/stylehub-catalog-service/internal/pkg/i18n"
	"github.com/hvngo/stylehub-catalog-service/internal/pkg/logger"
	"go.uber.org/zap"
)

type AttributeHandler struct {
	uc     attribute.UseCase
	logger logger.ZapLogger
}

func NewAttributeHandler(uc attribute.UseCase, log logger.ZapLogger) *AttributeHandler {
	return &AttributeHandler{
		uc:     uc,
		logger: log,
	}
}

type createValueRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *AttributeHandler) ListValues(c *gin.Context) {
	axis, err := model.ParseAxis(c.Param("axis"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	values, err := h.uc.ListValues(c, axis)
	if err != nil {
		h.logger.Error("failed to list attribute values", zap.String("axis", string(axis)), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": values})
}

func (h *AttributeHandler) CreateValue(c *gin.Context) {
	axis, err := model.ParseAxis(c.Param("axis"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req createValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	value, err := h.uc.CreateValue(c, axis, req.Name)
	if err != nil {
		h.logger.Error("failed to create attribute value", zap.String("axis", string(axis)), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusCreated, value)
}

func (h *AttributeHandler) DeleteValue(c *gin.Context) {
	axis, err := model.ParseAxis(c.Param("axis"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": i18n.T(c.GetHeader("Accept-Language"), "attribute_not_found")})
		return
	}

	if err := h.uc.DeleteValue(c, axis, id); err != nil {
		h.logger.Error("failed to delete attribute value", zap.String("axis", string(axis)), zap.Int64("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.Status(http.StatusNoContent)
}
