package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jihanurrahman33/BREMS/internal/ledger"
)

type PropertyHandler struct {
	ledger *ledger.Ledger
}

func NewPropertyHandler(l *ledger.Ledger) *PropertyHandler {
	return &PropertyHandler{ledger: l}
}

// CreateProperty 创建项目
func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	var req CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	owner, ok := normalizeAddress(req.Owner)
	if !ok {
		ErrorResponse(c, http.StatusBadRequest, "invalid owner address")
		return
	}

	propertyId, err := h.ledger.CreateProperty(ledger.CreatePropertyParams{
		Owner:         owner,
		Title:         req.Title,
		Description:   req.Description,
		MediaHash:     req.MediaHash,
		Location:      req.Location,
		TotalValue:    req.TotalValue,
		MinInvestment: req.MinInvestment,
		MaxInvestment: req.MaxInvestment,
		TargetFunding: req.TargetFunding,
		Deadline:      time.Unix(req.Deadline, 0),
	})
	if err != nil {
		LedgerErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusCreated, "property created", gin.H{
		"property_id": propertyId,
	})
}

// GetProperties 获取项目列表
func (h *PropertyHandler) GetProperties(c *gin.Context) {
	status := c.DefaultQuery("status", "all")
	search := c.Query("search")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	properties, total, err := h.ledger.ListProperties(status, search, limit, offset)
	if err != nil {
		ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	SuccessResponse(c, http.StatusOK, "", gin.H{
		"properties": properties,
		"total":      total,
		"limit":      limit,
		"offset":     offset,
	})
}

// GetProperty 获取单个项目详情
func (h *PropertyHandler) GetProperty(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "invalid property id")
		return
	}

	property, err := h.ledger.GetProperty(id)
	if err != nil {
		LedgerErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "", gin.H{
		"property":     property,
		"is_active":    property.IsActive(),
		"is_funded":    property.IsFunded(),
		"is_completed": property.IsCompleted(),
	})
}

// GetPropertyStats 获取项目统计信息
func (h *PropertyHandler) GetPropertyStats(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "invalid property id")
		return
	}

	stats, err := h.ledger.PropertyStats(id)
	if err != nil {
		LedgerErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "", stats)
}

// CompleteProperty 业主完成项目
func (h *PropertyHandler) CompleteProperty(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "invalid property id")
		return
	}

	var req CompletePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	caller, ok := normalizeAddress(req.Caller)
	if !ok {
		ErrorResponse(c, http.StatusBadRequest, "invalid caller address")
		return
	}

	if err := h.ledger.CompleteProperty(id, caller); err != nil {
		LedgerErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "property completed", nil)
}
