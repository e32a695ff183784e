package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jihanurrahman33/BREMS/internal/ledger"
	"github.com/jihanurrahman33/BREMS/internal/token"
)

type PlatformHandler struct {
	ledger *ledger.Ledger
	issuer *token.Issuer
}

func NewPlatformHandler(l *ledger.Ledger, issuer *token.Issuer) *PlatformHandler {
	return &PlatformHandler{ledger: l, issuer: issuer}
}

// GetPlatformFee 查询当前平台费率
func (h *PlatformHandler) GetPlatformFee(c *gin.Context) {
	fee, err := h.ledger.PlatformFee()
	if err != nil {
		ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	SuccessResponse(c, http.StatusOK, "", gin.H{"fee_rate": fee})
}

// UpdatePlatformFee 管理员更新平台费率
func (h *PlatformHandler) UpdatePlatformFee(c *gin.Context) {
	var req UpdatePlatformFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	caller, ok := normalizeAddress(req.Caller)
	if !ok {
		ErrorResponse(c, http.StatusBadRequest, "invalid caller address")
		return
	}

	if err := h.ledger.UpdatePlatformFee(req.FeeRate, caller); err != nil {
		LedgerErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "platform fee updated", gin.H{
		"fee_rate": req.FeeRate,
	})
}

// WithdrawTreasury 管理员提取平台金库
func (h *PlatformHandler) WithdrawTreasury(c *gin.Context) {
	var req WithdrawTreasuryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	caller, ok := normalizeAddress(req.Caller)
	if !ok {
		ErrorResponse(c, http.StatusBadRequest, "invalid caller address")
		return
	}

	amount, err := h.ledger.WithdrawTreasury(caller)
	if err != nil {
		LedgerErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "treasury withdrawn", gin.H{
		"amount": amount,
	})
}

// GetPlatformStats 获取平台整体统计信息
func (h *PlatformHandler) GetPlatformStats(c *gin.Context) {
	stats, err := h.ledger.PlatformStats()
	if err != nil {
		ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	SuccessResponse(c, http.StatusOK, "", stats)
}

// GetEvents 按追加顺序查询账本事件
func (h *PlatformHandler) GetEvents(c *gin.Context) {
	propertyId, _ := strconv.ParseInt(c.DefaultQuery("property_id", "0"), 10, 64)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	events, total, err := h.ledger.GetEvents(propertyId, limit, offset)
	if err != nil {
		ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	SuccessResponse(c, http.StatusOK, "", gin.H{
		"events": events,
		"total":  total,
		"limit":  limit,
		"offset": offset,
	})
}

// GetTokenBalance 查询地址的奖励代币余额
func (h *PlatformHandler) GetTokenBalance(c *gin.Context) {
	address, ok := normalizeAddress(c.Param("address"))
	if !ok {
		ErrorResponse(c, http.StatusBadRequest, "invalid address")
		return
	}

	balance, err := h.issuer.BalanceOf(address)
	if err != nil {
		ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	SuccessResponse(c, http.StatusOK, "", gin.H{
		"address": address,
		"balance": balance,
	})
}
