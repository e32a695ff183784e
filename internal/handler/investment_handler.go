package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jihanurrahman33/BREMS/internal/ledger"
)

type InvestmentHandler struct {
	ledger *ledger.Ledger
}

func NewInvestmentHandler(l *ledger.Ledger) *InvestmentHandler {
	return &InvestmentHandler{ledger: l}
}

// Invest 对项目投资
func (h *InvestmentHandler) Invest(c *gin.Context) {
	propertyId, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "invalid property id")
		return
	}

	var req InvestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	investor, ok := normalizeAddress(req.Investor)
	if !ok {
		ErrorResponse(c, http.StatusBadRequest, "invalid investor address")
		return
	}

	investmentId, err := h.ledger.Invest(propertyId, investor, req.Amount, req.Value)
	if err != nil {
		LedgerErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusCreated, "investment recorded", gin.H{
		"investment_id": investmentId,
	})
}

// WithdrawInvestment 投资退出
func (h *InvestmentHandler) WithdrawInvestment(c *gin.Context) {
	investmentId, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "invalid investment id")
		return
	}

	var req WithdrawInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	caller, ok := normalizeAddress(req.Caller)
	if !ok {
		ErrorResponse(c, http.StatusBadRequest, "invalid caller address")
		return
	}

	if err := h.ledger.WithdrawInvestment(investmentId, caller); err != nil {
		LedgerErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "investment withdrawn", nil)
}

// GetUserInvestments 获取投资人的全部投资记录
func (h *InvestmentHandler) GetUserInvestments(c *gin.Context) {
	address, ok := normalizeAddress(c.Param("address"))
	if !ok {
		ErrorResponse(c, http.StatusBadRequest, "invalid address")
		return
	}

	investments, err := h.ledger.GetUserInvestments(address)
	if err != nil {
		ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	SuccessResponse(c, http.StatusOK, "", gin.H{
		"investments": investments,
		"total":       len(investments),
	})
}

// GetUserInvestment 获取投资人在单个项目上的持有中累计金额
func (h *InvestmentHandler) GetUserInvestment(c *gin.Context) {
	propertyId, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "invalid property id")
		return
	}

	address, ok := normalizeAddress(c.Param("address"))
	if !ok {
		ErrorResponse(c, http.StatusBadRequest, "invalid address")
		return
	}

	amount, err := h.ledger.GetUserInvestment(propertyId, address)
	if err != nil {
		ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	SuccessResponse(c, http.StatusOK, "", gin.H{
		"property_id": propertyId,
		"investor":    address,
		"amount":      amount,
	})
}
