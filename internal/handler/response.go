package handler

import (
	"errors"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"github.com/jihanurrahman33/BREMS/internal/ledger"
)

// SuccessResponse 成功响应
func SuccessResponse(c *gin.Context, statusCode int, message string, data any) {
	c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponse 错误响应
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{
		Success: false,
		Message: message,
	})
}

// LedgerErrorResponse 按账本错误类型映射HTTP状态码
func LedgerErrorResponse(c *gin.Context, err error) {
	ErrorResponse(c, statusFromError(err), err.Error())
}

// statusFromError 账本错误到HTTP状态码：校验类 400，授权类 403，
// 未找到 404，状态过期 409，其余 500
func statusFromError(err error) int {
	switch {
	case errors.Is(err, ledger.ErrInvalidRange),
		errors.Is(err, ledger.ErrTargetExceedsValue),
		errors.Is(err, ledger.ErrDeadlineInPast),
		errors.Is(err, ledger.ErrDeadlinePassed),
		errors.Is(err, ledger.ErrBelowMinimum),
		errors.Is(err, ledger.ErrAboveMaximum),
		errors.Is(err, ledger.ErrAmountMismatch),
		errors.Is(err, ledger.ErrFeeTooHigh):
		return http.StatusBadRequest
	case errors.Is(err, ledger.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, ledger.ErrPropertyNotFound),
		errors.Is(err, ledger.ErrInvestmentNotFound):
		return http.StatusNotFound
	case errors.Is(err, ledger.ErrNotActive),
		errors.Is(err, ledger.ErrNotFunded),
		errors.Is(err, ledger.ErrAlreadyWithdrawn),
		errors.Is(err, ledger.ErrPropertyNotCompleted):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// normalizeAddress 校验并规范化十六进制地址
func normalizeAddress(addr string) (string, bool) {
	if !common.IsHexAddress(addr) {
		return "", false
	}
	return common.HexToAddress(addr).Hex(), true
}
