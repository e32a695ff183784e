package ledger

import (
	"errors"
)

// 命令失败的类型化错误。校验类与授权类错误在任何状态写入前返回，
// 状态类错误表示调用方视图过期，重新查询即可恢复。
var (
	// 创建项目
	ErrInvalidRange       = errors.New("minimum investment cannot exceed maximum investment")
	ErrTargetExceedsValue = errors.New("target funding cannot exceed total value")
	ErrDeadlineInPast     = errors.New("deadline must be in the future")

	// 投资
	ErrPropertyNotFound = errors.New("property not found")
	ErrNotActive        = errors.New("property is not accepting investments")
	ErrDeadlinePassed   = errors.New("investment deadline has passed")
	ErrBelowMinimum     = errors.New("investment amount is below minimum")
	ErrAboveMaximum     = errors.New("investment amount exceeds maximum")
	ErrAmountMismatch   = errors.New("sent value does not match investment amount")

	// 结算与退出
	ErrUnauthorized         = errors.New("caller is not authorized to perform this action")
	ErrNotFunded            = errors.New("property must be funded to complete")
	ErrInvestmentNotFound   = errors.New("investment not found")
	ErrAlreadyWithdrawn     = errors.New("investment has already been withdrawn")
	ErrPropertyNotCompleted = errors.New("property is not completed")

	// 平台管理
	ErrFeeTooHigh = errors.New("platform fee cannot exceed 10 percent")
)
