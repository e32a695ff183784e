package handler

// CreatePropertyRequest 创建项目请求
type CreatePropertyRequest struct {
	Owner         string `json:"owner" binding:"required"`
	Title         string `json:"title" binding:"required"`
	Description   string `json:"description"`
	MediaHash     string `json:"media_hash"`
	Location      string `json:"location"`
	TotalValue    int64  `json:"total_value" binding:"required,gt=0"`
	MinInvestment int64  `json:"min_investment" binding:"required,gt=0"`
	MaxInvestment int64  `json:"max_investment" binding:"required,gt=0"`
	TargetFunding int64  `json:"target_funding" binding:"required,gt=0"`
	Deadline      int64  `json:"deadline" binding:"required"` // Unix 秒
}

// InvestRequest 投资请求，value 为随命令转入托管的金额
type InvestRequest struct {
	Investor string `json:"investor" binding:"required"`
	Amount   int64  `json:"amount" binding:"required,gt=0"`
	Value    int64  `json:"value" binding:"required,gt=0"`
}

// CompletePropertyRequest 完成项目请求
type CompletePropertyRequest struct {
	Caller string `json:"caller" binding:"required"`
}

// WithdrawInvestmentRequest 投资退出请求
type WithdrawInvestmentRequest struct {
	Caller string `json:"caller" binding:"required"`
}

// UpdatePlatformFeeRequest 更新平台费率请求
type UpdatePlatformFeeRequest struct {
	Caller  string `json:"caller" binding:"required"`
	FeeRate int64  `json:"fee_rate"`
}

// WithdrawTreasuryRequest 金库提取请求
type WithdrawTreasuryRequest struct {
	Caller string `json:"caller" binding:"required"`
}

// Response 统一响应结构
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}
