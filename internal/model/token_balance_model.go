package model

import (
	"time"
)

// TokenBalanceModel 奖励代币余额
type TokenBalanceModel struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Address string `json:"address" gorm:"not null;uniqueIndex"`
	Balance int64  `json:"balance" gorm:"not null;default:0"`
}

// TableName 自定义表名
func (TokenBalanceModel) TableName() string {
	return "token_balance"
}

// PlatformStateModel 平台运行参数，单行表
type PlatformStateModel struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	FeeRate int64 `json:"fee_rate" gorm:"not null"` // 平台费率（百分比）
}

// TableName 自定义表名
func (PlatformStateModel) TableName() string {
	return "platform_state"
}
