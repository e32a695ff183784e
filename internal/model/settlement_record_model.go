package model

import (
	"time"
)

// SettlementRecordModel 结算记录
type SettlementRecordModel struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	PropertyId  int64  `json:"property_id" gorm:"not null;uniqueIndex"`
	Owner       string `json:"owner" gorm:"not null"`
	TotalAmount int64  `json:"total_amount" gorm:"not null"` // 结算时的累计募集金额
	PlatformFee int64  `json:"platform_fee" gorm:"not null"` // 平台手续费
	OwnerAmount int64  `json:"owner_amount" gorm:"not null"` // 业主获得金额
	FeeRate     int64  `json:"fee_rate" gorm:"not null"`     // 结算时生效的费率（百分比）
}

// TableName 自定义表名
func (SettlementRecordModel) TableName() string {
	return "settlement_record"
}
