package model

import (
	"time"
)

// RefundRecordModel 退款记录
type RefundRecordModel struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	PropertyId   int64  `json:"property_id" gorm:"not null;index"`
	InvestmentId int64  `json:"investment_id" gorm:"not null;uniqueIndex"`
	Investor     string `json:"investor" gorm:"not null"`
	Amount       int64  `json:"amount" gorm:"not null"`
}

// TableName 自定义表名
func (RefundRecordModel) TableName() string {
	return "refund_record"
}
