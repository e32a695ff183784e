package model

import (
	"time"
)

// EventModel 账本事件记录，按Id追加有序
type EventModel struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`

	EventType  string `json:"event_type" gorm:"not null;index"`
	PropertyId int64  `json:"property_id" gorm:"index"`
	Data       string `json:"data" gorm:"type:text"`
}

// 事件类型
const (
	EventPropertyCreated     = "PropertyCreated"
	EventPropertyFunded      = "PropertyFunded"
	EventPropertyCompleted   = "PropertyCompleted"
	EventInvestmentMade      = "InvestmentMade"
	EventTokenRewardPaid     = "TokenRewardPaid"
	EventInvestmentWithdrawn = "InvestmentWithdrawn"
)

// TableName 自定义表名
func (EventModel) TableName() string {
	return "event"
}
