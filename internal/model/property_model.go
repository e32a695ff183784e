package model

import (
	"time"
)

// PropertyModel 房产众筹项目模型
type PropertyModel struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 基本信息
	Owner       string `json:"owner" gorm:"not null;index"`
	Title       string `json:"title" gorm:"not null" binding:"required"`
	Description string `json:"description" gorm:"type:text"`
	MediaHash   string `json:"media_hash"`
	Location    string `json:"location"`

	// 众筹信息
	TotalValue     int64 `json:"total_value" gorm:"not null"`
	MinInvestment  int64 `json:"min_investment" gorm:"not null"`
	MaxInvestment  int64 `json:"max_investment" gorm:"not null"`
	TargetFunding  int64 `json:"target_funding" gorm:"not null"`
	CurrentFunding int64 `json:"current_funding" gorm:"default:0"`
	TotalInvestors int64 `json:"total_investors" gorm:"default:0"`

	// 时间信息
	Deadline time.Time `json:"deadline" gorm:"not null"`

	// 状态
	Status PropertyStatus `json:"status" gorm:"default:'active';index"`
}

// PropertyStatus 项目状态
type PropertyStatus string

const (
	PropertyStatusActive    PropertyStatus = "active"    // 募集中
	PropertyStatusFunded    PropertyStatus = "funded"    // 已达标
	PropertyStatusCompleted PropertyStatus = "completed" // 已完成
)

// IsActive 是否处于募集中
func (p *PropertyModel) IsActive() bool {
	return p.Status == PropertyStatusActive
}

// IsFunded 是否已达到目标金额
func (p *PropertyModel) IsFunded() bool {
	return p.Status == PropertyStatusFunded || p.Status == PropertyStatusCompleted
}

// IsCompleted 是否已完成结算
func (p *PropertyModel) IsCompleted() bool {
	return p.Status == PropertyStatusCompleted
}

// TableName 自定义表名
func (PropertyModel) TableName() string {
	return "property"
}
