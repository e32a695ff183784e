package model

import (
	"time"
)

// InvestmentModel 投资记录
type InvestmentModel struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	PropertyId int64            `json:"property_id" gorm:"not null;index"`
	Investor   string           `json:"investor" gorm:"not null;index"`
	Amount     int64            `json:"amount" gorm:"not null"`
	Status     InvestmentStatus `json:"status" gorm:"default:'active'"`
}

// InvestmentStatus 投资状态
type InvestmentStatus string

const (
	InvestmentStatusActive    InvestmentStatus = "active"    // 持有中
	InvestmentStatusWithdrawn InvestmentStatus = "withdrawn" // 已退出
)

// TableName 自定义表名
func (InvestmentModel) TableName() string {
	return "investment"
}

// InvestorPositionModel 投资人在单个项目上的累计持仓，仅用于展示查询
type InvestorPositionModel struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	PropertyId int64  `json:"property_id" gorm:"not null;uniqueIndex:idx_position_property_investor"`
	Investor   string `json:"investor" gorm:"not null;uniqueIndex:idx_position_property_investor"`
	Total      int64  `json:"total" gorm:"not null"`
}

// TableName 自定义表名
func (InvestorPositionModel) TableName() string {
	return "investor_position"
}
