package model

import (
	"time"
)

// CustodyAccountModel 资金托管账户
// escrow 账户按项目记投资人本金，treasury 记平台手续费，wallet 记已释放给地址的资金
type CustodyAccountModel struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Kind    CustodyKind `json:"kind" gorm:"not null;uniqueIndex:idx_custody_kind_holder"`
	Holder  string      `json:"holder" gorm:"not null;uniqueIndex:idx_custody_kind_holder"`
	Balance int64       `json:"balance" gorm:"not null;default:0"`
}

// CustodyKind 托管账户类型
type CustodyKind string

const (
	CustodyKindEscrow   CustodyKind = "escrow"   // 项目托管账户，holder 为项目ID
	CustodyKindWallet   CustodyKind = "wallet"   // 外部地址账户，holder 为地址
	CustodyKindTreasury CustodyKind = "treasury" // 平台金库账户
)

// TableName 自定义表名
func (CustodyAccountModel) TableName() string {
	return "custody_account"
}
