// Package token 实现奖励代币发行方。
// 只有被授权的发行方可以增发，账本在启动时获得授权。
package token

import (
	"errors"
	"sync"

	"github.com/jihanurrahman33/BREMS/internal/model"
	"gorm.io/gorm"
)

// ErrUnauthorizedMinter 调用方未获得增发授权
var ErrUnauthorizedMinter = errors.New("caller is not an authorized minter")

// Issuer 奖励代币发行方
type Issuer struct {
	db      *gorm.DB
	mu      sync.RWMutex
	minters map[string]struct{}
}

// NewIssuer 创建代币发行方
func NewIssuer(db *gorm.DB) *Issuer {
	return &Issuer{
		db:      db,
		minters: make(map[string]struct{}),
	}
}

// AuthorizeMinter 授权一个发行调用方
func (i *Issuer) AuthorizeMinter(id string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.minters[id] = struct{}{}
}

// RevokeMinter 撤销发行授权
func (i *Issuer) RevokeMinter(id string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	delete(i.minters, id)
}

// isAuthorized 检查调用方授权
func (i *Issuer) isAuthorized(id string) bool {
	i.mu.RLock()
	defer i.mu.RUnlock()
	_, ok := i.minters[id]
	return ok
}

// Mint 在调用方事务内给地址增发代币
func (i *Issuer) Mint(tx *gorm.DB, caller, to string, amount int64) error {
	if !i.isAuthorized(caller) {
		return ErrUnauthorizedMinter
	}

	var bal model.TokenBalanceModel
	err := tx.Where("address = ?", to).First(&bal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		bal = model.TokenBalanceModel{Address: to, Balance: amount}
		return tx.Create(&bal).Error
	}
	if err != nil {
		return err
	}
	return tx.Model(&bal).
		Update("balance", gorm.Expr("balance + ?", amount)).Error
}

// BalanceOf 查询地址的代币余额
func (i *Issuer) BalanceOf(address string) (int64, error) {
	var bal model.TokenBalanceModel
	err := i.db.Where("address = ?", address).First(&bal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return bal.Balance, nil
}
