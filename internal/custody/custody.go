// Package custody 负责项目托管资金、平台金库与外部地址的余额记账。
// 所有变更函数必须在调用方的事务内执行，余额不跨事务读改写。
package custody

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/jihanurrahman33/BREMS/internal/model"
	"gorm.io/gorm"
)

// ErrInsufficientFunds 账户余额不足
var ErrInsufficientFunds = errors.New("custody account has insufficient funds")

// treasuryHolder 平台金库账户的固定持有人标识
const treasuryHolder = "platform"

func escrowHolder(propertyId int64) string {
	return strconv.FormatInt(propertyId, 10)
}

// account 查找或创建托管账户
func account(tx *gorm.DB, kind model.CustodyKind, holder string) (*model.CustodyAccountModel, error) {
	var acct model.CustodyAccountModel
	err := tx.Where("kind = ? AND holder = ?", kind, holder).First(&acct).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		acct = model.CustodyAccountModel{Kind: kind, Holder: holder}
		if err := tx.Create(&acct).Error; err != nil {
			return nil, err
		}
		return &acct, nil
	}
	if err != nil {
		return nil, err
	}
	return &acct, nil
}

func credit(tx *gorm.DB, kind model.CustodyKind, holder string, amount int64) error {
	acct, err := account(tx, kind, holder)
	if err != nil {
		return err
	}
	return tx.Model(acct).
		Update("balance", gorm.Expr("balance + ?", amount)).Error
}

func debit(tx *gorm.DB, kind model.CustodyKind, holder string, amount int64) error {
	acct, err := account(tx, kind, holder)
	if err != nil {
		return err
	}
	if acct.Balance < amount {
		return fmt.Errorf("%w: %s/%s has %d, need %d",
			ErrInsufficientFunds, kind, holder, acct.Balance, amount)
	}
	return tx.Model(acct).
		Update("balance", gorm.Expr("balance - ?", amount)).Error
}

// Deposit 投资款进入项目托管账户
func Deposit(tx *gorm.DB, propertyId int64, amount int64) error {
	return credit(tx, model.CustodyKindEscrow, escrowHolder(propertyId), amount)
}

// Refund 从项目托管账户退还本金到投资人地址
func Refund(tx *gorm.DB, propertyId int64, address string, amount int64) error {
	if err := debit(tx, model.CustodyKindEscrow, escrowHolder(propertyId), amount); err != nil {
		return err
	}
	return credit(tx, model.CustodyKindWallet, address, amount)
}

// CreditWallet 向外部地址释放结算款
func CreditWallet(tx *gorm.DB, address string, amount int64) error {
	return credit(tx, model.CustodyKindWallet, address, amount)
}

// CreditTreasury 平台手续费入金库
func CreditTreasury(tx *gorm.DB, amount int64) error {
	return credit(tx, model.CustodyKindTreasury, treasuryHolder, amount)
}

// WithdrawTreasury 金库出账到指定地址
func WithdrawTreasury(tx *gorm.DB, address string, amount int64) error {
	if err := debit(tx, model.CustodyKindTreasury, treasuryHolder, amount); err != nil {
		return err
	}
	return credit(tx, model.CustodyKindWallet, address, amount)
}

// EscrowBalance 项目托管账户余额
func EscrowBalance(db *gorm.DB, propertyId int64) (int64, error) {
	return balance(db, model.CustodyKindEscrow, escrowHolder(propertyId))
}

// WalletBalance 外部地址已释放余额
func WalletBalance(db *gorm.DB, address string) (int64, error) {
	return balance(db, model.CustodyKindWallet, address)
}

// TreasuryBalance 平台金库余额
func TreasuryBalance(db *gorm.DB) (int64, error) {
	return balance(db, model.CustodyKindTreasury, treasuryHolder)
}

func balance(db *gorm.DB, kind model.CustodyKind, holder string) (int64, error) {
	var acct model.CustodyAccountModel
	err := db.Where("kind = ? AND holder = ?", kind, holder).First(&acct).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return acct.Balance, nil
}
