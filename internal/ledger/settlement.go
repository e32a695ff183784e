package ledger

import (
	"fmt"

	"github.com/jihanurrahman33/BREMS/internal/custody"
	"github.com/jihanurrahman33/BREMS/internal/model"
	"gorm.io/gorm"
)

// settleOwnerPayout 项目完成时的业主结算：按当前费率扣除平台手续费，
// 余款释放给业主，手续费入平台金库。托管的投资人本金不参与本次出账，
// 结算后托管余额仍覆盖全部持有中本金。
func (l *Ledger) settleOwnerPayout(tx *gorm.DB, property *model.PropertyModel) error {
	rate, err := l.feeRate(tx)
	if err != nil {
		return err
	}

	total := property.CurrentFunding
	fee := total * rate / 100
	ownerAmount := total - fee

	if err := custody.CreditWallet(tx, property.Owner, ownerAmount); err != nil {
		return fmt.Errorf("failed to release owner payout: %w", err)
	}
	if err := custody.CreditTreasury(tx, fee); err != nil {
		return fmt.Errorf("failed to collect platform fee: %w", err)
	}

	record := model.SettlementRecordModel{
		PropertyId:  property.Id,
		Owner:       property.Owner,
		TotalAmount: total,
		PlatformFee: fee,
		OwnerAmount: ownerAmount,
		FeeRate:     rate,
	}
	if err := tx.Create(&record).Error; err != nil {
		return fmt.Errorf("failed to create settlement record: %w", err)
	}
	return nil
}

// feeRate 读取当前平台费率
func (l *Ledger) feeRate(tx *gorm.DB) (int64, error) {
	var state model.PlatformStateModel
	if err := tx.First(&state).Error; err != nil {
		return 0, fmt.Errorf("failed to load platform state: %w", err)
	}
	return state.FeeRate, nil
}

// PlatformFee 查询当前平台费率（百分比）
func (l *Ledger) PlatformFee() (int64, error) {
	return l.feeRate(l.db)
}

// UpdatePlatformFee 管理员更新平台费率，上限 10%
func (l *Ledger) UpdatePlatformFee(newRate int64, caller string) error {
	if caller != l.admin {
		return ErrUnauthorized
	}
	if newRate < 0 || newRate > 10 {
		return ErrFeeTooHigh
	}

	return l.execute(func(tx *gorm.DB, ev *eventBuffer) error {
		var state model.PlatformStateModel
		if err := tx.First(&state).Error; err != nil {
			return fmt.Errorf("failed to load platform state: %w", err)
		}
		if err := tx.Model(&state).Update("fee_rate", newRate).Error; err != nil {
			return fmt.Errorf("failed to update platform fee: %w", err)
		}
		return nil
	})
}

// WithdrawTreasury 管理员提取平台金库全部余额，返回提取金额
func (l *Ledger) WithdrawTreasury(caller string) (int64, error) {
	if caller != l.admin {
		return 0, ErrUnauthorized
	}

	var amount int64
	err := l.execute(func(tx *gorm.DB, ev *eventBuffer) error {
		balance, err := custody.TreasuryBalance(tx)
		if err != nil {
			return err
		}
		amount = balance
		if balance == 0 {
			return nil
		}
		return custody.WithdrawTreasury(tx, caller, balance)
	})
	if err != nil {
		return 0, err
	}
	return amount, nil
}

// GetSettlementRecord 查询项目的结算记录
func (l *Ledger) GetSettlementRecord(propertyId int64) (*model.SettlementRecordModel, error) {
	var record model.SettlementRecordModel
	if err := l.db.Where("property_id = ?", propertyId).First(&record).Error; err != nil {
		return nil, fmt.Errorf("failed to get settlement record: %w", err)
	}
	return &record, nil
}
