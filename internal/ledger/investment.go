package ledger

import (
	"errors"
	"fmt"

	"github.com/jihanurrahman33/BREMS/internal/custody"
	"github.com/jihanurrahman33/BREMS/internal/model"
	"gorm.io/gorm"
)

// Invest 记录一笔投资。valueSent 为随命令转入托管的实际金额，
// 必须与申报金额一致。投资记录、募集进度、投资人计数、托管入账、
// 代币奖励与事件在同一事务内提交。
func (l *Ledger) Invest(propertyId int64, investor string, amount, valueSent int64) (int64, error) {
	var investmentId int64
	err := l.execute(func(tx *gorm.DB, ev *eventBuffer) error {
		var property model.PropertyModel
		if err := tx.First(&property, propertyId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPropertyNotFound
			}
			return err
		}

		if !property.IsActive() {
			return ErrNotActive
		}
		if l.now().After(property.Deadline) {
			return ErrDeadlinePassed
		}
		if amount < property.MinInvestment {
			return ErrBelowMinimum
		}
		if amount > property.MaxInvestment {
			return ErrAboveMaximum
		}
		if valueSent != amount {
			return ErrAmountMismatch
		}

		investment := model.InvestmentModel{
			PropertyId: propertyId,
			Investor:   investor,
			Amount:     amount,
			Status:     model.InvestmentStatusActive,
		}
		if err := tx.Create(&investment).Error; err != nil {
			return fmt.Errorf("failed to create investment: %w", err)
		}
		investmentId = investment.Id

		if err := custody.Deposit(tx, propertyId, amount); err != nil {
			return fmt.Errorf("failed to deposit to escrow: %w", err)
		}

		firstInvestment, err := l.updatePosition(tx, propertyId, investor, amount)
		if err != nil {
			return err
		}
		if firstInvestment {
			if err := tx.Model(&property).
				Update("total_investors", gorm.Expr("total_investors + 1")).Error; err != nil {
				return fmt.Errorf("failed to update investor count: %w", err)
			}
		}

		reward := amount * l.rewardRate
		if err := l.issuer.Mint(tx, MinterID, investor, reward); err != nil {
			return fmt.Errorf("failed to mint reward tokens: %w", err)
		}

		if err := ev.emit(tx, model.EventInvestmentMade, propertyId, map[string]any{
			"investment_id": investment.Id,
			"property_id":   propertyId,
			"investor":      investor,
			"amount":        amount,
		}); err != nil {
			return err
		}
		if err := ev.emit(tx, model.EventTokenRewardPaid, propertyId, map[string]any{
			"investor":      investor,
			"reward_amount": reward,
		}); err != nil {
			return err
		}

		return l.recordFundingProgress(tx, ev, &property, amount)
	})
	if err != nil {
		return 0, err
	}
	return investmentId, nil
}

// updatePosition 维护投资人在项目上的累计持仓，返回是否为首笔投资
func (l *Ledger) updatePosition(tx *gorm.DB, propertyId int64, investor string, delta int64) (bool, error) {
	var position model.InvestorPositionModel
	err := tx.Where("property_id = ? AND investor = ?", propertyId, investor).
		First(&position).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		position = model.InvestorPositionModel{
			PropertyId: propertyId,
			Investor:   investor,
			Total:      delta,
		}
		if err := tx.Create(&position).Error; err != nil {
			return false, fmt.Errorf("failed to create investor position: %w", err)
		}
		return true, nil
	}
	if err != nil {
		return false, err
	}

	if err := tx.Model(&position).
		Update("total", gorm.Expr("total + ?", delta)).Error; err != nil {
		return false, fmt.Errorf("failed to update investor position: %w", err)
	}
	return false, nil
}

// GetInvestment 获取投资记录
func (l *Ledger) GetInvestment(id int64) (*model.InvestmentModel, error) {
	var investment model.InvestmentModel
	if err := l.db.First(&investment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvestmentNotFound
		}
		return nil, fmt.Errorf("failed to get investment: %w", err)
	}
	return &investment, nil
}

// GetUserInvestments 按创建顺序获取投资人的全部投资记录
func (l *Ledger) GetUserInvestments(investor string) ([]model.InvestmentModel, error) {
	var investments []model.InvestmentModel
	if err := l.db.Where("investor = ?", investor).
		Order("id ASC").Find(&investments).Error; err != nil {
		return nil, fmt.Errorf("failed to get user investments: %w", err)
	}
	return investments, nil
}

// GetUserInvestment 获取投资人在项目上的持有中累计金额，无记录时为 0
func (l *Ledger) GetUserInvestment(propertyId int64, investor string) (int64, error) {
	var position model.InvestorPositionModel
	err := l.db.Where("property_id = ? AND investor = ?", propertyId, investor).
		First(&position).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return position.Total, nil
}

// WithdrawInvestment 项目完成后投资人退出，退还原始本金
func (l *Ledger) WithdrawInvestment(investmentId int64, caller string) error {
	return l.execute(func(tx *gorm.DB, ev *eventBuffer) error {
		var investment model.InvestmentModel
		if err := tx.First(&investment, investmentId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrInvestmentNotFound
			}
			return err
		}

		if caller != investment.Investor {
			return ErrUnauthorized
		}
		if investment.Status == model.InvestmentStatusWithdrawn {
			return ErrAlreadyWithdrawn
		}

		var property model.PropertyModel
		if err := tx.First(&property, investment.PropertyId).Error; err != nil {
			return err
		}
		if !property.IsCompleted() {
			return ErrPropertyNotCompleted
		}

		if err := tx.Model(&investment).
			Update("status", model.InvestmentStatusWithdrawn).Error; err != nil {
			return fmt.Errorf("failed to withdraw investment: %w", err)
		}

		if err := custody.Refund(tx, investment.PropertyId, investment.Investor, investment.Amount); err != nil {
			return fmt.Errorf("failed to refund principal: %w", err)
		}

		// 持仓扣减，投资人计数保留为募集期高水位
		if err := tx.Model(&model.InvestorPositionModel{}).
			Where("property_id = ? AND investor = ?", investment.PropertyId, investment.Investor).
			Update("total", gorm.Expr("total - ?", investment.Amount)).Error; err != nil {
			return fmt.Errorf("failed to update investor position: %w", err)
		}

		refund := model.RefundRecordModel{
			PropertyId:   investment.PropertyId,
			InvestmentId: investment.Id,
			Investor:     investment.Investor,
			Amount:       investment.Amount,
		}
		if err := tx.Create(&refund).Error; err != nil {
			return fmt.Errorf("failed to create refund record: %w", err)
		}

		return ev.emit(tx, model.EventInvestmentWithdrawn, investment.PropertyId, map[string]any{
			"investment_id": investment.Id,
			"investor":      investment.Investor,
			"amount":        investment.Amount,
		})
	})
}
