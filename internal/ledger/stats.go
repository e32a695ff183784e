package ledger

import (
	"fmt"
	"time"

	"github.com/jihanurrahman33/BREMS/internal/custody"
	"github.com/jihanurrahman33/BREMS/internal/model"
	"github.com/shopspring/decimal"
)

// PropertyStats 获取单个项目的统计信息
func (l *Ledger) PropertyStats(propertyId int64) (map[string]any, error) {
	property, err := l.GetProperty(propertyId)
	if err != nil {
		return nil, err
	}

	var investmentCount int64
	if err := l.db.Model(&model.InvestmentModel{}).
		Where("property_id = ?", propertyId).
		Count(&investmentCount).Error; err != nil {
		return nil, fmt.Errorf("failed to count investments: %w", err)
	}

	// 完成百分比与平均投资额用 decimal 计算，避免浮点误差
	completion := decimal.Zero
	if property.TargetFunding > 0 {
		completion = decimal.NewFromInt(property.CurrentFunding).
			Div(decimal.NewFromInt(property.TargetFunding)).
			Mul(decimal.NewFromInt(100)).
			Round(2)
	}

	average := decimal.Zero
	if investmentCount > 0 {
		average = decimal.NewFromInt(property.CurrentFunding).
			Div(decimal.NewFromInt(investmentCount)).
			Round(2)
	}

	remaining := time.Duration(0)
	if property.IsActive() && l.now().Before(property.Deadline) {
		remaining = property.Deadline.Sub(l.now())
	}

	return map[string]any{
		"property_id":           property.Id,
		"current_funding":       property.CurrentFunding,
		"target_funding":        property.TargetFunding,
		"completion_percentage": completion,
		"total_investors":       property.TotalInvestors,
		"investment_count":      investmentCount,
		"average_investment":    average,
		"remaining_time":        remaining.String(),
		"status":                property.Status,
	}, nil
}

// PlatformStats 获取平台整体统计信息
func (l *Ledger) PlatformStats() (map[string]any, error) {
	var totalProperties int64
	if err := l.db.Model(&model.PropertyModel{}).Count(&totalProperties).Error; err != nil {
		return nil, err
	}

	countByStatus := func(status model.PropertyStatus) (int64, error) {
		var count int64
		err := l.db.Model(&model.PropertyModel{}).
			Where("status = ?", status).Count(&count).Error
		return count, err
	}

	activeProperties, err := countByStatus(model.PropertyStatusActive)
	if err != nil {
		return nil, err
	}
	fundedProperties, err := countByStatus(model.PropertyStatusFunded)
	if err != nil {
		return nil, err
	}
	completedProperties, err := countByStatus(model.PropertyStatusCompleted)
	if err != nil {
		return nil, err
	}

	var totalRaised int64
	if err := l.db.Model(&model.PropertyModel{}).
		Select("COALESCE(SUM(current_funding), 0)").
		Scan(&totalRaised).Error; err != nil {
		return nil, err
	}

	var totalInvestors int64
	if err := l.db.Model(&model.InvestmentModel{}).
		Distinct("investor").
		Count(&totalInvestors).Error; err != nil {
		return nil, err
	}

	treasury, err := custody.TreasuryBalance(l.db)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"total_properties":     totalProperties,
		"active_properties":    activeProperties,
		"funded_properties":    fundedProperties,
		"completed_properties": completedProperties,
		"total_raised":         totalRaised,
		"total_investors":      totalInvestors,
		"treasury_balance":     treasury,
	}, nil
}
