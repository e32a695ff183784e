package ledger

import (
	"errors"
	"fmt"
	"time"

	"github.com/jihanurrahman33/BREMS/internal/model"
	"gorm.io/gorm"
)

// CreatePropertyParams 创建项目的命令参数
type CreatePropertyParams struct {
	Owner         string
	Title         string
	Description   string
	MediaHash     string
	Location      string
	TotalValue    int64
	MinInvestment int64
	MaxInvestment int64
	TargetFunding int64
	Deadline      time.Time
}

// CreateProperty 创建众筹项目，返回项目ID
func (l *Ledger) CreateProperty(params CreatePropertyParams) (int64, error) {
	if params.MinInvestment > params.MaxInvestment {
		return 0, ErrInvalidRange
	}
	if params.TargetFunding > params.TotalValue {
		return 0, ErrTargetExceedsValue
	}
	if !params.Deadline.After(l.now()) {
		return 0, ErrDeadlineInPast
	}

	var propertyId int64
	err := l.execute(func(tx *gorm.DB, ev *eventBuffer) error {
		property := model.PropertyModel{
			Owner:         params.Owner,
			Title:         params.Title,
			Description:   params.Description,
			MediaHash:     params.MediaHash,
			Location:      params.Location,
			TotalValue:    params.TotalValue,
			MinInvestment: params.MinInvestment,
			MaxInvestment: params.MaxInvestment,
			TargetFunding: params.TargetFunding,
			Deadline:      params.Deadline,
			Status:        model.PropertyStatusActive,
		}
		if err := tx.Create(&property).Error; err != nil {
			return fmt.Errorf("failed to create property: %w", err)
		}
		propertyId = property.Id

		return ev.emit(tx, model.EventPropertyCreated, property.Id, map[string]any{
			"property_id":    property.Id,
			"owner":          property.Owner,
			"title":          property.Title,
			"target_funding": property.TargetFunding,
		})
	})
	if err != nil {
		return 0, err
	}
	return propertyId, nil
}

// GetProperty 获取项目详情
func (l *Ledger) GetProperty(id int64) (*model.PropertyModel, error) {
	var property model.PropertyModel
	if err := l.db.First(&property, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, fmt.Errorf("failed to get property: %w", err)
	}
	return &property, nil
}

// GetTotalProperties 获取项目总数
func (l *Ledger) GetTotalProperties() (int64, error) {
	var total int64
	if err := l.db.Model(&model.PropertyModel{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// ListProperties 按状态过滤并检索项目列表
func (l *Ledger) ListProperties(status, search string, limit, offset int) ([]model.PropertyModel, int64, error) {
	query := l.db.Model(&model.PropertyModel{})

	if status != "" && status != "all" {
		query = query.Where("status = ?", status)
	}
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("title LIKE ? OR description LIKE ? OR location LIKE ?",
			pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var properties []model.PropertyModel
	if err := query.Order("id ASC").Limit(limit).Offset(offset).Find(&properties).Error; err != nil {
		return nil, 0, err
	}
	return properties, total, nil
}

// recordFundingProgress 投资成功后累加项目募集金额，首次达标时翻转为 funded。
// 阈值判断用 >=，最后一笔投资允许越过目标金额。
func (l *Ledger) recordFundingProgress(tx *gorm.DB, ev *eventBuffer, property *model.PropertyModel, delta int64) error {
	newTotal := property.CurrentFunding + delta
	updates := map[string]any{"current_funding": newTotal}

	funded := property.Status == model.PropertyStatusActive && newTotal >= property.TargetFunding
	if funded {
		updates["status"] = model.PropertyStatusFunded
	}

	if err := tx.Model(property).Updates(updates).Error; err != nil {
		return fmt.Errorf("failed to record funding progress: %w", err)
	}

	if funded {
		return ev.emit(tx, model.EventPropertyFunded, property.Id, map[string]any{
			"property_id":   property.Id,
			"total_funding": newTotal,
		})
	}
	return nil
}

// CompleteProperty 业主完成已达标项目并触发结算
func (l *Ledger) CompleteProperty(propertyId int64, caller string) error {
	return l.execute(func(tx *gorm.DB, ev *eventBuffer) error {
		var property model.PropertyModel
		if err := tx.First(&property, propertyId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPropertyNotFound
			}
			return err
		}

		if caller != property.Owner {
			return ErrUnauthorized
		}
		if property.Status != model.PropertyStatusFunded {
			// 覆盖未达标与已完成两种情况，重复完成不会二次打款
			return ErrNotFunded
		}

		if err := tx.Model(&property).
			Update("status", model.PropertyStatusCompleted).Error; err != nil {
			return fmt.Errorf("failed to complete property: %w", err)
		}

		if err := l.settleOwnerPayout(tx, &property); err != nil {
			return err
		}

		return ev.emit(tx, model.EventPropertyCompleted, property.Id, map[string]any{
			"property_id": property.Id,
			"owner":       property.Owner,
		})
	})
}
