// Package ledger 实现众筹账本核心：项目目录、投资记录、结算引擎。
// 每个命令在账本互斥锁内以单个数据库事务执行，事务失败时所有
// 状态变更（记录、托管余额、代币余额、事件）一并回滚。
package ledger

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/jihanurrahman33/BREMS/internal/config"
	"github.com/jihanurrahman33/BREMS/internal/event"
	"github.com/jihanurrahman33/BREMS/internal/model"
	"github.com/jihanurrahman33/BREMS/internal/token"
	"gorm.io/gorm"
)

// MinterID 账本在代币发行方处的调用方标识
const MinterID = "property-ledger"

// Ledger 众筹账本
type Ledger struct {
	db         *gorm.DB
	issuer     *token.Issuer
	stream     *event.Stream
	admin      string
	rewardRate int64

	mu  sync.Mutex
	now func() time.Time
}

// New 创建账本并初始化平台参数。费率只在首次启动时用配置值落库，
// 之后以库中值为准，管理员更新后重启不丢失。
func New(db *gorm.DB, issuer *token.Issuer, cfg config.PlatformConfig) (*Ledger, error) {
	// 单协程推送保证订阅者看到的事件顺序与落库顺序一致
	stream, err := event.NewStream(1)
	if err != nil {
		return nil, err
	}

	var state model.PlatformStateModel
	err = db.First(&state).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		state = model.PlatformStateModel{FeeRate: cfg.FeeRate}
		if err := db.Create(&state).Error; err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	return &Ledger{
		db:         db,
		issuer:     issuer,
		stream:     stream,
		admin:      cfg.Admin,
		rewardRate: cfg.RewardRate,
		now:        time.Now,
	}, nil
}

// Subscribe 订阅账本事件流
func (l *Ledger) Subscribe(buffer int) <-chan event.Event {
	return l.stream.Subscribe(buffer)
}

// Close 关闭账本事件流
func (l *Ledger) Close() {
	l.stream.Close()
}

// execute 在互斥锁内以单事务执行一个命令，提交成功后推送缓冲的事件。
func (l *Ledger) execute(fn func(tx *gorm.DB, ev *eventBuffer) error) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	var ev eventBuffer
	err := l.db.Transaction(func(tx *gorm.DB) error {
		return fn(tx, &ev)
	})
	if err != nil {
		return err
	}

	l.stream.Publish(ev.events...)
	return nil
}

// eventBuffer 命令执行期间缓冲的事件，落库在事务内、推送在提交后
type eventBuffer struct {
	events []event.Event
}

// emit 在事务内追加一条事件记录
func (b *eventBuffer) emit(tx *gorm.DB, eventType string, propertyId int64, data map[string]any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}

	row := model.EventModel{
		EventType:  eventType,
		PropertyId: propertyId,
		Data:       string(payload),
	}
	if err := tx.Create(&row).Error; err != nil {
		return err
	}

	b.events = append(b.events, event.Event{
		Id:         row.Id,
		Type:       eventType,
		PropertyId: propertyId,
		Data:       data,
		Timestamp:  row.CreatedAt,
	})
	return nil
}

// GetEvents 按追加顺序查询事件记录，propertyId 为 0 时不过滤
func (l *Ledger) GetEvents(propertyId int64, limit, offset int) ([]model.EventModel, int64, error) {
	query := l.db.Model(&model.EventModel{})
	if propertyId > 0 {
		query = query.Where("property_id = ?", propertyId)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var events []model.EventModel
	if err := query.Order("id ASC").Limit(limit).Offset(offset).Find(&events).Error; err != nil {
		return nil, 0, err
	}
	return events, total, nil
}
