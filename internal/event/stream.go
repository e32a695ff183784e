// Package event 提供账本事件的订阅流。
// 事件行在命令事务内落库，提交成功后才会推送给订阅者。
package event

import (
	"sync"
	"time"

	"github.com/jihanurrahman33/BREMS/internal/logger"
	"github.com/panjf2000/ants/v2"
)

// Event 已提交的账本事件
type Event struct {
	Id         int64          `json:"id"`
	Type       string         `json:"type"`
	PropertyId int64          `json:"property_id"`
	Data       map[string]any `json:"data"`
	Timestamp  time.Time      `json:"timestamp"`
}

// Stream 组件私有的事件流，订阅者各自持有缓冲通道
type Stream struct {
	mu     sync.RWMutex
	subs   []chan Event
	pool   *ants.Pool
	closed bool
}

// NewStream 创建事件流，workers 为推送协程池大小
func NewStream(workers int) (*Stream, error) {
	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, err
	}
	return &Stream{pool: pool}, nil
}

// Subscribe 订阅事件流，返回只读通道
func (s *Stream) Subscribe(buffer int) <-chan Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	ch := make(chan Event, buffer)
	s.subs = append(s.subs, ch)
	return ch
}

// Publish 把已提交的事件推送给全部订阅者
func (s *Stream) Publish(events ...Event) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return
	}
	for _, ch := range s.subs {
		ch := ch
		evts := events
		if err := s.pool.Submit(func() {
			for _, e := range evts {
				select {
				case ch <- e:
				default:
					// 订阅者消费过慢时丢弃，不阻塞发布方
					logger.Warn("Event subscriber is slow, dropping event %s (id=%d)", e.Type, e.Id)
				}
			}
		}); err != nil {
			logger.Error("Failed to submit event dispatch task: %v", err)
		}
	}
}

// Close 关闭事件流和所有订阅通道
func (s *Stream) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	// 等在途的推送任务结束，再关闭订阅通道
	if err := s.pool.ReleaseTimeout(3 * time.Second); err != nil {
		logger.Warn("Event dispatch pool did not drain in time: %v", err)
	}
	for _, ch := range s.subs {
		close(ch)
	}
	s.subs = nil
}
