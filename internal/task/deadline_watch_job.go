package task

import (
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/jihanurrahman33/BREMS/internal/config"
	"github.com/jihanurrahman33/BREMS/internal/ledger"
	"github.com/jihanurrahman33/BREMS/internal/logger"
	"github.com/jihanurrahman33/BREMS/internal/model"
)

// DeadlineWatchJob 巡检超过截止时间仍未达标的项目。
// 截止时间不触发状态转换，只在投资入口拒绝新资金，这里仅记录日志。
type DeadlineWatchJob struct {
	ledger *ledger.Ledger
	config *config.Config
}

// NewDeadlineWatchJob 创建截止时间巡检任务
func NewDeadlineWatchJob(l *ledger.Ledger, cfg *config.Config) *DeadlineWatchJob {
	return &DeadlineWatchJob{
		ledger: l,
		config: cfg,
	}
}

// GetName 获取任务名称
func (j *DeadlineWatchJob) GetName() string {
	return "deadline_watcher"
}

// GetSchedule 获取调度配置
func (j *DeadlineWatchJob) GetSchedule() gocron.JobDefinition {
	return gocron.DurationJob(time.Duration(j.config.Task.Interval) * time.Second)
}

// Execute 执行任务
func (j *DeadlineWatchJob) Execute() {
	properties, _, err := j.ledger.ListProperties(string(model.PropertyStatusActive), "", 1000, 0)
	if err != nil {
		logger.Error("Failed to fetch active properties: %v", err)
		return
	}

	now := time.Now()
	expired := 0
	for _, property := range properties {
		if now.After(property.Deadline) {
			expired++
			logger.Warn("Property %d (%s) passed deadline with %d/%d funded",
				property.Id, property.Title, property.CurrentFunding, property.TargetFunding)
		}
	}

	if expired > 0 {
		logger.Info("Deadline watch found %d expired active properties", expired)
	}
}
