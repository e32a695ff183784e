package task

import (
	"github.com/go-co-op/gocron/v2"
	"github.com/jihanurrahman33/BREMS/internal/config"
	"github.com/jihanurrahman33/BREMS/internal/ledger"
	"github.com/jihanurrahman33/BREMS/internal/logger"
)

// Manager 任务管理器
type Manager struct {
	scheduler gocron.Scheduler
	ledger    *ledger.Ledger
	config    *config.Config
}

// NewManager 创建新的任务管理器
func NewManager(l *ledger.Ledger, cfg *config.Config) *Manager {
	s, err := gocron.NewScheduler()
	if err != nil {
		logger.Fatal("Failed to create scheduler: %v", err)
	}

	return &Manager{
		scheduler: s,
		ledger:    l,
		config:    cfg,
	}
}

// Start 启动任务管理器
func Start(l *ledger.Ledger, cfg *config.Config) *Manager {
	manager := NewManager(l, cfg)
	manager.RegisterJobs()
	manager.scheduler.Start()

	logger.Info("Task manager started successfully")
	return manager
}

// RegisterJobs 注册所有任务
func (m *Manager) RegisterJobs() {
	m.registerJob(NewDeadlineWatchJob(m.ledger, m.config))
}

// Job 定时任务
type Job interface {
	GetName() string
	GetSchedule() gocron.JobDefinition
	Execute()
}

func (m *Manager) registerJob(job Job) {
	_, err := m.scheduler.NewJob(
		job.GetSchedule(),
		gocron.NewTask(job.Execute),
		gocron.WithName(job.GetName()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		logger.Error("Failed to register job %s: %v", job.GetName(), err)
	}
}

// Stop 停止任务管理器
func (m *Manager) Stop() {
	if err := m.scheduler.Shutdown(); err != nil {
		logger.Error("Failed to shutdown scheduler: %v", err)
	}
	logger.Info("Task manager stopped")
}
