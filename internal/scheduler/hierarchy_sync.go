package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/meta-ads-agent/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-ads-agent/internal/config"
	"github.com/vfg2006/meta-ads-agent/internal/domain"
)

const syncTimeout = 10 * time.Minute

var ErrSyncRunning = errors.New("sincronização já em andamento")

// HierarchySyncer é satisfeito por campaigning.CampaignService
type HierarchySyncer interface {
	SyncHierarchy(ctx context.Context, filters domain.CampaignHierarchyFilters) (*domain.SyncResponse, error)
}

// HierarchySyncConfig representa a configuração do agendador de snapshots
type HierarchySyncConfig struct {
	CronSchedule string
	Limit        int
	DatePreset   string
	SyncEnabled  bool
}

// HierarchySyncService agenda a gravação periódica de snapshots da hierarquia de campanhas
type HierarchySyncService struct {
	scheduler *gocron.Scheduler
	job       *gocron.Job
	config    HierarchySyncConfig
	syncer    HierarchySyncer

	syncMutex   sync.Mutex
	syncRunning bool
	lastRunAt   *time.Time
	lastErr     string
}

func NewHierarchySyncService(syncer HierarchySyncer, cfg config.HierarchySync) *HierarchySyncService {
	syncConfig := HierarchySyncConfig{
		CronSchedule: cfg.CronSchedule,
		Limit:        cfg.Limit,
		DatePreset:   cfg.DatePreset,
		SyncEnabled:  cfg.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"limit":         syncConfig.Limit,
		"date_preset":   syncConfig.DatePreset,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de snapshots carregada")

	return &HierarchySyncService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    syncConfig,
		syncer:    syncer,
	}
}

// Start inicia o agendador; não faz nada quando a sincronização está desligada
func (s *HierarchySyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de snapshots desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de snapshots da hierarquia")

	job, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		runCtx, cancel := context.WithTimeout(context.Background(), syncTimeout)
		defer cancel()

		if _, err := s.RunNow(runCtx); err != nil && !errors.Is(err, ErrSyncRunning) {
			logrus.WithError(err).Error("Erro na sincronização agendada de snapshots")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de snapshots: %w", err)
	}
	s.job = job

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de snapshots")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *HierarchySyncService) filters() (domain.CampaignHierarchyFilters, error) {
	dateRange, err := metadomain.ParseDateRange(s.config.DatePreset, "", "")
	if err != nil {
		return domain.CampaignHierarchyFilters{}, err
	}

	return domain.CampaignHierarchyFilters{
		Limit:     s.config.Limit,
		DateRange: dateRange,
	}, nil
}

// RunNow executa uma sincronização imediatamente. Retorna ErrSyncRunning se já houver uma em andamento.
func (s *HierarchySyncService) RunNow(ctx context.Context) (*domain.SyncResponse, error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de snapshots já em andamento, ignorando")
		return nil, ErrSyncRunning
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()

	resp, err := s.run(ctx)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastRunAt = &startTime
	s.lastErr = ""
	if err != nil {
		s.lastErr = err.Error()
	}
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"success":  err == nil,
	}).Info("Sincronização de snapshots finalizada")

	return resp, err
}

func (s *HierarchySyncService) run(ctx context.Context) (*domain.SyncResponse, error) {
	filters, err := s.filters()
	if err != nil {
		return nil, err
	}

	return s.syncer.SyncHierarchy(ctx, filters)
}

// GetStatus retorna o status atual do agendador
func (s *HierarchySyncService) GetStatus() *domain.SyncStatus {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := &domain.SyncStatus{
		Enabled:  s.config.SyncEnabled,
		Running:  s.syncRunning,
		Schedule: s.config.CronSchedule,
		LastRun:  s.lastRunAt,
		LastErr:  s.lastErr,
	}

	if s.job != nil {
		next := s.job.NextRun()
		if !next.IsZero() {
			status.NextRun = &next
		}
	}

	return status
}
