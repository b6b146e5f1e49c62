package jobs

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
)

// Scheduler управляет фоновыми cron-задачами сервиса
type Scheduler struct {
	cron      *cron.Cron
	completer AppointmentCompleter
	time      TimeProvider
	logger    Logger
}

// NewScheduler создает новый планировщик фоновых задач
func NewScheduler(completer AppointmentCompleter, logger Logger) *Scheduler {
	return &Scheduler{
		cron:      cron.New(),
		completer: completer,
		time:      &RealTimeProvider{},
		logger:    logger,
	}
}

// Start регистрирует задачи по расписанию и запускает планировщик.
// schedule задается в стандартном cron-формате из пяти полей
func (s *Scheduler) Start(schedule string) error {
	if _, err := s.cron.AddFunc(schedule, s.runCompleteAppointments); err != nil {
		return fmt.Errorf("jobs: failed to schedule appointment completion: %w", err)
	}

	s.cron.Start()
	s.logger.Info("Jobs: scheduler started, appointment completion schedule=%q", schedule)
	return nil
}

// Stop останавливает планировщик и дожидается завершения текущих задач
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Jobs: scheduler stopped")
}

// runCompleteAppointments переводит прошедшие подтвержденные записи в COMPLETED
func (s *Scheduler) runCompleteAppointments() {
	now := s.time.Now()
	s.logger.Info("Jobs: completing confirmed appointments before %s", now.Format("2006-01-02 15:04"))

	count, err := s.completer.CompletePastAppointments(context.Background(), now)
	if err != nil {
		s.logger.Error("Jobs: appointment completion failed: %v", err)
		return
	}

	if count > 0 {
		s.logger.Info("Jobs: marked %d appointments as completed", count)
	}
}
