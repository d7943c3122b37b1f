package services

import (
	"context"
	"log"
	"time"

	"torrealta-portal/internal/adapters/persistence/repositories"
	"torrealta-portal/internal/core/domain"

	"github.com/robfig/cron/v3"
)

// CronService runs the scheduled portal jobs
type CronService struct {
	cron          *cron.Cron
	userRepo      repositories.UserRepository
	sessionRepo   repositories.SessionRepository
	notifyService *NotificationService
}

// NewCronService creates a new cron service
func NewCronService(
	userRepo repositories.UserRepository,
	sessionRepo repositories.SessionRepository,
	notifyService *NotificationService,
) *CronService {
	return &CronService{
		cron:          cron.New(),
		userRepo:      userRepo,
		sessionRepo:   sessionRepo,
		notifyService: notifyService,
	}
}

// Start registers and starts the scheduled jobs
func (s *CronService) Start() error {
	// Payment reminders every morning at 08:30
	if _, err := s.cron.AddFunc("30 8 * * *", s.sendPaymentReminders); err != nil {
		return err
	}

	// Expired session cleanup every night at 03:00
	if _, err := s.cron.AddFunc("0 3 * * *", s.cleanupSessions); err != nil {
		return err
	}

	s.cron.Start()
	log.Println("⏰ Cron jobs started")
	return nil
}

// Stop stops the scheduler and waits for running jobs
func (s *CronService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("🛑 Cron jobs stopped")
}

// sendPaymentReminders pushes a feed entry for every resident whose
// due date is close or already passed
func (s *CronService) sendPaymentReminders() {
	ctx := context.Background()
	now := time.Now()

	users, err := s.userRepo.List(ctx)
	if err != nil {
		log.Printf("⚠️ Payment reminder job failed: %v", err)
		return
	}

	standing := Standing(now)
	if standing.Estado == "normal" {
		return
	}

	var sent int
	for _, user := range users {
		if user.Rol != domain.RolResidente || user.UnidadAsignada == "" {
			continue
		}
		s.notifyService.NotifyPaymentReminder(ctx, user, standing)
		sent++
	}

	if sent > 0 {
		log.Printf("⏰ Payment reminders sent: %d (%s)", sent, standing.Estado)
	}
}

// cleanupSessions drops expired refresh sessions
func (s *CronService) cleanupSessions() {
	if err := s.sessionRepo.DeleteExpired(context.Background()); err != nil {
		log.Printf("⚠️ Session cleanup failed: %v", err)
		return
	}
	log.Println("🧹 Expired sessions cleaned up")
}
