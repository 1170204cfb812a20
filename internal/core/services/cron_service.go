package services

import (
	"context"
	"log"
	"time"

	"menugate/internal/adapters/persistence/repositories"
	"menugate/internal/pkg/token"

	"github.com/robfig/cron/v3"
)

// CronService runs the scheduled session sweep. Login overwrites and
// logout clears the persisted refresh token, but a session abandoned
// without logout leaves an expired token on the user row until the
// sweeper clears it.
type CronService struct {
	cron     *cron.Cron
	userRepo repositories.UserRepository
	tokens   *token.Service
}

// NewCronService creates a new cron service
func NewCronService(userRepo repositories.UserRepository, tokens *token.Service) *CronService {
	return &CronService{
		cron:     cron.New(),
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Start schedules the session sweep (03:30 daily) and starts the scheduler
func (s *CronService) Start() {
	if _, err := s.cron.AddFunc("30 3 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		cleared, err := s.SweepExpiredSessions(ctx)
		if err != nil {
			log.Printf("session sweep failed: %v", err)
			return
		}
		log.Printf("session sweep cleared %d expired session(s)", cleared)
	}); err != nil {
		log.Printf("failed to schedule session sweep: %v", err)
		return
	}

	s.cron.Start()
	log.Println("cron service started")
}

// Stop stops the scheduler
func (s *CronService) Stop() {
	s.cron.Stop()
}

// SweepExpiredSessions clears persisted refresh tokens that no longer
// decode and returns how many sessions were cleared.
func (s *CronService) SweepExpiredSessions(ctx context.Context) (int, error) {
	users, err := s.userRepo.ListWithRefreshToken(ctx)
	if err != nil {
		return 0, err
	}

	cleared := 0
	for _, user := range users {
		if user.RefreshToken == nil {
			continue
		}
		if _, err := s.tokens.DecodeRefreshToken(*user.RefreshToken); err == nil {
			continue
		}
		if err := s.userRepo.SetRefreshToken(ctx, user.ID, nil); err != nil {
			return cleared, err
		}
		cleared++
	}

	return cleared, nil
}
