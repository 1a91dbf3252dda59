package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pii-keeper/internal/logger"
	"github.com/MKhiriev/go-pii-keeper/internal/store"
)

type sessionService struct {
	sessionRepository store.SessionRepository
	now               func() time.Time

	logger *logger.Logger
}

func NewSessionService(sessionRepository store.SessionRepository, logger *logger.Logger) SessionService {
	return &sessionService{
		sessionRepository: sessionRepository,
		now:               time.Now,
		logger:            logger,
	}
}

func (s *sessionService) DeleteExpiredSessions(ctx context.Context) (int64, error) {
	return s.sessionRepository.DeleteExpiredSessions(ctx, s.now())
}
