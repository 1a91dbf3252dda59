// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pii-keeper/internal/logger"
	"github.com/MKhiriev/go-pii-keeper/internal/service"
)

const defaultSweepInterval = 10 * time.Minute

// SessionSweeper deletes expired sessions on a fixed interval. The cached
// data key of a session goes away with its row.
type SessionSweeper struct {
	sessions service.SessionService
	interval time.Duration
	logger   *logger.Logger
}

func NewSessionSweeper(sessions service.SessionService, interval time.Duration, logger *logger.Logger) *SessionSweeper {
	if interval <= 0 {
		interval = defaultSweepInterval
	}
	return &SessionSweeper{
		sessions: sessions,
		interval: interval,
		logger:   logger,
	}
}

// Run sweeps once immediately and then on every tick until ctx is done.
func (s *SessionSweeper) Run(ctx context.Context) {
	s.logger.Info().Dur("interval", s.interval).Msg("session sweeper started")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		s.sweep(ctx)

		select {
		case <-ctx.Done():
			s.logger.Info().Msg("session sweeper stopped")
			return
		case <-ticker.C:
		}
	}
}

func (s *SessionSweeper) sweep(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	deleted, err := s.sessions.DeleteExpiredSessions(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("expired session sweep failed")
		return
	}
	if deleted > 0 {
		s.logger.Info().Int64("deleted", deleted).Msg("expired sessions deleted")
	}
}
