// Package services – StatusService
//
// Minimal uptime-probe bookkeeping: external monitors POST a client name,
// we store it with a timestamp and let the same monitors read the history.
package services

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/jrautos/go-dealer-backend/internal/domain"
	"github.com/jrautos/go-dealer-backend/internal/repo"
)

// StatusService records and lists uptime probes.
type StatusService struct {
	DB *gorm.DB
}

// Record stores a probe for clientName.
func (s *StatusService) Record(ctx context.Context, clientName string) (*domain.StatusCheck, error) {
	clientName = strings.TrimSpace(clientName)
	if clientName == "" {
		return nil, wrapMissing("client_name")
	}
	return repo.CreateStatusCheck(ctx, s.DB, clientName)
}

// List returns probes newest first, capped at limit.
func (s *StatusService) List(ctx context.Context, limit int) ([]domain.StatusCheck, error) {
	return repo.ListStatusChecks(ctx, s.DB, limit)
}
