// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for contact
// messages and status checks. Both stores are append-only: there are no
// update or delete operations by design.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jrautos/go-dealer-backend/internal/domain"
)

// CreateContactMessage inserts a new inbound inquiry with a generated UUID
// and UTC timestamp, returning the persisted record.
func CreateContactMessage(ctx context.Context, db *gorm.DB, m *domain.ContactMessage) (*domain.ContactMessage, error) {
	m.ID = uuid.NewString()
	m.CreatedAt = time.Now().UTC()
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return m, nil
}

// ListContactMessages returns inquiries newest first, capped at limit.
// A limit <= 0 falls back to 1000.
func ListContactMessages(ctx context.Context, db *gorm.DB, limit int) ([]domain.ContactMessage, error) {
	if limit <= 0 {
		limit = 1000
	}
	var out []domain.ContactMessage
	err := db.WithContext(ctx).
		Order("created_at desc").
		Limit(limit).
		Find(&out).Error
	return out, err
}

// CreateStatusCheck records an uptime probe for clientName.
func CreateStatusCheck(ctx context.Context, db *gorm.DB, clientName string) (*domain.StatusCheck, error) {
	s := &domain.StatusCheck{
		ID:         uuid.NewString(),
		ClientName: clientName,
		Timestamp:  time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(s).Error; err != nil {
		return nil, err
	}
	return s, nil
}

// ListStatusChecks returns probe records newest first, capped at limit.
// A limit <= 0 falls back to 1000.
func ListStatusChecks(ctx context.Context, db *gorm.DB, limit int) ([]domain.StatusCheck, error) {
	if limit <= 0 {
		limit = 1000
	}
	var out []domain.StatusCheck
	err := db.WithContext(ctx).
		Order("timestamp desc").
		Limit(limit).
		Find(&out).Error
	return out, err
}
