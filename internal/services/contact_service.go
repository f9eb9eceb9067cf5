// Package services – ContactService
//
// This file implements the ContactService, which records inbound inquiries
// from the public contact form and exposes the read-only admin view of them.
// Messages are immutable once created: there is no update or delete path.
//
// A successful submission optionally triggers an email notification to the
// dealership. Notification failures are logged and never fail the request:
// the message is already persisted, which is the part that matters.
package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/jrautos/go-dealer-backend/internal/domain"
	"github.com/jrautos/go-dealer-backend/internal/repo"
)

// Mailer sends the new-inquiry notification email. Implementations must be
// safe for concurrent use. A nil Mailer disables notifications.
type Mailer interface {
	SendContactNotification(ctx context.Context, m domain.ContactMessage) error
}

// ContactService implements the contact-form use cases.
type ContactService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Mailer delivers notification emails; nil disables them.
	Mailer Mailer
	// NotifyTimeout bounds the background notification send.
	NotifyTimeout time.Duration
}

// Submit validates and persists an inquiry, returning the stored record
// with its server-assigned id. Clients treat the submission as successful
// only when the response carries an id. Name, email, and message are
// required; phone is optional. Email format is enforced at the transport
// layer (binding), so only presence is re-checked here.
func (s *ContactService) Submit(ctx context.Context, name, email, phone, message string) (*domain.ContactMessage, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	message = strings.TrimSpace(message)
	for _, f := range []struct{ n, v string }{
		{"name", name}, {"email", email}, {"message", message},
	} {
		if f.v == "" {
			return nil, wrapMissing(f.n)
		}
	}

	m, err := repo.CreateContactMessage(ctx, s.DB, &domain.ContactMessage{
		Name:    name,
		Email:   email,
		Phone:   strings.TrimSpace(phone),
		Message: message,
	})
	if err != nil {
		return nil, err
	}

	if s.Mailer != nil {
		s.notify(ctx, *m)
	} else {
		log.Info().Str("contact_id", m.ID).Msg("mailer not configured, contact message saved to database only")
	}
	return m, nil
}

// List returns inquiries newest first, capped at limit (<= 0 uses the
// repository default).
func (s *ContactService) List(ctx context.Context, limit int) ([]domain.ContactMessage, error) {
	return repo.ListContactMessages(ctx, s.DB, limit)
}

// notify sends the notification in the background so a slow mail provider
// cannot stall the response. The send survives request cancellation but is
// bounded by NotifyTimeout.
func (s *ContactService) notify(ctx context.Context, m domain.ContactMessage) {
	timeout := s.NotifyTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	bg, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	go func() {
		defer cancel()
		if err := s.Mailer.SendContactNotification(bg, m); err != nil {
			log.Error().Err(err).Str("contact_id", m.ID).Msg("failed to send contact notification")
			return
		}
		log.Info().Str("contact_id", m.ID).Str("email", m.Email).Msg("contact notification sent")
	}()
}

// wrapMissing mirrors the vehicle-side required-field error shape.
func wrapMissing(field string) error {
	return fmt.Errorf("%w: %s", ErrMissingFields, field)
}
