package repo

import (
	"context"
	"testing"
	"time"

	"github.com/jrautos/go-dealer-backend/internal/domain"
)

func TestCreateContactMessage_AssignsIDAndTimestamp(t *testing.T) {
	db := newRepoDB(t, &domain.ContactMessage{})

	start := time.Now().UTC().Add(-time.Minute)
	m, err := CreateContactMessage(context.Background(), db, &domain.ContactMessage{
		Name:    "Ana",
		Email:   "ana@example.com",
		Phone:   "4421234567",
		Message: "Me interesa la Frontier",
	})
	if err != nil {
		t.Fatalf("CreateContactMessage: %v", err)
	}
	if m.ID == "" || m.CreatedAt.Before(start) {
		t.Fatalf("id/timestamp unset: %+v", m)
	}

	var got domain.ContactMessage
	if err := db.First(&got, "id = ?", m.ID).Error; err != nil {
		t.Fatalf("load created message: %v", err)
	}
	if got.Email != "ana@example.com" || got.Message != "Me interesa la Frontier" {
		t.Fatalf("round-trip mismatch: %+v", got)
	}
}

func TestListContactMessages_NewestFirstAndLimit(t *testing.T) {
	db := newRepoDB(t, &domain.ContactMessage{})

	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		m := domain.ContactMessage{
			ID: string(rune('a' + i)), Name: "n", Email: "e@x.com", Message: "m",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := db.Create(&m).Error; err != nil {
			t.Fatalf("seed %d: %v", i, err)
		}
	}

	list, err := ListContactMessages(context.Background(), db, 0) // default cap
	if err != nil {
		t.Fatalf("ListContactMessages: %v", err)
	}
	if len(list) != 3 || list[0].ID != "c" || list[2].ID != "a" {
		t.Fatalf("unexpected order: %#v", list)
	}

	limited, err := ListContactMessages(context.Background(), db, 2)
	if err != nil {
		t.Fatalf("ListContactMessages limited: %v", err)
	}
	if len(limited) != 2 || limited[0].ID != "c" {
		t.Fatalf("unexpected limited list: %#v", limited)
	}
}

func TestStatusChecks_RoundTrip(t *testing.T) {
	db := newRepoDB(t, &domain.StatusCheck{})

	s, err := CreateStatusCheck(context.Background(), db, "uptime-bot")
	if err != nil {
		t.Fatalf("CreateStatusCheck: %v", err)
	}
	if s.ID == "" || s.ClientName != "uptime-bot" {
		t.Fatalf("unexpected record: %+v", s)
	}

	list, err := ListStatusChecks(context.Background(), db, 0)
	if err != nil {
		t.Fatalf("ListStatusChecks: %v", err)
	}
	if len(list) != 1 || list[0].ID != s.ID {
		t.Fatalf("unexpected list: %#v", list)
	}
}
