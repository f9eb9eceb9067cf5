package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/jrautos/go-dealer-backend/internal/domain"
)

func seedBackend() *fakeBackend {
	f := newFakeBackend()
	f.vehicles = []domain.Vehicle{
		{ID: "v1", Name: "Corolla", Available: true},
		{ID: "v2", Name: "Hilux", Available: false},
	}
	f.contacts = []domain.ContactMessage{
		{ID: "c1", Name: "Ana", Email: "ana@example.com", Message: "hola"},
	}
	return f
}

// newReadyController logs in and starts a controller against the backend.
func newReadyController(t *testing.T, f *fakeBackend, confirm ConfirmFunc) *Controller {
	t.Helper()
	client, session := newTestClient(t, f)
	ctrl := NewController(client, session, confirm)
	if err := ctrl.Login(context.Background(), "hunter2"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if ctrl.State() != StateReady {
		t.Fatalf("state = %v, want ready", ctrl.State())
	}
	return ctrl
}

func TestController_Start(t *testing.T) {
	f := seedBackend()

	{ // Invalid session parks in Unauthenticated without touching the server.
		client, _ := newTestClient(t, f)
		ctrl := NewController(client, client.Session, nil)
		if err := ctrl.Start(context.Background()); err != nil {
			t.Fatalf("start: %v", err)
		}
		if ctrl.State() != StateUnauthenticated {
			t.Fatalf("state = %v, want unauthenticated", ctrl.State())
		}
		if n := f.count("GET /api/admin/vehicles"); n != 0 {
			t.Fatalf("invalid session issued %d list requests", n)
		}
	}

	{ // Valid session loads both lists.
		client, session := newTestClient(t, f)
		session.set("test-token")
		ctrl := NewController(client, session, nil)
		if err := ctrl.Start(context.Background()); err != nil {
			t.Fatalf("start: %v", err)
		}
		if ctrl.State() != StateReady {
			t.Fatalf("state = %v, want ready", ctrl.State())
		}
		if got := len(ctrl.Vehicles()); got != 2 {
			t.Fatalf("vehicles = %d, want 2", got)
		}
		if got := len(ctrl.Contacts()); got != 1 {
			t.Fatalf("contacts = %d, want 1", got)
		}
	}

	{ // Stale token is cleared and lands in Unauthenticated.
		client, session := newTestClient(t, f)
		session.set("expired")
		ctrl := NewController(client, session, nil)
		if err := ctrl.Start(context.Background()); err != nil {
			t.Fatalf("start: %v", err)
		}
		if ctrl.State() != StateUnauthenticated {
			t.Fatalf("state = %v, want unauthenticated", ctrl.State())
		}
		if session.Valid() {
			t.Fatal("stale token must be cleared")
		}
	}
}

func TestController_Login_WrongPassword(t *testing.T) {
	f := seedBackend()
	client, session := newTestClient(t, f)
	ctrl := NewController(client, session, nil)

	err := ctrl.Login(context.Background(), "nope")
	if !errors.Is(err, ErrInvalidPassword) {
		t.Fatalf("err = %v, want ErrInvalidPassword", err)
	}
	if ctrl.State() != StateUnauthenticated {
		t.Fatalf("state = %v, want unauthenticated", ctrl.State())
	}
	if session.Valid() {
		t.Fatal("session must stay invalid after failed login")
	}
}

func TestController_AddVehicle(t *testing.T) {
	f := seedBackend()
	ctrl := newReadyController(t, f, nil)
	loginLists := f.count("GET /api/admin/vehicles")

	{ // Empty image set is rejected before any network traffic.
		err := ctrl.AddVehicle(context.Background(), VehicleDraft{Name: "Yaris"})
		if !errors.Is(err, ErrNoImages) {
			t.Fatalf("err = %v, want ErrNoImages", err)
		}
		if n := f.count("POST /api/admin/vehicles"); n != 0 {
			t.Fatalf("rejected draft issued %d create requests", n)
		}
		if n := f.count("GET /api/admin/vehicles"); n != loginLists {
			t.Fatal("rejected draft must not refresh")
		}
	}

	{ // Successful create refreshes exactly once.
		draft := VehicleDraft{Name: "Yaris", Images: []string{"/uploads/a.jpg"}}
		if err := ctrl.AddVehicle(context.Background(), draft); err != nil {
			t.Fatalf("add: %v", err)
		}
		if n := f.count("GET /api/admin/vehicles"); n != loginLists+1 {
			t.Fatalf("vehicle list fetched %d times after create, want %d", n, loginLists+1)
		}
		if got := len(ctrl.Vehicles()); got != 3 {
			t.Fatalf("vehicles = %d, want 3", got)
		}
		if ctrl.State() != StateReady {
			t.Fatalf("state = %v, want ready", ctrl.State())
		}
	}
}

func TestController_UpdateVehicle_EmptyImages(t *testing.T) {
	f := seedBackend()
	ctrl := newReadyController(t, f, nil)

	err := ctrl.UpdateVehicle(context.Background(), "v1", VehicleDraft{Name: "Corolla"})
	if !errors.Is(err, ErrNoImages) {
		t.Fatalf("err = %v, want ErrNoImages", err)
	}
	if n := f.count("PUT /api/admin/vehicles/v1"); n != 0 {
		t.Fatalf("rejected draft issued %d update requests", n)
	}
}

func TestController_ToggleAvailability(t *testing.T) {
	f := seedBackend()
	ctrl := newReadyController(t, f, nil)

	if err := ctrl.ToggleAvailability(context.Background(), "v1"); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	for _, v := range ctrl.Vehicles() {
		if v.ID == "v1" && v.Available {
			t.Fatal("v1 still available after toggle")
		}
	}
	if string(f.lastBody("PUT /api/admin/vehicles/v1")) != `{"available":false}` {
		t.Fatalf("toggle body = %s", f.lastBody("PUT /api/admin/vehicles/v1"))
	}

	if err := ctrl.ToggleAvailability(context.Background(), "ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown id err = %v, want ErrNotFound", err)
	}
}

func TestController_DeleteVehicle_Confirmation(t *testing.T) {
	f := seedBackend()
	confirmed := false
	ctrl := newReadyController(t, f, func(v domain.Vehicle) bool {
		if v.ID != "v1" {
			t.Fatalf("confirm called for %q", v.ID)
		}
		return confirmed
	})
	loginLists := f.count("GET /api/admin/vehicles")

	// Declining issues no request, no refresh, and no error.
	if err := ctrl.DeleteVehicle(context.Background(), "v1"); err != nil {
		t.Fatalf("declined delete: %v", err)
	}
	if n := f.count("DELETE /api/admin/vehicles/v1"); n != 0 {
		t.Fatalf("declined delete issued %d requests", n)
	}
	if n := f.count("GET /api/admin/vehicles"); n != loginLists {
		t.Fatal("declined delete must not refresh")
	}

	confirmed = true
	if err := ctrl.DeleteVehicle(context.Background(), "v1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got := len(ctrl.Vehicles()); got != 1 {
		t.Fatalf("vehicles = %d, want 1", got)
	}
	if n := f.count("GET /api/admin/vehicles"); n != loginLists+1 {
		t.Fatalf("delete refreshed %d times, want exactly once", n-loginLists)
	}
}

func TestController_FailedWriteDoesNotRefresh(t *testing.T) {
	f := seedBackend()
	ctrl := newReadyController(t, f, nil)
	loginLists := f.count("GET /api/admin/vehicles")

	draft := VehicleDraft{Name: "Ghosted", Images: []string{"/uploads/a.jpg"}}
	if err := ctrl.UpdateVehicle(context.Background(), "ghost", draft); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if n := f.count("GET /api/admin/vehicles"); n != loginLists {
		t.Fatal("failed write must not refresh")
	}
	if ctrl.State() != StateReady {
		t.Fatalf("state = %v, want ready", ctrl.State())
	}
}

func TestController_Refresh_PartialFailure(t *testing.T) {
	f := seedBackend()
	ctrl := newReadyController(t, f, nil)

	// Contacts endpoint turns flaky: the inbox keeps its previous copy while
	// the vehicle list still updates.
	f.mu.Lock()
	f.failContacts = true
	f.vehicles = append(f.vehicles, domain.Vehicle{ID: "v3", Name: "RAV4", Available: true})
	f.mu.Unlock()

	if err := ctrl.Refresh(context.Background()); err == nil {
		t.Fatal("expected combined error")
	}
	if got := len(ctrl.Vehicles()); got != 3 {
		t.Fatalf("vehicles = %d, want 3", got)
	}
	if got := len(ctrl.Contacts()); got != 1 {
		t.Fatalf("contacts = %d, want previous copy of 1", got)
	}
}

func TestController_Logout(t *testing.T) {
	f := seedBackend()
	ctrl := newReadyController(t, f, nil)

	ctrl.Logout()
	if ctrl.State() != StateUnauthenticated {
		t.Fatalf("state = %v, want unauthenticated", ctrl.State())
	}
	if len(ctrl.Vehicles()) != 0 || len(ctrl.Contacts()) != 0 {
		t.Fatal("logout must clear loaded data")
	}
}
