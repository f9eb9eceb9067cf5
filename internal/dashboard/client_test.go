package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/jrautos/go-dealer-backend/internal/domain"
)

// fakeBackend is a minimal in-memory admin API used by client and controller
// tests. It records every request body and counts calls per route.
type fakeBackend struct {
	mu       sync.Mutex
	password string
	token    string

	vehicles []domain.Vehicle
	contacts []domain.ContactMessage

	calls      map[string]int
	lastBodies map[string][]byte

	failVehicles bool
	failContacts bool
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		password:   "hunter2",
		token:      "test-token",
		calls:      map[string]int{},
		lastBodies: map[string][]byte{},
	}
}

func (f *fakeBackend) count(key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[key]
}

func (f *fakeBackend) lastBody(key string) []byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastBodies[key]
}

func (f *fakeBackend) handler() http.Handler {
	mux := http.NewServeMux()

	record := func(r *http.Request) string {
		key := r.Method + " " + r.URL.Path
		body, _ := io.ReadAll(r.Body)
		f.mu.Lock()
		f.calls[key]++
		f.lastBodies[key] = body
		f.mu.Unlock()
		return string(body)
	}
	authed := func(r *http.Request) bool {
		return r.Header.Get("Authorization") == "Bearer "+f.token
	}

	mux.HandleFunc("POST /api/admin/login", func(w http.ResponseWriter, r *http.Request) {
		body := record(r)
		var req struct {
			Password string `json:"password"`
		}
		_ = json.Unmarshal([]byte(body), &req)
		if req.Password != f.password {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"code": "invalid_password"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"token": f.token})
	})

	mux.HandleFunc("GET /api/admin/vehicles", func(w http.ResponseWriter, r *http.Request) {
		record(r)
		if !authed(r) {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if f.failVehicles {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		f.mu.Lock()
		defer f.mu.Unlock()
		_ = json.NewEncoder(w).Encode(f.vehicles)
	})

	mux.HandleFunc("GET /api/admin/contacts", func(w http.ResponseWriter, r *http.Request) {
		record(r)
		if !authed(r) {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if f.failContacts {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		f.mu.Lock()
		defer f.mu.Unlock()
		_ = json.NewEncoder(w).Encode(f.contacts)
	})

	mux.HandleFunc("POST /api/admin/vehicles", func(w http.ResponseWriter, r *http.Request) {
		body := record(r)
		if !authed(r) {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		var d VehicleDraft
		_ = json.Unmarshal([]byte(body), &d)
		v := domain.Vehicle{
			ID: "v-new", Name: d.Name, Images: d.Images, Available: true,
		}
		if len(d.Images) > 0 {
			v.CoverImage = d.Images[0]
		}
		f.mu.Lock()
		f.vehicles = append(f.vehicles, v)
		f.mu.Unlock()
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(v)
	})

	mux.HandleFunc("PUT /api/admin/vehicles/{id}", func(w http.ResponseWriter, r *http.Request) {
		body := record(r)
		if !authed(r) {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		id := r.PathValue("id")
		var patch map[string]any
		_ = json.Unmarshal([]byte(body), &patch)

		f.mu.Lock()
		defer f.mu.Unlock()
		for i := range f.vehicles {
			if f.vehicles[i].ID != id {
				continue
			}
			if av, present := patch["available"]; present {
				f.vehicles[i].Available, _ = av.(bool)
			}
			if name, present := patch["name"]; present {
				f.vehicles[i].Name, _ = name.(string)
			}
			_ = json.NewEncoder(w).Encode(f.vehicles[i])
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})

	mux.HandleFunc("DELETE /api/admin/vehicles/{id}", func(w http.ResponseWriter, r *http.Request) {
		record(r)
		if !authed(r) {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		id := r.PathValue("id")
		f.mu.Lock()
		defer f.mu.Unlock()
		for i := range f.vehicles {
			if f.vehicles[i].ID == id {
				f.vehicles = append(f.vehicles[:i], f.vehicles[i+1:]...)
				w.WriteHeader(http.StatusNoContent)
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
	})

	mux.HandleFunc("POST /api/admin/upload", func(w http.ResponseWriter, r *http.Request) {
		if !authed(r) {
			record(r)
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		file, hdr, err := r.FormFile("file")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer file.Close()
		f.mu.Lock()
		f.calls["POST /api/admin/upload"]++
		f.mu.Unlock()
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]string{"url": "/uploads/" + hdr.Filename})
	})

	return mux
}

// newTestClient spins up the fake backend and a logged-in client against it.
func newTestClient(t *testing.T, f *fakeBackend) (*Client, *Session) {
	t.Helper()
	srv := httptest.NewServer(f.handler())
	t.Cleanup(srv.Close)

	session := NewSession()
	c := NewClient(srv.URL, session)
	c.HTTP = srv.Client()
	return c, session
}

func TestSession_TokenLifecycle(t *testing.T) {
	s := NewSession()
	if s.Valid() {
		t.Fatal("fresh session must be invalid")
	}
	s.set("tok")
	if !s.Valid() || s.Token() != "tok" {
		t.Fatalf("session after set: valid=%v token=%q", s.Valid(), s.Token())
	}
	s.Clear()
	if s.Valid() {
		t.Fatal("cleared session must be invalid")
	}
}

func TestClient_Login(t *testing.T) {
	f := newFakeBackend()
	c, session := newTestClient(t, f)

	// Wrong password: sentinel error, no token stored.
	err := c.Login(context.Background(), "wrong")
	if !errors.Is(err, ErrInvalidPassword) {
		t.Fatalf("err = %v, want ErrInvalidPassword", err)
	}
	if session.Valid() {
		t.Fatal("failed login must not store a token")
	}

	// Correct password stores the token.
	if err := c.Login(context.Background(), "hunter2"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if session.Token() != "test-token" {
		t.Fatalf("token = %q", session.Token())
	}
}

func TestClient_ListVehicles_Unauthorized(t *testing.T) {
	f := newFakeBackend()
	c, _ := newTestClient(t, f)

	// No login: the backend rejects the empty bearer token.
	_, err := c.ListVehicles(context.Background())
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
}

func TestClient_SetAvailability_PayloadContainsOnlyAvailable(t *testing.T) {
	f := newFakeBackend()
	f.vehicles = []domain.Vehicle{{ID: "v1", Name: "Corolla", Available: true}}
	c, _ := newTestClient(t, f)
	if err := c.Login(context.Background(), "hunter2"); err != nil {
		t.Fatalf("login: %v", err)
	}

	v, err := c.SetAvailability(context.Background(), "v1", false)
	if err != nil {
		t.Fatalf("set availability: %v", err)
	}
	if v.Available {
		t.Fatal("vehicle still available")
	}

	var payload map[string]json.RawMessage
	if err := json.Unmarshal(f.lastBody("PUT /api/admin/vehicles/v1"), &payload); err != nil {
		t.Fatalf("payload: %v", err)
	}
	if len(payload) != 1 {
		t.Fatalf("payload has %d keys, want exactly {available}: %v", len(payload), payload)
	}
	if _, present := payload["available"]; !present {
		t.Fatalf("payload missing available: %v", payload)
	}
}

func TestClient_CreateVehicle_CoverFollowsFirstImage(t *testing.T) {
	f := newFakeBackend()
	c, _ := newTestClient(t, f)
	if err := c.Login(context.Background(), "hunter2"); err != nil {
		t.Fatalf("login: %v", err)
	}

	draft := VehicleDraft{Name: "Yaris", Images: []string{"/uploads/b.jpg", "/uploads/a.jpg"}}
	if _, err := c.CreateVehicle(context.Background(), draft); err != nil {
		t.Fatalf("create: %v", err)
	}

	var sent VehicleDraft
	if err := json.Unmarshal(f.lastBody("POST /api/admin/vehicles"), &sent); err != nil {
		t.Fatalf("payload: %v", err)
	}
	if sent.CoverImage != "/uploads/b.jpg" {
		t.Fatalf("cover_image = %q, want the first image", sent.CoverImage)
	}
}

func TestClient_DeleteVehicle_NotFound(t *testing.T) {
	f := newFakeBackend()
	c, _ := newTestClient(t, f)
	if err := c.Login(context.Background(), "hunter2"); err != nil {
		t.Fatalf("login: %v", err)
	}

	err := c.DeleteVehicle(context.Background(), "ghost")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestClient_UploadImage(t *testing.T) {
	f := newFakeBackend()
	c, _ := newTestClient(t, f)
	if err := c.Login(context.Background(), "hunter2"); err != nil {
		t.Fatalf("login: %v", err)
	}

	url, err := c.UploadImage(context.Background(), "front.jpg", "image/jpeg", strings.NewReader("jpeg"))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if url != "/uploads/front.jpg" {
		t.Fatalf("url = %q", url)
	}
}
