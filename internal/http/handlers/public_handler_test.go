package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRootAndHealth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := newTestHandlers(stubs{})
	r := gin.New()
	r.GET("/", h.Root)
	r.GET("/health", h.Health)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Hello World") {
		t.Fatalf("root -> %d body=%s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "ok") {
		t.Fatalf("health -> %d body=%s", w.Code, w.Body.String())
	}
}

func TestFAQMenu_LanguageSelection(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := newTestHandlers(stubs{})
	r := gin.New()
	r.GET("/faq", h.FAQMenu)

	// Default is Spanish
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/faq", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("menu -> %d", w.Code)
	}
	var menu FAQMenuResponse
	if err := json.Unmarshal(w.Body.Bytes(), &menu); err != nil {
		t.Fatalf("json: %v", err)
	}
	if len(menu.Options) == 0 || menu.Greeting != "¡Hola! ¿En qué podemos ayudarte?" {
		t.Fatalf("unexpected menu: %+v", menu)
	}

	// Accept-Language switches to English
	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/faq", nil)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	r.ServeHTTP(w, req)
	if err := json.Unmarshal(w.Body.Bytes(), &menu); err != nil {
		t.Fatalf("json: %v", err)
	}
	if menu.Greeting != "Hi! How can we help you?" {
		t.Fatalf("en greeting = %q", menu.Greeting)
	}

	// Explicit ?lang= wins over the header
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/faq?lang=es", nil)
	req.Header.Set("Accept-Language", "en")
	r.ServeHTTP(w, req)
	if err := json.Unmarshal(w.Body.Bytes(), &menu); err != nil {
		t.Fatalf("json: %v", err)
	}
	if menu.Greeting != "¡Hola! ¿En qué podemos ayudarte?" {
		t.Fatalf("lang override greeting = %q", menu.Greeting)
	}
}

func TestFAQAnswer(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := newTestHandlers(stubs{})
	r := gin.New()
	r.GET("/faq/:id", h.FAQAnswer)

	// Known option -> 200 with localized answer
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/faq/hours?lang=en", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("answer -> %d", w.Code)
	}
	var resp FAQAnswerResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("json: %v", err)
	}
	if resp.ID != "hours" || !strings.Contains(resp.Answer, "Monday") {
		t.Fatalf("unexpected answer: %+v", resp)
	}

	// Unknown option -> 404
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/faq/weather", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown -> %d", w.Code)
	}
}
