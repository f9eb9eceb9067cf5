package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/jrautos/go-dealer-backend/internal/services"
)

func TestLogin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// Missing password -> 400
	{
		h := newTestHandlers(stubs{})
		r := gin.New()
		r.POST("/admin/login", h.Login)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/admin/login", bytes.NewBufferString(`{}`))
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("missing password -> %d", w.Code)
		}
	}

	// Wrong password -> 401 with stable code
	{
		h := newTestHandlers(stubs{auth: stubAuthSvc{
			login: func(string) (string, error) { return "", services.ErrInvalidPassword },
		}})
		r := gin.New()
		r.POST("/admin/login", h.Login)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/admin/login",
			bytes.NewBufferString(`{"password":"wrong"}`))
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("wrong password -> %d", w.Code)
		}
		var resp ErrorResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("json: %v", err)
		}
		if resp.Code != ErrCodeInvalidPassword {
			t.Fatalf("code = %q", resp.Code)
		}
	}

	// Auth disabled -> same 401, indistinguishable from wrong password
	{
		h := newTestHandlers(stubs{auth: stubAuthSvc{
			login: func(string) (string, error) { return "", services.ErrAuthDisabled },
		}})
		r := gin.New()
		r.POST("/admin/login", h.Login)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/admin/login",
			bytes.NewBufferString(`{"password":"anything"}`))
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("disabled -> %d", w.Code)
		}
	}

	// Success -> 200 with token
	{
		h := newTestHandlers(stubs{auth: stubAuthSvc{
			login: func(pw string) (string, error) {
				if pw != "s3cret" {
					t.Fatalf("password forwarded as %q", pw)
				}
				return "jwt-token", nil
			},
		}})
		r := gin.New()
		r.POST("/admin/login", h.Login)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/admin/login",
			bytes.NewBufferString(`{"password":"s3cret"}`))
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("login -> %d body=%s", w.Code, w.Body.String())
		}
		var resp LoginResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("json: %v", err)
		}
		if resp.Token != "jwt-token" {
			t.Fatalf("token = %q", resp.Token)
		}
	}

	// Unexpected error -> 500
	{
		h := newTestHandlers(stubs{auth: stubAuthSvc{
			login: func(string) (string, error) { return "", errors.New("hsm unreachable") },
		}})
		r := gin.New()
		r.POST("/admin/login", h.Login)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/admin/login",
			bytes.NewBufferString(`{"password":"x"}`))
		r.ServeHTTP(w, req)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("internal -> %d", w.Code)
		}
	}
}
