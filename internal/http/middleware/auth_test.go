package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

type fakeVerifier struct {
	want string
	sub  string
}

func (f fakeVerifier) Verify(token string) (string, error) {
	if token == f.want {
		return f.sub, nil
	}
	return "", errors.New("bad token")
}

func authRouter(v TokenVerifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), BearerAuth(v))
	r.GET("/admin/ping", func(c *gin.Context) {
		uid, _ := c.Get("userID")
		c.JSON(http.StatusOK, gin.H{"user": uid})
	})
	return r
}

func TestBearerAuth_MissingHeader(t *testing.T) {
	r := authRouter(fakeVerifier{want: "tok", sub: "admin"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if got := w.Header().Get("WWW-Authenticate"); got == "" {
		t.Fatalf("expected WWW-Authenticate header")
	}
}

func TestBearerAuth_BadScheme(t *testing.T) {
	r := authRouter(fakeVerifier{want: "tok", sub: "admin"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestBearerAuth_InvalidToken(t *testing.T) {
	r := authRouter(fakeVerifier{want: "tok", sub: "admin"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer nope")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestBearerAuth_Success_SetsUserID(t *testing.T) {
	r := authRouter(fakeVerifier{want: "tok", sub: "admin"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "bearer tok") // scheme is case-insensitive
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
	}
	if body := w.Body.String(); body != `{"user":"admin"}` {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestBearerToken_Parsing(t *testing.T) {
	cases := map[string]string{
		"":               "",
		"Bearer":         "",
		"Bearer abc":     "abc",
		"bearer abc":     "abc",
		"BEARER  abc ":   "abc",
		"Token abc":      "",
		"Bearer abc def": "abc def", // opaque token may contain spaces after the scheme split
	}
	for in, want := range cases {
		if got := bearerToken(in); got != want {
			t.Fatalf("bearerToken(%q) = %q, want %q", in, got, want)
		}
	}
}
