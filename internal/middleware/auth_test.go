package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"drivenpass/internal/common"
)

// dummyHandler is a placeholder that records if it was called and the context it received.
type dummyHandler struct {
	called bool
	ctx    context.Context
}

func (d *dummyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	d.called = true
	d.ctx = r.Context()
	w.WriteHeader(http.StatusOK)
}

type fakeResolver struct {
	userID string
	err    error
}

func (f *fakeResolver) Resolve(ctx context.Context, token string) (string, error) {
	return f.userID, f.err
}

func TestBearerAuth_MissingHeader(t *testing.T) {
	dummy := &dummyHandler{}
	h := BearerAuth(&fakeResolver{userID: "u1"})(dummy)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/credentials", nil)
	h.ServeHTTP(rec, req)

	if dummy.called {
		t.Error("did not expect next handler to be called without a token")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 Unauthorized, got %d", rec.Code)
	}
}

func TestBearerAuth_NonBearerHeader(t *testing.T) {
	dummy := &dummyHandler{}
	h := BearerAuth(&fakeResolver{userID: "u1"})(dummy)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/credentials", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 Unauthorized, got %d", rec.Code)
	}
}

func TestBearerAuth_InvalidToken(t *testing.T) {
	dummy := &dummyHandler{}
	h := BearerAuth(&fakeResolver{err: common.ErrUnauthenticated})(dummy)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/credentials", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	h.ServeHTTP(rec, req)

	if dummy.called {
		t.Error("did not expect next handler to be called with an invalid token")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 Unauthorized, got %d", rec.Code)
	}
}

func TestBearerAuth_ValidToken(t *testing.T) {
	dummy := &dummyHandler{}
	h := BearerAuth(&fakeResolver{userID: "u1"})(dummy)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/credentials", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	h.ServeHTTP(rec, req)

	if !dummy.called {
		t.Fatal("expected next handler to be called with a valid token")
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 OK, got %d", rec.Code)
	}
	if user := GetUserIDFromContext(dummy.ctx); user != "u1" {
		t.Errorf("expected context user 'u1', got '%s'", user)
	}
}

func TestGetUserIDFromContext(t *testing.T) {
	// no value
	empty := GetUserIDFromContext(context.Background())
	if empty != "" {
		t.Errorf("expected empty string for missing user, got '%s'", empty)
	}
	// with value
	ctx := context.WithValue(context.Background(), userKey, "bob")
	val := GetUserIDFromContext(ctx)
	if val != "bob" {
		t.Errorf("expected 'bob', got '%s'", val)
	}
}
