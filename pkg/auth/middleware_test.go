package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRequireAuth_ValidToken(t *testing.T) {
	issuer := NewTokenIssuer([]byte("test-secret"), time.Hour)
	token, err := issuer.Issue("admin")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	var gotOperator string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotOperator, _ = OperatorFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/clients", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	RequireAuth(issuer)(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if gotOperator != "admin" {
		t.Errorf("operator in context = %q, want %q", gotOperator, "admin")
	}
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	issuer := NewTokenIssuer([]byte("test-secret"), time.Hour)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("next handler should not be called")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/clients", nil)
	rec := httptest.NewRecorder()

	RequireAuth(issuer)(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	issuer := NewTokenIssuer([]byte("test-secret"), -time.Minute)
	token, err := issuer.Issue("admin")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("next handler should not be called")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/clients", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	RequireAuth(issuer)(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestRequireAuth_MalformedHeader(t *testing.T) {
	issuer := NewTokenIssuer([]byte("test-secret"), time.Hour)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("next handler should not be called")
	})

	for _, header := range []string{"Bearer", "Bearer ", "Basic abc", "token-without-scheme"} {
		req := httptest.NewRequest(http.MethodGet, "/api/admin/clients", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()

		RequireAuth(issuer)(next).ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("header %q: status = %d, want %d", header, rec.Code, http.StatusUnauthorized)
		}
	}
}
