package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/house-hunter/server/internal/core/domain"
)

type stubUserService struct {
	listFn func(ctx context.Context) ([]*domain.User, error)
	findFn func(ctx context.Context, email string) (*domain.User, error)
}

func (s *stubUserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.listFn(ctx)
}

func (s *stubUserService) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.findFn(ctx, email)
}

func TestUserHandler_List(t *testing.T) {
	stub := &stubUserService{
		listFn: func(ctx context.Context) ([]*domain.User, error) {
			return []*domain.User{
				{Name: "A", Email: "a@x.com", PasswordHash: "hash-a"},
				{Name: "B", Email: "b@x.com", PasswordHash: "hash-b"},
			}, nil
		},
	}
	handler := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/users", "")

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var users []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &users); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	for _, u := range users {
		if _, leaked := u["password"]; leaked {
			t.Fatalf("password field leaked: %+v", u)
		}
	}
}

func TestUserHandler_List_Empty(t *testing.T) {
	stub := &stubUserService{
		listFn: func(ctx context.Context) ([]*domain.User, error) {
			return nil, nil
		},
	}
	handler := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/users", "")

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Fatalf("expected empty array, got %q", body)
	}
}

func TestUserHandler_GetByEmail(t *testing.T) {
	stub := &stubUserService{
		findFn: func(ctx context.Context, email string) (*domain.User, error) {
			if email != "a@x.com" {
				t.Fatalf("unexpected email: %s", email)
			}
			return &domain.User{Name: "A", Email: email, PasswordHash: "hash"}, nil
		},
	}
	handler := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/user/a@x.com", "")
	c.SetParamNames("email")
	c.SetParamValues("a@x.com")

	if err := handler.GetByEmail(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var user map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &user); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if user["email"] != "a@x.com" {
		t.Fatalf("unexpected user payload: %+v", user)
	}
	if _, leaked := user["password"]; leaked {
		t.Fatalf("password field leaked: %+v", user)
	}
}

func TestUserHandler_GetByEmail_Absent(t *testing.T) {
	stub := &stubUserService{
		findFn: func(ctx context.Context, email string) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	handler := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/user/ghost@x.com", "")
	c.SetParamNames("email")
	c.SetParamValues("ghost@x.com")

	if err := handler.GetByEmail(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for a miss, got %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "null" {
		t.Fatalf("expected null body for a miss, got %q", body)
	}
}
