package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/house-hunter/server/internal/core/domain"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, name, role, phone, email, password string) (string, *domain.User, error)
	loginFn    func(ctx context.Context, email, password string) (string, *domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, name, role, phone, email, password string) (string, *domain.User, error) {
	return s.registerFn(ctx, name, role, phone, email, password)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

type stubRecorder struct {
	events []domain.AuthEvent
}

func (r *stubRecorder) Record(event domain.AuthEvent) {
	r.events = append(r.events, event)
}

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, name, role, phone, email, password string) (string, *domain.User, error) {
			if name != "Alice" || role != "buyer" || phone != "123" || email != "a@x.com" {
				t.Fatalf("unexpected args: %s %s %s %s", name, role, phone, email)
			}
			return "token123", &domain.User{Name: name, Role: role, Phone: phone, Email: email, PasswordHash: "hashed"}, nil
		},
	}
	recorder := &stubRecorder{}
	handler := NewAuthHandler(stub, recorder)

	c, rec := newTestContext(t, http.MethodPost, "/register",
		`{"name":"Alice","role":"buyer","phone":"123","email":"a@x.com","password":"p"}`)

	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" {
		t.Fatalf("expected token, got %v", resp["token"])
	}
	user, ok := resp["user"].(map[string]any)
	if !ok {
		t.Fatalf("expected user in response")
	}
	if user["email"] != "a@x.com" {
		t.Fatalf("unexpected user payload: %+v", user)
	}
	if _, leaked := user["password"]; leaked {
		t.Fatalf("password field leaked in response: %+v", user)
	}

	if len(recorder.events) != 1 || recorder.events[0].Action != domain.ActionRegister {
		t.Fatalf("expected one register activity event, got %+v", recorder.events)
	}
}

func TestAuthHandler_Register_UserExists(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, name, role, phone, email, password string) (string, *domain.User, error) {
			return "", nil, domain.ErrUserExists
		},
	}
	handler := NewAuthHandler(stub, &stubRecorder{})

	c, _ := newTestContext(t, http.MethodPost, "/register",
		`{"name":"Bob","email":"bob@x.com","password":"p"}`)

	if err := handler.Register(c); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, name, role, phone, email, password string) (string, *domain.User, error) {
			t.Fatalf("should not be called")
			return "", nil, nil
		},
	}
	handler := NewAuthHandler(stub, &stubRecorder{})

	c, _ := newTestContext(t, http.MethodPost, "/register", "not-json")

	err := handler.Register(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Register_MissingEmail(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, name, role, phone, email, password string) (string, *domain.User, error) {
			t.Fatalf("should not be called")
			return "", nil, nil
		},
	}
	handler := NewAuthHandler(stub, &stubRecorder{})

	c, _ := newTestContext(t, http.MethodPost, "/register", `{"name":"Bob","password":"p"}`)

	err := handler.Register(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			if email != "a@x.com" || password != "p" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return "token456", &domain.User{Name: "Alice", Email: email, PasswordHash: "hashed"}, nil
		},
	}
	recorder := &stubRecorder{}
	handler := NewAuthHandler(stub, recorder)

	c, rec := newTestContext(t, http.MethodPost, "/login", `{"email":"a@x.com","password":"p"}`)

	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token456" {
		t.Fatalf("expected token, got %v", resp["token"])
	}
	user, ok := resp["user"].(map[string]any)
	if !ok {
		t.Fatalf("expected user in response")
	}
	if _, leaked := user["password"]; leaked {
		t.Fatalf("password field leaked in response: %+v", user)
	}

	if len(recorder.events) != 1 || recorder.events[0].Action != domain.ActionLogin {
		t.Fatalf("expected one login activity event, got %+v", recorder.events)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	recorder := &stubRecorder{}
	handler := NewAuthHandler(stub, recorder)

	c, _ := newTestContext(t, http.MethodPost, "/login", `{"email":"a@x.com","password":"bad"}`)

	if err := handler.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if len(recorder.events) != 1 || recorder.events[0].Action != domain.ActionLoginFailed {
		t.Fatalf("expected one login_failed activity event, got %+v", recorder.events)
	}
}

func TestAuthHandler_Login_Throttled(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			return "", nil, domain.ErrTooManyAttempts
		},
	}
	handler := NewAuthHandler(stub, &stubRecorder{})

	c, _ := newTestContext(t, http.MethodPost, "/login", `{"email":"a@x.com","password":"p"}`)

	if err := handler.Login(c); !errors.Is(err, domain.ErrTooManyAttempts) {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
}

func TestAuthHandler_Login_InvalidPayload(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			t.Fatalf("should not be called")
			return "", nil, nil
		},
	}
	handler := NewAuthHandler(stub, &stubRecorder{})

	c, _ := newTestContext(t, http.MethodPost, "/login", "{")

	err := handler.Login(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}
