package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/basejump/basejump-go/internal/crypto"
	"github.com/basejump/basejump-go/internal/middleware"
	"github.com/basejump/basejump-go/internal/model"
	"github.com/basejump/basejump-go/internal/repository"
	"github.com/basejump/basejump-go/internal/service"
)

// fakeUserStore is an in-memory service.UserStore for handler tests.
type fakeUserStore struct {
	byEmail map[string]*model.User
	byID    map[int64]*model.User
	nextID  int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		byEmail: make(map[string]*model.User),
		byID:    make(map[int64]*model.User),
	}
}

func (f *fakeUserStore) Create(_ context.Context, user *model.User) error {
	if _, ok := f.byEmail[user.Email]; ok {
		return repository.ErrDuplicateEmail
	}
	f.nextID++
	user.ID = f.nextID
	stored := *user
	f.byEmail[user.Email] = &stored
	f.byID[user.ID] = &stored
	return nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserStore) GetByID(_ context.Context, id int64) (*model.User, error) {
	user, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

const testSecret = "test-secret"

// newTestRouter wires handlers and middleware the same way cmd/api does,
// minus rate limiting.
func newTestRouter(store service.UserStore) chi.Router {
	userService := service.NewUserService(store)
	authService := service.NewAuthService(store, testSecret, time.Hour)
	authHandler := NewAuthHandler(authService, userService)
	userHandler := NewUserHandler(userService)

	r := chi.NewRouter()
	r.Post("/api/auth/register", authHandler.HandleRegister)
	r.Post("/api/auth/login", authHandler.HandleLogin)
	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(testSecret))
		r.Get("/api/users/me", userHandler.HandleMe)
	})
	return r
}

func doJSON(t *testing.T, router http.Handler, method, path, body, bearer string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	var decoded map[string]any
	if rr.Body.Len() > 0 {
		if err := json.Unmarshal(rr.Body.Bytes(), &decoded); err != nil {
			t.Fatalf("decoding response %q: %v", rr.Body.String(), err)
		}
	}
	return rr, decoded
}

func TestRegisterLoginMeFlow(t *testing.T) {
	router := newTestRouter(newFakeUserStore())

	// Register.
	rr, body := doJSON(t, router, http.MethodPost, "/api/auth/register",
		`{"email":"a@b.com","password":"secret123"}`, "")
	if rr.Code != http.StatusCreated {
		t.Fatalf("register status = %d, want %d (%s)", rr.Code, http.StatusCreated, rr.Body)
	}
	if body["email"] != "a@b.com" {
		t.Errorf("register email = %v, want a@b.com", body["email"])
	}
	if body["id"] == nil || body["id"].(float64) == 0 {
		t.Error("register response missing assigned id")
	}
	for key := range body {
		if strings.Contains(strings.ToLower(key), "password") {
			t.Errorf("register response exposes field %q", key)
		}
	}

	// Login.
	rr, body = doJSON(t, router, http.MethodPost, "/api/auth/login",
		`{"email":"a@b.com","password":"secret123"}`, "")
	if rr.Code != http.StatusOK {
		t.Fatalf("login status = %d, want %d (%s)", rr.Code, http.StatusOK, rr.Body)
	}
	token, _ := body["access_token"].(string)
	if token == "" {
		t.Fatal("login response missing access_token")
	}
	if body["token_type"] != "bearer" {
		t.Errorf("token_type = %v, want bearer", body["token_type"])
	}

	// Current user.
	rr, body = doJSON(t, router, http.MethodGet, "/api/users/me", "", token)
	if rr.Code != http.StatusOK {
		t.Fatalf("me status = %d, want %d (%s)", rr.Code, http.StatusOK, rr.Body)
	}
	if body["email"] != "a@b.com" {
		t.Errorf("me email = %v, want a@b.com", body["email"])
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	router := newTestRouter(newFakeUserStore())

	rr, _ := doJSON(t, router, http.MethodPost, "/api/auth/register",
		`{"email":"a@b.com","password":"secret123"}`, "")
	if rr.Code != http.StatusCreated {
		t.Fatalf("register status = %d, want %d", rr.Code, http.StatusCreated)
	}

	rr, body := doJSON(t, router, http.MethodPost, "/api/auth/register",
		`{"email":"a@b.com","password":"other-password"}`, "")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("duplicate register status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
	if body["error"] != "email already registered" {
		t.Errorf("duplicate register error = %v, want %q", body["error"], "email already registered")
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	router := newTestRouter(newFakeUserStore())

	rr, _ := doJSON(t, router, http.MethodPost, "/api/auth/register",
		`{"email":"a@b.com","password":"secret123"}`, "")
	if rr.Code != http.StatusCreated {
		t.Fatalf("register status = %d, want %d", rr.Code, http.StatusCreated)
	}

	rr1, body1 := doJSON(t, router, http.MethodPost, "/api/auth/login",
		`{"email":"nobody@b.com","password":"secret123"}`, "")
	rr2, body2 := doJSON(t, router, http.MethodPost, "/api/auth/login",
		`{"email":"a@b.com","password":"wrong-password"}`, "")

	if rr1.Code != http.StatusUnauthorized || rr2.Code != http.StatusUnauthorized {
		t.Fatalf("login failure statuses = %d, %d, want both %d", rr1.Code, rr2.Code, http.StatusUnauthorized)
	}
	if body1["error"] != body2["error"] {
		t.Errorf("unknown-email error %v differs from wrong-password error %v", body1["error"], body2["error"])
	}
}

func TestMeRejectsBadTokens(t *testing.T) {
	router := newTestRouter(newFakeUserStore())

	rr, _ := doJSON(t, router, http.MethodPost, "/api/auth/register",
		`{"email":"a@b.com","password":"secret123"}`, "")
	if rr.Code != http.StatusCreated {
		t.Fatalf("register status = %d, want %d", rr.Code, http.StatusCreated)
	}

	valid, err := crypto.GenerateToken(1, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}
	expired, err := crypto.GenerateToken(1, testSecret, -time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{"no token", ""},
		{"tampered token", valid + "x"},
		{"expired token", expired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr, _ := doJSON(t, router, http.MethodGet, "/api/users/me", "", tt.token)
			if rr.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want %d", rr.Code, http.StatusUnauthorized)
			}
		})
	}
}

func TestMeUnknownSubject(t *testing.T) {
	router := newTestRouter(newFakeUserStore())

	// Valid token for a user that was never created.
	token, err := crypto.GenerateToken(999, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	rr, body := doJSON(t, router, http.MethodGet, "/api/users/me", "", token)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	if body["error"] != "user not found" {
		t.Errorf("error = %v, want %q", body["error"], "user not found")
	}
}

func TestRegisterInvalidBody(t *testing.T) {
	router := newTestRouter(newFakeUserStore())

	rr, _ := doJSON(t, router, http.MethodPost, "/api/auth/register", `{not json`, "")
	if rr.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
}
