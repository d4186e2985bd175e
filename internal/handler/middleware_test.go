package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/LeonSoftLab/SupportAPI/internal/auth"
	"github.com/LeonSoftLab/SupportAPI/internal/model"
)

type fakeDirectory struct {
	users map[string]*model.User
}

func (d *fakeDirectory) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	if user, ok := d.users[username]; ok {
		u := *user
		return &u, nil
	}
	return nil, nil
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	return string(hash)
}

func newAuthService(t *testing.T, dir auth.Directory, ttl time.Duration) *auth.Service {
	t.Helper()
	codec, err := auth.NewTokenCodec("test-secret", ttl)
	if err != nil {
		t.Fatalf("codec init failed: %v", err)
	}
	return auth.NewService(dir, auth.NewHasher(), codec)
}

func newTestRouter(svc *auth.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	authHandler := NewAuthHandler(svc, nil)
	r.POST("/login", authHandler.Login)

	api := r.Group("/api/v1", AuthMiddleware(svc))
	api.GET("/me", authHandler.Me)

	admin := api.Group("", RequireAdmin())
	admin.GET("/users", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r
}

func doLogin(t *testing.T, r *gin.Engine, username, password string) *httptest.ResponseRecorder {
	t.Helper()
	body, _ := json.Marshal(model.LoginRequest{Username: username, Password: password})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func doGet(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestLoginAndMe(t *testing.T) {
	dir := &fakeDirectory{users: map[string]*model.User{
		"leon": {Username: "leon", EmployeeID: 7, Role: model.RoleUser, PasswordHash: mustHash(t, "pa55word")},
	}}
	r := newTestRouter(newAuthService(t, dir, 30*time.Minute))

	w := doLogin(t, r, "leon", "pa55word")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var res model.LoginResponse
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("bad login response: %v", err)
	}
	if res.TokenType != "bearer" || res.AccessToken == "" {
		t.Fatalf("unexpected login response: %+v", res)
	}

	me := doGet(r, "/api/v1/me", res.AccessToken)
	if me.Code != http.StatusOK {
		t.Fatalf("expected 200 from /me, got %d", me.Code)
	}
	var meRes model.MeResponse
	if err := json.Unmarshal(me.Body.Bytes(), &meRes); err != nil {
		t.Fatalf("bad me response: %v", err)
	}
	if meRes.Username != "leon" || meRes.EmployeeID != 7 {
		t.Fatalf("wrong principal: %+v", meRes)
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	dir := &fakeDirectory{users: map[string]*model.User{
		"leon": {Username: "leon", Role: model.RoleUser, PasswordHash: mustHash(t, "pa55word")},
	}}
	r := newTestRouter(newAuthService(t, dir, 30*time.Minute))

	wrongPass := doLogin(t, r, "leon", "nope")
	unknown := doLogin(t, r, "ghost", "nope")

	if wrongPass.Code != http.StatusUnauthorized || unknown.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401/401, got %d/%d", wrongPass.Code, unknown.Code)
	}
	if wrongPass.Body.String() != unknown.Body.String() {
		t.Fatalf("response bodies differ: %q vs %q", wrongPass.Body.String(), unknown.Body.String())
	}
}

func TestDisabledUserCannotLogin(t *testing.T) {
	dir := &fakeDirectory{users: map[string]*model.User{
		"leon": {Username: "leon", Role: model.RoleUser, Disabled: true, PasswordHash: mustHash(t, "pa55word")},
	}}
	r := newTestRouter(newAuthService(t, dir, 30*time.Minute))

	if w := doLogin(t, r, "leon", "pa55word"); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for disabled user, got %d", w.Code)
	}
}

func TestDisabledAfterIssuance(t *testing.T) {
	dir := &fakeDirectory{users: map[string]*model.User{
		"leon": {Username: "leon", Role: model.RoleUser, PasswordHash: mustHash(t, "pa55word")},
	}}
	r := newTestRouter(newAuthService(t, dir, 30*time.Minute))

	w := doLogin(t, r, "leon", "pa55word")
	var res model.LoginResponse
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("bad login response: %v", err)
	}

	// The token stays valid; the account does not.
	dir.users["leon"].Disabled = true
	if me := doGet(r, "/api/v1/me", res.AccessToken); me.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for disabled principal, got %d", me.Code)
	}
}

func TestAdminRouteForbiddenForUserRole(t *testing.T) {
	dir := &fakeDirectory{users: map[string]*model.User{
		"leon": {Username: "leon", Role: model.RoleUser, PasswordHash: mustHash(t, "pa55word")},
		"root": {Username: "root", Role: model.RoleAdmin, PasswordHash: mustHash(t, "adminpass")},
	}}
	r := newTestRouter(newAuthService(t, dir, 30*time.Minute))

	var userRes, adminRes model.LoginResponse
	if err := json.Unmarshal(doLogin(t, r, "leon", "pa55word").Body.Bytes(), &userRes); err != nil {
		t.Fatalf("user login: %v", err)
	}
	if err := json.Unmarshal(doLogin(t, r, "root", "adminpass").Body.Bytes(), &adminRes); err != nil {
		t.Fatalf("admin login: %v", err)
	}

	if w := doGet(r, "/api/v1/users", userRes.AccessToken); w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for user role, got %d", w.Code)
	}
	if w := doGet(r, "/api/v1/users", adminRes.AccessToken); w.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin, got %d", w.Code)
	}
}

func TestExpiredToken(t *testing.T) {
	dir := &fakeDirectory{users: map[string]*model.User{
		"leon": {Username: "leon", Role: model.RoleUser, PasswordHash: mustHash(t, "pa55word")},
	}}
	r := newTestRouter(newAuthService(t, dir, time.Millisecond))

	w := doLogin(t, r, "leon", "pa55word")
	var res model.LoginResponse
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("bad login response: %v", err)
	}

	time.Sleep(10 * time.Millisecond)
	if me := doGet(r, "/api/v1/me", res.AccessToken); me.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for expired token, got %d", me.Code)
	}
}

func TestMissingAndMalformedAuthHeader(t *testing.T) {
	dir := &fakeDirectory{users: map[string]*model.User{}}
	r := newTestRouter(newAuthService(t, dir, 30*time.Minute))

	if w := doGet(r, "/api/v1/me", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without header, got %d", w.Code)
	}
	if w := doGet(r, "/api/v1/me", "garbage"); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for garbage token, got %d", w.Code)
	}
}
