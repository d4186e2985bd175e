package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/LeonSoftLab/SupportAPI/internal/model"
)

type fakeDirectory struct {
	users map[string]*model.User
	err   error
}

func (d *fakeDirectory) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	if d.err != nil {
		return nil, d.err
	}
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

func newTestService(t *testing.T, dir Directory) *Service {
	t.Helper()
	codec, err := NewTokenCodec("test-secret", 30*time.Minute)
	if err != nil {
		t.Fatalf("codec init failed: %v", err)
	}
	return NewService(dir, NewHasher(), codec)
}

func TestAuthenticateAndResolveRoundTrip(t *testing.T) {
	dir := &fakeDirectory{users: map[string]*model.User{
		"leon": {Username: "leon", EmployeeID: 7, Role: model.RoleUser, PasswordHash: mustHash(t, "pa55word")},
	}}
	svc := newTestService(t, dir)

	user, err := svc.Authenticate(context.Background(), "leon", "pa55word")
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}

	token, expiresIn, err := svc.Issue(user)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if expiresIn != int64((30 * time.Minute).Seconds()) {
		t.Fatalf("unexpected expires_in %d", expiresIn)
	}

	resolved, err := svc.Resolve(context.Background(), token)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if resolved.Username != "leon" || resolved.EmployeeID != 7 {
		t.Fatalf("wrong principal %+v", resolved)
	}
}

func TestAuthenticateRejectsIndistinguishably(t *testing.T) {
	dir := &fakeDirectory{users: map[string]*model.User{
		"leon": {Username: "leon", Role: model.RoleUser, PasswordHash: mustHash(t, "pa55word")},
	}}
	svc := newTestService(t, dir)

	// Wrong password and unknown username produce the same rejection.
	_, wrongPass := svc.Authenticate(context.Background(), "leon", "nope")
	_, unknown := svc.Authenticate(context.Background(), "ghost", "nope")

	if KindOf(wrongPass) != KindInvalidCredentials {
		t.Fatalf("wrong password: expected InvalidCredentials, got %v", wrongPass)
	}
	if wrongPass.Error() != unknown.Error() {
		t.Fatalf("rejections differ: %v vs %v", wrongPass, unknown)
	}
}

func TestAuthenticateDirectoryOutage(t *testing.T) {
	dir := &fakeDirectory{err: errors.New("connection refused")}
	svc := newTestService(t, dir)

	_, err := svc.Authenticate(context.Background(), "leon", "pa55word")
	if !errors.Is(err, ErrDirectoryUnavailable) {
		t.Fatalf("expected DirectoryUnavailable, got %v", err)
	}
	if KindOf(err) == KindInvalidCredentials {
		t.Fatal("an outage must not look like a bad login")
	}
}

func TestResolveDeletedUser(t *testing.T) {
	dir := &fakeDirectory{users: map[string]*model.User{
		"leon": {Username: "leon", Role: model.RoleUser, PasswordHash: mustHash(t, "pa55word")},
	}}
	svc := newTestService(t, dir)

	user, err := svc.Authenticate(context.Background(), "leon", "pa55word")
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	token, _, err := svc.Issue(user)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	delete(dir.users, "leon")
	_, err = svc.Resolve(context.Background(), token)
	if KindOf(err) != KindInvalidCredentials {
		t.Fatalf("expected InvalidCredentials for deleted user, got %v", err)
	}
}

func TestResolveIdempotent(t *testing.T) {
	dir := &fakeDirectory{users: map[string]*model.User{
		"leon": {Username: "leon", EmployeeID: 3, Role: model.RoleAdmin, PasswordHash: mustHash(t, "pa55word")},
	}}
	svc := newTestService(t, dir)

	user, err := svc.Authenticate(context.Background(), "leon", "pa55word")
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	token, _, err := svc.Issue(user)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	first, err := svc.Resolve(context.Background(), token)
	if err != nil {
		t.Fatalf("first resolve failed: %v", err)
	}
	second, err := svc.Resolve(context.Background(), token)
	if err != nil {
		t.Fatalf("second resolve failed: %v", err)
	}
	if *first != *second {
		t.Fatalf("resolve not idempotent: %+v vs %+v", first, second)
	}
}

func TestResolveRejectsGarbage(t *testing.T) {
	svc := newTestService(t, &fakeDirectory{})

	_, err := svc.Resolve(context.Background(), "not-a-token")
	if KindOf(err) != KindMalformed {
		t.Fatalf("expected Malformed, got %v", err)
	}
}
