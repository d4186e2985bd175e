package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/LeonSoftLab/SupportAPI/internal/auth"
	"github.com/LeonSoftLab/SupportAPI/internal/db"
	"github.com/LeonSoftLab/SupportAPI/internal/model"
)

const maxUsernameLength = 15

// Usernames: letters (latin or cyrillic) and hyphens only.
var usernamePattern = regexp.MustCompile(`^[а-яА-Яa-zA-Z\-]+$`)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
)

// Invalidator drops a cached directory entry after a user mutation.
type Invalidator interface {
	Invalidate(ctx context.Context, username string)
}

type noopInvalidator struct{}

func (noopInvalidator) Invalidate(ctx context.Context, username string) {}

type UserService struct {
	repo   *db.Postgres
	hasher *auth.Hasher
	cache  Invalidator
}

func NewUserService(repo *db.Postgres, hasher *auth.Hasher, cache Invalidator) *UserService {
	if cache == nil {
		cache = noopInvalidator{}
	}
	return &UserService{repo: repo, hasher: hasher, cache: cache}
}

// EnsureAdmin creates the bootstrap admin account on first start. An existing
// account is left untouched.
func (s *UserService) EnsureAdmin(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return fmt.Errorf("%w: ADMIN_USERNAME/ADMIN_PASSWORD are required", auth.ErrMisconfigured)
	}

	existing, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return err
	}
	_, err = s.repo.CreateUser(ctx, &model.User{
		Username:     username,
		Role:         model.RoleAdmin,
		PasswordHash: hash,
	})
	return err
}

func (s *UserService) List(ctx context.Context) ([]model.UserResponse, error) {
	users, err := s.repo.GetUsers(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]model.UserResponse, 0, len(users))
	for _, u := range users {
		res = append(res, toUserResponse(&u))
	}
	return res, nil
}

func (s *UserService) Get(ctx context.Context, username string) (*model.UserResponse, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	res := toUserResponse(user)
	return &res, nil
}

func (s *UserService) Create(ctx context.Context, req model.UserCreateRequest) (*model.UserResponse, error) {
	if err := validateUsername(req.Username); err != nil {
		return nil, err
	}
	if req.Password == "" {
		return nil, ErrInvalidInput
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.CreateUser(ctx, &model.User{
		Username:     req.Username,
		Role:         model.RoleUser,
		PasswordHash: hash,
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	res := toUserResponse(user)
	return &res, nil
}

func (s *UserService) Update(ctx context.Context, username string, req model.UserUpdateRequest) (*model.UserResponse, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	if req.EmployeeID != nil {
		user.EmployeeID = *req.EmployeeID
	}
	if req.Disabled != nil {
		user.Disabled = *req.Disabled
	}
	if req.Role != nil {
		if _, err := model.ParseRole(string(*req.Role)); err != nil {
			return nil, ErrInvalidInput
		}
		user.Role = *req.Role
	}
	if req.Password != nil {
		if *req.Password == "" {
			return nil, ErrInvalidInput
		}
		hash, err := s.hasher.Hash(*req.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	updated, err := s.repo.UpdateUser(ctx, user)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, username)

	res := toUserResponse(updated)
	return &res, nil
}

// Disable is the delete operation: the account is switched off, never removed.
func (s *UserService) Disable(ctx context.Context, username string) (*model.UserResponse, error) {
	user, err := s.repo.DisableUser(ctx, username)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	s.cache.Invalidate(ctx, username)

	res := toUserResponse(user)
	return &res, nil
}

func toUserResponse(u *model.User) model.UserResponse {
	return model.UserResponse{
		Username:   u.Username,
		EmployeeID: u.EmployeeID,
		Disabled:   u.Disabled,
		Role:       u.Role,
	}
}

func validateUsername(username string) error {
	if username == "" || len(username) > maxUsernameLength {
		return ErrInvalidInput
	}
	if !usernamePattern.MatchString(username) {
		return ErrInvalidInput
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
