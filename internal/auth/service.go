package auth

import (
	"context"

	"github.com/LeonSoftLab/SupportAPI/internal/model"
)

// Directory is the user-lookup collaborator. Absent users come back as
// (nil, nil); a non-nil error means the directory itself is unreachable.
type Directory interface {
	FindByUsername(ctx context.Context, username string) (*model.User, error)
}

// Service composes the hasher, token codec and directory into the login and
// token-resolution flows. It holds no mutable state and is safe for
// concurrent use.
type Service struct {
	dir    Directory
	hasher *Hasher
	codec  *TokenCodec
}

func NewService(dir Directory, hasher *Hasher, codec *TokenCodec) *Service {
	return &Service{dir: dir, hasher: hasher, codec: codec}
}

// Authenticate checks a username/password pair against the directory.
// Unknown user and wrong password are indistinguishable to the caller, which
// keeps usernames unenumerable.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	user, err := s.dir.FindByUsername(ctx, username)
	if err != nil {
		return nil, directoryUnavailable(err)
	}
	if user == nil {
		return nil, Reject(KindInvalidCredentials)
	}
	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, Reject(KindInvalidCredentials)
	}
	return user, nil
}

// Issue signs a bearer token for an authenticated principal and returns it
// with its lifetime in seconds.
func (s *Service) Issue(user *model.User) (string, int64, error) {
	token, err := s.codec.Issue(user.Username)
	if err != nil {
		return "", 0, err
	}
	return token, int64(s.codec.TTL().Seconds()), nil
}

// Resolve turns a raw bearer token back into a principal. The token is
// verified first; only then is its subject looked up, so a user deleted
// after issuance is rejected like any bad credential.
func (s *Service) Resolve(ctx context.Context, raw string) (*model.User, error) {
	subject, err := s.codec.Parse(raw)
	if err != nil {
		return nil, err
	}
	user, err := s.dir.FindByUsername(ctx, subject)
	if err != nil {
		return nil, directoryUnavailable(err)
	}
	if user == nil {
		return nil, Reject(KindInvalidCredentials)
	}
	return user, nil
}
