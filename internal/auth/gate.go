package auth

import "github.com/LeonSoftLab/SupportAPI/internal/model"

// RequireActive rejects disabled principals. A valid token never overrides
// the disabled flag.
func RequireActive(user *model.User) error {
	if user == nil || user.Disabled {
		return Reject(KindInactive)
	}
	return nil
}

// RequireRole rejects principals whose role differs from want.
func RequireRole(user *model.User, want model.Role) error {
	if user == nil || user.Role != want {
		return Reject(KindForbidden)
	}
	return nil
}
