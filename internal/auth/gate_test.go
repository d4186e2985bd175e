package auth

import (
	"testing"

	"github.com/LeonSoftLab/SupportAPI/internal/model"
)

func TestRequireActive(t *testing.T) {
	active := &model.User{Username: "leon", Role: model.RoleUser}
	if err := RequireActive(active); err != nil {
		t.Fatalf("active user rejected: %v", err)
	}

	disabled := &model.User{Username: "leon", Role: model.RoleAdmin, Disabled: true}
	if KindOf(RequireActive(disabled)) != KindInactive {
		t.Fatal("disabled user must be rejected regardless of role")
	}

	if KindOf(RequireActive(nil)) != KindInactive {
		t.Fatal("nil principal must be rejected")
	}
}

func TestRequireRole(t *testing.T) {
	admin := &model.User{Username: "root", Role: model.RoleAdmin}
	if err := RequireRole(admin, model.RoleAdmin); err != nil {
		t.Fatalf("admin rejected: %v", err)
	}

	user := &model.User{Username: "leon", Role: model.RoleUser}
	if KindOf(RequireRole(user, model.RoleAdmin)) != KindForbidden {
		t.Fatal("expected Forbidden for non-admin")
	}
	if KindOf(RequireRole(nil, model.RoleAdmin)) != KindForbidden {
		t.Fatal("expected Forbidden for nil principal")
	}
}
