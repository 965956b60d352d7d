package db

import (
	"testing"
	"time"

	"github.com/solutions/recruit-cube/internal/protodef/model"
)

func TestApplyUserDefaults(t *testing.T) {
	now := time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC)

	user := &model.UserDo{Email: "pat@example.com", Name: "Pat"}
	applyUserDefaults(user, now)
	if user.Role != model.UserRoleUser {
		t.Errorf("default role = %q, want %q", user.Role, model.UserRoleUser)
	}
	if user.ID == "" {
		t.Error("expected a generated id")
	}
	if !user.CreatedAt.Equal(now) || !user.UpdatedAt.Equal(now) {
		t.Errorf("timestamps = %v / %v, want %v", user.CreatedAt, user.UpdatedAt, now)
	}

	user = &model.UserDo{ID: "u-1", Email: "sam@example.com", Role: model.UserRoleHR}
	applyUserDefaults(user, now)
	if user.ID != "u-1" {
		t.Errorf("id = %q, want u-1", user.ID)
	}
	if user.Role != model.UserRoleHR {
		t.Errorf("role = %q, want %q", user.Role, model.UserRoleHR)
	}
}
