package admin

import (
	"context"
	"errors"
	"testing"
)

type lookupFunc func(ctx context.Context, chatID, userID int64) (Role, error)

func (f lookupFunc) GetRole(ctx context.Context, chatID, userID int64) (Role, error) {
	return f(ctx, chatID, userID)
}

func TestParseRole(t *testing.T) {
	cases := []struct {
		status string
		want   Role
	}{
		{"creator", RoleOwner},
		{"owner", RoleOwner},
		{"administrator", RoleAdministrator},
		{"member", RoleMember},
		{"restricted", RoleMember},
		{"left", RoleLeft},
		{"kicked", RoleLeft},
		{"", RoleUnknown},
		{"something-new", RoleUnknown},
	}
	for _, c := range cases {
		if got := ParseRole(c.status); got != c.want {
			t.Fatalf("ParseRole(%q) = %s, want %s", c.status, got, c.want)
		}
	}
}

func TestIsPrivileged(t *testing.T) {
	cases := []struct {
		role Role
		want bool
	}{
		{RoleOwner, true},
		{RoleAdministrator, true},
		{RoleMember, false},
		{RoleLeft, false},
		{RoleUnknown, false},
	}
	for _, c := range cases {
		r := NewResolver(lookupFunc(func(ctx context.Context, chatID, userID int64) (Role, error) {
			return c.role, nil
		}))
		if got := r.IsPrivileged(context.Background(), 1, 2); got != c.want {
			t.Fatalf("IsPrivileged with role %s = %v, want %v", c.role, got, c.want)
		}
	}
}

func TestIsPrivilegedFailsClosed(t *testing.T) {
	r := NewResolver(lookupFunc(func(ctx context.Context, chatID, userID int64) (Role, error) {
		return RoleOwner, errors.New("network down")
	}))
	if r.IsPrivileged(context.Background(), 1, 2) {
		t.Fatal("lookup failure must never grant privilege")
	}
}
