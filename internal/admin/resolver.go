package admin

import (
	"context"
)

// Role is a chat member's standing, as a closed set. Lookup failures
// map to RoleUnknown so an error is representable as data.
type Role string

const (
	RoleOwner         Role = "owner"
	RoleAdministrator Role = "administrator"
	RoleMember        Role = "member"
	RoleLeft          Role = "left"
	RoleUnknown       Role = "unknown"
)

// ParseRole maps a Telegram chat member status to a Role. Telegram
// calls the owner "creator"; restricted members hold no privilege and
// fold into member, kicked ones into left.
func ParseRole(status string) Role {
	switch status {
	case "creator", "owner":
		return RoleOwner
	case "administrator":
		return RoleAdministrator
	case "member", "restricted":
		return RoleMember
	case "left", "kicked":
		return RoleLeft
	}
	return RoleUnknown
}

// MemberLookup resolves an actor's role in a chat. Implementations may
// fail with a transport error.
type MemberLookup interface {
	GetRole(ctx context.Context, chatID, userID int64) (Role, error)
}

// Resolver decides whether an actor may take privileged actions such as
// force-ending another host's game.
type Resolver struct {
	lookup MemberLookup
}

func NewResolver(lookup MemberLookup) *Resolver {
	return &Resolver{lookup: lookup}
}

// IsPrivileged reports whether the actor is the chat owner or an
// administrator. Any lookup failure resolves to false: a failed check
// never grants privilege.
func (r *Resolver) IsPrivileged(ctx context.Context, chatID, userID int64) bool {
	role, err := r.lookup.GetRole(ctx, chatID, userID)
	if err != nil {
		return false
	}
	return role == RoleOwner || role == RoleAdministrator
}
