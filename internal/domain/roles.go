package domain

import "strings"

// Role is the closed set of account roles. Authorization is set membership,
// not a rank comparison: a worker can upload job photos like an admin can,
// but cannot see finance data, so no single ordering fits the business rules.
type Role string

const (
	RoleMaster Role = "master"
	RoleAdmin  Role = "admin"
	RoleWorker Role = "worker"
	RoleClient Role = "client"
)

// ParseRole normalizes a raw role string. Returns "" for unknown values.
func ParseRole(s string) Role {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleMaster:
		return RoleMaster
	case RoleAdmin:
		return RoleAdmin
	case RoleWorker:
		return RoleWorker
	case RoleClient:
		return RoleClient
	}
	return ""
}

func (r Role) Valid() bool {
	return r == RoleMaster || r == RoleAdmin || r == RoleWorker || r == RoleClient
}

func (r Role) String() string { return string(r) }

// manageMatrix is the full management matrix in one place so it can be
// audited and tested exhaustively.
var manageMatrix = map[Role]map[Role]bool{
	RoleMaster: {RoleClient: true, RoleWorker: true, RoleAdmin: true, RoleMaster: true},
	RoleAdmin:  {RoleClient: true, RoleWorker: true},
	RoleWorker: {},
	RoleClient: {},
}

// CanManage reports whether actor may create, modify, or delete an account
// with the target role.
func CanManage(actor, target Role) bool {
	return manageMatrix[actor][target]
}

// ManagedRoles lists the roles an actor may manage, for error messages.
func ManagedRoles(actor Role) []Role {
	out := []Role{}
	for _, r := range []Role{RoleClient, RoleWorker, RoleAdmin, RoleMaster} {
		if manageMatrix[actor][r] {
			out = append(out, r)
		}
	}
	return out
}
