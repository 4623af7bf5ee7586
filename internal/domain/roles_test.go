package domain

import "testing"

func TestCanManageMatrix(t *testing.T) {
	cases := []struct {
		actor, target Role
		want          bool
	}{
		{RoleMaster, RoleClient, true},
		{RoleMaster, RoleWorker, true},
		{RoleMaster, RoleAdmin, true},
		{RoleMaster, RoleMaster, true},
		{RoleAdmin, RoleClient, true},
		{RoleAdmin, RoleWorker, true},
		{RoleAdmin, RoleAdmin, false},
		{RoleAdmin, RoleMaster, false},
		{RoleWorker, RoleClient, false},
		{RoleWorker, RoleWorker, false},
		{RoleWorker, RoleAdmin, false},
		{RoleWorker, RoleMaster, false},
		{RoleClient, RoleClient, false},
		{RoleClient, RoleWorker, false},
		{RoleClient, RoleAdmin, false},
		{RoleClient, RoleMaster, false},
	}
	for _, tc := range cases {
		if got := CanManage(tc.actor, tc.target); got != tc.want {
			t.Fatalf("CanManage(%s, %s) = %v, want %v", tc.actor, tc.target, got, tc.want)
		}
	}
}

func TestCanManageUnknownRoles(t *testing.T) {
	if CanManage(Role("superuser"), RoleClient) {
		t.Fatalf("unknown actor role should manage nothing")
	}
	if CanManage(RoleMaster, Role("ghost")) {
		t.Fatalf("unknown target role should not be manageable")
	}
}

func TestParseRole(t *testing.T) {
	if got := ParseRole("  Admin "); got != RoleAdmin {
		t.Fatalf("ParseRole normalized wrong: got %q", got)
	}
	if got := ParseRole("owner"); got != "" {
		t.Fatalf("unknown role should parse to empty, got %q", got)
	}
	if RoleWorker.Valid() != true || Role("owner").Valid() != false {
		t.Fatalf("Valid() misclassified role")
	}
}

func TestManagedRoles(t *testing.T) {
	got := ManagedRoles(RoleAdmin)
	if len(got) != 2 || got[0] != RoleClient || got[1] != RoleWorker {
		t.Fatalf("admin managed roles = %v", got)
	}
	if len(ManagedRoles(RoleWorker)) != 0 {
		t.Fatalf("worker should manage no roles")
	}
}
