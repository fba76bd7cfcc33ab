package domain

import "testing"

func TestCanMutate(t *testing.T) {
	cases := []struct {
		role string
		want bool
	}{
		{RoleAdmin, true},
		{RoleProgramManager, true},
		{RoleCrisisTeam, false},
		{RoleEmployee, false},
		{"", false},
		{"superuser", false},
	}
	for _, tc := range cases {
		if got := CanMutate(tc.role); got != tc.want {
			t.Fatalf("CanMutate(%q) = %v, want %v", tc.role, got, tc.want)
		}
	}
}

func TestCanView(t *testing.T) {
	cases := []struct {
		role    string
		section string
		want    bool
	}{
		{RoleAdmin, "users", true},
		{RoleAdmin, "threats", true},
		{RoleProgramManager, "users", false},
		{RoleProgramManager, "roles", false},
		{RoleProgramManager, "threats", true},
		{RoleCrisisTeam, "documents", true},  // documents_view
		{RoleCrisisTeam, "threats", true},    // threats_view
		{RoleCrisisTeam, "users", false},
		{RoleCrisisTeam, "settings", false},
		{RoleEmployee, "dashboard", true},
		{RoleEmployee, "documents", true}, // documents_view
		{RoleEmployee, "threats", false},
		{RoleEmployee, "calendar", true},
		{"unknown", "dashboard", false},
		{RoleAdmin, "nonexistent_section", false},
	}
	for _, tc := range cases {
		if got := CanView(tc.role, tc.section); got != tc.want {
			t.Fatalf("CanView(%q, %q) = %v, want %v", tc.role, tc.section, got, tc.want)
		}
	}
}

func TestRoleCatalog(t *testing.T) {
	roles := Roles()
	if len(roles) != 4 {
		t.Fatalf("expected 4 roles, got %d", len(roles))
	}
	for _, id := range []string{RoleAdmin, RoleProgramManager, RoleCrisisTeam, RoleEmployee} {
		r, ok := FindRole(id)
		if !ok {
			t.Fatalf("role %q missing from catalog", id)
		}
		if r.ID != id || r.Label == "" || len(r.Permissions) == 0 {
			t.Fatalf("incomplete role entry: %+v", r)
		}
	}
	if _, ok := FindRole("ghost"); ok {
		t.Fatalf("found nonexistent role")
	}
}

func TestAdminSeesStrictSupersetOfProgramManager(t *testing.T) {
	admin, _ := FindRole(RoleAdmin)
	pm, _ := FindRole(RoleProgramManager)
	perms := make(map[string]struct{}, len(admin.Permissions))
	for _, p := range admin.Permissions {
		perms[p] = struct{}{}
	}
	for _, p := range pm.Permissions {
		if _, ok := perms[p]; !ok {
			t.Fatalf("program_manager permission %q not held by admin", p)
		}
	}
	if len(admin.Permissions) <= len(pm.Permissions) {
		t.Fatalf("admin should hold more permissions than program_manager")
	}
}
