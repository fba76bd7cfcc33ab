package domain

// Built-in role identifiers. Roles gate which plan sections an account can
// open and whether it can run mutations at all.
const (
	RoleAdmin          = "admin"
	RoleProgramManager = "program_manager"
	RoleCrisisTeam     = "crisis_team"
	RoleEmployee       = "employee"
)

// Roles returns the built-in role catalog in its canonical order. The
// catalog is static; it is not part of the mutable snapshot.
func Roles() []Role {
	return []Role{
		{
			ID:    RoleAdmin,
			Label: "Administrator",
			Permissions: []string{
				"dashboard", "departments", "processes", "technologies",
				"vendors", "threats", "assessments", "bia", "locations",
				"groups", "documents", "training", "critdates", "tasks",
				"issues", "incidents", "settings", "users", "roles", "ai",
				"reports", "equipment", "calendar", "custom_questions",
			},
		},
		{
			ID:    RoleProgramManager,
			Label: "Program Manager",
			Permissions: []string{
				"dashboard", "departments", "processes", "technologies",
				"vendors", "threats", "assessments", "bia", "locations",
				"groups", "documents", "training", "critdates", "tasks",
				"issues", "incidents", "settings", "ai", "reports",
				"equipment", "calendar", "custom_questions",
			},
		},
		{
			ID:    RoleCrisisTeam,
			Label: "Crisis Team",
			Permissions: []string{
				"dashboard", "departments_view", "processes_view",
				"technologies_view", "vendors_view", "threats_view",
				"assessments_view", "bia_view", "locations_view",
				"groups_view", "documents_view", "training_view",
				"critdates_view", "tasks_view", "issues_view",
				"incidents_view", "ai", "reports", "equipment_view",
				"calendar",
			},
		},
		{
			ID:          RoleEmployee,
			Label:       "Employee",
			Permissions: []string{"dashboard", "documents_view", "training_view", "calendar"},
		},
	}
}

// FindRole looks up a role by id in the catalog.
func FindRole(id string) (Role, bool) {
	for _, r := range Roles() {
		if r.ID == id {
			return r, true
		}
	}
	return Role{}, false
}

// CanMutate reports whether accounts holding the role may run mutating
// operations. Only the two management roles qualify; permission tokens play
// no part in the write decision.
func CanMutate(roleID string) bool {
	return roleID == RoleAdmin || roleID == RoleProgramManager
}

// CanView reports whether the role may open the named section. A role sees a
// section when it carries the section token itself or the read-only
// "<section>_view" variant. Unknown roles see nothing.
func CanView(roleID, section string) bool {
	r, ok := FindRole(roleID)
	if !ok {
		return false
	}
	for _, p := range r.Permissions {
		if p == section || p == section+"_view" {
			return true
		}
	}
	return false
}
