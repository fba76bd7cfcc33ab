package core

import "continuitycore/pkg/domain"

// Aliases re-export the domain vocabulary so service callers work against a
// single package.
type (
	Snapshot        = domain.Snapshot
	PersistentStore = domain.PersistentStore
	Outcome         = domain.Outcome
	EntityType      = domain.EntityType
	Action          = domain.Action
	Change          = domain.Change

	Company        = domain.Company
	User           = domain.User
	Role           = domain.Role
	Department     = domain.Department
	Process        = domain.Process
	Technology     = domain.Technology
	Vendor         = domain.Vendor
	Threat         = domain.Threat
	Assessment     = domain.Assessment
	BIA            = domain.BIA
	Location       = domain.Location
	Group          = domain.Group
	DocFile        = domain.DocFile
	DocumentFolder = domain.DocumentFolder
	Training       = domain.Training
	CriticalDate   = domain.CriticalDate
	TaskPhases     = domain.TaskPhases
	TaskPhase      = domain.TaskPhase
	Issue          = domain.Issue
	Incident       = domain.Incident
	Equipment      = domain.Equipment
	CustomQuestion = domain.CustomQuestion
)

// Outcome labels handed to the UI layer after each mutation.
const (
	OutcomeAdded   = domain.OutcomeAdded
	OutcomeUpdated = domain.OutcomeUpdated
	OutcomeDeleted = domain.OutcomeDeleted
)
