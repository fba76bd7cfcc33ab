// Package domain defines the core persistent entities, the aggregate snapshot,
// and the mutation primitives used by continuitycore.
package domain

// EntityType identifies the type of record stored in the core domain.
type EntityType string

// Supported entity type identifiers used in Change records and persistence buckets.
const (
	// EntityUser identifies an operator or staff record.
	EntityUser EntityType = "user"
	// EntityDepartment identifies a department record.
	EntityDepartment EntityType = "department"
	// EntityProcess identifies a business process record owned by a department.
	EntityProcess EntityType = "process"
	// EntityTechnology identifies a technology asset record.
	EntityTechnology EntityType = "technology"
	// EntityVendor identifies a vendor record.
	EntityVendor EntityType = "vendor"
	// EntityThreat identifies a threat library record.
	EntityThreat EntityType = "threat"
	// EntityAssessment identifies a risk assessment record.
	EntityAssessment EntityType = "assessment"
	// EntityBIA identifies a business impact analysis record.
	EntityBIA EntityType = "bia"
	// EntityLocation identifies a facility location record.
	EntityLocation EntityType = "location"
	// EntityGroup identifies a response group record.
	EntityGroup EntityType = "group"
	// EntityDocumentFolder identifies a document folder record.
	EntityDocumentFolder EntityType = "document_folder"
	// EntityDocFile identifies a file entry within a document folder.
	EntityDocFile EntityType = "doc_file"
	// EntityTraining identifies a training record.
	EntityTraining EntityType = "training"
	// EntityCriticalDate identifies a critical date record.
	EntityCriticalDate EntityType = "critical_date"
	// EntityTask identifies a positional task entry within a response phase.
	EntityTask EntityType = "task"
	// EntityIssue identifies an open-item issue record.
	EntityIssue EntityType = "issue"
	// EntityIncident identifies an incident log record.
	EntityIncident EntityType = "incident"
	// EntityEquipment identifies an equipment inventory record.
	EntityEquipment EntityType = "equipment"
	// EntityCustomQuestion identifies a custom planning question record.
	EntityCustomQuestion EntityType = "custom_question"
	// EntityCompany identifies the singleton company profile.
	EntityCompany EntityType = "company"
)

// Action indicates the type of modification performed.
type Action string

// Change actions enumerate supported mutation operations.
const (
	// ActionCreate indicates an entity was created.
	ActionCreate Action = "create"
	// ActionUpdate indicates an entity was updated.
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Outcome is the human-readable label a mutation hands back to the UI layer
// for transient notification display.
type Outcome string

// Mutation outcome labels.
const (
	OutcomeAdded   Outcome = "added"
	OutcomeUpdated Outcome = "updated"
	OutcomeDeleted Outcome = "deleted"
)

// Change describes the mutation a transaction applied, for audit logging and
// caller-side notification routing.
type Change struct {
	Entity EntityType
	Action Action
}

// Recovery time objective buckets. Every process is assigned exactly one of
// the four fixed buckets.
const (
	RTOSameDay  = "Same Day"
	RTOOneDay   = "1 Day"
	RTOShort    = "2-5 Days"
	RTOExtended = "6+ Days"
)

// RTOBuckets returns the four fixed recovery-time buckets in display order.
func RTOBuckets() [4]string {
	return [4]string{RTOSameDay, RTOOneDay, RTOShort, RTOExtended}
}

// Company is the singleton organization profile. It carries no id.
type Company struct {
	Name        string `json:"name"`
	Address     string `json:"addr"`
	City        string `json:"city"`
	State       string `json:"state"`
	Zip         string `json:"zip"`
	Phone       string `json:"phone"`
	Industry    string `json:"industry"`
	Employees   int    `json:"employees"`
	FiscalStart string `json:"fiscalStart"`
}

// User represents an operator or staff member referenced by other records.
type User struct {
	ID           string `json:"id"`
	FirstName    string `json:"fn"`
	LastName     string `json:"ln"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Title        string `json:"title"`
	Role         string `json:"role"`
	DepartmentID string `json:"dept"`
	Active       bool   `json:"active"`
}

// FullName renders the user's display name.
func (u User) FullName() string { return u.FirstName + " " + u.LastName }

// Role is a static catalog entry carrying permission tokens. Roles are not
// stored in the mutable collections.
type Role struct {
	ID          string   `json:"id"`
	Label       string   `json:"label"`
	Permissions []string `json:"perms"`
}

// Process represents a business process exclusively owned by one department.
// Its id is unique across the whole store even though storage is nested.
type Process struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Priority     string   `json:"pri"`
	RTO          string   `json:"rto"`
	RPO          string   `json:"rpo"`
	MTD          string   `json:"mtd"`
	Strategy     string   `json:"strat"`
	Status       string   `json:"status"`
	Dependencies []string `json:"deps"`
	Workaround   string   `json:"workaround"`
}

// Department owns its process list exclusively. Lead is a weak user reference.
type Department struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	LeadID    string    `json:"lead"`
	Headcount int       `json:"headcount"`
	Processes []Process `json:"processes"`
}

// Technology represents a technology asset with weak vendor and department refs.
type Technology struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Tier         string `json:"tier"`
	Type         string `json:"type"`
	RPO          string `json:"rpo"`
	VendorID     string `json:"vendor"`
	DepartmentID string `json:"dept"`
	Status       string `json:"status"`
}

// Vendor represents an external supplier.
type Vendor struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Critical    bool   `json:"critical"`
	SLA         string `json:"sla"`
	Contact     string `json:"contact"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	ContractEnd string `json:"contract"`
}

// Threat is a threat library record. RPN is denormalized and must equal
// Likelihood*Impact after every mutation touching either factor.
type Threat struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Category   string `json:"cat"`
	Likelihood int    `json:"like"`
	Impact     int    `json:"impact"`
	RPN        int    `json:"rpn"`
	Trend      string `json:"trend"`
}

// Assessment is a risk assessment record. RPN is denormalized like Threat.
type Assessment struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Status     string `json:"status"`
	Likelihood int    `json:"like"`
	Impact     int    `json:"impact"`
	RPN        int    `json:"rpn"`
	Mitigation string `json:"miti"`
	Date       string `json:"date"`
	ReviewerID string `json:"reviewer"`
}

// BIA quantifies the impact of a process disruption. Department and process
// references are weak and are not enforced to resolve.
type BIA struct {
	ID                 string `json:"id"`
	DepartmentID       string `json:"dept"`
	ProcessID          string `json:"process"`
	FinancialImpact    int    `json:"finImpact"`
	OperationalImpact  string `json:"opsImpact"`
	ReputationalImpact string `json:"repImpact"`
	RegulatoryImpact   string `json:"regImpact"`
	Notes              string `json:"notes"`
}

// Location is a physical facility record.
type Location struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Address  string `json:"addr"`
	Type     string `json:"type"`
	Capacity int    `json:"capacity"`
	Status   string `json:"status"`
}

// Group is a named response team with weak user references.
type Group struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"desc"`
	MemberIDs   []string `json:"members"`
}

// DocFile is a document record owned by a folder.
type DocFile struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Size     string `json:"size"`
	Date     string `json:"date"`
	AuthorID string `json:"author"`
}

// DocumentFolder owns its file list.
type DocumentFolder struct {
	ID    string    `json:"id"`
	Name  string    `json:"name"`
	Files []DocFile `json:"files"`
}

// Documents is the document library container.
type Documents struct {
	Folders []DocumentFolder `json:"folders"`
}

// Training is a scheduled training or exercise record.
type Training struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Frequency   string   `json:"freq"`
	Last        string   `json:"last"`
	Next        string   `json:"next"`
	Status      string   `json:"status"`
	AttendeeIDs []string `json:"attendees"`
}

// CriticalDate is a calendar milestone. Department is a free-text label, not a ref.
type CriticalDate struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Date       string `json:"date"`
	Department string `json:"dept"`
	Type       string `json:"type"`
}

// TaskPhases holds the four ordered response task lists. Entries carry no ids;
// position is meaningful.
type TaskPhases struct {
	Early     []string `json:"early"`
	Immediate []string `json:"immed"`
	ShortTerm []string `json:"short"`
	LongTerm  []string `json:"long"`
}

// TaskPhase selects one of the four response phases.
type TaskPhase string

// Response phase identifiers, in chronological order.
const (
	PhaseEarly     TaskPhase = "early"
	PhaseImmediate TaskPhase = "immed"
	PhaseShortTerm TaskPhase = "short"
	PhaseLongTerm  TaskPhase = "long"
)

// Issue is an open-item tracking record.
type Issue struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Status       string `json:"status"`
	Priority     string `json:"pri"`
	DepartmentID string `json:"dept"`
	AssigneeID   string `json:"assigned"`
	Created      string `json:"created"`
	Description  string `json:"desc"`
}

// Incident is a historical incident log record.
type Incident struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Severity    string `json:"severity"`
	Status      string `json:"status"`
	LeadID      string `json:"lead"`
	Description string `json:"desc"`
	Resolution  string `json:"resolution"`
}

// Equipment is an inventory record for recovery equipment.
type Equipment struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Type       string `json:"type"`
	Serial     string `json:"serial"`
	Location   string `json:"location"`
	Status     string `json:"status"`
	AssignedTo string `json:"assigned"`
}

// CustomQuestion is an operator-defined planning question.
type CustomQuestion struct {
	ID       string `json:"id"`
	Question string `json:"q"`
}

// ComputeRPN returns the risk priority number for a likelihood and impact,
// each scored 1-5, yielding a value in 1-25.
func ComputeRPN(likelihood, impact int) int { return likelihood * impact }
