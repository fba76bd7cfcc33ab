package domain

import (
	"crypto/rand"
	"encoding/hex"
)

// Snapshot is one complete, immutable value of the store at a point in time.
// Collections are ordered slices: stored order is meaningful for report
// generation and for stable tie-breaks in rankings.
type Snapshot struct {
	Company         Company          `json:"company"`
	Users           []User           `json:"users"`
	Departments     []Department     `json:"departments"`
	Technologies    []Technology     `json:"technologies"`
	Vendors         []Vendor         `json:"vendors"`
	Threats         []Threat         `json:"threats"`
	Assessments     []Assessment     `json:"assessments"`
	BIA             []BIA            `json:"bia"`
	Locations       []Location       `json:"locations"`
	Groups          []Group          `json:"groups"`
	Documents       Documents        `json:"documents"`
	Training        []Training       `json:"training"`
	CriticalDates   []CriticalDate   `json:"critDates"`
	Tasks           TaskPhases       `json:"tasks"`
	Issues          []Issue          `json:"issues"`
	Incidents       []Incident       `json:"incidents"`
	Equipment       []Equipment      `json:"equipment"`
	CustomQuestions []CustomQuestion `json:"customQuestions"`
}

// NewID returns a fresh opaque record identifier. Uniqueness, not ordering,
// is the only guaranteed property.
func NewID() string {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic(err)
	}
	return hex.EncodeToString(b[:])
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}

func cloneStrings(in []string) []string { return cloneSlice(in) }

func cloneDepartment(d Department) Department {
	cp := d
	cp.Processes = make([]Process, len(d.Processes))
	for i, p := range d.Processes {
		cp.Processes[i] = cloneProcess(p)
	}
	return cp
}

func cloneProcess(p Process) Process {
	cp := p
	cp.Dependencies = cloneStrings(p.Dependencies)
	return cp
}

func cloneGroup(g Group) Group {
	cp := g
	cp.MemberIDs = cloneStrings(g.MemberIDs)
	return cp
}

func cloneTraining(t Training) Training {
	cp := t
	cp.AttendeeIDs = cloneStrings(t.AttendeeIDs)
	return cp
}

func cloneFolder(f DocumentFolder) DocumentFolder {
	cp := f
	cp.Files = cloneSlice(f.Files)
	return cp
}

// Clone returns a deep copy of the snapshot. Mutations operate on a clone so
// that readers holding a prior snapshot keep a fully consistent view.
func (s Snapshot) Clone() Snapshot {
	cp := s
	cp.Users = cloneSlice(s.Users)
	cp.Departments = make([]Department, len(s.Departments))
	for i, d := range s.Departments {
		cp.Departments[i] = cloneDepartment(d)
	}
	cp.Technologies = cloneSlice(s.Technologies)
	cp.Vendors = cloneSlice(s.Vendors)
	cp.Threats = cloneSlice(s.Threats)
	cp.Assessments = cloneSlice(s.Assessments)
	cp.BIA = cloneSlice(s.BIA)
	cp.Locations = cloneSlice(s.Locations)
	cp.Groups = make([]Group, len(s.Groups))
	for i, g := range s.Groups {
		cp.Groups[i] = cloneGroup(g)
	}
	cp.Documents.Folders = make([]DocumentFolder, len(s.Documents.Folders))
	for i, f := range s.Documents.Folders {
		cp.Documents.Folders[i] = cloneFolder(f)
	}
	cp.Training = make([]Training, len(s.Training))
	for i, t := range s.Training {
		cp.Training[i] = cloneTraining(t)
	}
	cp.CriticalDates = cloneSlice(s.CriticalDates)
	cp.Tasks = TaskPhases{
		Early:     cloneStrings(s.Tasks.Early),
		Immediate: cloneStrings(s.Tasks.Immediate),
		ShortTerm: cloneStrings(s.Tasks.ShortTerm),
		LongTerm:  cloneStrings(s.Tasks.LongTerm),
	}
	cp.Issues = cloneSlice(s.Issues)
	cp.Incidents = cloneSlice(s.Incidents)
	cp.Equipment = cloneSlice(s.Equipment)
	cp.CustomQuestions = cloneSlice(s.CustomQuestions)
	return cp
}

// FindUser retrieves a user by id.
func (s Snapshot) FindUser(id string) (User, bool) {
	for _, u := range s.Users {
		if u.ID == id {
			return u, true
		}
	}
	return User{}, false
}

// FindDepartment retrieves a department by id.
func (s Snapshot) FindDepartment(id string) (Department, bool) {
	for _, d := range s.Departments {
		if d.ID == id {
			return cloneDepartment(d), true
		}
	}
	return Department{}, false
}

// FindVendor retrieves a vendor by id.
func (s Snapshot) FindVendor(id string) (Vendor, bool) {
	for _, v := range s.Vendors {
		if v.ID == id {
			return v, true
		}
	}
	return Vendor{}, false
}

// FindProcess scans every department's nested list for the process with the
// given id and returns it with its owning department id. Linear in
// departments x processes, acceptable at the data scale this tool targets.
func (s Snapshot) FindProcess(id string) (Process, string, bool) {
	for _, d := range s.Departments {
		for _, p := range d.Processes {
			if p.ID == id {
				return cloneProcess(p), d.ID, true
			}
		}
	}
	return Process{}, "", false
}

// UserName resolves a weak user reference to a display name, falling back to
// the raw id when the reference dangles.
func (s Snapshot) UserName(id string) string {
	if u, ok := s.FindUser(id); ok {
		return u.FullName()
	}
	return id
}

// DepartmentName resolves a weak department reference, falling back to the
// raw stored label when the reference dangles.
func (s Snapshot) DepartmentName(id string) string {
	if d, ok := s.FindDepartment(id); ok {
		return d.Name
	}
	return id
}

// ProcessName resolves a weak process reference, falling back to the raw
// stored label when the reference dangles.
func (s Snapshot) ProcessName(id string) string {
	if p, _, ok := s.FindProcess(id); ok {
		return p.Name
	}
	return id
}
