package domain

import "fmt"

// ErrNotFound is returned when a mutation targets an id that is absent from
// its collection. The snapshot is left untouched in that case.
type ErrNotFound struct {
	Entity EntityType
	ID     string
}

func (e ErrNotFound) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

// appendRecord assigns a fresh id when the record carries none and appends it
// to the collection.
func appendRecord[T any](list []T, item T, id *string) []T {
	if *id == "" {
		*id = NewID()
	}
	return append(list, item)
}

func updateRecord[T any](list []T, id string, idOf func(T) string, mut func(*T)) bool {
	for i := range list {
		if idOf(list[i]) == id {
			mut(&list[i])
			return true
		}
	}
	return false
}

func deleteRecord[T any](list []T, id string, idOf func(T) string) ([]T, bool) {
	for i := range list {
		if idOf(list[i]) == id {
			return append(list[:i:i], list[i+1:]...), true
		}
	}
	return list, false
}

// AddUser appends a user record, assigning a fresh id when empty.
func (s *Snapshot) AddUser(u User) User {
	s.Users = appendRecord(s.Users, u, &u.ID)
	s.Users[len(s.Users)-1] = u
	return u
}

// UpdateUser merges fields onto the user with the given id via the mutator.
func (s *Snapshot) UpdateUser(id string, mut func(*User)) (User, error) {
	var updated User
	ok := updateRecord(s.Users, id, func(u User) string { return u.ID }, func(u *User) {
		mut(u)
		u.ID = id
		updated = *u
	})
	if !ok {
		return User{}, ErrNotFound{Entity: EntityUser, ID: id}
	}
	return updated, nil
}

// DeleteUser removes the user with the given id.
func (s *Snapshot) DeleteUser(id string) error {
	var ok bool
	if s.Users, ok = deleteRecord(s.Users, id, func(u User) string { return u.ID }); !ok {
		return ErrNotFound{Entity: EntityUser, ID: id}
	}
	return nil
}

// AddDepartment appends a department. A nil process list is normalized to an
// empty one so the department is a valid process owner from the start.
func (s *Snapshot) AddDepartment(d Department) Department {
	if d.Processes == nil {
		d.Processes = []Process{}
	}
	s.Departments = appendRecord(s.Departments, d, &d.ID)
	s.Departments[len(s.Departments)-1] = d
	return d
}

// UpdateDepartment merges fields onto a department. The nested process list
// is owned by the process operations and is restored after the mutator runs.
func (s *Snapshot) UpdateDepartment(id string, mut func(*Department)) (Department, error) {
	var updated Department
	ok := updateRecord(s.Departments, id, func(d Department) string { return d.ID }, func(d *Department) {
		kept := d.Processes
		mut(d)
		d.ID = id
		d.Processes = kept
		updated = cloneDepartment(*d)
	})
	if !ok {
		return Department{}, ErrNotFound{Entity: EntityDepartment, ID: id}
	}
	return updated, nil
}

// DeleteDepartment removes a department together with its owned process list.
// Records elsewhere that reference the department by weak ref are untouched.
func (s *Snapshot) DeleteDepartment(id string) error {
	var ok bool
	if s.Departments, ok = deleteRecord(s.Departments, id, func(d Department) string { return d.ID }); !ok {
		return ErrNotFound{Entity: EntityDepartment, ID: id}
	}
	return nil
}

// AddProcess appends a process to the department that will own it.
func (s *Snapshot) AddProcess(departmentID string, p Process) (Process, error) {
	for i := range s.Departments {
		if s.Departments[i].ID == departmentID {
			if p.ID == "" {
				p.ID = NewID()
			}
			s.Departments[i].Processes = append(s.Departments[i].Processes, cloneProcess(p))
			return p, nil
		}
	}
	return Process{}, ErrNotFound{Entity: EntityDepartment, ID: departmentID}
}

// UpdateProcess scans every department's nested list for the process id and
// merges fields onto it. The call site does not carry the owning department,
// so the scan is linear in departments x processes.
func (s *Snapshot) UpdateProcess(id string, mut func(*Process)) (Process, error) {
	for i := range s.Departments {
		for j := range s.Departments[i].Processes {
			if s.Departments[i].Processes[j].ID == id {
				p := &s.Departments[i].Processes[j]
				mut(p)
				p.ID = id
				return cloneProcess(*p), nil
			}
		}
	}
	return Process{}, ErrNotFound{Entity: EntityProcess, ID: id}
}

// DeleteProcess removes the process with the given id from whichever
// department owns it.
func (s *Snapshot) DeleteProcess(id string) error {
	for i := range s.Departments {
		procs, ok := deleteRecord(s.Departments[i].Processes, id, func(p Process) string { return p.ID })
		if ok {
			s.Departments[i].Processes = procs
			return nil
		}
	}
	return ErrNotFound{Entity: EntityProcess, ID: id}
}

// AddTechnology appends a technology record.
func (s *Snapshot) AddTechnology(t Technology) Technology {
	s.Technologies = appendRecord(s.Technologies, t, &t.ID)
	s.Technologies[len(s.Technologies)-1] = t
	return t
}

// UpdateTechnology merges fields onto a technology record.
func (s *Snapshot) UpdateTechnology(id string, mut func(*Technology)) (Technology, error) {
	var updated Technology
	ok := updateRecord(s.Technologies, id, func(t Technology) string { return t.ID }, func(t *Technology) {
		mut(t)
		t.ID = id
		updated = *t
	})
	if !ok {
		return Technology{}, ErrNotFound{Entity: EntityTechnology, ID: id}
	}
	return updated, nil
}

// DeleteTechnology removes a technology record.
func (s *Snapshot) DeleteTechnology(id string) error {
	var ok bool
	if s.Technologies, ok = deleteRecord(s.Technologies, id, func(t Technology) string { return t.ID }); !ok {
		return ErrNotFound{Entity: EntityTechnology, ID: id}
	}
	return nil
}

// AddVendor appends a vendor record.
func (s *Snapshot) AddVendor(v Vendor) Vendor {
	s.Vendors = appendRecord(s.Vendors, v, &v.ID)
	s.Vendors[len(s.Vendors)-1] = v
	return v
}

// UpdateVendor merges fields onto a vendor record.
func (s *Snapshot) UpdateVendor(id string, mut func(*Vendor)) (Vendor, error) {
	var updated Vendor
	ok := updateRecord(s.Vendors, id, func(v Vendor) string { return v.ID }, func(v *Vendor) {
		mut(v)
		v.ID = id
		updated = *v
	})
	if !ok {
		return Vendor{}, ErrNotFound{Entity: EntityVendor, ID: id}
	}
	return updated, nil
}

// DeleteVendor removes a vendor record. Technologies referencing it keep
// their dangling vendor ref.
func (s *Snapshot) DeleteVendor(id string) error {
	var ok bool
	if s.Vendors, ok = deleteRecord(s.Vendors, id, func(v Vendor) string { return v.ID }); !ok {
		return ErrNotFound{Entity: EntityVendor, ID: id}
	}
	return nil
}

// AddThreat appends a threat record. RPN is recomputed from the likelihood
// and impact factors; any supplied RPN value is overwritten.
func (s *Snapshot) AddThreat(t Threat) Threat {
	t.RPN = ComputeRPN(t.Likelihood, t.Impact)
	s.Threats = appendRecord(s.Threats, t, &t.ID)
	s.Threats[len(s.Threats)-1] = t
	return t
}

// UpdateThreat merges fields onto a threat record and rewrites the
// denormalized RPN from the resulting factors.
func (s *Snapshot) UpdateThreat(id string, mut func(*Threat)) (Threat, error) {
	var updated Threat
	ok := updateRecord(s.Threats, id, func(t Threat) string { return t.ID }, func(t *Threat) {
		mut(t)
		t.ID = id
		t.RPN = ComputeRPN(t.Likelihood, t.Impact)
		updated = *t
	})
	if !ok {
		return Threat{}, ErrNotFound{Entity: EntityThreat, ID: id}
	}
	return updated, nil
}

// DeleteThreat removes a threat record.
func (s *Snapshot) DeleteThreat(id string) error {
	var ok bool
	if s.Threats, ok = deleteRecord(s.Threats, id, func(t Threat) string { return t.ID }); !ok {
		return ErrNotFound{Entity: EntityThreat, ID: id}
	}
	return nil
}

// AddAssessment appends an assessment record, recomputing RPN like AddThreat.
func (s *Snapshot) AddAssessment(a Assessment) Assessment {
	a.RPN = ComputeRPN(a.Likelihood, a.Impact)
	s.Assessments = appendRecord(s.Assessments, a, &a.ID)
	s.Assessments[len(s.Assessments)-1] = a
	return a
}

// UpdateAssessment merges fields onto an assessment and rewrites its RPN.
func (s *Snapshot) UpdateAssessment(id string, mut func(*Assessment)) (Assessment, error) {
	var updated Assessment
	ok := updateRecord(s.Assessments, id, func(a Assessment) string { return a.ID }, func(a *Assessment) {
		mut(a)
		a.ID = id
		a.RPN = ComputeRPN(a.Likelihood, a.Impact)
		updated = *a
	})
	if !ok {
		return Assessment{}, ErrNotFound{Entity: EntityAssessment, ID: id}
	}
	return updated, nil
}

// DeleteAssessment removes an assessment record.
func (s *Snapshot) DeleteAssessment(id string) error {
	var ok bool
	if s.Assessments, ok = deleteRecord(s.Assessments, id, func(a Assessment) string { return a.ID }); !ok {
		return ErrNotFound{Entity: EntityAssessment, ID: id}
	}
	return nil
}

// AddBIA appends a business impact analysis record. Its department and
// process refs are not validated; dangling refs render as raw labels.
func (s *Snapshot) AddBIA(b BIA) BIA {
	s.BIA = appendRecord(s.BIA, b, &b.ID)
	s.BIA[len(s.BIA)-1] = b
	return b
}

// UpdateBIA merges fields onto a BIA record.
func (s *Snapshot) UpdateBIA(id string, mut func(*BIA)) (BIA, error) {
	var updated BIA
	ok := updateRecord(s.BIA, id, func(b BIA) string { return b.ID }, func(b *BIA) {
		mut(b)
		b.ID = id
		updated = *b
	})
	if !ok {
		return BIA{}, ErrNotFound{Entity: EntityBIA, ID: id}
	}
	return updated, nil
}

// DeleteBIA removes a BIA record.
func (s *Snapshot) DeleteBIA(id string) error {
	var ok bool
	if s.BIA, ok = deleteRecord(s.BIA, id, func(b BIA) string { return b.ID }); !ok {
		return ErrNotFound{Entity: EntityBIA, ID: id}
	}
	return nil
}

// AddLocation appends a location record.
func (s *Snapshot) AddLocation(l Location) Location {
	s.Locations = appendRecord(s.Locations, l, &l.ID)
	s.Locations[len(s.Locations)-1] = l
	return l
}

// UpdateLocation merges fields onto a location record.
func (s *Snapshot) UpdateLocation(id string, mut func(*Location)) (Location, error) {
	var updated Location
	ok := updateRecord(s.Locations, id, func(l Location) string { return l.ID }, func(l *Location) {
		mut(l)
		l.ID = id
		updated = *l
	})
	if !ok {
		return Location{}, ErrNotFound{Entity: EntityLocation, ID: id}
	}
	return updated, nil
}

// DeleteLocation removes a location record.
func (s *Snapshot) DeleteLocation(id string) error {
	var ok bool
	if s.Locations, ok = deleteRecord(s.Locations, id, func(l Location) string { return l.ID }); !ok {
		return ErrNotFound{Entity: EntityLocation, ID: id}
	}
	return nil
}

// AddGroup appends a group record.
func (s *Snapshot) AddGroup(g Group) Group {
	s.Groups = appendRecord(s.Groups, g, &g.ID)
	s.Groups[len(s.Groups)-1] = cloneGroup(g)
	return g
}

// UpdateGroup merges fields onto a group record.
func (s *Snapshot) UpdateGroup(id string, mut func(*Group)) (Group, error) {
	var updated Group
	ok := updateRecord(s.Groups, id, func(g Group) string { return g.ID }, func(g *Group) {
		mut(g)
		g.ID = id
		updated = cloneGroup(*g)
	})
	if !ok {
		return Group{}, ErrNotFound{Entity: EntityGroup, ID: id}
	}
	return updated, nil
}

// DeleteGroup removes a group record.
func (s *Snapshot) DeleteGroup(id string) error {
	var ok bool
	if s.Groups, ok = deleteRecord(s.Groups, id, func(g Group) string { return g.ID }); !ok {
		return ErrNotFound{Entity: EntityGroup, ID: id}
	}
	return nil
}

// AddDocumentFolder appends a folder to the document library.
func (s *Snapshot) AddDocumentFolder(f DocumentFolder) DocumentFolder {
	if f.Files == nil {
		f.Files = []DocFile{}
	}
	s.Documents.Folders = appendRecord(s.Documents.Folders, f, &f.ID)
	s.Documents.Folders[len(s.Documents.Folders)-1] = cloneFolder(f)
	return f
}

// UpdateDocumentFolder merges fields onto a folder, preserving its file list.
func (s *Snapshot) UpdateDocumentFolder(id string, mut func(*DocumentFolder)) (DocumentFolder, error) {
	var updated DocumentFolder
	ok := updateRecord(s.Documents.Folders, id, func(f DocumentFolder) string { return f.ID }, func(f *DocumentFolder) {
		kept := f.Files
		mut(f)
		f.ID = id
		f.Files = kept
		updated = cloneFolder(*f)
	})
	if !ok {
		return DocumentFolder{}, ErrNotFound{Entity: EntityDocumentFolder, ID: id}
	}
	return updated, nil
}

// DeleteDocumentFolder removes a folder together with its owned files.
func (s *Snapshot) DeleteDocumentFolder(id string) error {
	var ok bool
	if s.Documents.Folders, ok = deleteRecord(s.Documents.Folders, id, func(f DocumentFolder) string { return f.ID }); !ok {
		return ErrNotFound{Entity: EntityDocumentFolder, ID: id}
	}
	return nil
}

// AddDocFile appends a file to the folder that will own it.
func (s *Snapshot) AddDocFile(folderID string, f DocFile) (DocFile, error) {
	for i := range s.Documents.Folders {
		if s.Documents.Folders[i].ID == folderID {
			if f.ID == "" {
				f.ID = NewID()
			}
			s.Documents.Folders[i].Files = append(s.Documents.Folders[i].Files, f)
			return f, nil
		}
	}
	return DocFile{}, ErrNotFound{Entity: EntityDocumentFolder, ID: folderID}
}

// AddTraining appends a training record.
func (s *Snapshot) AddTraining(t Training) Training {
	s.Training = appendRecord(s.Training, t, &t.ID)
	s.Training[len(s.Training)-1] = cloneTraining(t)
	return t
}

// UpdateTraining merges fields onto a training record.
func (s *Snapshot) UpdateTraining(id string, mut func(*Training)) (Training, error) {
	var updated Training
	ok := updateRecord(s.Training, id, func(t Training) string { return t.ID }, func(t *Training) {
		mut(t)
		t.ID = id
		updated = cloneTraining(*t)
	})
	if !ok {
		return Training{}, ErrNotFound{Entity: EntityTraining, ID: id}
	}
	return updated, nil
}

// DeleteTraining removes a training record.
func (s *Snapshot) DeleteTraining(id string) error {
	var ok bool
	if s.Training, ok = deleteRecord(s.Training, id, func(t Training) string { return t.ID }); !ok {
		return ErrNotFound{Entity: EntityTraining, ID: id}
	}
	return nil
}

// AddCriticalDate appends a critical date record.
func (s *Snapshot) AddCriticalDate(cd CriticalDate) CriticalDate {
	s.CriticalDates = appendRecord(s.CriticalDates, cd, &cd.ID)
	s.CriticalDates[len(s.CriticalDates)-1] = cd
	return cd
}

// UpdateCriticalDate merges fields onto a critical date record.
func (s *Snapshot) UpdateCriticalDate(id string, mut func(*CriticalDate)) (CriticalDate, error) {
	var updated CriticalDate
	ok := updateRecord(s.CriticalDates, id, func(cd CriticalDate) string { return cd.ID }, func(cd *CriticalDate) {
		mut(cd)
		cd.ID = id
		updated = *cd
	})
	if !ok {
		return CriticalDate{}, ErrNotFound{Entity: EntityCriticalDate, ID: id}
	}
	return updated, nil
}

// DeleteCriticalDate removes a critical date record.
func (s *Snapshot) DeleteCriticalDate(id string) error {
	var ok bool
	if s.CriticalDates, ok = deleteRecord(s.CriticalDates, id, func(cd CriticalDate) string { return cd.ID }); !ok {
		return ErrNotFound{Entity: EntityCriticalDate, ID: id}
	}
	return nil
}

// AddTask appends a task description to the given response phase. Task
// entries are positional and carry no ids.
func (s *Snapshot) AddTask(phase TaskPhase, text string) error {
	switch phase {
	case PhaseEarly:
		s.Tasks.Early = append(s.Tasks.Early, text)
	case PhaseImmediate:
		s.Tasks.Immediate = append(s.Tasks.Immediate, text)
	case PhaseShortTerm:
		s.Tasks.ShortTerm = append(s.Tasks.ShortTerm, text)
	case PhaseLongTerm:
		s.Tasks.LongTerm = append(s.Tasks.LongTerm, text)
	default:
		return fmt.Errorf("unknown task phase %q", phase)
	}
	return nil
}

// AddIssue appends an issue record.
func (s *Snapshot) AddIssue(i Issue) Issue {
	s.Issues = appendRecord(s.Issues, i, &i.ID)
	s.Issues[len(s.Issues)-1] = i
	return i
}

// UpdateIssue merges fields onto an issue record.
func (s *Snapshot) UpdateIssue(id string, mut func(*Issue)) (Issue, error) {
	var updated Issue
	ok := updateRecord(s.Issues, id, func(i Issue) string { return i.ID }, func(i *Issue) {
		mut(i)
		i.ID = id
		updated = *i
	})
	if !ok {
		return Issue{}, ErrNotFound{Entity: EntityIssue, ID: id}
	}
	return updated, nil
}

// DeleteIssue removes an issue record.
func (s *Snapshot) DeleteIssue(id string) error {
	var ok bool
	if s.Issues, ok = deleteRecord(s.Issues, id, func(i Issue) string { return i.ID }); !ok {
		return ErrNotFound{Entity: EntityIssue, ID: id}
	}
	return nil
}

// AddIncident appends an incident record.
func (s *Snapshot) AddIncident(in Incident) Incident {
	s.Incidents = appendRecord(s.Incidents, in, &in.ID)
	s.Incidents[len(s.Incidents)-1] = in
	return in
}

// UpdateIncident merges fields onto an incident record.
func (s *Snapshot) UpdateIncident(id string, mut func(*Incident)) (Incident, error) {
	var updated Incident
	ok := updateRecord(s.Incidents, id, func(in Incident) string { return in.ID }, func(in *Incident) {
		mut(in)
		in.ID = id
		updated = *in
	})
	if !ok {
		return Incident{}, ErrNotFound{Entity: EntityIncident, ID: id}
	}
	return updated, nil
}

// DeleteIncident removes an incident record.
func (s *Snapshot) DeleteIncident(id string) error {
	var ok bool
	if s.Incidents, ok = deleteRecord(s.Incidents, id, func(in Incident) string { return in.ID }); !ok {
		return ErrNotFound{Entity: EntityIncident, ID: id}
	}
	return nil
}

// AddEquipment appends an equipment record.
func (s *Snapshot) AddEquipment(e Equipment) Equipment {
	s.Equipment = appendRecord(s.Equipment, e, &e.ID)
	s.Equipment[len(s.Equipment)-1] = e
	return e
}

// UpdateEquipment merges fields onto an equipment record.
func (s *Snapshot) UpdateEquipment(id string, mut func(*Equipment)) (Equipment, error) {
	var updated Equipment
	ok := updateRecord(s.Equipment, id, func(e Equipment) string { return e.ID }, func(e *Equipment) {
		mut(e)
		e.ID = id
		updated = *e
	})
	if !ok {
		return Equipment{}, ErrNotFound{Entity: EntityEquipment, ID: id}
	}
	return updated, nil
}

// DeleteEquipment removes an equipment record.
func (s *Snapshot) DeleteEquipment(id string) error {
	var ok bool
	if s.Equipment, ok = deleteRecord(s.Equipment, id, func(e Equipment) string { return e.ID }); !ok {
		return ErrNotFound{Entity: EntityEquipment, ID: id}
	}
	return nil
}

// AddCustomQuestion appends a custom planning question.
func (s *Snapshot) AddCustomQuestion(q CustomQuestion) CustomQuestion {
	s.CustomQuestions = appendRecord(s.CustomQuestions, q, &q.ID)
	s.CustomQuestions[len(s.CustomQuestions)-1] = q
	return q
}

// UpdateCustomQuestion merges fields onto a custom question.
func (s *Snapshot) UpdateCustomQuestion(id string, mut func(*CustomQuestion)) (CustomQuestion, error) {
	var updated CustomQuestion
	ok := updateRecord(s.CustomQuestions, id, func(q CustomQuestion) string { return q.ID }, func(q *CustomQuestion) {
		mut(q)
		q.ID = id
		updated = *q
	})
	if !ok {
		return CustomQuestion{}, ErrNotFound{Entity: EntityCustomQuestion, ID: id}
	}
	return updated, nil
}

// DeleteCustomQuestion removes a custom question.
func (s *Snapshot) DeleteCustomQuestion(id string) error {
	var ok bool
	if s.CustomQuestions, ok = deleteRecord(s.CustomQuestions, id, func(q CustomQuestion) string { return q.ID }); !ok {
		return ErrNotFound{Entity: EntityCustomQuestion, ID: id}
	}
	return nil
}

// UpdateCompany merges fields onto the singleton company profile.
func (s *Snapshot) UpdateCompany(mut func(*Company)) Company {
	mut(&s.Company)
	return s.Company
}
