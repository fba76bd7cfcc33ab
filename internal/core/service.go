// Package core wires the domain store into a transactional mutation service
// with logging, metrics, and persistence selection.
package core

import (
	"context"
	"time"

	"continuitycore/pkg/domain"
)

// MutationResult carries the committed snapshot, the change record describing
// what the transaction did, and the outcome label a caller displays as a
// transient notification.
type MutationResult struct {
	Snapshot domain.Snapshot
	Change   domain.Change
	Outcome  domain.Outcome
}

// Service exposes the mutation call surface over a persistent store. It does
// not enforce the access gate itself; callers check domain.CanMutate before
// invoking mutating operations.
type Service struct {
	store   domain.PersistentStore
	logger  Logger
	metrics MetricsRecorder
}

// ServiceOption customizes a Service.
type ServiceOption func(*Service)

// WithLogger installs a structured logger.
func WithLogger(l Logger) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics installs a metrics recorder.
func WithMetrics(m MetricsRecorder) ServiceOption {
	return func(s *Service) {
		if m != nil {
			s.metrics = m
		}
	}
}

// NewService constructs a service backed by the supplied store.
func NewService(store domain.PersistentStore, opts ...ServiceOption) *Service {
	s := &Service{
		store:   store,
		logger:  NoopLogger{},
		metrics: NoopMetricsRecorder{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Store returns the underlying storage implementation.
func (s *Service) Store() domain.PersistentStore {
	return s.store
}

// Snapshot returns a deep copy of the current store state.
func (s *Service) Snapshot(ctx context.Context) (domain.Snapshot, error) {
	return s.store.Current(ctx)
}

func outcomeFor(action domain.Action) domain.Outcome {
	switch action {
	case domain.ActionCreate:
		return domain.OutcomeAdded
	case domain.ActionDelete:
		return domain.OutcomeDeleted
	default:
		return domain.OutcomeUpdated
	}
}

func (s *Service) run(ctx context.Context, op string, entity domain.EntityType, action domain.Action, fn func(*domain.Snapshot) error) (MutationResult, error) {
	start := time.Now()
	snap, err := s.store.Update(ctx, fn)
	s.metrics.Observe(ctx, op, err == nil, time.Since(start))
	res := MutationResult{
		Snapshot: snap,
		Change:   domain.Change{Entity: entity, Action: action},
		Outcome:  outcomeFor(action),
	}
	if err != nil {
		s.logger.Warn("mutation rejected", "op", op, "entity", string(entity), "error", err)
		return res, err
	}
	s.logger.Debug("mutation applied", "op", op, "entity", string(entity), "action", string(action))
	return res, nil
}

// CreateUser appends a new user record.
func (s *Service) CreateUser(ctx context.Context, u domain.User) (domain.User, MutationResult, error) {
	var created domain.User
	res, err := s.run(ctx, "create_user", domain.EntityUser, domain.ActionCreate, func(snap *domain.Snapshot) error {
		created = snap.AddUser(u)
		return nil
	})
	return created, res, err
}

// UpdateUser merges fields onto an existing user.
func (s *Service) UpdateUser(ctx context.Context, id string, mut func(*domain.User)) (domain.User, MutationResult, error) {
	var updated domain.User
	res, err := s.run(ctx, "update_user", domain.EntityUser, domain.ActionUpdate, func(snap *domain.Snapshot) error {
		var err error
		updated, err = snap.UpdateUser(id, mut)
		return err
	})
	return updated, res, err
}

// DeleteUser removes a user. References to the user elsewhere are left
// dangling.
func (s *Service) DeleteUser(ctx context.Context, id string) (MutationResult, error) {
	return s.run(ctx, "delete_user", domain.EntityUser, domain.ActionDelete, func(snap *domain.Snapshot) error {
		return snap.DeleteUser(id)
	})
}

// CreateDepartment appends a new department.
func (s *Service) CreateDepartment(ctx context.Context, d domain.Department) (domain.Department, MutationResult, error) {
	var created domain.Department
	res, err := s.run(ctx, "create_department", domain.EntityDepartment, domain.ActionCreate, func(snap *domain.Snapshot) error {
		created = snap.AddDepartment(d)
		return nil
	})
	return created, res, err
}

// UpdateDepartment merges fields onto an existing department.
func (s *Service) UpdateDepartment(ctx context.Context, id string, mut func(*domain.Department)) (domain.Department, MutationResult, error) {
	var updated domain.Department
	res, err := s.run(ctx, "update_department", domain.EntityDepartment, domain.ActionUpdate, func(snap *domain.Snapshot) error {
		var err error
		updated, err = snap.UpdateDepartment(id, mut)
		return err
	})
	return updated, res, err
}

// DeleteDepartment removes a department and its owned processes.
func (s *Service) DeleteDepartment(ctx context.Context, id string) (MutationResult, error) {
	return s.run(ctx, "delete_department", domain.EntityDepartment, domain.ActionDelete, func(snap *domain.Snapshot) error {
		return snap.DeleteDepartment(id)
	})
}

// CreateProcess appends a process under the owning department.
func (s *Service) CreateProcess(ctx context.Context, departmentID string, p domain.Process) (domain.Process, MutationResult, error) {
	var created domain.Process
	res, err := s.run(ctx, "create_process", domain.EntityProcess, domain.ActionCreate, func(snap *domain.Snapshot) error {
		var err error
		created, err = snap.AddProcess(departmentID, p)
		return err
	})
	return created, res, err
}

// UpdateProcess merges fields onto a process found by bare id.
func (s *Service) UpdateProcess(ctx context.Context, id string, mut func(*domain.Process)) (domain.Process, MutationResult, error) {
	var updated domain.Process
	res, err := s.run(ctx, "update_process", domain.EntityProcess, domain.ActionUpdate, func(snap *domain.Snapshot) error {
		var err error
		updated, err = snap.UpdateProcess(id, mut)
		return err
	})
	return updated, res, err
}

// DeleteProcess removes a process found by bare id.
func (s *Service) DeleteProcess(ctx context.Context, id string) (MutationResult, error) {
	return s.run(ctx, "delete_process", domain.EntityProcess, domain.ActionDelete, func(snap *domain.Snapshot) error {
		return snap.DeleteProcess(id)
	})
}

// CreateTechnology appends a technology asset.
func (s *Service) CreateTechnology(ctx context.Context, t domain.Technology) (domain.Technology, MutationResult, error) {
	var created domain.Technology
	res, err := s.run(ctx, "create_technology", domain.EntityTechnology, domain.ActionCreate, func(snap *domain.Snapshot) error {
		created = snap.AddTechnology(t)
		return nil
	})
	return created, res, err
}

// UpdateTechnology merges fields onto a technology asset.
func (s *Service) UpdateTechnology(ctx context.Context, id string, mut func(*domain.Technology)) (domain.Technology, MutationResult, error) {
	var updated domain.Technology
	res, err := s.run(ctx, "update_technology", domain.EntityTechnology, domain.ActionUpdate, func(snap *domain.Snapshot) error {
		var err error
		updated, err = snap.UpdateTechnology(id, mut)
		return err
	})
	return updated, res, err
}

// DeleteTechnology removes a technology asset.
func (s *Service) DeleteTechnology(ctx context.Context, id string) (MutationResult, error) {
	return s.run(ctx, "delete_technology", domain.EntityTechnology, domain.ActionDelete, func(snap *domain.Snapshot) error {
		return snap.DeleteTechnology(id)
	})
}

// CreateVendor appends a vendor record.
func (s *Service) CreateVendor(ctx context.Context, v domain.Vendor) (domain.Vendor, MutationResult, error) {
	var created domain.Vendor
	res, err := s.run(ctx, "create_vendor", domain.EntityVendor, domain.ActionCreate, func(snap *domain.Snapshot) error {
		created = snap.AddVendor(v)
		return nil
	})
	return created, res, err
}

// UpdateVendor merges fields onto a vendor record.
func (s *Service) UpdateVendor(ctx context.Context, id string, mut func(*domain.Vendor)) (domain.Vendor, MutationResult, error) {
	var updated domain.Vendor
	res, err := s.run(ctx, "update_vendor", domain.EntityVendor, domain.ActionUpdate, func(snap *domain.Snapshot) error {
		var err error
		updated, err = snap.UpdateVendor(id, mut)
		return err
	})
	return updated, res, err
}

// DeleteVendor removes a vendor record.
func (s *Service) DeleteVendor(ctx context.Context, id string) (MutationResult, error) {
	return s.run(ctx, "delete_vendor", domain.EntityVendor, domain.ActionDelete, func(snap *domain.Snapshot) error {
		return snap.DeleteVendor(id)
	})
}

// CreateThreat appends a threat record with its RPN derived from the factors.
func (s *Service) CreateThreat(ctx context.Context, t domain.Threat) (domain.Threat, MutationResult, error) {
	var created domain.Threat
	res, err := s.run(ctx, "create_threat", domain.EntityThreat, domain.ActionCreate, func(snap *domain.Snapshot) error {
		created = snap.AddThreat(t)
		return nil
	})
	return created, res, err
}

// UpdateThreat merges fields onto a threat record and refreshes its RPN.
func (s *Service) UpdateThreat(ctx context.Context, id string, mut func(*domain.Threat)) (domain.Threat, MutationResult, error) {
	var updated domain.Threat
	res, err := s.run(ctx, "update_threat", domain.EntityThreat, domain.ActionUpdate, func(snap *domain.Snapshot) error {
		var err error
		updated, err = snap.UpdateThreat(id, mut)
		return err
	})
	return updated, res, err
}

// DeleteThreat removes a threat record.
func (s *Service) DeleteThreat(ctx context.Context, id string) (MutationResult, error) {
	return s.run(ctx, "delete_threat", domain.EntityThreat, domain.ActionDelete, func(snap *domain.Snapshot) error {
		return snap.DeleteThreat(id)
	})
}

// CreateAssessment appends an assessment with its RPN derived from the factors.
func (s *Service) CreateAssessment(ctx context.Context, a domain.Assessment) (domain.Assessment, MutationResult, error) {
	var created domain.Assessment
	res, err := s.run(ctx, "create_assessment", domain.EntityAssessment, domain.ActionCreate, func(snap *domain.Snapshot) error {
		created = snap.AddAssessment(a)
		return nil
	})
	return created, res, err
}

// UpdateAssessment merges fields onto an assessment and refreshes its RPN.
func (s *Service) UpdateAssessment(ctx context.Context, id string, mut func(*domain.Assessment)) (domain.Assessment, MutationResult, error) {
	var updated domain.Assessment
	res, err := s.run(ctx, "update_assessment", domain.EntityAssessment, domain.ActionUpdate, func(snap *domain.Snapshot) error {
		var err error
		updated, err = snap.UpdateAssessment(id, mut)
		return err
	})
	return updated, res, err
}

// DeleteAssessment removes an assessment record.
func (s *Service) DeleteAssessment(ctx context.Context, id string) (MutationResult, error) {
	return s.run(ctx, "delete_assessment", domain.EntityAssessment, domain.ActionDelete, func(snap *domain.Snapshot) error {
		return snap.DeleteAssessment(id)
	})
}

// CreateBIA appends a business impact analysis record.
func (s *Service) CreateBIA(ctx context.Context, b domain.BIA) (domain.BIA, MutationResult, error) {
	var created domain.BIA
	res, err := s.run(ctx, "create_bia", domain.EntityBIA, domain.ActionCreate, func(snap *domain.Snapshot) error {
		created = snap.AddBIA(b)
		return nil
	})
	return created, res, err
}

// UpdateBIA merges fields onto a BIA record.
func (s *Service) UpdateBIA(ctx context.Context, id string, mut func(*domain.BIA)) (domain.BIA, MutationResult, error) {
	var updated domain.BIA
	res, err := s.run(ctx, "update_bia", domain.EntityBIA, domain.ActionUpdate, func(snap *domain.Snapshot) error {
		var err error
		updated, err = snap.UpdateBIA(id, mut)
		return err
	})
	return updated, res, err
}

// DeleteBIA removes a BIA record.
func (s *Service) DeleteBIA(ctx context.Context, id string) (MutationResult, error) {
	return s.run(ctx, "delete_bia", domain.EntityBIA, domain.ActionDelete, func(snap *domain.Snapshot) error {
		return snap.DeleteBIA(id)
	})
}

// CreateLocation appends a location record.
func (s *Service) CreateLocation(ctx context.Context, l domain.Location) (domain.Location, MutationResult, error) {
	var created domain.Location
	res, err := s.run(ctx, "create_location", domain.EntityLocation, domain.ActionCreate, func(snap *domain.Snapshot) error {
		created = snap.AddLocation(l)
		return nil
	})
	return created, res, err
}

// UpdateLocation merges fields onto a location record.
func (s *Service) UpdateLocation(ctx context.Context, id string, mut func(*domain.Location)) (domain.Location, MutationResult, error) {
	var updated domain.Location
	res, err := s.run(ctx, "update_location", domain.EntityLocation, domain.ActionUpdate, func(snap *domain.Snapshot) error {
		var err error
		updated, err = snap.UpdateLocation(id, mut)
		return err
	})
	return updated, res, err
}

// DeleteLocation removes a location record.
func (s *Service) DeleteLocation(ctx context.Context, id string) (MutationResult, error) {
	return s.run(ctx, "delete_location", domain.EntityLocation, domain.ActionDelete, func(snap *domain.Snapshot) error {
		return snap.DeleteLocation(id)
	})
}

// CreateGroup appends a response group.
func (s *Service) CreateGroup(ctx context.Context, g domain.Group) (domain.Group, MutationResult, error) {
	var created domain.Group
	res, err := s.run(ctx, "create_group", domain.EntityGroup, domain.ActionCreate, func(snap *domain.Snapshot) error {
		created = snap.AddGroup(g)
		return nil
	})
	return created, res, err
}

// UpdateGroup merges fields onto a response group.
func (s *Service) UpdateGroup(ctx context.Context, id string, mut func(*domain.Group)) (domain.Group, MutationResult, error) {
	var updated domain.Group
	res, err := s.run(ctx, "update_group", domain.EntityGroup, domain.ActionUpdate, func(snap *domain.Snapshot) error {
		var err error
		updated, err = snap.UpdateGroup(id, mut)
		return err
	})
	return updated, res, err
}

// DeleteGroup removes a response group.
func (s *Service) DeleteGroup(ctx context.Context, id string) (MutationResult, error) {
	return s.run(ctx, "delete_group", domain.EntityGroup, domain.ActionDelete, func(snap *domain.Snapshot) error {
		return snap.DeleteGroup(id)
	})
}

// CreateDocumentFolder appends a folder to the document library.
func (s *Service) CreateDocumentFolder(ctx context.Context, f domain.DocumentFolder) (domain.DocumentFolder, MutationResult, error) {
	var created domain.DocumentFolder
	res, err := s.run(ctx, "create_document_folder", domain.EntityDocumentFolder, domain.ActionCreate, func(snap *domain.Snapshot) error {
		created = snap.AddDocumentFolder(f)
		return nil
	})
	return created, res, err
}

// UpdateDocumentFolder merges fields onto a document folder.
func (s *Service) UpdateDocumentFolder(ctx context.Context, id string, mut func(*domain.DocumentFolder)) (domain.DocumentFolder, MutationResult, error) {
	var updated domain.DocumentFolder
	res, err := s.run(ctx, "update_document_folder", domain.EntityDocumentFolder, domain.ActionUpdate, func(snap *domain.Snapshot) error {
		var err error
		updated, err = snap.UpdateDocumentFolder(id, mut)
		return err
	})
	return updated, res, err
}

// DeleteDocumentFolder removes a folder and its files.
func (s *Service) DeleteDocumentFolder(ctx context.Context, id string) (MutationResult, error) {
	return s.run(ctx, "delete_document_folder", domain.EntityDocumentFolder, domain.ActionDelete, func(snap *domain.Snapshot) error {
		return snap.DeleteDocumentFolder(id)
	})
}

// CreateDocFile appends a file record under the owning folder.
func (s *Service) CreateDocFile(ctx context.Context, folderID string, f domain.DocFile) (domain.DocFile, MutationResult, error) {
	var created domain.DocFile
	res, err := s.run(ctx, "create_doc_file", domain.EntityDocFile, domain.ActionCreate, func(snap *domain.Snapshot) error {
		var err error
		created, err = snap.AddDocFile(folderID, f)
		return err
	})
	return created, res, err
}

// CreateTraining appends a training record.
func (s *Service) CreateTraining(ctx context.Context, t domain.Training) (domain.Training, MutationResult, error) {
	var created domain.Training
	res, err := s.run(ctx, "create_training", domain.EntityTraining, domain.ActionCreate, func(snap *domain.Snapshot) error {
		created = snap.AddTraining(t)
		return nil
	})
	return created, res, err
}

// UpdateTraining merges fields onto a training record.
func (s *Service) UpdateTraining(ctx context.Context, id string, mut func(*domain.Training)) (domain.Training, MutationResult, error) {
	var updated domain.Training
	res, err := s.run(ctx, "update_training", domain.EntityTraining, domain.ActionUpdate, func(snap *domain.Snapshot) error {
		var err error
		updated, err = snap.UpdateTraining(id, mut)
		return err
	})
	return updated, res, err
}

// DeleteTraining removes a training record.
func (s *Service) DeleteTraining(ctx context.Context, id string) (MutationResult, error) {
	return s.run(ctx, "delete_training", domain.EntityTraining, domain.ActionDelete, func(snap *domain.Snapshot) error {
		return snap.DeleteTraining(id)
	})
}

// CreateCriticalDate appends a critical date record.
func (s *Service) CreateCriticalDate(ctx context.Context, cd domain.CriticalDate) (domain.CriticalDate, MutationResult, error) {
	var created domain.CriticalDate
	res, err := s.run(ctx, "create_critical_date", domain.EntityCriticalDate, domain.ActionCreate, func(snap *domain.Snapshot) error {
		created = snap.AddCriticalDate(cd)
		return nil
	})
	return created, res, err
}

// UpdateCriticalDate merges fields onto a critical date record.
func (s *Service) UpdateCriticalDate(ctx context.Context, id string, mut func(*domain.CriticalDate)) (domain.CriticalDate, MutationResult, error) {
	var updated domain.CriticalDate
	res, err := s.run(ctx, "update_critical_date", domain.EntityCriticalDate, domain.ActionUpdate, func(snap *domain.Snapshot) error {
		var err error
		updated, err = snap.UpdateCriticalDate(id, mut)
		return err
	})
	return updated, res, err
}

// DeleteCriticalDate removes a critical date record.
func (s *Service) DeleteCriticalDate(ctx context.Context, id string) (MutationResult, error) {
	return s.run(ctx, "delete_critical_date", domain.EntityCriticalDate, domain.ActionDelete, func(snap *domain.Snapshot) error {
		return snap.DeleteCriticalDate(id)
	})
}

// AppendTask adds a task description to the given response phase.
func (s *Service) AppendTask(ctx context.Context, phase domain.TaskPhase, text string) (MutationResult, error) {
	return s.run(ctx, "append_task", domain.EntityTask, domain.ActionCreate, func(snap *domain.Snapshot) error {
		return snap.AddTask(phase, text)
	})
}

// CreateIssue appends an issue record.
func (s *Service) CreateIssue(ctx context.Context, i domain.Issue) (domain.Issue, MutationResult, error) {
	var created domain.Issue
	res, err := s.run(ctx, "create_issue", domain.EntityIssue, domain.ActionCreate, func(snap *domain.Snapshot) error {
		created = snap.AddIssue(i)
		return nil
	})
	return created, res, err
}

// UpdateIssue merges fields onto an issue record.
func (s *Service) UpdateIssue(ctx context.Context, id string, mut func(*domain.Issue)) (domain.Issue, MutationResult, error) {
	var updated domain.Issue
	res, err := s.run(ctx, "update_issue", domain.EntityIssue, domain.ActionUpdate, func(snap *domain.Snapshot) error {
		var err error
		updated, err = snap.UpdateIssue(id, mut)
		return err
	})
	return updated, res, err
}

// DeleteIssue removes an issue record.
func (s *Service) DeleteIssue(ctx context.Context, id string) (MutationResult, error) {
	return s.run(ctx, "delete_issue", domain.EntityIssue, domain.ActionDelete, func(snap *domain.Snapshot) error {
		return snap.DeleteIssue(id)
	})
}

// CreateIncident appends an incident record.
func (s *Service) CreateIncident(ctx context.Context, in domain.Incident) (domain.Incident, MutationResult, error) {
	var created domain.Incident
	res, err := s.run(ctx, "create_incident", domain.EntityIncident, domain.ActionCreate, func(snap *domain.Snapshot) error {
		created = snap.AddIncident(in)
		return nil
	})
	return created, res, err
}

// UpdateIncident merges fields onto an incident record.
func (s *Service) UpdateIncident(ctx context.Context, id string, mut func(*domain.Incident)) (domain.Incident, MutationResult, error) {
	var updated domain.Incident
	res, err := s.run(ctx, "update_incident", domain.EntityIncident, domain.ActionUpdate, func(snap *domain.Snapshot) error {
		var err error
		updated, err = snap.UpdateIncident(id, mut)
		return err
	})
	return updated, res, err
}

// DeleteIncident removes an incident record.
func (s *Service) DeleteIncident(ctx context.Context, id string) (MutationResult, error) {
	return s.run(ctx, "delete_incident", domain.EntityIncident, domain.ActionDelete, func(snap *domain.Snapshot) error {
		return snap.DeleteIncident(id)
	})
}

// CreateEquipment appends an equipment record.
func (s *Service) CreateEquipment(ctx context.Context, e domain.Equipment) (domain.Equipment, MutationResult, error) {
	var created domain.Equipment
	res, err := s.run(ctx, "create_equipment", domain.EntityEquipment, domain.ActionCreate, func(snap *domain.Snapshot) error {
		created = snap.AddEquipment(e)
		return nil
	})
	return created, res, err
}

// UpdateEquipment merges fields onto an equipment record.
func (s *Service) UpdateEquipment(ctx context.Context, id string, mut func(*domain.Equipment)) (domain.Equipment, MutationResult, error) {
	var updated domain.Equipment
	res, err := s.run(ctx, "update_equipment", domain.EntityEquipment, domain.ActionUpdate, func(snap *domain.Snapshot) error {
		var err error
		updated, err = snap.UpdateEquipment(id, mut)
		return err
	})
	return updated, res, err
}

// DeleteEquipment removes an equipment record.
func (s *Service) DeleteEquipment(ctx context.Context, id string) (MutationResult, error) {
	return s.run(ctx, "delete_equipment", domain.EntityEquipment, domain.ActionDelete, func(snap *domain.Snapshot) error {
		return snap.DeleteEquipment(id)
	})
}

// CreateCustomQuestion appends a custom planning question.
func (s *Service) CreateCustomQuestion(ctx context.Context, q domain.CustomQuestion) (domain.CustomQuestion, MutationResult, error) {
	var created domain.CustomQuestion
	res, err := s.run(ctx, "create_custom_question", domain.EntityCustomQuestion, domain.ActionCreate, func(snap *domain.Snapshot) error {
		created = snap.AddCustomQuestion(q)
		return nil
	})
	return created, res, err
}

// UpdateCustomQuestion merges fields onto a custom planning question.
func (s *Service) UpdateCustomQuestion(ctx context.Context, id string, mut func(*domain.CustomQuestion)) (domain.CustomQuestion, MutationResult, error) {
	var updated domain.CustomQuestion
	res, err := s.run(ctx, "update_custom_question", domain.EntityCustomQuestion, domain.ActionUpdate, func(snap *domain.Snapshot) error {
		var err error
		updated, err = snap.UpdateCustomQuestion(id, mut)
		return err
	})
	return updated, res, err
}

// DeleteCustomQuestion removes a custom planning question.
func (s *Service) DeleteCustomQuestion(ctx context.Context, id string) (MutationResult, error) {
	return s.run(ctx, "delete_custom_question", domain.EntityCustomQuestion, domain.ActionDelete, func(snap *domain.Snapshot) error {
		return snap.DeleteCustomQuestion(id)
	})
}

// UpdateCompany merges fields onto the singleton company profile.
func (s *Service) UpdateCompany(ctx context.Context, mut func(*domain.Company)) (domain.Company, MutationResult, error) {
	var updated domain.Company
	res, err := s.run(ctx, "update_company", domain.EntityCompany, domain.ActionUpdate, func(snap *domain.Snapshot) error {
		updated = snap.UpdateCompany(mut)
		return nil
	})
	return updated, res, err
}

// ReplaceSnapshot swaps the store contents wholesale, as backup restore does.
func (s *Service) ReplaceSnapshot(ctx context.Context, snap domain.Snapshot) (domain.Snapshot, error) {
	start := time.Now()
	committed, err := s.store.Replace(ctx, snap)
	s.metrics.Observe(ctx, "replace_snapshot", err == nil, time.Since(start))
	if err != nil {
		s.logger.Warn("snapshot replace failed", "error", err)
		return committed, err
	}
	s.logger.Info("snapshot replaced")
	return committed, nil
}

// ResetToSeed discards all data and restores the example dataset.
func (s *Service) ResetToSeed(ctx context.Context) (domain.Snapshot, error) {
	snap, err := s.ReplaceSnapshot(ctx, domain.SeedSnapshot())
	if err != nil {
		return snap, err
	}
	s.logger.Info("store reset to seed dataset")
	return snap, nil
}
