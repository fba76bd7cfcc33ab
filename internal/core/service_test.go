package core

import (
	"context"
	"errors"
	"testing"

	"continuitycore/internal/infra/persistence/memory"
	"continuitycore/pkg/domain"
)

func newTestService(t *testing.T, opts ...ServiceOption) *Service {
	t.Helper()
	return NewService(memory.NewSeededStore(), opts...)
}

func TestServiceCreateUser(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, res, err := svc.CreateUser(ctx, domain.User{FirstName: "Dana", LastName: "Reyes", Role: domain.RoleEmployee, Active: true})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected generated id")
	}
	if res.Outcome != OutcomeAdded {
		t.Fatalf("outcome = %q, want %q", res.Outcome, OutcomeAdded)
	}
	if res.Change.Entity != domain.EntityUser || res.Change.Action != domain.ActionCreate {
		t.Fatalf("unexpected change record: %+v", res.Change)
	}
	if _, ok := res.Snapshot.FindUser(created.ID); !ok {
		t.Fatalf("created user missing from committed snapshot")
	}

	snap, err := svc.Snapshot(ctx)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if _, ok := snap.FindUser(created.ID); !ok {
		t.Fatalf("created user missing from store")
	}
}

func TestServiceRejectedMutationLeavesStoreIntact(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	before, err := svc.Snapshot(ctx)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	_, res, err := svc.UpdateThreat(ctx, "missing", func(th *domain.Threat) { th.Name = "x" })
	var nf domain.ErrNotFound
	if !errors.As(err, &nf) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(res.Snapshot.Threats) != len(before.Threats) {
		t.Fatalf("rejected mutation returned a changed snapshot")
	}
	after, err := svc.Snapshot(ctx)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if len(after.Threats) != len(before.Threats) {
		t.Fatalf("store changed by rejected mutation")
	}
}

func TestServiceDeleteOutcome(t *testing.T) {
	svc := newTestService(t)
	res, err := svc.DeleteIssue(context.Background(), "i3")
	if err != nil {
		t.Fatalf("delete issue: %v", err)
	}
	if res.Outcome != OutcomeDeleted {
		t.Fatalf("outcome = %q, want %q", res.Outcome, OutcomeDeleted)
	}
	if res.Change.Entity != domain.EntityIssue || res.Change.Action != domain.ActionDelete {
		t.Fatalf("unexpected change record: %+v", res.Change)
	}
	if len(res.Snapshot.Issues) != 2 {
		t.Fatalf("expected 2 issues left, got %d", len(res.Snapshot.Issues))
	}
}

func TestServiceCreateThreatComputesRPN(t *testing.T) {
	svc := newTestService(t)
	created, _, err := svc.CreateThreat(context.Background(), domain.Threat{Name: "Tornado", Category: "Natural", Likelihood: 2, Impact: 4})
	if err != nil {
		t.Fatalf("create threat: %v", err)
	}
	if created.RPN != 8 {
		t.Fatalf("RPN = %d, want 8", created.RPN)
	}
}

func TestServiceUpdateCompany(t *testing.T) {
	svc := newTestService(t)
	company, res, err := svc.UpdateCompany(context.Background(), func(c *domain.Company) {
		c.Industry = "Logistics"
	})
	if err != nil {
		t.Fatalf("update company: %v", err)
	}
	if company.Industry != "Logistics" || company.Name != "Acme Corporation" {
		t.Fatalf("unexpected company: %+v", company)
	}
	if res.Outcome != OutcomeUpdated {
		t.Fatalf("outcome = %q", res.Outcome)
	}
}

func TestServiceAppendTask(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	res, err := svc.AppendTask(ctx, domain.PhaseImmediate, "Confirm generator fuel levels")
	if err != nil {
		t.Fatalf("append task: %v", err)
	}
	tasks := res.Snapshot.Tasks.Immediate
	if tasks[len(tasks)-1] != "Confirm generator fuel levels" {
		t.Fatalf("task not appended: %v", tasks)
	}
	if _, err := svc.AppendTask(ctx, domain.TaskPhase("bogus"), "x"); err == nil {
		t.Fatalf("expected error for unknown phase")
	}
}

func TestServiceResetToSeed(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	if _, err := svc.DeleteThreat(ctx, "th1"); err != nil {
		t.Fatalf("delete threat: %v", err)
	}
	snap, err := svc.ResetToSeed(ctx)
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	if len(snap.Threats) != 8 {
		t.Fatalf("expected seed threats restored, got %d", len(snap.Threats))
	}
}

func TestServiceReplaceSnapshot(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	custom := domain.SeedSnapshot()
	custom.Company.Name = "Replacement Corp"
	snap, err := svc.ReplaceSnapshot(ctx, custom)
	if err != nil {
		t.Fatalf("replace: %v", err)
	}
	if snap.Company.Name != "Replacement Corp" {
		t.Fatalf("snapshot not replaced: %q", snap.Company.Name)
	}
	current, err := svc.Snapshot(ctx)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if current.Company.Name != "Replacement Corp" {
		t.Fatalf("store not replaced")
	}
}

func TestServiceRecordsMetrics(t *testing.T) {
	rec := NewExpvarMetricsRecorder("")
	svc := newTestService(t, WithMetrics(rec))
	ctx := context.Background()

	if _, _, err := svc.CreateVendor(ctx, domain.Vendor{Name: "Okta"}); err != nil {
		t.Fatalf("create vendor: %v", err)
	}
	if _, err := svc.DeleteVendor(ctx, "missing"); err == nil {
		t.Fatalf("expected delete failure")
	}

	snap := rec.Snapshot()
	if snap.Results["create_vendor"]["success"] != 1 {
		t.Fatalf("success not recorded: %+v", snap.Results)
	}
	if snap.Results["delete_vendor"]["error"] != 1 {
		t.Fatalf("error not recorded: %+v", snap.Results)
	}
	if _, ok := snap.DurationsMS["create_vendor"]; !ok {
		t.Fatalf("duration not recorded")
	}
}
