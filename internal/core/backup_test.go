package core

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"continuitycore/internal/blob"
	"continuitycore/internal/report"
	"continuitycore/pkg/domain"
)

func TestBackupFilename(t *testing.T) {
	date := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)
	if got := BackupFilename(date); got != "continuitycore_backup_2025-06-15.json" {
		t.Fatalf("filename = %q", got)
	}
}

func TestBackupRoundTrip(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	artifacts := blob.NewMemory()
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	if _, _, err := svc.UpdateCompany(ctx, func(c *domain.Company) { c.Name = "Backed Up Corp" }); err != nil {
		t.Fatalf("update company: %v", err)
	}
	info, err := svc.ExportBackup(ctx, artifacts, now)
	if err != nil {
		t.Fatalf("export backup: %v", err)
	}
	if info.Key != "continuitycore_backup_2025-06-15.json" {
		t.Fatalf("unexpected key %q", info.Key)
	}
	if info.ContentType != "application/json" {
		t.Fatalf("content type %q", info.ContentType)
	}

	if _, err := svc.ResetToSeed(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}
	restored, err := svc.RestoreBackup(ctx, artifacts, info.Key)
	if err != nil {
		t.Fatalf("restore backup: %v", err)
	}
	if restored.Company.Name != "Backed Up Corp" {
		t.Fatalf("restore did not apply backup: %q", restored.Company.Name)
	}
	current, err := svc.Snapshot(ctx)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if current.Company.Name != "Backed Up Corp" {
		t.Fatalf("store not updated by restore")
	}
}

func TestImportBackupRejectsMalformedDocument(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	if _, err := svc.ImportBackup(ctx, strings.NewReader("{not json")); err == nil {
		t.Fatalf("expected decode error")
	}
	snap, err := svc.Snapshot(ctx)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if snap.Company.Name != "Acme Corporation" {
		t.Fatalf("failed import must not replace state")
	}
}

func TestExportReport(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	artifacts := blob.NewMemory()
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	info, err := svc.ExportReport(ctx, artifacts, now)
	if err != nil {
		t.Fatalf("export report: %v", err)
	}
	if info.Key != "BCP_Acme_Corporation_2025-06-15.txt" {
		t.Fatalf("unexpected key %q", info.Key)
	}

	_, rc, err := artifacts.Get(ctx, info.Key)
	if err != nil {
		t.Fatalf("get report: %v", err)
	}
	stored, err := io.ReadAll(rc)
	rc.Close()
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	snap, err := svc.Snapshot(ctx)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if string(stored) != string(report.Generate(snap)) {
		t.Fatalf("stored report differs from generated report")
	}
}
