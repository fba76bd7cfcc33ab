package core

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"continuitycore/internal/blob"
	"continuitycore/internal/report"
	"continuitycore/pkg/domain"
)

// BackupFilename builds the dated key for a full-snapshot backup document.
func BackupFilename(date time.Time) string {
	return fmt.Sprintf("continuitycore_backup_%s.json", date.Format("2006-01-02"))
}

// ExportBackup writes the current snapshot as a JSON document to the
// artifact store and returns its metadata.
func (s *Service) ExportBackup(ctx context.Context, artifacts blob.Store, now time.Time) (blob.Info, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return blob.Info{}, err
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return blob.Info{}, fmt.Errorf("encode backup: %w", err)
	}
	key := BackupFilename(now)
	info, err := artifacts.Put(ctx, key, bytes.NewReader(data), blob.PutOptions{ContentType: "application/json"})
	if err != nil {
		return blob.Info{}, fmt.Errorf("store backup: %w", err)
	}
	s.logger.Info("backup exported", "key", key, "bytes", info.Size)
	return info, nil
}

// ImportBackup decodes a backup document and replaces the store contents
// wholesale. Unlike startup snapshot loading, an unreadable backup is an
// explicit operator action and the error is surfaced.
func (s *Service) ImportBackup(ctx context.Context, r io.Reader) (domain.Snapshot, error) {
	var snap domain.Snapshot
	dec := json.NewDecoder(r)
	if err := dec.Decode(&snap); err != nil {
		return domain.Snapshot{}, fmt.Errorf("decode backup: %w", err)
	}
	committed, err := s.ReplaceSnapshot(ctx, snap)
	if err != nil {
		return committed, err
	}
	s.logger.Info("backup imported", "company", committed.Company.Name)
	return committed, nil
}

// RestoreBackup fetches a stored backup by key and imports it.
func (s *Service) RestoreBackup(ctx context.Context, artifacts blob.Store, key string) (domain.Snapshot, error) {
	_, body, err := artifacts.Get(ctx, key)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("fetch backup %s: %w", key, err)
	}
	defer func() { _ = body.Close() }()
	return s.ImportBackup(ctx, body)
}

// ExportReport renders the plan document from the current snapshot and
// writes it to the artifact store under the dated report filename.
func (s *Service) ExportReport(ctx context.Context, artifacts blob.Store, now time.Time) (blob.Info, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return blob.Info{}, err
	}
	key := report.Filename(snap.Company.Name, now)
	text := report.Generate(snap)
	info, err := artifacts.Put(ctx, key, bytes.NewReader(text), blob.PutOptions{ContentType: "text/plain; charset=utf-8"})
	if err != nil {
		return blob.Info{}, fmt.Errorf("store report: %w", err)
	}
	s.logger.Info("report exported", "key", key, "bytes", info.Size)
	return info, nil
}
