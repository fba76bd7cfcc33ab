package blob

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func newTempFilesystem(t *testing.T) *FilesystemStore {
	t.Helper()
	store, err := NewFilesystem(t.TempDir())
	if err != nil {
		t.Fatalf("NewFilesystem: %v", err)
	}
	return store
}

func TestFilesystemPutGetHeadListDelete(t *testing.T) {
	ctx := context.Background()
	store := newTempFilesystem(t)

	info, err := store.Put(ctx, "exports/plan.txt", bytes.NewReader([]byte("hello")), PutOptions{ContentType: "text/plain", Metadata: map[string]string{"k": "v"}})
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	if info.Key != "exports/plan.txt" || info.Size != 5 || info.ContentType != "text/plain" {
		t.Fatalf("unexpected info %+v", info)
	}

	h, err := store.Head(ctx, "exports/plan.txt")
	if err != nil {
		t.Fatalf("head: %v", err)
	}
	g, rc, err := store.Get(ctx, "exports/plan.txt")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	data, _ := io.ReadAll(rc)
	if err := rc.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if string(data) != "hello" || g.ETag != h.ETag || g.Metadata["k"] != "v" {
		t.Fatalf("unexpected get result: %+v %q", g, data)
	}

	list, err := store.List(ctx, "exports/")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].Key != "exports/plan.txt" {
		t.Fatalf("unexpected list %+v", list)
	}

	existed, err := store.Delete(ctx, "exports/plan.txt")
	if err != nil || !existed {
		t.Fatalf("delete: existed=%v err=%v", existed, err)
	}
	existed, err = store.Delete(ctx, "exports/plan.txt")
	if err != nil || existed {
		t.Fatalf("second delete: existed=%v err=%v", existed, err)
	}
	if _, _, err := store.Get(ctx, "exports/plan.txt"); err == nil {
		t.Fatalf("expected get failure after delete")
	}
}

func TestFilesystemPutOverwrites(t *testing.T) {
	ctx := context.Background()
	store := newTempFilesystem(t)

	if _, err := store.Put(ctx, "backup.json", bytes.NewReader([]byte("v1")), PutOptions{}); err != nil {
		t.Fatalf("first put: %v", err)
	}
	info, err := store.Put(ctx, "backup.json", bytes.NewReader([]byte("version two")), PutOptions{})
	if err != nil {
		t.Fatalf("second put: %v", err)
	}
	if info.Size != 11 {
		t.Fatalf("unexpected size %d", info.Size)
	}
	_, rc, err := store.Get(ctx, "backup.json")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	data, _ := io.ReadAll(rc)
	rc.Close()
	if string(data) != "version two" {
		t.Fatalf("overwrite lost: %q", data)
	}
}

func TestFilesystemRejectsBadKeys(t *testing.T) {
	ctx := context.Background()
	store := newTempFilesystem(t)
	for _, key := range []string{"", "  ", "../escape", "a/../../b", "/absolute"} {
		if _, err := store.Put(ctx, key, bytes.NewReader(nil), PutOptions{}); err == nil {
			t.Fatalf("expected rejection for key %q", key)
		}
	}
}

func TestFilesystemListSkipsInternalFiles(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store, err := NewFilesystem(dir)
	if err != nil {
		t.Fatalf("NewFilesystem: %v", err)
	}
	if _, err := store.Put(ctx, "a.txt", bytes.NewReader([]byte("a")), PutOptions{}); err != nil {
		t.Fatalf("put: %v", err)
	}
	// Orphan data without a sidecar and a leftover temp file must not list.
	if err := os.WriteFile(filepath.Join(dir, "orphan.bin"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write orphan: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, ".tmp-123"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write temp: %v", err)
	}
	list, err := store.List(ctx, "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].Key != "a.txt" {
		t.Fatalf("unexpected list %+v", list)
	}
}

func TestFilesystemPresignUnsupported(t *testing.T) {
	store := newTempFilesystem(t)
	if _, err := store.PresignURL(context.Background(), "a", SignedURLOptions{}); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
}
