package blob

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
)

func TestMemoryPutGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	info, err := store.Put(ctx, "reports/plan.txt", bytes.NewReader([]byte("content")), PutOptions{ContentType: "text/plain"})
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	if info.Size != 7 || info.ETag == "" {
		t.Fatalf("unexpected info %+v", info)
	}

	got, rc, err := store.Get(ctx, "reports/plan.txt")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	data, _ := io.ReadAll(rc)
	rc.Close()
	if string(data) != "content" || got.ETag != info.ETag {
		t.Fatalf("round trip mismatch: %q", data)
	}

	if _, _, err := store.Get(ctx, "missing"); err == nil {
		t.Fatalf("expected miss")
	}
	if _, err := store.Put(ctx, "", bytes.NewReader(nil), PutOptions{}); err == nil {
		t.Fatalf("expected empty key rejection")
	}
}

func TestMemoryOverwriteAndDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	if _, err := store.Put(ctx, "k", bytes.NewReader([]byte("v1")), PutOptions{}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if _, err := store.Put(ctx, "k", bytes.NewReader([]byte("v2")), PutOptions{}); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	_, rc, err := store.Get(ctx, "k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	data, _ := io.ReadAll(rc)
	rc.Close()
	if string(data) != "v2" {
		t.Fatalf("overwrite lost: %q", data)
	}

	existed, err := store.Delete(ctx, "k")
	if err != nil || !existed {
		t.Fatalf("delete: existed=%v err=%v", existed, err)
	}
	existed, err = store.Delete(ctx, "k")
	if err != nil || existed {
		t.Fatalf("second delete: existed=%v err=%v", existed, err)
	}
}

func TestMemoryListSortedByKey(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()
	for _, key := range []string{"b/two", "a/one", "b/one", "c"} {
		if _, err := store.Put(ctx, key, bytes.NewReader([]byte("x")), PutOptions{}); err != nil {
			t.Fatalf("put %s: %v", key, err)
		}
	}
	list, err := store.List(ctx, "b/")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 || list[0].Key != "b/one" || list[1].Key != "b/two" {
		t.Fatalf("unexpected list %+v", list)
	}
}

func TestMemoryPresignUnsupported(t *testing.T) {
	store := NewMemory()
	if _, err := store.PresignURL(context.Background(), "k", SignedURLOptions{}); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
}
