package local

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestPutOpenExistsRoundTrip(t *testing.T) {
	t.Parallel()

	store := New(t.TempDir())
	ctx := context.Background()
	key := "resumes/1/hello.pdf"

	n, err := store.Put(ctx, key, strings.NewReader("%PDF-1.4 hello"))
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if n != int64(len("%PDF-1.4 hello")) {
		t.Fatalf("expected %d bytes, got %d", len("%PDF-1.4 hello"), n)
	}

	ok, err := store.Exists(ctx, key)
	if err != nil {
		t.Fatalf("Exists: %v", err)
	}
	if !ok {
		t.Fatalf("expected object to exist")
	}

	r, err := store.Open(ctx, key)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer r.Close()
	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "%PDF-1.4 hello" {
		t.Fatalf("unexpected contents %q", data)
	}
}

func TestPutOverwritesExistingKey(t *testing.T) {
	t.Parallel()

	store := New(t.TempDir())
	ctx := context.Background()
	key := "resumes/1/resume.pdf"

	if _, err := store.Put(ctx, key, strings.NewReader("first")); err != nil {
		t.Fatalf("first Put: %v", err)
	}
	if _, err := store.Put(ctx, key, strings.NewReader("second")); err != nil {
		t.Fatalf("second Put: %v", err)
	}

	r, err := store.Open(ctx, key)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer r.Close()
	data, _ := io.ReadAll(r)
	if string(data) != "second" {
		t.Fatalf("expected overwrite, got %q", data)
	}
}

func TestExistsFalseAfterOutOfBandDelete(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := New(dir)
	ctx := context.Background()
	key := "resumes/2/gone.pdf"

	if _, err := store.Put(ctx, key, strings.NewReader("bytes")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := os.Remove(filepath.Join(dir, filepath.FromSlash(key))); err != nil {
		t.Fatalf("remove: %v", err)
	}

	ok, err := store.Exists(ctx, key)
	if err != nil {
		t.Fatalf("Exists: %v", err)
	}
	if ok {
		t.Fatalf("expected object to be gone")
	}
}

func TestSignedReadURLShape(t *testing.T) {
	t.Parallel()

	store := New(t.TempDir())
	signed, err := store.SignedReadURL(context.Background(), "resumes/1/file.pdf", 60*time.Second)
	if err != nil {
		t.Fatalf("SignedReadURL: %v", err)
	}
	if !strings.HasPrefix(signed, "/local-files/resumes/1/file.pdf?expires=") {
		t.Fatalf("unexpected url %q", signed)
	}
}

func TestTraversalKeysRejected(t *testing.T) {
	t.Parallel()

	store := New(t.TempDir())
	if _, err := store.Put(context.Background(), "../escape.pdf", strings.NewReader("x")); err == nil {
		t.Fatalf("expected traversal key to be rejected")
	}
	if _, err := store.Exists(context.Background(), "/abs/key.pdf"); err == nil {
		t.Fatalf("expected absolute key to be rejected")
	}
}
