package resumes

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"
	"time"
)

// fakeStore keeps blobs in a map so tests can remove one out-of-band.
type fakeStore struct {
	mu      sync.Mutex
	blobs   map[string][]byte
	signErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{blobs: make(map[string][]byte)}
}

func (s *fakeStore) Put(ctx context.Context, key string, r io.Reader) (int64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[key] = data
	return int64(len(data)), nil
}

func (s *fakeStore) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.blobs[key]
	if !ok {
		return nil, errors.New("not found")
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *fakeStore) Exists(ctx context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.blobs[key]
	return ok, nil
}

func (s *fakeStore) SignedReadURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	if s.signErr != nil {
		return "", s.signErr
	}
	return "https://signed.example/" + key, nil
}

func (s *fakeStore) remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.blobs, key)
}

type failingRepo struct{}

func (failingRepo) Create(ctx context.Context, rec Resume) (int64, error) {
	return 0, errors.New("insert failed")
}

func (failingRepo) ListByUser(ctx context.Context, userID int64) ([]Resume, error) {
	return nil, errors.New("select failed")
}

func TestUploadStoresBlobAndRecord(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	svc := &Service{Store: store, Repo: NewMemoryRepo()}

	rec, err := svc.Upload(context.Background(), 7, "file.pdf", strings.NewReader("%PDF-1.4"))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if rec.ID != 1 {
		t.Fatalf("expected id 1, got %d", rec.ID)
	}
	if rec.StorageKey != "resumes/7/file.pdf" {
		t.Fatalf("unexpected storage key %q", rec.StorageKey)
	}

	ok, err := store.Exists(context.Background(), rec.StorageKey)
	if err != nil || !ok {
		t.Fatalf("blob not stored: ok=%v err=%v", ok, err)
	}
}

func TestUploadRejectsBadInput(t *testing.T) {
	t.Parallel()

	svc := &Service{Store: newFakeStore(), Repo: NewMemoryRepo()}

	cases := []struct {
		userID   int64
		fileName string
	}{
		{0, "file.pdf"},
		{-1, "file.pdf"},
		{7, ""},
		{7, "../escape.pdf"},
	}
	for _, tc := range cases {
		_, err := svc.Upload(context.Background(), tc.userID, tc.fileName, strings.NewReader("x"))
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("userID=%d fileName=%q: expected ErrInvalidInput, got %v", tc.userID, tc.fileName, err)
		}
	}
}

func TestUploadMetadataFailureKeepsBlob(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	svc := &Service{Store: store, Repo: failingRepo{}}

	_, err := svc.Upload(context.Background(), 7, "file.pdf", strings.NewReader("x"))
	if !errors.Is(err, ErrMetadataSave) {
		t.Fatalf("expected ErrMetadataSave, got %v", err)
	}

	// No rollback: the blob write is not undone when the row insert fails.
	ok, _ := store.Exists(context.Background(), "resumes/7/file.pdf")
	if !ok {
		t.Fatalf("expected blob to survive the metadata failure")
	}
}

func TestSaveFromBuilderDerivesFileName(t *testing.T) {
	t.Parallel()

	fixed := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	svc := &Service{
		Store: newFakeStore(),
		Repo:  NewMemoryRepo(),
		Now:   func() time.Time { return fixed },
	}

	rawData := []byte(`{"personalInfo":{"fullName":"Jane Doe"}}`)
	rec, err := svc.SaveFromBuilder(context.Background(), 1, rawData, strings.NewReader("%PDF-1.4"))
	if err != nil {
		t.Fatalf("SaveFromBuilder: %v", err)
	}
	if rec.FileName != "Jane_Doe_2024-01-02T03-04-05.pdf" {
		t.Fatalf("unexpected file name %q", rec.FileName)
	}
	if rec.StorageKey != "resumes/1/Jane_Doe_2024-01-02T03-04-05.pdf" {
		t.Fatalf("unexpected storage key %q", rec.StorageKey)
	}
}

func TestSaveFromBuilderRejectsBadData(t *testing.T) {
	t.Parallel()

	svc := &Service{Store: newFakeStore(), Repo: NewMemoryRepo()}

	_, err := svc.SaveFromBuilder(context.Background(), 1, []byte("not json"), strings.NewReader("x"))
	if err == nil {
		t.Fatalf("expected an error for malformed resume data")
	}
	if errors.Is(err, ErrInvalidInput) || errors.Is(err, ErrMetadataSave) {
		t.Fatalf("malformed data must not map to input or metadata errors, got %v", err)
	}
}

func TestListDropsMissingBlobs(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	svc := &Service{Store: store, Repo: NewMemoryRepo(), ProbeConcurrency: 2}

	var keys []string
	for i := 0; i < 3; i++ {
		rec, err := svc.Upload(context.Background(), 1, fmt.Sprintf("r%d.pdf", i), strings.NewReader("x"))
		if err != nil {
			t.Fatalf("Upload %d: %v", i, err)
		}
		keys = append(keys, rec.StorageKey)
	}

	store.remove(keys[1])

	links, err := svc.List(context.Background(), 1)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(links) != 2 {
		t.Fatalf("expected 2 entries after dropping the orphan, got %d", len(links))
	}
	if links[0].FileName != "r0.pdf" || links[1].FileName != "r2.pdf" {
		t.Fatalf("order not preserved: %q, %q", links[0].FileName, links[1].FileName)
	}
	for _, link := range links {
		if link.URL == "" {
			t.Fatalf("entry %d has no signed URL", link.ID)
		}
	}
}

func TestListSkipsEntriesThatFailSigning(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	svc := &Service{Store: store, Repo: NewMemoryRepo()}

	if _, err := svc.Upload(context.Background(), 1, "a.pdf", strings.NewReader("x")); err != nil {
		t.Fatalf("Upload: %v", err)
	}
	store.signErr = errors.New("presign unavailable")

	links, err := svc.List(context.Background(), 1)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(links) != 0 {
		t.Fatalf("expected unsignable entries to be skipped, got %d", len(links))
	}
}

func TestListRejectsBadUserID(t *testing.T) {
	t.Parallel()

	svc := &Service{Store: newFakeStore(), Repo: NewMemoryRepo()}
	if _, err := svc.List(context.Background(), 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestListPropagatesRepoError(t *testing.T) {
	t.Parallel()

	svc := &Service{Store: newFakeStore(), Repo: failingRepo{}}
	if _, err := svc.List(context.Background(), 1); err == nil {
		t.Fatalf("expected repo error to propagate")
	}
}
