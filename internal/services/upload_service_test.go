package services_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"bukuku/internal/repos"
	"bukuku/internal/services"
)

func uploadDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	schema := `
	CREATE TABLE uploads(id INTEGER PRIMARY KEY AUTOINCREMENT, filename TEXT, folder TEXT,
	  path TEXT, url TEXT UNIQUE, size INTEGER, mime TEXT, created_at TEXT DEFAULT CURRENT_TIMESTAMP);
	`
	if _, err := db.Exec(schema); err != nil {
		t.Fatal(err)
	}
	return db
}

func newUploads(t *testing.T) (*services.UploadService, string) {
	t.Helper()
	root := t.TempDir()
	svc := services.NewUploadService(root, "http://localhost:8080", repos.NewUploadRepo(uploadDB(t)))
	svc.Now = func() time.Time { return time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC) }
	return svc, root
}

func TestUpload_SaveCreatesDateBucket(t *testing.T) {
	svc, root := newUploads(t)

	up, err := svc.Save("covers", "sampul.png", "image/png", 12, strings.NewReader("not-a-real-png"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(up.Path, "covers/2026/08/28/") {
		t.Fatalf("missing date bucket in %q", up.Path)
	}
	if !strings.HasSuffix(up.Filename, ".png") {
		t.Fatalf("extension lost: %q", up.Filename)
	}
	if up.URL != "http://localhost:8080/uploads/"+up.Path {
		t.Fatalf("bad public url %q", up.URL)
	}
	if _, err := os.Stat(filepath.Join(root, filepath.FromSlash(up.Path))); err != nil {
		t.Fatalf("file not on disk: %v", err)
	}

	// two saves of the same name never collide
	up2, err := svc.Save("covers", "sampul.png", "image/png", 12, strings.NewReader("again"))
	if err != nil {
		t.Fatal(err)
	}
	if up2.Filename == up.Filename {
		t.Fatal("duplicate filename generated")
	}
}

func TestUpload_RejectsBadTypeSizeAndFolder(t *testing.T) {
	svc, _ := newUploads(t)

	if _, err := svc.Save("covers", "doc.pdf", "application/pdf", 10, strings.NewReader("x")); !isValidation(err) {
		t.Fatalf("pdf: want validation error, got %v", err)
	}
	if _, err := svc.Save("covers", "big.png", "image/png", services.MaxUploadSize+1, strings.NewReader("x")); !isValidation(err) {
		t.Fatalf("oversize: want validation error, got %v", err)
	}
	if _, err := svc.Save("../evil", "a.png", "image/png", 1, strings.NewReader("x")); !isValidation(err) {
		t.Fatalf("bad folder: want validation error, got %v", err)
	}
}

func TestUpload_DeleteByURLAndTraversalGuard(t *testing.T) {
	svc, root := newUploads(t)

	up, err := svc.Save("covers", "sampul.jpg", "image/jpeg", 5, strings.NewReader("jpeg!"))
	if err != nil {
		t.Fatal(err)
	}

	// delete accepts the public URL the frontend stored
	if err := svc.Delete(up.URL); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(root, filepath.FromSlash(up.Path))); !os.IsNotExist(err) {
		t.Fatal("file survived delete")
	}

	if err := svc.Delete(up.URL); !errors.Is(err, services.ErrUploadNotFound) {
		t.Fatalf("second delete: want ErrUploadNotFound, got %v", err)
	}
	for _, p := range []string{"", "../../etc/passwd", "covers/%2e%2e/x.png", "/uploads/../../x"} {
		if err := svc.Delete(p); !isValidation(err) {
			t.Fatalf("path %q: want validation error, got %v", p, err)
		}
	}
}
