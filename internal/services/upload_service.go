package services

import (
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"bukuku/internal/domain"
	"bukuku/internal/repos"
	"bukuku/internal/validate"

	"github.com/google/uuid"
)

// MaxUploadSize caps a single image upload at 5 MiB.
const MaxUploadSize = 5 << 20

var allowedMIME = map[string]string{
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
}

type UploadService struct {
	Root    string // upload root directory on disk
	BaseURL string // public origin the /uploads/ prefix is served from
	Uploads *repos.UploadRepo
	Now     func() time.Time
}

func NewUploadService(root, baseURL string, uploads *repos.UploadRepo) *UploadService {
	return &UploadService{Root: root, BaseURL: strings.TrimRight(baseURL, "/"), Uploads: uploads, Now: time.Now}
}

// Save validates and stores one image under <folder>/YYYY/MM/DD/ with a
// unique filename, records it in the ledger, and returns the stored entry.
func (s *UploadService) Save(folder, origName, mime string, size int64, src io.Reader) (domain.Upload, error) {
	folder, ok := validate.Folder(folder)
	if !ok {
		return domain.Upload{}, invalid("invalid folder")
	}
	ext, ok := allowedMIME[strings.ToLower(mime)]
	if !ok {
		return domain.Upload{}, invalid("invalid file type, only JPG, PNG, and GIF are allowed")
	}
	if size > MaxUploadSize {
		return domain.Upload{}, invalid("file size too large, maximum 5MB allowed")
	}
	if origExt := strings.ToLower(path.Ext(origName)); origExt != "" {
		ext = origExt
	}

	bucket := s.Now().UTC().Format("2006/01/02")
	filename := uuid.NewString() + ext
	rel := path.Join(folder, bucket, filename)

	dir := filepath.Join(s.Root, filepath.FromSlash(path.Join(folder, bucket)))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return domain.Upload{}, err
	}
	dst, err := os.Create(filepath.Join(dir, filename))
	if err != nil {
		return domain.Upload{}, err
	}
	defer dst.Close()
	// LimitReader backs up the client-reported size, so a lying multipart
	// part cannot exceed the cap.
	n, err := io.Copy(dst, io.LimitReader(src, MaxUploadSize+1))
	if err != nil {
		return domain.Upload{}, err
	}
	if n > MaxUploadSize {
		_ = os.Remove(dst.Name())
		return domain.Upload{}, invalid("file size too large, maximum 5MB allowed")
	}

	up := domain.Upload{
		Filename: filename,
		Folder:   folder,
		Path:     rel,
		URL:      s.BaseURL + "/uploads/" + rel,
		Size:     n,
		MIME:     strings.ToLower(mime),
	}
	if err := s.Uploads.Insert(&up); err != nil {
		_ = os.Remove(dst.Name())
		return domain.Upload{}, err
	}
	return up, nil
}

// Delete unlinks a stored file given its public URL or /uploads/-relative
// path. Paths resolving outside the upload root are rejected.
func (s *UploadService) Delete(imagePath string) error {
	rel, err := s.relPath(imagePath)
	if err != nil {
		return err
	}
	full := filepath.Join(s.Root, filepath.FromSlash(rel))
	if _, err := os.Stat(full); err != nil {
		if os.IsNotExist(err) {
			return ErrUploadNotFound
		}
		return err
	}
	if err := os.Remove(full); err != nil {
		return err
	}
	return s.Uploads.DeleteByPath(rel)
}

func (s *UploadService) relPath(imagePath string) (string, error) {
	p := strings.TrimSpace(imagePath)
	if p == "" {
		return "", invalid("image path is required")
	}
	p = strings.TrimPrefix(p, s.BaseURL)
	p = strings.TrimPrefix(p, "/uploads/")
	p = strings.TrimPrefix(p, "uploads/")

	lower := strings.ToLower(p)
	if strings.Contains(lower, "..") || strings.Contains(lower, "%2e") || strings.Contains(p, "\x00") {
		return "", invalid("invalid file path")
	}
	clean := path.Clean(p)
	if clean == "." || strings.HasPrefix(clean, "..") || path.IsAbs(clean) {
		return "", invalid("invalid file path")
	}
	return clean, nil
}
