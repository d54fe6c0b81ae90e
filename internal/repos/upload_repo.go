package repos

import (
	"bukuku/internal/domain"

	"github.com/jmoiron/sqlx"
)

type UploadRepo struct{ db *sqlx.DB }

func NewUploadRepo(db *sqlx.DB) *UploadRepo { return &UploadRepo{db: db} }

func (r *UploadRepo) Insert(u *domain.Upload) error {
	res, err := r.db.Exec(`
		INSERT INTO uploads(filename, folder, path, url, size, mime)
		VALUES (?, ?, ?, ?, ?, ?)
	`, u.Filename, u.Folder, u.Path, u.URL, u.Size, u.MIME)
	if err != nil {
		return err
	}
	u.ID, _ = res.LastInsertId()
	return nil
}

// DeleteByPath removes the ledger row for a stored file. Missing rows are
// not an error; the file on disk is the source of truth for existence.
func (r *UploadRepo) DeleteByPath(path string) error {
	_, err := r.db.Exec(`DELETE FROM uploads WHERE path = ?`, path)
	return err
}
