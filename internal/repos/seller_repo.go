package repos

import (
	"bukuku/internal/domain"

	"github.com/jmoiron/sqlx"
)

type SellerRepo struct{ db *sqlx.DB }

func NewSellerRepo(db *sqlx.DB) *SellerRepo { return &SellerRepo{db: db} }

// Insert creates a seller in the initial 'pending' state and returns the new id.
func (r *SellerRepo) Insert(storeName, ownerName, email, phone, address string, commissionRate float64) (int64, error) {
	res, err := r.db.Exec(`
		INSERT INTO sellers(store_name, owner_name, email, phone, address, commission_rate, status)
		VALUES (?, ?, ?, ?, ?, ?, 'pending')
	`, storeName, ownerName, email, phone, address, commissionRate)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// List returns all sellers newest first. Filtering happens client-side.
func (r *SellerRepo) List() ([]domain.Seller, error) {
	var out []domain.Seller
	err := r.db.Select(&out, `
		SELECT id, store_name, owner_name, email, phone, address,
		       commission_rate, status, created_at, approved_at
		FROM sellers
		ORDER BY id DESC
	`)
	return out, err
}

// SetStatus overwrites the status unconditionally (no transition graph).
// Returns (false, nil) when no row has that id. approved_at is stamped the
// first time a seller reaches 'approved'.
func (r *SellerRepo) SetStatus(id int64, status string) (bool, error) {
	res, err := r.db.Exec(`
		UPDATE sellers
		SET status = ?,
		    approved_at = CASE WHEN ? = 'approved' AND approved_at IS NULL
		                       THEN CURRENT_TIMESTAMP ELSE approved_at END
		WHERE id = ?
	`, status, status, id)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

// Delete removes the row permanently. Returns (false, nil) when absent.
func (r *SellerRepo) Delete(id int64) (bool, error) {
	res, err := r.db.Exec(`DELETE FROM sellers WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}
