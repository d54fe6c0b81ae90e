package repos

import (
	"strings"

	"bukuku/internal/domain"

	"github.com/jmoiron/sqlx"
)

type BookRepo struct{ db *sqlx.DB }

func NewBookRepo(db *sqlx.DB) *BookRepo { return &BookRepo{db: db} }

// BookFilter carries the catalog query knobs. Zero values mean "absent";
// Limit must already be normalized by the caller.
type BookFilter struct {
	Featured   bool
	Bestseller bool
	NewArrival bool
	Search     string
	Category   string
	Limit      int
}

const bookColumns = `
    b.id, b.title, b.author, b.price, b.description,
    COALESCE(c.name,'') AS category_name,
    b.stock, b.cover_image, b.publish_year, b.isbn, b.rating, b.reviews_count,
    b.featured, b.bestseller, b.new_arrival,
    b.created_at, COALESCE(b.updated_at,'') AS updated_at`

// List builds one parameterized SELECT: the WHERE clauses and their bind
// args are appended in lockstep so they can never drift apart.
func (r *BookRepo) List(f BookFilter) ([]domain.Book, error) {
	where := []string{`b.status = 'active'`}
	args := []any{}

	if f.Featured {
		where = append(where, `b.featured = 1`)
	}
	if f.Bestseller {
		where = append(where, `b.bestseller = 1`)
	}
	if f.NewArrival {
		where = append(where, `b.new_arrival = 1`)
	}
	if f.Search != "" {
		where = append(where, `(LOWER(b.title) LIKE ? OR LOWER(b.author) LIKE ?)`)
		pat := "%" + strings.ToLower(f.Search) + "%"
		args = append(args, pat, pat)
	}
	if f.Category != "" {
		where = append(where, `c.slug = ?`)
		args = append(args, f.Category)
	}

	sql := `
  SELECT` + bookColumns + `
  FROM books b
  LEFT JOIN categories c ON b.category_id = c.id
  WHERE ` + strings.Join(where, " AND ") + `
  ORDER BY b.created_at DESC
  LIMIT ?`
	args = append(args, f.Limit)

	var out []domain.Book
	err := r.db.Select(&out, sql, args...)
	return out, err
}

// Get returns one active book; sql.ErrNoRows when missing or inactive.
func (r *BookRepo) Get(id int64) (domain.Book, error) {
	var b domain.Book
	err := r.db.Get(&b, `
  SELECT`+bookColumns+`
  FROM books b
  LEFT JOIN categories c ON b.category_id = c.id
  WHERE b.id = ? AND b.status = 'active'
`, id)
	return b, err
}
