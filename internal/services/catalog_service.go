package services

import (
	"database/sql"
	"errors"
	"strings"

	"bukuku/internal/domain"
	"bukuku/internal/repos"
)

// DefaultLimit caps catalog results when the caller sends no usable limit.
const DefaultLimit = 50

// PlaceholderCover substitutes a missing cover image URL.
const PlaceholderCover = "https://images.pexels.com/photos/159711/books-bookstore-book-reading-159711.jpeg?auto=compress&cs=tinysrgb&w=400"

type CatalogService struct {
	Books *repos.BookRepo
	Cats  *repos.CategoryRepo
}

func NewCatalogService(books *repos.BookRepo, cats *repos.CategoryRepo) *CatalogService {
	return &CatalogService{Books: books, Cats: cats}
}

// BookQuery mirrors the storefront filter knobs. Flags AND together; an
// empty search or category means the filter is absent.
type BookQuery struct {
	Featured   bool
	Bestseller bool
	NewArrival bool
	Search     string
	Category   string
	Limit      int
}

func (s *CatalogService) ListBooks(q BookQuery) ([]domain.BookView, error) {
	f := repos.BookFilter{
		Featured:   q.Featured,
		Bestseller: q.Bestseller,
		NewArrival: q.NewArrival,
		Search:     strings.TrimSpace(q.Search),
		Category:   strings.TrimSpace(q.Category),
		Limit:      q.Limit,
	}
	if f.Limit <= 0 {
		f.Limit = DefaultLimit
	}

	books, err := s.Books.List(f)
	if err != nil {
		return nil, err
	}

	out := make([]domain.BookView, 0, len(books))
	for _, b := range books {
		out = append(out, toView(b))
	}
	return out, nil
}

func (s *CatalogService) GetBook(id int64) (domain.BookView, error) {
	b, err := s.Books.Get(id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.BookView{}, ErrBookNotFound
	}
	if err != nil {
		return domain.BookView{}, err
	}
	return toView(b), nil
}

func (s *CatalogService) ListCategories() ([]domain.Category, error) {
	return s.Cats.List()
}

// toView coerces a storage row into the wire shape: fallback category label
// and placeholder cover when the row carries none.
func toView(b domain.Book) domain.BookView {
	category := b.CategoryName
	if category == "" {
		category = "Uncategorized"
	}
	cover := b.CoverImage
	if cover == "" {
		cover = PlaceholderCover
	}
	return domain.BookView{
		ID:          b.ID,
		Title:       b.Title,
		Author:      b.Author,
		Price:       b.Price,
		Description: b.Description,
		Category:    category,
		Stock:       b.Stock,
		CoverImage:  cover,
		PublishYear: b.PublishYear,
		ISBN:        b.ISBN,
		Rating:      b.Rating,
		Reviews:     b.ReviewsCount,
		Featured:    b.Featured,
		Bestseller:  b.Bestseller,
		NewArrival:  b.NewArrival,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}
