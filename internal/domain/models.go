package domain

// Book is a catalog row joined with its category name.
// CategoryName is empty when the FK points nowhere (LEFT JOIN miss).
type Book struct {
	ID           int64   `db:"id"`
	Title        string  `db:"title"`
	Author       string  `db:"author"`
	Price        float64 `db:"price"`
	Description  string  `db:"description"`
	CategoryName string  `db:"category_name"`
	Stock        int     `db:"stock"`
	CoverImage   string  `db:"cover_image"`
	PublishYear  int     `db:"publish_year"`
	ISBN         string  `db:"isbn"`
	Rating       float64 `db:"rating"`
	ReviewsCount int     `db:"reviews_count"`
	Featured     bool    `db:"featured"`
	Bestseller   bool    `db:"bestseller"`
	NewArrival   bool    `db:"new_arrival"`
	CreatedAt    string  `db:"created_at"`
	UpdatedAt    string  `db:"updated_at"`
}

// BookView is the wire shape the storefront consumes. Key names follow the
// existing frontend contract (camelCase except new_arrival).
type BookView struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Stock       int     `json:"stock"`
	CoverImage  string  `json:"coverImage"`
	PublishYear int     `json:"publishYear"`
	ISBN        string  `json:"isbn"`
	Rating      float64 `json:"rating"`
	Reviews     int     `json:"reviews"`
	Featured    bool    `json:"featured"`
	Bestseller  bool    `json:"bestseller"`
	NewArrival  bool    `json:"new_arrival"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

type Category struct {
	ID          int64  `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Slug        string `db:"slug" json:"slug"`
	Description string `db:"description" json:"description"`
	CreatedAt   string `db:"created_at" json:"created_at"`
}

// Seller lifecycle: pending -> approved|rejected -> suspended -> approved.
// Transitions are admin-driven and not validated against a graph.
const (
	SellerPending   = "pending"
	SellerApproved  = "approved"
	SellerRejected  = "rejected"
	SellerSuspended = "suspended"
)

type Seller struct {
	ID             int64   `db:"id" json:"id"`
	StoreName      string  `db:"store_name" json:"store_name"`
	OwnerName      string  `db:"owner_name" json:"owner_name"`
	Email          string  `db:"email" json:"email"`
	Phone          string  `db:"phone" json:"phone"`
	Address        string  `db:"address" json:"address"`
	CommissionRate float64 `db:"commission_rate" json:"commission_rate"`
	Status         string  `db:"status" json:"status"`
	CreatedAt      string  `db:"created_at" json:"created_at"`
	ApprovedAt     *string `db:"approved_at" json:"approved_at"`
}

type Upload struct {
	ID        int64  `db:"id" json:"id"`
	Filename  string `db:"filename" json:"filename"`
	Folder    string `db:"folder" json:"folder"`
	Path      string `db:"path" json:"path"`
	URL       string `db:"url" json:"url"`
	Size      int64  `db:"size" json:"size"`
	MIME      string `db:"mime" json:"type"`
	CreatedAt string `db:"created_at" json:"created_at"`
}
