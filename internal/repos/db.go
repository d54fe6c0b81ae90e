package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed baseline data if DB is empty (categories/books/sellers)
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}
	// Ensure users exist (idempotent; safe to run every start)
	if err := seedUsers(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Categories
CREATE TABLE IF NOT EXISTS categories(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  slug TEXT NOT NULL UNIQUE,
  description TEXT NOT NULL DEFAULT '',
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);

-- Books
CREATE TABLE IF NOT EXISTS books(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  title TEXT NOT NULL,
  author TEXT NOT NULL,
  price NUMERIC NOT NULL CHECK (price >= 0),
  description TEXT NOT NULL DEFAULT '',
  category_id INTEGER REFERENCES categories(id) ON DELETE SET NULL,
  stock INTEGER NOT NULL DEFAULT 0 CHECK (stock >= 0),
  cover_image TEXT NOT NULL DEFAULT '',
  publish_year INTEGER NOT NULL DEFAULT 0,
  isbn TEXT NOT NULL DEFAULT '',
  rating NUMERIC NOT NULL DEFAULT 0 CHECK (rating >= 0 AND rating <= 5),
  reviews_count INTEGER NOT NULL DEFAULT 0,
  featured INTEGER NOT NULL DEFAULT 0,
  bestseller INTEGER NOT NULL DEFAULT 0,
  new_arrival INTEGER NOT NULL DEFAULT 0,
  status TEXT NOT NULL DEFAULT 'active' CHECK (status IN ('active','inactive')),
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_books_category   ON books(category_id);
CREATE INDEX IF NOT EXISTS idx_books_status     ON books(status);
CREATE INDEX IF NOT EXISTS idx_books_created_at ON books(created_at);
CREATE INDEX IF NOT EXISTS idx_books_title      ON books(LOWER(title));

-- Sellers
CREATE TABLE IF NOT EXISTS sellers(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  store_name TEXT NOT NULL,
  owner_name TEXT NOT NULL,
  email TEXT NOT NULL,
  phone TEXT NOT NULL DEFAULT '',
  address TEXT NOT NULL DEFAULT '',
  commission_rate NUMERIC NOT NULL DEFAULT 10,
  status TEXT NOT NULL DEFAULT 'pending' CHECK (status IN ('pending','approved','rejected','suspended')),
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  approved_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_sellers_status ON sellers(status);

-- Upload ledger
CREATE TABLE IF NOT EXISTS uploads(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  filename TEXT NOT NULL,
  folder TEXT NOT NULL,
  path TEXT NOT NULL,
  url TEXT NOT NULL UNIQUE,
  size INTEGER NOT NULL,
  mime TEXT NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);

-- Users & API tokens
CREATE TABLE IF NOT EXISTS users(
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  name TEXT NOT NULL,
  password_hash TEXT NOT NULL,
  role TEXT NOT NULL CHECK (role IN ('USER','ADMIN')),
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users(LOWER(email));

CREATE TABLE IF NOT EXISTS tokens(
  token TEXT PRIMARY KEY,            -- bearer value the frontend keeps in localStorage
  user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_tokens_user ON tokens(user_id);
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM categories`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo categories/books/sellers")

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	tx.MustExec(`INSERT INTO categories(name,slug,description) VALUES
	  ('Fiksi','fiksi','Novel dan cerita fiksi'),
	  ('Non-Fiksi','non-fiksi','Biografi, sejarah, dan sains populer'),
	  ('Pendidikan','pendidikan','Buku pelajaran dan referensi'),
	  ('Komik','komik','Komik dan novel grafis')`)

	// Spread created_at so "newest first" ordering is meaningful out of the box.
	tx.MustExec(`INSERT INTO books
	  (title,author,price,description,category_id,stock,cover_image,publish_year,isbn,rating,reviews_count,featured,bestseller,new_arrival,status,created_at) VALUES
	  ('Laskar Pelangi','Andrea Hirata',89000,'Sepuluh anak Belitung dan sekolah yang nyaris roboh.',1,42,'',2005,'9789793062792',4.7,1250,1,1,0,'active',datetime('now','-30 days')),
	  ('Bumi Manusia','Pramoedya Ananta Toer',115000,'Roman pertama Tetralogi Buru.',1,18,'',1980,'9789799731234',4.9,2310,1,1,0,'active',datetime('now','-20 days')),
	  ('Filosofi Teras','Henry Manampiring',98000,'Stoisisme untuk kehidupan modern.',2,60,'',2018,'9786024125189',4.5,890,1,0,0,'active',datetime('now','-10 days')),
	  ('Atomic Habits','James Clear',108000,'Perubahan kecil, hasil luar biasa.',2,75,'',2019,'9786020633176',4.8,3100,0,1,0,'active',datetime('now','-5 days')),
	  ('Pulang','Tere Liye',92000,'Perjalanan panjang menemukan arti pulang.',1,33,'',2015,'9786020822129',4.4,640,0,0,1,'active',datetime('now','-2 days')),
	  ('Si Juki Lika-Liku Anak Kos','Faza Meonk',65000,'Kumpulan komik Si Juki.',4,12,'',2014,'9786027742816',4.2,210,0,0,1,'active',datetime('now','-1 days'))`)

	tx.MustExec(`INSERT INTO sellers(store_name,owner_name,email,phone,address,commission_rate,status,approved_at) VALUES
	  ('Toko Buku Cerdas','Siti Rahma','siti@tokocerdas.id','081234567890','Jl. Melati 12, Bandung',10,'approved',CURRENT_TIMESTAMP),
	  ('Pustaka Nusantara','Agus Salim','agus@pustakanusantara.id','','',12.5,'pending',NULL)`)

	return tx.Commit()
}

// seedUsers ensures one ADMIN and one USER exist (idempotent).
func seedUsers(db *sqlx.DB) error {
	type u struct {
		ID, Email, Name, Role, Hash string
	}
	mk := func(id, email, name, role, raw string) u {
		h, _ := bcrypt.GenerateFromPassword([]byte(raw), 12)
		return u{ID: id, Email: email, Name: name, Role: role, Hash: string(h)}
	}

	users := []u{
		mk("u-admin", "admin@bukuku.test", "Admin", "ADMIN", "Passw0rd!"),
		mk("u-dewi", "dewi@bukuku.test", "Dewi", "USER", "Passw0rd!"),
	}

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	for _, x := range users {
		if _, err := tx.Exec(`
			INSERT INTO users(id,email,name,password_hash,role)
			VALUES(?,?,?,?,?)
			ON CONFLICT(email) DO NOTHING
		`, x.ID, x.Email, x.Name, x.Hash, x.Role); err != nil {
			return err
		}
	}

	return tx.Commit()
}
