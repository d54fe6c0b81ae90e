package repos

import (
	"bukuku/internal/domain"

	"github.com/jmoiron/sqlx"
)

type UserRepo struct{ DB *sqlx.DB }

func NewUserRepo(db *sqlx.DB) *UserRepo { return &UserRepo{DB: db} }

func (r *UserRepo) ByEmail(email string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `SELECT id,email,name,password_hash,role FROM users WHERE LOWER(email)=LOWER(?)`, email)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) Insert(u *domain.User) error {
	_, err := r.DB.Exec(`INSERT INTO users(id,email,name,password_hash,role) VALUES(?,?,?,?,?)`,
		u.ID, u.Email, u.Name, u.Hash, u.Role)
	return err
}

func (r *UserRepo) BindToken(token, userID string) error {
	_, err := r.DB.Exec(`INSERT INTO tokens(token,user_id) VALUES(?,?)`, token, userID)
	return err
}

func (r *UserRepo) TokenUser(token string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `
      SELECT u.id,u.email,u.name,u.password_hash,u.role
      FROM tokens t
      JOIN users u ON u.id = t.user_id
      WHERE t.token = ?`, token)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) RevokeToken(token string) error {
	_, err := r.DB.Exec(`DELETE FROM tokens WHERE token = ?`, token)
	return err
}
