package services_test

import (
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"bukuku/internal/repos"
	"bukuku/internal/services"
)

func authDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	schema := `
	CREATE TABLE users(id TEXT PRIMARY KEY, email TEXT UNIQUE, name TEXT, password_hash TEXT, role TEXT);
	CREATE TABLE tokens(token TEXT PRIMARY KEY, user_id TEXT, created_at TEXT DEFAULT CURRENT_TIMESTAMP);
	`
	if _, err := db.Exec(schema); err != nil {
		t.Fatal(err)
	}
	return db
}

func TestAuth_RegisterLoginLogout(t *testing.T) {
	svc := services.NewAuthService(repos.NewUserRepo(authDB(t)))

	token, u, err := svc.Register("Dewi", "dewi@bukuku.test", "Passw0rd!")
	if err != nil {
		t.Fatal(err)
	}
	if token == "" || u.Role != "USER" {
		t.Fatalf("bad registration result: token=%q user=%+v", token, u)
	}

	// token resolves
	cur, err := svc.CurrentUser(token)
	if err != nil {
		t.Fatal(err)
	}
	if cur == nil || cur.ID != u.ID {
		t.Fatalf("token did not resolve to registered user: %+v", cur)
	}

	// duplicate email rejected before touching storage constraints
	if _, _, err := svc.Register("Dewi", "dewi@bukuku.test", "Passw0rd!"); !isValidation(err) {
		t.Fatalf("duplicate email: want validation error, got %v", err)
	}

	// wrong password
	if _, _, err := svc.Login("dewi@bukuku.test", "nope-nope"); !errors.Is(err, services.ErrBadCreds) {
		t.Fatalf("want ErrBadCreds, got %v", err)
	}

	// correct login issues a fresh token
	token2, _, err := svc.Login("dewi@bukuku.test", "Passw0rd!")
	if err != nil {
		t.Fatal(err)
	}
	if token2 == "" || token2 == token {
		t.Fatalf("expected fresh token, got %q", token2)
	}

	// logout revokes only the presented token
	if err := svc.Logout(token); err != nil {
		t.Fatal(err)
	}
	if cur, _ := svc.CurrentUser(token); cur != nil {
		t.Fatal("revoked token still resolves")
	}
	if cur, _ := svc.CurrentUser(token2); cur == nil {
		t.Fatal("unrelated token was revoked")
	}
}

func TestAuth_RegisterValidation(t *testing.T) {
	svc := services.NewAuthService(repos.NewUserRepo(authDB(t)))

	cases := []struct{ name, email, pass string }{
		{"", "a@b.com", "Passw0rd!"},
		{"Dewi", "not-an-email", "Passw0rd!"},
		{"Dewi", "a@b.com", "short"},
	}
	for i, c := range cases {
		if _, _, err := svc.Register(c.name, c.email, c.pass); !isValidation(err) {
			t.Fatalf("case %d: want validation error, got %v", i, err)
		}
	}
}

func TestAuth_LoginStorageFailureIsNotBadCreds(t *testing.T) {
	db := authDB(t)
	svc := services.NewAuthService(repos.NewUserRepo(db))

	if _, _, err := svc.Login("nobody@bukuku.test", "Passw0rd!"); !errors.Is(err, services.ErrBadCreds) {
		t.Fatalf("unknown email: want ErrBadCreds, got %v", err)
	}

	// break storage underneath the service
	if _, err := db.Exec(`DROP TABLE users`); err != nil {
		t.Fatal(err)
	}
	_, _, err := svc.Login("dewi@bukuku.test", "Passw0rd!")
	if err == nil {
		t.Fatal("expected an error from broken storage")
	}
	if errors.Is(err, services.ErrBadCreds) {
		t.Fatal("storage failure must not masquerade as bad credentials")
	}
	if isValidation(err) {
		t.Fatal("storage failure must not read as caller input")
	}
}

func TestAuth_EmptyTokenIsAnonymous(t *testing.T) {
	svc := services.NewAuthService(repos.NewUserRepo(authDB(t)))
	u, err := svc.CurrentUser("  ")
	if err != nil || u != nil {
		t.Fatalf("blank token should be anonymous, got %v / %v", u, err)
	}
}
