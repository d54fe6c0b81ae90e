package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"bukuku/internal/config"
	"bukuku/internal/http/handlers"
	"bukuku/internal/repos"
	"bukuku/internal/services"
)

// newAPIApp wires the full route table against a seeded in-memory database,
// mirroring cmd/bukuku/main.go minus the listener.
func newAPIApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	cfg := config.Config{
		DBDSN:      ":memory:",
		UploadDir:  t.TempDir(),
		BaseURL:    "http://localhost:8080",
		CORSOrigin: "http://localhost:5173",
	}

	userRepo := repos.NewUserRepo(db)
	authSvc := services.NewAuthService(userRepo)
	authH := &handlers.AuthHandler{Auth: authSvc}
	deps := handlers.NewDeps(db, cfg)

	app := fiber.New()
	app.Server().MaxRequestBodySize = 6 << 20
	app.Use(requestid.New())

	app.Get("/books", deps.BookHandler.List)
	app.Get("/books/:id", deps.BookHandler.Show)
	app.Get("/categories", deps.CategoryHandler.List)

	app.Get("/sellers", deps.SellerHandler.List)
	app.Post("/sellers/register", deps.SellerHandler.Register)
	app.Post("/sellers/approve", handlers.RequireAdmin(authSvc), deps.SellerHandler.Approve)
	app.Post("/sellers/delete", handlers.RequireAdmin(authSvc), deps.SellerHandler.Delete)

	app.Post("/auth/register", authH.Register)
	app.Post("/auth/login", authH.Login)
	app.Post("/auth/logout", authH.Logout)

	app.Post("/upload/image", deps.UploadHandler.Image)
	app.Post("/upload/delete", handlers.RequireAdmin(authSvc), deps.UploadHandler.Delete)

	return app
}

// envelope is the uniform response wrapper every endpoint emits.
type envelope struct {
	Success  bool            `json:"success"`
	Data     json.RawMessage `json:"data"`
	Count    int             `json:"count"`
	Message  string          `json:"message"`
	Error    string          `json:"error"`
	InsertID int64           `json:"insert_id"`
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any, hdr map[string]string) (int, envelope) {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	var env envelope
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil {
			t.Fatalf("bad envelope %q: %v", raw, err)
		}
	}
	return resp.StatusCode, env
}

func adminToken(t *testing.T, app *fiber.App) string {
	t.Helper()
	status, env := doJSON(t, app, http.MethodPost, "/auth/login",
		map[string]string{"email": "admin@bukuku.test", "password": "Passw0rd!"}, nil)
	if status != http.StatusOK || !env.Success {
		t.Fatalf("admin login failed: %d %s", status, env.Error)
	}
	var data struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil || data.Token == "" {
		t.Fatalf("no token in login response: %v", err)
	}
	return data.Token
}
