package handlers

import (
	"bukuku/internal/config"
	"bukuku/internal/repos"
	"bukuku/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	BookHandler     *BookHandler
	CategoryHandler *CategoryHandler
	SellerHandler   *SellerHandler
	UploadHandler   *UploadHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config) *Deps {
	bookRepo := repos.NewBookRepo(db)
	catRepo := repos.NewCategoryRepo(db)
	sellerRepo := repos.NewSellerRepo(db)
	uploadRepo := repos.NewUploadRepo(db)

	catalogSvc := services.NewCatalogService(bookRepo, catRepo)
	sellerSvc := services.NewSellerService(sellerRepo)
	uploadSvc := services.NewUploadService(cfg.UploadDir, cfg.BaseURL, uploadRepo)

	return &Deps{
		BookHandler:     &BookHandler{Catalog: catalogSvc},
		CategoryHandler: &CategoryHandler{Catalog: catalogSvc},
		SellerHandler:   &SellerHandler{Sellers: sellerSvc},
		UploadHandler:   &UploadHandler{Uploads: uploadSvc},
	}
}
