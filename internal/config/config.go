package config

import (
	"log"
	"os"
)

type Config struct {
	Port       string
	DBDSN      string
	UploadDir  string
	BaseURL    string
	CORSOrigin string
	LogFile    string
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "bukuku.db"
	} // sqlite file in project root
	uploads := os.Getenv("UPLOAD_DIR")
	if uploads == "" {
		uploads = "./uploads"
	}
	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:" + port
	}
	origin := os.Getenv("CORS_ORIGIN")
	if origin == "" {
		// React dev server
		origin = "http://localhost:5173"
	}
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./bukuku.log" // default log sink in project root
	}

	cfg := Config{Port: port, DBDSN: dsn, UploadDir: uploads, BaseURL: baseURL, CORSOrigin: origin, LogFile: logFile}
	log.Printf("[config] PORT=%s DB_DSN=%s UPLOAD_DIR=%s BASE_URL=%s CORS_ORIGIN=%s LOG_FILE=%s",
		cfg.Port, cfg.DBDSN, cfg.UploadDir, cfg.BaseURL, cfg.CORSOrigin, cfg.LogFile)
	return cfg
}
