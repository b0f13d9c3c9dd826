package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort        string
	TesseractDataPath string
	OCRLanguage       string
	MaxTextPages      int
	MaxFileSize       int64
	InboxDir          string
	ArchiveDir        string
	SortedDir         string
}

func LoadConfig() *Config {
	// Optional .env for local runs; real deployments set the environment.
	_ = godotenv.Load()

	return &Config{
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		TesseractDataPath: getEnv("TESSDATA_PREFIX", "/usr/share/tesseract-ocr/5/tessdata/"),
		OCRLanguage:       getEnv("OCR_LANGUAGE", "tur+eng"),
		MaxTextPages:      getEnvInt("MAX_TEXT_PAGES", 2),
		MaxFileSize:       32 * 1024 * 1024, // 32 MB
		InboxDir:          getEnv("INBOX_DIR", "new-pdfs"),
		ArchiveDir:        getEnv("ARCHIVE_DIR", "all-pdfs"),
		SortedDir:         getEnv("SORTED_DIR", "sorted-pdfs"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
