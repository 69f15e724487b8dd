package config

import (
	"os"
	"strconv"
)

type Config struct {
	ServerPort        string
	TesseractDataPath string
	RegistryDBPath    string
	MaxFileSize       int64
}

func LoadConfig() *Config {
	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080"
	}

	tesseractDataPath := os.Getenv("TESSDATA_PREFIX")
	if tesseractDataPath == "" {
		tesseractDataPath = "/usr/share/tesseract-ocr/5/tessdata"
	}

	registryDBPath := os.Getenv("REGISTRY_DB_PATH")
	if registryDBPath == "" {
		registryDBPath = "cards.db"
	}

	maxFileSize := int64(10 * 1024 * 1024) // 10 MB
	if v := os.Getenv("MAX_FILE_SIZE"); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil && parsed > 0 {
			maxFileSize = parsed
		}
	}

	return &Config{
		ServerPort:        serverPort,
		TesseractDataPath: tesseractDataPath,
		RegistryDBPath:    registryDBPath,
		MaxFileSize:       maxFileSize,
	}
}
