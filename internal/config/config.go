package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/kerimovok/go-pkg-utils/config"
	"gopkg.in/yaml.v3"
)

// UploadConfig holds upload validation settings
type UploadConfig struct {
	MaxFileSize       int64    `yaml:"max_file_size"`
	BlockedExtensions []string `yaml:"blocked_extensions"`
}

// ShareConfig holds share link settings
type ShareConfig struct {
	DefaultExpirySeconds int `yaml:"default_expiry_seconds"`
	MaxExpirySeconds     int `yaml:"max_expiry_seconds"`
}

// PreviewConfig holds signed preview URL settings
type PreviewConfig struct {
	ExpirySeconds int `yaml:"expiry_seconds"`
}

// PaginationConfig holds listing defaults
type PaginationConfig struct {
	DefaultLimit int `yaml:"default_limit"`
	MaxLimit     int `yaml:"max_limit"`
}

// StorageConfig holds the complete storage configuration
type StorageConfig struct {
	Upload     UploadConfig     `yaml:"upload"`
	Share      ShareConfig      `yaml:"share"`
	Preview    PreviewConfig    `yaml:"preview"`
	Pagination PaginationConfig `yaml:"pagination"`
}

// MainConfig holds the root configuration
type MainConfig struct {
	Storage StorageConfig `yaml:"storage"`
}

var (
	Config MainConfig
)

// LoadConfig loads the configuration from config/storage.yaml
func LoadConfig() error {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		if config.GetEnv("GO_ENV") != "production" {
			log.Println("Warning: Failed to load .env file")
		}
	}

	data, err := os.ReadFile("config/storage.yaml")
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg MainConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)
	Config = cfg

	log.Println("Storage configuration loaded successfully from config/storage.yaml")
	return nil
}

func applyDefaults(cfg *MainConfig) {
	if cfg.Storage.Share.DefaultExpirySeconds <= 0 {
		cfg.Storage.Share.DefaultExpirySeconds = 3600
	}
	if cfg.Storage.Share.MaxExpirySeconds <= 0 {
		cfg.Storage.Share.MaxExpirySeconds = 7 * 24 * 3600
	}
	if cfg.Storage.Preview.ExpirySeconds <= 0 {
		cfg.Storage.Preview.ExpirySeconds = 300
	}
	if cfg.Storage.Pagination.DefaultLimit <= 0 {
		cfg.Storage.Pagination.DefaultLimit = 20
	}
	if cfg.Storage.Pagination.MaxLimit <= 0 {
		cfg.Storage.Pagination.MaxLimit = 100
	}
}

// GetConfig returns the current configuration
func GetConfig() MainConfig {
	return Config
}
