// Package config provides configuration loading for the employee backend.
// Values come from environment variables, with optional .env support for
// local development. Loading happens once, before the server starts serving.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// DBConfig holds the database connection settings.
type DBConfig struct {
	User     string
	Password string
	Host     string
	Port     string
	Name     string
}

// Config is the top-level configuration for the application.
type Config struct {
	// Port is the HTTP listen port.
	Port string

	// UploadDir is the directory where profile images are stored
	// and from which /uploads is served.
	UploadDir string

	// CORSAllowOrigin is the allowed CORS origin ("*" by default).
	CORSAllowOrigin string

	DB DBConfig
}

// Load reads the configuration from the environment.
// A missing .env file is not an error; explicit environment variables win.
func Load() *Config {
	// .envがなければ環境変数のみを使用する
	_ = godotenv.Load()

	return &Config{
		Port:            getEnv("PORT", "5000"),
		UploadDir:       getEnv("UPLOAD_DIR", "uploads"),
		CORSAllowOrigin: getEnv("CORS_ALLOW_ORIGIN", "*"),
		DB: DBConfig{
			User:     getEnv("DB_USER", "root"),
			Password: getEnv("DB_PASSWORD", ""),
			Host:     getEnv("DB_HOST", "127.0.0.1"),
			Port:     getEnv("DB_PORT", "3306"),
			Name:     getEnv("DB_NAME", "employee"),
		},
	}
}

// getEnv returns the value of the environment variable, or defaultValue if unset.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
