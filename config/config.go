package config

import (
	"os"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/joho/godotenv"
)

// LoadEnv loads .env when present; real deployments rely on the
// process environment.
func LoadEnv() error {
	return godotenv.Load()
}

// GetEnv reads an environment variable.
func GetEnv(key string) string {
	return os.Getenv(key)
}

// GetEnvDefault reads an environment variable with a fallback.
func GetEnvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// ConnectCloudinary builds the Cloudinary client for room image uploads.
func ConnectCloudinary() (*cloudinary.Cloudinary, error) {
	return cloudinary.NewFromParams(
		os.Getenv("CLOUDINARY_CLOUD_NAME"),
		os.Getenv("CLOUDINARY_API_KEY"),
		os.Getenv("CLOUDINARY_API_SECRET"),
	)
}
