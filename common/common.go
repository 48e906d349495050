package common

import (
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
)

var (
	// ProjectID is the Google Cloud project the service runs in. Empty when
	// running outside GCP, which disables cloud logging.
	ProjectID string

	// Env is the deployment environment name
	Env string

	// Production flag indicating if app is running in production
	Production bool

	// IsLocalhost flag indicating if app is running on localhost
	IsLocalhost bool
)

func init() {
	ProjectID = GetEnv("GOOGLE_CLOUD_PROJECT", "")
	IsLocalhost = gin.Mode() != gin.ReleaseMode

	Env = GetEnv("APP_ENV", "development")
	Production = Env == "production"
}

func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}

// GetEnvInt reads an integer environment variable, falling back when the
// variable is unset or not a valid integer.
func GetEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}

	return n
}

// GetEnvBool reads a boolean environment variable, falling back when the
// variable is unset or not a valid boolean.
func GetEnvBool(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}

	b, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}

	return b
}
