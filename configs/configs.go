package configs

import (
	"os"
	"strings"

	"github.com/IR2816/Party-Gallery-Logic/constants"
	"github.com/IR2816/Party-Gallery-Logic/domains"
	"github.com/IR2816/Party-Gallery-Logic/logger"
	"github.com/joho/godotenv"
)

type Config struct {
	// UserAgent overrides the default browser user agent on all requests
	UserAgent string

	// ApiTimeout is the per-request timeout in seconds.
	// Defaults to constants.DEFAULT_API_TIMEOUT when 0.
	ApiTimeout int

	// CacheDirPath is where the key-value store and the cached
	// creator index live
	CacheDirPath string
}

// LoadEnv loads overrides from a .env file (if present) and the
// process environment: a custom user agent and replacement mirror
// domain lists, comma-separated. Useful when the built-in domain table
// is outdated and the user cannot wait for an update.
func LoadEnv(envPath string) *Config {
	if envPath == "" {
		envPath = constants.ENV_FILE_NAME
	}
	if err := godotenv.Load(envPath); err != nil && !os.IsNotExist(err) {
		logger.MainLogger.Errorf("Failed to load env file at %s: %s", envPath, err)
	}

	if envDomains := os.Getenv(constants.ENV_KEMONO_DOMAINS_KEY); envDomains != "" {
		domains.OverrideDomains(constants.KEMONO, strings.Split(envDomains, ","))
	}
	if envDomains := os.Getenv(constants.ENV_COOMER_DOMAINS_KEY); envDomains != "" {
		domains.OverrideDomains(constants.COOMER, strings.Split(envDomains, ","))
	}

	return &Config{
		UserAgent: os.Getenv(constants.ENV_USER_AGENT_KEY),
	}
}
