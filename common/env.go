package common

import (
	"errors"
	"io/fs"
	"os"

	"github.com/birmacher/ai-agent/logger"
	"github.com/joho/godotenv"
)

// EnvFile is the dotenv file read from the working directory.
const EnvFile = ".env"

// LoadEnv loads variables from the given dotenv files into the process
// environment without overriding values that are already set. Missing
// files are skipped.
func LoadEnv(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{EnvFile}
	}

	for _, name := range filenames {
		if err := godotenv.Load(name); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				logger.Debugf("No env file at %s", name)
				continue
			}
			return err
		}
		logger.Debugf("Loaded environment from %s", name)
	}

	return nil
}

// APIKeyEnv returns the environment variable holding the key for a provider.
func APIKeyEnv(provider string) string {
	switch provider {
	case ProviderAnthropic:
		return "ANTHROPIC_API_KEY"
	default:
		return "GEMINI_API_KEY"
	}
}

// GetAPIKey reads the key for a provider. An empty key is returned as is;
// the provider rejects it when the call is made.
func GetAPIKey(provider string) string {
	apiKey := os.Getenv(APIKeyEnv(provider))
	if apiKey == "" {
		logger.Warnf("%s environment variable is not set", APIKeyEnv(provider))
	}
	return apiKey
}
